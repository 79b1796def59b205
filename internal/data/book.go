// Package data provides the persistence adapters behind application.BookStore:
// an in-memory store, a DynamoDB table, a PostgreSQL table and an embedded
// Badger key-value store. All of them store domain.BookState records keyed by id.
package data

import (
	"errors"

	"github.com/aoideee/hexbooks/internal/application"
	"github.com/aoideee/hexbooks/internal/domain"
)

// ErrDuplicateBook is returned when a new book is persisted under an id that
// is already taken.
var ErrDuplicateBook = errors.New("book with this id already exists")

// bookObject is the object name used in ObjectNotFoundError messages.
const bookObject = "Book"

func bookNotFound(id string) error {
	return application.NewObjectNotFoundError(bookObject, id)
}

// DefaultSeed returns the sample records the in-memory store starts with.
func DefaultSeed() []domain.BookState {
	return []domain.BookState{
		{ID: "5VVGTSPMKHH3A8", Author: "Douglas Crockford", Title: "JavaScript: The Good Parts"},
		{ID: "5VVGTSPMKHH3A9", Author: "Joshua Bloch", Title: "Effective Java"},
		{ID: "5VVGTSPMKHH3A0", Author: "Robert C. Martin", Title: "Clean Code"},
		{ID: "5VVGTSPMKHH3A1", Author: "Eric Evans", Title: "Domain-Driven Design"},
	}
}
