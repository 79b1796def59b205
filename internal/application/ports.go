//go:generate go run go.uber.org/mock/mockgen -source=ports.go -destination=../mocks/mock_ports.go -package=mocks
package application

import (
	"context"

	"github.com/aoideee/hexbooks/internal/domain"
)

// BookUseCases is the inbound port driven by the web adapter.
type BookUseCases interface {
	GetAllBooks(ctx context.Context) ([]domain.BookState, error)
	GetBook(ctx context.Context, id string) (domain.BookState, error)
	AddNewBook(ctx context.Context, cmd domain.NewBookCommand) (domain.BookState, error)
	UpdateBook(ctx context.Context, cmd domain.UpdateBookCommand) error
}

// BookStore is the outbound port implemented by the persistence adapters.
// LoadBook returns an *ObjectNotFoundError when no record has the given id.
type BookStore interface {
	LoadBook(ctx context.Context, id domain.BookID) (domain.BookState, error)
	LoadAllBooks(ctx context.Context) ([]domain.BookState, error)
	PersistNewBook(ctx context.Context, book domain.BookState) error
	PersistUpdatedBook(ctx context.Context, book domain.BookState) error
}
