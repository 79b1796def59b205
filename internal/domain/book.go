// Package domain holds the Book aggregate and the value objects it is built from.
// Nothing in here knows about HTTP or storage; constructors either return a
// fully valid value or a *validator.ValidationError.
package domain

import (
	"regexp"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/aoideee/hexbooks/internal/validator"
)

// BookState is the plain representation of a book that crosses process and
// storage boundaries. ISBN is optional and left empty when absent.
type BookState struct {
	ID     string `json:"id"`
	Author string `json:"author"`
	Title  string `json:"title"`
	ISBN   string `json:"isbn,omitempty"`
}

// NewBookCommand carries the client-supplied fields for a book that does not exist yet.
type NewBookCommand struct {
	Author string `json:"author"`
	Title  string `json:"title"`
	ISBN   string `json:"isbn,omitempty"`
}

// UpdateBookCommand carries the full replacement state for an existing book.
type UpdateBookCommand struct {
	ID     string `json:"id"`
	Author string `json:"author"`
	Title  string `json:"title"`
	ISBN   string `json:"isbn,omitempty"`
}

const (
	BookIDSize          = 14
	BookIDAlphabet      = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	BookTitleMaxLength  = 30
	BookAuthorMaxLength = 20
)

var (
	bookIDRX = regexp.MustCompile(`^[0-9A-Z]{14}$`)
	isbnRX   = regexp.MustCompile(`(^[0-9]{10}$)|(^[0-9]{13}$)`)
)

// BookID identifies a book: exactly 14 characters from [0-9A-Z].
type BookID struct {
	value string
}

// ParseBookID validates value as a BookID.
func ParseBookID(value string) (BookID, error) {
	err := validator.Check("bookId", value,
		validator.NotEmpty(),
		validator.MaxLength(BookIDSize),
		validator.Matches(bookIDRX),
	)
	if err != nil {
		return BookID{}, err
	}
	return BookID{value: value}, nil
}

// NewBookID generates a fresh random BookID. Uniqueness against storage is
// not checked; with 36^14 possible values collisions are not expected.
func NewBookID() BookID {
	id, err := gonanoid.Generate(BookIDAlphabet, BookIDSize)
	if err != nil {
		// Generate only fails on an invalid alphabet or size.
		panic(err)
	}
	return BookID{value: id}
}

func (id BookID) String() string { return id.value }

// BookTitle is a non-empty title of at most 30 characters.
type BookTitle struct {
	value string
}

func NewBookTitle(value string) (BookTitle, error) {
	err := validator.Check("bookTitle", value, validator.NotEmpty(), validator.MaxLength(BookTitleMaxLength))
	if err != nil {
		return BookTitle{}, err
	}
	return BookTitle{value: value}, nil
}

func (t BookTitle) String() string { return t.value }

// BookAuthor is a non-empty author name of at most 20 characters.
type BookAuthor struct {
	value string
}

func NewBookAuthor(value string) (BookAuthor, error) {
	err := validator.Check("bookAuthor", value, validator.NotEmpty(), validator.MaxLength(BookAuthorMaxLength))
	if err != nil {
		return BookAuthor{}, err
	}
	return BookAuthor{value: value}, nil
}

func (a BookAuthor) String() string { return a.value }

// ISBN is a 10 or 13 digit number.
type ISBN struct {
	value string
}

func NewISBN(value string) (ISBN, error) {
	err := validator.Check("bookIsbn", value, validator.NotEmpty(), validator.Matches(isbnRX))
	if err != nil {
		return ISBN{}, err
	}
	return ISBN{value: value}, nil
}

func (i ISBN) String() string { return i.value }

// Book is the validated aggregate. It is immutable: a changed book is a new
// Book built from the new state.
type Book struct {
	id     BookID
	title  BookTitle
	author BookAuthor
	isbn   *ISBN
}

// CreateBook builds a Book with a freshly generated id from cmd.
func CreateBook(cmd NewBookCommand) (Book, error) {
	return build(NewBookID(), cmd.Title, cmd.Author, cmd.ISBN)
}

// BookFrom rebuilds a Book from existing state. The id must already be
// present and well formed, and every other field is validated in full.
func BookFrom(state BookState) (Book, error) {
	id, err := ParseBookID(state.ID)
	if err != nil {
		return Book{}, err
	}
	return build(id, state.Title, state.Author, state.ISBN)
}

func build(id BookID, title, author, isbn string) (Book, error) {
	t, err := NewBookTitle(title)
	if err != nil {
		return Book{}, err
	}
	a, err := NewBookAuthor(author)
	if err != nil {
		return Book{}, err
	}

	book := Book{id: id, title: t, author: a}
	if isbn != "" {
		i, err := NewISBN(isbn)
		if err != nil {
			return Book{}, err
		}
		book.isbn = &i
	}
	return book, nil
}

// ID returns the identity of the book.
func (b Book) ID() BookID { return b.id }

// CurrentState projects the book back to a BookState, omitting the ISBN when absent.
func (b Book) CurrentState() BookState {
	state := BookState{
		ID:     b.id.value,
		Author: b.author.value,
		Title:  b.title.value,
	}
	if b.isbn != nil {
		state.ISBN = b.isbn.value
	}
	return state
}

// State converts the command into the BookState it describes.
func (c UpdateBookCommand) State() BookState {
	return BookState{ID: c.ID, Author: c.Author, Title: c.Title, ISBN: c.ISBN}
}
