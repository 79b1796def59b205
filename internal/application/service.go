// Package application orchestrates the book use cases: every call validates
// or maps through the domain model and delegates storage to a BookStore.
package application

import (
	"context"

	"github.com/aoideee/hexbooks/internal/domain"
)

// BookService implements BookUseCases on top of a BookStore. Store errors are
// returned unchanged and nothing is retried.
type BookService struct {
	store BookStore
}

func NewBookService(store BookStore) *BookService {
	return &BookService{store: store}
}

// GetAllBooks loads every stored book and re-validates it against the
// current domain rules before returning it.
func (s *BookService) GetAllBooks(ctx context.Context) ([]domain.BookState, error) {
	states, err := s.store.LoadAllBooks(ctx)
	if err != nil {
		return nil, err
	}

	trusted := make([]domain.BookState, 0, len(states))
	for _, state := range states {
		t, err := toTrustedState(state)
		if err != nil {
			return nil, err
		}
		trusted = append(trusted, t)
	}
	return trusted, nil
}

// GetBook validates id before touching the store.
func (s *BookService) GetBook(ctx context.Context, id string) (domain.BookState, error) {
	bookID, err := domain.ParseBookID(id)
	if err != nil {
		return domain.BookState{}, err
	}

	state, err := s.store.LoadBook(ctx, bookID)
	if err != nil {
		return domain.BookState{}, err
	}
	return toTrustedState(state)
}

// AddNewBook creates a book with a generated id, persists it, and returns the
// stored state.
func (s *BookService) AddNewBook(ctx context.Context, cmd domain.NewBookCommand) (domain.BookState, error) {
	book, err := domain.CreateBook(cmd)
	if err != nil {
		return domain.BookState{}, err
	}

	state := book.CurrentState()
	if err := s.store.PersistNewBook(ctx, state); err != nil {
		return domain.BookState{}, err
	}
	return state, nil
}

// UpdateBook replaces the stored book with the state in cmd. Every required
// field must be present.
func (s *BookService) UpdateBook(ctx context.Context, cmd domain.UpdateBookCommand) error {
	book, err := domain.BookFrom(cmd.State())
	if err != nil {
		return err
	}
	return s.store.PersistUpdatedBook(ctx, book.CurrentState())
}

func toTrustedState(state domain.BookState) (domain.BookState, error) {
	book, err := domain.BookFrom(state)
	if err != nil {
		return domain.BookState{}, err
	}
	return book.CurrentState(), nil
}
