package data

import (
	"context"
	"sync"

	"github.com/samber/lo"

	"github.com/aoideee/hexbooks/internal/domain"
)

// MemoryStore keeps books in process memory. Insertion order is preserved
// for LoadAllBooks.
type MemoryStore struct {
	mu    sync.RWMutex
	books map[string]domain.BookState
	order []string
}

// NewMemoryStore returns a store holding a copy of seed. Later seed entries
// with a repeated id are ignored.
func NewMemoryStore(seed []domain.BookState) *MemoryStore {
	s := &MemoryStore{books: make(map[string]domain.BookState, len(seed))}
	for _, b := range seed {
		if _, exists := s.books[b.ID]; exists {
			continue
		}
		s.books[b.ID] = b
		s.order = append(s.order, b.ID)
	}
	return s
}

func (s *MemoryStore) LoadBook(_ context.Context, id domain.BookID) (domain.BookState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	book, ok := s.books[id.String()]
	if !ok {
		return domain.BookState{}, bookNotFound(id.String())
	}
	return book, nil
}

func (s *MemoryStore) LoadAllBooks(_ context.Context) ([]domain.BookState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return lo.Map(s.order, func(id string, _ int) domain.BookState {
		return s.books[id]
	}), nil
}

func (s *MemoryStore) PersistNewBook(_ context.Context, book domain.BookState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.books[book.ID]; exists {
		return ErrDuplicateBook
	}
	s.books[book.ID] = book
	s.order = append(s.order, book.ID)
	return nil
}

// PersistUpdatedBook replaces an existing record. Unknown ids are reported
// as not found rather than silently ignored.
func (s *MemoryStore) PersistUpdatedBook(_ context.Context, book domain.BookState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.books[book.ID]; !exists {
		return bookNotFound(book.ID)
	}
	s.books[book.ID] = book
	return nil
}
