package data

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/aoideee/hexbooks/internal/domain"
)

// BadgerStore keeps books as JSON values in an embedded Badger database,
// under keys of the form "<table>:<id>".
type BadgerStore struct {
	db     *badger.DB
	prefix []byte
}

func NewBadgerStore(db *badger.DB, table string) *BadgerStore {
	return &BadgerStore{db: db, prefix: []byte(table + ":")}
}

func (s *BadgerStore) key(id string) []byte {
	return append(append([]byte{}, s.prefix...), id...)
}

func (s *BadgerStore) LoadBook(_ context.Context, id domain.BookID) (domain.BookState, error) {
	var book domain.BookState

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(s.key(id.String()))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &book)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return domain.BookState{}, bookNotFound(id.String())
	}
	if err != nil {
		return domain.BookState{}, fmt.Errorf("load book %s: %w", id, err)
	}
	return book, nil
}

func (s *BadgerStore) LoadAllBooks(_ context.Context) ([]domain.BookState, error) {
	books := []domain.BookState{}

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = s.prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var book domain.BookState
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &book)
			})
			if err != nil {
				return err
			}
			books = append(books, book)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load books: %w", err)
	}
	return books, nil
}

func (s *BadgerStore) PersistNewBook(_ context.Context, book domain.BookState) error {
	return s.write(book, false)
}

func (s *BadgerStore) PersistUpdatedBook(_ context.Context, book domain.BookState) error {
	return s.write(book, true)
}

// write stores book in a single transaction. When mustExist is set the key
// has to be present already, otherwise it has to be absent.
func (s *BadgerStore) write(book domain.BookState, mustExist bool) error {
	data, err := json.Marshal(book)
	if err != nil {
		return fmt.Errorf("marshal book %s: %w", book.ID, err)
	}

	key := s.key(book.ID)
	return s.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(key)
		switch {
		case err == nil && !mustExist:
			return ErrDuplicateBook
		case errors.Is(err, badger.ErrKeyNotFound) && mustExist:
			return bookNotFound(book.ID)
		case err != nil && !errors.Is(err, badger.ErrKeyNotFound):
			return err
		}
		return txn.Set(key, data)
	})
}
