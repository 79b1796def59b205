package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/aoideee/hexbooks/internal/domain"
)

// uniqueViolation is the PostgreSQL SQLSTATE for a duplicate key.
const uniqueViolation = "23505"

// PostgresStore wraps a *sql.DB connection pool and stores books in a single table.
type PostgresStore struct {
	DB    *sql.DB // Shared database connection pool
	table string  // Quoted table identifier, safe to interpolate
}

// NewPostgresStore returns a store backed by table. The name is quoted with
// pq.QuoteIdentifier, so any string is safe to pass.
func NewPostgresStore(db *sql.DB, table string) *PostgresStore {
	return &PostgresStore{DB: db, table: pq.QuoteIdentifier(table)}
}

// EnsureSchema creates the books table when it does not exist yet.
func (m *PostgresStore) EnsureSchema(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id     CHAR(14) PRIMARY KEY,
			author TEXT NOT NULL,
			title  TEXT NOT NULL,
			isbn   TEXT
		)`, m.table)

	if _, err := m.DB.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("create table %s: %w", m.table, err)
	}
	return nil
}

// LoadBook retrieves a single book by its primary key.
func (m *PostgresStore) LoadBook(ctx context.Context, id domain.BookID) (domain.BookState, error) {
	query := fmt.Sprintf(`
		SELECT id, author, title, isbn
		FROM %s
		WHERE id = $1`, m.table)

	book, err := scanBook(m.DB.QueryRowContext(ctx, query, id.String()))
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return domain.BookState{}, bookNotFound(id.String())
		default:
			return domain.BookState{}, err
		}
	}
	return book, nil
}

// LoadAllBooks retrieves every book ordered by id.
func (m *PostgresStore) LoadAllBooks(ctx context.Context) ([]domain.BookState, error) {
	query := fmt.Sprintf(`
		SELECT id, author, title, isbn
		FROM %s
		ORDER BY id ASC`, m.table)

	rows, err := m.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	books := []domain.BookState{}
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, book)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return books, nil
}

// PersistNewBook inserts a new row. A duplicate id yields ErrDuplicateBook.
func (m *PostgresStore) PersistNewBook(ctx context.Context, book domain.BookState) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, author, title, isbn)
		VALUES ($1, $2, $3, $4)`, m.table)

	_, err := m.DB.ExecContext(ctx, query, book.ID, book.Author, book.Title, nullString(book.ISBN))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return ErrDuplicateBook
		}
		return err
	}
	return nil
}

// PersistUpdatedBook overwrites every column of an existing row.
func (m *PostgresStore) PersistUpdatedBook(ctx context.Context, book domain.BookState) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET author = $1, title = $2, isbn = $3
		WHERE id = $4`, m.table)

	result, err := m.DB.ExecContext(ctx, query, book.Author, book.Title, nullString(book.ISBN), book.ID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return bookNotFound(book.ID)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBook(row rowScanner) (domain.BookState, error) {
	var (
		book domain.BookState
		isbn sql.NullString
	)
	if err := row.Scan(&book.ID, &book.Author, &book.Title, &isbn); err != nil {
		return domain.BookState{}, err
	}
	book.ISBN = isbn.String
	return book, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
