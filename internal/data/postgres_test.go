package data

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"github.com/aoideee/hexbooks/internal/application"
	"github.com/aoideee/hexbooks/internal/domain"
)

func newPostgresMock(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return NewPostgresStore(db, "books"), mock
}

func mustID(t *testing.T, id string) domain.BookID {
	t.Helper()
	bookID, err := domain.ParseBookID(id)
	require.NoError(t, err)
	return bookID
}

func TestPostgresStore_EnsureSchema(t *testing.T) {
	store, mock := newPostgresMock(t)
	mock.ExpectExec(regexp.QuoteMeta(`CREATE TABLE IF NOT EXISTS "books"`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, store.EnsureSchema(context.Background()))
}

func TestPostgresStore_LoadBook(t *testing.T) {
	store, mock := newPostgresMock(t)
	rows := sqlmock.NewRows([]string{"id", "author", "title", "isbn"}).
		AddRow("5VVGTSPMKHH3A9", "Joshua Bloch", "Effective Java", nil)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, author, title, isbn`)).
		WithArgs("5VVGTSPMKHH3A9").
		WillReturnRows(rows)

	book, err := store.LoadBook(context.Background(), mustID(t, "5VVGTSPMKHH3A9"))
	require.NoError(t, err)
	require.Equal(t, domain.BookState{ID: "5VVGTSPMKHH3A9", Author: "Joshua Bloch", Title: "Effective Java"}, book)
}

func TestPostgresStore_LoadBook_Not_Found(t *testing.T) {
	store, mock := newPostgresMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, author, title, isbn`)).
		WithArgs("5VVGTSPMKHH3A9").
		WillReturnError(sql.ErrNoRows)

	_, err := store.LoadBook(context.Background(), mustID(t, "5VVGTSPMKHH3A9"))
	require.True(t, application.IsObjectNotFound(err))
}

func TestPostgresStore_LoadAllBooks(t *testing.T) {
	store, mock := newPostgresMock(t)
	rows := sqlmock.NewRows([]string{"id", "author", "title", "isbn"}).
		AddRow("5VVGTSPMKHH3A0", "Robert C. Martin", "Clean Code", nil).
		AddRow("5VVGTSPMKHH3A1", "Eric Evans", "Domain-Driven Design", "0321125215")
	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY id ASC`)).WillReturnRows(rows)

	books, err := store.LoadAllBooks(context.Background())
	require.NoError(t, err)
	require.Equal(t, []domain.BookState{
		{ID: "5VVGTSPMKHH3A0", Author: "Robert C. Martin", Title: "Clean Code"},
		{ID: "5VVGTSPMKHH3A1", Author: "Eric Evans", Title: "Domain-Driven Design", ISBN: "0321125215"},
	}, books)
}

func TestPostgresStore_LoadAllBooks_Query_Error(t *testing.T) {
	store, mock := newPostgresMock(t)
	boom := errors.New("connection refused")
	mock.ExpectQuery(regexp.QuoteMeta(`FROM "books"`)).WillReturnError(boom)

	_, err := store.LoadAllBooks(context.Background())
	require.ErrorIs(t, err, boom)
}

func TestPostgresStore_PersistNewBook(t *testing.T) {
	store, mock := newPostgresMock(t)
	book := domain.BookState{ID: "5VVGTSPMKHH3A8", Author: "Douglas Crockford", Title: "JavaScript: The Good Parts", ISBN: "0596517742"}
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "books" (id, author, title, isbn)`)).
		WithArgs(book.ID, book.Author, book.Title, "0596517742").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.PersistNewBook(context.Background(), book))
}

func TestPostgresStore_PersistNewBook_Duplicate(t *testing.T) {
	store, mock := newPostgresMock(t)
	book := domain.BookState{ID: "5VVGTSPMKHH3A8", Author: "Douglas Crockford", Title: "JavaScript: The Good Parts"}
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "books"`)).
		WillReturnError(&pq.Error{Code: uniqueViolation})

	err := store.PersistNewBook(context.Background(), book)
	require.ErrorIs(t, err, ErrDuplicateBook)
}

func TestPostgresStore_PersistUpdatedBook(t *testing.T) {
	store, mock := newPostgresMock(t)
	book := domain.BookState{ID: "5VVGTSPMKHH3A8", Author: "Douglas Crockford", Title: "How JavaScript Works"}
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "books"`)).
		WithArgs(book.Author, book.Title, nil, book.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.PersistUpdatedBook(context.Background(), book))
}

func TestPostgresStore_PersistUpdatedBook_Not_Found(t *testing.T) {
	store, mock := newPostgresMock(t)
	book := domain.BookState{ID: "5VVGTSPMKHH3A8", Author: "Douglas Crockford", Title: "How JavaScript Works"}
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "books"`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := store.PersistUpdatedBook(context.Background(), book)
	require.True(t, application.IsObjectNotFound(err))
}
