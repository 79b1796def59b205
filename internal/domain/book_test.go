package domain

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aoideee/hexbooks/internal/validator"
)

const (
	testAuthor = "Test author"
	testTitle  = "Test title"
	testISBN   = "0123456789"
)

func TestCreateBook(t *testing.T) {
	book, err := CreateBook(NewBookCommand{Author: testAuthor, Title: testTitle, ISBN: testISBN})
	require.NoError(t, err)

	state := book.CurrentState()
	assert.Len(t, state.ID, BookIDSize)
	assert.Equal(t, testAuthor, state.Author)
	assert.Equal(t, testTitle, state.Title)
	assert.Equal(t, testISBN, state.ISBN)
	assert.Equal(t, state.ID, book.ID().String())
}

func TestCreateBook_WithoutISBN(t *testing.T) {
	book, err := CreateBook(NewBookCommand{Author: testAuthor, Title: testTitle})
	require.NoError(t, err)
	assert.Empty(t, book.CurrentState().ISBN)
}

func TestCreateBook_Invalid(t *testing.T) {
	tests := []struct {
		name string
		cmd  NewBookCommand
	}{
		{"title missing", NewBookCommand{Author: testAuthor}},
		{"title blank", NewBookCommand{Author: testAuthor, Title: "   "}},
		{"title too long", NewBookCommand{Author: testAuthor, Title: strings.Repeat("T", BookTitleMaxLength+1)}},
		{"author missing", NewBookCommand{Title: testTitle}},
		{"author too long", NewBookCommand{Author: strings.Repeat("A", BookAuthorMaxLength+1), Title: testTitle}},
		{"isbn too short", NewBookCommand{Author: testAuthor, Title: testTitle, ISBN: "012345678"}},
		{"isbn 11 digits", NewBookCommand{Author: testAuthor, Title: testTitle, ISBN: "01234567890"}},
		{"isbn not numeric", NewBookCommand{Author: testAuthor, Title: testTitle, ISBN: "012345678X"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CreateBook(tt.cmd)
			require.Error(t, err)
			assert.True(t, validator.IsValidationError(err))
		})
	}
}

func TestBoundedStrings(t *testing.T) {
	for n := 1; n <= BookTitleMaxLength; n++ {
		_, err := NewBookTitle(strings.Repeat("t", n))
		require.NoError(t, err, "title of length %d", n)
	}
	for n := 1; n <= BookAuthorMaxLength; n++ {
		_, err := NewBookAuthor(strings.Repeat("a", n))
		require.NoError(t, err, "author of length %d", n)
	}

	_, err := NewBookTitle("")
	assert.True(t, validator.IsValidationError(err))
	_, err = NewBookAuthor("")
	assert.True(t, validator.IsValidationError(err))

	_, err = NewISBN("9780134190440")
	require.NoError(t, err)
}

func TestParseBookID(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		var b strings.Builder
		for j := 0; j < BookIDSize; j++ {
			b.WriteByte(BookIDAlphabet[r.Intn(len(BookIDAlphabet))])
		}
		_, err := ParseBookID(b.String())
		require.NoError(t, err, b.String())
	}

	invalid := []string{
		"",
		"notCorrect",
		"5VVGTSPMKHH3A",   // 13 characters
		"5VVGTSPMKHH3A8B", // 15 characters
		"5vvgtspmkhh3a8",  // lower case
		"5VVGTSPMKHH3A-",
	}
	for _, id := range invalid {
		_, err := ParseBookID(id)
		require.Error(t, err, id)
		assert.True(t, validator.IsValidationError(err), id)
	}
}

func TestNewBookID_IsParseable(t *testing.T) {
	for i := 0; i < 500; i++ {
		id := NewBookID()
		parsed, err := ParseBookID(id.String())
		require.NoError(t, err)
		require.Equal(t, id, parsed)
	}
}

func TestBookFrom_RoundTrip(t *testing.T) {
	states := []BookState{
		{ID: "5VVGTSPMKHH3A8", Author: "Douglas Crockford", Title: "JavaScript: The Good Parts"},
		{ID: "5VVGTSPMKHH3A9", Author: "Joshua Bloch", Title: "Effective Java", ISBN: "9780134685991"},
		{ID: NewBookID().String(), Author: testAuthor, Title: testTitle, ISBN: testISBN},
	}
	for _, s := range states {
		book, err := BookFrom(s)
		require.NoError(t, err)
		assert.Equal(t, s, book.CurrentState())
	}
}

func TestBookFrom_Invalid(t *testing.T) {
	created, err := CreateBook(NewBookCommand{Author: testAuthor, Title: testTitle})
	require.NoError(t, err)
	id := created.CurrentState().ID

	tests := []struct {
		name  string
		state BookState
	}{
		{"id missing", BookState{Author: testAuthor, Title: testTitle}},
		{"id too long", BookState{ID: id + "AB", Author: testAuthor, Title: testTitle}},
		{"id corrupted", BookState{ID: "corruptedId", Author: testAuthor, Title: testTitle}},
		{"title missing", BookState{ID: id, Author: testAuthor}},
		{"author missing", BookState{ID: id, Title: testTitle}},
		{"isbn malformed", BookState{ID: id, Author: testAuthor, Title: testTitle, ISBN: "abc"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BookFrom(tt.state)
			require.Error(t, err)
			assert.True(t, validator.IsValidationError(err))
		})
	}
}

func TestUpdateBookCommand_State(t *testing.T) {
	cmd := UpdateBookCommand{ID: "5VVGTSPMKHH3A8", Author: testAuthor, Title: testTitle, ISBN: testISBN}
	assert.Equal(t, BookState{ID: cmd.ID, Author: testAuthor, Title: testTitle, ISBN: testISBN}, cmd.State())
}
