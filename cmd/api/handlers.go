// cmd/api/handlers.go
// This file contains the HTTP handlers for the books resource. Each handler
// calls one book use case and turns its result into a response; failures go
// through handleError.
package main

import (
	"net/http"

	"github.com/aoideee/hexbooks/internal/domain"
)

// listBooksHandler handles GET /api/books.
// It responds with every book as a JSON array.
func (app *applicationDependencies) listBooksHandler(w http.ResponseWriter, r *http.Request) {
	books, err := app.books.GetAllBooks(r.Context())
	if err != nil {
		app.handleError(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, books, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// showBookHandler handles GET /api/books/:id.
// A malformed id is rejected with 400 before any lookup; an unknown id is 404.
func (app *applicationDependencies) showBookHandler(w http.ResponseWriter, r *http.Request) {
	book, err := app.books.GetBook(r.Context(), app.readIDParam(r))
	if err != nil {
		app.handleError(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, book, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// createBookHandler handles POST /api/books.
// It responds 201 Created with no body; the Location header points at the new book.
func (app *applicationDependencies) createBookHandler(w http.ResponseWriter, r *http.Request) {
	var input domain.NewBookCommand
	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	book, err := app.books.AddNewBook(r.Context(), input)
	if err != nil {
		app.handleError(w, r, err)
		return
	}

	w.Header().Set("Location", "/api/books/"+book.ID)
	w.WriteHeader(http.StatusCreated)
}

// updateBookHandler handles PUT /api/books/:id.
// The body is a full replacement; the id in the path wins over any id in the body.
func (app *applicationDependencies) updateBookHandler(w http.ResponseWriter, r *http.Request) {
	var input domain.UpdateBookCommand
	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	input.ID = app.readIDParam(r)

	err = app.books.UpdateBook(r.Context(), input)
	if err != nil {
		app.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
