// cmd/api/routes.go
package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// routes registers all HTTP endpoints and returns the configured router wrapped
// in the middleware chain.
//
// Middleware chain (outermost → innermost):
//
//	recoverPanic → instrument → logRequest → enableCORS → rateLimit → timeout → router
//
// Current endpoints:
//
//	GET    /api/books       – list all books
//	GET    /api/books/:id   – retrieve a single book by ID
//	POST   /api/books       – create a new book
//	PUT    /api/books/:id   – replace an existing book
//	GET    /metrics         – Prometheus metrics
func (app *applicationDependencies) routes() http.Handler {
	router := httprouter.New()

	// Override the default httprouter error handlers to return JSON responses.
	router.NotFound = http.HandlerFunc(app.notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedResponse)

	// Book routes
	router.HandlerFunc(http.MethodGet, "/api/books", app.listBooksHandler)
	router.HandlerFunc(http.MethodGet, "/api/books/:id", app.showBookHandler)
	router.HandlerFunc(http.MethodPost, "/api/books", app.createBookHandler)
	router.HandlerFunc(http.MethodPut, "/api/books/:id", app.updateBookHandler)

	router.Handler(http.MethodGet, "/metrics", app.metrics.handler())

	return app.recoverPanic(app.instrument(app.logRequest(app.enableCORS(app.rateLimit(app.timeout(router))))))
}
