// cmd/api/routes.go
package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// routes registers all HTTP endpoints and returns the configured router wrapped
// in the recoverPanic and rateLimit middlewares.
//
// Middleware chain (outermost → innermost):
//
//	recoverPanic → rateLimit → router
//
// Current endpoints:
//
//	POST   /mylib/books/              – create a new book
//	GET    /mylib/books/:book_id      – retrieve a single book by ID
//	GET    /mylib/books/              – list all books
//	PATCH  /mylib/books/:book_id      – partially update an existing book
//	DELETE /mylib/books/:book_id      – delete a book by ID
//	GET    /mylib/authors/            – list all authors
//	POST   /mylib/authors/            – create a new author
//	GET    /mylib/publishers/         – list all publishers
//	POST   /mylib/publishers/         – create a new publisher
//	GET    /ws/chat/:client_id        – WebSocket echo chat
func (app *applicationDependencies) routes() http.Handler {
	router := httprouter.New()

	// Override the default httprouter error handlers to return JSON responses.
	router.NotFound = http.HandlerFunc(app.notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedResponse)

	// Book CRUD routes. Collection paths keep their trailing slash; the
	// router redirects the slashless form.
	router.HandlerFunc(http.MethodPost,   "/mylib/books/",         app.createBookHandler)
	router.HandlerFunc(http.MethodGet,    "/mylib/books/:book_id", app.showBookHandler)
	router.HandlerFunc(http.MethodGet,    "/mylib/books/",         app.listBooksHandler)
	router.HandlerFunc(http.MethodPatch,  "/mylib/books/:book_id", app.updateBookHandler)
	router.HandlerFunc(http.MethodDelete, "/mylib/books/:book_id", app.deleteBookHandler)

	// Author and publisher routes
	router.HandlerFunc(http.MethodGet,  "/mylib/authors/",    app.listAuthorsHandler)
	router.HandlerFunc(http.MethodPost, "/mylib/authors/",    app.createAuthorHandler)
	router.HandlerFunc(http.MethodGet,  "/mylib/publishers/", app.listPublishersHandler)
	router.HandlerFunc(http.MethodPost, "/mylib/publishers/", app.createPublisherHandler)

	// WebSocket chat endpoint
	router.HandlerFunc(http.MethodGet, "/ws/chat/:client_id", app.chatHandler)

	// Wrap with middleware: recoverPanic is outermost so it catches panics
	// from rateLimit and router alike.
	return app.recoverPanic(app.rateLimit(router))
}
