// cmd/api/handlers.go
// This file contains all HTTP request handlers for the books resource.
// Each handler is a method on *applicationDependencies so it has access
// to the logger and database models.
package main

import (
	"errors"
	"net/http"

	"github.com/mylibhq/mylib/internal/data"
	"github.com/mylibhq/mylib/internal/validator"
)

// createBookHandler handles POST /mylib/books/.
// It reads a JSON body containing the new book's details, inserts the book
// and its author associations into the database, and responds with the
// created book including its resolved author objects.
func (app *applicationDependencies) createBookHandler(w http.ResponseWriter, r *http.Request) {
	var input data.CreateBookInput

	// Decode the incoming JSON body into our input struct using the safe readJSON helper.
	// readJSON enforces a 1MB limit, rejects unknown fields, and ensures a single value.
	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	v.Check(input.Title != "", "title", "must be provided")
	if !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	// The publisher reference is stored as-is; existence is left to the
	// storage engine's foreign key, not checked here.
	book := &data.Book{
		Title:       input.Title,
		PublisherID: input.PublisherID,
	}

	// Insert resolves the requested author ids inside the same transaction;
	// ids with no matching author row are dropped, not errored.
	err = app.models.Books.Insert(book, input.AuthorIDs)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	// Fire-and-forget notification about the new book. The response never
	// waits on it and its failure is invisible to the client.
	title := book.Title
	app.background(func() {
		app.logger.Info("new book added", "title", title)
	})

	err = app.writeJSON(w, http.StatusOK, book, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// showBookHandler handles GET /mylib/books/:book_id.
// It fetches the book with its current author list and publisher reference.
// Responds 404 if no book with that ID exists.
func (app *applicationDependencies) showBookHandler(w http.ResponseWriter, r *http.Request) {
	// readIDParam extracts and validates the :book_id URL parameter.
	id, err := app.readIDParam(r, "book_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	book, err := app.models.Books.Get(id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, book, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// listBooksHandler handles GET /mylib/books/.
// It fetches every book from the database, each with its resolved author
// list, and returns them as a JSON array. No ordering is guaranteed.
func (app *applicationDependencies) listBooksHandler(w http.ResponseWriter, r *http.Request) {
	books, err := app.models.Books.GetAll()
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, books, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// updateBookHandler handles PATCH /mylib/books/:book_id.
// Only the fields present in the request body are applied: an absent title or
// publisher_id leaves the stored value unchanged, an explicit null
// publisher_id clears the reference, and a present (possibly empty)
// author_ids list fully replaces the author set. Responds 404 if the book
// does not exist.
func (app *applicationDependencies) updateBookHandler(w http.ResponseWriter, r *http.Request) {
	// Parse and validate the :book_id URL parameter.
	id, err := app.readIDParam(r, "book_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	// Decode the partial update fields from the request body.
	var input data.UpdateBookInput
	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	if input.Title != nil {
		v.Check(*input.Title != "", "title", "must not be empty")
	}
	if input.PublisherID.Set && !input.PublisherID.Null {
		// Presence semantics: a supplied id must be valid, it is never
		// silently treated as "no change". Use null to clear the reference.
		v.Check(input.PublisherID.Value >= 1, "publisher_id", "must be a positive integer")
	}
	if !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	// Fetch the current state of the book we intend to update.
	book, err := app.models.Books.Get(id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	// Apply only the fields that were actually provided in the request body.
	if input.Title != nil {
		book.Title = *input.Title
	}
	if input.PublisherID.Set {
		if input.PublisherID.Null {
			book.PublisherID = nil
		} else {
			book.PublisherID = &input.PublisherID.Value
		}
	}

	// A nil AuthorIDs leaves the author set untouched; a present list is
	// re-resolved and fully replaces it inside the same transaction.
	err = app.models.Books.Update(book, input.AuthorIDs)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	// Respond with the updated book.
	err = app.writeJSON(w, http.StatusOK, book, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// deleteBookHandler handles DELETE /mylib/books/:book_id.
// It removes the book row together with its join-table entries and responds
// with a confirmation message. Responds 404 if no book with that ID exists.
func (app *applicationDependencies) deleteBookHandler(w http.ResponseWriter, r *http.Request) {
	// Parse and validate the :book_id URL parameter.
	id, err := app.readIDParam(r, "book_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	// Delete the book and its author associations from the database.
	err = app.models.Books.Delete(id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	// Respond with a success message.
	err = app.writeJSON(w, http.StatusOK, envelope{"message": "Book deleted"}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
