// cmd/api/authors.go
// HTTP request handlers for the authors resource.
package main

import (
	"errors"
	"net/http"

	"github.com/mylibhq/mylib/internal/data"
	"github.com/mylibhq/mylib/internal/validator"
)

// listAuthorsHandler handles GET /mylib/authors/.
// It returns every author row as a JSON array, with no filtering or pagination.
func (app *applicationDependencies) listAuthorsHandler(w http.ResponseWriter, r *http.Request) {
	authors, err := app.models.Authors.GetAll()
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, authors, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// createAuthorHandler handles POST /mylib/authors/.
// Author names are unique; a duplicate name is reported as a 409 conflict
// rather than a server fault.
func (app *applicationDependencies) createAuthorHandler(w http.ResponseWriter, r *http.Request) {
	var input data.CreateAuthorInput

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	v.Check(input.Name != "", "name", "must be provided")
	if !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	author := &data.Author{Name: input.Name}

	err = app.models.Authors.Insert(author)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrDuplicateName):
			app.conflictResponse(w, r, "an author with this name already exists")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, author, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
