// cmd/api/publishers.go
// HTTP request handlers for the publishers resource. Same shape as the
// authors resource: list all, create with a unique-name constraint.
package main

import (
	"errors"
	"net/http"

	"github.com/mylibhq/mylib/internal/data"
	"github.com/mylibhq/mylib/internal/validator"
)

// listPublishersHandler handles GET /mylib/publishers/.
func (app *applicationDependencies) listPublishersHandler(w http.ResponseWriter, r *http.Request) {
	publishers, err := app.models.Publishers.GetAll()
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, publishers, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// createPublisherHandler handles POST /mylib/publishers/.
func (app *applicationDependencies) createPublisherHandler(w http.ResponseWriter, r *http.Request) {
	var input data.CreatePublisherInput

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

	publisher := &data.Publisher{Name: input.Name}

	err = app.models.Publishers.Insert(publisher)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrDuplicateName):
			app.conflictResponse(w, r, "a publisher with this name already exists")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, publisher, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
