package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/mohafarman/castlist/internal/data"
	"github.com/mohafarman/castlist/internal/validator"
)

type actorInput struct {
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	DateOfBirth data.Date `json:"dateOfBirth"`
}

func (app *application) createActorHandler(w http.ResponseWriter, r *http.Request) {
	var input actorInput

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	actor := &data.Actor{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		DateOfBirth: input.DateOfBirth,
	}

	v := validator.New()
	if data.ValidateActor(v, actor); !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	err = app.models.Actors.Insert(r.Context(), actor)
	if err != nil {
		app.internalErrorResponse(w, r, err, "error creating actor")
		return
	}

	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/actors/%d", actor.ID))

	err = app.writeJSON(w, http.StatusCreated, actor, headers)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) listActorsHandler(w http.ResponseWriter, r *http.Request) {
	actors, err := app.models.Actors.GetAll(r.Context())
	if err != nil {
		app.internalErrorResponse(w, r, err, "error retrieving actors")
		return
	}

	err = app.writeJSON(w, http.StatusOK, actors, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) showActorHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.recordNotFoundResponse(w, r, "actor")
		return
	}

	actor, err := app.models.Actors.Get(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.recordNotFoundResponse(w, r, "actor")
		default:
			app.internalErrorResponse(w, r, err, "error retrieving actor")
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, actor, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// updateActorHandler replaces all three mutable fields and applies the same
// validation as creation.
func (app *application) updateActorHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.recordNotFoundResponse(w, r, "actor")
		return
	}

	var input actorInput

	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	actor := &data.Actor{
		ID:          id,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		DateOfBirth: input.DateOfBirth,
	}

	v := validator.New()
	if data.ValidateActor(v, actor); !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	err = app.models.Actors.Update(r.Context(), actor)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.recordNotFoundResponse(w, r, "actor")
		default:
			app.internalErrorResponse(w, r, err, "error updating actor")
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, actor, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) deleteActorHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.recordNotFoundResponse(w, r, "actor")
		return
	}

	err = app.models.Actors.Delete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.recordNotFoundResponse(w, r, "actor")
		case errors.Is(err, data.ErrActorInUse):
			app.actorInUseResponse(w, r)
		default:
			app.internalErrorResponse(w, r, err, "error deleting actor")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
