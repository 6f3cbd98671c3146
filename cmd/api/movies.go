package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/mohafarman/castlist/internal/data"
	"github.com/mohafarman/castlist/internal/validator"
)

type movieInput struct {
	Title        string    `json:"title"`
	CreationDate data.Date `json:"creationDate"`
	ActorID      int64     `json:"actorId"`
}

func (app *application) createMovieHandler(w http.ResponseWriter, r *http.Request) {
	var input movieInput

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	movie := &data.Movie{
		Title:        input.Title,
		CreationDate: input.CreationDate,
		ActorID:      input.ActorID,
	}

	v := validator.New()
	if data.ValidateMovie(v, movie); !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	err = app.models.Movies.Insert(r.Context(), movie)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrActorNotFound):
			app.recordNotFoundResponse(w, r, "actor")
		default:
			app.internalErrorResponse(w, r, err, "error creating movie")
		}
		return
	}

	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/movies/%d", movie.ID))

	err = app.writeJSON(w, http.StatusCreated, movie, headers)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) listMoviesHandler(w http.ResponseWriter, r *http.Request) {
	movies, err := app.models.Movies.GetAll(r.Context())
	if err != nil {
		app.internalErrorResponse(w, r, err, "error retrieving movies")
		return
	}

	err = app.writeJSON(w, http.StatusOK, movies, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) showMovieHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.recordNotFoundResponse(w, r, "movie")
		return
	}

	movie, err := app.models.Movies.Get(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.recordNotFoundResponse(w, r, "movie")
		default:
			app.internalErrorResponse(w, r, err, "error retrieving movie")
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, movie, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) updateMovieHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.recordNotFoundResponse(w, r, "movie")
		return
	}

	var input movieInput

	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	movie := &data.Movie{
		ID:           id,
		Title:        input.Title,
		CreationDate: input.CreationDate,
		ActorID:      input.ActorID,
	}

	v := validator.New()
	if data.ValidateMovie(v, movie); !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	err = app.models.Movies.Update(r.Context(), movie)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.recordNotFoundResponse(w, r, "movie")
		case errors.Is(err, data.ErrActorNotFound):
			app.recordNotFoundResponse(w, r, "actor")
		default:
			app.internalErrorResponse(w, r, err, "error updating movie")
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, movie, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) deleteMovieHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.recordNotFoundResponse(w, r, "movie")
		return
	}

	err = app.models.Movies.Delete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.recordNotFoundResponse(w, r, "movie")
		default:
			app.internalErrorResponse(w, r, err, "error deleting movie")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
