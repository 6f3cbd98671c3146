package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (app *application) routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(app.notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedResponse)

	router.HandlerFunc(http.MethodGet, "/healthcheck", app.healthcheckHandler)
	router.Handler(http.MethodGet, "/metrics", app.metrics.Handler())

	router.HandlerFunc(http.MethodGet, "/actors", app.listActorsHandler)
	router.HandlerFunc(http.MethodPost, "/actors", app.createActorHandler)
	router.HandlerFunc(http.MethodGet, "/actors/:id", app.showActorHandler)
	router.HandlerFunc(http.MethodPut, "/actors/:id", app.updateActorHandler)
	router.HandlerFunc(http.MethodDelete, "/actors/:id", app.deleteActorHandler)

	router.HandlerFunc(http.MethodGet, "/movies", app.listMoviesHandler)
	router.HandlerFunc(http.MethodPost, "/movies", app.createMovieHandler)
	router.HandlerFunc(http.MethodGet, "/movies/:id", app.showMovieHandler)
	router.HandlerFunc(http.MethodPut, "/movies/:id", app.updateMovieHandler)
	router.HandlerFunc(http.MethodDelete, "/movies/:id", app.deleteMovieHandler)

	return app.recordMetrics(app.recoverPanic(app.enableCORS(app.rateLimit(router))))
}
