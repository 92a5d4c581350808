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

	router.HandlerFunc(http.MethodGet, "/movies/", app.listMoviesHandler)
	router.HandlerFunc(http.MethodPost, "/movies/", app.createMovieHandler)
	router.HandlerFunc(http.MethodGet, "/movies/:id", app.showMovieHandler)
	router.HandlerFunc(http.MethodPut, "/movies/:id", app.updateMovieHandler)
	router.HandlerFunc(http.MethodDelete, "/movies/:id", app.deleteMovieHandler)

	router.HandlerFunc(http.MethodGet, "/directors/", app.listDirectorsHandler)
	router.HandlerFunc(http.MethodPost, "/directors/", app.createDirectorHandler)
	router.HandlerFunc(http.MethodGet, "/directors/:id", app.showDirectorHandler)
	router.HandlerFunc(http.MethodPut, "/directors/:id", app.updateDirectorHandler)
	router.HandlerFunc(http.MethodDelete, "/directors/:id", app.deleteDirectorHandler)

	router.HandlerFunc(http.MethodGet, "/genres/", app.listGenresHandler)
	router.HandlerFunc(http.MethodPost, "/genres/", app.createGenreHandler)
	router.HandlerFunc(http.MethodGet, "/genres/:id", app.showGenreHandler)
	router.HandlerFunc(http.MethodPut, "/genres/:id", app.updateGenreHandler)
	router.HandlerFunc(http.MethodDelete, "/genres/:id", app.deleteGenreHandler)

	return app.recoverPanic(app.logRequest(app.instrument(app.rateLimitIP(router))))
}
