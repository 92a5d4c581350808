package main

import (
	"fmt"
	"net/http"
)

// logError is generic helper for logging error message.
func (app *application) logError(r *http.Request, err error) {
	app.logger.PrintError(err, map[string]string{
		"request_method": r.Method,
		"request_url":    r.URL.String(),
	})
}

// errorResponse is generic helper for sending a plain-text error message
func (app *application) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	app.writeText(w, status, message, nil)
}

// serverErrorResponse will be used to send a 500 Internal Server Error status code
func (app *application) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)

	app.errorResponse(w, r, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}

// notFoundResponse will be used to send a 404 Not Found status code
func (app *application) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusNotFound, http.StatusText(http.StatusNotFound))
}

// resourceNotFoundResponse sends a 404 naming the missing resource, e.g. "Movie not found".
func (app *application) resourceNotFoundResponse(w http.ResponseWriter, r *http.Request, resource string) {
	app.errorResponse(w, r, http.StatusNotFound, fmt.Sprintf("%s not found", resource))
}

// methodNotAllowedResponse will be used to send a 405 Method Not Allowed status code
func (app *application) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
}

// badRequestResponse will be used to send a 400 Bad Request status code
func (app *application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

// notUpdatedResponse is the 400 sent when an update didn't match exactly one row.
func (app *application) notUpdatedResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusBadRequest, "Not updated")
}

// failedValidationResponse will be used to send a 422 Unprocessable Entity status code
// with the field errors as a JSON object.
func (app *application) failedValidationResponse(w http.ResponseWriter, r *http.Request, errors map[string]string) {
	err := app.writeJSON(w, http.StatusUnprocessableEntity, envelope{"error": errors}, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

// invalidReferenceResponse is the 422 sent when director_id or genre_id points
// at a row that doesn't exist.
func (app *application) invalidReferenceResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusUnprocessableEntity, "director_id or genre_id refers to a record that does not exist")
}

// rateLimitExceededResponse will be used to send a 429 Too Many Requests status code
func (app *application) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusTooManyRequests, http.StatusText(http.StatusTooManyRequests))
}
