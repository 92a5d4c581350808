package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/hafizmfadli/movie-catalog/internal/data"
	"github.com/hafizmfadli/movie-catalog/internal/validator"
)

// listMoviesHandler for the "GET /movies/" endpoint. The director_id and
// genre_id query parameters filter the list; when both are given a movie must
// match both.
func (app *application) listMoviesHandler(w http.ResponseWriter, r *http.Request) {
	v := validator.New()
	qs := r.URL.Query()

	filters := data.MovieFilters{
		DirectorID: app.readInt64(qs, "director_id", v),
		GenreID:    app.readInt64(qs, "genre_id", v),
	}

	if data.ValidateMovieFilters(v, filters); !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	movies, err := app.models.Movies.GetAll(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, movies, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// createMovieHandler for the "POST /movies/" endpoint.
func (app *application) createMovieHandler(w http.ResponseWriter, r *http.Request) {
	// anonymous struct to hold information that we expect to be in the HTTP request body.
	var input struct {
		Title       string  `json:"title"`
		Description string  `json:"description"`
		Trailer     string  `json:"trailer"`
		Year        int32   `json:"year"`
		Rating      float64 `json:"rating"`
		GenreID     *int64  `json:"genre_id"`
		DirectorID  *int64  `json:"director_id"`
	}

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	movie := &data.Movie{
		Title:       input.Title,
		Description: input.Description,
		Trailer:     input.Trailer,
		Year:        input.Year,
		Rating:      input.Rating,
		GenreID:     input.GenreID,
		DirectorID:  input.DirectorID,
	}

	v := validator.New()

	if data.ValidateMovie(v, movie); !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	err = app.models.Movies.Insert(r.Context(), movie)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrInvalidReference):
			app.invalidReferenceResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/movies/%d", movie.ID))

	app.writeText(w, http.StatusCreated, "Movie created", headers)
}

// showMovieHandler for the "GET /movies/:id" endpoint.
func (app *application) showMovieHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		switch {
		case errors.Is(err, errIDOutOfRange):
			app.errorResponse(w, r, http.StatusNotFound, data.ErrRecordNotFound.Error())
		default:
			app.notFoundResponse(w, r)
		}
		return
	}

	movie, err := app.models.Movies.Get(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.errorResponse(w, r, http.StatusNotFound, err.Error())
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, movie, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// updateMovieHandler for the "PUT /movies/:id" endpoint. Only the fields of
// data.MovieUpdate may be changed; anything else in the body is a bad request.
func (app *application) updateMovieHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		switch {
		case errors.Is(err, errIDOutOfRange):
			app.notUpdatedResponse(w, r)
		default:
			app.notFoundResponse(w, r)
		}
		return
	}

	var input data.MovieUpdate

	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()

	if data.ValidateMovieUpdate(v, input); !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	err = app.models.Movies.Update(r.Context(), id, input)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrNotUpdated):
			app.notUpdatedResponse(w, r)
		case errors.Is(err, data.ErrInvalidReference):
			app.invalidReferenceResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// deleteMovieHandler for the "DELETE /movies/:id" endpoint.
func (app *application) deleteMovieHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.resourceNotFoundResponse(w, r, "Movie")
		return
	}

	err = app.models.Movies.Delete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.resourceNotFoundResponse(w, r, "Movie")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
