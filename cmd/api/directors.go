package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/hafizmfadli/movie-catalog/internal/data"
	"github.com/hafizmfadli/movie-catalog/internal/validator"
)

func (app *application) listDirectorsHandler(w http.ResponseWriter, r *http.Request) {
	directors, err := app.models.Directors.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, directors, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) createDirectorHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name string `json:"name"`
	}

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	director := &data.Director{Name: input.Name}

	v := validator.New()

	if data.ValidateDirector(v, director); !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	err = app.models.Directors.Insert(r.Context(), director)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/directors/%d", director.ID))

	app.writeText(w, http.StatusCreated, "Director created", headers)
}

func (app *application) showDirectorHandler(w http.ResponseWriter, r *http.Request) {
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

	director, err := app.models.Directors.Get(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.errorResponse(w, r, http.StatusNotFound, err.Error())
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, director, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) updateDirectorHandler(w http.ResponseWriter, r *http.Request) {
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

	var input data.DirectorUpdate

	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()

	if data.ValidateDirectorUpdate(v, input); !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	err = app.models.Directors.Update(r.Context(), id, input)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrNotUpdated):
			app.notUpdatedResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// deleteDirectorHandler removes a director; its movies keep existing with a
// null director_id.
func (app *application) deleteDirectorHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.resourceNotFoundResponse(w, r, "Director")
		return
	}

	err = app.models.Directors.Delete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.resourceNotFoundResponse(w, r, "Director")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
