package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/hafizmfadli/movie-catalog/internal/validator"
	"github.com/julienschmidt/httprouter"
)

// envelope wraps JSON objects that aren't resources themselves, such as the
// healthcheck response or validation errors.
type envelope map[string]interface{}

// errIDOutOfRange is returned by readIDParam for an all-digit id that can't
// belong to any row: zero, or too large for an int64.
var errIDOutOfRange = errors.New("id parameter out of range")

// readIDParam retrieves the "id" URL parameter from the current request context,
// then convert it to an integer and return it. If the operation isn't successful,
// return 0 and an error.
func (app *application) readIDParam(r *http.Request) (int64, error) {
	params := httprouter.ParamsFromContext(r.Context())

	s := params.ByName("id")
	if s == "" || strings.Trim(s, "0123456789") != "" {
		return 0, errors.New("invalid id parameter")
	}

	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id < 1 {
		return 0, errIDOutOfRange
	}

	return id, nil
}

// writeJSON encodes data as JSON and sends it with the given status code and headers.
func (app *application) writeJSON(w http.ResponseWriter, status int, data interface{}, headers http.Header) error {
	js, err := json.Marshal(data)
	if err != nil {
		return err
	}

	// Append a newline to make it easier to view in terminal applications.
	js = append(js, '\n')

	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(js)

	return nil
}

// writeText sends a plain-text message with the given status code and headers.
func (app *application) writeText(w http.ResponseWriter, status int, message string, headers http.Header) {
	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	io.WriteString(w, message+"\n")
}

// readJSON decodes a single JSON value from the request body into dst. Fields
// that dst doesn't declare are rejected.
func (app *application) readJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	// Limit the size of the request body to 1MB.
	maxBytes := 1_048_576
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError
		var invalidUnmarshalError *json.InvalidUnmarshalError
		var maxBytesError *http.MaxBytesError

		switch {
		case errors.As(err, &syntaxError):
			return fmt.Errorf("body contains badly-formed JSON (at character %d)", syntaxError.Offset)

		case errors.Is(err, io.ErrUnexpectedEOF):
			return errors.New("body contains badly-formed JSON")

		case errors.As(err, &unmarshalTypeError):
			if unmarshalTypeError.Field != "" {
				return fmt.Errorf("body contains incorrect JSON type for field %q", unmarshalTypeError.Field)
			}
			return fmt.Errorf("body contains incorrect JSON type (at character %d)", unmarshalTypeError.Offset)

		case errors.Is(err, io.EOF):
			return errors.New("body must not be empty")

		// There is no distinct error type for unknown fields; the decoder reports
		// them as `json: unknown field "<name>"`.
		case strings.HasPrefix(err.Error(), "json: unknown field "):
			fieldName := strings.TrimPrefix(err.Error(), "json: unknown field ")
			return fmt.Errorf("body contains unknown key %s", fieldName)

		case errors.As(err, &maxBytesError):
			return fmt.Errorf("body must not be larger than %d bytes", maxBytesError.Limit)

		// A non-nil pointer must be passed to Decode; anything else is a bug here.
		case errors.As(err, &invalidUnmarshalError):
			panic(err)

		default:
			return err
		}
	}

	err = dec.Decode(&struct{}{})
	if err != io.EOF {
		return errors.New("body must only contain a single JSON value")
	}

	return nil
}

// readInt64 reads an optional integer query string parameter. A missing key
// yields nil; an empty or malformed value is recorded on v.
func (app *application) readInt64(qs url.Values, key string, v *validator.Validator) *int64 {
	if !qs.Has(key) {
		return nil
	}

	s := qs.Get(key)

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		v.AddError(key, "must be an integer value")
		return nil
	}

	return &n
}
