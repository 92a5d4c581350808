package main

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The director and genre resources behave identically, so the same cases run
// against both.
func TestNamedResources(t *testing.T) {
	resources := []struct {
		path string
		name string
	}{
		{"/directors/", "Director"},
		{"/genres/", "Genre"},
	}

	for _, res := range resources {
		t.Run(res.name, func(t *testing.T) {
			app := newTestApplication(t)
			ts := newTestServer(t, app.routes())

			rs := ts.do(t, http.MethodGet, res.path, "")
			require.Equal(t, http.StatusOK, rs.status)
			assert.Equal(t, "[]", rs.body)

			rs = ts.do(t, http.MethodPost, res.path, `{"name": "First"}`)
			require.Equal(t, http.StatusCreated, rs.status)
			assert.Equal(t, res.name+" created", rs.body)
			assert.Equal(t, res.path+"1", rs.header.Get("Location"))

			require.Equal(t, http.StatusCreated, ts.do(t, http.MethodPost, res.path, `{"name": "Second"}`).status)

			rs = ts.do(t, http.MethodGet, res.path, "")
			require.Equal(t, http.StatusOK, rs.status)
			assert.JSONEq(t, `[{"id": 1, "name": "First"}, {"id": 2, "name": "Second"}]`, rs.body)

			rs = ts.do(t, http.MethodGet, res.path+"1", "")
			require.Equal(t, http.StatusOK, rs.status)
			assert.JSONEq(t, `{"id": 1, "name": "First"}`, rs.body)

			rs = ts.do(t, http.MethodGet, res.path+"3", "")
			assert.Equal(t, http.StatusNotFound, rs.status)

			rs = ts.do(t, http.MethodPut, res.path+"1", `{"name": "Renamed"}`)
			require.Equal(t, http.StatusNoContent, rs.status)
			rs = ts.do(t, http.MethodGet, res.path+"1", "")
			assert.JSONEq(t, `{"id": 1, "name": "Renamed"}`, rs.body)

			rs = ts.do(t, http.MethodPut, res.path+"3", `{"name": "Nobody"}`)
			assert.Equal(t, http.StatusBadRequest, rs.status)
			assert.Equal(t, "Not updated", rs.body)

			rs = ts.do(t, http.MethodPut, res.path+"0", `{"name": "Nobody"}`)
			assert.Equal(t, http.StatusBadRequest, rs.status)
			assert.Equal(t, "Not updated", rs.body)

			rs = ts.do(t, http.MethodPut, res.path+"1", `{"name": ""}`)
			assert.Equal(t, http.StatusUnprocessableEntity, rs.status)

			rs = ts.do(t, http.MethodPut, res.path+"1", `{"nickname": "x"}`)
			assert.Equal(t, http.StatusBadRequest, rs.status)

			rs = ts.do(t, http.MethodPost, res.path, `{}`)
			assert.Equal(t, http.StatusUnprocessableEntity, rs.status)
			assert.Equal(t, `{"error":{"name":"must be provided"}}`, rs.body)

			rs = ts.do(t, http.MethodDelete, res.path+"2", "")
			require.Equal(t, http.StatusNoContent, rs.status)
			rs = ts.do(t, http.MethodGet, res.path+"2", "")
			assert.Equal(t, http.StatusNotFound, rs.status)

			rs = ts.do(t, http.MethodDelete, res.path+"2", "")
			assert.Equal(t, http.StatusNotFound, rs.status)
			assert.Equal(t, res.name+" not found", rs.body)
		})
	}
}

func TestDeleteGenreKeepsMovies(t *testing.T) {
	app := newTestApplication(t)
	ts := newTestServer(t, app.routes())

	require.Equal(t, http.StatusCreated, ts.do(t, http.MethodPost, "/genres/", `{"name": "Noir"}`).status)
	require.Equal(t, http.StatusCreated, ts.do(t, http.MethodPost, "/movies/", `{"title": "Chinatown", "genre_id": 1}`).status)

	require.Equal(t, http.StatusNoContent, ts.do(t, http.MethodDelete, "/genres/1", "").status)

	rs := ts.do(t, http.MethodGet, "/movies/1", "")
	require.Equal(t, http.StatusOK, rs.status)
	assert.Contains(t, rs.body, `"genre_id":null`)
}
