package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hafizmfadli/movie-catalog/internal/data"
	"github.com/hafizmfadli/movie-catalog/internal/database"
	"github.com/hafizmfadli/movie-catalog/internal/jsonlog"
	"github.com/hafizmfadli/movie-catalog/internal/metrics"
	"github.com/stretchr/testify/require"
)

// newTestApplication wires an application to a migrated SQLite database in a
// temporary directory. Logging is discarded and rate limiting is off.
func newTestApplication(t *testing.T) *application {
	t.Helper()

	db, err := database.Open(database.Config{
		Driver:       database.DriverSQLite,
		DSN:          filepath.Join(t.TempDir(), "movies.db"),
		MaxOpenConns: 4,
		MaxIdleConns: 4,
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	logger := jsonlog.NewLogger(io.Discard, jsonlog.LevelOff)

	migrator, err := database.NewMigrator(db.DB, database.DriverSQLite, logger)
	require.NoError(t, err)
	require.NoError(t, migrator.Up())

	var cfg config
	cfg.env = "testing"

	return &application{
		config:  cfg,
		logger:  logger,
		models:  data.NewModels(db),
		metrics: metrics.New(),
	}
}

type testServer struct {
	*httptest.Server
}

func newTestServer(t *testing.T, h http.Handler) *testServer {
	t.Helper()

	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	return &testServer{ts}
}

type response struct {
	status int
	header http.Header
	body   string
}

// do sends a request with an optional JSON body and returns the response.
func (ts *testServer) do(t *testing.T, method, path, body string) response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rs, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer rs.Body.Close()

	b, err := io.ReadAll(rs.Body)
	require.NoError(t, err)

	return response{
		status: rs.StatusCode,
		header: rs.Header,
		body:   string(bytes.TrimSpace(b)),
	}
}
