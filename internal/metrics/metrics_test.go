package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordHTTPRequest(t *testing.T) {
	m := New()

	m.RecordHTTPRequest(http.MethodGet, "/movies/:id", http.StatusOK, 5*time.Millisecond)
	m.RecordHTTPRequest(http.MethodGet, "/movies/:id", http.StatusOK, 7*time.Millisecond)
	m.RecordHTTPRequest(http.MethodGet, "/movies/:id", http.StatusNotFound, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/movies/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/movies/:id", "404")))
}

func TestInFlight(t *testing.T) {
	m := New()

	m.IncrementInFlight()
	m.IncrementInFlight()
	m.DecrementInFlight()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.inFlight))
}

func TestHandlerExposesCollectors(t *testing.T) {
	m := New()
	m.RecordHTTPRequest(http.MethodPost, "/genres/", http.StatusCreated, time.Millisecond)

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `movie_catalog_http_requests_total{method="POST",route="/genres/",status="201"} 1`)
}
