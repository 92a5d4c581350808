package main

import (
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/felixge/httpsnoop"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

func (app *application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Create a deferred function (which will always be run in the event of a panic
		// as Go unwinds the stack).
		defer func() {
			// Use the builtin recover function to check if there has been a panic or not
			if err := recover(); err != nil {
				// Make Go's HTTP server close the connection after the response.
				w.Header().Set("Connection", "close")
				app.serverErrorResponse(w, r, fmt.Errorf("%s", err))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// rateLimitIP middleware will limit number of request for specific IP address.
// This rate limiter can configurable at runtime using command line flag.
func (app *application) rateLimitIP(next http.Handler) http.Handler {

	type client struct {
		limiter  *rate.Limiter
		lastSeen time.Time
	}

	var (
		mu      sync.Mutex
		clients = make(map[string]*client)
	)

	// Launch a background goroutine which removes old entries from the clients map
	// once every minute.
	go func() {
		for {
			time.Sleep(time.Minute)

			mu.Lock()

			// Loop through all clients. If they haven't been seen within the last three
			// minutes, delete the corresponding entry from the map.
			for ip, client := range clients {
				if time.Since(client.lastSeen) > 3*time.Minute {
					delete(clients, ip)
				}
			}

			mu.Unlock()
		}
	}()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		if app.config.limiter.enabled {
			// Extract the client's IP address from the request.
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				app.serverErrorResponse(w, r, err)
				return
			}

			mu.Lock()

			if _, found := clients[ip]; !found {
				clients[ip] = &client{
					limiter: rate.NewLimiter(rate.Limit(app.config.limiter.rps), app.config.limiter.burst),
				}
			}

			clients[ip].lastSeen = time.Now()

			if !clients[ip].limiter.Allow() {
				mu.Unlock()
				app.rateLimitExceededResponse(w, r)
				return
			}

			// Not deferred: the lock must not be held while downstream handlers run.
			mu.Unlock()
		}
		next.ServeHTTP(w, r)
	})
}

// logRequest writes one log entry per request. The request id is taken from
// the X-Request-ID header when the client sends one, and echoed back.
func (app *application) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)

		m := httpsnoop.CaptureMetrics(next, w, r)

		app.logger.PrintInfo("request completed", map[string]string{
			"request_id":     requestID,
			"request_method": r.Method,
			"request_url":    r.URL.String(),
			"status":         strconv.Itoa(m.Code),
			"duration":       m.Duration.String(),
		})
	})
}

// instrument records Prometheus metrics for every request.
func (app *application) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		app.metrics.IncrementInFlight()
		defer app.metrics.DecrementInFlight()

		m := httpsnoop.CaptureMetrics(next, w, r)

		app.metrics.RecordHTTPRequest(r.Method, routeLabel(r.URL.Path), m.Code, m.Duration)
	})
}

var resources = map[string]bool{
	"movies":    true,
	"directors": true,
	"genres":    true,
}

// routeLabel maps a request path to the route pattern that serves it, so that
// ids don't end up as metric label values.
func routeLabel(path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")

	switch {
	case len(parts) == 1 && resources[parts[0]]:
		return "/" + parts[0] + "/"
	case len(parts) == 2 && resources[parts[0]]:
		return "/" + parts[0] + "/:id"
	case len(parts) == 1 && (parts[0] == "healthcheck" || parts[0] == "metrics"):
		return "/" + parts[0]
	default:
		return "unmatched"
	}
}
