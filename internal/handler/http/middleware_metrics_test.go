package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-auth-shell/internal/logger"
	"github.com/MKhiriev/go-auth-shell/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestWithMetrics(t *testing.T) {
	h := &Handler{metrics: metrics.New(), logger: logger.Nop()}

	router := chi.NewRouter()
	router.Use(h.withMetrics)
	router.Post("/users/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	router.Get("/silent", func(http.ResponseWriter, *http.Request) {})

	for _, path := range []string{"/users/1", "/users/2"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, path, nil))
	}
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/silent", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

	requests := h.metrics.HTTPRequestsTotal
	assert.Equal(t, 2.0, testutil.ToFloat64(requests.WithLabelValues("/users/{id}", http.MethodPost, "201")))
	assert.Equal(t, 1.0, testutil.ToFloat64(requests.WithLabelValues("/silent", http.MethodGet, "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(requests.WithLabelValues(unmatchedRoute, http.MethodGet, "404")))
	assert.Equal(t, 3, testutil.CollectAndCount(h.metrics.HTTPRequestDuration))
}
