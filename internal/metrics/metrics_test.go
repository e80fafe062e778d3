package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InstancesAreIndependent(t *testing.T) {
	first := New()
	second := New()

	first.AuthAttemptsTotal.WithLabelValues("signin", "ok").Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(first.AuthAttemptsTotal.WithLabelValues("signin", "ok")))
	assert.Equal(t, 0.0, testutil.ToFloat64(second.AuthAttemptsTotal.WithLabelValues("signin", "ok")))
}

func TestHandler_Exposition(t *testing.T) {
	m := New()
	m.HTTPRequestsTotal.WithLabelValues("/signin", http.MethodPost, "200").Inc()
	m.HTTPRequestDuration.WithLabelValues("/signin", http.MethodPost).Observe(0.01)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), `http_requests_total{method="POST",route="/signin",status="200"} 1`)
	assert.Contains(t, string(body), "http_request_duration_seconds_bucket")
	assert.Contains(t, string(body), "go_goroutines")
}
