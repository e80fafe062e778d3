package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-auth-shell/internal/config"
	"github.com/MKhiriev/go-auth-shell/internal/logger"
	"github.com/MKhiriev/go-auth-shell/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter builds an httpServerAdapter pointed at serverURL.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	adapterCfg := config.Adapter{HTTPAddress: serverURL, RequestTimeout: 2 * time.Second}

	a, err := NewHTTPServerAdapter(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ── NewHTTPServerAdapter ─────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "host and port", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "with scheme and slash", raw: "https://auth.local/", want: "https://auth.local"},
		{name: "empty", raw: "  ", wantErr: true},
		{name: "no host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	a, err := NewHTTPServerAdapter(config.Adapter{}, logger.Nop())

	assert.Nil(t, a)
	assert.Error(t, err)
}

// ── Post: success ────────────────────────────────────────────────────────────

func TestPost_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/signin", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var got models.Credential
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, models.Credential{Email: "a@b.c", Password: "pw"}, got)

		writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Welcome"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	resp, err := a.Post(context.Background(), "/signin", models.Credential{Email: "a@b.c", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, "Welcome", resp.Message)
	assert.Equal(t, models.Ok("Welcome"), Classify(resp, err))
}

func TestPost_SuccessWithPlainBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	}))
	defer srv.Close()

	resp, err := newTestAdapter(t, srv.URL).Post(context.Background(), "/signup", map[string]string{})

	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Message)
}

// ── Post: server replied with an error ───────────────────────────────────────

func TestPost_RejectedByServer(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
		wantIs      error
	}{
		{
			name:        "json message",
			status:      http.StatusUnauthorized,
			body:        `{"message":"Invalid credentials"}`,
			wantMessage: "Invalid credentials",
			wantIs:      ErrUnauthorized,
		},
		{
			name:        "field errors",
			status:      http.StatusBadRequest,
			body:        `{"errors":{"password":["required"],"email":["required"]}}`,
			wantMessage: "email: required; password: required",
			wantIs:      ErrBadRequest,
		},
		{
			name:        "plain text body",
			status:      http.StatusConflict,
			body:        "login already exists",
			wantMessage: "login already exists",
			wantIs:      ErrConflict,
		},
		{
			name:        "empty body",
			status:      http.StatusInternalServerError,
			wantMessage: "Internal Server Error",
			wantIs:      ErrInternalServerError,
		},
		{
			name:        "unmapped status",
			status:      http.StatusTeapot,
			body:        `{"message":"short and stout"}`,
			wantMessage: "short and stout",
			wantIs:      ErrUnexpectedStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			resp, err := newTestAdapter(t, srv.URL).Post(context.Background(), "/signin", models.Credential{})

			var reqErr *RequestError
			require.ErrorAs(t, err, &reqErr)
			require.NotNil(t, reqErr.Response)
			assert.Equal(t, tt.status, reqErr.Response.Status)
			assert.Equal(t, tt.wantMessage, reqErr.Response.Message)
			assert.ErrorIs(t, err, tt.wantIs)

			assert.Equal(t, models.RejectedByServer(tt.status, tt.wantMessage), Classify(resp, err))
		})
	}
}

// ── Post: no response ────────────────────────────────────────────────────────

func TestPost_NoResponse_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	resp, err := newTestAdapter(t, url).Post(context.Background(), "/signin", models.Credential{})

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Nil(t, reqErr.Response)
	require.NotNil(t, reqErr.Request)
	assert.Equal(t, http.MethodPost, reqErr.Request.Method)
	assert.Equal(t, models.NoResponse(), Classify(resp, err))
}

func TestPost_NoResponse_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	a, err := NewHTTPServerAdapter(config.Adapter{HTTPAddress: srv.URL, RequestTimeout: 50 * time.Millisecond}, logger.Nop())
	require.NoError(t, err)

	resp, err := a.Post(context.Background(), "/signin", models.Credential{})

	assert.Equal(t, models.NoResponse(), Classify(resp, err))
}

// ── Post: failure before dispatch ────────────────────────────────────────────

func TestPost_RequestSetupError(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	tests := []struct {
		name string
		path string
		body any
	}{
		{name: "body cannot be encoded", path: "/signin", body: map[string]any{"ch": make(chan int)}},
		{name: "malformed path", path: "/%zz", body: models.Credential{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := a.Post(context.Background(), tt.path, tt.body)

			var reqErr *RequestError
			require.ErrorAs(t, err, &reqErr)
			assert.Nil(t, reqErr.Response)
			assert.Nil(t, reqErr.Request)
			assert.NotEmpty(t, reqErr.Message)

			outcome := Classify(resp, err)
			assert.Equal(t, models.OutcomeRequestSetupError, outcome.Kind)
			assert.Equal(t, reqErr.Message, outcome.Message)
		})
	}

	assert.False(t, called)
}

// ── Classify ─────────────────────────────────────────────────────────────────

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		resp models.MessageResponse
		err  error
		want models.AuthOutcome
	}{
		{
			name: "ok",
			resp: models.MessageResponse{Message: "Welcome"},
			want: models.Ok("Welcome"),
		},
		{
			name: "ok without message",
			want: models.Ok(""),
		},
		{
			name: "rejected",
			err: &RequestError{
				Response: &ResponseInfo{Status: http.StatusUnauthorized, Message: "Invalid credentials"},
				Request:  &RequestInfo{Method: http.MethodPost, URL: "/signin"},
			},
			want: models.RejectedByServer(http.StatusUnauthorized, "Invalid credentials"),
		},
		{
			name: "no response",
			err:  &RequestError{Request: &RequestInfo{Method: http.MethodPost, URL: "/signin"}, Message: "connection refused"},
			want: models.NoResponse(),
		},
		{
			name: "setup error",
			err:  &RequestError{Message: "bad config"},
			want: models.RequestSetupError("bad config"),
		},
		{
			name: "wrapped request error",
			err:  errors.Join(errors.New("outer"), &RequestError{Request: &RequestInfo{}}),
			want: models.NoResponse(),
		},
		{
			name: "foreign error",
			err:  errors.New("bad config"),
			want: models.RequestSetupError("bad config"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.resp, tt.err))
		})
	}
}

func TestRequestError_Unwrap(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")

	assert.ErrorIs(t, &RequestError{Response: &ResponseInfo{Status: http.StatusNotFound}}, ErrNotFound)
	assert.ErrorIs(t, &RequestError{Request: &RequestInfo{}, Err: cause}, cause)
	assert.Contains(t, (&RequestError{Message: "bad config"}).Error(), "bad config")
}
