package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gterrors "github.com/gtnh/gtpower/pkg/errors"
)

// tierError answers like a handler rejecting an unknown tier.
func tierError(w http.ResponseWriter, r *http.Request) {
	WriteErrorFromErr(w, r, gterrors.NewWithContext(gterrors.ErrCodeOutOfRange,
		"tier 99 out of range [0, 14]", map[string]any{"tier": 99}), "Invalid tier", nil)
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp
}

func TestMiddleware_RequestID(t *testing.T) {
	provided := uuid.New().String()

	tests := []struct {
		name   string
		header string
		keep   bool
	}{
		{"generated when missing", "", false},
		{"valid id kept", provided, true},
		{"invalid id replaced", "not-a-uuid", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			var seen string
			h := s.withMiddleware(func(w http.ResponseWriter, r *http.Request) {
				seen = RequestIDFromContext(r.Context())
				tierError(w, r)
			})

			req := httptest.NewRequest(http.MethodGet, "/v1/recipes?tier=99", nil)
			if tt.header != "" {
				req.Header.Set("X-Request-Id", tt.header)
			}
			w := httptest.NewRecorder()
			h(w, req)

			_, err := uuid.Parse(seen)
			require.NoError(t, err)
			if tt.keep {
				assert.Equal(t, tt.header, seen)
			} else {
				assert.NotEqual(t, tt.header, seen)
			}
			assert.Equal(t, seen, w.Header().Get("X-Request-Id"))
			assert.Equal(t, seen, decodeError(t, w).RequestID, "error body carries the request id")
		})
	}
}

func TestMiddleware_APIVersion(t *testing.T) {
	s := New()
	var seen string
	h := s.withMiddleware(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = r.Context().Value(contextKeyAPIVersion).(string)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/tiers", nil)
	req.Header.Set("Accept", "application/vnd.gtnh.gtpower.v1+json")
	w := httptest.NewRecorder()
	h(w, req)

	assert.Equal(t, "v1", seen)
	assert.Equal(t, "v1", w.Header().Get("X-API-Version"))
}

func TestMiddleware_RateLimit(t *testing.T) {
	s := New(WithRateLimit(1, 2))
	h := s.withMiddleware(okHandler)

	for i := range 2 {
		w := httptest.NewRecorder()
		h(w, httptest.NewRequest(http.MethodGet, "/v1/power?eut=30&duration=20", nil))
		require.Equal(t, http.StatusOK, w.Code, "request %d within burst", i)
		assert.Equal(t, "1", w.Header().Get("X-RateLimit-Limit"))
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Reset"))
	}

	w := httptest.NewRecorder()
	h(w, httptest.NewRequest(http.MethodGet, "/v1/power?eut=30&duration=20", nil))
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "1", w.Header().Get("Retry-After"))

	resp := decodeError(t, w)
	assert.Equal(t, string(gterrors.ErrCodeRateLimitExceeded), resp.Code)
	assert.True(t, resp.Retryable)
	assert.EqualValues(t, 2, resp.Details["burst"])
}

func TestMiddleware_PanicRecovery(t *testing.T) {
	s := New()
	h := s.withMiddleware(func(http.ResponseWriter, *http.Request) {
		panic("catalog corrupted")
	})

	w := httptest.NewRecorder()
	require.NotPanics(t, func() {
		h(w, httptest.NewRequest(http.MethodGet, "/v1/recipes", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	resp := decodeError(t, w)
	assert.Equal(t, string(gterrors.ErrCodeInternal), resp.Code)
	assert.True(t, resp.Retryable)
	assert.NotEmpty(t, resp.RequestID)
}

func TestStatusRecorder(t *testing.T) {
	w := httptest.NewRecorder()
	rec := recordResponse(w)
	assert.Same(t, rec, recordResponse(rec), "recorders are not nested")
	assert.Equal(t, http.StatusOK, rec.Status(), "defaults to 200")

	rec.WriteHeader(http.StatusBadRequest)
	rec.WriteHeader(http.StatusInternalServerError)
	n, err := rec.Write([]byte(`{"code":"OUT_OF_RANGE"}`))
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Status())
	assert.Equal(t, http.StatusBadRequest, w.Code, "only the first status reaches the client")
	assert.Equal(t, int64(n), rec.Bytes())
	assert.Equal(t, http.ResponseWriter(w), rec.Unwrap())
}

func TestStatusRecorder_ImplicitOK(t *testing.T) {
	w := httptest.NewRecorder()
	rec := recordResponse(w)

	_, err := rec.Write([]byte("{}"))
	require.NoError(t, err)
	rec.WriteHeader(http.StatusTeapot)

	assert.Equal(t, http.StatusOK, rec.Status())
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouteLabel(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/v1/tiers?x=1", nil)
	assert.Equal(t, unmatchedRoute, routeLabel(r))

	r.Pattern = "/v1/tiers"
	assert.Equal(t, "/v1/tiers", routeLabel(r))
}
