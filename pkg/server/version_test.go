package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNegotiateAPIVersion(t *testing.T) {
	tests := []struct {
		name   string
		accept string
		want   string
	}{
		{"no accept header", "", DefaultAPIVersion},
		{"plain json", "application/json", DefaultAPIVersion},
		{"gtpower v1", "application/vnd.gtnh.gtpower.v1+json", "v1"},
		{"gtpower v1 among others", "text/html, application/vnd.gtnh.gtpower.v1+json;q=0.9", "v1"},
		{"unsupported v2", "application/vnd.gtnh.gtpower.v2+json", DefaultAPIVersion},
		{"malformed version", "application/vnd.gtnh.gtpower.vBAD+json", DefaultAPIVersion},
		{"other vendor", "application/vnd.example.v1+json", DefaultAPIVersion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/tiers", nil)
			if tt.accept != "" {
				req.Header.Set("Accept", tt.accept)
			}
			assert.Equal(t, tt.want, negotiateAPIVersion(req))
		})
	}
}

func TestSetAPIVersionHeader(t *testing.T) {
	w := httptest.NewRecorder()
	SetAPIVersionHeader(w, DefaultAPIVersion)
	assert.Equal(t, "v1", w.Header().Get("X-API-Version"))
}
