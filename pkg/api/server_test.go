package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Serve blocks until shutdown, so these tests exercise the routes it wires.

func TestConstants(t *testing.T) {
	assert.Equal(t, "gtpowerd", name)
	assert.Equal(t, "dev", versionDefault)
	assert.NotEmpty(t, version)
	assert.NotEmpty(t, commit)
	assert.NotEmpty(t, date)
}

func TestRoutes(t *testing.T) {
	routes, err := Routes(context.Background())
	require.NoError(t, err)

	assert.Len(t, routes, 3)
	for _, path := range []string{"/v1/tiers", "/v1/power", "/v1/recipes"} {
		assert.NotNil(t, routes[path], path)
	}
}

func TestRoutes_Serve(t *testing.T) {
	routes, err := Routes(context.Background())
	require.NoError(t, err)

	tests := []struct {
		name   string
		path   string
		target string
		status int
	}{
		{"tiers", "/v1/tiers", "/v1/tiers", http.StatusOK},
		{"power", "/v1/power", "/v1/power?eut=480&duration=100", http.StatusOK},
		{"power overclocked", "/v1/power", "/v1/power?eut=480&duration=100&machineTier=IV&overclock=perfect", http.StatusOK},
		{"power negative", "/v1/power", "/v1/power?eut=-1", http.StatusBadRequest},
		{"recipes", "/v1/recipes", "/v1/recipes?tier=EV", http.StatusOK},
		{"recipes bad tier", "/v1/recipes", "/v1/recipes?tier=99", http.StatusBadRequest},
		{"recipes post", "/v1/recipes", "/v1/recipes", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			method := http.MethodGet
			if tt.status == http.StatusMethodNotAllowed {
				method = http.MethodPost
			}
			w := httptest.NewRecorder()
			routes[tt.path](w, httptest.NewRequest(method, tt.target, nil))
			assert.Equal(t, tt.status, w.Code, w.Body.String())
			assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
		})
	}
}

func TestRoutes_RecipesCeiling(t *testing.T) {
	routes, err := Routes(context.Background())
	require.NoError(t, err)

	w := httptest.NewRecorder()
	routes["/v1/recipes"](w, httptest.NewRequest(http.MethodGet, "/v1/recipes?tier=EV", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Count int `json:"count"`
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 4, body.Count)
	assert.Equal(t, 10, body.Total)
}

func TestRoutes_Concurrent(t *testing.T) {
	routes, err := Routes(context.Background())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w := httptest.NewRecorder()
			routes["/v1/recipes"](w, httptest.NewRequest(http.MethodGet, "/v1/recipes?tier=LuV", nil))
			assert.Equal(t, http.StatusOK, w.Code)
		}()
	}
	wg.Wait()
}
