package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netposture/core/internal/handlers"
	"github.com/netposture/core/internal/metrics"
	"github.com/netposture/core/internal/models"
	"github.com/netposture/core/internal/risk"
)

const assetsBody = `{
	"assets": [
		{"id": "pc", "type": "pc", "name": "Workstation", "antivirus": "Kaspersky", "connections": ["sw"]},
		{"id": "sw", "type": "switch", "name": "Core switch"}
	]
}`

func setupRouter() *chi.Mux {
	registry := metrics.NewRegistry()
	return newRouter(routerDeps{
		Handler: handlers.NewHandler(handlers.Options{
			RiskConfig: risk.DefaultConfig(),
			Metrics:    registry,
		}),
		Metrics:       registry,
		Logger:        zerolog.Nop(),
		AllowedOrigin: "*",
	})
}

func TestMainRoutes(t *testing.T) {
	router := setupRouter()

	t.Run("health endpoint is accessible", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		assert.NotEmpty(t, w.Header().Get("Access-Control-Allow-Origin"))

		var response handlers.HealthResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
		assert.Equal(t, "netposture-api", response.Service)
	})

	t.Run("assess endpoint is accessible", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/assess", strings.NewReader(assetsBody))
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	})

	t.Run("metrics endpoint exposes request counters", func(t *testing.T) {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "netposture_http_requests_total")
	})

	t.Run("preflight is answered by cors", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/v1/assess", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestEndToEndFlow(t *testing.T) {
	router := setupRouter()

	t.Run("graph then neighbors then inner", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/graph?pretty=true", strings.NewReader(assetsBody)))
		require.Equal(t, http.StatusOK, w.Code)

		var graph models.Graph
		require.NoError(t, json.NewDecoder(w.Body).Decode(&graph))
		assert.True(t, graph.HasEdges)

		w = httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/assets/sw/neighbors", strings.NewReader(assetsBody)))
		require.Equal(t, http.StatusOK, w.Code)

		var neighbors models.Graph
		require.NoError(t, json.NewDecoder(w.Body).Decode(&neighbors))
		assert.Len(t, neighbors.Nodes, 2)
		assert.Len(t, neighbors.Edges, 3)

		w = httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/assets/pc/inner", strings.NewReader(assetsBody)))
		require.Equal(t, http.StatusOK, w.Code)

		var inner handlers.InnerGraphResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&inner))
		assert.Len(t, inner.Graph.Nodes, 14)
		assert.Len(t, inner.Graph.Edges, 45)
	})
}

func TestRoutePaths(t *testing.T) {
	router := setupRouter()

	testCases := []struct {
		name           string
		path           string
		method         string
		expectedStatus int
	}{
		{"health with GET", "/health", http.MethodGet, http.StatusOK},
		{"health with POST", "/health", http.MethodPost, http.StatusMethodNotAllowed},
		{"assess with empty body", "/api/v1/assess", http.MethodPost, http.StatusBadRequest},
		{"assess with GET", "/api/v1/assess", http.MethodGet, http.StatusMethodNotAllowed},
		{"categories", "/api/v1/categories", http.MethodGet, http.StatusOK},
		{"node weight", "/api/v1/weights/node?name=VeraCrypt", http.MethodGet, http.StatusOK},
		{"edge weight without link", "/api/v1/weights/edge", http.MethodGet, http.StatusBadRequest},
		{"analyze without analyzer", "/api/v1/analyze", http.MethodPost, http.StatusServiceUnavailable},
		{"unknown path", "/unknown", http.MethodGet, http.StatusNotFound},
		{"root path", "/", http.MethodGet, http.StatusNotFound},
		{"health with trailing slash", "/health/", http.MethodGet, http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tc.expectedStatus, w.Code)
		})
	}
}

func TestConcurrentRequests(t *testing.T) {
	router := setupRouter()

	t.Run("handles mixed concurrent requests", func(t *testing.T) {
		numRequests := 100
		results := make(chan int, numRequests)

		for i := range numRequests {
			go func(index int) {
				var req *http.Request
				if index%2 == 0 {
					req = httptest.NewRequest(http.MethodGet, "/health", nil)
				} else {
					req = httptest.NewRequest(http.MethodPost, "/api/v1/assess", strings.NewReader(assetsBody))
				}
				w := httptest.NewRecorder()
				router.ServeHTTP(w, req)
				results <- w.Code
			}(i)
		}

		for range numRequests {
			assert.Equal(t, http.StatusOK, <-results)
		}
	})
}
