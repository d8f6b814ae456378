package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/netposture/core/cmd/api/middleware"
	"github.com/netposture/core/internal/handlers"
	"github.com/netposture/core/internal/metrics"
)

type routerDeps struct {
	Handler       *handlers.Handler
	Metrics       *metrics.Registry
	Logger        zerolog.Logger
	AllowedOrigin string
}

func newRouter(deps routerDeps) *chi.Mux {
	h := deps.Handler

	router := chi.NewRouter()

	router.Use(chimiddleware.RequestID)
	router.Use(middleware.Logger(&deps.Logger))
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Cors(deps.AllowedOrigin))
	router.Use(middleware.Metrics(deps.Metrics))

	router.Get("/health", h.Health)
	router.Method(http.MethodGet, "/metrics", deps.Metrics.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/categories", h.Categories)
		r.Get("/weights/node", h.NodeWeight)
		r.Get("/weights/edge", h.EdgeWeight)

		r.Post("/assess", h.Assess)
		r.Post("/graph", h.Graph)
		r.Post("/analyze", h.Analyze)

		r.Route("/assets/{assetID}", func(r chi.Router) {
			r.Post("/inner", h.Inner)
			r.Post("/neighbors", h.Neighbors)
		})
	})

	return router
}
