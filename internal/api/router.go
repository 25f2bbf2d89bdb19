// Catalograph - Streaming Catalog Analytics and Reporting
// Copyright 2026 Catalograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/catalograph/catalograph

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Router wires handlers and middleware into the Chi route tree.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router for the given handler and middleware
// factory.
func NewRouter(handler *Handler, mw *ChiMiddleware) *Router {
	return &Router{handler: handler, chiMiddleware: mw}
}

// Setup configures all HTTP routes using the Chi router.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to all routes in order.
	r.Use(RequestIDWithLogging())
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS())

	// Health endpoints get a permissive rate limit so monitoring probes
	// never contend with report traffic.
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
		r.Get("/", router.handler.Health)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(PrometheusMetrics())
		r.Use(accessLog())

		r.Get("/catalog/stats", router.handler.CatalogStats)

		r.Route("/reports", func(r chi.Router) {
			r.Get("/count-by-type", router.handler.CountByType)
			r.Get("/top-rating-by-type", router.handler.TopRatingByType)
			r.Get("/by-release-year", router.handler.ByReleaseYear)
			r.Get("/top-countries", router.handler.TopCountries)
			r.Get("/longest-movies", router.handler.LongestMovies)
			r.Get("/recently-added", router.handler.RecentlyAdded)
			r.Get("/by-director", router.handler.ByDirector)
			r.Get("/tv-min-seasons", router.handler.TVMinSeasons)
			r.Get("/genre-counts", router.handler.GenreCounts)
			r.Get("/year-share", router.handler.YearShare)
			r.Get("/documentaries", router.handler.Documentaries)
			r.Get("/missing-director", router.handler.MissingDirector)
			r.Get("/by-cast", router.handler.ByCast)
			r.Get("/top-actors", router.handler.TopActors)
			r.Get("/keyword-classification", router.handler.KeywordClassification)
		})
	})

	// Prometheus metrics endpoint, outside the API rate limits.
	r.Handle("/metrics", promhttp.Handler())

	return r
}
