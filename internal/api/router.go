// Kinotheca - Movie Catalog and Recommendation Service
// Copyright 2026 Kinotheca contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinotheca/kinotheca

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kinotheca/kinotheca/internal/config"
	"github.com/kinotheca/kinotheca/internal/metrics"
	"github.com/kinotheca/kinotheca/internal/middleware"
	"github.com/kinotheca/kinotheca/internal/models"
)

// NewRouter wires the full HTTP surface onto a Chi router.
func NewRouter(h *Handler, cfg *config.APIConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to all routes in order.
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	// Health and metrics stay outside the rate limit so monitors are never
	// throttled away.
	r.Get("/api/v1/health", h.Health)
	r.Get("/api/v1/health/live", h.HealthLive)
	r.Get("/api/v1/health/ready", h.HealthReady)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(rateLimit(cfg))
		r.Use(middleware.PrometheusMetrics)

		r.Route("/movies", func(r chi.Router) {
			r.Get("/", h.Movies)
			r.Post("/", h.CreateMovie)
			r.Get("/search", h.MoviesSearch)
			r.Get("/years", h.MovieYears)
			r.Get("/genre/{genre}", h.MoviesByGenre)
			r.Get("/year/{year}", h.MoviesByYear)
			r.Get("/rating/{rating}", h.MoviesByRating)
			r.Get("/actor/{name}", h.MoviesByActor)

			r.Route("/{movieID}", func(r chi.Router) {
				r.Get("/", h.MovieByID)
				r.Get("/related", h.RelatedMovies)
				r.Get("/genres", h.MovieGenres)
				r.Get("/themes", h.MovieThemes)
				r.Get("/cast", h.MovieCast)
				r.Get("/crew", h.MovieCrew)
				r.Get("/studios", h.MovieStudios)
				r.Get("/languages", h.MovieLanguages)
				r.Get("/countries", h.MovieCountries)
				r.Get("/posters", h.MoviePosters)
				r.Get("/releases", h.MovieReleases)
			})
		})

		r.Route("/actors", func(r chi.Router) {
			r.Get("/", h.Actors)
			r.Get("/info/{name}", h.ActorInfo)
		})

		r.Route("/awards", func(r chi.Router) {
			r.Get("/winners", h.AwardWinners)
			r.Get("/category/{category}", h.AwardsByCategory)
			r.Get("/film/{title}", h.AwardsForFilm)
			r.Get("/ceremony/{year}", h.AwardsByCeremonyYear)
			r.Get("/film-winner", h.FilmWonBestPicture)
			r.Get("/actor-winner", h.ActorWonForFilm)
			r.Get("/count", h.AwardCount)
		})

		r.Get("/genres", h.Genres)
		r.Get("/themes", h.Themes)
		r.Get("/countries", h.Countries)
	})

	return r
}

// rateLimit builds the per-client-IP limiter for data endpoints.
func rateLimit(cfg *config.APIConfig) func(http.Handler) http.Handler {
	window := cfg.RateLimitWindow
	if window <= 0 {
		window = time.Minute
	}

	return httprate.Limit(
		cfg.RateLimitReqs,
		window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			metrics.APIRateLimitHits.WithLabelValues(r.URL.Path).Inc()
			respondError(w, http.StatusTooManyRequests, models.ErrCodeRateLimited,
				"Too many requests", nil)
		}),
	)
}
