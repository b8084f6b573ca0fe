// Kinotheca - Movie Catalog and Recommendation Service
// Copyright 2026 Kinotheca contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinotheca/kinotheca

// Package api implements the HTTP surface of the catalog service on the Chi
// router. All endpoints answer with the models.APIResponse envelope.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/kinotheca/kinotheca/internal/config"
	"github.com/kinotheca/kinotheca/internal/database"
	"github.com/kinotheca/kinotheca/internal/models"
	"github.com/kinotheca/kinotheca/internal/recommend"
)

// Handler holds dependencies for all HTTP handlers.
type Handler struct {
	db        *database.DB
	engine    *recommend.Engine
	cfg       *config.Config
	startTime time.Time
}

// NewHandler creates a Handler with its dependencies.
func NewHandler(db *database.DB, engine *recommend.Engine, cfg *config.Config) *Handler {
	return &Handler{
		db:        db,
		engine:    engine,
		cfg:       cfg,
		startTime: time.Now(),
	}
}

// Health reports service liveness plus database reachability.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	status := "healthy"
	httpStatus := http.StatusOK
	dbStatus := "up"
	if err := h.db.Ping(ctx); err != nil {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
		dbStatus = "down"
	}

	respondSuccess(w, httpStatus, map[string]interface{}{
		"status":         status,
		"database":       dbStatus,
		"uptime_seconds": int64(time.Since(h.startTime).Seconds()),
	}, start)
}

// HealthLive is the liveness probe. It answers as long as the process
// serves requests.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"status": "alive",
	}, start)
}

// HealthReady is the readiness probe. Not ready until the database
// answers a ping.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		respondError(w, http.StatusServiceUnavailable, models.ErrCodeService,
			"database not reachable", nil)
		return
	}
	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"status": "ready",
	}, start)
}

// pageParams extracts and clamps pagination from the request.
func (h *Handler) pageParams(r *http.Request) (page, size int) {
	page = getIntParam(r, "page", 0)
	if page < 0 {
		page = 0
	}
	size = getIntParam(r, "size", h.cfg.API.DefaultPageSize)
	if size < 1 {
		size = h.cfg.API.DefaultPageSize
	}
	if size > h.cfg.API.MaxPageSize {
		size = h.cfg.API.MaxPageSize
	}
	return page, size
}

// listMovies validates the request and runs the shared count-then-page flow
// for every listing endpoint.
func (h *Handler) listMovies(w http.ResponseWriter, r *http.Request, filter *database.CardFilter) {
	start := time.Now()
	if !h.validateListRequest(w, r, filter) {
		return
	}
	page, size := h.pageParams(r)
	sortBy := r.URL.Query().Get("sortBy")
	order := r.URL.Query().Get("order")

	total, err := h.db.CountMovieCards(r.Context(), filter)
	if err != nil {
		respondStoreError(w, "movies", err)
		return
	}

	cards, err := h.db.QueryMovieCards(r.Context(), filter, sortBy, order, page, size)
	if err != nil {
		respondStoreError(w, "movies", err)
		return
	}
	if cards == nil {
		cards = []models.MovieCard{}
	}

	respondSuccess(w, http.StatusOK, &models.MoviePage{
		Total:  total,
		Page:   page,
		Size:   size,
		Movies: cards,
	}, start)
}
