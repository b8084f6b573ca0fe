// Kinotheca - Movie Catalog and Recommendation Service
// Copyright 2026 Kinotheca contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinotheca/kinotheca

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/kinotheca/kinotheca/internal/models"
)

// Actors returns actor names matching a search term, for typeahead.
// GET /api/v1/actors?q=old&size=20
func (h *Handler) Actors(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	q := r.URL.Query().Get("q")
	if q == "" {
		respondError(w, http.StatusBadRequest, models.ErrCodeValidation,
			"q query parameter is required", nil)
		return
	}

	size := getIntParam(r, "size", 20)
	if size < 1 || size > h.cfg.API.MaxPageSize {
		size = 20
	}

	names, err := h.db.ActorNamesMatching(r.Context(), q, size)
	if err != nil {
		respondStoreError(w, "actors", err)
		return
	}
	if names == nil {
		names = []string{}
	}

	respondSuccess(w, http.StatusOK, names, start)
}

// ActorInfo aggregates an actor's canonical name, acting Oscar wins, and
// filmography with award outcomes. The lookup is case-insensitive; an actor
// absent from every cast list is a 404.
// GET /api/v1/actors/info/{name}
func (h *Handler) ActorInfo(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	name := chi.URLParam(r, "name")
	if name == "" {
		respondError(w, http.StatusBadRequest, models.ErrCodeValidation,
			"actor name is required", nil)
		return
	}

	canonical, err := h.db.CanonicalActorName(r.Context(), name)
	if err != nil {
		respondStoreError(w, "actor", err)
		return
	}

	wins, err := h.db.ActorOscarWins(r.Context(), canonical)
	if err != nil {
		respondStoreError(w, "actor awards", err)
		return
	}

	filmography, err := h.db.FilmographyWithAwards(r.Context(), canonical)
	if err != nil {
		respondStoreError(w, "filmography", err)
		return
	}
	if filmography == nil {
		filmography = []models.FilmographyItem{}
	}

	respondSuccess(w, http.StatusOK, &models.ActorInfo{
		Name:        canonical,
		OscarWins:   wins,
		Filmography: filmography,
	}, start)
}
