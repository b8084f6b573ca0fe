// Kinotheca - Movie Catalog and Recommendation Service
// Copyright 2026 Kinotheca contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinotheca/kinotheca

// Package recommend implements the theme-overlap movie recommender.
//
// Two movies are related when they share at least a configurable number of
// distinct themes. Results rank by overlap size, then rating, then movie ID,
// so the same request always produces the same list.
package recommend

import (
	"context"
	"fmt"

	"github.com/kinotheca/kinotheca/internal/config"
	"github.com/kinotheca/kinotheca/internal/logging"
	"github.com/kinotheca/kinotheca/internal/metrics"
	"github.com/kinotheca/kinotheca/internal/models"
)

// Store is the catalog access the engine needs. *database.DB satisfies it.
type Store interface {
	MovieCardByID(ctx context.Context, movieID int64) (*models.MovieCard, error)
	ThemesForMovie(ctx context.Context, movieID int64) ([]string, error)
	RelatedByThemes(ctx context.Context, movieID int64, minShared, page, size int) ([]models.RelatedMovie, error)
}

// Engine produces related-movie recommendations.
type Engine struct {
	store           Store
	minSharedThemes int
	defaultLimit    int
}

// New creates an engine with thresholds from the catalog config.
func New(store Store, cfg *config.CatalogConfig) *Engine {
	return &Engine{
		store:           store,
		minSharedThemes: cfg.MinSharedThemes,
		defaultLimit:    cfg.RelatedPageSize,
	}
}

// Related returns one page of movies related to the source movie, ranked
// best first. Page numbering starts at 0; a size of 0 or less uses the
// configured default page size.
//
// The source movie must exist; a lookup miss propagates the store's not-found
// error so the API layer can answer 404. A source movie with no themes
// legitimately has no recommendations and yields an empty slice.
func (e *Engine) Related(ctx context.Context, movieID int64, page, size int) ([]models.RelatedMovie, error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = e.defaultLimit
	}

	// Verify the source exists before running the overlap query, so an
	// unknown ID is a 404 rather than an empty list.
	if _, err := e.store.MovieCardByID(ctx, movieID); err != nil {
		return nil, err
	}

	themes, err := e.store.ThemesForMovie(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("failed to load source themes: %w", err)
	}

	// Fewer source themes than the threshold means no candidate can ever
	// clear it; skip the aggregation entirely.
	if len(themes) < e.minSharedThemes {
		metrics.RecordRelatedQuery(0)
		logging.Debug().
			Int64("movie_id", movieID).
			Int("themes", len(themes)).
			Int("min_shared", e.minSharedThemes).
			Msg("Source movie below theme threshold, skipping overlap query")
		return []models.RelatedMovie{}, nil
	}

	related, err := e.store.RelatedByThemes(ctx, movieID, e.minSharedThemes, page, size)
	if err != nil {
		return nil, fmt.Errorf("failed to query related movies: %w", err)
	}

	metrics.RecordRelatedQuery(len(related))
	if related == nil {
		related = []models.RelatedMovie{}
	}
	return related, nil
}

// MinSharedThemes reports the configured overlap threshold.
func (e *Engine) MinSharedThemes() int {
	return e.minSharedThemes
}
