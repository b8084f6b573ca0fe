// Kinotheca - Movie Catalog and Recommendation Service
// Copyright 2026 Kinotheca contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinotheca/kinotheca

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/kinotheca/kinotheca/internal/metrics"
	"github.com/kinotheca/kinotheca/internal/models"
)

// RelatedByThemes returns one page of movies sharing at least minShared
// distinct themes with the source movie, as enriched cards with their
// overlap count. Page numbering starts at 0.
//
// Ranking is overlap DESC, then rating DESC, then movie_id ASC so ties
// resolve deterministically and pages never overlap. The source movie is
// excluded from its own results. A movie with no themes has no overlap with
// anything and yields an empty slice, not an error.
func (db *DB) RelatedByThemes(ctx context.Context, movieID int64, minShared, page, size int) ([]models.RelatedMovie, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	query := `
	SELECT
		m.movie_id,
		m.name,
		COALESCE(m.tagline, '') AS tagline,
		COALESCE(m.description, '') AS description,
		COALESCE(m.rating, '0.0') AS rating,
		COALESCE(m.date, '') AS year_of_release,
		COALESCE((SELECT MIN(p.link) FROM posters p WHERE p.movie_id = m.movie_id), '') AS poster_link,
		COALESCE((SELECT STRING_AGG(DISTINCT c.name, ', ') FROM cast_members c WHERE c.movie_id = m.movie_id), 'N/A') AS roles,
		EXISTS (SELECT 1 FROM oscar_awards oa WHERE LOWER(oa.film) = LOWER(m.name) AND oa.winner) AS oscar_winner,
		COUNT(DISTINCT t.theme) AS shared_themes
	FROM movies m
	JOIN themes t ON t.movie_id = m.movie_id
	WHERE t.theme IN (SELECT theme FROM themes WHERE movie_id = ?)
	  AND m.movie_id != ?
	GROUP BY m.movie_id, m.name, m.tagline, m.description, m.rating, m.date
	HAVING COUNT(DISTINCT t.theme) >= ?
	ORDER BY shared_themes DESC, TRY_CAST(m.rating AS DOUBLE) DESC, m.movie_id ASC
	LIMIT ? OFFSET ?`

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, query, movieID, movieID, minShared, size, page*size)
	metrics.RecordDBQuery("select", "themes", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to query related movies for %d: %w", movieID, err)
	}
	defer closeWithLog(rows, "related movie rows")

	var related []models.RelatedMovie
	for rows.Next() {
		var rm models.RelatedMovie
		err := rows.Scan(
			&rm.MovieID, &rm.Title, &rm.Tagline, &rm.Description,
			&rm.Rating, &rm.YearOfRelease, &rm.PosterLink,
			&rm.Roles, &rm.OscarWinner, &rm.SharedThemes,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan related movie: %w", err)
		}
		related = append(related, rm)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating related movies: %w", err)
	}

	return related, nil
}

// ThemesForMovie returns the distinct themes attached to a movie.
func (db *DB) ThemesForMovie(ctx context.Context, movieID int64) ([]string, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	query := `SELECT DISTINCT theme FROM themes WHERE movie_id = ? ORDER BY theme`

	rows, err := db.conn.QueryContext(ctx, query, movieID)
	if err != nil {
		return nil, fmt.Errorf("failed to query themes for movie %d: %w", movieID, err)
	}
	defer closeWithLog(rows, "theme rows")

	var themes []string
	for rows.Next() {
		var theme string
		if err := rows.Scan(&theme); err != nil {
			return nil, fmt.Errorf("failed to scan theme: %w", err)
		}
		themes = append(themes, theme)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating themes: %w", err)
	}

	return themes, nil
}
