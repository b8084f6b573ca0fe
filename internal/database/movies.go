// Kinotheca - Movie Catalog and Recommendation Service
// Copyright 2026 Kinotheca contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinotheca/kinotheca

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/kinotheca/kinotheca/internal/metrics"
	"github.com/kinotheca/kinotheca/internal/models"
)

// movieCardSelect is the shared projection for enriched movie cards.
//
// Roles aggregates distinct cast names into a comma-separated list, with the
// dataset's "N/A" sentinel for movies without recorded cast. The Oscar flag
// correlates award rows by title because the awards dataset carries no movie
// IDs; the comparison is case-insensitive on both sides.
const movieCardSelect = `
	SELECT
		m.movie_id,
		m.name,
		COALESCE(m.tagline, '') AS tagline,
		COALESCE(m.description, '') AS description,
		COALESCE(m.rating, '0.0') AS rating,
		COALESCE(m.date, '') AS year_of_release,
		COALESCE((SELECT MIN(p.link) FROM posters p WHERE p.movie_id = m.movie_id), '') AS poster_link,
		COALESCE((SELECT STRING_AGG(DISTINCT c.name, ', ') FROM cast_members c WHERE c.movie_id = m.movie_id), 'N/A') AS roles,
		EXISTS (SELECT 1 FROM oscar_awards oa WHERE LOWER(oa.film) = LOWER(m.name) AND oa.winner) AS oscar_winner
	FROM movies m
	WHERE 1=1`

// QueryMovieCards returns one page of enriched movie cards matching the
// filter, ordered by the resolved sort key with movie_id as the final
// tiebreak. Page numbering starts at 0.
func (db *DB) QueryMovieCards(ctx context.Context, filter *CardFilter, sortBy, order string, page, size int) ([]models.MovieCard, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	conditions, args := filter.buildConditions()
	query := movieCardSelect + conditions + orderByClause(sortBy, order) + " LIMIT ? OFFSET ?"
	args = append(args, size, page*size)

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, query, args...)
	metrics.RecordDBQuery("select", "movies", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to query movie cards: %w", err)
	}
	defer closeWithLog(rows, "movie card rows")

	return scanMovieCards(rows)
}

// CountMovieCards returns the total number of movies matching the filter,
// before paging.
func (db *DB) CountMovieCards(ctx context.Context, filter *CardFilter) (int64, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	conditions, args := filter.buildConditions()
	query := "SELECT COUNT(*) FROM movies m WHERE 1=1" + conditions

	start := time.Now()
	var total int64
	err := db.conn.QueryRowContext(ctx, query, args...).Scan(&total)
	metrics.RecordDBQuery("count", "movies", time.Since(start), err)
	if err != nil {
		return 0, fmt.Errorf("failed to count movie cards: %w", err)
	}

	return total, nil
}

// MovieCardByID returns the enriched card for a single movie.
// Returns ErrNotFound when the ID matches no catalog row.
func (db *DB) MovieCardByID(ctx context.Context, movieID int64) (*models.MovieCard, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	query := movieCardSelect + " AND m.movie_id = ?"

	start := time.Now()
	row := db.conn.QueryRowContext(ctx, query, movieID)

	var card models.MovieCard
	err := row.Scan(
		&card.MovieID, &card.Title, &card.Tagline, &card.Description,
		&card.Rating, &card.YearOfRelease, &card.PosterLink,
		&card.Roles, &card.OscarWinner,
	)
	metrics.RecordDBQuery("select", "movies", time.Since(start), err)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query movie %d: %w", movieID, err)
	}

	return &card, nil
}

// InsertMovie adds a movie to the catalog. Missing optional fields get the
// dataset's sentinel defaults before the write.
func (db *DB) InsertMovie(ctx context.Context, movie *models.Movie) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	movie.Defaults()

	query := `
	INSERT INTO movies (movie_id, name, date, tagline, description, minute, rating)
	VALUES (?, ?, ?, ?, ?, ?, ?)`

	start := time.Now()
	_, err := db.conn.ExecContext(ctx, query,
		movie.MovieID, movie.Title, movie.ReleaseDate, movie.Tagline,
		movie.Description, movie.Minute, movie.Rating,
	)
	metrics.RecordDBQuery("insert", "movies", time.Since(start), err)
	if err != nil {
		return fmt.Errorf("failed to insert movie %d: %w", movie.MovieID, err)
	}

	return nil
}

// DistinctYears returns every release year present in the catalog, newest
// first. Years are the raw dataset strings, not parsed integers.
func (db *DB) DistinctYears(ctx context.Context) ([]string, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	query := `
	SELECT DISTINCT date FROM movies
	WHERE date IS NOT NULL AND date != ''
	ORDER BY date DESC`

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, query)
	metrics.RecordDBQuery("select", "movies", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to query distinct years: %w", err)
	}
	defer closeWithLog(rows, "year rows")

	var years []string
	for rows.Next() {
		var year string
		if err := rows.Scan(&year); err != nil {
			return nil, fmt.Errorf("failed to scan year: %w", err)
		}
		years = append(years, year)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating years: %w", err)
	}

	return years, nil
}

// scanMovieCards drains a result set produced by movieCardSelect.
func scanMovieCards(rows *sql.Rows) ([]models.MovieCard, error) {
	var cards []models.MovieCard
	for rows.Next() {
		var card models.MovieCard
		err := rows.Scan(
			&card.MovieID, &card.Title, &card.Tagline, &card.Description,
			&card.Rating, &card.YearOfRelease, &card.PosterLink,
			&card.Roles, &card.OscarWinner,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan movie card: %w", err)
		}
		cards = append(cards, card)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating movie cards: %w", err)
	}

	return cards, nil
}
