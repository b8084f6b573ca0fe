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
	"strings"
	"time"

	"github.com/kinotheca/kinotheca/internal/metrics"
	"github.com/kinotheca/kinotheca/internal/models"
)

// CanonicalActorName resolves a case-insensitive actor lookup to the casing
// stored in the cast table. Returns ErrNotFound when no cast member matches.
func (db *DB) CanonicalActorName(ctx context.Context, name string) (string, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	query := `SELECT name FROM cast_members WHERE LOWER(name) = LOWER(?) LIMIT 1`

	var canonical string
	err := db.conn.QueryRowContext(ctx, query, name).Scan(&canonical)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to resolve actor name: %w", err)
	}

	return canonical, nil
}

// ActorNamesMatching returns distinct actor names containing the pattern,
// case-insensitive, for typeahead lookups.
func (db *DB) ActorNamesMatching(ctx context.Context, pattern string, limit int) ([]string, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	query := `
	SELECT DISTINCT name FROM cast_members
	WHERE LOWER(name) LIKE ?
	ORDER BY name
	LIMIT ?`

	rows, err := db.conn.QueryContext(ctx, query, "%"+strings.ToLower(pattern)+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query actor names: %w", err)
	}
	defer closeWithLog(rows, "actor name rows")

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan actor name: %w", err)
		}
		names = append(names, name)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating actor names: %w", err)
	}

	return names, nil
}

// FilmographyWithAwards returns one entry per distinct movie the actor
// appears in, with the award outcome for that actor and film when a record
// exists.
//
// The award join is by name and film title, both case-insensitive, because
// the awards dataset carries no IDs. An actor can have several award rows for
// the same film (nominated in multiple categories); the winning row is kept
// over a nomination. Results are ordered by movie_id ascending.
func (db *DB) FilmographyWithAwards(ctx context.Context, name string) ([]models.FilmographyItem, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	query := `
	SELECT
		m.movie_id,
		m.name,
		COALESCE(m.date, '') AS year_of_release,
		COALESCE(m.rating, '0.0') AS rating,
		COALESCE(c.role, '') AS role,
		COALESCE(oa.category, '') AS award_category,
		COALESCE(oa.winner, FALSE) AS award_winner
	FROM cast_members c
	JOIN movies m ON m.movie_id = c.movie_id
	LEFT JOIN oscar_awards oa
		ON LOWER(oa.name) = LOWER(c.name) AND LOWER(oa.film) = LOWER(m.name)
	WHERE LOWER(c.name) = LOWER(?)
	ORDER BY m.movie_id ASC, oa.winner DESC`

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, query, name)
	metrics.RecordDBQuery("select", "cast_members", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to query filmography: %w", err)
	}
	defer closeWithLog(rows, "filmography rows")

	// Collapse to one entry per movie, preferring award winners over
	// nominations and nominations over no record.
	var items []models.FilmographyItem
	seen := make(map[int64]int)
	for rows.Next() {
		var item models.FilmographyItem
		err := rows.Scan(
			&item.MovieID, &item.Title, &item.YearOfRelease, &item.Rating,
			&item.Role, &item.AwardCategory, &item.AwardWinner,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan filmography item: %w", err)
		}

		idx, ok := seen[item.MovieID]
		if !ok {
			seen[item.MovieID] = len(items)
			items = append(items, item)
			continue
		}

		kept := &items[idx]
		if !kept.AwardWinner && item.AwardWinner {
			*kept = item
		} else if kept.AwardCategory == "" && item.AwardCategory != "" {
			*kept = item
		}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating filmography: %w", err)
	}

	return items, nil
}

// ActorOscarWins counts an actor's wins in acting categories. The awards
// dataset names these "ACTOR", "ACTOR IN A LEADING ROLE", "ACTOR IN A
// SUPPORTING ROLE" and so on, so the count matches on the ACTOR prefix
// rather than an exact category list.
func (db *DB) ActorOscarWins(ctx context.Context, name string) (int64, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	query := `
	SELECT COUNT(*) FROM oscar_awards
	WHERE category LIKE 'ACTOR%' AND winner AND LOWER(name) = LOWER(?)`

	var wins int64
	err := db.conn.QueryRowContext(ctx, query, name).Scan(&wins)
	if err != nil {
		return 0, fmt.Errorf("failed to count oscar wins: %w", err)
	}

	return wins, nil
}
