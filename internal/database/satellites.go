// Kinotheca - Movie Catalog and Recommendation Service
// Copyright 2026 Kinotheca contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinotheca/kinotheca

package database

import (
	"context"
	"fmt"

	"github.com/kinotheca/kinotheca/internal/models"
)

// queryStrings runs a single-column string query and drains the result.
func (db *DB) queryStrings(ctx context.Context, label, query string, args ...interface{}) ([]string, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", label, err)
	}
	defer closeWithLog(rows, label+" rows")

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", label, err)
		}
		values = append(values, v)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s: %w", label, err)
	}

	return values, nil
}

// DistinctGenres returns every genre present in the catalog, alphabetical.
func (db *DB) DistinctGenres(ctx context.Context) ([]string, error) {
	return db.queryStrings(ctx, "genres",
		`SELECT DISTINCT genre FROM genres ORDER BY genre`)
}

// DistinctThemes returns every theme present in the catalog, alphabetical.
func (db *DB) DistinctThemes(ctx context.Context) ([]string, error) {
	return db.queryStrings(ctx, "themes",
		`SELECT DISTINCT theme FROM themes ORDER BY theme`)
}

// DistinctCountries returns every production country in the catalog,
// alphabetical.
func (db *DB) DistinctCountries(ctx context.Context) ([]string, error) {
	return db.queryStrings(ctx, "countries",
		`SELECT DISTINCT country FROM countries ORDER BY country`)
}

// GenresForMovie returns the genres attached to a movie.
func (db *DB) GenresForMovie(ctx context.Context, movieID int64) ([]string, error) {
	return db.queryStrings(ctx, "movie genres",
		`SELECT DISTINCT genre FROM genres WHERE movie_id = ? ORDER BY genre`, movieID)
}

// StudiosForMovie returns the studios credited on a movie.
func (db *DB) StudiosForMovie(ctx context.Context, movieID int64) ([]string, error) {
	return db.queryStrings(ctx, "studios",
		`SELECT DISTINCT studio FROM studios WHERE movie_id = ? ORDER BY studio`, movieID)
}

// CountriesForMovie returns the production countries for a movie.
func (db *DB) CountriesForMovie(ctx context.Context, movieID int64) ([]string, error) {
	return db.queryStrings(ctx, "countries",
		`SELECT DISTINCT country FROM countries WHERE movie_id = ? ORDER BY country`, movieID)
}

// PostersForMovie returns every poster link recorded for a movie.
func (db *DB) PostersForMovie(ctx context.Context, movieID int64) ([]string, error) {
	return db.queryStrings(ctx, "posters",
		`SELECT link FROM posters WHERE movie_id = ? ORDER BY link`, movieID)
}

// LanguagesForMovie returns the language entries for a movie.
func (db *DB) LanguagesForMovie(ctx context.Context, movieID int64) ([]models.MovieLanguage, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	query := `
	SELECT movie_id, COALESCE(type, ''), language
	FROM movie_languages
	WHERE movie_id = ?
	ORDER BY type, language`

	rows, err := db.conn.QueryContext(ctx, query, movieID)
	if err != nil {
		return nil, fmt.Errorf("failed to query languages: %w", err)
	}
	defer closeWithLog(rows, "language rows")

	var langs []models.MovieLanguage
	for rows.Next() {
		var l models.MovieLanguage
		if err := rows.Scan(&l.MovieID, &l.Type, &l.Language); err != nil {
			return nil, fmt.Errorf("failed to scan language: %w", err)
		}
		langs = append(langs, l)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating languages: %w", err)
	}

	return langs, nil
}

// ReleasesForMovie returns the regional releases recorded for a movie.
func (db *DB) ReleasesForMovie(ctx context.Context, movieID int64) ([]models.Release, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	query := `
	SELECT movie_id, COALESCE(country, ''), COALESCE(date, ''), COALESCE(type, ''), COALESCE(rating, '')
	FROM releases
	WHERE movie_id = ?
	ORDER BY date, country`

	rows, err := db.conn.QueryContext(ctx, query, movieID)
	if err != nil {
		return nil, fmt.Errorf("failed to query releases: %w", err)
	}
	defer closeWithLog(rows, "release rows")

	var releases []models.Release
	for rows.Next() {
		var rel models.Release
		if err := rows.Scan(&rel.MovieID, &rel.Country, &rel.Date, &rel.Type, &rel.Rating); err != nil {
			return nil, fmt.Errorf("failed to scan release: %w", err)
		}
		releases = append(releases, rel)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating releases: %w", err)
	}

	return releases, nil
}

// CrewForMovie returns the crew credited on a movie, grouped by job.
func (db *DB) CrewForMovie(ctx context.Context, movieID int64) ([]models.CrewMember, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	query := `
	SELECT movie_id, name, COALESCE(job, '')
	FROM crew_members
	WHERE movie_id = ?
	ORDER BY job, name`

	rows, err := db.conn.QueryContext(ctx, query, movieID)
	if err != nil {
		return nil, fmt.Errorf("failed to query crew: %w", err)
	}
	defer closeWithLog(rows, "crew rows")

	var crew []models.CrewMember
	for rows.Next() {
		var member models.CrewMember
		if err := rows.Scan(&member.MovieID, &member.Name, &member.Job); err != nil {
			return nil, fmt.Errorf("failed to scan crew member: %w", err)
		}
		crew = append(crew, member)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating crew: %w", err)
	}

	return crew, nil
}

// CastForMovie returns the cast of a movie with their roles.
func (db *DB) CastForMovie(ctx context.Context, movieID int64) ([]models.CastMember, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	query := `
	SELECT movie_id, name, COALESCE(role, '')
	FROM cast_members
	WHERE movie_id = ?
	ORDER BY name`

	rows, err := db.conn.QueryContext(ctx, query, movieID)
	if err != nil {
		return nil, fmt.Errorf("failed to query cast: %w", err)
	}
	defer closeWithLog(rows, "cast rows")

	var cast []models.CastMember
	for rows.Next() {
		var member models.CastMember
		if err := rows.Scan(&member.MovieID, &member.Name, &member.Role); err != nil {
			return nil, fmt.Errorf("failed to scan cast member: %w", err)
		}
		cast = append(cast, member)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cast: %w", err)
	}

	return cast, nil
}
