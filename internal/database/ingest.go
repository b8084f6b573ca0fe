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

// Satellite insert helpers used by the seeder and dataset loaders. Inserts
// are append-only; the catalog has no update path.

func (db *DB) execInsert(ctx context.Context, label, query string, args ...interface{}) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	if _, err := db.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert %s: %w", label, err)
	}
	return nil
}

// InsertGenre attaches a genre to a movie.
func (db *DB) InsertGenre(ctx context.Context, movieID int64, genre string) error {
	return db.execInsert(ctx, "genre",
		`INSERT INTO genres (movie_id, genre) VALUES (?, ?)`, movieID, genre)
}

// InsertTheme attaches a theme to a movie.
func (db *DB) InsertTheme(ctx context.Context, movieID int64, theme string) error {
	return db.execInsert(ctx, "theme",
		`INSERT INTO themes (movie_id, theme) VALUES (?, ?)`, movieID, theme)
}

// InsertStudio attaches a studio credit to a movie.
func (db *DB) InsertStudio(ctx context.Context, movieID int64, studio string) error {
	return db.execInsert(ctx, "studio",
		`INSERT INTO studios (movie_id, studio) VALUES (?, ?)`, movieID, studio)
}

// InsertCountry attaches a production country to a movie.
func (db *DB) InsertCountry(ctx context.Context, movieID int64, country string) error {
	return db.execInsert(ctx, "country",
		`INSERT INTO countries (movie_id, country) VALUES (?, ?)`, movieID, country)
}

// InsertPoster attaches a poster link to a movie.
func (db *DB) InsertPoster(ctx context.Context, movieID int64, link string) error {
	return db.execInsert(ctx, "poster",
		`INSERT INTO posters (movie_id, link) VALUES (?, ?)`, movieID, link)
}

// InsertLanguage attaches a language entry to a movie.
func (db *DB) InsertLanguage(ctx context.Context, lang *models.MovieLanguage) error {
	return db.execInsert(ctx, "language",
		`INSERT INTO movie_languages (movie_id, type, language) VALUES (?, ?, ?)`,
		lang.MovieID, lang.Type, lang.Language)
}

// InsertRelease records a regional release for a movie.
func (db *DB) InsertRelease(ctx context.Context, rel *models.Release) error {
	return db.execInsert(ctx, "release",
		`INSERT INTO releases (movie_id, country, date, type, rating) VALUES (?, ?, ?, ?, ?)`,
		rel.MovieID, rel.Country, rel.Date, rel.Type, rel.Rating)
}

// InsertCastMember credits an actor on a movie.
func (db *DB) InsertCastMember(ctx context.Context, member *models.CastMember) error {
	return db.execInsert(ctx, "cast member",
		`INSERT INTO cast_members (movie_id, name, role) VALUES (?, ?, ?)`,
		member.MovieID, member.Name, member.Role)
}

// InsertCrewMember credits a crew person on a movie.
func (db *DB) InsertCrewMember(ctx context.Context, member *models.CrewMember) error {
	return db.execInsert(ctx, "crew member",
		`INSERT INTO crew_members (movie_id, name, job) VALUES (?, ?, ?)`,
		member.MovieID, member.Name, member.Job)
}
