// Kinotheca - Movie Catalog and Recommendation Service
// Copyright 2026 Kinotheca contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinotheca/kinotheca

package database

import (
	"fmt"
)

// createTables creates the catalog schema.
//
// The upstream dataset ships release dates and ratings as text, so the schema
// keeps them as VARCHAR and the filter layer compares them as exact strings.
// Satellite tables reference movies by movie_id without foreign key
// constraints, matching the dataset's loose referential integrity. Award rows
// correlate to movies by title only.
func (db *DB) createTables() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS movies (
			movie_id BIGINT PRIMARY KEY,
			name VARCHAR NOT NULL,
			date VARCHAR,
			tagline VARCHAR,
			description VARCHAR,
			minute INTEGER DEFAULT 0,
			rating VARCHAR DEFAULT '0.0'
		)`,
		`CREATE TABLE IF NOT EXISTS genres (
			movie_id BIGINT NOT NULL,
			genre VARCHAR NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS themes (
			movie_id BIGINT NOT NULL,
			theme VARCHAR NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS studios (
			movie_id BIGINT NOT NULL,
			studio VARCHAR NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS movie_languages (
			movie_id BIGINT NOT NULL,
			type VARCHAR,
			language VARCHAR NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS countries (
			movie_id BIGINT NOT NULL,
			country VARCHAR NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS posters (
			movie_id BIGINT NOT NULL,
			link VARCHAR NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS releases (
			movie_id BIGINT NOT NULL,
			country VARCHAR,
			date VARCHAR,
			type VARCHAR,
			rating VARCHAR
		)`,
		`CREATE TABLE IF NOT EXISTS cast_members (
			movie_id BIGINT NOT NULL,
			name VARCHAR NOT NULL,
			role VARCHAR NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS crew_members (
			movie_id BIGINT NOT NULL,
			name VARCHAR NOT NULL,
			job VARCHAR
		)`,
		`CREATE TABLE IF NOT EXISTS oscar_awards (
			id UUID PRIMARY KEY,
			year_film INTEGER,
			year_ceremony INTEGER,
			ceremony INTEGER,
			category VARCHAR,
			name VARCHAR,
			film VARCHAR,
			winner BOOLEAN DEFAULT FALSE
		)`,
		// Hot paths: title correlation for enrichment and award lookups,
		// theme overlap for recommendations, name lookups for actor info.
		`CREATE INDEX IF NOT EXISTS idx_genres_movie ON genres(movie_id)`,
		`CREATE INDEX IF NOT EXISTS idx_themes_movie ON themes(movie_id)`,
		`CREATE INDEX IF NOT EXISTS idx_cast_movie ON cast_members(movie_id)`,
		`CREATE INDEX IF NOT EXISTS idx_posters_movie ON posters(movie_id)`,
	}

	for _, stmt := range statements {
		if _, err := db.conn.Exec(stmt); err != nil {
			return fmt.Errorf("failed to execute schema statement: %w", err)
		}
	}

	return nil
}
