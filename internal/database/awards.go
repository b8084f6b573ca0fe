// Kinotheca - Movie Catalog and Recommendation Service
// Copyright 2026 Kinotheca contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinotheca/kinotheca

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kinotheca/kinotheca/internal/metrics"
	"github.com/kinotheca/kinotheca/internal/models"
)

// InsertAwardRecord writes one award row. An ID is assigned when the caller
// left it zero.
func (db *DB) InsertAwardRecord(ctx context.Context, record *models.AwardRecord) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}

	query := `
	INSERT INTO oscar_awards (id, year_film, year_ceremony, ceremony, category, name, film, winner)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	start := time.Now()
	_, err := db.conn.ExecContext(ctx, query,
		record.ID.String(), record.YearFilm, record.YearCeremony, record.Ceremony,
		record.Category, record.Name, record.Film, record.Winner,
	)
	metrics.RecordDBQuery("insert", "oscar_awards", time.Since(start), err)
	if err != nil {
		return fmt.Errorf("failed to insert award record: %w", err)
	}

	return nil
}

// AwardsForFilm returns every award row correlated to the film title,
// case-insensitive, wins first then by ceremony year.
func (db *DB) AwardsForFilm(ctx context.Context, title string) ([]models.AwardRecord, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	query := `
	SELECT id, year_film, year_ceremony, ceremony, COALESCE(category, ''), COALESCE(name, ''), COALESCE(film, ''), winner
	FROM oscar_awards
	WHERE LOWER(film) = LOWER(?)
	ORDER BY winner DESC, year_ceremony, category`

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, query, title)
	metrics.RecordDBQuery("select", "oscar_awards", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to query awards for film: %w", err)
	}
	defer closeWithLog(rows, "award rows")

	return scanAwardRecords(rows)
}

// AwardsByCeremonyYear returns every award row for one ceremony year, ordered
// by category with winners leading their category.
func (db *DB) AwardsByCeremonyYear(ctx context.Context, year int) ([]models.AwardRecord, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	query := `
	SELECT id, year_film, year_ceremony, ceremony, COALESCE(category, ''), COALESCE(name, ''), COALESCE(film, ''), winner
	FROM oscar_awards
	WHERE year_ceremony = ?
	ORDER BY category, winner DESC, name`

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, query, year)
	metrics.RecordDBQuery("select", "oscar_awards", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to query awards for ceremony year %d: %w", year, err)
	}
	defer closeWithLog(rows, "award rows")

	return scanAwardRecords(rows)
}

// AwardWinners returns winning rows only, most recent ceremonies first.
// A limit of 0 or less returns every winner.
func (db *DB) AwardWinners(ctx context.Context, limit int) ([]models.AwardRecord, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	query := `
	SELECT id, year_film, year_ceremony, ceremony, COALESCE(category, ''), COALESCE(name, ''), COALESCE(film, ''), winner
	FROM oscar_awards
	WHERE winner
	ORDER BY year_ceremony DESC, category`
	args := []interface{}{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, query, args...)
	metrics.RecordDBQuery("select", "oscar_awards", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to query award winners: %w", err)
	}
	defer closeWithLog(rows, "award rows")

	return scanAwardRecords(rows)
}

// AwardsByCategory returns every award row for one category,
// case-insensitive, most recent ceremonies first.
func (db *DB) AwardsByCategory(ctx context.Context, category string) ([]models.AwardRecord, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	query := `
	SELECT id, year_film, year_ceremony, ceremony, COALESCE(category, ''), COALESCE(name, ''), COALESCE(film, ''), winner
	FROM oscar_awards
	WHERE LOWER(category) = LOWER(?)
	ORDER BY year_ceremony DESC, winner DESC`

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, query, category)
	metrics.RecordDBQuery("select", "oscar_awards", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to query awards for category: %w", err)
	}
	defer closeWithLog(rows, "award rows")

	return scanAwardRecords(rows)
}

// FilmWonBestPicture reports whether the film has a winning BEST PICTURE
// row, optionally pinned to one ceremony year (0 means any year).
func (db *DB) FilmWonBestPicture(ctx context.Context, film string, ceremonyYear int) (bool, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	query := `
	SELECT COUNT(*) FROM oscar_awards
	WHERE LOWER(film) = LOWER(?) AND category = 'BEST PICTURE' AND winner`
	args := []interface{}{film}
	if ceremonyYear > 0 {
		query += ` AND year_ceremony = ?`
		args = append(args, ceremonyYear)
	}

	var count int64
	start := time.Now()
	err := db.conn.QueryRowContext(ctx, query, args...).Scan(&count)
	metrics.RecordDBQuery("select", "oscar_awards", time.Since(start), err)
	if err != nil {
		return false, fmt.Errorf("failed to check best picture win: %w", err)
	}

	return count > 0, nil
}

// ActorWonForFilm reports whether the named person has a winning row
// correlated to the film. Both matches are case-insensitive.
func (db *DB) ActorWonForFilm(ctx context.Context, name, film string) (bool, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	query := `
	SELECT COUNT(*) FROM oscar_awards
	WHERE LOWER(name) = LOWER(?) AND LOWER(film) = LOWER(?) AND winner`

	var count int64
	start := time.Now()
	err := db.conn.QueryRowContext(ctx, query, name, film).Scan(&count)
	metrics.RecordDBQuery("select", "oscar_awards", time.Since(start), err)
	if err != nil {
		return false, fmt.Errorf("failed to check actor win for film: %w", err)
	}

	return count > 0, nil
}

// CountAwardsByNameAndCategory counts winning rows for a person across the
// categories matching the prefix. ActorOscarWins is this with 'ACTOR'.
func (db *DB) CountAwardsByNameAndCategory(ctx context.Context, name, categoryPrefix string) (int64, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	query := `
	SELECT COUNT(*) FROM oscar_awards
	WHERE LOWER(name) = LOWER(?) AND category LIKE ? AND winner`

	var count int64
	start := time.Now()
	err := db.conn.QueryRowContext(ctx, query, name, categoryPrefix+"%").Scan(&count)
	metrics.RecordDBQuery("select", "oscar_awards", time.Since(start), err)
	if err != nil {
		return 0, fmt.Errorf("failed to count awards by name and category: %w", err)
	}

	return count, nil
}

// scanAwardRecords drains an award result set. DuckDB returns UUID columns as
// 16 raw bytes through database/sql, so the ID is parsed explicitly.
func scanAwardRecords(rows *sql.Rows) ([]models.AwardRecord, error) {
	var records []models.AwardRecord
	for rows.Next() {
		var rec models.AwardRecord
		var id []byte
		err := rows.Scan(
			&id, &rec.YearFilm, &rec.YearCeremony, &rec.Ceremony,
			&rec.Category, &rec.Name, &rec.Film, &rec.Winner,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan award record: %w", err)
		}

		rec.ID, err = uuid.FromBytes(id)
		if err != nil {
			return nil, fmt.Errorf("failed to parse award id %q: %w", id, err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating award records: %w", err)
	}

	return records, nil
}
