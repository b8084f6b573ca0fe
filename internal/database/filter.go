// Kinotheca - Movie Catalog and Recommendation Service
// Copyright 2026 Kinotheca contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinotheca/kinotheca

package database

import (
	"fmt"
	"strings"
)

// CardFilter contains filter parameters for movie card listing queries.
//
// All fields are optional and combine using AND logic. Multi-select fields
// (Genres) use OR logic within the field. The zero value matches the whole
// catalog.
//
// Filter dimensions:
//   - Genres: movie must carry at least one of the named genres
//   - Year: exact match on the release year string
//   - Rating: exact match on the rating string
//   - Title: case-insensitive substring match on the movie title
//   - Actor: movie must list the named cast member, case-insensitive
//
// The HTTP layer treats the sentinel value "all" and the empty string as
// unset and never forwards them here; this type only sees concrete values.
//
// SQL generation: buildConditions() produces parameterized conditions meant
// to be appended to a base query that already has "WHERE 1=1". Genre and
// actor conditions use EXISTS subqueries against the satellite tables, so a
// movie carrying several matching genres still yields a single row without
// DISTINCT.
//
// CardFilter is immutable after creation and safe for concurrent read access.
type CardFilter struct {
	Genres []string
	Year   string
	Rating string
	Title  string
	Actor  string
}

// buildConditions builds WHERE clause conditions for the filter.
// Returns SQL conditions (with a leading " AND " when non-empty) and the
// corresponding arguments.
func (f *CardFilter) buildConditions() (string, []interface{}) {
	var conditions []string
	var args []interface{}

	if len(f.Genres) > 0 {
		placeholders, genreArgs := buildInClause(f.Genres)
		conditions = append(conditions, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM genres g WHERE g.movie_id = m.movie_id AND g.genre IN (%s))",
			placeholders))
		args = append(args, genreArgs...)
	}

	if f.Year != "" {
		conditions = append(conditions, "m.date = ?")
		args = append(args, f.Year)
	}

	if f.Rating != "" {
		conditions = append(conditions, "m.rating = ?")
		args = append(args, f.Rating)
	}

	if f.Title != "" {
		conditions = append(conditions, "LOWER(m.name) LIKE ?")
		args = append(args, "%"+strings.ToLower(f.Title)+"%")
	}

	if f.Actor != "" {
		conditions = append(conditions,
			"EXISTS (SELECT 1 FROM cast_members c WHERE c.movie_id = m.movie_id AND LOWER(c.name) = LOWER(?))")
		args = append(args, f.Actor)
	}

	if len(conditions) > 0 {
		return " AND " + strings.Join(conditions, " AND "), args
	}

	return "", args
}
