// Kinotheca - Movie Catalog and Recommendation Service
// Copyright 2026 Kinotheca contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinotheca/kinotheca

package database

import (
	"strings"
)

// Sort keys accepted by the listing endpoints. Unknown keys fall back to
// rating so that the default listing is always "best first".
const (
	SortByRating = "rating"
	SortByYear   = "year"
	SortByTitle  = "title"
)

// resolveSortColumn maps a client sort key to the SQL expression to order by.
// Aliases preserved from the original public API:
//   - "year", "newest"  -> release year
//   - "movie", "title"  -> title
//   - "popular", "rating", anything else -> rating
//
// Ratings are stored as text, so they get cast for numeric ordering;
// otherwise "9.1" would sort above "10.0".
func resolveSortColumn(sortBy string) string {
	switch strings.ToLower(sortBy) {
	case "year", "newest":
		return "m.date"
	case "movie", "title":
		return "m.name"
	default:
		return "TRY_CAST(m.rating AS DOUBLE)"
	}
}

// resolveSortDirection maps a client order token to ASC or DESC.
// Only the exact token "ASC" selects ascending order; everything else,
// including the legacy "DSC" token, is descending.
func resolveSortDirection(order string) string {
	if order == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// orderByClause builds the full ORDER BY clause for listing queries.
// movie_id ASC is always appended as the final key so that equal primary
// values page deterministically.
func orderByClause(sortBy, order string) string {
	return " ORDER BY " + resolveSortColumn(sortBy) + " " + resolveSortDirection(order) + ", m.movie_id ASC"
}
