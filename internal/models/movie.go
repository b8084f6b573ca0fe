// Kinotheca - Movie Catalog and Recommendation Service
// Copyright 2026 Kinotheca contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinotheca/kinotheca

// Package models defines data structures used throughout the Kinotheca application.
// These models represent catalog entities, award records, and API responses.
package models

import (
	"github.com/google/uuid"
)

// Movie is the core catalog entity.
//
// Fields mirror the movies table one to one. ReleaseDate and Rating are stored
// as text because the upstream dataset ships them as free-form strings; the
// filter layer compares them as exact strings and never parses them into
// numeric columns.
//
// Key fields:
//   - MovieID: stable integer identifier, unique across the catalog
//   - Title: display title, correlated case-insensitively with award records
//   - ReleaseDate: release year as a string (e.g. "2010")
//   - Minute: runtime in minutes, 0 when unknown
//   - Rating: aggregate rating as a string (e.g. "8.4"), "0.0" when unknown
type Movie struct {
	MovieID     int64  `json:"movieId"`
	Title       string `json:"title" validate:"required"`
	ReleaseDate string `json:"date,omitempty"`
	Tagline     string `json:"tagline,omitempty"`
	Description string `json:"description,omitempty"`
	Minute      int    `json:"minute,omitempty"`
	Rating      string `json:"rating,omitempty"`
}

// Defaults fills in the dataset's sentinel values for fields the client
// omitted. New movies without a runtime get 0 and without a rating get "0.0".
func (m *Movie) Defaults() {
	if m.Rating == "" {
		m.Rating = "0.0"
	}
}

// MovieCard is the enriched presentation row returned by all movie listing
// and recommendation endpoints.
//
// Roles is a comma-separated list of distinct cast member names, "N/A" when
// the movie has no recorded cast. OscarWinner is true when at least one award
// record with winner status correlates to the movie title, compared
// case-insensitively.
//
// Field order is part of the public contract and must not change.
type MovieCard struct {
	MovieID       int64  `json:"movieId"`
	Title         string `json:"title"`
	Tagline       string `json:"tagline"`
	Description   string `json:"description"`
	Rating        string `json:"rating"`
	YearOfRelease string `json:"yearOfRelease"`
	PosterLink    string `json:"posterLink"`
	Roles         string `json:"roles"`
	OscarWinner   bool   `json:"oscarWinner"`
}

// MoviePage is a single page of enriched movie cards plus the total match
// count for the underlying filter, before paging.
type MoviePage struct {
	Total  int64       `json:"total"`
	Page   int         `json:"page"`
	Size   int         `json:"size"`
	Movies []MovieCard `json:"movies"`
}

// ActorInfo aggregates everything the catalog knows about a single actor.
//
// Name carries the canonical casing from the cast table, regardless of how
// the lookup spelled it. Filmography holds one entry per distinct movie; when
// an actor has both winning and non-winning award records for the same film,
// the winning one is kept.
type ActorInfo struct {
	Name        string            `json:"name"`
	OscarWins   int64             `json:"oscarWins"`
	Filmography []FilmographyItem `json:"filmography"`
}

// FilmographyItem is one movie in an actor's filmography, with the award
// outcome for that actor and film if any record exists.
type FilmographyItem struct {
	MovieID       int64  `json:"movieId"`
	Title         string `json:"title"`
	YearOfRelease string `json:"yearOfRelease"`
	Rating        string `json:"rating"`
	Role          string `json:"role"`
	AwardCategory string `json:"awardCategory,omitempty"`
	AwardWinner   bool   `json:"awardWinner"`
}

// CastMember links an actor name to a movie with the role played.
type CastMember struct {
	MovieID int64  `json:"movieId"`
	Name    string `json:"name"`
	Role    string `json:"role,omitempty"`
}

// CrewMember links a crew person to a movie with their job.
type CrewMember struct {
	MovieID int64  `json:"movieId"`
	Name    string `json:"name"`
	Job     string `json:"job"`
}

// CrewInfo groups a movie's crew by job for the crew endpoint.
type CrewInfo struct {
	Directors []string `json:"directors"`
	Producers []string `json:"producers"`
	Writers   []string `json:"writers"`
	Others    []string `json:"others"`
}

// GroupCrew folds flat crew rows into a CrewInfo. Unknown jobs land in
// Others with the job kept alongside the name.
func GroupCrew(crew []CrewMember) CrewInfo {
	info := CrewInfo{
		Directors: []string{},
		Producers: []string{},
		Writers:   []string{},
		Others:    []string{},
	}
	for _, member := range crew {
		switch member.Job {
		case "Director":
			info.Directors = append(info.Directors, member.Name)
		case "Producer":
			info.Producers = append(info.Producers, member.Name)
		case "Writer", "Screenplay":
			info.Writers = append(info.Writers, member.Name)
		default:
			info.Others = append(info.Others, member.Name+" ("+member.Job+")")
		}
	}
	return info
}

// MovieLanguage is one spoken or primary language entry for a movie.
type MovieLanguage struct {
	MovieID  int64  `json:"movieId"`
	Type     string `json:"type,omitempty"`
	Language string `json:"language"`
}

// Release is one regional release of a movie, with the local certification
// if the dataset records one.
type Release struct {
	MovieID int64  `json:"movieId"`
	Country string `json:"country,omitempty"`
	Date    string `json:"date,omitempty"`
	Type    string `json:"type,omitempty"`
	Rating  string `json:"rating,omitempty"`
}

// AwardRecord is one row of the Academy Awards dataset.
//
// Film correlates to Movie.Title case-insensitively; there is no foreign key.
// Winner is stored as the strings "true"/"false" upstream and normalized to a
// bool at the ingest boundary.
type AwardRecord struct {
	ID           uuid.UUID `json:"id"`
	YearFilm     int       `json:"yearFilm"`
	YearCeremony int       `json:"yearCeremony"`
	Ceremony     int       `json:"ceremony"`
	Category     string    `json:"category"`
	Name         string    `json:"name"`
	Film         string    `json:"film"`
	Winner       bool      `json:"winner"`
}

// RelatedMovie is a recommendation result: an enriched card plus the number
// of distinct themes it shares with the source movie.
type RelatedMovie struct {
	MovieCard
	SharedThemes int64 `json:"sharedThemes"`
}
