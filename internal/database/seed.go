// Kinotheca - Movie Catalog and Recommendation Service
// Copyright 2026 Kinotheca contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinotheca/kinotheca

package database

import (
	"context"
	"fmt"

	"github.com/kinotheca/kinotheca/internal/logging"
	"github.com/kinotheca/kinotheca/internal/models"
)

// SeedSampleData loads a small deterministic catalog for development and
// demos. The fixture is built so that every feature has data behind it:
// overlapping theme sets drive the recommender, cast names correlate to
// award rows, and one movie deliberately has no cast so the "N/A" roles
// sentinel shows up.
//
// Seeding is skipped when the movies table already has rows.
func (db *DB) SeedSampleData(ctx context.Context) error {
	var count int64
	if err := db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM movies`).Scan(&count); err != nil {
		return fmt.Errorf("failed to check existing catalog: %w", err)
	}
	if count > 0 {
		logging.Debug().Int64("movies", count).Msg("Catalog already populated, skipping seed")
		return nil
	}

	logging.Info().Msg("Seeding catalog with sample data...")

	heistThemes := []string{"heist", "betrayal", "loyalty", "crime", "redemption", "family"}
	spaceThemes := []string{"space", "survival", "isolation", "sacrifice", "time", "family"}

	movies := []struct {
		movie  models.Movie
		genres []string
		themes []string
		cast   []models.CastMember
		poster string
	}{
		{
			movie:  models.Movie{MovieID: 1, Title: "The Long Con", ReleaseDate: "2010", Tagline: "One last job.", Description: "A retired safecracker is pulled back for a final score.", Minute: 118, Rating: "8.1"},
			genres: []string{"Crime", "Thriller"},
			themes: heistThemes,
			cast: []models.CastMember{
				{MovieID: 1, Name: "Frances McDormand", Role: "Marge"},
				{MovieID: 1, Name: "Gary Oldman", Role: "Vik"},
			},
			poster: "https://posters.example/long-con.jpg",
		},
		{
			movie:  models.Movie{MovieID: 2, Title: "Vault City", ReleaseDate: "2012", Tagline: "The house always loses.", Description: "Three siblings plan the casino heist of the century.", Minute: 104, Rating: "7.4"},
			genres: []string{"Crime", "Drama"},
			themes: []string{"heist", "betrayal", "loyalty", "crime", "redemption", "greed"},
			cast: []models.CastMember{
				{MovieID: 2, Name: "Gary Oldman", Role: "Dealer"},
				{MovieID: 2, Name: "Viola Davis", Role: "Ronnie"},
			},
			poster: "https://posters.example/vault-city.jpg",
		},
		{
			movie:  models.Movie{MovieID: 3, Title: "Paper Empire", ReleaseDate: "2015", Tagline: "", Description: "A forger builds a counterfeit dynasty and loses everything.", Minute: 131, Rating: "7.9"},
			genres: []string{"Crime", "Drama"},
			themes: []string{"betrayal", "loyalty", "crime", "greed", "family"},
			cast: []models.CastMember{
				{MovieID: 3, Name: "Viola Davis", Role: "Inspector Cole"},
			},
			poster: "https://posters.example/paper-empire.jpg",
		},
		{
			movie:  models.Movie{MovieID: 4, Title: "Farther Out", ReleaseDate: "2014", Tagline: "We were never meant to stay.", Description: "A deep-space crew races a closing launch window home.", Minute: 142, Rating: "8.6"},
			genres: []string{"Science Fiction", "Drama"},
			themes: spaceThemes,
			cast: []models.CastMember{
				{MovieID: 4, Name: "Frances McDormand", Role: "Commander Reyes"},
			},
			poster: "https://posters.example/farther-out.jpg",
		},
		{
			movie:  models.Movie{MovieID: 5, Title: "Perihelion", ReleaseDate: "2019", Tagline: "Closest approach.", Description: "A solo pilot drifts toward the sun with a failing ship.", Minute: 97, Rating: "7.2"},
			genres: []string{"Science Fiction"},
			themes: []string{"space", "survival", "isolation", "sacrifice", "time", "grief"},
			cast:   nil, // no recorded cast: the roles field must read "N/A"
			poster: "https://posters.example/perihelion.jpg",
		},
		{
			movie:  models.Movie{MovieID: 6, Title: "Station Echo", ReleaseDate: "2019", Tagline: "", Description: "Six researchers, one airlock, no rescue.", Minute: 109, Rating: "6.8"},
			genres: []string{"Science Fiction", "Thriller"},
			themes: []string{"space", "survival", "isolation", "betrayal"},
			cast: []models.CastMember{
				{MovieID: 6, Name: "Gary Oldman", Role: "Dr. Hale"},
			},
			poster: "https://posters.example/station-echo.jpg",
		},
	}

	for _, fixture := range movies {
		m := fixture.movie
		if err := db.InsertMovie(ctx, &m); err != nil {
			return err
		}
		for _, genre := range fixture.genres {
			if err := db.InsertGenre(ctx, m.MovieID, genre); err != nil {
				return err
			}
		}
		for _, theme := range fixture.themes {
			if err := db.InsertTheme(ctx, m.MovieID, theme); err != nil {
				return err
			}
		}
		for i := range fixture.cast {
			if err := db.InsertCastMember(ctx, &fixture.cast[i]); err != nil {
				return err
			}
		}
		if fixture.poster != "" {
			if err := db.InsertPoster(ctx, m.MovieID, fixture.poster); err != nil {
				return err
			}
		}
	}

	awards := []models.AwardRecord{
		{YearFilm: 2010, YearCeremony: 2011, Ceremony: 83, Category: "ACTRESS IN A LEADING ROLE", Name: "Frances McDormand", Film: "The Long Con", Winner: true},
		{YearFilm: 2014, YearCeremony: 2015, Ceremony: 87, Category: "BEST PICTURE", Name: "Farther Out Productions", Film: "Farther Out", Winner: false},
		{YearFilm: 2012, YearCeremony: 2013, Ceremony: 85, Category: "ACTOR IN A SUPPORTING ROLE", Name: "Gary Oldman", Film: "Vault City", Winner: true},
		{YearFilm: 2015, YearCeremony: 2016, Ceremony: 88, Category: "ACTRESS IN A SUPPORTING ROLE", Name: "Viola Davis", Film: "Paper Empire", Winner: false},
	}
	for i := range awards {
		if err := db.InsertAwardRecord(ctx, &awards[i]); err != nil {
			return err
		}
	}

	crew := []models.CrewMember{
		{MovieID: 1, Name: "Sofia Marquez", Job: "Director"},
		{MovieID: 4, Name: "Ken Alder", Job: "Director"},
		{MovieID: 4, Name: "Priya Nair", Job: "Composer"},
	}
	for i := range crew {
		if err := db.InsertCrewMember(ctx, &crew[i]); err != nil {
			return err
		}
	}

	languages := []models.MovieLanguage{
		{MovieID: 1, Type: "Primary", Language: "English"},
		{MovieID: 4, Type: "Primary", Language: "English"},
		{MovieID: 4, Type: "Spoken", Language: "Russian"},
	}
	for i := range languages {
		if err := db.InsertLanguage(ctx, &languages[i]); err != nil {
			return err
		}
	}

	releases := []models.Release{
		{MovieID: 1, Country: "USA", Date: "2010-09-17", Type: "Theatrical", Rating: "R"},
		{MovieID: 4, Country: "USA", Date: "2014-11-07", Type: "Theatrical", Rating: "PG-13"},
		{MovieID: 4, Country: "UK", Date: "2014-11-14", Type: "Theatrical", Rating: "12A"},
	}
	for i := range releases {
		if err := db.InsertRelease(ctx, &releases[i]); err != nil {
			return err
		}
	}

	for movieID, studio := range map[int64]string{1: "Corner Booth Pictures", 4: "Aphelion Films"} {
		if err := db.InsertStudio(ctx, movieID, studio); err != nil {
			return err
		}
	}
	for movieID, country := range map[int64]string{1: "USA", 4: "USA"} {
		if err := db.InsertCountry(ctx, movieID, country); err != nil {
			return err
		}
	}

	logging.Info().Int("movies", len(movies)).Int("awards", len(awards)).Msg("Catalog seeded")
	return nil
}
