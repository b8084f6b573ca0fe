// Kinotheca - Movie Catalog and Recommendation Service
// Copyright 2026 Kinotheca contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinotheca/kinotheca

package database

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/kinotheca/kinotheca/internal/models"
)

// testAwardRecord builds an award row for insertion in tests.
func testAwardRecord(category, name, film string, winner bool) models.AwardRecord {
	return models.AwardRecord{
		YearFilm:     2020,
		YearCeremony: 2021,
		Ceremony:     93,
		Category:     category,
		Name:         name,
		Film:         film,
		Winner:       winner,
	}
}

func TestInsertAwardRecordAssignsID(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	rec := testAwardRecord("BEST PICTURE", "Someone", "Some Film", false)
	if err := db.InsertAwardRecord(context.Background(), &rec); err != nil {
		t.Fatalf("InsertAwardRecord failed: %v", err)
	}
	if rec.ID == uuid.Nil {
		t.Error("ID was not assigned on insert")
	}
}

func TestAwardsForFilmIsCaseInsensitive(t *testing.T) {
	db := setupTestDBWithData(t)
	defer db.Close()

	records, err := db.AwardsForFilm(context.Background(), "the long con")
	if err != nil {
		t.Fatalf("AwardsForFilm failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].Category != "ACTRESS IN A LEADING ROLE" || !records[0].Winner {
		t.Errorf("record = %+v, want winning leading actress row", records[0])
	}
}

func TestAwardsByCeremonyYear(t *testing.T) {
	db := setupTestDBWithData(t)
	defer db.Close()

	records, err := db.AwardsByCeremonyYear(context.Background(), 2013)
	if err != nil {
		t.Fatalf("AwardsByCeremonyYear failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].Film != "Vault City" {
		t.Errorf("Film = %q, want Vault City", records[0].Film)
	}
}

func TestAwardWinners(t *testing.T) {
	db := setupTestDBWithData(t)
	defer db.Close()

	records, err := db.AwardWinners(context.Background(), 0)
	if err != nil {
		t.Fatalf("AwardWinners failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d winners, want 2", len(records))
	}
	for _, rec := range records {
		if !rec.Winner {
			t.Errorf("non-winning row %+v in winners result", rec)
		}
	}
	// Most recent ceremony first.
	if records[0].YearCeremony < records[1].YearCeremony {
		t.Errorf("winners out of order: %d before %d",
			records[0].YearCeremony, records[1].YearCeremony)
	}

	limited, err := db.AwardWinners(context.Background(), 1)
	if err != nil {
		t.Fatalf("AwardWinners with limit failed: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("got %d winners with limit 1", len(limited))
	}
}

func TestAwardsByCategory(t *testing.T) {
	db := setupTestDBWithData(t)
	defer db.Close()

	records, err := db.AwardsByCategory(context.Background(), "best picture")
	if err != nil {
		t.Fatalf("AwardsByCategory failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].Film != "Farther Out" || records[0].Winner {
		t.Errorf("record = %+v, want Farther Out nomination", records[0])
	}
}

func TestFilmWonBestPicture(t *testing.T) {
	db := setupTestDBWithData(t)
	defer db.Close()
	ctx := context.Background()

	// Farther Out was nominated but did not win.
	won, err := db.FilmWonBestPicture(ctx, "farther out", 0)
	if err != nil {
		t.Fatalf("FilmWonBestPicture failed: %v", err)
	}
	if won {
		t.Error("nomination reported as win")
	}

	rec := testAwardRecord("BEST PICTURE", "", "Farther Out", true)
	rec.YearCeremony = 2015
	if err := db.InsertAwardRecord(ctx, &rec); err != nil {
		t.Fatalf("InsertAwardRecord failed: %v", err)
	}

	won, err = db.FilmWonBestPicture(ctx, "Farther Out", 2015)
	if err != nil {
		t.Fatalf("FilmWonBestPicture failed: %v", err)
	}
	if !won {
		t.Error("winning row not found for pinned ceremony year")
	}

	won, err = db.FilmWonBestPicture(ctx, "Farther Out", 1999)
	if err != nil {
		t.Fatalf("FilmWonBestPicture failed: %v", err)
	}
	if won {
		t.Error("win reported for the wrong ceremony year")
	}
}

func TestActorWonForFilm(t *testing.T) {
	db := setupTestDBWithData(t)
	defer db.Close()
	ctx := context.Background()

	won, err := db.ActorWonForFilm(ctx, "GARY OLDMAN", "vault city")
	if err != nil {
		t.Fatalf("ActorWonForFilm failed: %v", err)
	}
	if !won {
		t.Error("expected a win for Gary Oldman in Vault City")
	}

	won, err = db.ActorWonForFilm(ctx, "Viola Davis", "Paper Empire")
	if err != nil {
		t.Fatalf("ActorWonForFilm failed: %v", err)
	}
	if won {
		t.Error("nomination reported as win")
	}
}

func TestCountAwardsByNameAndCategory(t *testing.T) {
	db := setupTestDBWithData(t)
	defer db.Close()
	ctx := context.Background()

	count, err := db.CountAwardsByNameAndCategory(ctx, "frances mcdormand", "ACTRESS")
	if err != nil {
		t.Fatalf("CountAwardsByNameAndCategory failed: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}

	// ACTOR prefix does not match ACTRESS categories.
	count, err = db.CountAwardsByNameAndCategory(ctx, "Frances McDormand", "ACTOR")
	if err != nil {
		t.Fatalf("CountAwardsByNameAndCategory failed: %v", err)
	}
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}
}

func TestDistinctCountries(t *testing.T) {
	db := setupTestDBWithData(t)
	defer db.Close()

	countries, err := db.DistinctCountries(context.Background())
	if err != nil {
		t.Fatalf("DistinctCountries failed: %v", err)
	}
	if len(countries) != 1 || countries[0] != "USA" {
		t.Errorf("countries = %v, want [USA]", countries)
	}
}

func TestSatelliteLookups(t *testing.T) {
	db := setupTestDBWithData(t)
	defer db.Close()

	ctx := context.Background()

	genres, err := db.DistinctGenres(ctx)
	if err != nil {
		t.Fatalf("DistinctGenres failed: %v", err)
	}
	if len(genres) != 4 {
		t.Errorf("genres = %v, want 4 distinct", genres)
	}

	movieGenres, err := db.GenresForMovie(ctx, 1)
	if err != nil {
		t.Fatalf("GenresForMovie failed: %v", err)
	}
	if len(movieGenres) != 2 || movieGenres[0] != "Crime" || movieGenres[1] != "Thriller" {
		t.Errorf("movie genres = %v, want [Crime Thriller]", movieGenres)
	}

	crew, err := db.CrewForMovie(ctx, 4)
	if err != nil {
		t.Fatalf("CrewForMovie failed: %v", err)
	}
	if len(crew) != 2 {
		t.Errorf("crew = %v, want 2 members", crew)
	}

	langs, err := db.LanguagesForMovie(ctx, 4)
	if err != nil {
		t.Fatalf("LanguagesForMovie failed: %v", err)
	}
	if len(langs) != 2 {
		t.Errorf("languages = %v, want 2 entries", langs)
	}

	releases, err := db.ReleasesForMovie(ctx, 4)
	if err != nil {
		t.Fatalf("ReleasesForMovie failed: %v", err)
	}
	if len(releases) != 2 {
		t.Errorf("releases = %v, want 2 entries", releases)
	}

	posters, err := db.PostersForMovie(ctx, 1)
	if err != nil {
		t.Fatalf("PostersForMovie failed: %v", err)
	}
	if len(posters) != 1 {
		t.Errorf("posters = %v, want 1 link", posters)
	}

	cast, err := db.CastForMovie(ctx, 1)
	if err != nil {
		t.Fatalf("CastForMovie failed: %v", err)
	}
	if len(cast) != 2 {
		t.Errorf("cast = %v, want 2 members", cast)
	}

	studios, err := db.StudiosForMovie(ctx, 1)
	if err != nil {
		t.Fatalf("StudiosForMovie failed: %v", err)
	}
	if len(studios) != 1 || studios[0] != "Corner Booth Pictures" {
		t.Errorf("studios = %v", studios)
	}

	countries, err := db.CountriesForMovie(ctx, 4)
	if err != nil {
		t.Fatalf("CountriesForMovie failed: %v", err)
	}
	if len(countries) != 1 || countries[0] != "USA" {
		t.Errorf("countries = %v", countries)
	}
}
