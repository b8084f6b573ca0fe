// Kinotheca - Movie Catalog and Recommendation Service
// Copyright 2026 Kinotheca contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinotheca/kinotheca

package database

import (
	"context"
	"testing"
)

func TestCanonicalActorName(t *testing.T) {
	db := setupTestDBWithData(t)
	defer db.Close()

	name, err := db.CanonicalActorName(context.Background(), "gARY oLDMAN")
	if err != nil {
		t.Fatalf("CanonicalActorName failed: %v", err)
	}
	if name != "Gary Oldman" {
		t.Errorf("canonical name = %q, want Gary Oldman", name)
	}
}

func TestCanonicalActorNameNotFound(t *testing.T) {
	db := setupTestDBWithData(t)
	defer db.Close()

	_, err := db.CanonicalActorName(context.Background(), "Nobody Anywhere")
	if err != ErrNotFound {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestActorNamesMatching(t *testing.T) {
	db := setupTestDBWithData(t)
	defer db.Close()

	names, err := db.ActorNamesMatching(context.Background(), "OLD", 10)
	if err != nil {
		t.Fatalf("ActorNamesMatching failed: %v", err)
	}
	if len(names) != 1 || names[0] != "Gary Oldman" {
		t.Errorf("names = %v, want [Gary Oldman]", names)
	}
}

func TestFilmographyWithAwards(t *testing.T) {
	db := setupTestDBWithData(t)
	defer db.Close()

	items, err := db.FilmographyWithAwards(context.Background(), "Gary Oldman")
	if err != nil {
		t.Fatalf("FilmographyWithAwards failed: %v", err)
	}

	if len(items) != 3 {
		t.Fatalf("got %d filmography items, want 3: %+v", len(items), items)
	}

	// Ordered by movie_id ascending.
	wantIDs := []int64{1, 2, 6}
	for i, want := range wantIDs {
		if items[i].MovieID != want {
			t.Errorf("items[%d].MovieID = %d, want %d", i, items[i].MovieID, want)
		}
	}

	// The Long Con: appearance with no award record for this actor.
	if items[0].AwardWinner || items[0].AwardCategory != "" {
		t.Errorf("items[0] award = (%q, %v), want none", items[0].AwardCategory, items[0].AwardWinner)
	}

	// Vault City: winning supporting actor row.
	if !items[1].AwardWinner {
		t.Error("items[1].AwardWinner = false, want true")
	}
	if items[1].AwardCategory != "ACTOR IN A SUPPORTING ROLE" {
		t.Errorf("items[1].AwardCategory = %q", items[1].AwardCategory)
	}
	if items[1].Role != "Dealer" {
		t.Errorf("items[1].Role = %q, want Dealer", items[1].Role)
	}
}

func TestFilmographyPrefersWinningRowPerMovie(t *testing.T) {
	db := setupTestDBWithData(t)
	defer db.Close()

	ctx := context.Background()

	// Add a losing nomination for the same actor and film; the winning row
	// must still be the one kept.
	rec := testAwardRecord("ACTOR IN A LEADING ROLE", "Gary Oldman", "Vault City", false)
	if err := db.InsertAwardRecord(ctx, &rec); err != nil {
		t.Fatalf("InsertAwardRecord failed: %v", err)
	}

	items, err := db.FilmographyWithAwards(ctx, "Gary Oldman")
	if err != nil {
		t.Fatalf("FilmographyWithAwards failed: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("got %d filmography items, want 3 (one per movie)", len(items))
	}
	if !items[1].AwardWinner || items[1].AwardCategory != "ACTOR IN A SUPPORTING ROLE" {
		t.Errorf("items[1] award = (%q, %v), want winning supporting role",
			items[1].AwardCategory, items[1].AwardWinner)
	}
}

func TestActorOscarWinsCountsActingCategoriesOnly(t *testing.T) {
	db := setupTestDBWithData(t)
	defer db.Close()

	ctx := context.Background()

	wins, err := db.ActorOscarWins(ctx, "gary oldman")
	if err != nil {
		t.Fatalf("ActorOscarWins failed: %v", err)
	}
	if wins != 1 {
		t.Errorf("wins = %d, want 1", wins)
	}

	// A win outside the ACTOR-prefixed categories does not count.
	rec := testAwardRecord("DIRECTING", "Gary Oldman", "Station Echo", true)
	if err := db.InsertAwardRecord(ctx, &rec); err != nil {
		t.Fatalf("InsertAwardRecord failed: %v", err)
	}

	wins, err = db.ActorOscarWins(ctx, "Gary Oldman")
	if err != nil {
		t.Fatalf("ActorOscarWins failed: %v", err)
	}
	if wins != 1 {
		t.Errorf("wins after directing win = %d, want 1", wins)
	}
}
