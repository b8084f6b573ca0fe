// Kinotheca - Movie Catalog and Recommendation Service
// Copyright 2026 Kinotheca contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinotheca/kinotheca

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kinotheca/kinotheca/internal/config"
	"github.com/kinotheca/kinotheca/internal/database"
	"github.com/kinotheca/kinotheca/internal/models"
	"github.com/kinotheca/kinotheca/internal/recommend"
)

// testEnvelope mirrors models.APIResponse with raw data for per-test decoding.
type testEnvelope struct {
	Status   string           `json:"status"`
	Data     json.RawMessage  `json:"data"`
	Metadata models.Metadata  `json:"metadata"`
	Error    *models.APIError `json:"error"`
}

func testServerConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: 8435, Timeout: 30 * time.Second},
		Database: config.DatabaseConfig{
			Path:      ":memory:",
			MaxMemory: "1GB",
		},
		API: config.APIConfig{
			DefaultPageSize: 12,
			MaxPageSize:     100,
			RateLimitReqs:   10000,
			RateLimitWindow: time.Minute,
			CORSOrigins:     []string{"*"},
		},
		Catalog: config.CatalogConfig{
			MinSharedThemes: 5,
			RelatedPageSize: 12,
		},
	}
}

// setupTestRouter builds the full HTTP stack over a seeded in-memory catalog.
func setupTestRouter(t *testing.T) http.Handler {
	t.Helper()

	cfg := testServerConfig()
	db, err := database.New(&cfg.Database)
	require.NoError(t, err, "failed to create test database")
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.SeedSampleData(context.Background()))

	engine := recommend.New(db, &cfg.Catalog)
	handler := NewHandler(db, engine, cfg)
	return NewRouter(handler, &cfg.API)
}

func doRequest(t *testing.T, router http.Handler, method, path string, body string) (*httptest.ResponseRecorder, *testEnvelope) {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var envelope testEnvelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope),
			"response body is not valid JSON: %s", rec.Body.String())
	}
	return rec, &envelope
}

func decodePage(t *testing.T, envelope *testEnvelope) *models.MoviePage {
	t.Helper()
	var page models.MoviePage
	require.NoError(t, json.Unmarshal(envelope.Data, &page))
	return &page
}

func TestMoviesDefaultListing(t *testing.T) {
	router := setupTestRouter(t)

	rec, envelope := doRequest(t, router, http.MethodGet, "/api/v1/movies", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", envelope.Status)

	page := decodePage(t, envelope)
	assert.Equal(t, int64(6), page.Total)
	require.Len(t, page.Movies, 6)
	// Default sort is rating descending.
	assert.Equal(t, int64(4), page.Movies[0].MovieID)
	assert.Equal(t, "Farther Out", page.Movies[0].Title)
}

func TestMoviesResponseHeaders(t *testing.T) {
	router := setupTestRouter(t)

	rec, _ := doRequest(t, router, http.MethodGet, "/api/v1/movies", "")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	assert.NotEmpty(t, rec.Header().Get("ETag"))
	assert.Equal(t, "public, max-age=60", rec.Header().Get("Cache-Control"))
}

func TestMoviesGenreFilter(t *testing.T) {
	router := setupTestRouter(t)

	_, envelope := doRequest(t, router, http.MethodGet, "/api/v1/movies?genres=Crime", "")
	page := decodePage(t, envelope)
	assert.Equal(t, int64(3), page.Total)
}

func TestMoviesWildcardParamsMatchEverything(t *testing.T) {
	router := setupTestRouter(t)

	_, envelope := doRequest(t, router, http.MethodGet, "/api/v1/movies?genres=all&year=ALL&rating=all", "")
	page := decodePage(t, envelope)
	assert.Equal(t, int64(6), page.Total)
}

func TestMoviesPaging(t *testing.T) {
	router := setupTestRouter(t)

	_, envelope := doRequest(t, router, http.MethodGet, "/api/v1/movies?page=1&size=4", "")
	page := decodePage(t, envelope)
	assert.Equal(t, int64(6), page.Total)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 4, page.Size)
	assert.Len(t, page.Movies, 2)
}

func TestMoviesInvalidRatingRejected(t *testing.T) {
	router := setupTestRouter(t)

	rec, envelope := doRequest(t, router, http.MethodGet, "/api/v1/movies?rating=11.5", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, models.ErrCodeValidation, envelope.Error.Code)
}

func TestMoviesInvalidOrderRejected(t *testing.T) {
	router := setupTestRouter(t)

	rec, _ := doRequest(t, router, http.MethodGet, "/api/v1/movies?order=SIDEWAYS", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListingRoutesRejectInvalidOrder(t *testing.T) {
	router := setupTestRouter(t)

	paths := []string{
		"/api/v1/movies/search?title=con&order=SIDEWAYS",
		"/api/v1/movies/genre/Crime?order=SIDEWAYS",
		"/api/v1/movies/year/2019?order=SIDEWAYS",
		"/api/v1/movies/actor/gary%20oldman?order=SIDEWAYS",
	}
	for _, path := range paths {
		rec, envelope := doRequest(t, router, http.MethodGet, path, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
		require.NotNil(t, envelope.Error, path)
		assert.Equal(t, models.ErrCodeValidation, envelope.Error.Code, path)
	}
}

func TestMoviesSearch(t *testing.T) {
	router := setupTestRouter(t)

	_, envelope := doRequest(t, router, http.MethodGet, "/api/v1/movies/search?title=con", "")
	page := decodePage(t, envelope)
	require.Len(t, page.Movies, 1)
	assert.Equal(t, "The Long Con", page.Movies[0].Title)
}

func TestMoviesSearchRequiresTitle(t *testing.T) {
	router := setupTestRouter(t)

	rec, _ := doRequest(t, router, http.MethodGet, "/api/v1/movies/search", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMoviesByPathFilters(t *testing.T) {
	router := setupTestRouter(t)

	_, envelope := doRequest(t, router, http.MethodGet, "/api/v1/movies/genre/Crime", "")
	assert.Equal(t, int64(3), decodePage(t, envelope).Total)

	_, envelope = doRequest(t, router, http.MethodGet, "/api/v1/movies/year/2019", "")
	assert.Equal(t, int64(2), decodePage(t, envelope).Total)

	_, envelope = doRequest(t, router, http.MethodGet, "/api/v1/movies/actor/gary%20oldman", "")
	assert.Equal(t, int64(3), decodePage(t, envelope).Total)

	// The wildcard in a path position lists the whole catalog.
	_, envelope = doRequest(t, router, http.MethodGet, "/api/v1/movies/genre/all", "")
	assert.Equal(t, int64(6), decodePage(t, envelope).Total)
}

func TestMovieByID(t *testing.T) {
	router := setupTestRouter(t)

	rec, envelope := doRequest(t, router, http.MethodGet, "/api/v1/movies/1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var card models.MovieCard
	require.NoError(t, json.Unmarshal(envelope.Data, &card))
	assert.Equal(t, "The Long Con", card.Title)
	assert.True(t, card.OscarWinner)
	assert.Contains(t, card.Roles, "Frances McDormand")
}

func TestMovieByIDNotFound(t *testing.T) {
	router := setupTestRouter(t)

	rec, envelope := doRequest(t, router, http.MethodGet, "/api/v1/movies/9999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, models.ErrCodeNotFound, envelope.Error.Code)
}

func TestMovieByIDMalformed(t *testing.T) {
	router := setupTestRouter(t)

	rec, _ := doRequest(t, router, http.MethodGet, "/api/v1/movies/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMovieYears(t *testing.T) {
	router := setupTestRouter(t)

	_, envelope := doRequest(t, router, http.MethodGet, "/api/v1/movies/years", "")
	var years []string
	require.NoError(t, json.Unmarshal(envelope.Data, &years))
	assert.Equal(t, []string{"2019", "2015", "2014", "2012", "2010"}, years)
}

func TestRelatedMovies(t *testing.T) {
	router := setupTestRouter(t)

	rec, envelope := doRequest(t, router, http.MethodGet, "/api/v1/movies/1/related", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var related []models.RelatedMovie
	require.NoError(t, json.Unmarshal(envelope.Data, &related))
	require.Len(t, related, 1)
	assert.Equal(t, int64(2), related[0].MovieID)
	assert.Equal(t, int64(5), related[0].SharedThemes)
}

func TestRelatedMoviesPaging(t *testing.T) {
	router := setupTestRouter(t)

	// Only Vault City clears the threshold, so page 0 holds it alone and
	// page 1 is past the end of the ranked list.
	_, envelope := doRequest(t, router, http.MethodGet, "/api/v1/movies/1/related?size=1&page=0", "")
	var first []models.RelatedMovie
	require.NoError(t, json.Unmarshal(envelope.Data, &first))
	require.Len(t, first, 1)
	assert.Equal(t, int64(2), first[0].MovieID)

	rec, envelope := doRequest(t, router, http.MethodGet, "/api/v1/movies/1/related?size=1&page=1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var second []models.RelatedMovie
	require.NoError(t, json.Unmarshal(envelope.Data, &second))
	assert.Empty(t, second)
}

func TestRelatedMoviesUnknownSourceIs404(t *testing.T) {
	router := setupTestRouter(t)

	rec, envelope := doRequest(t, router, http.MethodGet, "/api/v1/movies/9999/related", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, models.ErrCodeNotFound, envelope.Error.Code)
}

func TestRelatedMoviesBelowThresholdIsEmptyList(t *testing.T) {
	router := setupTestRouter(t)

	// Station Echo has 4 themes, below the threshold of 5.
	rec, envelope := doRequest(t, router, http.MethodGet, "/api/v1/movies/6/related", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var related []models.RelatedMovie
	require.NoError(t, json.Unmarshal(envelope.Data, &related))
	assert.Empty(t, related)
}

func TestCreateMovie(t *testing.T) {
	router := setupTestRouter(t)

	body := `{"movieId": 42, "title": "New Arrival", "date": "2026"}`
	rec, _ := doRequest(t, router, http.MethodPost, "/api/v1/movies", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	_, envelope := doRequest(t, router, http.MethodGet, "/api/v1/movies/42", "")
	var card models.MovieCard
	require.NoError(t, json.Unmarshal(envelope.Data, &card))
	assert.Equal(t, "New Arrival", card.Title)
	// Omitted fields pick up the dataset sentinels.
	assert.Equal(t, "0.0", card.Rating)
	assert.Equal(t, "N/A", card.Roles)
}

func TestCreateMovieRequiresTitle(t *testing.T) {
	router := setupTestRouter(t)

	rec, envelope := doRequest(t, router, http.MethodPost, "/api/v1/movies", `{"movieId": 43}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, models.ErrCodeValidation, envelope.Error.Code)
}

func TestActorSearch(t *testing.T) {
	router := setupTestRouter(t)

	_, envelope := doRequest(t, router, http.MethodGet, "/api/v1/actors?q=old", "")
	var names []string
	require.NoError(t, json.Unmarshal(envelope.Data, &names))
	assert.Equal(t, []string{"Gary Oldman"}, names)
}

func TestActorInfo(t *testing.T) {
	router := setupTestRouter(t)

	rec, envelope := doRequest(t, router, http.MethodGet, "/api/v1/actors/info/gary%20oldman", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var info models.ActorInfo
	require.NoError(t, json.Unmarshal(envelope.Data, &info))
	assert.Equal(t, "Gary Oldman", info.Name, "lookup normalizes to canonical casing")
	assert.Equal(t, int64(1), info.OscarWins)
	assert.Len(t, info.Filmography, 3)
}

func TestActorInfoUnknownIs404(t *testing.T) {
	router := setupTestRouter(t)

	rec, envelope := doRequest(t, router, http.MethodGet, "/api/v1/actors/info/nobody", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, models.ErrCodeNotFound, envelope.Error.Code)
}

func TestSatelliteEndpoints(t *testing.T) {
	router := setupTestRouter(t)

	_, envelope := doRequest(t, router, http.MethodGet, "/api/v1/genres", "")
	var genres []string
	require.NoError(t, json.Unmarshal(envelope.Data, &genres))
	assert.Len(t, genres, 4)

	_, envelope = doRequest(t, router, http.MethodGet, "/api/v1/movies/1/cast", "")
	var cast []models.CastMember
	require.NoError(t, json.Unmarshal(envelope.Data, &cast))
	assert.Len(t, cast, 2)

	_, envelope = doRequest(t, router, http.MethodGet, "/api/v1/movies/4/crew", "")
	var crew models.CrewInfo
	require.NoError(t, json.Unmarshal(envelope.Data, &crew))
	assert.Equal(t, []string{"Ken Alder"}, crew.Directors)
	assert.Len(t, crew.Others, 1)

	_, envelope = doRequest(t, router, http.MethodGet, "/api/v1/countries", "")
	var countries []string
	require.NoError(t, json.Unmarshal(envelope.Data, &countries))
	assert.Equal(t, []string{"USA"}, countries)

	_, envelope = doRequest(t, router, http.MethodGet, "/api/v1/movies/4/releases", "")
	var releases []models.Release
	require.NoError(t, json.Unmarshal(envelope.Data, &releases))
	assert.Len(t, releases, 2)

	// A movie without satellite rows answers an empty list, not null.
	_, envelope = doRequest(t, router, http.MethodGet, "/api/v1/movies/5/cast", "")
	assert.Equal(t, "[]", strings.TrimSpace(string(envelope.Data)))
}

func TestAwardsEndpoints(t *testing.T) {
	router := setupTestRouter(t)

	_, envelope := doRequest(t, router, http.MethodGet, "/api/v1/awards/film/the%20long%20con", "")
	var records []models.AwardRecord
	require.NoError(t, json.Unmarshal(envelope.Data, &records))
	require.Len(t, records, 1)
	assert.True(t, records[0].Winner)

	_, envelope = doRequest(t, router, http.MethodGet, "/api/v1/awards/ceremony/2013", "")
	records = nil
	require.NoError(t, json.Unmarshal(envelope.Data, &records))
	require.Len(t, records, 1)
	assert.Equal(t, "Vault City", records[0].Film)

	_, envelope = doRequest(t, router, http.MethodGet, "/api/v1/awards/winners", "")
	records = nil
	require.NoError(t, json.Unmarshal(envelope.Data, &records))
	assert.Len(t, records, 2)

	_, envelope = doRequest(t, router, http.MethodGet, "/api/v1/awards/category/BEST%20PICTURE", "")
	records = nil
	require.NoError(t, json.Unmarshal(envelope.Data, &records))
	require.Len(t, records, 1)
	assert.False(t, records[0].Winner)
}

func TestAwardFlagEndpoints(t *testing.T) {
	router := setupTestRouter(t)

	_, envelope := doRequest(t, router, http.MethodGet,
		"/api/v1/awards/actor-winner?name=gary%20oldman&film=vault%20city", "")
	var flag map[string]interface{}
	require.NoError(t, json.Unmarshal(envelope.Data, &flag))
	assert.Equal(t, true, flag["winner"])

	_, envelope = doRequest(t, router, http.MethodGet,
		"/api/v1/awards/film-winner?film=Farther%20Out", "")
	flag = nil
	require.NoError(t, json.Unmarshal(envelope.Data, &flag))
	assert.Equal(t, false, flag["winner"], "nomination only")

	_, envelope = doRequest(t, router, http.MethodGet,
		"/api/v1/awards/count?name=Frances%20McDormand&category=ACTRESS", "")
	var count map[string]interface{}
	require.NoError(t, json.Unmarshal(envelope.Data, &count))
	assert.Equal(t, float64(1), count["count"])

	rec, _ := doRequest(t, router, http.MethodGet, "/api/v1/awards/actor-winner", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthEndpoint(t *testing.T) {
	router := setupTestRouter(t)

	rec, envelope := doRequest(t, router, http.MethodGet, "/api/v1/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var health map[string]interface{}
	require.NoError(t, json.Unmarshal(envelope.Data, &health))
	assert.Equal(t, "healthy", health["status"])
	assert.Equal(t, "up", health["database"])

	rec, _ = doRequest(t, router, http.MethodGet, "/api/v1/health/live", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = doRequest(t, router, http.MethodGet, "/api/v1/health/ready", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	router := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "api_requests_total")
}

func TestMovieCardFieldOrder(t *testing.T) {
	router := setupTestRouter(t)

	_, envelope := doRequest(t, router, http.MethodGet, "/api/v1/movies/1", "")

	// The card field order is part of the public contract.
	body := string(envelope.Data)
	fields := []string{"movieId", "title", "tagline", "description", "rating",
		"yearOfRelease", "posterLink", "roles", "oscarWinner"}
	last := -1
	for _, f := range fields {
		idx := strings.Index(body, `"`+f+`"`)
		require.GreaterOrEqual(t, idx, 0, "field %s missing", f)
		assert.Greater(t, idx, last, "field %s out of order", f)
		last = idx
	}
}
