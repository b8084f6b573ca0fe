// Kinotheca - Movie Catalog and Recommendation Service
// Copyright 2026 Kinotheca contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinotheca/kinotheca

package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/kinotheca/kinotheca/internal/models"
)

// movieIDParam parses the movieID path parameter, answering 400 itself on a
// malformed value. The bool reports whether the request was already answered.
func movieIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	movieID, err := strconv.ParseInt(chi.URLParam(r, "movieID"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, models.ErrCodeValidation,
			"movieID must be an integer", nil)
		return 0, false
	}
	return movieID, true
}

// Genres returns every genre in the catalog.
// GET /api/v1/genres
func (h *Handler) Genres(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	genres, err := h.db.DistinctGenres(r.Context())
	if err != nil {
		respondStoreError(w, "genres", err)
		return
	}
	if genres == nil {
		genres = []string{}
	}
	respondSuccess(w, http.StatusOK, genres, start)
}

// Themes returns every theme in the catalog.
// GET /api/v1/themes
func (h *Handler) Themes(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	themes, err := h.db.DistinctThemes(r.Context())
	if err != nil {
		respondStoreError(w, "themes", err)
		return
	}
	if themes == nil {
		themes = []string{}
	}
	respondSuccess(w, http.StatusOK, themes, start)
}

// MovieGenres returns the genres of one movie.
// GET /api/v1/movies/{movieID}/genres
func (h *Handler) MovieGenres(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	movieID, ok := movieIDParam(w, r)
	if !ok {
		return
	}
	genres, err := h.db.GenresForMovie(r.Context(), movieID)
	if err != nil {
		respondStoreError(w, "movie genres", err)
		return
	}
	if genres == nil {
		genres = []string{}
	}
	respondSuccess(w, http.StatusOK, genres, start)
}

// MovieThemes returns the themes of one movie.
// GET /api/v1/movies/{movieID}/themes
func (h *Handler) MovieThemes(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	movieID, ok := movieIDParam(w, r)
	if !ok {
		return
	}
	themes, err := h.db.ThemesForMovie(r.Context(), movieID)
	if err != nil {
		respondStoreError(w, "movie themes", err)
		return
	}
	if themes == nil {
		themes = []string{}
	}
	respondSuccess(w, http.StatusOK, themes, start)
}

// MovieCast returns the cast of one movie with roles.
// GET /api/v1/movies/{movieID}/cast
func (h *Handler) MovieCast(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	movieID, ok := movieIDParam(w, r)
	if !ok {
		return
	}
	cast, err := h.db.CastForMovie(r.Context(), movieID)
	if err != nil {
		respondStoreError(w, "cast", err)
		return
	}
	if cast == nil {
		cast = []models.CastMember{}
	}
	respondSuccess(w, http.StatusOK, cast, start)
}

// MovieCrew returns the crew of one movie grouped by job.
// GET /api/v1/movies/{movieID}/crew
func (h *Handler) MovieCrew(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	movieID, ok := movieIDParam(w, r)
	if !ok {
		return
	}
	crew, err := h.db.CrewForMovie(r.Context(), movieID)
	if err != nil {
		respondStoreError(w, "crew", err)
		return
	}
	respondSuccess(w, http.StatusOK, models.GroupCrew(crew), start)
}

// MovieStudios returns the studios of one movie.
// GET /api/v1/movies/{movieID}/studios
func (h *Handler) MovieStudios(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	movieID, ok := movieIDParam(w, r)
	if !ok {
		return
	}
	studios, err := h.db.StudiosForMovie(r.Context(), movieID)
	if err != nil {
		respondStoreError(w, "studios", err)
		return
	}
	if studios == nil {
		studios = []string{}
	}
	respondSuccess(w, http.StatusOK, studios, start)
}

// MovieLanguages returns the language entries of one movie.
// GET /api/v1/movies/{movieID}/languages
func (h *Handler) MovieLanguages(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	movieID, ok := movieIDParam(w, r)
	if !ok {
		return
	}
	langs, err := h.db.LanguagesForMovie(r.Context(), movieID)
	if err != nil {
		respondStoreError(w, "languages", err)
		return
	}
	if langs == nil {
		langs = []models.MovieLanguage{}
	}
	respondSuccess(w, http.StatusOK, langs, start)
}

// MovieCountries returns the production countries of one movie.
// GET /api/v1/movies/{movieID}/countries
func (h *Handler) MovieCountries(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	movieID, ok := movieIDParam(w, r)
	if !ok {
		return
	}
	countries, err := h.db.CountriesForMovie(r.Context(), movieID)
	if err != nil {
		respondStoreError(w, "countries", err)
		return
	}
	if countries == nil {
		countries = []string{}
	}
	respondSuccess(w, http.StatusOK, countries, start)
}

// MoviePosters returns the poster links of one movie.
// GET /api/v1/movies/{movieID}/posters
func (h *Handler) MoviePosters(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	movieID, ok := movieIDParam(w, r)
	if !ok {
		return
	}
	posters, err := h.db.PostersForMovie(r.Context(), movieID)
	if err != nil {
		respondStoreError(w, "posters", err)
		return
	}
	if posters == nil {
		posters = []string{}
	}
	respondSuccess(w, http.StatusOK, posters, start)
}

// MovieReleases returns the regional releases of one movie.
// GET /api/v1/movies/{movieID}/releases
func (h *Handler) MovieReleases(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	movieID, ok := movieIDParam(w, r)
	if !ok {
		return
	}
	releases, err := h.db.ReleasesForMovie(r.Context(), movieID)
	if err != nil {
		respondStoreError(w, "releases", err)
		return
	}
	if releases == nil {
		releases = []models.Release{}
	}
	respondSuccess(w, http.StatusOK, releases, start)
}

// Countries returns every production country in the catalog.
// GET /api/v1/countries
func (h *Handler) Countries(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	countries, err := h.db.DistinctCountries(r.Context())
	if err != nil {
		respondStoreError(w, "countries", err)
		return
	}
	if countries == nil {
		countries = []string{}
	}
	respondSuccess(w, http.StatusOK, countries, start)
}

// AwardsForFilm returns the award rows correlated to a film title.
// GET /api/v1/awards/film/{title}
func (h *Handler) AwardsForFilm(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	title := chi.URLParam(r, "title")
	if title == "" {
		respondError(w, http.StatusBadRequest, models.ErrCodeValidation,
			"film title is required", nil)
		return
	}
	records, err := h.db.AwardsForFilm(r.Context(), title)
	if err != nil {
		respondStoreError(w, "awards", err)
		return
	}
	if records == nil {
		records = []models.AwardRecord{}
	}
	respondSuccess(w, http.StatusOK, records, start)
}

// AwardWinners returns winning award rows across all ceremonies.
// GET /api/v1/awards/winners?limit=N
func (h *Handler) AwardWinners(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	limit := getIntParam(r, "limit", 0)
	records, err := h.db.AwardWinners(r.Context(), limit)
	if err != nil {
		respondStoreError(w, "awards", err)
		return
	}
	if records == nil {
		records = []models.AwardRecord{}
	}
	respondSuccess(w, http.StatusOK, records, start)
}

// AwardsByCategory returns the award rows for one category.
// GET /api/v1/awards/category/{category}
func (h *Handler) AwardsByCategory(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	category := chi.URLParam(r, "category")
	if category == "" {
		respondError(w, http.StatusBadRequest, models.ErrCodeValidation,
			"category is required", nil)
		return
	}
	records, err := h.db.AwardsByCategory(r.Context(), category)
	if err != nil {
		respondStoreError(w, "awards", err)
		return
	}
	if records == nil {
		records = []models.AwardRecord{}
	}
	respondSuccess(w, http.StatusOK, records, start)
}

// FilmWonBestPicture answers whether a film won Best Picture.
// GET /api/v1/awards/film-winner?film=TITLE&year=CEREMONY
func (h *Handler) FilmWonBestPicture(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	film := r.URL.Query().Get("film")
	if film == "" {
		respondError(w, http.StatusBadRequest, models.ErrCodeValidation,
			"film query parameter is required", nil)
		return
	}
	year := getIntParam(r, "year", 0)

	won, err := h.db.FilmWonBestPicture(r.Context(), film, year)
	if err != nil {
		respondStoreError(w, "awards", err)
		return
	}
	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"film":   film,
		"winner": won,
	}, start)
}

// ActorWonForFilm answers whether a person won an Oscar for a film.
// GET /api/v1/awards/actor-winner?name=NAME&film=TITLE
func (h *Handler) ActorWonForFilm(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	name := r.URL.Query().Get("name")
	film := r.URL.Query().Get("film")
	if name == "" || film == "" {
		respondError(w, http.StatusBadRequest, models.ErrCodeValidation,
			"name and film query parameters are required", nil)
		return
	}

	won, err := h.db.ActorWonForFilm(r.Context(), name, film)
	if err != nil {
		respondStoreError(w, "awards", err)
		return
	}
	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"name":   name,
		"film":   film,
		"winner": won,
	}, start)
}

// AwardCount counts a person's wins across a category prefix.
// GET /api/v1/awards/count?name=NAME&category=PREFIX
func (h *Handler) AwardCount(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	name := r.URL.Query().Get("name")
	if name == "" {
		respondError(w, http.StatusBadRequest, models.ErrCodeValidation,
			"name query parameter is required", nil)
		return
	}
	category := r.URL.Query().Get("category")

	count, err := h.db.CountAwardsByNameAndCategory(r.Context(), name, category)
	if err != nil {
		respondStoreError(w, "awards", err)
		return
	}
	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"name":  name,
		"count": count,
	}, start)
}

// AwardsByCeremonyYear returns the award rows for one ceremony year.
// GET /api/v1/awards/ceremony/{year}
func (h *Handler) AwardsByCeremonyYear(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		respondError(w, http.StatusBadRequest, models.ErrCodeValidation,
			"year must be an integer", nil)
		return
	}
	records, err := h.db.AwardsByCeremonyYear(r.Context(), year)
	if err != nil {
		respondStoreError(w, "awards", err)
		return
	}
	if records == nil {
		records = []models.AwardRecord{}
	}
	respondSuccess(w, http.StatusOK, records, start)
}
