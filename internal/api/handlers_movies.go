// Kinotheca - Movie Catalog and Recommendation Service
// Copyright 2026 Kinotheca contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinotheca/kinotheca

package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/kinotheca/kinotheca/internal/database"
	"github.com/kinotheca/kinotheca/internal/models"
)

// movieListRequest carries the validated query parameters shared by the
// listing endpoints.
type movieListRequest struct {
	Page   int    `validate:"min=0"`
	Size   int    `validate:"min=1,max=1000"`
	Rating string `validate:"omitempty,movie_rating"`
	Order  string `validate:"omitempty,oneof=ASC DSC"`
}

// parseListFilter builds the card filter from query parameters. The wildcard
// value "all" and absent parameters both mean "no filter on this dimension".
func parseListFilter(r *http.Request) *database.CardFilter {
	q := r.URL.Query()
	filter := &database.CardFilter{}

	if genres := q.Get("genres"); !isUnsetParam(genres) {
		for _, g := range strings.Split(genres, ",") {
			if g = strings.TrimSpace(g); g != "" {
				filter.Genres = append(filter.Genres, g)
			}
		}
	}
	if year := q.Get("year"); !isUnsetParam(year) {
		filter.Year = year
	}
	if rating := q.Get("rating"); !isUnsetParam(rating) {
		filter.Rating = rating
	}
	if actor := q.Get("actor"); !isUnsetParam(actor) {
		filter.Actor = actor
	}

	return filter
}

// validateListRequest validates pagination and filter parameters, answering
// 400 itself when they are malformed. Returns false when the request was
// already answered.
func (h *Handler) validateListRequest(w http.ResponseWriter, r *http.Request, filter *database.CardFilter) bool {
	page, size := h.pageParams(r)
	req := movieListRequest{
		Page:   page,
		Size:   size,
		Rating: filter.Rating,
		Order:  r.URL.Query().Get("order"),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return false
	}
	return true
}

// Movies lists the catalog with optional genres/year/rating/actor filters.
// GET /api/v1/movies?genres=Crime,Drama&year=2010&sortBy=rating&order=DSC&page=0&size=12
func (h *Handler) Movies(w http.ResponseWriter, r *http.Request) {
	h.listMovies(w, r, parseListFilter(r))
}

// MoviesSearch lists movies whose title contains the search term.
// GET /api/v1/movies/search?title=con
func (h *Handler) MoviesSearch(w http.ResponseWriter, r *http.Request) {
	title := r.URL.Query().Get("title")
	if title == "" {
		respondError(w, http.StatusBadRequest, models.ErrCodeValidation,
			"title query parameter is required", nil)
		return
	}
	h.listMovies(w, r, &database.CardFilter{Title: title})
}

// MoviesByGenre lists movies carrying the genre from the path.
// GET /api/v1/movies/genre/{genre}
func (h *Handler) MoviesByGenre(w http.ResponseWriter, r *http.Request) {
	genre := chi.URLParam(r, "genre")
	filter := &database.CardFilter{}
	if !isUnsetParam(genre) {
		filter.Genres = []string{genre}
	}
	h.listMovies(w, r, filter)
}

// MoviesByYear lists movies released in the year from the path.
// GET /api/v1/movies/year/{year}
func (h *Handler) MoviesByYear(w http.ResponseWriter, r *http.Request) {
	year := chi.URLParam(r, "year")
	filter := &database.CardFilter{}
	if !isUnsetParam(year) {
		filter.Year = year
	}
	h.listMovies(w, r, filter)
}

// MoviesByRating lists movies with the exact rating from the path.
// GET /api/v1/movies/rating/{rating}
func (h *Handler) MoviesByRating(w http.ResponseWriter, r *http.Request) {
	rating := chi.URLParam(r, "rating")
	filter := &database.CardFilter{}
	if !isUnsetParam(rating) {
		filter.Rating = rating
	}
	h.listMovies(w, r, filter)
}

// MoviesByActor lists movies featuring the actor from the path.
// GET /api/v1/movies/actor/{name}
func (h *Handler) MoviesByActor(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	filter := &database.CardFilter{}
	if !isUnsetParam(name) {
		filter.Actor = name
	}
	h.listMovies(w, r, filter)
}

// MovieByID returns a single enriched movie card.
// GET /api/v1/movies/{movieID}
func (h *Handler) MovieByID(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	movieID, err := strconv.ParseInt(chi.URLParam(r, "movieID"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, models.ErrCodeValidation,
			"movieID must be an integer", nil)
		return
	}

	card, err := h.db.MovieCardByID(r.Context(), movieID)
	if err != nil {
		respondStoreError(w, "movie", err)
		return
	}

	respondSuccess(w, http.StatusOK, card, start)
}

// MovieYears returns every release year in the catalog, newest first.
// GET /api/v1/movies/years
func (h *Handler) MovieYears(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	years, err := h.db.DistinctYears(r.Context())
	if err != nil {
		respondStoreError(w, "years", err)
		return
	}
	if years == nil {
		years = []string{}
	}

	respondSuccess(w, http.StatusOK, years, start)
}

// RelatedMovies returns one page of recommendations for a movie.
// GET /api/v1/movies/{movieID}/related?page=0&size=12
func (h *Handler) RelatedMovies(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	movieID, err := strconv.ParseInt(chi.URLParam(r, "movieID"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, models.ErrCodeValidation,
			"movieID must be an integer", nil)
		return
	}

	page := getIntParam(r, "page", 0)
	if page < 0 {
		page = 0
	}
	size := getIntParam(r, "size", h.cfg.Catalog.RelatedPageSize)
	if size < 1 || size > h.cfg.API.MaxPageSize {
		size = h.cfg.Catalog.RelatedPageSize
	}

	related, err := h.engine.Related(r.Context(), movieID, page, size)
	if err != nil {
		respondStoreError(w, "movie", err)
		return
	}

	respondSuccess(w, http.StatusOK, related, start)
}

// CreateMovie adds a movie to the catalog.
// POST /api/v1/movies
func (h *Handler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var movie models.Movie
	if err := json.NewDecoder(r.Body).Decode(&movie); err != nil {
		respondError(w, http.StatusBadRequest, models.ErrCodeValidation,
			"Invalid JSON body", nil)
		return
	}

	if apiErr := validateRequest(&movie); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	if err := h.db.InsertMovie(r.Context(), &movie); err != nil {
		respondError(w, http.StatusInternalServerError, models.ErrCodeDatabase,
			"Failed to insert movie", err)
		return
	}

	respondSuccess(w, http.StatusCreated, &movie, start)
}
