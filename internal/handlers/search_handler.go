package handlers

import (
	"net/http"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/localeyes/internal/interfaces"
	"github.com/ternarybob/localeyes/internal/models"
)

// SearchHandler handles location-search HTTP requests
type SearchHandler struct {
	searchService interfaces.LocationSearchService
	history       interfaces.HistoryStore
	logger        arbor.ILogger
}

// NewSearchHandler creates a new search handler with dependencies
func NewSearchHandler(searchService interfaces.LocationSearchService, history interfaces.HistoryStore, logger arbor.ILogger) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
		history:       history,
		logger:        logger,
	}
}

// SearchHandler handles POST /api/search requests
func (h *SearchHandler) SearchHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var query models.SearchQuery
	if !DecodeAndValidate(w, r, &query) {
		return
	}
	if err := query.Normalize(); err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if h.logger != nil {
		h.logger.Info().
			Str("query", query.Query).
			Bool("min_rating", query.MinRating).
			Msg("Search request received")
	}

	output, err := h.searchService.SearchLocations(r.Context(), query)
	if err != nil {
		if h.logger != nil {
			h.logger.Error().Err(err).Str("query", query.Query).Msg("Search failed")
		}
		WriteServiceError(w, err)
		return
	}

	// History records the raw query, not the rating-biased one. A failure
	// here must not fail the search.
	if h.history != nil {
		if err := h.history.Add(r.Context(), ClientID(r), query.Query); err != nil && h.logger != nil {
			h.logger.Warn().Err(err).Msg("Failed to record search history")
		}
	}

	WriteJSON(w, http.StatusOK, output)
}
