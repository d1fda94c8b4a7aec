package handlers

import (
	"net/http"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/localeyes/internal/interfaces"
	"github.com/ternarybob/localeyes/internal/models"
)

// detailFallbackText is returned when description generation fails, so the
// detail panel always has something to show.
const detailFallbackText = "Sorry, we couldn't load details for this location. Please try again."

// DetailHandler handles location-description HTTP requests
type DetailHandler struct {
	detailService interfaces.DetailService
	logger        arbor.ILogger
}

// NewDetailHandler creates a new detail handler with dependencies
func NewDetailHandler(detailService interfaces.DetailService, logger arbor.ILogger) *DetailHandler {
	return &DetailHandler{
		detailService: detailService,
		logger:        logger,
	}
}

// DescribeHandler handles POST /api/locations/describe requests
func (h *DetailHandler) DescribeHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req models.DetailRequest
	if !DecodeAndValidate(w, r, &req) {
		return
	}

	resp, err := h.detailService.GenerateDetailedDescription(r.Context(), req)
	if err != nil {
		// Degrade to the fixed apology text instead of surfacing raw
		// backend errors into the detail panel.
		if h.logger != nil {
			h.logger.Error().Err(err).Str("location", req.LocationName).Msg("Description generation failed")
		}
		WriteJSON(w, http.StatusOK, models.DetailResponse{DetailedDescription: detailFallbackText})
		return
	}

	WriteJSON(w, http.StatusOK, resp)
}
