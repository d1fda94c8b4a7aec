package handlers

import (
	"errors"
	"net/http"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/localeyes/internal/interfaces"
	"github.com/ternarybob/localeyes/internal/models"
)

// TranscribeHandler handles image-to-text HTTP requests
type TranscribeHandler struct {
	transcriptionService interfaces.TranscriptionService
	logger               arbor.ILogger
}

// NewTranscribeHandler creates a new transcription handler with dependencies
func NewTranscribeHandler(transcriptionService interfaces.TranscriptionService, logger arbor.ILogger) *TranscribeHandler {
	return &TranscribeHandler{
		transcriptionService: transcriptionService,
		logger:               logger,
	}
}

// TranscribeHandler handles POST /api/transcribe requests
func (h *TranscribeHandler) TranscribeHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req models.TranscriptionRequest
	if !DecodeAndValidate(w, r, &req) {
		return
	}

	resp, err := h.transcriptionService.ImageToText(r.Context(), req)
	if err != nil {
		// A bad image is caller error; everything else follows the
		// standard service-error mapping.
		var invalidImage *models.InvalidImageError
		if errors.As(err, &invalidImage) {
			WriteError(w, http.StatusBadRequest, invalidImage.Error())
			return
		}
		if h.logger != nil {
			h.logger.Error().Err(err).Msg("Image transcription failed")
		}
		WriteServiceError(w, err)
		return
	}

	// An empty extraction is a valid "no text found" result.
	WriteJSON(w, http.StatusOK, resp)
}
