package handlers

import (
	"net/http"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/localeyes/internal/interfaces"
)

// HistoryHandler handles search-history HTTP requests
type HistoryHandler struct {
	history interfaces.HistoryStore
	logger  arbor.ILogger
}

// NewHistoryHandler creates a new history handler with dependencies
func NewHistoryHandler(history interfaces.HistoryStore, logger arbor.ILogger) *HistoryHandler {
	return &HistoryHandler{
		history: history,
		logger:  logger,
	}
}

// HistoryHandler handles GET and DELETE /api/history requests
func (h *HistoryHandler) HistoryHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listHistory(w, r)
	case http.MethodDelete:
		h.clearHistory(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *HistoryHandler) listHistory(w http.ResponseWriter, r *http.Request) {
	queries, err := h.history.List(r.Context(), ClientID(r))
	if err != nil {
		if h.logger != nil {
			h.logger.Error().Err(err).Msg("Failed to list search history")
		}
		WriteError(w, http.StatusInternalServerError, "Failed to load search history")
		return
	}
	if queries == nil {
		queries = []string{}
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{"history": queries})
}

func (h *HistoryHandler) clearHistory(w http.ResponseWriter, r *http.Request) {
	if err := h.history.Clear(r.Context(), ClientID(r)); err != nil {
		if h.logger != nil {
			h.logger.Error().Err(err).Msg("Failed to clear search history")
		}
		WriteError(w, http.StatusInternalServerError, "Failed to clear search history")
		return
	}
	WriteSuccess(w, "Search history cleared")
}
