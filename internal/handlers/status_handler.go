package handlers

import (
	"net/http"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/localeyes/internal/common"
	"github.com/ternarybob/localeyes/internal/interfaces"
)

// StatusHandler handles health, version and status HTTP requests
type StatusHandler struct {
	config        *common.Config
	searchService interfaces.LocationSearchService
	logger        arbor.ILogger
	startedAt     time.Time
}

// NewStatusHandler creates a new StatusHandler
func NewStatusHandler(config *common.Config, searchService interfaces.LocationSearchService, logger arbor.ILogger) *StatusHandler {
	return &StatusHandler{
		config:        config,
		searchService: searchService,
		logger:        logger,
		startedAt:     time.Now(),
	}
}

// HealthHandler handles GET /api/health
func (h *StatusHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// VersionHandler handles GET /api/version
func (h *StatusHandler) VersionHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"version": common.GetVersion(),
		"build":   common.GetFullVersion(),
	})
}

// StatusHandler handles GET /api/status
func (h *StatusHandler) StatusHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":         "ok",
		"environment":    h.config.Environment,
		"provider":       h.config.LLM.DefaultProvider,
		"output_variant": string(h.searchService.Variant()),
		"uptime":         time.Since(h.startedAt).Round(time.Second).String(),
		"version":        common.GetVersion(),
	})
}
