package server

import "net/http"

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// API routes - Location search
	mux.HandleFunc("/api/search", s.app.SearchHandler.SearchHandler)                // POST
	mux.HandleFunc("/api/locations/describe", s.app.DetailHandler.DescribeHandler) // POST
	mux.HandleFunc("/api/transcribe", s.app.TranscribeHandler.TranscribeHandler)   // POST

	// API routes - Search history
	mux.HandleFunc("/api/history", s.app.HistoryHandler.HistoryHandler) // GET, DELETE

	// API routes - System
	mux.HandleFunc("/api/health", s.app.StatusHandler.HealthHandler)
	mux.HandleFunc("/api/version", s.app.StatusHandler.VersionHandler)
	mux.HandleFunc("/api/status", s.app.StatusHandler.StatusHandler)

	return mux
}
