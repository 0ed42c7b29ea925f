// Package server provides the HTTP and WebSocket surface of the
// SafeHaven emergency reporting backend.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/safehavenapp/safehaven/internal/app"
	"github.com/safehavenapp/safehaven/internal/server/api"
)

// Config holds the server configuration.
type Config struct {
	StaticDir string
	App       *app.App
}

// Server represents the HTTP server for the SafeHaven application.
type Server struct {
	config Config
	mux    *http.ServeMux
	start  time.Time
}

// New creates a new Server with the given configuration.
func New(config Config) *Server {
	s := &Server{
		config: config,
		mux:    http.NewServeMux(),
		start:  time.Now(),
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures all HTTP routes for the server.
func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/api/health", s.handleHealth)

	if s.config.App != nil {
		reportsHandler := api.NewReportsHandler(s.config.App)
		s.mux.Handle("/api/reports", reportsHandler)
		s.mux.Handle("/api/reports/", reportsHandler)
		s.mux.Handle("/api/connectivity", reportsHandler)

		historyHandler := api.NewHistoryHandler(s.config.App)
		s.mux.Handle("/api/history", historyHandler)
		s.mux.Handle("/api/history/", historyHandler)
		s.mux.Handle("/api/mode", historyHandler)

		s.mux.Handle("/api/voice", api.NewVoiceHandler(s.config.App))

		s.mux.Handle("/api/recognize", NewRecognizeHandler(s.config.App))
	}

	// Serve static files if StaticDir is configured
	if s.config.StaticDir != "" {
		fs := http.FileServer(http.Dir(s.config.StaticDir))
		s.mux.Handle("/", fs)
	}
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// handleHealth handles GET requests to /api/health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(s.start)

	response := map[string]interface{}{
		"status": "ok",
		"uptime": uptime.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// ListenAndServe starts the HTTP server on the given address.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}
