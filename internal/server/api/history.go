package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/safehavenapp/safehaven/internal/app"
	"github.com/safehavenapp/safehaven/internal/gesture"
)

// HistoryHandler handles HTTP requests for the gesture recognition
// session: the event history, current display state and label mode.
type HistoryHandler struct {
	app *app.App
}

// NewHistoryHandler creates a new HistoryHandler with the given app.
func NewHistoryHandler(a *app.App) *HistoryHandler {
	return &HistoryHandler{app: a}
}

// Request and response types

type modeRequest struct {
	Mode string `json:"mode" validate:"required,oneof=alphabet word"`
}

type historyResponse struct {
	History           []gesture.Event `json:"history"`
	CurrentLabel      string          `json:"currentLabel"`
	CurrentConfidence float64         `json:"currentConfidence"`
	Mode              gesture.Mode    `json:"mode"`
}

// ServeHTTP implements the http.Handler interface and routes requests
// to the appropriate methods.
func (h *HistoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/api/history":
		switch r.Method {
		case http.MethodGet:
			h.get(w, r)
		case http.MethodDelete:
			h.clear(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	case "/api/history/export":
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.export(w, r)
	case "/api/mode":
		if r.Method != http.MethodPut {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.setMode(w, r)
	default:
		http.NotFound(w, r)
	}
}

// get handles GET /api/history and returns the session state.
func (h *HistoryHandler) get(w http.ResponseWriter, r *http.Request) {
	history := h.app.History()
	if history == nil {
		history = []gesture.Event{}
	}
	label, confidence := h.app.Current()

	writeJSON(w, http.StatusOK, historyResponse{
		History:           history,
		CurrentLabel:      label,
		CurrentConfidence: confidence,
		Mode:              h.app.Mode(),
	})
}

// clear handles DELETE /api/history and discards the gesture history.
func (h *HistoryHandler) clear(w http.ResponseWriter, r *http.Request) {
	h.app.ClearHistory()
	w.WriteHeader(http.StatusNoContent)
}

// export handles GET /api/history/export and serves the history as a
// date-named JSON download.
func (h *HistoryHandler) export(w http.ResponseWriter, r *http.Request) {
	data, err := h.app.ExportHistory()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to export history")
		return
	}

	filename := fmt.Sprintf("safehaven-history-%s.json", time.Now().Format("2006-01-02"))
	writeDownload(w, filename, data)
}

// setMode handles PUT /api/mode and switches the gesture label table.
// Accumulated history is untouched.
func (h *HistoryHandler) setMode(w http.ResponseWriter, r *http.Request) {
	var req modeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	h.app.SetMode(gesture.Mode(req.Mode))
	writeJSON(w, http.StatusOK, map[string]gesture.Mode{"mode": h.app.Mode()})
}
