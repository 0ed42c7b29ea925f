package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/safehavenapp/safehaven/internal/app"
	"github.com/safehavenapp/safehaven/internal/report"
)

// ReportsHandler handles HTTP requests for the emergency report log.
type ReportsHandler struct {
	app *app.App
}

// NewReportsHandler creates a new ReportsHandler with the given app.
func NewReportsHandler(a *app.App) *ReportsHandler {
	return &ReportsHandler{app: a}
}

// Request and response types

type locationRequest struct {
	Lat float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lng float64 `json:"lng" validate:"gte=-180,lte=180"`
}

type sosRequest struct {
	Location *locationRequest `json:"location,omitempty"`
}

type connectivityRequest struct {
	Online *bool `json:"online" validate:"required"`
}

type listReportsResponse struct {
	Reports []report.Report `json:"reports"`
	Online  bool            `json:"online"`
}

// ServeHTTP implements the http.Handler interface and routes requests
// to the appropriate methods.
func (h *ReportsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/api/reports":
		switch r.Method {
		case http.MethodGet:
			h.list(w, r)
		case http.MethodDelete:
			h.clear(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	case "/api/reports/sos":
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.sos(w, r)
	case "/api/reports/gesture":
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.gesture(w, r)
	case "/api/reports/export":
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.export(w, r)
	case "/api/connectivity":
		if r.Method != http.MethodPut {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.connectivity(w, r)
	default:
		http.NotFound(w, r)
	}
}

// list handles GET /api/reports and returns the full report log.
func (h *ReportsHandler) list(w http.ResponseWriter, r *http.Request) {
	reports := h.app.Reports()
	if reports == nil {
		reports = []report.Report{}
	}
	writeJSON(w, http.StatusOK, listReportsResponse{
		Reports: reports,
		Online:  h.app.Online(),
	})
}

// clear handles DELETE /api/reports and empties the report log.
func (h *ReportsHandler) clear(w http.ResponseWriter, r *http.Request) {
	h.app.ClearReports()
	w.WriteHeader(http.StatusNoContent)
}

// sos handles POST /api/reports/sos and appends an SOS report with an
// optional location.
func (h *ReportsHandler) sos(w http.ResponseWriter, r *http.Request) {
	var req sosRequest
	if r.ContentLength > 0 {
		if !decodeAndValidate(w, r, &req) {
			return
		}
	}

	var loc *report.Location
	if req.Location != nil {
		loc = &report.Location{Lat: req.Location.Lat, Lng: req.Location.Lng}
	}

	created := h.app.TriggerSOS(loc)
	writeJSON(w, http.StatusCreated, created)
}

// gesture handles POST /api/reports/gesture and files the session's
// spelled text as a Gesture report with an optional location.
func (h *ReportsHandler) gesture(w http.ResponseWriter, r *http.Request) {
	var req sosRequest
	if r.ContentLength > 0 {
		if !decodeAndValidate(w, r, &req) {
			return
		}
	}

	var loc *report.Location
	if req.Location != nil {
		loc = &report.Location{Lat: req.Location.Lat, Lng: req.Location.Lng}
	}

	created, ok := h.app.ReportGesture(loc)
	if !ok {
		writeError(w, http.StatusBadRequest, "No gesture text to report")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// export handles GET /api/reports/export and serves the report log as
// a date-named JSON download.
func (h *ReportsHandler) export(w http.ResponseWriter, r *http.Request) {
	data, err := h.app.ExportReports()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to export reports")
		return
	}

	filename := fmt.Sprintf("safehaven-reports-%s.json", time.Now().Format("2006-01-02"))
	writeDownload(w, filename, data)
}

// connectivity handles PUT /api/connectivity and updates the flag that
// decides the status of subsequently appended reports.
func (h *ReportsHandler) connectivity(w http.ResponseWriter, r *http.Request) {
	var req connectivityRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	h.app.SetOnline(*req.Online)
	writeJSON(w, http.StatusOK, map[string]bool{"online": *req.Online})
}
