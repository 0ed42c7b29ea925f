package api

import (
	"net/http"

	"github.com/safehavenapp/safehaven/internal/app"
)

// VoiceHandler handles speech transcripts from the browser's speech
// recognition engine.
type VoiceHandler struct {
	app *app.App
}

// NewVoiceHandler creates a new VoiceHandler with the given app.
func NewVoiceHandler(a *app.App) *VoiceHandler {
	return &VoiceHandler{app: a}
}

type transcriptRequest struct {
	Transcript string `json:"transcript" validate:"required,min=1,max=1000"`
}

// ServeHTTP handles POST /api/voice. A transcript that matches an
// emergency keyword returns the matched entry plus the appended Voice
// report; no match returns 204 so the shell knows to keep listening.
func (h *VoiceHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req transcriptRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, ok := h.app.ProcessTranscript(req.Transcript)
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
