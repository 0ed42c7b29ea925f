package server

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/safehavenapp/safehaven/internal/app"
	"github.com/safehavenapp/safehaven/internal/gesture"
	"github.com/safehavenapp/safehaven/internal/landmark"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow local connections
	},
}

// RecognizeHandler receives landmark frames over WebSocket and pushes
// recognition results back. The browser sends one message per captured
// video frame, plus control messages for mode switching and clearing
// the history.
type RecognizeHandler struct {
	app *app.App
	log *logrus.Logger
}

// NewRecognizeHandler creates a new RecognizeHandler with the given app.
func NewRecognizeHandler(a *app.App) *RecognizeHandler {
	return &RecognizeHandler{app: a, log: a.Logger()}
}

// frameMessage is one inbound WebSocket message.
type frameMessage struct {
	Type   string           `json:"type"`
	Points []landmark.Point `json:"points,omitempty"`
	Mode   string           `json:"mode,omitempty"`
}

// resultMessage is one outbound WebSocket message.
type resultMessage struct {
	Type string `json:"type"`
	app.FrameResult
	Mode  gesture.Mode `json:"mode,omitempty"`
	Error string       `json:"error,omitempty"`
}

// ServeHTTP handles WebSocket upgrade requests and runs the per-frame
// recognition loop for the connection.
func (h *RecognizeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()

	for {
		var msg frameMessage
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}

		var out resultMessage
		switch msg.Type {
		case "frame":
			out = resultMessage{
				Type:        "result",
				FrameResult: h.app.ProcessFrame(landmark.Hand(msg.Points)),
			}
		case "set_mode":
			h.app.SetMode(gesture.Mode(msg.Mode))
			out = resultMessage{Type: "mode", Mode: h.app.Mode()}
		case "clear":
			h.app.ClearHistory()
			out = resultMessage{Type: "cleared"}
		default:
			out = resultMessage{Type: "error", Error: "unknown message type"}
		}

		if err := conn.WriteJSON(out); err != nil {
			return
		}
	}
}
