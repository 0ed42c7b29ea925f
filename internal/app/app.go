// Package app wires the SafeHaven recognition, voice and reporting
// components together behind a single serialized entry point.
package app

import (
	"fmt"
	"strings"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/safehavenapp/safehaven/internal/gesture"
	"github.com/safehavenapp/safehaven/internal/landmark"
	"github.com/safehavenapp/safehaven/internal/report"
	"github.com/safehavenapp/safehaven/internal/store"
	"github.com/safehavenapp/safehaven/internal/voice"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Config holds configuration options for the application.
type Config struct {
	// Store persists the report log. Nil disables persistence.
	Store *store.Store
	// Clock is injected for tests; nil means time.Now.
	Clock func() time.Time
	// Logger receives operational logs; nil discards them.
	Logger *logrus.Logger
}

// FrameResult is the outcome of processing one landmark frame.
type FrameResult struct {
	// Recognized reports whether the frame classified to a gesture.
	Recognized bool `json:"recognized"`
	// Type and Confidence carry the raw classification.
	Type       gesture.Type `json:"gesture,omitempty"`
	Confidence float64      `json:"confidence,omitempty"`
	// Label is the display text when the frame cleared the confidence
	// gate and has a mapping in the active mode.
	Label string `json:"label,omitempty"`
	// Event is set when the frame appended a new history entry.
	Event *gesture.Event `json:"event,omitempty"`
}

// VoiceResult is the outcome of a matched transcript.
type VoiceResult struct {
	Entry voice.Entry `json:"entry"`
	// AutoSOS tells the shell to trigger the SOS flow after its fixed
	// delay; set for critical-severity matches.
	AutoSOS bool `json:"autoSOS"`
	// Report is the Voice report appended to the log.
	Report report.Report `json:"report"`
}

// App owns the recognition session, keyword spotter and report log. All
// entry points serialize on an internal mutex, so frame and transcript
// callbacks never overlap.
type App struct {
	mu      sync.Mutex
	session *gesture.Session
	spotter *voice.Spotter
	reports *report.Log
	store   *store.Store
	log     *logrus.Logger
}

// New creates a new App instance with the given configuration.
func New(config Config) *App {
	logger := config.Logger
	if logger == nil {
		logger = logrus.New()
		logger.SetLevel(logrus.PanicLevel)
	}

	return &App{
		session: gesture.NewSession(config.Clock),
		spotter: voice.NewSpotter(),
		reports: report.NewLog(config.Clock),
		store:   config.Store,
		log:     logger,
	}
}

// LoadReports restores the persisted report log from the store. Called
// once at session start; a missing record leaves the log empty.
func (a *App) LoadReports() error {
	if a.store == nil {
		return nil
	}

	reports, err := a.store.LoadReports()
	if err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.reports.Replace(reports)
	a.log.WithField("count", len(reports)).Info("loaded persisted reports")
	return nil
}

// ProcessFrame classifies one hand frame and feeds it through the
// recognition session.
func (a *App) ProcessFrame(h landmark.Hand) FrameResult {
	a.mu.Lock()
	defer a.mu.Unlock()

	c, ok := gesture.Classify(h)
	if !ok {
		return FrameResult{}
	}

	result := FrameResult{
		Recognized: true,
		Type:       c.Type,
		Confidence: c.Confidence,
	}

	ev, appended := a.session.Observe(c)
	if label, _ := a.session.Current(); label != "" {
		result.Label = label
	}
	if appended {
		result.Event = &ev
		a.log.WithFields(logrus.Fields{
			"label":      ev.Label,
			"confidence": ev.Confidence,
			"mode":       ev.Mode,
		}).Debug("gesture event appended")
	}

	return result
}

// ProcessTranscript scans a speech transcript for emergency keywords.
// A match appends a Voice report and returns the matched entry so the
// shell can announce it, offer the dial action, and drive the automatic
// SOS flow for critical severity.
func (a *App) ProcessTranscript(transcript string) (VoiceResult, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	entry, ok := a.spotter.Match(transcript)
	if !ok {
		return VoiceResult{}, false
	}

	message := fmt.Sprintf("Voice alert: %q matched %s (%s)", entry.Keyword, entry.Service, entry.DialNumber)
	r := a.reports.Append(report.KindVoice, message, nil)
	a.persistLocked()

	a.log.WithFields(logrus.Fields{
		"keyword":  entry.Keyword,
		"service":  entry.Service,
		"severity": entry.Severity,
	}).Info("voice keyword matched")

	return VoiceResult{
		Entry:   entry,
		AutoSOS: entry.Severity == voice.SeverityCritical,
		Report:  r,
	}, true
}

// ReportGesture files the session's spelled text as a Gesture report
// with an optional location. It returns false when the history is empty
// and there is nothing to report. The history is kept so the user can
// continue spelling; clearing stays an explicit action.
func (a *App) ReportGesture(loc *report.Location) (report.Report, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	history := a.session.History()
	if len(history) == 0 {
		return report.Report{}, false
	}

	// Alphabet letters concatenate into a word; word-mode labels are
	// separated by spaces.
	var b strings.Builder
	for _, ev := range history {
		if ev.Mode == gesture.ModeWord && b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(ev.Label)
	}

	r := a.reports.Append(report.KindGesture, fmt.Sprintf("Gesture message: %s", b.String()), loc)
	a.persistLocked()

	a.log.WithFields(logrus.Fields{
		"id":     r.ID,
		"events": len(history),
	}).Info("gesture report filed")
	return r, true
}

// Logger returns the operational logger the App was configured with.
func (a *App) Logger() *logrus.Logger {
	return a.log
}

// TriggerSOS appends an SOS report with an optional location.
func (a *App) TriggerSOS(loc *report.Location) report.Report {
	a.mu.Lock()
	defer a.mu.Unlock()

	r := a.reports.Append(report.KindSOS, "Emergency SOS activated", loc)
	a.persistLocked()

	a.log.WithField("id", r.ID).Warn("SOS triggered")
	return r
}

// persistLocked rewrites the persisted report log. Persistence failure
// is fatal only to that single write; the in-memory log remains
// authoritative for the session. Caller must hold the mutex.
func (a *App) persistLocked() {
	if a.store == nil {
		return
	}
	if err := a.store.SaveReports(a.reports.Snapshot()); err != nil {
		a.log.WithError(err).Warn("failed to persist report log")
	}
}

// Mode returns the active gesture label mode.
func (a *App) Mode() gesture.Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session.Mode()
}

// SetMode switches the gesture label table without touching history.
func (a *App) SetMode(m gesture.Mode) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.session.SetMode(m)
}

// Current returns the label and confidence of the latest accepted frame.
func (a *App) Current() (string, float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session.Current()
}

// History returns a copy of the accumulated gesture events.
func (a *App) History() []gesture.Event {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session.History()
}

// ClearHistory discards the gesture history.
func (a *App) ClearHistory() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.session.Clear()
}

// ExportHistory serializes the gesture history as indented JSON.
func (a *App) ExportHistory() ([]byte, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	history := a.session.History()
	if history == nil {
		history = []gesture.Event{}
	}
	return json.MarshalIndent(history, "", "  ")
}

// Reports returns a snapshot of the report log in insertion order.
func (a *App) Reports() []report.Report {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.reports.Snapshot()
}

// ClearReports empties the report log and its persisted copy.
func (a *App) ClearReports() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.reports.Clear()
	a.persistLocked()
}

// ExportReports serializes the report log as indented JSON.
func (a *App) ExportReports() ([]byte, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.reports.Export()
}

// SetOnline updates the connectivity flag that decides the status of
// subsequently appended reports.
func (a *App) SetOnline(online bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.reports.SetOnline(online)
}

// Online returns the current connectivity flag.
func (a *App) Online() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.reports.Online()
}
