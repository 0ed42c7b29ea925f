// Package report provides the append-only emergency report log.
package report

import (
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

// Kind identifies how an emergency report was triggered.
type Kind string

const (
	KindSOS     Kind = "SOS"
	KindVoice   Kind = "Voice"
	KindGesture Kind = "Gesture"
)

// Status records the delivery state assigned when a report is created.
// It is set once from the connectivity flag and never transitions; there
// is no retry machine in this core.
type Status string

const (
	StatusPending Status = "pending"
	StatusSent    Status = "sent"
	StatusFailed  Status = "failed"
)

// Location is an optional latitude/longitude attached to a report.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Report is one emergency event in the log. Immutable once appended.
type Report struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"type"`
	Message   string    `json:"message"`
	Location  *Location `json:"location,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Status    Status    `json:"status"`
}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Log is the append-only ordered sequence of emergency reports, with
// the connectivity flag that decides a new report's status. Log is not
// safe for concurrent use; callers serialize access.
type Log struct {
	reports []Report
	online  bool
	clock   func() time.Time
	newID   func() string
}

// NewLog creates an empty report log. The clock is injected so tests
// can simulate time; nil means time.Now. IDs are random UUIDs.
func NewLog(clock func() time.Time) *Log {
	if clock == nil {
		clock = time.Now
	}
	return &Log{
		clock: clock,
		newID: uuid.NewString,
	}
}

// SetOnline updates the connectivity flag used for subsequent appends.
func (l *Log) SetOnline(online bool) {
	l.online = online
}

// Online returns the current connectivity flag.
func (l *Log) Online() bool {
	return l.online
}

// Append creates a report, stamps the current time, assigns a unique id
// and sets the status from the connectivity flag, then appends it.
func (l *Log) Append(kind Kind, message string, loc *Location) Report {
	status := StatusPending
	if l.online {
		status = StatusSent
	}

	r := Report{
		ID:        l.newID(),
		Kind:      kind,
		Message:   message,
		Location:  loc,
		Timestamp: l.clock(),
		Status:    status,
	}
	l.reports = append(l.reports, r)
	return r
}

// Snapshot returns a copy of the log in insertion (chronological) order.
func (l *Log) Snapshot() []Report {
	out := make([]Report, len(l.reports))
	copy(out, l.reports)
	return out
}

// Len returns the number of reports in the log.
func (l *Log) Len() int {
	return len(l.reports)
}

// Replace swaps in a previously persisted sequence of reports, keeping
// their order. Used when loading the log at session start.
func (l *Log) Replace(reports []Report) {
	l.reports = make([]Report, len(reports))
	copy(l.reports, reports)
}

// Clear empties the log.
func (l *Log) Clear() {
	l.reports = nil
}

// Export serializes the log as an indented JSON array for download.
// An empty log exports as an empty array, not null.
func (l *Log) Export() ([]byte, error) {
	reports := l.reports
	if reports == nil {
		reports = []Report{}
	}
	return json.MarshalIndent(reports, "", "  ")
}
