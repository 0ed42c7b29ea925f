package gesture

import "time"

// Debouncing constants.
const (
	// MinConfidence is the strict lower bound a classification must
	// exceed before it is accepted into the session.
	MinConfidence = 0.7
	// DedupeWindow suppresses a repeated label within this interval,
	// so a held gesture emits one event rather than one per frame.
	DedupeWindow = time.Second
)

// Event is one accepted, deduplicated gesture observation. Events are
// immutable once appended to the history.
type Event struct {
	Label      string    `json:"label"`
	Confidence float64   `json:"confidence"`
	Timestamp  time.Time `json:"timestamp"`
	Mode       Mode      `json:"mode"`
}

// Session converts a stream of per-frame classifications into a
// deduplicated gesture history. It tracks the active label table mode
// and the most recently accepted frame for display. Session is not safe
// for concurrent use; callers serialize frame delivery.
type Session struct {
	clock func() time.Time

	mode    Mode
	history []Event

	currentLabel      string
	currentConfidence float64
}

// NewSession creates a recognition session in alphabet mode. The clock
// is injected so tests can simulate time; nil means time.Now.
func NewSession(clock func() time.Time) *Session {
	if clock == nil {
		clock = time.Now
	}
	return &Session{
		clock: clock,
		mode:  ModeAlphabet,
	}
}

// Mode returns the active label table mode.
func (s *Session) Mode() Mode {
	return s.mode
}

// SetMode switches the label table. Accumulated history is untouched;
// only future classifications use the new table.
func (s *Session) SetMode(m Mode) {
	if m.Valid() {
		s.mode = m
	}
}

// Observe feeds one classifier output into the session. It returns the
// appended event and true when the frame cleared both the confidence
// gate and the dedupe window. Frames whose type has no label in the
// current mode are silently ignored. The current display state is
// updated for every accepted frame, even when the history append is
// suppressed by deduplication.
func (s *Session) Observe(c Classification) (Event, bool) {
	if c.Confidence <= MinConfidence {
		return Event{}, false
	}

	label, ok := LabelFor(s.mode, c.Type)
	if !ok {
		return Event{}, false
	}

	s.currentLabel = label
	s.currentConfidence = c.Confidence

	now := s.clock()
	if n := len(s.history); n > 0 {
		last := s.history[n-1]
		if last.Label == label && now.Sub(last.Timestamp) < DedupeWindow {
			return Event{}, false
		}
	}

	ev := Event{
		Label:      label,
		Confidence: c.Confidence,
		Timestamp:  now,
		Mode:       s.mode,
	}
	s.history = append(s.history, ev)
	return ev, true
}

// Current returns the label and confidence of the latest accepted frame.
func (s *Session) Current() (string, float64) {
	return s.currentLabel, s.currentConfidence
}

// History returns a copy of the accumulated events in chronological
// order.
func (s *Session) History() []Event {
	out := make([]Event, len(s.history))
	copy(out, s.history)
	return out
}

// Clear discards the accumulated history and the current display state.
func (s *Session) Clear() {
	s.history = nil
	s.currentLabel = ""
	s.currentConfidence = 0
}
