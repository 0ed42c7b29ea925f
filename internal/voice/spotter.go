// Package voice provides keyword spotting over speech transcripts for
// the SafeHaven emergency pipeline.
package voice

import "strings"

// Severity ranks how urgently a keyword match must be escalated.
// Critical matches override earlier non-critical ones and drive the
// automatic SOS flow in the caller.
type Severity string

const (
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Entry is one row of the keyword table: the keyword to spot, the
// emergency service it maps to, and the number to dial.
type Entry struct {
	Keyword    string   `json:"keyword"`
	Service    string   `json:"service"`
	DialNumber string   `json:"dialNumber"`
	Severity   Severity `json:"severity"`
}

// Spotter scans transcripts against an ordered keyword table. The table
// is a flat ordered list rather than a map: the first-match tie-break
// depends on iteration order, which a map would not guarantee.
type Spotter struct {
	entries []Entry
}

// defaultEntries is the built-in bilingual (English/Hindi) keyword table
// with Indian emergency dial numbers.
var defaultEntries = []Entry{
	{Keyword: "help", Service: "Emergency Helpline", DialNumber: "112", Severity: SeverityHigh},
	{Keyword: "madad", Service: "Emergency Helpline", DialNumber: "112", Severity: SeverityHigh},
	{Keyword: "police", Service: "Police", DialNumber: "100", Severity: SeverityHigh},
	{Keyword: "chori", Service: "Police", DialNumber: "100", Severity: SeverityHigh},
	{Keyword: "fire", Service: "Fire Brigade", DialNumber: "101", Severity: SeverityHigh},
	{Keyword: "aag", Service: "Fire Brigade", DialNumber: "101", Severity: SeverityHigh},
	{Keyword: "ambulance", Service: "Ambulance", DialNumber: "102", Severity: SeverityCritical},
	{Keyword: "hospital", Service: "Ambulance", DialNumber: "102", Severity: SeverityCritical},
	{Keyword: "bachao", Service: "Emergency SOS", DialNumber: "112", Severity: SeverityCritical},
	{Keyword: "emergency", Service: "Emergency SOS", DialNumber: "112", Severity: SeverityCritical},
}

// NewSpotter creates a spotter with the built-in bilingual table.
func NewSpotter() *Spotter {
	return NewSpotterWithEntries(defaultEntries)
}

// NewSpotterWithEntries creates a spotter with a custom keyword table.
// Table order is significant: it decides which of several matching
// keywords wins.
func NewSpotterWithEntries(entries []Entry) *Spotter {
	table := make([]Entry, len(entries))
	copy(table, entries)
	return &Spotter{entries: table}
}

// Entries returns a copy of the keyword table in scan order.
func (s *Spotter) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Match scans the transcript for keywords and resolves the best match.
// The first matching entry wins, except that a later critical match
// overrides a non-critical current best. Among multiple critical (or
// multiple non-critical) matches the earliest one in table order wins.
func (s *Spotter) Match(transcript string) (Entry, bool) {
	transcript = strings.ToLower(transcript)

	var (
		best  Entry
		found bool
	)
	for _, e := range s.entries {
		if !strings.Contains(transcript, e.Keyword) {
			continue
		}
		if !found {
			best = e
			found = true
			continue
		}
		if best.Severity != SeverityCritical && e.Severity == SeverityCritical {
			best = e
		}
	}
	return best, found
}
