// Package gesture provides gesture classification and the recognition
// session that turns per-frame classifications into a text history.
package gesture

import (
	"github.com/safehavenapp/safehaven/internal/landmark"
)

// Type represents a recognized hand gesture.
type Type string

const (
	ThumbUp   Type = "thumb_up"
	PeaceSign Type = "peace_sign"
	Pointing  Type = "pointing"
	Fist      Type = "fist"
	OpenPalm  Type = "open_palm"
	OKSign    Type = "ok_sign"
)

// Classification is the result of classifying one hand frame.
type Classification struct {
	Type       Type    `json:"type"`
	Confidence float64 `json:"confidence"`
}

// Confidence tuning constants. The bonuses reward unambiguous finger
// counts and a camera-appropriate hand scale; MaxConfidence caps the
// final score.
const (
	countBonus    = 0.05
	scaleBonus    = 0.05
	MaxConfidence = 0.95

	minHandScale = 0.15
	maxHandScale = 0.4
)

// Classify maps one hand's landmarks to a gesture with a confidence
// score. It returns false when the hand is invalid or the finger pattern
// matches no known gesture.
func Classify(h landmark.Hand) (Classification, bool) {
	if !h.Valid() {
		return Classification{}, false
	}

	// Step 1: extension test per finger.
	wrist := h[landmark.Wrist]
	thumb := landmark.IsThumbExtended(h[landmark.ThumbTip], h[landmark.ThumbMCP], wrist)
	index := landmark.IsFingerExtended(h[landmark.IndexTip], h[landmark.IndexPIP], h[landmark.IndexMCP])
	middle := landmark.IsFingerExtended(h[landmark.MiddleTip], h[landmark.MiddlePIP], h[landmark.MiddleMCP])
	ring := landmark.IsFingerExtended(h[landmark.RingTip], h[landmark.RingPIP], h[landmark.RingMCP])
	pinky := landmark.IsFingerExtended(h[landmark.PinkyTip], h[landmark.PinkyPIP], h[landmark.PinkyMCP])

	// Step 2: match the boolean 5-tuple against the pattern table.
	// Patterns are mutually exclusive by construction.
	var (
		gestureType Type
		confidence  float64
	)
	switch {
	case thumb && !index && !middle && !ring && !pinky:
		gestureType, confidence = ThumbUp, 0.90
	case !thumb && index && middle && !ring && !pinky:
		gestureType, confidence = PeaceSign, 0.90
	case !thumb && index && !middle && !ring && !pinky:
		gestureType, confidence = Pointing, 0.85
	case !thumb && !index && !middle && !ring && !pinky:
		gestureType, confidence = Fist, 0.90
	case thumb && index && middle && ring && pinky:
		gestureType, confidence = OpenPalm, 0.80
	case thumb && index && !middle && !ring && !pinky:
		gestureType, confidence = OKSign, 0.80
	default:
		return Classification{}, false
	}

	// Step 3: confidence adjustment.
	extended := 0
	for _, e := range [...]bool{thumb, index, middle, ring, pinky} {
		if e {
			extended++
		}
	}
	if extended == 1 || extended == 2 || extended == 5 {
		confidence += countBonus
	}

	scale := landmark.HandScale(h)
	if scale >= minHandScale && scale <= maxHandScale {
		confidence += scaleBonus
	}

	if confidence > MaxConfidence {
		confidence = MaxConfidence
	}

	return Classification{Type: gestureType, Confidence: confidence}, true
}
