// Package landmark provides hand-landmark types and geometry utilities for
// the SafeHaven gesture recognition pipeline.
package landmark

import "math"

// Hand landmark indices following MediaPipe convention.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexMCP     = 5
	IndexPIP     = 6
	IndexDIP     = 7
	IndexTip     = 8
	MiddleMCP    = 9
	MiddlePIP    = 10
	MiddleDIP    = 11
	MiddleTip    = 12
	RingMCP      = 13
	RingPIP      = 14
	RingDIP      = 15
	RingTip      = 16
	PinkyMCP     = 17
	PinkyPIP     = 18
	PinkyDIP     = 19
	PinkyTip     = 20
	NumLandmarks = 21
)

// Point represents a 2D point in normalized image-plane coordinates,
// with x and y in [0, 1].
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Hand is an ordered sequence of hand landmarks. A valid hand carries
// exactly NumLandmarks points in the MediaPipe index order.
type Hand []Point

// Valid reports whether the hand carries the full set of landmarks.
// Frames with fewer points are rejected by the classifier.
func (h Hand) Valid() bool {
	return len(h) >= NumLandmarks
}

// Distance calculates the Euclidean distance between two points in
// normalized coordinate space.
func Distance(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// IsFingerExtended reports whether a finger is straightened, given its
// tip, PIP and MCP landmarks. When the finger is straight the tip-to-base
// distance approaches the sum of the two segment lengths; curling reduces
// it. The 0.8 factor is empirical slack.
func IsFingerExtended(tip, pip, mcp Point) bool {
	return Distance(tip, mcp) > 0.8*(Distance(tip, pip)+Distance(pip, mcp))
}

// IsThumbExtended reports whether the thumb is extended, given its tip and
// MCP landmarks and the wrist. The thumb extends along a different axis
// than the other fingers, so it gets its own test: the tip must sit
// noticeably further from the wrist than the knuckle does.
func IsThumbExtended(tip, mcp, wrist Point) bool {
	return Distance(tip, wrist) > 1.2*Distance(mcp, wrist)
}

// PalmCenter returns the arithmetic mean of the four non-thumb MCP
// landmarks.
func PalmCenter(h Hand) Point {
	mcps := [...]int{IndexMCP, MiddleMCP, RingMCP, PinkyMCP}
	var c Point
	for _, i := range mcps {
		c.X += h[i].X
		c.Y += h[i].Y
	}
	c.X /= float64(len(mcps))
	c.Y /= float64(len(mcps))
	return c
}

// HandScale returns the distance from the wrist to the palm center, an
// estimate of how large the hand appears in the frame.
func HandScale(h Hand) float64 {
	return Distance(h[Wrist], PalmCenter(h))
}
