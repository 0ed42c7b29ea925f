package landmark

// Preset hand builders for tests and demos. The geometry is synthetic but
// respects the extension heuristics: extended fingers are collinear with
// their knuckles, curled fingers fold back toward the palm, and the hand
// scale lands in the camera-appropriate range.

// fingerBase holds the MCP position for each non-thumb finger.
var fingerBase = map[int]Point{
	IndexMCP:  {X: 0.56, Y: 0.60},
	MiddleMCP: {X: 0.52, Y: 0.60},
	RingMCP:   {X: 0.48, Y: 0.60},
	PinkyMCP:  {X: 0.44, Y: 0.60},
}

// BuildHand synthesizes a full 21-point hand with the given fingers
// extended. The wrist sits at (0.5, 0.85) with fingers pointing up
// (y decreases toward the top of the frame).
func BuildHand(thumb, index, middle, ring, pinky bool) Hand {
	h := make(Hand, NumLandmarks)
	h[Wrist] = Point{X: 0.50, Y: 0.85}

	// Thumb extends sideways from the palm, so its landmarks follow a
	// diagonal rather than a vertical line.
	h[ThumbCMC] = Point{X: 0.56, Y: 0.80}
	h[ThumbMCP] = Point{X: 0.60, Y: 0.75}
	if thumb {
		h[ThumbIP] = Point{X: 0.66, Y: 0.68}
		h[ThumbTip] = Point{X: 0.72, Y: 0.62}
	} else {
		h[ThumbIP] = Point{X: 0.57, Y: 0.77}
		h[ThumbTip] = Point{X: 0.55, Y: 0.78}
	}

	placeFinger(h, IndexMCP, index)
	placeFinger(h, MiddleMCP, middle)
	placeFinger(h, RingMCP, ring)
	placeFinger(h, PinkyMCP, pinky)

	return h
}

// placeFinger fills the MCP/PIP/DIP/tip landmarks for one non-thumb finger.
// Landmark indices within a finger are consecutive (mcp, pip, dip, tip).
func placeFinger(h Hand, mcp int, extended bool) {
	base := fingerBase[mcp]
	h[mcp] = base
	if extended {
		h[mcp+1] = Point{X: base.X, Y: 0.45}
		h[mcp+2] = Point{X: base.X, Y: 0.37}
		h[mcp+3] = Point{X: base.X, Y: 0.30}
	} else {
		h[mcp+1] = Point{X: base.X + 0.01, Y: 0.52}
		h[mcp+2] = Point{X: base.X + 0.01, Y: 0.58}
		h[mcp+3] = Point{X: base.X, Y: 0.62}
	}
}

// ThumbsUpHand returns a hand with only the thumb extended.
func ThumbsUpHand() Hand { return BuildHand(true, false, false, false, false) }

// PeaceHand returns a hand with index and middle fingers extended.
func PeaceHand() Hand { return BuildHand(false, true, true, false, false) }

// PointingHand returns a hand with only the index finger extended.
func PointingHand() Hand { return BuildHand(false, true, false, false, false) }

// FistHand returns a hand with no fingers extended.
func FistHand() Hand { return BuildHand(false, false, false, false, false) }

// OpenPalmHand returns a hand with all five fingers extended.
func OpenPalmHand() Hand { return BuildHand(true, true, true, true, true) }

// OKSignHand returns a hand with thumb and index finger extended.
func OKSignHand() Hand { return BuildHand(true, true, false, false, false) }
