package gesture

import (
	"testing"

	"github.com/safehavenapp/safehaven/internal/landmark"
)

func TestClassify_PatternTable(t *testing.T) {
	tests := []struct {
		name          string
		hand          landmark.Hand
		wantType      Type
		minConfidence float64
	}{
		{"thumbs up", landmark.ThumbsUpHand(), ThumbUp, 0.90},
		{"peace sign", landmark.PeaceHand(), PeaceSign, 0.90},
		{"pointing", landmark.PointingHand(), Pointing, 0.85},
		{"fist", landmark.FistHand(), Fist, 0.90},
		{"open palm", landmark.OpenPalmHand(), OpenPalm, 0.80},
		{"ok sign", landmark.OKSignHand(), OKSign, 0.80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := Classify(tt.hand)
			if !ok {
				t.Fatalf("expected %s to classify", tt.wantType)
			}
			if c.Type != tt.wantType {
				t.Errorf("type = %s, want %s", c.Type, tt.wantType)
			}
			if c.Confidence < tt.minConfidence {
				t.Errorf("confidence = %f, want >= %f", c.Confidence, tt.minConfidence)
			}
		})
	}
}

func TestClassify_NoMatch(t *testing.T) {
	// Ring and pinky only is not in the pattern table.
	h := landmark.BuildHand(false, false, false, true, true)

	if _, ok := Classify(h); ok {
		t.Error("ring+pinky pattern should not classify")
	}

	// Thumb, index and middle is not in the table either.
	h = landmark.BuildHand(true, true, true, false, false)
	if _, ok := Classify(h); ok {
		t.Error("thumb+index+middle pattern should not classify")
	}
}

func TestClassify_RejectsIncompleteHand(t *testing.T) {
	full := landmark.ThumbsUpHand()

	for _, n := range []int{0, 1, 10, 20} {
		if _, ok := Classify(full[:n]); ok {
			t.Errorf("hand with %d points should not classify", n)
		}
	}

	if _, ok := Classify(nil); ok {
		t.Error("nil hand should not classify")
	}
}

func TestClassify_ConfidenceBounds(t *testing.T) {
	hands := []landmark.Hand{
		landmark.ThumbsUpHand(),
		landmark.PeaceHand(),
		landmark.PointingHand(),
		landmark.FistHand(),
		landmark.OpenPalmHand(),
		landmark.OKSignHand(),
	}

	for _, h := range hands {
		c, ok := Classify(h)
		if !ok {
			continue
		}
		if c.Confidence <= 0 || c.Confidence > MaxConfidence {
			t.Errorf("%s: confidence %f outside (0, %f]", c.Type, c.Confidence, MaxConfidence)
		}
	}
}

func TestClassify_ConfidenceClamped(t *testing.T) {
	// Thumbs up gets both the count bonus (one finger extended) and the
	// scale bonus, which would push 0.90 past the cap without clamping.
	c, ok := Classify(landmark.ThumbsUpHand())
	if !ok {
		t.Fatal("expected thumbs up to classify")
	}
	if c.Confidence != MaxConfidence {
		t.Errorf("confidence = %f, want clamped to %f", c.Confidence, MaxConfidence)
	}
}

func TestClassify_ScaleBonus(t *testing.T) {
	// Shrink the hand far below the camera-appropriate range; the scale
	// bonus should disappear while the pattern still matches.
	h := landmark.FistHand()
	small := make(landmark.Hand, len(h))
	wrist := h[landmark.Wrist]
	for i, p := range h {
		small[i] = landmark.Point{
			X: wrist.X + (p.X-wrist.X)*0.2,
			Y: wrist.Y + (p.Y-wrist.Y)*0.2,
		}
	}

	c, ok := Classify(small)
	if !ok {
		t.Fatal("scaled-down fist should still classify")
	}
	if c.Type != Fist {
		t.Fatalf("type = %s, want %s", c.Type, Fist)
	}

	// Base 0.90, no count bonus (zero fingers), no scale bonus.
	if c.Confidence != 0.90 {
		t.Errorf("confidence = %f, want 0.90 without scale bonus", c.Confidence)
	}
}
