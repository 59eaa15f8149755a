package xrinput

import "gonum.org/v1/gonum/spatial/r3"

const (
	// menuGestureSustain is how many consecutive qualifying frames the palm
	// gesture must be held before the menu fires. At 60Hz this is about one
	// second.
	menuGestureSustain = 60

	// menuGestureAlignment is the cosine threshold for both gesture checks,
	// within roughly 18 degrees of exact alignment.
	menuGestureAlignment = 0.95
)

// MenuGestureDetector recognizes the "user is looking at their own upturned
// palm" system gesture. One instance per source; the zero counter state is
// ready to use.
//
// The trigger is one-shot, not a latch: the frame it fires the counter
// resets to zero and re-arms, so holding the gesture re-triggers only after
// another full sustain period.
type MenuGestureDetector struct {
	hand    Handedness
	sustain uint8
}

// NewMenuGestureDetector creates a detector for the given hand.
func NewMenuGestureDetector(hand Handedness) *MenuGestureDetector {
	return &MenuGestureDetector{hand: hand}
}

// Sustain returns the current sustain counter, for diagnostics and tests.
func (d *MenuGestureDetector) Sustain() uint8 {
	return d.sustain
}

// Observe feeds one frame's grip pose (nil when untracked) and viewer pose
// to the detector and reports whether the menu gesture fired this frame.
// Any frame that fails a qualifying check resets the counter to zero.
func (d *MenuGestureDetector) Observe(grip *Pose, viewer Pose) bool {
	if grip == nil {
		d.sustain = 0
		return false
	}

	// The grip X axis is perpendicular to the palm, mirrored between hands.
	// Rotating it by the grip orientation gives a unit vector out of the
	// palm.
	sign := 1.0
	if d.hand == Right {
		sign = -1.0
	}
	palm := grip.Orientation.Rotate(r3.Vec{X: sign})
	gaze := viewer.Orientation.Rotate(r3.Vec{Z: 1})

	// Gaze parallel to the palm normal?
	if r3.Dot(gaze, palm) <= menuGestureAlignment {
		d.sustain = 0
		return false
	}

	// And actually looking at the palm? A degenerate grip-to-viewer vector
	// (coincident positions) counts as not aligned.
	toViewer := r3.Sub(viewer.Position, grip.Position)
	norm := r3.Norm(toViewer)
	if norm == 0 {
		d.sustain = 0
		return false
	}
	if r3.Dot(gaze, r3.Scale(1/norm, toViewer)) <= menuGestureAlignment {
		d.sustain = 0
		return false
	}

	d.sustain++
	if d.sustain > menuGestureSustain {
		d.sustain = 0
		return true
	}
	return false
}
