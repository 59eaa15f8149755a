package xrinput

import "time"

// Space is an opaque handle to a tracked anchor or reference space owned by
// the backend (aim, grip, stage, ...).
type Space uint32

// Button is an opaque handle to a boolean input action owned by the backend.
type Button uint32

// SpaceLocation is the raw answer to a pose query. The pose is only
// meaningful when both validity flags are set.
type SpaceLocation struct {
	Pose             Pose
	PositionValid    bool
	OrientationValid bool
}

// ButtonSample is the raw per-frame state of one button.
type ButtonSample struct {
	// Active reports whether the signal is currently trackable. A button on
	// a controller that lost tracking is not active.
	Active bool

	// Pressed is the raw boolean level. Only meaningful while Active.
	Pressed bool
}

// Backend answers the per-frame tracking queries the input core depends on.
// Both methods return an error only on a transport-level fault; "answered:
// not currently valid" is expressed through the returned value instead.
type Backend interface {
	// LocateSpace resolves anchor relative to base at the predicted display
	// time (measured from session start).
	LocateSpace(anchor, base Space, predicted time.Duration) (SpaceLocation, error)

	// ButtonState returns the raw sample for one button. Called once per
	// button per frame.
	ButtonState(b Button) (ButtonSample, error)
}
