package xrinput

// FrameRecord is the per-frame output for one source. Records are created
// fresh every frame and handed to the downstream consumer; the core keeps no
// reference to them.
type FrameRecord struct {
	// ID identifies the source, stable across frames.
	ID int `json:"id"`

	// Handedness of the source.
	Handedness Handedness `json:"handedness"`

	// TargetRay is the resolved aim pose, nil when untracked this frame.
	TargetRay *Pose `json:"target_ray,omitempty"`

	// Grip is the resolved grip pose, nil when untracked this frame.
	Grip *Pose `json:"grip,omitempty"`

	// Pressed is the derived view of the primary button: active AND raw
	// level high, from the same sample that drove the state machine.
	Pressed bool `json:"pressed"`

	// Squeezed is the same derived view for the squeeze button.
	Squeezed bool `json:"squeezed"`

	// Select is the primary button's semantic event this frame, if any.
	Select *SelectEvent `json:"select,omitempty"`

	// Squeeze is the squeeze button's semantic event this frame, if any.
	Squeeze *SelectEvent `json:"squeeze,omitempty"`

	// MenuSelected is set on the single frame the palm gesture fires.
	MenuSelected bool `json:"menu_selected"`
}
