package xrinput

// Handedness identifies which hand a source belongs to. It is fixed at
// construction; controllers and hands are mirrored, so it decides the sign
// convention used by the menu gesture.
type Handedness int

const (
	// Left hand or left-hand controller.
	Left Handedness = iota
	// Right hand or right-hand controller.
	Right
)

// String returns "left" or "right".
func (h Handedness) String() string {
	if h == Right {
		return "right"
	}
	return "left"
}

// MarshalJSON encodes the handedness as its string name.
func (h Handedness) MarshalJSON() ([]byte, error) {
	return []byte(`"` + h.String() + `"`), nil
}

// UnmarshalJSON decodes "left" or "right".
func (h *Handedness) UnmarshalJSON(data []byte) error {
	if string(data) == `"right"` {
		*h = Right
	} else {
		*h = Left
	}
	return nil
}
