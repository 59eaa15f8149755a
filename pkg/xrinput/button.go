package xrinput

import "fmt"

// Phase is the latched state of one button's click state machine.
type Phase int

const (
	// PhaseDone means no press is in progress.
	PhaseDone Phase = iota
	// PhaseClicking means a press began and has not yet ended.
	PhaseClicking
)

// String returns "done" or "clicking".
func (p Phase) String() string {
	if p == PhaseClicking {
		return "clicking"
	}
	return "done"
}

// SelectEvent is a discrete semantic button event. A button emits at most
// one per frame.
type SelectEvent int

const (
	// EventStart marks the beginning of a press.
	EventStart SelectEvent = iota
	// EventSelect marks a completed press-then-release: a discrete
	// activation.
	EventSelect
	// EventEnd marks a press terminated abnormally, either because tracking
	// was lost mid-press or because the menu gesture pre-empted it. No
	// EventSelect follows.
	EventEnd
)

// String returns "start", "select" or "end".
func (e SelectEvent) String() string {
	switch e {
	case EventStart:
		return "start"
	case EventSelect:
		return "select"
	case EventEnd:
		return "end"
	}
	return "unknown"
}

// MarshalJSON encodes the event as its string name.
func (e SelectEvent) MarshalJSON() ([]byte, error) {
	return []byte(`"` + e.String() + `"`), nil
}

// UnmarshalJSON decodes the string name back into an event.
func (e *SelectEvent) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"start"`:
		*e = EventStart
	case `"select"`:
		*e = EventSelect
	case `"end"`:
		*e = EventEnd
	default:
		return fmt.Errorf("xrinput: unknown select event %s", data)
	}
	return nil
}

// ClickState debounces one logical button. The zero value is ready to use,
// with the phase PhaseDone.
type ClickState struct {
	phase Phase
}

// Current returns the latched phase, for diagnostics and tests.
func (c *ClickState) Current() Phase {
	return c.phase
}

// Update advances the state machine by one frame and returns the button's
// active flag plus the event emitted this frame, if any.
//
// The menu gesture check runs before the normal press/release checks: a
// gesture arriving mid-press always ends the click with EventEnd, never
// EventSelect, even if the raw signal also shows a release this frame.
// Losing tracking (Active false) mid-press likewise ends the click.
func (c *ClickState) Update(sample ButtonSample, menuSelected bool) (active bool, ev SelectEvent, fired bool) {
	switch {
	case sample.Active && c.phase == PhaseClicking && menuSelected:
		// Cancel the select, a menu is being shown.
		c.phase = PhaseDone
		return true, EventEnd, true
	case sample.Active && sample.Pressed && c.phase == PhaseDone && !menuSelected:
		c.phase = PhaseClicking
		return true, EventStart, true
	case sample.Active && !sample.Pressed && c.phase == PhaseClicking:
		c.phase = PhaseDone
		return true, EventSelect, true
	case sample.Active:
		return true, 0, false
	case c.phase == PhaseClicking:
		// Cancel the select, we lost tracking.
		c.phase = PhaseDone
		return false, EventEnd, true
	default:
		return false, 0, false
	}
}
