package xrinput

import "time"

// SourceBindings names the backend handles one source reads each frame. The
// mapping of these handles to vendor interaction profiles is the backend's
// setup concern.
type SourceBindings struct {
	Aim     Space
	Grip    Space
	Click   Button
	Squeeze Button
}

// Source aggregates one input source (hand or controller): it owns the menu
// gesture detector and one click state machine per button, and assembles the
// per-frame FrameRecord.
//
// A source is single-threaded and tick-driven. Frame must be called exactly
// once per tracking frame, sequentially; state between calls lives in the
// latched phases and the gesture sustain counter. Sources share nothing, so
// left and right hands are fully independent.
type Source struct {
	id       int
	hand     Handedness
	backend  Backend
	bindings SourceBindings

	gesture      *MenuGestureDetector
	clickState   ClickState
	squeezeState ClickState
}

// NewSource creates a source for one hand with its backend handle bindings.
func NewSource(id int, hand Handedness, backend Backend, bindings SourceBindings) *Source {
	return &Source{
		id:       id,
		hand:     hand,
		backend:  backend,
		bindings: bindings,
		gesture:  NewMenuGestureDetector(hand),
	}
}

// ID returns the source's stable identifier.
func (s *Source) ID() int {
	return s.id
}

// Handedness returns which hand this source belongs to.
func (s *Source) Handedness() Handedness {
	return s.hand
}

// Gesture exposes the menu gesture detector, for diagnostics.
func (s *Source) Gesture() *MenuGestureDetector {
	return s.gesture
}

// ClickPhase returns the primary button's latched phase, for diagnostics.
func (s *Source) ClickPhase() Phase {
	return s.clickState.Current()
}

// SqueezePhase returns the squeeze button's latched phase, for diagnostics.
func (s *Source) SqueezePhase() Phase {
	return s.squeezeState.Current()
}

// Frame runs one tick for this source: resolve aim and grip poses relative
// to base, evaluate the menu gesture from the grip and viewer poses, run
// both button state machines with the gesture result, and assemble the
// record.
//
// On a transport fault it returns (nil, *QueryError) and produces no record;
// latched state already advanced this frame stays advanced, which the
// debounce design tolerates as one frame of lost history.
func (s *Source) Frame(base Space, viewer Pose, predicted time.Duration) (*FrameRecord, error) {
	targetRay, err := resolvePose(s.backend, s.bindings.Aim, base, predicted)
	if err != nil {
		return nil, err
	}
	grip, err := resolvePose(s.backend, s.bindings.Grip, base, predicted)
	if err != nil {
		return nil, err
	}

	// The gesture result feeds both state machines, so it is computed
	// before either runs.
	menuSelected := s.gesture.Observe(grip, viewer)

	clickSample, err := s.backend.ButtonState(s.bindings.Click)
	if err != nil {
		return nil, &QueryError{Op: "button_state", Err: err}
	}
	squeezeSample, err := s.backend.ButtonState(s.bindings.Squeeze)
	if err != nil {
		return nil, &QueryError{Op: "button_state", Err: err}
	}

	clickActive, clickEv, clickFired := s.clickState.Update(clickSample, menuSelected)
	squeezeActive, squeezeEv, squeezeFired := s.squeezeState.Update(squeezeSample, menuSelected)

	rec := &FrameRecord{
		ID:           s.id,
		Handedness:   s.hand,
		TargetRay:    targetRay,
		Grip:         grip,
		Pressed:      clickActive && clickSample.Pressed,
		Squeezed:     squeezeActive && squeezeSample.Pressed,
		MenuSelected: menuSelected,
	}
	if clickFired {
		ev := clickEv
		rec.Select = &ev
	}
	if squeezeFired {
		ev := squeezeEv
		rec.Squeeze = &ev
	}
	return rec, nil
}
