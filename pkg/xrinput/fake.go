package xrinput

import (
	"sync"
	"time"
)

// Fake implements Backend for testing. All methods can be customized via
// function fields; the defaults report untracked spaces and inactive
// buttons.
type Fake struct {
	// LocateSpaceFunc is called when LocateSpace is invoked. If nil, the
	// location comes back with both validity flags clear.
	LocateSpaceFunc func(anchor, base Space, predicted time.Duration) (SpaceLocation, error)

	// ButtonStateFunc is called when ButtonState is invoked. If nil, the
	// sample is inactive and unpressed.
	ButtonStateFunc func(b Button) (ButtonSample, error)

	mu    sync.Mutex
	calls []FakeCall
}

// FakeCall records one backend query for verification.
type FakeCall struct {
	Method string
	Anchor Space
	Button Button
}

// LocateSpace implements Backend.
func (f *Fake) LocateSpace(anchor, base Space, predicted time.Duration) (SpaceLocation, error) {
	f.record(FakeCall{Method: "LocateSpace", Anchor: anchor})
	if f.LocateSpaceFunc == nil {
		return SpaceLocation{}, nil
	}
	return f.LocateSpaceFunc(anchor, base, predicted)
}

// ButtonState implements Backend.
func (f *Fake) ButtonState(b Button) (ButtonSample, error) {
	f.record(FakeCall{Method: "ButtonState", Button: b})
	if f.ButtonStateFunc == nil {
		return ButtonSample{}, nil
	}
	return f.ButtonStateFunc(b)
}

// Calls returns a copy of all recorded queries.
func (f *Fake) Calls() []FakeCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]FakeCall, len(f.calls))
	copy(out, f.calls)
	return out
}

// Reset clears the recorded queries.
func (f *Fake) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = nil
}

func (f *Fake) record(c FakeCall) {
	f.mu.Lock()
	f.calls = append(f.calls, c)
	f.mu.Unlock()
}
