package sim

import "github.com/vantagexr/go-xrinput/pkg/xrinput"

// Scenario returns a named demo script. Known names: "press", "menu",
// "flaky", "idle".
func Scenario(name string) (Script, error) {
	switch name {
	case "press":
		return PressScript(), nil
	case "menu":
		return MenuScript(), nil
	case "flaky":
		return FlakyScript(), nil
	case "idle":
		return IdleScript(), nil
	}
	return nil, ErrUnknownScenario
}

// PressScript taps the primary button once a second or so: idle, press,
// release. Each cycle yields one Start and one Select per hand.
func PressScript() Script {
	active := func(pressed bool) xrinput.ButtonSample {
		return xrinput.ButtonSample{Active: true, Pressed: pressed}
	}
	return Script{
		{Ticks: 45, Tracked: true, Click: active(false), Squeeze: active(false)},
		{Ticks: 15, Tracked: true, Click: active(true), Squeeze: active(false)},
		{Ticks: 30, Tracked: true, Click: active(false), Squeeze: active(false)},
		{Ticks: 20, Tracked: true, Click: active(false), Squeeze: active(true)},
		{Ticks: 10, Tracked: true, Click: active(false), Squeeze: active(false)},
	}
}

// MenuScript starts a press, then raises the palm toward the gaze long
// enough for the menu gesture to fire, cancelling the press with End. The
// still-held button then begins a fresh press.
func MenuScript() Script {
	held := xrinput.ButtonSample{Active: true, Pressed: true}
	idle := xrinput.ButtonSample{Active: true, Pressed: false}
	return Script{
		{Ticks: 30, Tracked: true, Click: idle, Squeeze: idle},
		{Ticks: 10, Tracked: true, Click: held, Squeeze: idle},
		{Ticks: 75, Tracked: true, Click: held, Squeeze: idle, PalmFacing: true},
		{Ticks: 10, Tracked: true, Click: idle, Squeeze: idle},
	}
}

// FlakyScript loses tracking mid-press and briefly drops the transport,
// exercising the End-on-loss path and the fault path.
func FlakyScript() Script {
	held := xrinput.ButtonSample{Active: true, Pressed: true}
	idle := xrinput.ButtonSample{Active: true, Pressed: false}
	return Script{
		{Ticks: 30, Tracked: true, Click: idle, Squeeze: idle},
		{Ticks: 10, Tracked: true, Click: held, Squeeze: idle},
		{Ticks: 20, Tracked: false, Click: xrinput.ButtonSample{}, Squeeze: xrinput.ButtonSample{}},
		{Ticks: 5, Fault: true},
		{Ticks: 25, Tracked: true, Click: idle, Squeeze: idle},
	}
}

// IdleScript keeps both hands tracked and quiet.
func IdleScript() Script {
	idle := xrinput.ButtonSample{Active: true, Pressed: false}
	return Script{
		{Ticks: 60, Tracked: true, Click: idle, Squeeze: idle},
	}
}
