// Package sim provides a deterministic simulated tracking backend so the
// input pipeline can run end to end with no headset attached. A World plays
// a looping script of button and tracking states and synthesizes the grip
// poses for each segment, including a palm pose that qualifies for the menu
// gesture.
package sim

import (
	"math"
	"sync"
	"time"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/vantagexr/go-xrinput/pkg/xrinput"
)

// Backend handles the simulator answers for. Binding them to sources is
// done by Sources.
const (
	BaseSpace xrinput.Space = iota
	AimLeft
	GripLeft
	AimRight
	GripRight
)

const (
	ClickLeft xrinput.Button = iota
	SqueezeLeft
	ClickRight
	SqueezeRight
)

// Segment is one stretch of the script during which the simulated signals
// hold steady.
type Segment struct {
	// Ticks is how many frames the segment lasts.
	Ticks int

	// Click and Squeeze are the raw samples reported for both hands.
	Click   xrinput.ButtonSample
	Squeeze xrinput.ButtonSample

	// Tracked controls whether the aim and grip spaces resolve.
	Tracked bool

	// PalmFacing poses the grip so the menu gesture qualifies.
	PalmFacing bool

	// Fault makes every backend query fail at the transport level.
	Fault bool
}

// Script is a looping sequence of segments.
type Script []Segment

// ticks returns the script length in frames.
func (s Script) ticks() int {
	n := 0
	for _, seg := range s {
		n += seg.Ticks
	}
	return n
}

// World is a scripted xrinput.Backend. It advances one frame per
// NextViewer call, which the rig makes exactly once per tick.
type World struct {
	mu     sync.Mutex
	tick   int
	script Script
}

// NewWorld creates a world playing the given script in a loop.
func NewWorld(script Script) *World {
	// The first NextViewer call lands on frame zero.
	return &World{script: script, tick: -1}
}

// Sources builds the left and right input sources bound to this world.
func (w *World) Sources() []*xrinput.Source {
	return []*xrinput.Source{
		xrinput.NewSource(0, xrinput.Right, w, xrinput.SourceBindings{
			Aim: AimRight, Grip: GripRight, Click: ClickRight, Squeeze: SqueezeRight,
		}),
		xrinput.NewSource(1, xrinput.Left, w, xrinput.SourceBindings{
			Aim: AimLeft, Grip: GripLeft, Click: ClickLeft, Squeeze: SqueezeLeft,
		}),
	}
}

// NextViewer advances the world by one frame and returns the viewer pose.
// The viewer stands at the origin looking down +Z, which keeps the scripted
// palm poses on the gaze ray.
func (w *World) NextViewer() xrinput.Pose {
	w.mu.Lock()
	w.tick++
	w.mu.Unlock()
	return xrinput.IdentityPose()
}

// Tick returns the current frame number.
func (w *World) Tick() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.tick
}

// current returns the active segment.
func (w *World) current() Segment {
	w.mu.Lock()
	defer w.mu.Unlock()

	total := w.script.ticks()
	if total == 0 {
		return Segment{}
	}
	n := w.tick % total
	for _, seg := range w.script {
		if n < seg.Ticks {
			return seg
		}
		n -= seg.Ticks
	}
	return w.script[len(w.script)-1]
}

// LocateSpace implements xrinput.Backend.
func (w *World) LocateSpace(anchor, base xrinput.Space, predicted time.Duration) (xrinput.SpaceLocation, error) {
	seg := w.current()
	if seg.Fault {
		return xrinput.SpaceLocation{}, ErrLinkDown
	}
	if !seg.Tracked {
		return xrinput.SpaceLocation{}, nil
	}

	var pose xrinput.Pose
	switch anchor {
	case GripLeft:
		pose = gripPose(xrinput.Left, seg.PalmFacing)
	case GripRight:
		pose = gripPose(xrinput.Right, seg.PalmFacing)
	case AimLeft:
		pose = aimPose(xrinput.Left)
	case AimRight:
		pose = aimPose(xrinput.Right)
	default:
		return xrinput.SpaceLocation{}, nil
	}
	return xrinput.SpaceLocation{
		Pose:             pose,
		PositionValid:    true,
		OrientationValid: true,
	}, nil
}

// ButtonState implements xrinput.Backend.
func (w *World) ButtonState(b xrinput.Button) (xrinput.ButtonSample, error) {
	seg := w.current()
	if seg.Fault {
		return xrinput.ButtonSample{}, ErrLinkDown
	}
	if b == SqueezeLeft || b == SqueezeRight {
		return seg.Squeeze, nil
	}
	return seg.Click, nil
}

// gripPose synthesizes the grip for one hand. With PalmFacing the palm
// normal lines up with the viewer's gaze and the hand sits on the gaze ray,
// so both gesture checks pass; otherwise the hand rests at the side with
// the palm perpendicular to the gaze.
func gripPose(hand xrinput.Handedness, palmFacing bool) xrinput.Pose {
	mirror := 1.0
	if hand == xrinput.Left {
		mirror = -1.0
	}

	if !palmFacing {
		return xrinput.Pose{
			Position:    r3.Vec{X: 0.25 * mirror, Y: -0.35, Z: -0.45},
			Orientation: r3.NewRotation(0, r3.Vec{Y: 1}),
		}
	}

	// A quarter turn about Y maps the hand's palm axis onto +Z. The sign of
	// the turn mirrors between hands because the palm axis does.
	angle := math.Pi / 2
	if hand == xrinput.Left {
		angle = -math.Pi / 2
	}
	return xrinput.Pose{
		Position:    r3.Vec{X: 0, Y: -0.04, Z: -0.5},
		Orientation: r3.NewRotation(angle, r3.Vec{Y: 1}),
	}
}

// aimPose synthesizes the target ray origin slightly forward of the grip.
func aimPose(hand xrinput.Handedness) xrinput.Pose {
	mirror := 1.0
	if hand == xrinput.Left {
		mirror = -1.0
	}
	return xrinput.Pose{
		Position:    r3.Vec{X: 0.22 * mirror, Y: -0.3, Z: -0.55},
		Orientation: r3.NewRotation(0, r3.Vec{Y: 1}),
	}
}
