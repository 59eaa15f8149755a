package xrinput

import (
	"errors"
	"testing"
	"time"
)

const (
	testBase    Space = 0
	testAim     Space = 1
	testGrip    Space = 2
	testClick   Button = 10
	testSqueeze Button = 11
)

// scriptedBackend holds per-frame state a test mutates between Frame calls.
type scriptedBackend struct {
	gripTracked bool
	gripPose    Pose
	aimTracked  bool
	click       ButtonSample
	squeeze     ButtonSample
}

func (s *scriptedBackend) fake() *Fake {
	return &Fake{
		LocateSpaceFunc: func(anchor, base Space, predicted time.Duration) (SpaceLocation, error) {
			switch anchor {
			case testAim:
				return SpaceLocation{
					Pose:             IdentityPose(),
					PositionValid:    s.aimTracked,
					OrientationValid: s.aimTracked,
				}, nil
			case testGrip:
				return SpaceLocation{
					Pose:             s.gripPose,
					PositionValid:    s.gripTracked,
					OrientationValid: s.gripTracked,
				}, nil
			}
			return SpaceLocation{}, nil
		},
		ButtonStateFunc: func(b Button) (ButtonSample, error) {
			if b == testSqueeze {
				return s.squeeze, nil
			}
			return s.click, nil
		},
	}
}

func testBindings() SourceBindings {
	return SourceBindings{Aim: testAim, Grip: testGrip, Click: testClick, Squeeze: testSqueeze}
}

func frameAt(t *testing.T, src *Source, tick int) *FrameRecord {
	t.Helper()
	rec, err := src.Frame(testBase, testViewer(), time.Duration(tick)*16*time.Millisecond)
	if err != nil {
		t.Fatalf("tick %d: unexpected error: %v", tick, err)
	}
	return rec
}

// Idle, press, release over three frames yields no event, then Start, then
// Select.
func TestSource_PressReleaseEndToEnd(t *testing.T) {
	script := &scriptedBackend{aimTracked: true}
	src := NewSource(0, Right, script.fake(), testBindings())

	script.click = ButtonSample{Active: true, Pressed: false}
	rec := frameAt(t, src, 0)
	if rec.Select != nil {
		t.Fatalf("idle frame: unexpected event %v", *rec.Select)
	}
	if rec.Pressed {
		t.Error("idle frame: pressed should be false")
	}

	script.click = ButtonSample{Active: true, Pressed: true}
	rec = frameAt(t, src, 1)
	if rec.Select == nil || *rec.Select != EventStart {
		t.Fatalf("press frame: got %v, want start", rec.Select)
	}
	if !rec.Pressed {
		t.Error("press frame: pressed should be true")
	}

	script.click = ButtonSample{Active: true, Pressed: false}
	rec = frameAt(t, src, 2)
	if rec.Select == nil || *rec.Select != EventSelect {
		t.Fatalf("release frame: got %v, want select", rec.Select)
	}
	if src.ClickPhase() != PhaseDone {
		t.Errorf("final phase: got %v, want done", src.ClickPhase())
	}
}

// The palm gesture held for a full sustain period fires menu_selected once
// and cancels the in-progress click on that same frame.
func TestSource_GesturePreemptsClick(t *testing.T) {
	script := &scriptedBackend{
		aimTracked:  true,
		gripTracked: true,
		gripPose:    palmFacingGrip(Left),
		click:       ButtonSample{Active: true, Pressed: true},
	}
	src := NewSource(1, Left, script.fake(), testBindings())

	rec := frameAt(t, src, 0)
	if rec.Select == nil || *rec.Select != EventStart {
		t.Fatalf("first frame: got %v, want start", rec.Select)
	}

	// Hold button and gesture until the sustain threshold trips.
	var menuFrame *FrameRecord
	for tick := 1; tick <= 61; tick++ {
		rec = frameAt(t, src, tick)
		if rec.MenuSelected {
			menuFrame = rec
			break
		}
		if rec.Select != nil {
			t.Fatalf("tick %d: unexpected event %v before menu", tick, *rec.Select)
		}
	}
	if menuFrame == nil {
		t.Fatal("menu gesture never fired")
	}
	if menuFrame.Select == nil || *menuFrame.Select != EventEnd {
		t.Fatalf("menu frame: got %v, want end", menuFrame.Select)
	}
	if menuFrame.Squeeze != nil {
		t.Errorf("menu frame: squeeze was idle, got %v", *menuFrame.Squeeze)
	}
	if src.ClickPhase() != PhaseDone {
		t.Errorf("phase after preemption: got %v, want done", src.ClickPhase())
	}

	// Button still held, gesture one-shot has reset: a fresh Start.
	rec = frameAt(t, src, 62)
	if rec.MenuSelected {
		t.Error("menu should not latch across frames")
	}
	if rec.Select == nil || *rec.Select != EventStart {
		t.Fatalf("frame after menu: got %v, want fresh start", rec.Select)
	}
}

// The gesture cancels both buttons' presses on the frame it fires.
func TestSource_GesturePreemptsBothButtons(t *testing.T) {
	script := &scriptedBackend{
		aimTracked:  true,
		gripTracked: true,
		gripPose:    palmFacingGrip(Right),
		click:       ButtonSample{Active: true, Pressed: true},
		squeeze:     ButtonSample{Active: true, Pressed: true},
	}
	src := NewSource(0, Right, script.fake(), testBindings())

	var menuFrame *FrameRecord
	for tick := 0; tick <= 62; tick++ {
		rec := frameAt(t, src, tick)
		if rec.MenuSelected {
			menuFrame = rec
			break
		}
	}
	if menuFrame == nil {
		t.Fatal("menu gesture never fired")
	}
	if menuFrame.Select == nil || *menuFrame.Select != EventEnd {
		t.Errorf("select: got %v, want end", menuFrame.Select)
	}
	if menuFrame.Squeeze == nil || *menuFrame.Squeeze != EventEnd {
		t.Errorf("squeeze: got %v, want end", menuFrame.Squeeze)
	}
}

// Losing button tracking mid-press ends the click and clears the derived
// pressed flag.
func TestSource_TrackingLossEndsClick(t *testing.T) {
	script := &scriptedBackend{aimTracked: true}
	src := NewSource(0, Left, script.fake(), testBindings())

	script.click = ButtonSample{Active: true, Pressed: true}
	frameAt(t, src, 0)

	script.click = ButtonSample{Active: false, Pressed: true}
	rec := frameAt(t, src, 1)
	if rec.Select == nil || *rec.Select != EventEnd {
		t.Fatalf("got %v, want end", rec.Select)
	}
	if rec.Pressed {
		t.Error("pressed must be false while inactive")
	}
}

// Untracked poses are normal: the record simply carries nil poses and the
// button machinery is unaffected.
func TestSource_UntrackedPosesAreNormal(t *testing.T) {
	script := &scriptedBackend{}
	src := NewSource(0, Left, script.fake(), testBindings())

	for tick := 0; tick < 100; tick++ {
		rec := frameAt(t, src, tick)
		if rec.TargetRay != nil || rec.Grip != nil {
			t.Fatalf("tick %d: expected nil poses", tick)
		}
		if rec.MenuSelected {
			t.Fatalf("tick %d: menu fired with no grip pose", tick)
		}
	}
	if src.Gesture().Sustain() != 0 {
		t.Errorf("sustain: got %d, want 0", src.Gesture().Sustain())
	}
	if src.ClickPhase() != PhaseDone || src.SqueezePhase() != PhaseDone {
		t.Error("button phases must not move with no input")
	}
}

// A transport fault yields an error and no record.
func TestSource_TransportFaultProducesNoRecord(t *testing.T) {
	boom := errors.New("session lost")
	backend := &Fake{
		ButtonStateFunc: func(b Button) (ButtonSample, error) {
			return ButtonSample{}, boom
		},
	}
	src := NewSource(0, Left, backend, testBindings())

	rec, err := src.Frame(testBase, testViewer(), 0)
	if rec != nil {
		t.Error("expected no record on transport fault")
	}
	if !errors.Is(err, ErrTrackingQuery) {
		t.Errorf("expected ErrTrackingQuery, got %v", err)
	}
}

func TestSource_RecordIdentity(t *testing.T) {
	script := &scriptedBackend{}
	src := NewSource(7, Right, script.fake(), testBindings())

	rec := frameAt(t, src, 0)
	if rec.ID != 7 {
		t.Errorf("id: got %d, want 7", rec.ID)
	}
	if rec.Handedness != Right {
		t.Errorf("handedness: got %v, want right", rec.Handedness)
	}
}
