package monitor

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/vantagexr/go-xrinput/pkg/rig"
	"github.com/vantagexr/go-xrinput/pkg/xrinput"
)

func tickWithEvents() rig.Tick {
	start := xrinput.EventStart
	return rig.Tick{
		Seq: 42,
		Records: []xrinput.FrameRecord{
			{ID: 0, Handedness: xrinput.Right, Select: &start, Pressed: true},
			{ID: 1, Handedness: xrinput.Left, MenuSelected: true},
		},
	}
}

func TestPublish_RecordsSemanticEvents(t *testing.T) {
	s := NewServer("0", "test")

	s.Publish(tickWithEvents())
	s.Publish(rig.Tick{Seq: 43}) // quiet tick adds nothing

	s.eventsMu.RLock()
	defer s.eventsMu.RUnlock()
	if len(s.events) != 2 {
		t.Fatalf("events: got %d, want 2", len(s.events))
	}
	if s.events[0].Button != "select" || s.events[0].Event != "start" {
		t.Errorf("first entry: got %s/%s, want select/start", s.events[0].Button, s.events[0].Event)
	}
	if s.events[1].Button != "menu" || s.events[1].Event != "triggered" {
		t.Errorf("second entry: got %s/%s, want menu/triggered", s.events[1].Button, s.events[1].Event)
	}
	if s.events[0].Tick != 42 {
		t.Errorf("tick: got %d, want 42", s.events[0].Tick)
	}
}

func TestEventLogCapped(t *testing.T) {
	s := NewServer("0", "test")

	for i := 0; i < maxEvents; i++ {
		s.Publish(tickWithEvents())
	}

	s.eventsMu.RLock()
	defer s.eventsMu.RUnlock()
	if len(s.events) > maxEvents {
		t.Errorf("event log grew past cap: %d", len(s.events))
	}
}

func TestFramesEndpointServesRecentTicks(t *testing.T) {
	s := NewServer("0", "test")

	s.Publish(rig.Tick{Seq: 7})
	s.Publish(tickWithEvents())

	req := httptest.NewRequest("GET", "/api/frames", nil)
	resp, err := s.app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		t.Fatalf("status: got %d", resp.StatusCode)
	}

	var ticks []rig.Tick
	if err := json.NewDecoder(resp.Body).Decode(&ticks); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(ticks) != 2 {
		t.Fatalf("ticks: got %d, want 2", len(ticks))
	}
	if ticks[0].Seq != 7 || ticks[1].Seq != 42 {
		t.Errorf("seqs: got %d/%d, want 7/42", ticks[0].Seq, ticks[1].Seq)
	}
	if len(ticks[1].Records) != 2 {
		t.Errorf("records in second tick: got %d, want 2", len(ticks[1].Records))
	}
}

func TestFrameRingCapped(t *testing.T) {
	s := NewServer("0", "test")

	for i := 0; i < maxFrames+10; i++ {
		s.Publish(rig.Tick{Seq: uint64(i)})
	}

	s.framesMu.RLock()
	defer s.framesMu.RUnlock()
	if len(s.frames) != maxFrames {
		t.Fatalf("ring: got %d, want %d", len(s.frames), maxFrames)
	}
	// Oldest ticks fall off the front.
	if s.frames[0].Seq != 10 {
		t.Errorf("oldest retained seq: got %d, want 10", s.frames[0].Seq)
	}
}

func TestShutdown_StopsHubs(t *testing.T) {
	s := NewServer("0", "test")
	go s.frameHub.Run()
	go s.statusHub.Run()

	deadline := time.Now().Add(2 * time.Second)
	for !(s.frameHub.Running() && s.statusHub.Running()) {
		if time.Now().After(deadline) {
			t.Fatal("hubs never started")
		}
		time.Sleep(5 * time.Millisecond)
	}

	s.Shutdown()

	deadline = time.Now().Add(2 * time.Second)
	for s.frameHub.Running() || s.statusHub.Running() {
		if time.Now().After(deadline) {
			t.Fatal("hubs still running after shutdown")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestStatus_WithoutRig(t *testing.T) {
	s := NewServer("0", "idle")

	st := s.status()
	if st.Running {
		t.Error("no rig attached, running must be false")
	}
	if st.Scenario != "idle" {
		t.Errorf("scenario: got %q", st.Scenario)
	}
}
