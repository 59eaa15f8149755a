package hub

import (
	"testing"
	"time"
)

func waitFor(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal(msg)
}

func TestHub_StopTerminatesRun(t *testing.T) {
	h := New("test")

	done := make(chan struct{})
	go func() {
		h.Run()
		close(done)
	}()
	waitFor(t, h.Running, "hub never started")

	h.Stop()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Stop")
	}
	if h.Running() {
		t.Error("hub still reports running after Stop")
	}
}

func TestHub_StopIsIdempotent(t *testing.T) {
	h := New("test")
	go h.Run()
	waitFor(t, h.Running, "hub never started")

	h.Stop()
	h.Stop() // second call must not panic
	waitFor(t, func() bool { return !h.Running() }, "hub never stopped")
}

func TestHub_BroadcastAfterStopDoesNotBlock(t *testing.T) {
	h := New("test")
	go h.Run()
	waitFor(t, h.Running, "hub never started")
	h.Stop()
	waitFor(t, func() bool { return !h.Running() }, "hub never stopped")

	// The queue absorbs payloads and Broadcast drops on overflow, so a
	// publisher racing shutdown never stalls.
	for i := 0; i < 512; i++ {
		h.Broadcast([]byte("{}"))
	}
}
