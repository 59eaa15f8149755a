// Package rig drives a pair of input sources through the per-tick loop.
//
// The core in pkg/xrinput is deliberately passive: it advances only when
// Frame is called, exactly once per tracking frame per source. The Rig owns
// that cadence. It ticks at a fixed rate, asks the viewer provider for the
// head pose, runs each source in order and hands the resulting records to
// the consumer callback. Transport faults skip the affected source for that
// tick (the debounce design tolerates the lost tick) and are counted rather
// than retried.
package rig

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vantagexr/go-xrinput/internal/log"
	"github.com/vantagexr/go-xrinput/pkg/xrinput"
)

// ViewerFunc supplies the head pose for one tick. It is called exactly once
// per tick, before any source runs, so a simulated world can advance its
// clock inside it.
type ViewerFunc func() xrinput.Pose

// Consumer receives the records produced by one tick. Ownership of the
// records transfers to the consumer; the rig keeps nothing.
type Consumer func(Tick)

// Tick is one complete pass over all sources.
type Tick struct {
	// Session identifies the rig run the tick belongs to.
	Session uuid.UUID `json:"session"`

	// Seq is the tick number, starting at zero.
	Seq uint64 `json:"seq"`

	// Predicted is the display time the poses were resolved for.
	Predicted time.Duration `json:"predicted"`

	// Records holds one record per source that answered this tick. A source
	// whose backend faulted is simply absent.
	Records []xrinput.FrameRecord `json:"records"`
}

// Stats are cumulative counters for one rig run.
type Stats struct {
	Ticks        uint64 `json:"ticks"`
	Records      uint64 `json:"records"`
	Faults       uint64 `json:"faults"`
	Events       uint64 `json:"events"`
	MenuTriggers uint64 `json:"menu_triggers"`
}

// Config holds the rig's fixed parameters.
type Config struct {
	// Rate is the tick interval. Defaults to ~60Hz when zero.
	Rate time.Duration

	// Base is the reference space poses are resolved against.
	Base xrinput.Space
}

// Rig sequences the per-tick loop for a set of input sources.
type Rig struct {
	session uuid.UUID
	cfg     Config
	sources []*xrinput.Source
	viewer  ViewerFunc
	consume Consumer

	mu      sync.RWMutex
	stats   Stats
	running bool

	stop     chan struct{}
	stopOnce sync.Once
}

// New creates a rig over the given sources. The consumer may be nil when
// only Stats are of interest.
func New(cfg Config, sources []*xrinput.Source, viewer ViewerFunc, consume Consumer) *Rig {
	if cfg.Rate <= 0 {
		cfg.Rate = 16667 * time.Microsecond
	}
	return &Rig{
		session: uuid.New(),
		cfg:     cfg,
		sources: sources,
		viewer:  viewer,
		consume: consume,
		stop:    make(chan struct{}),
	}
}

// Session returns the identifier of this rig run.
func (r *Rig) Session() uuid.UUID {
	return r.session
}

// Stats returns a snapshot of the cumulative counters.
func (r *Rig) Stats() Stats {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.stats
}

// Running reports whether the tick loop is active.
func (r *Rig) Running() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.running
}

// Run starts the tick loop and blocks until Stop is called.
func (r *Rig) Run() {
	ticker := time.NewTicker(r.cfg.Rate)
	defer ticker.Stop()

	r.mu.Lock()
	r.running = true
	r.mu.Unlock()

	log.Info("rig started",
		"session", r.session.String(),
		"sources", len(r.sources),
		"rate", r.cfg.Rate.String())

	for {
		select {
		case <-r.stop:
			r.mu.Lock()
			r.running = false
			r.mu.Unlock()
			log.Info("rig stopped", "session", r.session.String())
			return
		case <-ticker.C:
			r.Step()
		}
	}
}

// Stop halts the tick loop. Safe to call more than once.
func (r *Rig) Stop() {
	r.stopOnce.Do(func() { close(r.stop) })
}

// Step executes exactly one tick synchronously: viewer pose first, then each
// source once, in order. It may be called directly instead of Run when the
// caller owns the frame cadence (a compositor loop, a test).
func (r *Rig) Step() {
	viewer := r.viewer()

	r.mu.Lock()
	seq := r.stats.Ticks
	r.stats.Ticks++
	r.mu.Unlock()

	predicted := time.Duration(seq) * r.cfg.Rate
	tick := Tick{
		Session:   r.session,
		Seq:       seq,
		Predicted: predicted,
		Records:   make([]xrinput.FrameRecord, 0, len(r.sources)),
	}

	var faults, events, menus uint64
	for _, src := range r.sources {
		rec, err := src.Frame(r.cfg.Base, viewer, predicted)
		if err != nil {
			// Fatal for this source this tick only. No record is fabricated;
			// the next tick queries again.
			faults++
			log.Warn("tracking query failed",
				"source", src.ID(),
				"hand", src.Handedness().String(),
				"tick", seq,
				"err", err)
			continue
		}
		if rec.Select != nil {
			events++
		}
		if rec.Squeeze != nil {
			events++
		}
		if rec.MenuSelected {
			menus++
		}
		tick.Records = append(tick.Records, *rec)
	}

	r.mu.Lock()
	r.stats.Records += uint64(len(tick.Records))
	r.stats.Faults += faults
	r.stats.Events += events
	r.stats.MenuTriggers += menus
	r.mu.Unlock()

	if r.consume != nil {
		r.consume(tick)
	}
}
