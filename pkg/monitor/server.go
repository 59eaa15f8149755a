// Package monitor provides a real-time dashboard for an input rig: REST
// endpoints for status, recent frame ticks and recent semantic events, plus
// websocket streams of every frame tick and of rig status snapshots.
package monitor

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"

	"github.com/vantagexr/go-xrinput/internal/log"
	"github.com/vantagexr/go-xrinput/pkg/hub"
	"github.com/vantagexr/go-xrinput/pkg/rig"
	"github.com/vantagexr/go-xrinput/pkg/xrinput"
)

// statusEvery is how many published ticks pass between status broadcasts.
const statusEvery = 60

// maxEvents caps the retained semantic event log.
const maxEvents = 256

// maxFrames caps the retained tick ring, about two seconds at 60Hz.
const maxFrames = 120

// Status is the rig snapshot served at /api/status and on /ws/status.
type Status struct {
	Session  string    `json:"session"`
	Running  bool      `json:"running"`
	Scenario string    `json:"scenario"`
	Stats    rig.Stats `json:"stats"`
	Clients  int       `json:"clients"`
}

// EventEntry is one semantic event with its frame context, for /api/events.
type EventEntry struct {
	Time       string             `json:"time"`
	Tick       uint64             `json:"tick"`
	Source     int                `json:"source"`
	Handedness xrinput.Handedness `json:"handedness"`
	Button     string             `json:"button"` // "select", "squeeze" or "menu"
	Event      string             `json:"event"`  // "start", "select", "end" or "triggered"
}

// Server is the monitor dashboard server.
type Server struct {
	app      *fiber.App
	port     string
	scenario string

	r *rig.Rig

	eventsMu sync.RWMutex
	events   []EventEntry

	framesMu sync.RWMutex
	frames   []rig.Tick

	published uint64

	frameHub  *hub.Hub
	statusHub *hub.Hub
}

// NewServer creates a monitor. The scenario string is informational only.
// Attach the rig before starting; Publish is wired as the rig's consumer.
func NewServer(port, scenario string) *Server {
	s := &Server{
		port:      port,
		scenario:  scenario,
		events:    make([]EventEntry, 0, maxEvents),
		frames:    make([]rig.Tick, 0, maxFrames),
		frameHub:  hub.New("frames"),
		statusHub: hub.New("status"),
	}

	app := fiber.New(fiber.Config{
		AppName:               "xrinput monitor",
		DisableStartupMessage: true,
	})

	app.Use(cors.New())

	api := app.Group("/api")
	api.Get("/status", s.handleStatus)
	api.Get("/frames", s.handleFrames)
	api.Get("/events", s.handleEvents)

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/frames", websocket.New(s.handleFramesWS))
	app.Get("/ws/status", websocket.New(s.handleStatusWS))

	s.app = app
	return s
}

// Attach binds the rig whose state the dashboard reports.
func (s *Server) Attach(r *rig.Rig) {
	s.r = r
}

// Start runs the hubs and the HTTP server. Blocks.
func (s *Server) Start() error {
	go s.frameHub.Run()
	go s.statusHub.Run()
	log.Info("monitor listening", "port", s.port)
	return s.app.Listen(":" + s.port)
}

// StartAsync runs the server in a goroutine.
func (s *Server) StartAsync() {
	go func() {
		if err := s.Start(); err != nil {
			log.Error("monitor server failed", "err", err)
		}
	}()
}

// Shutdown stops the hub fan-out loops and the HTTP server.
func (s *Server) Shutdown() error {
	s.frameHub.Stop()
	s.statusHub.Stop()
	return s.app.Shutdown()
}

// Publish feeds one rig tick into the dashboard: the tick goes out on the
// frame stream, semantic events are appended to the event log, and a status
// snapshot goes out periodically. Wire it as the rig's consumer.
func (s *Server) Publish(t rig.Tick) {
	s.frameHub.BroadcastJSON(t)
	s.recordFrame(t)
	s.recordEvents(t)

	s.published++
	if s.published%statusEvery == 0 {
		s.statusHub.BroadcastJSON(s.status())
	}
}

func (s *Server) recordFrame(t rig.Tick) {
	s.framesMu.Lock()
	s.frames = append(s.frames, t)
	if n := len(s.frames); n > maxFrames {
		s.frames = s.frames[n-maxFrames:]
	}
	s.framesMu.Unlock()
}

func (s *Server) recordEvents(t rig.Tick) {
	now := time.Now().Format("15:04:05.000")

	var entries []EventEntry
	for _, rec := range t.Records {
		if rec.Select != nil {
			entries = append(entries, EventEntry{
				Time: now, Tick: t.Seq, Source: rec.ID,
				Handedness: rec.Handedness, Button: "select", Event: rec.Select.String(),
			})
		}
		if rec.Squeeze != nil {
			entries = append(entries, EventEntry{
				Time: now, Tick: t.Seq, Source: rec.ID,
				Handedness: rec.Handedness, Button: "squeeze", Event: rec.Squeeze.String(),
			})
		}
		if rec.MenuSelected {
			entries = append(entries, EventEntry{
				Time: now, Tick: t.Seq, Source: rec.ID,
				Handedness: rec.Handedness, Button: "menu", Event: "triggered",
			})
		}
	}
	if len(entries) == 0 {
		return
	}

	s.eventsMu.Lock()
	s.events = append(s.events, entries...)
	if n := len(s.events); n > maxEvents {
		s.events = s.events[n-maxEvents:]
	}
	s.eventsMu.Unlock()
}

func (s *Server) status() Status {
	st := Status{
		Scenario: s.scenario,
		Clients:  s.frameHub.ClientCount(),
	}
	if s.r != nil {
		st.Session = s.r.Session().String()
		st.Running = s.r.Running()
		st.Stats = s.r.Stats()
	}
	return st
}
