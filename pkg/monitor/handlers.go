package monitor

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/vantagexr/go-xrinput/pkg/hub"
)

// handleStatus returns the current rig snapshot.
func (s *Server) handleStatus(c *fiber.Ctx) error {
	return c.JSON(s.status())
}

// handleFrames returns the ring of recent frame ticks, newest last.
func (s *Server) handleFrames(c *fiber.Ctx) error {
	s.framesMu.RLock()
	defer s.framesMu.RUnlock()
	return c.JSON(s.frames)
}

// handleEvents returns the retained semantic event log, newest last.
func (s *Server) handleEvents(c *fiber.Ctx) error {
	s.eventsMu.RLock()
	defer s.eventsMu.RUnlock()
	return c.JSON(s.events)
}

// handleFramesWS streams every published tick as JSON.
func (s *Server) handleFramesWS(c *websocket.Conn) {
	client := hub.NewClient(s.frameHub, c)
	client.Run()
}

// handleStatusWS streams periodic status snapshots.
func (s *Server) handleStatusWS(c *websocket.Conn) {
	client := hub.NewClient(s.statusHub, c)
	client.Run()
}
