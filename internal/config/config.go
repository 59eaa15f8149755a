// Package config provides environment-variable configuration helpers for
// the go-xrinput commands.
package config

import (
	"os"
	"strconv"
	"time"
)

// Defaults for the demo commands.
const (
	DefaultTickHz   = 60
	DefaultPort     = "8090"
	DefaultScenario = "menu"
)

// LogLevel returns the log level from XR_LOG_LEVEL, defaulting to "info".
func LogLevel() string {
	if lvl := os.Getenv("XR_LOG_LEVEL"); lvl != "" {
		return lvl
	}
	return "info"
}

// TickRate returns the tick interval derived from XR_TICK_HZ.
// Falls back to 60Hz on missing or unparseable values.
func TickRate() time.Duration {
	hz := DefaultTickHz
	if v := os.Getenv("XR_TICK_HZ"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			hz = n
		}
	}
	return time.Second / time.Duration(hz)
}

// MonitorPort returns the dashboard port from XR_MONITOR_PORT or default.
func MonitorPort() string {
	if port := os.Getenv("XR_MONITOR_PORT"); port != "" {
		return port
	}
	return DefaultPort
}

// Scenario returns the simulator scenario name from XR_SCENARIO or default.
func Scenario() string {
	if s := os.Getenv("XR_SCENARIO"); s != "" {
		return s
	}
	return DefaultScenario
}

// FeedURL returns the websocket URL for cmd/xr-feed from XR_FEED_URL.
// Falls back to a local monitor.
func FeedURL() string {
	if u := os.Getenv("XR_FEED_URL"); u != "" {
		return u
	}
	return "ws://localhost:" + DefaultPort + "/ws/frames"
}
