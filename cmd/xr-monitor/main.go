// xr-monitor runs the input pipeline against the simulated tracking backend
// and serves the live dashboard.
//
// Usage:
//
//	XR_SCENARIO=menu XR_MONITOR_PORT=8090 go run ./cmd/xr-monitor
//
// Endpoints: /api/status, /api/events, /ws/frames, /ws/status.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/vantagexr/go-xrinput/internal/config"
	"github.com/vantagexr/go-xrinput/internal/log"
	"github.com/vantagexr/go-xrinput/pkg/monitor"
	"github.com/vantagexr/go-xrinput/pkg/rig"
	"github.com/vantagexr/go-xrinput/pkg/sim"
)

func main() {
	log.Init(config.LogLevel())

	scenario := config.Scenario()
	script, err := sim.Scenario(scenario)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v (known: press, menu, flaky, idle)\n", err)
		os.Exit(1)
	}

	world := sim.NewWorld(script)
	srv := monitor.NewServer(config.MonitorPort(), scenario)

	r := rig.New(rig.Config{
		Rate: config.TickRate(),
		Base: sim.BaseSpace,
	}, world.Sources(), world.NextViewer, srv.Publish)
	srv.Attach(r)

	srv.StartAsync()
	go r.Run()

	log.Info("xr-monitor running",
		"scenario", scenario,
		"port", config.MonitorPort(),
		"session", r.Session().String())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info("shutting down")
	r.Stop()
	srv.Shutdown()
}
