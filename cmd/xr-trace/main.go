// xr-trace runs a simulator scenario headless and prints the semantic event
// stream, one line per event. Useful for eyeballing debounce behavior
// without the dashboard.
//
// Usage:
//
//	go run ./cmd/xr-trace -scenario menu -ticks 300
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/vantagexr/go-xrinput/internal/config"
	"github.com/vantagexr/go-xrinput/internal/log"
	"github.com/vantagexr/go-xrinput/pkg/rig"
	"github.com/vantagexr/go-xrinput/pkg/sim"
)

func main() {
	scenario := flag.String("scenario", config.Scenario(), "simulator scenario (press, menu, flaky, idle)")
	ticks := flag.Int("ticks", 300, "number of frames to run")
	flag.Parse()

	log.Init(config.LogLevel())

	script, err := sim.Scenario(*scenario)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	world := sim.NewWorld(script)
	r := rig.New(rig.Config{Base: sim.BaseSpace}, world.Sources(), world.NextViewer, printTick)

	fmt.Printf("scenario %q, %d ticks\n", *scenario, *ticks)
	for i := 0; i < *ticks; i++ {
		r.Step()
	}

	stats := r.Stats()
	fmt.Printf("\nticks=%d records=%d events=%d menu=%d faults=%d\n",
		stats.Ticks, stats.Records, stats.Events, stats.MenuTriggers, stats.Faults)
}

func printTick(t rig.Tick) {
	for _, rec := range t.Records {
		if rec.Select != nil {
			fmt.Printf("%6d  %-5s  select  %s\n", t.Seq, rec.Handedness, *rec.Select)
		}
		if rec.Squeeze != nil {
			fmt.Printf("%6d  %-5s  squeeze %s\n", t.Seq, rec.Handedness, *rec.Squeeze)
		}
		if rec.MenuSelected {
			fmt.Printf("%6d  %-5s  menu\n", t.Seq, rec.Handedness)
		}
	}
}
