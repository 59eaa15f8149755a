// xr-feed subscribes to a running monitor's frame stream over websocket and
// prints each tick as a JSON line. Point it at a remote rig to tail its
// input events from another machine.
//
// Usage:
//
//	XR_FEED_URL=ws://rig-host:8090/ws/frames go run ./cmd/xr-feed
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/websocket"

	"github.com/vantagexr/go-xrinput/internal/config"
	"github.com/vantagexr/go-xrinput/internal/log"
	"github.com/vantagexr/go-xrinput/pkg/rig"
)

func main() {
	log.Init(config.LogLevel())
	url := config.FeedURL()

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: dial %s: %v\n", url, err)
		os.Exit(1)
	}
	defer conn.Close()
	log.Info("subscribed", "url", url)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		conn.Close()
		os.Exit(0)
	}()

	events := flagEventsOnly()
	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			log.Warn("stream closed", "err", err)
			return
		}
		if !events {
			fmt.Println(string(payload))
			continue
		}

		var t rig.Tick
		if err := json.Unmarshal(payload, &t); err != nil {
			log.Warn("bad payload", "err", err)
			continue
		}
		for _, rec := range t.Records {
			if rec.Select == nil && rec.Squeeze == nil && !rec.MenuSelected {
				continue
			}
			line, _ := json.Marshal(rec)
			fmt.Printf("%d %s\n", t.Seq, line)
		}
	}
}

// flagEventsOnly reports whether XR_FEED_EVENTS_ONLY asks to drop quiet
// frames.
func flagEventsOnly() bool {
	return os.Getenv("XR_FEED_EVENTS_ONLY") == "1"
}
