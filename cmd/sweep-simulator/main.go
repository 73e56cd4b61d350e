// Command sweep-simulator subscribes to a running blackbody server's
// sweep socket and prints one line per frame, for smoke-testing the
// animation path without a browser.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/websocket"
)

type frame struct {
	TemperatureK float64 `json:"temperature_k"`
	PeakMicrons  float64 `json:"peak_um"`
	CurveHex     string  `json:"curve_hex"`
	Energy       struct {
		Fraction float64 `json:"fraction"`
	} `json:"energy"`
}

func main() {
	var addr string
	var frames int
	flag.StringVar(&addr, "addr", "localhost:8080", "Server host:port")
	flag.IntVar(&frames, "frames", 0, "Stop after this many frames (0 = run until interrupted)")
	flag.Parse()

	url := fmt.Sprintf("ws://%s/spectrum/sweep", addr)
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error connecting to %s: %v\n", url, err)
		os.Exit(1)
	}
	defer conn.Close()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigs
		conn.Close()
	}()

	count := 0
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Connection closed: %v\n", err)
			return
		}

		var f frame
		if err := json.Unmarshal(msg, &f); err != nil {
			fmt.Fprintf(os.Stderr, "Bad frame: %v\n", err)
			continue
		}

		fmt.Printf("T=%6.0f K  peak=%8.4f µm  visible=%5.1f%%  curve=%s\n",
			f.TemperatureK, f.PeakMicrons, f.Energy.Fraction*100, f.CurveHex)

		count++
		if frames > 0 && count >= frames {
			return
		}
	}
}
