package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sgrette/perch/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	prefsPath := flag.String("prefs", "", "override preferences path (optional)")
	mode := flag.String("mode", "", "initial mode: up or down (optional)")
	target := flag.String("target", "", "countdown target, e.g. 5m or 90 (optional)")
	tickMs := flag.Int("tick", 0, "poll cadence in milliseconds while running (optional, defaults to 50)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		PrefsPath:  *prefsPath,
		Mode:       *mode,
		Target:     *target,
	}
	if tick := *tickMs; tick > 0 {
		opts.TickEvery = time.Duration(tick) * time.Millisecond
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "perch: %v\n", err)
		return 1
	}
	return 0
}
