// Command lightstrike runs the arena demo scene: two triangles lit by a
// light, optionally joined by a stream of emitted projectiles.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/plus3/lightstrike/arena"
	"github.com/plus3/lightstrike/geom"
	"github.com/plus3/lightstrike/sim"
)

type config struct {
	backend  string
	emit     float64
	debug    bool
	logLevel slog.Level
}

func parseFlags(args []string) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("lightstrike", flag.ContinueOnError)
	fs.StringVar(&cfg.backend, "backend", "ebiten", "Presentation backend: ebiten or term.")
	fs.Float64Var(&cfg.emit, "emit", 0, "Seconds between emitted projectiles; 0 disables the emitter.")
	fs.BoolVar(&cfg.debug, "debug", false, "Show the ImGui arena inspector (ebiten backend only).")
	fs.TextVar(&cfg.logLevel, "log-level", slog.LevelInfo, "Log level: debug, info, warn or error.")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	switch cfg.backend {
	case "ebiten", "term":
	default:
		return cfg, fmt.Errorf("unknown backend %q", cfg.backend)
	}
	if cfg.emit < 0 {
		return cfg, fmt.Errorf("emit interval must not be negative, got %v", cfg.emit)
	}
	return cfg, nil
}

// newScheduler builds the demo arena and the systems that drive it.
func newScheduler(cfg config, logger *slog.Logger) *sim.Scheduler {
	a := arena.New(64)
	sim.Populate(a)

	scheduler := sim.NewScheduler(a, logger)
	if cfg.emit > 0 {
		scheduler.Register(&sim.EmitterSystem{
			Interval: cfg.emit,
			Speed:    0.6,
			Sweep:    1.3,
			Origin:   geom.Vec(0, 0),
		})
	}
	scheduler.Register(sim.MovementSystem{})
	scheduler.Register(&sim.BoundsSystem{Limit: 1.2})
	return scheduler
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		if err == flag.ErrHelp {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.logLevel}))
	scheduler := newScheduler(cfg, logger)
	logger.Info("scene ready", "records", scheduler.Arena().Count(), "backend", cfg.backend)

	switch cfg.backend {
	case "term":
		err = runTerminal(scheduler, logger)
	default:
		err = runEbiten(scheduler, cfg.debug, logger)
	}
	if err != nil {
		logger.Error("lightstrike exited", "error", err)
		os.Exit(1)
	}
}
