package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"

	"github.com/plus3/lightstrike/arena"
	"github.com/plus3/lightstrike/sim"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run carries out the stress test, writes the report to stdout and returns
// the process exit code. It returns instead of exiting so deferred profile
// and context cleanup runs.
func run(args []string, stdout io.Writer) int {
	fs := flag.NewFlagSet("arena-stress", flag.ContinueOnError)
	duration := fs.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	entityCount := fs.Int("entities", 10000, "The initial number of records to allocate.")
	churn := fs.Float64("churn", 0.05, "Fraction of live records freed and replaced every frame.")
	fps := fs.Float64("fps", 0, "Frame rate cap; 0 runs as fast as possible.")
	verify := fs.Bool("verify", false, "Check arena invariants after every frame.")
	profileMode := fs.String("profile", "off", "Profile to capture: cpu, mem or off.")
	profileDir := fs.String("profile-dir", ".", "Directory the profile is written to.")
	gcPauseMetrics := fs.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	switch *profileMode {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*profileDir), profile.NoShutdownHook, profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath(*profileDir), profile.NoShutdownHook, profile.Quiet).Stop()
	case "off":
	default:
		logger.Error("unknown profile mode", "profile", *profileMode)
		return 2
	}

	logger.Info("starting arena stress test")

	a := arena.New(*entityCount)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	churner := &ChurnSystem{Rate: *churn, Rand: rng}

	scheduler := sim.NewScheduler(a, logger)
	scheduler.Register(sim.MovementSystem{})
	scheduler.Register(churner)

	logger.Info("populating arena", "records", *entityCount)
	for i := 0; i < *entityCount; i++ {
		a.Allocate(RandomValues(rng))
	}
	logger.Info("population complete", "slots", a.Len())

	report := &Report{
		Duration:       *duration,
		Entities:       *entityCount,
		Churn:          *churn,
		FPS:            *fps,
		Verify:         *verify,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	logger.Info("running simulation", "duration", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	scheduler.Run(ctx, *fps, report.stepObserver(a, *verify, logger))

	report.TotalTime = time.Since(startTime)
	report.UpdateTime.Finalize()
	report.Arena = a.CollectStats()
	report.Freed = churner.Freed
	report.Allocated = churner.Allocated
	runtime.ReadMemStats(&report.MemStatsEnd)

	logger.Info("simulation finished", "frames", report.TotalUpdates)

	fmt.Fprintln(stdout, "\n\n--- Stress Test Report ---")
	if err := report.Generate(stdout); err != nil {
		logger.Error("failed to generate report", "error", err)
		return 1
	}
	fmt.Fprintln(stdout, "--- End of Report ---")

	if report.VerifyFailures > 0 {
		return 1
	}
	return 0
}
