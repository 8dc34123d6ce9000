package sim

import (
	"context"
	"log/slog"
	"math"
	"reflect"
	"time"

	"github.com/plus3/lightstrike/arena"
	"golang.org/x/time/rate"
)

// StepStats summarizes the steps a Scheduler has taken.
type StepStats struct {
	// Steps counts completed calls to Once, Run's included.
	Steps int64
	// FlushErrors counts steps whose command flush hit an invalid handle.
	FlushErrors int64
	Systems     []SystemTiming
}

// SystemTiming is the time one system has spent in Execute.
type SystemTiming struct {
	Name  string
	Runs  int64
	Last  time.Duration
	Min   time.Duration
	Max   time.Duration
	Total time.Duration
}

// Avg returns the mean Execute time, or zero before the first run.
func (t SystemTiming) Avg() time.Duration {
	if t.Runs == 0 {
		return 0
	}
	return t.Total / time.Duration(t.Runs)
}

func (t *SystemTiming) observe(d time.Duration) {
	t.Runs++
	t.Last = d
	t.Total += d
	t.Min = min(t.Min, d)
	t.Max = max(t.Max, d)
}

// StepFunc observes one step taken by Run: the delta time it simulated, how
// long the step took and the flush error Once returned.
type StepFunc func(dt float64, took time.Duration, err error)

// Scheduler runs systems in registration order against one arena, then
// applies the commands they queued.
type Scheduler struct {
	arena       *arena.Arena
	commands    *arena.Commands
	systems     []System
	timings     []SystemTiming
	logger      *slog.Logger
	steps       int64
	flushErrors int64
}

// NewScheduler creates a scheduler for a. A nil logger uses slog.Default.
func NewScheduler(a *arena.Arena, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		arena:    a,
		commands: arena.NewCommands(),
		logger:   logger,
	}
}

// Arena returns the arena the scheduler drives.
func (s *Scheduler) Arena() *arena.Arena {
	return s.arena
}

// Register appends a system.
func (s *Scheduler) Register(system System) {
	s.systems = append(s.systems, system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	s.timings = append(s.timings, SystemTiming{
		Name: systemType.Name(),
		Min:  time.Duration(math.MaxInt64),
	})
	s.logger.Debug("system registered", "system", systemType.Name())
}

// Once executes every system once and then flushes queued commands. A flush
// error means some system freed a handle that was already invalid; it is
// logged and returned, and the step still completes.
func (s *Scheduler) Once(dt float64) error {
	frame := &Frame{
		DeltaTime: dt,
		Arena:     s.arena,
		Commands:  s.commands,
	}

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		s.timings[i].observe(time.Since(start))
	}

	s.steps++
	if err := s.commands.Flush(s.arena); err != nil {
		s.flushErrors++
		s.logger.Warn("command flush failed", "step", s.steps, "error", err)
		return err
	}
	return nil
}

// Run steps the simulation until ctx is done, at most fps times per second.
// A non-positive fps runs unthrottled. onStep, when not nil, is called after
// every step on Run's goroutine, so it may inspect the arena.
func (s *Scheduler) Run(ctx context.Context, fps float64, onStep StepFunc) {
	limit := rate.Inf
	if fps > 0 {
		limit = rate.Limit(fps)
	}
	limiter := rate.NewLimiter(limit, 1)
	lastTime := time.Now()

	for {
		if err := limiter.Wait(ctx); err != nil {
			return
		}
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		err := s.Once(dt)
		if onStep != nil {
			onStep(dt, time.Since(now), err)
		}
	}
}

// Stats returns a copy of the step counters and per-system timings.
func (s *Scheduler) Stats() StepStats {
	timings := make([]SystemTiming, len(s.timings))
	copy(timings, s.timings)
	return StepStats{
		Steps:       s.steps,
		FlushErrors: s.flushErrors,
		Systems:     timings,
	}
}
