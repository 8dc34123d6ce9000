package sim_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/plus3/lightstrike/arena"
	"github.com/plus3/lightstrike/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type countingSystem struct {
	executeCount int
	lastDelta    float64
}

func (s *countingSystem) Execute(frame *sim.Frame) {
	s.executeCount++
	s.lastDelta = frame.DeltaTime
}

type freeingSystem struct {
	target arena.Handle
}

func (s *freeingSystem) Execute(frame *sim.Frame) {
	frame.Commands.Free(s.target)
}

func TestSchedulerOnce(t *testing.T) {
	a := arena.New(0)
	scheduler := sim.NewScheduler(a, quietLogger())

	first := &countingSystem{}
	second := &countingSystem{}
	scheduler.Register(first)
	scheduler.Register(second)

	require.NoError(t, scheduler.Once(0.5))
	require.NoError(t, scheduler.Once(0.25))

	assert.Equal(t, 2, first.executeCount)
	assert.Equal(t, 2, second.executeCount)
	assert.Equal(t, 0.25, first.lastDelta)
	assert.Same(t, a, scheduler.Arena())

	stats := scheduler.Stats()
	assert.Equal(t, int64(2), stats.Steps)
	require.Len(t, stats.Systems, 2)
	timing := stats.Systems[0]
	assert.Equal(t, "countingSystem", timing.Name)
	assert.Equal(t, int64(2), timing.Runs)
	assert.LessOrEqual(t, timing.Min, timing.Max)
	assert.Equal(t, timing.Total/2, timing.Avg())
}

func TestSystemTimingAvgBeforeFirstRun(t *testing.T) {
	assert.Zero(t, sim.SystemTiming{}.Avg())
}

func TestSchedulerFlushErrors(t *testing.T) {
	a := arena.New(0)
	h := a.Allocate(arena.Values{})

	scheduler := sim.NewScheduler(a, quietLogger())
	scheduler.Register(&freeingSystem{target: h})

	require.NoError(t, scheduler.Once(0.1))
	assert.False(t, a.Validate(h))

	err := scheduler.Once(0.1)
	assert.ErrorIs(t, err, arena.ErrInvalidHandle)
	assert.Equal(t, int64(1), scheduler.Stats().FlushErrors)
	assert.Equal(t, 0, a.Count())
}

func TestSchedulerRunStopsOnCancel(t *testing.T) {
	scheduler := sim.NewScheduler(arena.New(0), nil)
	counter := &countingSystem{}
	scheduler.Register(counter)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	done := make(chan struct{})
	go func() {
		scheduler.Run(ctx, 200, nil)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after the context ended")
	}

	assert.Greater(t, counter.executeCount, 0)
}

func TestSchedulerRunReportsEachStep(t *testing.T) {
	a := arena.New(0)
	h := a.Allocate(arena.Values{})

	scheduler := sim.NewScheduler(a, quietLogger())
	scheduler.Register(&freeingSystem{target: h})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var steps int
	var errs []error
	scheduler.Run(ctx, 0, func(dt float64, took time.Duration, err error) {
		steps++
		errs = append(errs, err)
		assert.GreaterOrEqual(t, dt, 0.0)
		assert.GreaterOrEqual(t, took, time.Duration(0))
		if steps == 3 {
			cancel()
		}
	})

	assert.Equal(t, 3, steps)
	assert.NoError(t, errs[0])
	assert.ErrorIs(t, errs[1], arena.ErrInvalidHandle)
	assert.ErrorIs(t, errs[2], arena.ErrInvalidHandle)
	assert.Equal(t, int64(3), scheduler.Stats().Steps)
	assert.Equal(t, int64(2), scheduler.Stats().FlushErrors)
}
