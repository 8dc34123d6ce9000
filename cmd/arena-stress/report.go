package main

import (
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/lightstrike/arena"
	"github.com/plus3/lightstrike/sim"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Entities int
	Churn    float64
	FPS      float64
	Verify   bool

	// Results
	TotalUpdates   int64
	TotalTime      time.Duration
	UpdateTime     Stats
	FlushErrors    int64
	VerifyFailures int64
	Freed          int64
	Allocated      int64
	Arena          arena.Stats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

const reportTemplate = `
# Arena Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Initial Records:** {{.Entities}}
- **Churn per Frame:** {{printf "%.1f" (pct .Churn)}}%
- **Frame Cap:** {{if .FPS}}{{.FPS}} fps{{else}}none{{end}}
- **Invariant Checks:** {{.Verify}}

## Performance Results
- **Total Updates:** {{.TotalUpdates}}
- **Total Test Time:** {{.TotalTime}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}
- **Records Freed / Allocated:** {{.Freed}} / {{.Allocated}}
- **Flush Errors:** {{.FlushErrors}}
{{- if .Verify}}
- **Verify Failures:** {{.VerifyFailures}}
{{- end}}

## Arena
- Slots: {{.Arena.Slots}} ({{.Arena.Occupied}} occupied, {{.Arena.Free}} free)
- Generation: {{.Arena.Generation}}
{{range .Arena.Columns}}- {{.Name}}: {{.Present}} present
{{end}}
## Memory Usage (MiB)
- Heap Alloc:     {{mb .MemStatsStart.HeapAlloc}} (start) -> {{mb .MemStatsEnd.HeapAlloc}} (end)
- Total Alloc:    {{mb .MemStatsStart.TotalAlloc}} (start) -> {{mb .MemStatsEnd.TotalAlloc}} (end)
- Sys Memory:     {{mb .MemStatsStart.Sys}} (start) -> {{mb .MemStatsEnd.Sys}} (end)
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{ns (bsub .MemStatsEnd.PauseTotalNs .MemStatsStart.PauseTotalNs)}}
- **Num GC Cycles:** {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{end}}`

var reportFuncs = template.FuncMap{
	"mb": func(v uint64) string {
		return fmt.Sprintf("%.2f", float64(v)/1024/1024)
	},
	"pct": func(v float64) float64 {
		return v * 100
	},
	"bsub": func(a, b uint64) uint64 {
		if a < b {
			return 0
		}
		return a - b
	},
	"usub": func(a, b uint32) uint32 {
		return a - b
	},
	"ns": func(ns uint64) string {
		return time.Duration(ns).String()
	},
}

// stepObserver records every scheduler step into the report. With verify set
// it also checks a after each step.
func (r *Report) stepObserver(a *arena.Arena, verify bool, logger *slog.Logger) sim.StepFunc {
	return func(_ float64, took time.Duration, err error) {
		r.TotalUpdates++
		r.UpdateTime.Samples = append(r.UpdateTime.Samples, took)
		if err != nil {
			r.FlushErrors++
		}
		if !verify {
			return
		}
		if err := a.Verify(); err != nil {
			logger.Error("arena invariant broken", "frame", r.TotalUpdates, "error", err)
			r.VerifyFailures++
		}
	}
}

func (r *Report) Generate(w io.Writer) error {
	tmpl, err := template.New("report").Funcs(reportFuncs).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
