package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/lightstrike/render"
	"github.com/plus3/lightstrike/render/term"
	"github.com/plus3/lightstrike/sim"
)

const frameInterval = 16 * time.Millisecond

func runTerminal(scheduler *sim.Scheduler, logger *slog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if quitKey(ev) {
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			_ = scheduler.Once(now.Sub(last).Seconds())
			last = now

			payload, err := render.Build(context.Background(), scheduler.Arena().Snapshot())
			if err != nil {
				logger.Warn("building render payload", "error", err)
				continue
			}
			screen.Clear()
			term.Draw(screen, payload)
			screen.Show()
		}
	}
}

func quitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}
