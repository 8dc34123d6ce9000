package main

import (
	"context"
	"log/slog"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/lightstrike/debugui"
	"github.com/plus3/lightstrike/render"
	"github.com/plus3/lightstrike/render/ebitenrender"
	"github.com/plus3/lightstrike/sim"
)

// Game implements ebiten.Game. The arena is stepped in Update and drawn from a
// snapshot in Draw; both run on ebiten's game goroutine.
type Game struct {
	scheduler *sim.Scheduler
	logger    *slog.Logger

	imguiBackend *ebitenbackend.EbitenBackend
	inspector    *debugui.Inspector
	timer        *debugui.FrameTimer
}

func (g *Game) Update() error {
	if g.imguiBackend != nil {
		g.imguiBackend.BeginFrame()
	}

	// Flush errors are already logged by the scheduler.
	_ = g.scheduler.Once(1.0 / 60.0)

	if g.imguiBackend != nil {
		g.inspector.Render(g.scheduler.Arena(), g.scheduler, g.timer.GetDeltaTime())
		g.imguiBackend.EndFrame()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	payload, err := render.Build(context.Background(), g.scheduler.Arena().Snapshot())
	if err != nil {
		g.logger.Warn("building render payload", "error", err)
		return
	}
	ebitenrender.Draw(screen, payload)

	if g.imguiBackend != nil {
		g.imguiBackend.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imguiBackend != nil {
		g.imguiBackend.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func runEbiten(scheduler *sim.Scheduler, debug bool, logger *slog.Logger) error {
	game := &Game{
		scheduler: scheduler,
		logger:    logger,
	}

	if debug {
		game.imguiBackend = ebitenbackend.NewEbitenBackend()
		game.imguiBackend.CreateWindow("lightstrike", 1280, 720)
		imgui.CurrentIO().SetIniFilename("")
		game.inspector = debugui.NewInspector()
		game.timer = debugui.NewFrameTimer()
	} else {
		ebiten.SetWindowTitle("lightstrike")
		ebiten.SetWindowSize(1280, 720)
	}

	return ebiten.RunGame(game)
}
