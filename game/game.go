// Package game hosts the particle field in a raylib window or headless loop.
package game

import (
	"log/slog"
	"math/rand"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/driftfield/config"
	"github.com/pthm-cable/driftfield/renderer"
	"github.com/pthm-cable/driftfield/systems"
	"github.com/pthm-cable/driftfield/telemetry"
	"github.com/pthm-cable/driftfield/ui"
)

// Options configures game initialization.
type Options struct {
	Seed      int64
	LogStats  bool
	OutputDir string
	Headless  bool
	Orbit     bool                  // Headless only: pointer circles the viewport center
	Reloads   <-chan *config.Config // Hot-reloaded configs, applied between frames
}

// Game holds the complete runtime state.
type Game struct {
	cfg  *config.Config
	opts Options
	rng  *rand.Rand

	field    *systems.Field
	pointer  systems.Pointer
	viewport systems.Viewport

	window   *renderer.WindowSurface
	recorder *renderer.Recorder
	hud      *ui.HUD

	collector *telemetry.Collector
	output    *telemetry.OutputManager

	paused  bool
	showHUD bool
	frame   int64
	last    systems.FrameResult
}

// NewGameWithOptions creates a game. In graphical mode the raylib window
// must already be open.
func NewGameWithOptions(opts Options) *Game {
	cfg := config.Cfg()

	g := &Game{
		cfg:       cfg,
		opts:      opts,
		rng:       rand.New(rand.NewSource(opts.Seed)),
		viewport:  systems.Viewport{Width: cfg.Derived.ScreenW32, Height: cfg.Derived.ScreenH32},
		collector: telemetry.NewCollector(cfg.Telemetry.StatsWindow),
		showHUD:   true,
	}

	if opts.Headless {
		g.recorder = renderer.NewRecorder()
	} else {
		g.viewport = systems.Viewport{Width: float32(rl.GetScreenWidth()), Height: float32(rl.GetScreenHeight())}
		g.window = renderer.NewWindowSurface(cfg.Derived.Background)
		g.hud = ui.NewHUD()
	}

	g.field = systems.NewField(systems.ParamsFromConfig(cfg), g.viewport, g.rng)

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		slog.Error("failed to create output manager", "error", err)
	} else if output != nil {
		if err := output.WriteConfig(cfg); err != nil {
			slog.Error("failed to write config snapshot", "error", err)
		}
		slog.Info("output enabled", "dir", output.Dir())
	}
	g.output = output

	slog.Info("field initialized",
		"particles", g.field.Count(),
		"width", g.viewport.Width,
		"height", g.viewport.Height,
		"link_mode", cfg.Field.LinkMode,
	)
	return g
}

// Update processes input and pending config reloads. Call once per frame before Draw.
func (g *Game) Update() {
	g.applyReloads()
	g.handleInput()
}

// Draw runs one field frame into the window and overlays the HUD.
func (g *Game) Draw() {
	rl.BeginDrawing()
	defer rl.EndDrawing()

	if g.paused {
		// Redraw the frozen field without moving it
		g.field.Draw(g.window, g.viewport)
	} else {
		g.step(g.window)
	}

	if g.showHUD {
		g.hud.Draw(ui.HUDData{
			Title:      "driftfield",
			Particles:  g.last.Particles,
			Influenced: g.last.Influenced,
			Links:      g.last.Links,
			Frame:      g.frame,
			FPS:        rl.GetFPS(),
			Paused:     g.paused,
			LinkMode:   g.field.Params().LinkMode,
		})
	}
}

// UpdateHeadless runs one frame without graphics, drawing into a recorder.
func (g *Game) UpdateHeadless() {
	g.applyReloads()
	if g.opts.Orbit {
		g.pointer = systems.OrbitPointer(g.frame, g.viewport)
	}
	g.step(g.recorder)
}

// step advances and draws one frame and records telemetry.
func (g *Game) step(s systems.Surface) {
	start := time.Now()
	res := g.field.Frame(g.pointer, g.viewport, s)
	elapsed := time.Since(start)

	g.last = res
	g.frame++
	g.recordFrame(res, elapsed)
}

// applyReloads swaps in the newest hot-reloaded config, if any.
func (g *Game) applyReloads() {
	select {
	case cfg := <-g.opts.Reloads:
		g.applyConfig(cfg)
	default:
	}
}

func (g *Game) applyConfig(cfg *config.Config) {
	config.Set(cfg)
	g.cfg = cfg
	g.field.SetParams(systems.ParamsFromConfig(cfg))
	if g.window != nil {
		g.window.SetBackground(cfg.Derived.Background)
	}
	slog.Info("config applied", "particles", g.field.Count(), "link_mode", cfg.Field.LinkMode)
}

// Frame returns the number of frames run.
func (g *Game) Frame() int64 {
	return g.frame
}

// Unload flushes telemetry and closes output.
func (g *Game) Unload() {
	if ws, ok := g.collector.Flush(); ok {
		g.emitStats(ws)
	}
	if err := g.output.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}
