// Terminal front end for the particle field.
//
// Usage: go run ./cmd/termfield [-config path] [-watch]
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/driftfield/config"
	"github.com/pthm-cable/driftfield/logging"
	"github.com/pthm-cable/driftfield/renderer"
	"github.com/pthm-cable/driftfield/systems"
)

// Viewport units per terminal cell. Cells are roughly twice as tall as wide.
const (
	cellWidth  = 10
	cellHeight = 20
)

// app runs the field on a tcell screen.
type app struct {
	screen  tcell.Screen
	surface *renderer.TerminalSurface
	field   *systems.Field
	pointer systems.Pointer
	reloads <-chan *config.Config
	fps     int
}

func newApp(cfg *config.Config, seed int64, reloads <-chan *config.Config) (*app, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	surface := renderer.NewTerminalSurface(screen, cellWidth, cellHeight, cfg.Derived.Background)
	field := systems.NewField(systems.ParamsFromConfig(cfg), surface.Viewport(), rand.New(rand.NewSource(seed)))

	fps := cfg.Screen.TargetFPS
	if fps <= 0 {
		fps = 30
	}
	return &app{
		screen:  screen,
		surface: surface,
		field:   field,
		reloads: reloads,
		fps:     fps,
	}, nil
}

// handleEvent applies one terminal event; it returns false to quit.
func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'r':
			a.field.Init(a.field.Params().Count)
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'o':
			a.field.ResetToOrigin()
		}
	case *tcell.EventMouse:
		col, row := ev.Position()
		x, y := a.surface.ToViewport(col, row)
		a.pointer = systems.PointerAt(x, y)
	case *tcell.EventResize:
		a.screen.Sync()
		a.field.SetViewport(a.surface.Viewport())
		slog.Info("terminal resized", "width", a.field.Viewport().Width, "height", a.field.Viewport().Height)
	}
	return true
}

func (a *app) run() {
	ticker := time.NewTicker(time.Second / time.Duration(a.fps))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev := <-events:
			if !a.handleEvent(ev) {
				return
			}
		case cfg := <-a.reloads:
			a.field.SetParams(systems.ParamsFromConfig(cfg))
		case <-ticker.C:
			a.field.Frame(a.pointer, a.surface.Viewport(), a.surface)
			a.screen.Show()
		}
	}
}

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	logFile := flag.String("log-file", "", "Write logs to this file (stdout belongs to the screen)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	watch := flag.Bool("watch", false, "Reload -config when the file changes")
	flag.Parse()

	_, logCloser := logging.Setup(logging.Options{File: *logFile, Discard: *logFile == ""})
	defer logCloser.Close()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	var watcher *config.Watcher
	if *watch && *configPath != "" {
		if watcher, err = config.NewWatcher(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "failed to watch config: %v\n", err)
			os.Exit(1)
		}
		defer watcher.Close()
	}

	a, err := newApp(cfg, *seed, watcher.Updates())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer a.screen.Fini()

	slog.Info("terminal field started", "particles", a.field.Count(), "seed", *seed)
	a.run()
}
