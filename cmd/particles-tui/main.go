package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/particle-emitter/internal/config"
	"github.com/iburimskiy/particle-emitter/internal/frame"
	"github.com/iburimskiy/particle-emitter/internal/logger"
	"github.com/iburimskiy/particle-emitter/internal/particle"
	"github.com/iburimskiy/particle-emitter/internal/render/term"
)

type app struct {
	screen  tcell.Screen
	surface *term.Terminal
	emitter *particle.Emitter
	events  chan tcell.Event
	cancel  context.CancelFunc
}

func newApp(screen tcell.Screen, cellW, cellH, birthRate, maxCount int) *app {
	surface := term.NewTerminal(screen, cellW, cellH)
	emitter := particle.NewEmitter(surface)
	emitter.BirthRate = birthRate
	emitter.MaxCount = maxCount
	return &app{
		screen:  screen,
		surface: surface,
		emitter: emitter,
		events:  make(chan tcell.Event, 100),
	}
}

func (a *app) pollEvents() {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		a.events <- ev
	}
}

func (a *app) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			a.cancel()
		}
	case *tcell.EventResize:
		a.screen.Sync()
		w, h := a.surface.Size()
		a.emitter.Position = particle.Vector2{X: float64(w) / 2, Y: float64(h) / 2}
		logger.Debug("Resized to %dx%d px", w, h)
	}
}

// tick drains pending input then runs one update/render pass.
func (a *app) tick() {
	for drained := false; !drained; {
		select {
		case ev := <-a.events:
			a.handleEvent(ev)
		default:
			drained = true
		}
	}

	a.emitter.Update()
	a.emitter.Render()
	a.screen.Show()
}

func run() error {
	fps := flag.Int("fps", config.FrameRate, "frames per second")
	birthRate := flag.Int("birth", config.DefaultBirthRate, "particles spawned per frame")
	maxCount := flag.Int("max", config.DefaultMaxCount, "maximum live particles")
	cellW := flag.Int("cell-width", config.CellWidth, "logical pixels per terminal column")
	cellH := flag.Int("cell-height", config.CellHeight, "logical pixels per terminal row")
	logPath := flag.String("log", "", "write logs to this file")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	if *debug {
		logger.SetLevel(logger.LevelDebug)
	}
	logger.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		logger.SetOutput(f)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	a := newApp(screen, *cellW, *cellH, *birthRate, *maxCount)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	a.cancel = cancel

	go a.pollEvents()

	w, h := a.surface.Size()
	logger.Info("Running at %d fps on %dx%d px", *fps, w, h)

	err = frame.NewTicker(*fps).Run(ctx, a.tick)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "particles-tui: %v\n", err)
		os.Exit(1)
	}
}
