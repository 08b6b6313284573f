package main

import (
	"errors"
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/particle-emitter/internal/config"
	"github.com/iburimskiy/particle-emitter/internal/game"
	"github.com/iburimskiy/particle-emitter/internal/logger"
)

func main() {
	audioPath := flag.String("audio", "", "audio file (wav, mp3, flac) driving the birth rate")
	birthRate := flag.Int("birth", config.DefaultBirthRate, "particles spawned per frame")
	maxCount := flag.Int("max", config.DefaultMaxCount, "maximum live particles")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	if *debug {
		logger.SetLevel(logger.LevelDebug)
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Particle Emitter - O: audio, Space: pause, C/E/B: colors, Esc/Q: quit")

	g := game.NewGame(game.Options{
		Width:     config.WindowWidth,
		Height:    config.WindowHeight,
		BirthRate: *birthRate,
		MaxCount:  *maxCount,
	})
	defer g.Close()

	if *audioPath != "" {
		if err := g.LoadAudio(*audioPath); err != nil {
			logger.Warn("Audio disabled: %v", err)
		}
	}

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("%v", err)
		os.Exit(1)
	}
}
