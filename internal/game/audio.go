package game

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/particle-emitter/internal/config"
	"github.com/iburimskiy/particle-emitter/internal/logger"
)

var errUnsupportedAudio = errors.New("unsupported file type")

// audioTrack plays one file through a visualTap. The speaker goroutine only
// touches ended; everything else belongs to the frame loop.
type audioTrack struct {
	currentFile *os.File
	streamer    beep.StreamSeekCloser
	format      beep.Format
	tap         *visualTap
	ctrl        *beep.Ctrl
	paused      bool
	duration    time.Duration
	initDone    bool
	ended       atomic.Bool

	level float64
}

func (a *audioTrack) playing() bool {
	return a.streamer != nil
}

// update advances the smoothed loudness and releases the track once the
// speaker reports it finished.
func (a *audioTrack) update() {
	if a.streamer != nil && a.ended.Load() {
		logger.Info("Audio track finished")
		a.close()
	}
	if a.tap == nil || a.paused {
		a.level = smooth(a.level, 0, config.SmoothingFactor)
		return
	}
	a.level = smooth(a.level, a.tap.loudness(config.LevelWindow), config.SmoothingFactor)
}

// reactive reports whether the track is audible and should drive the emitter.
func (a *audioTrack) reactive() bool {
	return a.playing() && !a.paused
}

func (a *audioTrack) togglePause() {
	if a.ctrl == nil {
		return
	}
	speaker.Lock()
	a.paused = !a.paused
	a.ctrl.Paused = a.paused
	speaker.Unlock()
}

func (a *audioTrack) position() time.Duration {
	if a.streamer == nil {
		return 0
	}
	speaker.Lock()
	pos := a.streamer.Position()
	speaker.Unlock()
	return a.format.SampleRate.D(pos)
}

func (a *audioTrack) close() {
	if a.streamer != nil {
		_ = a.streamer.Close()
		a.streamer = nil
	}
	if a.currentFile != nil {
		_ = a.currentFile.Close()
		a.currentFile = nil
	}
	a.tap = nil
	a.ctrl = nil
	a.paused = false
	a.duration = 0
}

func (a *audioTrack) stop() {
	if a.initDone {
		speaker.Lock()
		speaker.Clear()
		speaker.Unlock()
	}
	a.close()
}

func (a *audioTrack) openFileDialog() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Audio File"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	logger.Info("Selected audio file %v", filename)
	return a.load(filename)
}

func decodeAudio(path string, f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		return wav.Decode(f)
	case ".mp3":
		return mp3.Decode(f)
	case ".flac":
		return flac.Decode(f)
	default:
		return nil, beep.Format{}, fmt.Errorf("%w: %s", errUnsupportedAudio, ext)
	}
}

func (a *audioTrack) load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open audio: %w", err)
	}

	streamer, format, err := decodeAudio(path, f)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}

	a.stop()

	bufferSize := format.SampleRate.N(time.Second / 20)
	if !a.initDone || a.format.SampleRate != format.SampleRate {
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			_ = streamer.Close()
			_ = f.Close()
			return fmt.Errorf("init speaker: %w", err)
		}
		a.initDone = true
	}

	// streamer -> tap -> ctrl
	t := newVisualTap(streamer, config.VisualRingSize)
	ctrl := &beep.Ctrl{Streamer: t}
	a.currentFile = f
	a.streamer = streamer
	a.format = format
	a.tap = t
	a.ctrl = ctrl
	a.paused = false
	a.duration = format.SampleRate.D(streamer.Len())
	a.ended.Store(false)

	logger.Info("Loaded %v (%s, %d Hz)", filepath.Base(path), formatDuration(a.duration), format.SampleRate)

	speaker.Play(beep.Seq(ctrl, beep.Callback(func() {
		a.ended.Store(true)
	})))
	return nil
}
