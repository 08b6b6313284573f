package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/particle-emitter/internal/config"
	"github.com/iburimskiy/particle-emitter/internal/logger"
	"github.com/iburimskiy/particle-emitter/internal/particle"
	"github.com/iburimskiy/particle-emitter/internal/render"
)

// Options sizes the window and seeds the emitter. Negative rates keep the
// emitter defaults; zero is taken literally, as the terminal host does.
type Options struct {
	Width, Height int
	BirthRate     int
	MaxCount      int
}

// Game hosts a single emitter inside ebiten's update/draw loop.
type Game struct {
	width, height int

	emitter   *particle.Emitter
	screen    *render.Screen
	baseBirth int
	saturated bool

	audio audioTrack

	showHUD bool
	lastErr error
}

func NewGame(opts Options) *Game {
	screen := render.NewScreen(opts.Width, opts.Height)
	emitter := particle.NewEmitter(screen)
	if opts.BirthRate >= 0 {
		emitter.BirthRate = opts.BirthRate
	}
	if opts.MaxCount >= 0 {
		emitter.MaxCount = opts.MaxCount
	}

	return &Game{
		width:     opts.Width,
		height:    opts.Height,
		emitter:   emitter,
		screen:    screen,
		baseBirth: emitter.BirthRate,
		showHUD:   true,
	}
}

// LoadAudio starts playing path and lets its loudness drive the birth rate.
func (g *Game) LoadAudio(path string) error {
	return g.audio.load(path)
}

// Close stops audio playback.
func (g *Game) Close() {
	g.audio.stop()
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.handleInput()

	g.audio.update()
	if g.audio.reactive() {
		g.emitter.BirthRate = reactiveBirthRate(g.baseBirth, g.audio.level, config.AudioBoost)
	} else {
		g.emitter.BirthRate = g.baseBirth
	}

	g.emitter.Update()

	full := g.emitter.Len() >= g.emitter.MaxCount
	if full != g.saturated {
		g.saturated = full
		logger.Debug("Population saturated=%v (%d/%d)", full, g.emitter.Len(), g.emitter.MaxCount)
	}
	return nil
}

func (g *Game) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		g.setErr(g.audio.openFileDialog())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		c, err := pickColor("Start Color", g.emitter.StartColor)
		g.emitter.StartColor = c
		g.setErr(err)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		c, err := pickColor("End Color", g.emitter.EndColor)
		g.emitter.EndColor = c
		g.setErr(err)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		c, err := pickColor("Background Color", g.emitter.ClearColor)
		g.emitter.ClearColor = c
		g.setErr(err)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.audio.togglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.baseBirth += config.BirthRateStep
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.baseBirth = max(g.baseBirth-config.BirthRateStep, 0)
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.emitter.Position = particle.Vector2{X: float64(x), Y: float64(y)}
	}
}

func (g *Game) setErr(err error) {
	if err == nil {
		return
	}
	logger.Error("%v", err)
	g.lastErr = err
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.screen.Target = screen
	g.emitter.Render()

	if g.showHUD {
		g.drawHUD(screen)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	lines := []string{
		fmt.Sprintf("Particles %d/%d  Birth rate %d", g.emitter.Len(), g.emitter.MaxCount, g.emitter.BirthRate),
		"O: audio  Space: pause  C/E/B: colors  Up/Down: rate  Click: move  H: hide  Esc/Q: quit",
	}
	if g.audio.playing() {
		state := ""
		if g.audio.paused {
			state = "  (paused)"
		}
		lines = append(lines, fmt.Sprintf("Audio %s / %s  level %.2f%s",
			formatDuration(g.audio.position()), formatDuration(g.audio.duration), g.audio.level, state))
	}
	if g.lastErr != nil {
		lines = append(lines, "Error: "+g.lastErr.Error())
	}

	for i, line := range lines {
		y := config.HUDY + i*config.HUDLineSpacing
		text.Draw(screen, line, basicfont.Face7x13, config.HUDX, y, color.White)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
