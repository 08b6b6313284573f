package particle

import (
	"image/color"
	"math/rand"
	"time"

	"github.com/iburimskiy/particle-emitter/internal/config"
)

// Surface is the drawing target an Emitter renders onto.
type Surface interface {
	Size() (width, height int)
	FillRect(x, y, width, height float64, c color.Color)
	FillCircle(cx, cy, radius float64, c color.Color)
}

// Config is the host-mutable emitter configuration. Every Range field is the
// full jitter width around its mean.
type Config struct {
	ClearColor Color
	BirthRate  int
	MaxCount   int

	LifeTime      float64 // ms
	LifeTimeRange float64
	Size          float64
	SizeRange     float64
	Position      Vector2
	PositionRange Vector2
	Angle         float64 // degrees
	AngleRange    float64
	Speed         float64 // px per second
	SpeedRange    float64

	StartColor Color
	EndColor   Color
}

// DefaultConfig returns the stock cyan-to-blue burst centered on a
// width x height surface.
func DefaultConfig(width, height int) Config {
	return Config{
		ClearColor:    Color{R: 0, G: 0, B: 0, A: 1},
		BirthRate:     config.DefaultBirthRate,
		MaxCount:      config.DefaultMaxCount,
		LifeTime:      config.DefaultLifeTime,
		LifeTimeRange: config.DefaultLifeTimeRange,
		Size:          config.DefaultSize,
		SizeRange:     config.DefaultSizeRange,
		Position:      Vector2{X: float64(width) / 2, Y: float64(height) / 2},
		PositionRange: Vector2{X: config.DefaultPositionRange, Y: config.DefaultPositionRange},
		Angle:         config.DefaultAngle,
		AngleRange:    config.DefaultAngleRange,
		Speed:         config.DefaultSpeed,
		SpeedRange:    config.DefaultSpeedRange,
		StartColor:    Color{R: 0, G: 255, B: 255, A: 1},
		EndColor:      Color{R: 0, G: 0, B: 255, A: 0.6},
	}
}

// Emitter spawns, ages and draws particles. It is driven by calling Update
// then Render once per frame from a single goroutine.
type Emitter struct {
	Config

	surface   Surface
	clock     Clock
	rnd       *rand.Rand
	particles []Particle
	last      time.Time
	started   bool
}

type Option func(*Emitter)

// WithClock replaces the system clock.
func WithClock(c Clock) Option {
	return func(e *Emitter) { e.clock = c }
}

// WithRand sets the random source used for jitter.
func WithRand(r *rand.Rand) Option {
	return func(e *Emitter) { e.rnd = r }
}

// WithConfig replaces the default configuration.
func WithConfig(cfg Config) Option {
	return func(e *Emitter) { e.Config = cfg }
}

// NewEmitter creates an emitter bound to s with DefaultConfig for its size.
func NewEmitter(s Surface, opts ...Option) *Emitter {
	w, h := s.Size()
	e := &Emitter{
		Config:  DefaultConfig(w, h),
		surface: s,
		clock:   SystemClock{},
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rnd == nil {
		e.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return e
}

// Update runs one simulation step: evict expired particles, spawn up to
// BirthRate new ones, then advance every live particle by the time since the
// previous Update. The first call advances by zero.
func (e *Emitter) Update() {
	now := e.clock.Now()
	var elapsed float64
	if e.started {
		elapsed = float64(now.Sub(e.last)) / float64(time.Millisecond)
		if elapsed < 0 {
			elapsed = 0
		}
	}

	e.evict()

	for i := 0; i < e.BirthRate; i++ {
		if len(e.particles) < e.MaxCount {
			e.particles = append(e.particles, newParticle(&e.Config, e.rnd.Float64))
		}
	}

	for i := range e.particles {
		e.particles[i].Update(elapsed)
	}

	e.last = now
	e.started = true
}

// evict drops expired particles in place, keeping survivors in order.
func (e *Emitter) evict() {
	live := e.particles[:0]
	for _, p := range e.particles {
		if !p.Expired() {
			live = append(live, p)
		}
	}
	e.particles = live
}

// Render clears the surface with ClearColor and draws particles in birth order.
func (e *Emitter) Render() {
	w, h := e.surface.Size()
	e.surface.FillRect(0, 0, float64(w), float64(h), e.ClearColor)

	for _, p := range e.particles {
		p.Render(e.surface)
	}
}

// Len returns the number of live particles.
func (e *Emitter) Len() int {
	return len(e.particles)
}

// Particles returns a copy of the live particles in birth order.
func (e *Emitter) Particles() []Particle {
	out := make([]Particle, len(e.particles))
	copy(out, e.particles)
	return out
}
