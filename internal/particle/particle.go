package particle

import "math"

// Vector2 is a position or a per-axis range.
type Vector2 struct {
	X, Y float64
}

// Particle is one spawned point. Everything except Age, Position and Color is
// fixed at birth.
type Particle struct {
	LifeTime   float64 // ms
	Age        float64 // ms
	Position   Vector2
	Rad        float64
	Speed      float64
	Size       float64
	StartColor Color
	EndColor   Color
	Color      Color
}

// newParticle samples a particle from cfg. rnd returns values in [0,1).
func newParticle(cfg *Config, rnd func() float64) Particle {
	jitter := func(mean, width float64) float64 {
		return mean + width*(rnd()-0.5)
	}

	p := Particle{
		LifeTime:   jitter(cfg.LifeTime, cfg.LifeTimeRange),
		StartColor: cfg.StartColor,
		EndColor:   cfg.EndColor,
		Color:      cfg.StartColor,
	}
	p.Size = jitter(cfg.Size, cfg.SizeRange)
	p.Position = Vector2{
		X: jitter(cfg.Position.X, cfg.PositionRange.X),
		Y: jitter(cfg.Position.Y, cfg.PositionRange.Y),
	}
	p.Rad = jitter(cfg.Angle, cfg.AngleRange) * math.Pi / 180
	p.Speed = jitter(cfg.Speed, cfg.SpeedRange)
	return p
}

// Update advances the particle by elapsed milliseconds. The color is taken
// from the age before this tick is added.
func (p *Particle) Update(elapsed float64) {
	distance := p.Speed * elapsed / 1000
	p.Position = Vector2{
		X: p.Position.X + math.Cos(p.Rad)*distance,
		Y: p.Position.Y + math.Sin(p.Rad)*distance,
	}

	p.Color = p.StartColor.Lerp(p.EndColor, p.Age/p.LifeTime)

	p.Age += elapsed
}

// Expired reports whether the particle has outlived the lifetime sampled at
// its birth.
func (p Particle) Expired() bool {
	return p.Age > p.LifeTime
}

// Render paints the particle as a filled circle.
func (p Particle) Render(s Surface) {
	s.FillCircle(p.Position.X, p.Position.Y, p.Size, p.Color)
}
