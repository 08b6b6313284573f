package particle

import (
	"image/color"
	"math"
	"math/rand"
	"testing"
)

const epsilon = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func cyanToBlue() Particle {
	start := Color{R: 0, G: 255, B: 255, A: 1}
	return Particle{
		LifeTime:   1000,
		Speed:      100,
		Size:       4,
		StartColor: start,
		EndColor:   Color{R: 0, G: 0, B: 255, A: 0.6},
		Color:      start,
	}
}

func TestParticleMovesAlongHeading(t *testing.T) {
	p := cyanToBlue()
	p.Position = Vector2{X: 10, Y: 20}

	p.Update(1000)

	if p.Position.X != 110 || p.Position.Y != 20 {
		t.Fatalf("position got=(%f,%f) want=(110,20)", p.Position.X, p.Position.Y)
	}
	if p.Age != 1000 {
		t.Fatalf("age got=%f want=1000", p.Age)
	}
}

func TestParticleMovesDownwardAtNinetyDegrees(t *testing.T) {
	p := cyanToBlue()
	p.Rad = math.Pi / 2

	p.Update(500)

	if math.Abs(p.Position.X) > 1e-6 || !approx(p.Position.Y, 50) {
		t.Fatalf("position got=(%f,%f) want=(0,50)", p.Position.X, p.Position.Y)
	}
}

func TestParticleColorAtBirth(t *testing.T) {
	p := cyanToBlue()
	p.Update(0)

	want := Color{R: 0, G: 255, B: 255, A: 1}
	if p.Color != want {
		t.Fatalf("color got=%+v want=%+v", p.Color, want)
	}
}

func TestParticleColorMidpoint(t *testing.T) {
	p := cyanToBlue()
	p.Age = 500
	p.Update(0)

	if !approx(p.Color.G, 127.5) || !approx(p.Color.A, 0.8) || !approx(p.Color.B, 255) || p.Color.R != 0 {
		t.Fatalf("midpoint color got=%+v", p.Color)
	}
}

func TestParticleColorUsesAgeBeforeTick(t *testing.T) {
	p := cyanToBlue()

	p.Update(500)
	if p.Color.G != 255 {
		t.Fatalf("first tick should use age 0, got green=%f", p.Color.G)
	}

	p.Update(500)
	if !approx(p.Color.G, 127.5) {
		t.Fatalf("second tick should use age 500, got green=%f", p.Color.G)
	}
}

func TestParticleColorNotClamped(t *testing.T) {
	p := cyanToBlue()
	p.Age = 1500
	p.Update(0)

	if !approx(p.Color.G, -127.5) {
		t.Fatalf("extrapolated green got=%f want=-127.5", p.Color.G)
	}
}

func TestParticleExpired(t *testing.T) {
	p := cyanToBlue()
	p.Age = 1000
	if p.Expired() {
		t.Fatalf("age == lifetime must not be expired")
	}
	p.Age = 1000.5
	if !p.Expired() {
		t.Fatalf("age > lifetime must be expired")
	}
}

func TestParticleRenderDrawsFilledCircle(t *testing.T) {
	p := cyanToBlue()
	p.Position = Vector2{X: 3, Y: 4}
	s := &recordingSurface{width: 10, height: 10}

	p.Render(s)

	if len(s.ops) != 1 {
		t.Fatalf("ops got=%d want=1", len(s.ops))
	}
	op := s.ops[0]
	if op.kind != opCircle || op.x != 3 || op.y != 4 || op.r != 4 {
		t.Fatalf("unexpected op %+v", op)
	}
	if op.c != (color.NRGBA{R: 0, G: 255, B: 255, A: 255}) {
		t.Fatalf("color got=%+v", op.c)
	}
}

func TestParticleZeroLifeTimeDrawsTransparent(t *testing.T) {
	p := cyanToBlue()
	p.LifeTime = 0

	p.Update(0)

	if !math.IsNaN(p.Color.G) || !math.IsNaN(p.Color.A) {
		t.Fatalf("color got=%+v want NaN channels", p.Color)
	}
	if p.Expired() {
		t.Fatalf("age 0 must not be expired at lifetime 0")
	}

	s := &recordingSurface{width: 10, height: 10}
	p.Render(s)
	if len(s.ops) != 1 || s.ops[0].c.A != 0 {
		t.Fatalf("ops got=%+v want one transparent circle", s.ops)
	}

	p.Update(1)
	if !p.Expired() {
		t.Fatalf("age 1 must be expired at lifetime 0")
	}
}

func TestNewParticleSnapshotsConfig(t *testing.T) {
	cfg := DefaultConfig(200, 100)
	cfg.LifeTimeRange = 0
	cfg.SizeRange = 0
	cfg.PositionRange = Vector2{}
	cfg.AngleRange = 0
	cfg.SpeedRange = 0
	cfg.Angle = 180

	p := newParticle(&cfg, rand.New(rand.NewSource(1)).Float64)

	cfg.StartColor = Color{R: 255, A: 1}
	cfg.EndColor = Color{R: 255, A: 0}
	cfg.Speed = 1

	if p.StartColor.G != 255 || p.EndColor.B != 255 || p.Color != p.StartColor {
		t.Fatalf("colors changed with config: %+v", p)
	}
	if p.Speed != 100 || p.LifeTime != 1000 || p.Size != 4 || p.Age != 0 {
		t.Fatalf("unexpected birth values: %+v", p)
	}
	if p.Position != (Vector2{X: 100, Y: 50}) {
		t.Fatalf("position got=%+v want=(100,50)", p.Position)
	}
	if !approx(p.Rad, math.Pi) {
		t.Fatalf("rad got=%f want=pi", p.Rad)
	}
}

func TestNewParticleJitterBounds(t *testing.T) {
	cfg := DefaultConfig(0, 0)
	cfg.Speed = 100
	cfg.SpeedRange = 10
	rnd := rand.New(rand.NewSource(42)).Float64

	const n = 20000
	const buckets = 10
	counts := make([]int, buckets)
	for i := 0; i < n; i++ {
		p := newParticle(&cfg, rnd)
		if p.Speed < 95 || p.Speed >= 105 {
			t.Fatalf("speed %f outside [95,105)", p.Speed)
		}
		if p.LifeTime < 950 || p.LifeTime >= 1050 {
			t.Fatalf("lifetime %f outside [950,1050)", p.LifeTime)
		}
		if p.Size < 3 || p.Size >= 5 {
			t.Fatalf("size %f outside [3,5)", p.Size)
		}
		if p.Position.X < -5 || p.Position.X >= 5 || p.Position.Y < -5 || p.Position.Y >= 5 {
			t.Fatalf("position %+v outside +-5", p.Position)
		}
		if p.Rad < -math.Pi || p.Rad >= math.Pi {
			t.Fatalf("rad %f outside [-pi,pi)", p.Rad)
		}
		counts[int((p.Speed-95)/10*buckets)]++
	}

	want := n / buckets
	for i, c := range counts {
		if c < want*8/10 || c > want*12/10 {
			t.Fatalf("bucket %d count=%d want≈%d", i, c, want)
		}
	}
}
