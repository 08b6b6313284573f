package frame

import (
	"context"
	"time"
)

// Ticker calls a frame callback once per Interval.
type Ticker struct {
	Interval time.Duration
}

// NewTicker returns a Ticker firing fps times per second.
func NewTicker(fps int) Ticker {
	if fps <= 0 {
		fps = 60
	}
	return Ticker{Interval: time.Second / time.Duration(fps)}
}

// Run invokes fn on every tick until ctx is done and returns ctx.Err().
func (t Ticker) Run(ctx context.Context, fn func()) error {
	ticker := time.NewTicker(t.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			fn()
		}
	}
}
