package game

import (
	"fmt"
	"math"
	"time"
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// smooth blends the new sample into prev with the given retention factor.
func smooth(prev, sample, factor float64) float64 {
	return factor*prev + (1-factor)*sample
}

// reactiveBirthRate scales the base birth rate up by the audio level.
func reactiveBirthRate(base int, level, boost float64) int {
	if base <= 0 {
		return base
	}
	return base + int(math.Round(float64(base)*clamp01(level)*boost))
}

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
