package game

import (
	"errors"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/particle-emitter/internal/particle"
)

// pickColor asks the user for a color, starting from current. Cancelling
// returns current unchanged.
func pickColor(title string, current particle.Color) (particle.Color, error) {
	c, err := zenity.SelectColor(
		zenity.Title(title),
		zenity.Color(current),
		zenity.ShowPalette(),
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return current, nil
		}
		return current, err
	}
	return particle.FromColor(c), nil
}
