package home

import (
	"charm.land/lipgloss/v2"

	"github.com/futbolquiz/futbolquiz/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // Default: ball at rest
	MascotCelebrating                      // Gold, confetti — a hot streak on record
)

const mascotIdle = `  ___
 /   \
| ⬡ ⬡ |
 \___/
▔▔▔▔▔▔▔`

const mascotCelebrating = ` * ___ *
 /   \
| ⬡ ⬡ |
 \___/
 \o/ \o/`

// RenderMascot returns the mascot ASCII art for the given variant.
func RenderMascot(variant ...MascotVariant) string {
	v := MascotIdle
	if len(variant) > 0 {
		v = variant[0]
	}

	var art string
	var fg = theme.Primary

	switch v {
	case MascotCelebrating:
		art = mascotCelebrating
		fg = theme.ArcadeYellow
	default:
		art = mascotIdle
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
