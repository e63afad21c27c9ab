package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/futbolquiz/futbolquiz/internal/ui/layout"
)

// Screen is one view in the arcade: the home menu, a game mode, the
// end-of-game summary, the stats page.
type Screen interface {
	// Init returns the command to run when the screen is pushed.
	Init() tea.Cmd

	// Update handles a message and returns the updated screen plus a
	// follow-up command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the body. Header and footer are drawn around it.
	View(width, height int) string

	// Title is shown in the header bar.
	Title() string
}

// KeyHintProvider lets a screen put its own key hints in the footer.
// Screens without it get no hints, not a default set.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
