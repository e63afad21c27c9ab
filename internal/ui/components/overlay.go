package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/futbolquiz/futbolquiz/internal/ui/theme"
)

// RenderLoading renders the loading state shown while a game fetches data.
func RenderLoading(width int, message string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  " + message)
}

// RenderError renders an error message with a go-back hint.
func RenderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Pulsa cualquier tecla para volver.", errMsg))
}

// RenderQuitConfirm renders the quit confirmation dialog.
func RenderQuitConfirm(width int) string {
	title := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("¿Terminar la partida?")
	sub := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("La puntuación se guardará.")
	yes := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[S] Sí, terminar")
	no := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, seguir jugando")

	return "\n\n\n" + title + "\n" + sub + "\n\n" + yes + "\n" + no
}
