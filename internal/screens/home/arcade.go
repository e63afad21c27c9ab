package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/futbolquiz/futbolquiz/internal/ui/components"
	"github.com/futbolquiz/futbolquiz/internal/ui/theme"
)

// Block-letter title.
const arcadeTitleFull = ` ███████╗██╗   ██╗████████╗██████╗  ██████╗ ██╗
 ██╔════╝██║   ██║╚══██╔══╝██╔══██╗██╔═══██╗██║
 █████╗  ██║   ██║   ██║   ██████╔╝██║   ██║██║
 ██╔══╝  ██║   ██║   ██║   ██╔══██╗██║   ██║██║
 ██║     ╚██████╔╝   ██║   ██████╔╝╚██████╔╝███████╗
 ╚═╝      ╚═════╝    ╚═╝   ╚═════╝  ╚═════╝ ╚══════╝`

const arcadeSubtitleFull = "· Q U I Z ·"

const arcadeTitleCompact = "F Ú T B O L · Q U I Z"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	if compact {
		return lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render(style.Render(arcadeTitleCompact))
	}
	block := style.Render(arcadeTitleFull) + "\n" +
		lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Render(arcadeSubtitleFull)
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderStatsBar renders the dashboard stats in a bordered box matching content width.
func renderStatsBar(quizzes, avgScore, bestStreak, cw int, compact bool) string {
	quizStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	scoreStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	streakStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			quizStyle.Render(fmt.Sprintf("⚽%d", quizzes)),
			scoreStyle.Render(fmt.Sprintf("◆%d%%", avgScore)),
			streakText(bestStreak, true, streakStyle, dimStyle),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			quizStyle.Render(fmt.Sprintf("⚽ %d PARTIDAS", quizzes)),
			scoreStyle.Render(fmt.Sprintf("◆ %d%% MEDIA", avgScore)),
			streakText(bestStreak, false, streakStyle, dimStyle),
		)
	}

	// Wrap in a double-border box at the same content width
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

func streakText(streak int, compact bool, active, dim lipgloss.Style) string {
	if streak == 0 {
		if compact {
			return dim.Render("★0")
		}
		return dim.Render("★ SIN RACHA")
	}
	if compact {
		return active.Render(fmt.Sprintf("★%d", streak))
	}
	return active.Render(fmt.Sprintf("★ RACHA %d", streak))
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 26

// renderArcadeMenu renders each menu item as a fixed-width button.
func renderArcadeMenu(items []string, selected int, cw int) string {
	var buttons []string
	for i, label := range items {
		buttons = append(buttons, components.ArcadeButton(label, i == selected, buttonWidth))
	}
	block := strings.Join(buttons, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderArcadeMenuCompact renders menu items as simple text lines (no borders)
// for very small terminals where bordered buttons would overflow.
func renderArcadeMenuCompact(items []string, selected int, cw int) string {
	var lines []string
	for i, label := range items {
		var line string
		if i == selected {
			line = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.ArcadeYellow).
				Bold(true).
				Render(" ▸ " + label + " ")
		} else {
			line = lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   " + label)
		}
		lines = append(lines, line)
	}
	block := strings.Join(lines, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderSourceBanner renders a dim one-line note about the player data source.
func renderSourceBanner(baseURL string, cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(cw).
		Align(lipgloss.Center).
		Render(fmt.Sprintf("datos: %s", baseURL))
}

// renderMascotBox renders the mascot in a card matching content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return components.ArcadeCard(RenderMascot(variant), cw)
}

