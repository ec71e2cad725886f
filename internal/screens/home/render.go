package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizcard/internal/ui/theme"
)

const titleFull = `╔═╗  ╦ ╦ ╦ ╔═╗ ╔═╗ ╔═╗ ╦═╗ ╔╦╗
║═╬╗ ║ ║ ║ ╔═╝ ║   ╠═╣ ╠╦╝  ║║
╚═╝╚ ╚═╝ ╩ ╚═╝ ╚═╝ ╩ ╩ ╩╚═ ═╩╝`

const titleCompact = "Q · U · I · Z · C · A · R · D"

// contentWidth returns the uniform inner width used for all sections.
func contentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 60 {
		w = 60
	}
	if w < 20 {
		w = 20
	}
	return w
}

func renderTitle(cw int, compact bool) string {
	art := titleFull
	if compact {
		art = titleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(art)
}

// renderStats renders the attempt summary line, or nothing before it loads.
func renderStats(st stats, loaded bool, cw int) string {
	var text string
	switch {
	case !loaded:
		text = theme.Hint.Render("loading…")
	case st.Attempts == 0:
		text = theme.Hint.Render("No attempts yet")
	default:
		text = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
			Render(fmt.Sprintf("★ BEST %d/%d", st.BestScore, st.BestTotal)) +
			"   " +
			lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
				Render(fmt.Sprintf("◆ %d ATTEMPTS", st.Attempts))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(text)
}
