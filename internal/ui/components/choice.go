package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizcard/internal/ui/theme"
)

// ChoiceList is a single-choice selector: a moving cursor plus at most one
// chosen option, like a radio group.
type ChoiceList struct {
	Options []string
	Cursor  int
	Chosen  int // -1 when nothing is chosen
}

// NewChoiceList creates a selector with the cursor on the chosen option,
// or on the first option when chosen is -1.
func NewChoiceList(options []string, chosen int) ChoiceList {
	cursor := chosen
	if cursor < 0 || cursor >= len(options) {
		cursor = 0
	}
	return ChoiceList{
		Options: options,
		Cursor:  cursor,
		Chosen:  chosen,
	}
}

// Up moves the cursor up one option.
func (c *ChoiceList) Up() {
	if c.Cursor > 0 {
		c.Cursor--
	}
}

// Down moves the cursor down one option.
func (c *ChoiceList) Down() {
	if c.Cursor < len(c.Options)-1 {
		c.Cursor++
	}
}

// Highlighted returns the option under the cursor.
func (c ChoiceList) Highlighted() string {
	if c.Cursor < 0 || c.Cursor >= len(c.Options) {
		return ""
	}
	return c.Options[c.Cursor]
}

// View renders the options, one per line.
func (c ChoiceList) View() string {
	var b strings.Builder
	for i, opt := range c.Options {
		cursor := "  "
		if i == c.Cursor {
			cursor = "▸ "
		}
		radio := "○"
		if i == c.Chosen {
			radio = "●"
		}

		line := fmt.Sprintf("%s%s %d) %s", cursor, radio, i+1, opt)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case i == c.Chosen:
			style = theme.Selected
		case i == c.Cursor:
			style = lipgloss.NewStyle().Foreground(theme.Secondary)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
