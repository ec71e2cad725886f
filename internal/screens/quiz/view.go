package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	qz "github.com/abhisek/quizcard/internal/quiz"
	"github.com/abhisek/quizcard/internal/ui/components"
	"github.com/abhisek/quizcard/internal/ui/layout"
	"github.com/abhisek/quizcard/internal/ui/theme"
)

// cardWidth returns the inner width of the quiz card.
func cardWidth(width int) int {
	w := width - 8
	if w > 72 {
		w = 72
	}
	if w < 30 {
		w = 30
	}
	return w
}

func (s *QuizScreen) View(width, height int) string {
	cw := cardWidth(width)

	var body string
	if s.session.Completed() {
		body = s.renderResults(cw, layout.IsCompactHeight(height))
	} else {
		body = s.renderQuestion(cw)
	}

	card := theme.Card.Width(cw + 6).Render(body)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, card)
}

// nextLabel is the advance button label for the current question.
func (s *QuizScreen) nextLabel() string {
	if s.session.IsLast() {
		return "Show Results"
	}
	return "Next Question →"
}

func (s *QuizScreen) renderQuestion(cw int) string {
	q := s.session.Current()
	idx := s.session.CurrentIndex()

	var b strings.Builder

	left := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render(fmt.Sprintf("Question %d", idx+1))
	right := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d of %d", idx+1, s.session.Total()))
	gap := cw - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	b.WriteString(left + strings.Repeat(" ", gap) + right)
	b.WriteString("\n")
	b.WriteString(components.NewProgressBar("", s.session.Progress(), false, cw).View())
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Width(cw).Foreground(theme.Text).Bold(true).Render(q.Prompt))
	b.WriteString("\n\n")

	b.WriteString(s.choices.View())
	b.WriteString("\n")

	b.WriteString(components.NewButton(s.nextLabel(), !s.session.CanAdvance()).View())
	if !s.session.CanAdvance() {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("Choose an answer to continue"))
	}

	return b.String()
}

func (s *QuizScreen) renderResults(cw int, compact bool) string {
	res := s.session.Results()

	var b strings.Builder

	b.WriteString(theme.Title.Width(cw).Render("Quiz Results"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(cw).Render("Here's how you performed"))
	b.WriteString("\n\n")
	if !compact {
		b.WriteString(lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).
			Foreground(theme.Accent).Bold(true).Render("🏆"))
		b.WriteString("\n\n")
	}

	scoreStr := fmt.Sprintf("Score: %d/%d", res.Score, res.Total)
	pctStr := fmt.Sprintf("%d%%", res.RoundedPercentage())
	gap := cw - lipgloss.Width(scoreStr) - lipgloss.Width(pctStr)
	if gap < 1 {
		gap = 1
	}
	b.WriteString(theme.Body.Bold(true).Render(scoreStr + strings.Repeat(" ", gap) + pctStr))
	b.WriteString("\n")
	b.WriteString(components.NewProgressBar("", res.Percentage, false, cw).View())
	b.WriteString("\n\n")

	for i, q := range res.Questions {
		if i > 0 && !compact {
			b.WriteString("\n")
		}
		b.WriteString(renderBreakdownRow(q, cw))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(components.NewButton("↻ Try Again", false).View())

	return b.String()
}

// renderBreakdownRow renders one question of the results breakdown.
func renderBreakdownRow(q qz.QuestionResult, cw int) string {
	var lines []string
	lines = append(lines, lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(q.Prompt))

	answer := q.Answer
	if answer == qz.Unanswered {
		answer = "—"
	}
	if q.Correct {
		lines = append(lines, theme.Correct.Render("✓ Your answer: "+answer))
	} else {
		lines = append(lines, theme.Incorrect.Render("✗ Your answer: "+answer))
		lines = append(lines, theme.Correct.Render("  Correct answer: "+q.CorrectAnswer))
	}

	return theme.Muted.Width(cw).Render(strings.Join(lines, "\n"))
}
