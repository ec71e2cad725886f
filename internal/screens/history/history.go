package history

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizcard/internal/screen"
	"github.com/abhisek/quizcard/internal/store"
	"github.com/abhisek/quizcard/internal/ui/layout"
	"github.com/abhisek/quizcard/internal/ui/theme"
)

type historyLoadedMsg struct {
	Attempts []store.AttemptRecord
	Total    int
	Err      error
}

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Back   key.Binding
}

// HistoryScreen lists recorded quiz attempts, newest first.
type HistoryScreen struct {
	repo     store.AttemptRepo
	limit    int
	keys     keyMap
	attempts []store.AttemptRecord
	total    int
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)
var _ screen.StatusProvider = (*HistoryScreen)(nil)

// New creates a HistoryScreen showing up to limit attempts from repo.
func New(repo store.AttemptRepo, limit int) *HistoryScreen {
	return &HistoryScreen{
		repo:     repo,
		limit:    limit,
		expanded: make(map[int]bool),
		keys: keyMap{
			Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑↓", "Navigate")),
			Down:   key.NewBinding(key.WithKeys("down", "j")),
			Toggle: key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Details")),
			Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "Back")),
		},
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	if s.repo == nil {
		s.loaded = true
		return nil
	}
	repo, limit := s.repo, s.limit
	return func() tea.Msg {
		ctx := context.Background()

		attempts, err := repo.Recent(ctx, limit)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		total, err := repo.Count(ctx)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		return historyLoadedMsg{Attempts: attempts, Total: total}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) Status() string {
	if !s.loaded || s.errMsg != "" || s.repo == nil {
		return ""
	}
	return fmt.Sprintf("%d attempts", s.total)
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return layout.HintsFor(s.keys.Toggle, s.keys.Up, s.keys.Back)
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.attempts = msg.Attempts
			s.total = msg.Total
		}
		s.loaded = true
		return s, nil

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, s.keys.Up):
			if s.selected > 0 {
				s.selected--
			}
		case key.Matches(msg, s.keys.Down):
			if s.selected < len(s.attempts)-1 {
				s.selected++
			}
		case key.Matches(msg, s.keys.Toggle):
			if len(s.attempts) > 0 {
				s.expanded[s.selected] = !s.expanded[s.selected]
			}
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if s.repo == nil {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  History unavailable: no attempt store is open.")
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.attempts) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No attempts yet. Take the quiz!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, a := range s.attempts {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		secs := int(a.Duration().Seconds())
		line := fmt.Sprintf("%s%s  %d:%02d  %d/%d  %3.0f%%",
			prefix, a.FinishedAt.Format("Jan 02, 2006 15:04"), secs/60, secs%60,
			a.Score, a.Total, a.Percentage())

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = theme.Selected
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			for _, ans := range a.Answers {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, renderAnswer(ans)))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

func renderAnswer(ans store.AnswerRecord) string {
	if ans.Correct {
		return theme.Correct.Render(fmt.Sprintf("    ✓ Q%d %s", ans.QuestionID, ans.Answer))
	}
	return theme.Incorrect.Render(fmt.Sprintf("    ✗ Q%d %s (correct: %s)", ans.QuestionID, ans.Answer, ans.CorrectAnswer))
}
