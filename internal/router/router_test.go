package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizcard/internal/screen"
)

// stubScreen is a minimal screen that counts updates.
type stubScreen struct {
	title   string
	initRan bool
	updates int
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) {
	s.updates++
	return s, nil
}
func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

func TestPushAndPop(t *testing.T) {
	home := &stubScreen{title: "home"}
	r := New(home)

	quiz := &stubScreen{title: "quiz"}
	r.Update(PushScreenMsg{Screen: quiz})

	if r.Depth() != 2 {
		t.Fatalf("depth = %d, want 2", r.Depth())
	}
	if !quiz.initRan {
		t.Error("expected Init() on pushed screen")
	}
	if r.View(80, 24) != "quiz" {
		t.Errorf("View = %q, want quiz", r.View(80, 24))
	}

	r.Update(PopScreenMsg{})
	if r.Active() != home {
		t.Errorf("active = %q, want home", r.Active().Title())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	r.Pop()
	if r.Depth() != 1 {
		t.Errorf("depth = %d after pop at bottom, want 1", r.Depth())
	}
}

func TestReplaceKeepsDepth(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	r.Push(&stubScreen{title: "results"})

	history := &stubScreen{title: "history"}
	r.Update(ReplaceScreenMsg{Screen: history})

	if r.Depth() != 2 {
		t.Errorf("depth = %d, want 2", r.Depth())
	}
	if r.Active() != history || !history.initRan {
		t.Error("expected history active and initialised")
	}
}

func TestUpdateForwardsToActive(t *testing.T) {
	home := &stubScreen{title: "home"}
	r := New(home)

	r.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	r.Update(tea.KeyPressMsg{Code: tea.KeyUp})

	if home.updates != 2 {
		t.Errorf("updates = %d, want 2", home.updates)
	}
}

func TestCommandHelpers(t *testing.T) {
	s := &stubScreen{title: "x"}

	if msg, ok := Push(s)().(PushScreenMsg); !ok || msg.Screen != s {
		t.Error("Push() should produce PushScreenMsg carrying the screen")
	}
	if _, ok := Pop()().(PopScreenMsg); !ok {
		t.Error("Pop() should produce PopScreenMsg")
	}
	if msg, ok := Replace(s)().(ReplaceScreenMsg); !ok || msg.Screen != s {
		t.Error("Replace() should produce ReplaceScreenMsg carrying the screen")
	}
}

type resumableScreen struct {
	stubScreen
	resumed int
}

func (s *resumableScreen) Resume() tea.Cmd {
	s.resumed++
	return nil
}

func TestPopResumesScreenBelow(t *testing.T) {
	home := &resumableScreen{stubScreen: stubScreen{title: "home"}}
	r := New(home)
	r.Push(&stubScreen{title: "quiz"})

	r.Pop()
	if home.resumed != 1 {
		t.Errorf("resumed = %d, want 1", home.resumed)
	}

	r.Pop()
	if home.resumed != 1 {
		t.Error("pop at bottom must not resume")
	}
}
