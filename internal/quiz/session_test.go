package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allCorrect = []string{"Paris", "Mars", "Leonardo da Vinci", "Pacific Ocean", "Gold"}

var allWrong = []string{"London", "Venus", "Pablo Picasso", "Atlantic Ocean", "Silver"}

// play answers and advances through every question of a fresh default session.
func play(t *testing.T, answers []string) *Session {
	t.Helper()
	s := NewSession(DefaultBank())
	for i, a := range answers {
		require.Equal(t, i, s.CurrentIndex())
		require.NoError(t, s.SelectAnswer(a))
		_, err := s.Advance()
		require.NoError(t, err)
	}
	return s
}

func TestNewSession_Defaults(t *testing.T) {
	s := NewSession(DefaultBank())

	assert.Equal(t, 0, s.CurrentIndex())
	assert.Equal(t, StateInProgress, s.State())
	assert.False(t, s.Completed())
	assert.Equal(t, 5, s.Total())
	for i := 0; i < s.Total(); i++ {
		assert.Equal(t, Unanswered, s.Answer(i))
	}
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, 0.0, s.Progress())
}

func TestSelectAnswer_Overwrites(t *testing.T) {
	s := NewSession(DefaultBank())

	require.NoError(t, s.SelectAnswer("London"))
	assert.Equal(t, "London", s.Answer(0))

	require.NoError(t, s.SelectAnswer("Paris"))
	assert.Equal(t, "Paris", s.Answer(0))

	require.NoError(t, s.SelectAnswer("Paris"))
	assert.Equal(t, "Paris", s.Answer(0))
	assert.Equal(t, 0, s.CurrentIndex())
}

func TestSelectAnswer_RejectsUnknownOption(t *testing.T) {
	s := NewSession(DefaultBank())

	err := s.SelectAnswer("Mars")
	assert.ErrorIs(t, err, ErrUnknownOption)
	assert.Equal(t, Unanswered, s.Answer(0))

	assert.ErrorIs(t, s.SelectAnswer(Unanswered), ErrUnknownOption)
}

func TestAdvance_RequiresAnswer(t *testing.T) {
	s := NewSession(DefaultBank())

	assert.False(t, s.CanAdvance())
	_, err := s.Advance()
	assert.ErrorIs(t, err, ErrAnswerRequired)
	assert.Equal(t, 0, s.CurrentIndex())

	require.NoError(t, s.SelectAnswer("Berlin"))
	assert.True(t, s.CanAdvance())
	tr, err := s.Advance()
	require.NoError(t, err)
	assert.Equal(t, TransitionNext, tr)
	assert.Equal(t, 1, s.CurrentIndex())
}

func TestAdvance_StepsByOneAndCompletes(t *testing.T) {
	s := NewSession(DefaultBank())

	for i, a := range allCorrect {
		assert.Equal(t, i, s.CurrentIndex())
		assert.Less(t, s.CurrentIndex(), s.Total())
		assert.Equal(t, i == len(allCorrect)-1, s.IsLast())

		require.NoError(t, s.SelectAnswer(a))
		tr, err := s.Advance()
		require.NoError(t, err)

		if i < len(allCorrect)-1 {
			assert.Equal(t, TransitionNext, tr)
			assert.Equal(t, StateInProgress, s.State())
		} else {
			assert.Equal(t, TransitionCompleted, tr)
		}
	}

	assert.Equal(t, StateCompleted, s.State())
	assert.Equal(t, 4, s.CurrentIndex(), "index stays on the last question after completion")
}

func TestCompleted_IsTerminal(t *testing.T) {
	s := play(t, allCorrect)

	_, err := s.Advance()
	assert.ErrorIs(t, err, ErrSessionCompleted)
	assert.ErrorIs(t, s.SelectAnswer("Silver"), ErrSessionCompleted)
	assert.False(t, s.CanAdvance())

	assert.Equal(t, 4, s.CurrentIndex())
	assert.Equal(t, allCorrect, s.Answers())
}

func TestScenario_AllCorrect(t *testing.T) {
	s := play(t, allCorrect)

	assert.True(t, s.Completed())
	assert.Equal(t, 5, s.Score())
	assert.Equal(t, 100.0, s.Percentage())
}

func TestScenario_AllWrong(t *testing.T) {
	s := play(t, allWrong)

	assert.True(t, s.Completed())
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, 0.0, s.Percentage())

	res := s.Results()
	require.Len(t, res.Missed(), 5)
	for i, q := range res.Questions {
		assert.False(t, q.Correct)
		assert.Equal(t, allCorrect[i], q.CorrectAnswer)
		assert.Equal(t, allWrong[i], q.Answer)
	}
}

func TestCompleted_AlwaysFullyAnswered(t *testing.T) {
	s := NewSession(DefaultBank())

	// Try to skip every question without answering; the guard must hold.
	for i := 0; i < s.Total()*2; i++ {
		_, err := s.Advance()
		require.ErrorIs(t, err, ErrAnswerRequired)
	}
	assert.False(t, s.Completed())

	mixed := []string{"Paris", "Venus", "Leonardo da Vinci", "Arctic Ocean", "Gold"}
	for _, a := range mixed {
		_, err := s.Advance()
		require.ErrorIs(t, err, ErrAnswerRequired)
		require.NoError(t, s.SelectAnswer(a))
		_, err = s.Advance()
		require.NoError(t, err)
	}

	require.True(t, s.Completed())
	assert.True(t, s.AllAnswered())
	assert.Equal(t, 3, s.Score())
	assert.Equal(t, 60.0, s.Percentage())
}

func TestScore_MonotoneAndIdempotent(t *testing.T) {
	s := NewSession(DefaultBank())

	prev := s.Score()
	for _, a := range allCorrect {
		require.NoError(t, s.SelectAnswer(a))
		score := s.Score()
		assert.GreaterOrEqual(t, score, prev)
		assert.Equal(t, score, s.Score())
		assert.Equal(t, score, s.Score())
		prev = score
		if !s.IsLast() {
			_, err := s.Advance()
			require.NoError(t, err)
		}
	}
	assert.Equal(t, 5, prev)
}

func TestScore_MidSession(t *testing.T) {
	s := NewSession(DefaultBank())
	require.NoError(t, s.SelectAnswer("Paris"))
	_, err := s.Advance()
	require.NoError(t, err)
	require.NoError(t, s.SelectAnswer("Saturn"))

	assert.Equal(t, 1, s.Score())
	assert.Equal(t, 20.0, s.Percentage())
	assert.Equal(t, 20.0, s.Progress())
}

func TestReset_FromAnyState(t *testing.T) {
	t.Run("fresh", func(t *testing.T) {
		s := NewSession(DefaultBank())
		s.Reset()
		assertFresh(t, s)
	})

	t.Run("mid-session", func(t *testing.T) {
		s := NewSession(DefaultBank())
		require.NoError(t, s.SelectAnswer("Paris"))
		_, err := s.Advance()
		require.NoError(t, err)
		require.NoError(t, s.SelectAnswer("Mars"))
		s.Reset()
		assertFresh(t, s)
	})

	t.Run("completed", func(t *testing.T) {
		s := play(t, allCorrect)
		s.Reset()
		assertFresh(t, s)

		// A reset session plays through again.
		require.NoError(t, s.SelectAnswer("London"))
		_, err := s.Advance()
		require.NoError(t, err)
		assert.Equal(t, 1, s.CurrentIndex())
	})
}

func assertFresh(t *testing.T, s *Session) {
	t.Helper()
	assert.Equal(t, 0, s.CurrentIndex())
	assert.False(t, s.Completed())
	assert.Equal(t, StateInProgress, s.State())
	assert.Equal(t, 0.0, s.Progress())
	for _, a := range s.Answers() {
		assert.Equal(t, Unanswered, a)
	}
}

func TestAnswers_ReturnsCopy(t *testing.T) {
	s := NewSession(DefaultBank())
	require.NoError(t, s.SelectAnswer("Paris"))

	answers := s.Answers()
	answers[0] = "London"

	assert.Equal(t, "Paris", s.Answer(0))
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "in-progress", StateInProgress.String())
	assert.Equal(t, "completed", StateCompleted.String())
	assert.Equal(t, "unknown", State(9).String())
}
