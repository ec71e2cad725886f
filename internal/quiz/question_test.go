package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBank(t *testing.T) {
	b := DefaultBank()
	require.Equal(t, 5, b.Len())

	for i, q := range b.Questions() {
		assert.Equal(t, i+1, q.ID)
		assert.Len(t, q.Options, OptionsPerQuestion)
		assert.True(t, q.HasOption(q.CorrectAnswer), "question %d", q.ID)
	}

	assert.Equal(t, "What is the capital of France?", b.At(0).Prompt)
	assert.Equal(t, []string{"London", "Berlin", "Paris", "Madrid"}, b.At(0).Options)
	assert.Equal(t, "Gold", b.At(4).CorrectAnswer)
}

func TestBank_IsReadOnly(t *testing.T) {
	b := DefaultBank()

	q := b.At(0)
	q.Options[0] = "Lyon"
	qs := b.Questions()
	qs[1].Options[1] = "Pluto"
	qs[1].CorrectAnswer = "Pluto"

	assert.Equal(t, "London", b.At(0).Options[0])
	assert.Equal(t, "Mars", b.At(1).Options[1])
	assert.Equal(t, "Mars", b.At(1).CorrectAnswer)
}

func TestQuestion_OptionIndex(t *testing.T) {
	q := DefaultBank().At(2)
	assert.Equal(t, 2, q.OptionIndex("Leonardo da Vinci"))
	assert.Equal(t, -1, q.OptionIndex("Raphael"))
}

func TestNewBank_Invalid(t *testing.T) {
	valid := func() Question {
		return Question{ID: 1, Prompt: "2 + 2?", Options: []string{"3", "4", "5", "6"}, CorrectAnswer: "4"}
	}

	tests := []struct {
		name      string
		questions func() []Question
	}{
		{"empty bank", func() []Question { return nil }},
		{"duplicate id", func() []Question { return []Question{valid(), valid()} }},
		{"empty prompt", func() []Question {
			q := valid()
			q.Prompt = ""
			return []Question{q}
		}},
		{"three options", func() []Question {
			q := valid()
			q.Options = q.Options[:3]
			return []Question{q}
		}},
		{"duplicate option", func() []Question {
			q := valid()
			q.Options = []string{"4", "4", "5", "6"}
			return []Question{q}
		}},
		{"empty option", func() []Question {
			q := valid()
			q.Options = []string{"", "4", "5", "6"}
			return []Question{q}
		}},
		{"correct answer missing", func() []Question {
			q := valid()
			q.CorrectAnswer = "22"
			return []Question{q}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBank(tt.questions())
			assert.ErrorIs(t, err, ErrInvalidBank)
		})
	}
}

func TestNewBank_CustomSession(t *testing.T) {
	b, err := NewBank([]Question{
		{ID: 7, Prompt: "2 + 2?", Options: []string{"3", "4", "5", "6"}, CorrectAnswer: "4"},
	})
	require.NoError(t, err)

	s := NewSession(b)
	assert.True(t, s.IsLast())
	require.NoError(t, s.SelectAnswer("4"))
	tr, err := s.Advance()
	require.NoError(t, err)
	assert.Equal(t, TransitionCompleted, tr)
	assert.Equal(t, 100.0, s.Percentage())
}

func TestResults_Breakdown(t *testing.T) {
	s := play(t, []string{"Paris", "Venus", "Leonardo da Vinci", "Indian Ocean", "Gold"})

	res := s.Results()
	assert.Equal(t, 3, res.Score)
	assert.Equal(t, 5, res.Total)
	assert.Equal(t, 60, res.RoundedPercentage())

	missed := res.Missed()
	require.Len(t, missed, 2)
	assert.Equal(t, 2, missed[0].QuestionID)
	assert.Equal(t, "Mars", missed[0].CorrectAnswer)
	assert.Equal(t, "Venus", missed[0].Answer)
	assert.Equal(t, 4, missed[1].QuestionID)
}

func TestResults_RoundedPercentage(t *testing.T) {
	assert.Equal(t, 67, Results{Percentage: 200.0 / 3}.RoundedPercentage())
	assert.Equal(t, 33, Results{Percentage: 100.0 / 3}.RoundedPercentage())
	assert.Equal(t, 0, Results{}.RoundedPercentage())
}
