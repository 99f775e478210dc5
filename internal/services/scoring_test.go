package services

import (
	"encoding/json"
	"testing"

	"github.com/Abhinav-Vishwakarma/CampusVerse-sub000/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustOptions(t *testing.T, opts []string) []byte {
	t.Helper()
	raw, err := json.Marshal(opts)
	require.NoError(t, err)
	return raw
}

func twoQuestionSet(t *testing.T) []models.Question {
	opts := mustOptions(t, []string{"a", "b", "c", "d"})
	return []models.Question{
		{OrderNum: 0, Text: "Q1", Options: opts, CorrectOption: 1, Marks: 5},
		{OrderNum: 1, Text: "Q2", Options: opts, CorrectOption: 2, Marks: 5},
	}
}

func intPtr(v int) *int { return &v }

func TestScore_OneCorrectOneWrong(t *testing.T) {
	scoring := NewScoringService()
	questions := twoQuestionSet(t)

	// Q1 answered correctly, Q2 incorrectly; passing at 5 of 10.
	result := scoring.Score(questions, []*int{intPtr(1), intPtr(0)}, 5)

	assert.Equal(t, 5, result.Score)
	assert.Equal(t, 50, result.Percentage)
	assert.True(t, result.Passed)
}

func TestScore_AllUnanswered(t *testing.T) {
	scoring := NewScoringService()
	questions := twoQuestionSet(t)

	result := scoring.Score(questions, []*int{nil, nil}, 5)

	assert.Equal(t, 0, result.Score)
	assert.Equal(t, 0, result.Percentage)
	assert.False(t, result.Passed)
}

func TestScore_Deterministic(t *testing.T) {
	scoring := NewScoringService()
	questions := twoQuestionSet(t)
	answers := []*int{intPtr(1), nil}

	first := scoring.Score(questions, answers, 5)
	second := scoring.Score(questions, answers, 5)

	assert.Equal(t, first, second)
}

func TestScore_NoNegativeMarking(t *testing.T) {
	scoring := NewScoringService()
	questions := twoQuestionSet(t)

	// Both wrong must score the same as both unanswered.
	wrong := scoring.Score(questions, []*int{intPtr(0), intPtr(0)}, 5)
	blank := scoring.Score(questions, []*int{nil, nil}, 5)

	assert.Equal(t, blank.Score, wrong.Score)
	assert.Equal(t, 0, wrong.Score)
}

func TestScore_PercentageRounding(t *testing.T) {
	scoring := NewScoringService()
	opts := mustOptions(t, []string{"a", "b", "c", "d"})
	questions := []models.Question{
		{OrderNum: 0, Options: opts, CorrectOption: 0, Marks: 1},
		{OrderNum: 1, Options: opts, CorrectOption: 0, Marks: 1},
		{OrderNum: 2, Options: opts, CorrectOption: 0, Marks: 1},
	}

	// 1/3 = 33.33..% rounds to 33, 2/3 = 66.66..% rounds to 67.
	one := scoring.Score(questions, []*int{intPtr(0), nil, nil}, 2)
	two := scoring.Score(questions, []*int{intPtr(0), intPtr(0), nil}, 2)

	assert.Equal(t, 33, one.Percentage)
	assert.Equal(t, 67, two.Percentage)
	assert.False(t, one.Passed)
	assert.True(t, two.Passed)
}

func TestScore_ShortAnswerSlice(t *testing.T) {
	scoring := NewScoringService()
	questions := twoQuestionSet(t)

	// Fewer answers than questions: missing trailing entries are unanswered.
	result := scoring.Score(questions, []*int{intPtr(1)}, 5)

	assert.Equal(t, 5, result.Score)
}
