package services

import (
	"testing"
	"time"

	"github.com/Abhinav-Vishwakarma/CampusVerse-sub000/internal/models"

	"github.com/stretchr/testify/assert"
)

func windowQuiz(start, end time.Time, active bool) *models.Quiz {
	return &models.Quiz{
		Title:     "Lifecycle",
		StartDate: start,
		EndDate:   end,
		IsActive:  active,
	}
}

func TestEvaluateState(t *testing.T) {
	now := time.Now()
	hour := time.Hour

	tests := []struct {
		name       string
		quiz       *models.Quiz
		hasAttempt bool
		want       AttemptState
	}{
		{"before window", windowQuiz(now.Add(hour), now.Add(2*hour), true), false, StateScheduled},
		{"inside window", windowQuiz(now.Add(-hour), now.Add(hour), true), false, StateOpen},
		{"after window", windowQuiz(now.Add(-2*hour), now.Add(-hour), true), false, StateExpired},
		{"attempted inside window", windowQuiz(now.Add(-hour), now.Add(hour), true), true, StateCompleted},
		{"attempted after window", windowQuiz(now.Add(-2*hour), now.Add(-hour), true), true, StateCompleted},
		{"cancelled inside window", windowQuiz(now.Add(-hour), now.Add(hour), false), false, StateCancelled},
		{"cancelled before window", windowQuiz(now.Add(hour), now.Add(2*hour), false), false, StateCancelled},
		// Completed wins even over cancellation.
		{"attempted then cancelled", windowQuiz(now.Add(-hour), now.Add(hour), false), true, StateCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EvaluateState(tt.quiz, tt.hasAttempt, now))
		})
	}
}

func TestEvaluateState_WindowBoundariesInclusive(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	quiz := windowQuiz(start, end, true)

	assert.Equal(t, StateOpen, EvaluateState(quiz, false, start))
	assert.Equal(t, StateOpen, EvaluateState(quiz, false, end))
	assert.Equal(t, StateScheduled, EvaluateState(quiz, false, start.Add(-time.Second)))
	assert.Equal(t, StateExpired, EvaluateState(quiz, false, end.Add(time.Second)))
}

func TestCheckSubmittable(t *testing.T) {
	now := time.Now()
	hour := time.Hour

	tests := []struct {
		name       string
		quiz       *models.Quiz
		hasAttempt bool
		wantErr    error
	}{
		{"open", windowQuiz(now.Add(-hour), now.Add(hour), true), false, nil},
		{"not started", windowQuiz(now.Add(hour), now.Add(2*hour), true), false, ErrNotStarted},
		{"window closed", windowQuiz(now.Add(-2*hour), now.Add(-hour), true), false, ErrWindowClosed},
		{"already attempted", windowQuiz(now.Add(-hour), now.Add(hour), true), true, ErrAlreadyAttempted},
		{"cancelled", windowQuiz(now.Add(-hour), now.Add(hour), false), false, ErrQuizCancelled},
		// AlreadyAttempted outranks cancellation and timing.
		{"attempted on cancelled quiz", windowQuiz(now.Add(-2*hour), now.Add(-hour), false), true, ErrAlreadyAttempted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckSubmittable(tt.quiz, tt.hasAttempt, now)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestStateError_CarriesReason(t *testing.T) {
	assert.Equal(t, ReasonNotStarted, ErrNotStarted.Reason)
	assert.Equal(t, ReasonWindowClosed, ErrWindowClosed.Reason)
	assert.Equal(t, ReasonAlreadyAttempted, ErrAlreadyAttempted.Reason)
	assert.Equal(t, ReasonQuizCancelled, ErrQuizCancelled.Reason)
}
