package services

import (
	"time"

	"github.com/Abhinav-Vishwakarma/CampusVerse-sub000/internal/models"
)

// AttemptState is the lifecycle state of one (quiz, student) pair.
type AttemptState string

const (
	StateScheduled AttemptState = "scheduled"
	StateOpen      AttemptState = "open"
	StateExpired   AttemptState = "expired"
	StateCompleted AttemptState = "completed"
	StateCancelled AttemptState = "cancelled"
)

// EvaluateState resolves the lifecycle state for a (quiz, student) pair at
// the given instant. Completed wins over everything else; Cancelled
// overrides the timing states. The window is inclusive on both ends.
func EvaluateState(quiz *models.Quiz, hasAttempt bool, now time.Time) AttemptState {
	switch {
	case hasAttempt:
		return StateCompleted
	case !quiz.IsActive:
		return StateCancelled
	case now.Before(quiz.StartDate):
		return StateScheduled
	case now.After(quiz.EndDate):
		return StateExpired
	default:
		return StateOpen
	}
}

// CheckSubmittable returns nil when a submission is allowed right now, or
// the typed StateError the caller should surface. This is the single place
// ambiguous states resolve into an error; handlers must not re-derive state
// from raw timestamps.
func CheckSubmittable(quiz *models.Quiz, hasAttempt bool, now time.Time) error {
	switch EvaluateState(quiz, hasAttempt, now) {
	case StateCompleted:
		return ErrAlreadyAttempted
	case StateCancelled:
		return ErrQuizCancelled
	case StateScheduled:
		return ErrNotStarted
	case StateExpired:
		return ErrWindowClosed
	}
	return nil
}
