package services

import "errors"

var (
	ErrQuizNotFound        = errors.New("quiz not found")
	ErrAccessDenied        = errors.New("access denied")
	ErrInvalidCode         = errors.New("invalid or expired code")
	ErrQuizHasAttempts     = errors.New("quiz has recorded attempts and cannot be deleted")
	ErrInvalidSubmission   = errors.New("invalid submission")
	ErrInsufficientCredits = errors.New("insufficient credits")
	ErrAIUnavailable       = errors.New("ai generation is not configured")
)

// Reason codes carried by StateError so clients can render a precise
// message instead of re-deriving state from timestamps.
const (
	ReasonNotStarted       = "NOT_STARTED"
	ReasonWindowClosed     = "WINDOW_CLOSED"
	ReasonAlreadyAttempted = "ALREADY_ATTEMPTED"
	ReasonQuizCancelled    = "QUIZ_CANCELLED"
)

// StateError is a typed rejection from the attempt lifecycle.
type StateError struct {
	Reason  string
	Message string
}

func (e *StateError) Error() string { return e.Message }

var (
	ErrNotStarted       = &StateError{ReasonNotStarted, "quiz has not started yet"}
	ErrWindowClosed     = &StateError{ReasonWindowClosed, "quiz window has closed"}
	ErrAlreadyAttempted = &StateError{ReasonAlreadyAttempted, "quiz already attempted"}
	ErrQuizCancelled    = &StateError{ReasonQuizCancelled, "quiz has been cancelled"}
)
