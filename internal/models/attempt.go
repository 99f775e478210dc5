package models

import (
	"time"

	"gorm.io/datatypes"
)

// Attempt is a student's single graded submission for a quiz. The composite
// unique index on (quiz_id, student_id) is what enforces one attempt per
// student even when two submissions race.
type Attempt struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	QuizID      uint           `gorm:"not null;uniqueIndex:idx_attempt_quiz_student" json:"quiz_id"`
	Quiz        Quiz           `gorm:"foreignKey:QuizID" json:"quiz,omitempty"`
	StudentID   uint           `gorm:"not null;uniqueIndex:idx_attempt_quiz_student" json:"student_id"`
	Student     User           `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Answers     datatypes.JSON `gorm:"not null" json:"answers"`
	StartTime   time.Time      `json:"start_time"`
	EndTime     time.Time      `json:"end_time"`
	SubmittedAt time.Time      `gorm:"not null;index" json:"submitted_at"`
	Score       int            `gorm:"not null" json:"score"`
	Percentage  int            `gorm:"not null" json:"percentage"`
	Passed      bool           `gorm:"not null" json:"passed"`
}
