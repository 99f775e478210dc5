package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Abhinav-Vishwakarma/CampusVerse-sub000/internal/models"

	"gorm.io/gorm"
)

type AttemptService struct {
	db      *gorm.DB
	scoring *ScoringService
}

func NewAttemptService(db *gorm.DB, scoring *ScoringService) *AttemptService {
	return &AttemptService{db: db, scoring: scoring}
}

// AnswerInput pairs a question index with the selected option index.
// SelectedOption is nil when the question was left unanswered.
type AnswerInput struct {
	Question       int  `json:"question"`
	SelectedOption *int `json:"selected_option"`
}

// Record validates the window server-side, grades the submission and
// persists the attempt. The client's countdown is advisory only; the
// server clock decides whether the window is open. A duplicate submission
// that slips past the lifecycle check still fails on the (quiz_id,
// student_id) unique index, so concurrent submits can never produce two
// attempts.
func (s *AttemptService) Record(quizID, studentID uint, answers []AnswerInput, clientStart, clientEnd time.Time) (*models.Attempt, error) {
	var quiz models.Quiz
	err := s.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_num ASC")
	}).First(&quiz, quizID).Error
	if err != nil {
		return nil, ErrQuizNotFound
	}

	var prior int64
	s.db.Model(&models.Attempt{}).
		Where("quiz_id = ? AND student_id = ?", quizID, studentID).
		Count(&prior)

	now := time.Now()
	if err := CheckSubmittable(&quiz, prior > 0, now); err != nil {
		return nil, err
	}

	selected := make([]*int, len(quiz.Questions))
	for _, a := range answers {
		if a.Question < 0 || a.Question >= len(quiz.Questions) {
			return nil, fmt.Errorf("%w: answer references an unknown question index", ErrInvalidSubmission)
		}
		if a.SelectedOption != nil && (*a.SelectedOption < 0 || *a.SelectedOption >= models.OptionCount) {
			return nil, fmt.Errorf("%w: selected_option must be between 0 and 3", ErrInvalidSubmission)
		}
		selected[a.Question] = a.SelectedOption
	}

	result := s.scoring.Score(quiz.Questions, selected, quiz.PassingMarks)

	raw, err := json.Marshal(selected)
	if err != nil {
		return nil, err
	}

	attempt := models.Attempt{
		QuizID:      quizID,
		StudentID:   studentID,
		Answers:     raw,
		StartTime:   clientStart,
		EndTime:     clientEnd,
		SubmittedAt: now,
		Score:       result.Score,
		Percentage:  result.Percentage,
		Passed:      result.Passed,
	}
	if err := s.db.Create(&attempt).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyAttempted
		}
		return nil, err
	}
	return &attempt, nil
}
