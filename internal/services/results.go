package services

import (
	"github.com/Abhinav-Vishwakarma/CampusVerse-sub000/internal/models"

	"gorm.io/gorm"
)

// ResultsService is the read-only side of attempts: listings for the quiz
// owner and per-student history. Missing results are an empty list, never
// an error.
type ResultsService struct {
	db *gorm.DB
}

func NewResultsService(db *gorm.DB) *ResultsService {
	return &ResultsService{db: db}
}

// ForQuiz returns every attempt on a quiz with student display fields,
// newest submission first. Only the owning faculty may read them.
func (s *ResultsService) ForQuiz(quizID, facultyID uint) ([]models.Attempt, error) {
	var quiz models.Quiz
	if err := s.db.Where("id = ? AND faculty_id = ?", quizID, facultyID).First(&quiz).Error; err != nil {
		return nil, ErrQuizNotFound
	}

	attempts := []models.Attempt{}
	err := s.db.Where("quiz_id = ?", quizID).
		Preload("Student").
		Order("submitted_at DESC").
		Find(&attempts).Error
	if err != nil {
		return nil, err
	}
	return attempts, nil
}

// ForStudent returns a student's attempt history joined with quiz metadata,
// newest submission first.
func (s *ResultsService) ForStudent(studentID uint) ([]models.Attempt, error) {
	attempts := []models.Attempt{}
	err := s.db.Where("student_id = ?", studentID).
		Preload("Quiz").
		Order("submitted_at DESC").
		Find(&attempts).Error
	if err != nil {
		return nil, err
	}
	return attempts, nil
}
