package services

import (
	"encoding/json"
	"errors"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"github.com/Abhinav-Vishwakarma/CampusVerse-sub000/internal/models"

	"gorm.io/gorm"
)

type QuizService struct {
	db *gorm.DB
}

func NewQuizService(db *gorm.DB) *QuizService {
	return &QuizService{db: db}
}

type QuestionInput struct {
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectOption int      `json:"correct_option"`
	Marks         int      `json:"marks"`
}

type CreateQuizInput struct {
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Course       string          `json:"course"`
	Branch       string          `json:"branch"`
	Section      string          `json:"section"`
	Duration     int             `json:"duration"`
	TotalMarks   int             `json:"total_marks"`
	PassingMarks int             `json:"passing_marks"`
	StartDate    time.Time       `json:"start_date"`
	EndDate      time.Time       `json:"end_date"`
	Questions    []QuestionInput `json:"questions"`
}

func validateQuizInput(input CreateQuizInput) error {
	if !input.StartDate.Before(input.EndDate) {
		return errors.New("start_date must be before end_date")
	}
	if input.Duration <= 0 {
		return errors.New("duration must be positive")
	}
	if len(input.Questions) == 0 {
		return errors.New("quiz must have at least one question")
	}
	sum := 0
	for _, q := range input.Questions {
		if strings.TrimSpace(q.Text) == "" {
			return errors.New("question text is required")
		}
		if len(q.Options) != models.OptionCount {
			return errors.New("each question must have exactly 4 options")
		}
		for _, o := range q.Options {
			if strings.TrimSpace(o) == "" {
				return errors.New("option text is required")
			}
		}
		if q.CorrectOption < 0 || q.CorrectOption >= models.OptionCount {
			return errors.New("correct_option must be between 0 and 3")
		}
		if q.Marks <= 0 {
			return errors.New("question marks must be positive")
		}
		sum += q.Marks
	}
	if sum != input.TotalMarks {
		return errors.New("total_marks must equal the sum of question marks")
	}
	if input.PassingMarks < 0 || input.PassingMarks > input.TotalMarks {
		return errors.New("passing_marks must not exceed total_marks")
	}
	return nil
}

func (s *QuizService) CreateQuiz(facultyID uint, input CreateQuizInput) (*models.Quiz, error) {
	if err := validateQuizInput(input); err != nil {
		return nil, err
	}

	quiz := models.Quiz{
		FacultyID:    facultyID,
		Title:        input.Title,
		Description:  input.Description,
		Course:       input.Course,
		Branch:       input.Branch,
		Section:      input.Section,
		Duration:     input.Duration,
		TotalMarks:   input.TotalMarks,
		PassingMarks: input.PassingMarks,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		IsActive:     true,
		Code:         s.generateUniqueCode(),
	}

	tx := s.db.Begin()
	if err := tx.Create(&quiz).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	for i, q := range input.Questions {
		opts, err := json.Marshal(q.Options)
		if err != nil {
			tx.Rollback()
			return nil, err
		}
		question := models.Question{
			QuizID:        quiz.ID,
			OrderNum:      i,
			Text:          q.Text,
			Options:       opts,
			CorrectOption: q.CorrectOption,
			Marks:         q.Marks,
		}
		if err := tx.Create(&question).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}
	tx.Commit()

	s.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_num ASC")
	}).First(&quiz, quiz.ID)
	return &quiz, nil
}

func (s *QuizService) GetQuizByID(quizID, facultyID uint) (*models.Quiz, error) {
	var quiz models.Quiz
	err := s.db.Where("id = ? AND faculty_id = ?", quizID, facultyID).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_num ASC")
		}).
		First(&quiz).Error
	if err != nil {
		return nil, ErrQuizNotFound
	}
	return &quiz, nil
}

func (s *QuizService) ListByFaculty(facultyID uint) ([]models.Quiz, error) {
	var quizzes []models.Quiz
	err := s.db.Where("faculty_id = ?", facultyID).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_num ASC")
		}).
		Order("created_at DESC").
		Find(&quizzes).Error
	if err != nil {
		return nil, err
	}
	return quizzes, nil
}

// ListAvailable returns in-scope quizzes a student can still take: active,
// window not yet closed, matching the student's branch/section (an empty
// scope field on the quiz matches everyone), and not already attempted.
func (s *QuizService) ListAvailable(student *models.User, now time.Time) ([]models.Quiz, error) {
	attempted := s.db.Model(&models.Attempt{}).
		Select("quiz_id").
		Where("student_id = ?", student.ID)

	var quizzes []models.Quiz
	err := s.db.Where("is_active = ?", true).
		Where("end_date >= ?", now).
		Where("(branch = '' OR branch = ?)", student.Branch).
		Where("(section = '' OR section = ?)", student.Section).
		Where("id NOT IN (?)", attempted).
		Order("start_date ASC").
		Find(&quizzes).Error
	if err != nil {
		return nil, err
	}
	return quizzes, nil
}

// StudentQuestion is a question stripped of its answer key for delivery to
// a student with an open quiz.
type StudentQuestion struct {
	ID       uint     `json:"id"`
	OrderNum int      `json:"order_num"`
	Text     string   `json:"text"`
	Options  []string `json:"options"`
	Marks    int      `json:"marks"`
}

type StudentQuizView struct {
	ID           uint              `json:"id"`
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	Course       string            `json:"course"`
	Duration     int               `json:"duration"`
	TotalMarks   int               `json:"total_marks"`
	PassingMarks int               `json:"passing_marks"`
	StartDate    time.Time         `json:"start_date"`
	EndDate      time.Time         `json:"end_date"`
	State        AttemptState      `json:"state"`
	Questions    []StudentQuestion `json:"questions,omitempty"`
}

// GetForStudent resolves the quiz and the student's lifecycle state.
// Questions are included only while the quiz is open for this student, so
// the answer key and the prompts never leak before the window.
func (s *QuizService) GetForStudent(quizID, studentID uint, now time.Time) (*StudentQuizView, error) {
	var quiz models.Quiz
	err := s.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_num ASC")
	}).First(&quiz, quizID).Error
	if err != nil {
		return nil, ErrQuizNotFound
	}

	var count int64
	s.db.Model(&models.Attempt{}).
		Where("quiz_id = ? AND student_id = ?", quizID, studentID).
		Count(&count)

	view := &StudentQuizView{
		ID:           quiz.ID,
		Title:        quiz.Title,
		Description:  quiz.Description,
		Course:       quiz.Course,
		Duration:     quiz.Duration,
		TotalMarks:   quiz.TotalMarks,
		PassingMarks: quiz.PassingMarks,
		StartDate:    quiz.StartDate,
		EndDate:      quiz.EndDate,
		State:        EvaluateState(&quiz, count > 0, now),
	}

	if view.State != StateOpen {
		return view, nil
	}

	for _, q := range quiz.Questions {
		opts, err := q.OptionList()
		if err != nil {
			return nil, err
		}
		view.Questions = append(view.Questions, StudentQuestion{
			ID:       q.ID,
			OrderNum: q.OrderNum,
			Text:     q.Text,
			Options:  opts,
			Marks:    q.Marks,
		})
	}
	return view, nil
}

var codePattern = regexp.MustCompile(`^[A-Z0-9]{6}$`)

// VerifyCode resolves an access code to an active, in-window quiz. Codes
// for expired or not-yet-started quizzes are invalid on this path; entry by
// code is a shortcut, not a bypass of the window.
func (s *QuizService) VerifyCode(code string, now time.Time) (*models.Quiz, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if !codePattern.MatchString(normalized) {
		return nil, ErrInvalidCode
	}

	var quiz models.Quiz
	err := s.db.Where(
		"code = ? AND is_active = ? AND start_date <= ? AND end_date >= ?",
		normalized, true, now, now,
	).First(&quiz).Error
	if err != nil {
		return nil, ErrInvalidCode
	}
	return &quiz, nil
}

// Cancel deactivates a quiz. Students who have not attempted see it as
// cancelled from then on; recorded attempts are untouched.
func (s *QuizService) Cancel(quizID, facultyID uint) error {
	result := s.db.Model(&models.Quiz{}).
		Where("id = ? AND faculty_id = ?", quizID, facultyID).
		Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrQuizNotFound
	}
	return nil
}

// Delete removes a quiz definition and its questions. Refused while any
// attempt references the quiz.
func (s *QuizService) Delete(quizID, facultyID uint) error {
	var quiz models.Quiz
	if err := s.db.Where("id = ? AND faculty_id = ?", quizID, facultyID).First(&quiz).Error; err != nil {
		return ErrQuizNotFound
	}

	var attempts int64
	s.db.Model(&models.Attempt{}).Where("quiz_id = ?", quizID).Count(&attempts)
	if attempts > 0 {
		return ErrQuizHasAttempts
	}

	tx := s.db.Begin()
	if err := tx.Where("quiz_id = ?", quizID).Delete(&models.Question{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Delete(&quiz).Error; err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func (s *QuizService) generateUniqueCode() string {
	for {
		b := make([]byte, 6)
		for i := range b {
			b[i] = codeAlphabet[rand.Intn(len(codeAlphabet))]
		}
		code := string(b)

		var count int64
		s.db.Model(&models.Quiz{}).
			Where("code = ? AND is_active = ?", code, true).
			Count(&count)
		if count == 0 {
			return code
		}
	}
}
