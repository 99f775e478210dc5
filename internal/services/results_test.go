package services

import (
	"testing"
	"time"

	"github.com/Abhinav-Vishwakarma/CampusVerse-sub000/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultsForQuiz(t *testing.T) {
	db := newTestDB(t)
	quizzes := NewQuizService(db)
	attempts := NewAttemptService(db, NewScoringService())
	results := NewResultsService(db)

	faculty := createTestUser(t, db, models.RoleFaculty, "", "")
	alice := createTestUser(t, db, models.RoleStudent, "CSE", "A")
	bob := createTestUser(t, db, models.RoleStudent, "CSE", "A")
	now := time.Now()

	quiz, err := quizzes.CreateQuiz(faculty.ID, validQuizInput(now.Add(-time.Minute), now.Add(time.Hour)))
	require.NoError(t, err)

	_, err = attempts.Record(quiz.ID, alice.ID, []AnswerInput{{Question: 0, SelectedOption: intPtr(1)}}, now, now)
	require.NoError(t, err)
	_, err = attempts.Record(quiz.ID, bob.ID, nil, now, now)
	require.NoError(t, err)

	listed, err := results.ForQuiz(quiz.ID, faculty.ID)
	require.NoError(t, err)
	require.Len(t, listed, 2)

	// Student display fields ride along for the instructor view.
	for _, a := range listed {
		assert.NotZero(t, a.Student.ID)
		assert.NotEmpty(t, a.Student.Email)
	}

	t.Run("wrong owner", func(t *testing.T) {
		other := createTestUser(t, db, models.RoleFaculty, "", "")
		_, err := results.ForQuiz(quiz.ID, other.ID)
		assert.ErrorIs(t, err, ErrQuizNotFound)
	})

	t.Run("no attempts yields empty list", func(t *testing.T) {
		empty, err := quizzes.CreateQuiz(faculty.ID, validQuizInput(now.Add(-time.Minute), now.Add(time.Hour)))
		require.NoError(t, err)

		listed, err := results.ForQuiz(empty.ID, faculty.ID)
		require.NoError(t, err)
		assert.Empty(t, listed)
	})
}

func TestResultsForStudent(t *testing.T) {
	db := newTestDB(t)
	quizzes := NewQuizService(db)
	attempts := NewAttemptService(db, NewScoringService())
	results := NewResultsService(db)

	faculty := createTestUser(t, db, models.RoleFaculty, "", "")
	student := createTestUser(t, db, models.RoleStudent, "CSE", "A")
	now := time.Now()

	first, err := quizzes.CreateQuiz(faculty.ID, validQuizInput(now.Add(-time.Minute), now.Add(time.Hour)))
	require.NoError(t, err)
	second, err := quizzes.CreateQuiz(faculty.ID, validQuizInput(now.Add(-time.Minute), now.Add(time.Hour)))
	require.NoError(t, err)

	_, err = attempts.Record(first.ID, student.ID, nil, now, now)
	require.NoError(t, err)
	_, err = attempts.Record(second.ID, student.ID, nil, now, now)
	require.NoError(t, err)

	history, err := results.ForStudent(student.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)

	// Quiz metadata rides along for display.
	for _, a := range history {
		assert.NotEmpty(t, a.Quiz.Title)
		assert.Equal(t, 10, a.Quiz.TotalMarks)
	}

	t.Run("no attempts yields empty list", func(t *testing.T) {
		other := createTestUser(t, db, models.RoleStudent, "CSE", "A")
		history, err := results.ForStudent(other.ID)
		require.NoError(t, err)
		assert.Empty(t, history)
	})
}
