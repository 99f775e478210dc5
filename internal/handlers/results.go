package handlers

import (
	"net/http"
	"strconv"

	"github.com/Abhinav-Vishwakarma/CampusVerse-sub000/internal/services"

	"github.com/gin-gonic/gin"
)

type ResultsHandler struct {
	resultsService *services.ResultsService
}

func NewResultsHandler(resultsService *services.ResultsService) *ResultsHandler {
	return &ResultsHandler{resultsService: resultsService}
}

// QuizResults godoc
// @Summary      List results for a quiz
// @Description  All attempts with student display fields, newest first
// @Tags         results
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Quiz ID"
// @Success      200 {array} Attempt
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/quizzes/{id}/results [get]
func (h *ResultsHandler) QuizResults(c *gin.Context) {
	facultyID := c.GetUint("user_id")
	quizID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid quiz id"})
		return
	}

	attempts, err := h.resultsService.ForQuiz(uint(quizID), facultyID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": attempts})
}

// MyAttempts godoc
// @Summary      List the authenticated student's attempt history
// @Description  Attempts joined with quiz metadata, newest first
// @Tags         results
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} Attempt
// @Failure      401 {object} ErrorResponse
// @Router       /api/v1/students/me/quiz-attempts [get]
func (h *ResultsHandler) MyAttempts(c *gin.Context) {
	studentID := c.GetUint("user_id")

	attempts, err := h.resultsService.ForStudent(studentID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"attempts": attempts})
}
