package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Abhinav-Vishwakarma/CampusVerse-sub000/internal/services"

	"github.com/gin-gonic/gin"
)

type AttemptHandler struct {
	attemptService *services.AttemptService
}

func NewAttemptHandler(attemptService *services.AttemptService) *AttemptHandler {
	return &AttemptHandler{attemptService: attemptService}
}

type SubmitAttemptRequest struct {
	Answers   []services.AnswerInput `json:"answers" binding:"required"`
	StartTime time.Time              `json:"start_time" binding:"required"`
	EndTime   time.Time              `json:"end_time" binding:"required"`
}

// SubmitAttempt godoc
// @Summary      Submit a quiz attempt
// @Description  Grades and records the submission; the server clock decides window validity
// @Tags         attempts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Quiz ID"
// @Param        request body SubmitAttemptRequest true "Answer sheet"
// @Success      201 {object} Attempt
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/quizzes/{id}/attempt [post]
func (h *AttemptHandler) SubmitAttempt(c *gin.Context) {
	studentID := c.GetUint("user_id")
	quizID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid quiz id"})
		return
	}

	var req SubmitAttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	attempt, err := h.attemptService.Record(uint(quizID), studentID, req.Answers, req.StartTime, req.EndTime)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"attempt": attempt})
}
