package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Abhinav-Vishwakarma/CampusVerse-sub000/internal/services"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	quizService *services.QuizService
	authService *services.AuthService
}

func NewQuizHandler(quizService *services.QuizService, authService *services.AuthService) *QuizHandler {
	return &QuizHandler{quizService: quizService, authService: authService}
}

type VerifyCodeRequest struct {
	Code string `json:"code" binding:"required" example:"K7KX2P"`
}

type VerifyCodeResponse struct {
	Valid   bool   `json:"valid"`
	QuizID  uint   `json:"quiz_id,omitempty"`
	Message string `json:"message,omitempty"`
}

// ListQuizzes godoc
// @Summary      List quizzes for the authenticated faculty
// @Tags         quizzes
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} Quiz
// @Failure      401 {object} ErrorResponse
// @Router       /api/v1/quizzes [get]
func (h *QuizHandler) ListQuizzes(c *gin.Context) {
	facultyID := c.GetUint("user_id")

	quizzes, err := h.quizService.ListByFaculty(facultyID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"quizzes": quizzes})
}

// CreateQuiz godoc
// @Summary      Create a quiz
// @Description  Create a quiz with its question set and timing window
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body services.CreateQuizInput true "Quiz definition"
// @Success      201 {object} Quiz
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/quizzes [post]
func (h *QuizHandler) CreateQuiz(c *gin.Context) {
	facultyID := c.GetUint("user_id")

	var input services.CreateQuizInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	quiz, err := h.quizService.CreateQuiz(facultyID, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"quiz": quiz})
}

// GetQuiz godoc
// @Summary      Get a quiz with its answer key
// @Description  Owner-only view including correct options
// @Tags         quizzes
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Quiz ID"
// @Success      200 {object} Quiz
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/quizzes/{id} [get]
func (h *QuizHandler) GetQuiz(c *gin.Context) {
	facultyID := c.GetUint("user_id")
	quizID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid quiz id"})
		return
	}

	quiz, err := h.quizService.GetQuizByID(uint(quizID), facultyID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"quiz": quiz})
}

// TakeQuiz godoc
// @Summary      Get a quiz for taking
// @Description  Student view with lifecycle state; questions appear only while open and never include the answer key
// @Tags         quizzes
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Quiz ID"
// @Success      200 {object} services.StudentQuizView
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/quizzes/{id}/take [get]
func (h *QuizHandler) TakeQuiz(c *gin.Context) {
	studentID := c.GetUint("user_id")
	quizID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid quiz id"})
		return
	}

	view, err := h.quizService.GetForStudent(uint(quizID), studentID, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"quiz": view})
}

// ListAvailable godoc
// @Summary      List quizzes available to the authenticated student
// @Description  Active, in-scope quizzes the student has not attempted yet
// @Tags         quizzes
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} Quiz
// @Failure      401 {object} ErrorResponse
// @Router       /api/v1/quizzes/available [get]
func (h *QuizHandler) ListAvailable(c *gin.Context) {
	studentID := c.GetUint("user_id")

	student, err := h.authService.GetUser(studentID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
		return
	}

	quizzes, err := h.quizService.ListAvailable(student, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}

	// Strip questions and codes from the listing; students get questions
	// through the take endpoint only.
	for i := range quizzes {
		quizzes[i].Questions = nil
		quizzes[i].Code = ""
	}

	c.JSON(http.StatusOK, gin.H{"quizzes": quizzes})
}

// VerifyCode godoc
// @Summary      Resolve an access code
// @Description  Case-insensitive match against active, in-window quizzes only
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body VerifyCodeRequest true "Access code"
// @Success      200 {object} VerifyCodeResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/quizzes/verify-code [post]
func (h *QuizHandler) VerifyCode(c *gin.Context) {
	var req VerifyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	quiz, err := h.quizService.VerifyCode(req.Code, time.Now())
	if err != nil {
		c.JSON(http.StatusOK, VerifyCodeResponse{Valid: false, Message: "invalid or expired code"})
		return
	}

	c.JSON(http.StatusOK, VerifyCodeResponse{Valid: true, QuizID: quiz.ID})
}

// CancelQuiz godoc
// @Summary      Cancel a quiz
// @Description  Deactivate a quiz; students who have not attempted see it as cancelled
// @Tags         quizzes
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Quiz ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/quizzes/{id}/cancel [post]
func (h *QuizHandler) CancelQuiz(c *gin.Context) {
	facultyID := c.GetUint("user_id")
	quizID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid quiz id"})
		return
	}

	if err := h.quizService.Cancel(uint(quizID), facultyID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "quiz cancelled"})
}

// DeleteQuiz godoc
// @Summary      Delete a quiz
// @Description  Remove a quiz definition; refused while attempts reference it
// @Tags         quizzes
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Quiz ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/quizzes/{id} [delete]
func (h *QuizHandler) DeleteQuiz(c *gin.Context) {
	facultyID := c.GetUint("user_id")
	quizID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid quiz id"})
		return
	}

	if err := h.quizService.Delete(uint(quizID), facultyID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "quiz deleted"})
}
