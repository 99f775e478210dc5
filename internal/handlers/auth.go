package handlers

import (
	"net/http"

	"github.com/Abhinav-Vishwakarma/CampusVerse-sub000/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type RegisterRequest struct {
	Name            string `json:"name" binding:"required,min=1,max=100" example:"Asha Verma"`
	Email           string `json:"email" binding:"required,email" example:"asha@campus.edu"`
	Password        string `json:"password" binding:"required,min=6" example:"password123"`
	Role            string `json:"role" binding:"required,oneof=student faculty" example:"student"`
	AdmissionNumber string `json:"admission_number" example:"CV2023041"`
	Branch          string `json:"branch" example:"CSE"`
	Section         string `json:"section" example:"A"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"asha@campus.edu"`
	Password string `json:"password" binding:"required" example:"password123"`
}

type AuthResponse struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIs..."`
}

// Register godoc
// @Summary      Register a new user
// @Description  Create a student or faculty account and return a JWT token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Registration data"
// @Success      201 {object} AuthResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	token, err := h.authService.Register(services.RegisterInput{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		Role:            req.Role,
		AdmissionNumber: req.AdmissionNumber,
		Branch:          req.Branch,
		Section:         req.Section,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{Token: token})
}

// Login godoc
// @Summary      Login
// @Description  Authenticate a user and return a JWT token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login data"
// @Success      200 {object} AuthResponse
// @Failure      401 {object} ErrorResponse
// @Router       /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, AuthResponse{Token: token})
}
