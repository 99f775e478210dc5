package handlers

import (
	"errors"
	"net/http"

	"github.com/Abhinav-Vishwakarma/CampusVerse-sub000/internal/models"
	"github.com/Abhinav-Vishwakarma/CampusVerse-sub000/internal/services"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error  string `json:"error" example:"something went wrong"`
	Reason string `json:"reason,omitempty" example:"ALREADY_ATTEMPTED"`
}

type MessageResponse struct {
	Message string `json:"message" example:"operation successful"`
}

// Type aliases so swag can resolve models in annotations.
type Quiz = models.Quiz
type Attempt = models.Attempt
type CreditAccount = models.CreditAccount
type Roadmap = models.Roadmap

// respondError maps service errors to the HTTP surface: lifecycle
// rejections carry their reason code, conflicts are 409, everything
// unclassified is 500.
func respondError(c *gin.Context, err error) {
	var stateErr *services.StateError
	if errors.As(err, &stateErr) {
		status := http.StatusForbidden
		if stateErr.Reason == services.ReasonAlreadyAttempted {
			status = http.StatusConflict
		}
		c.JSON(status, ErrorResponse{Error: stateErr.Message, Reason: stateErr.Reason})
		return
	}

	switch {
	case errors.Is(err, services.ErrInvalidSubmission):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrQuizNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrQuizHasAttempts):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrInsufficientCredits):
		c.JSON(http.StatusPaymentRequired, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrAccessDenied):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrAIUnavailable):
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}
