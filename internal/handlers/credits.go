package handlers

import (
	"net/http"

	"github.com/Abhinav-Vishwakarma/CampusVerse-sub000/internal/services"

	"github.com/gin-gonic/gin"
)

type CreditHandler struct {
	creditService *services.CreditService
}

func NewCreditHandler(creditService *services.CreditService) *CreditHandler {
	return &CreditHandler{creditService: creditService}
}

// GetCredits godoc
// @Summary      Get the authenticated user's credit balance and history
// @Tags         credits
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} CreditAccount
// @Failure      401 {object} ErrorResponse
// @Router       /api/v1/credits [get]
func (h *CreditHandler) GetCredits(c *gin.Context) {
	userID := c.GetUint("user_id")

	account, err := h.creditService.GetAccount(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	history, err := h.creditService.History(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total":     account.Total,
		"used":      account.Used,
		"remaining": account.Remaining(),
		"history":   history,
	})
}
