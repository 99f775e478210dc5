package handlers

import (
	"net/http"

	"github.com/Abhinav-Vishwakarma/CampusVerse-sub000/internal/services"

	"github.com/gin-gonic/gin"
)

type RoadmapHandler struct {
	roadmapService *services.RoadmapService
}

func NewRoadmapHandler(roadmapService *services.RoadmapService) *RoadmapHandler {
	return &RoadmapHandler{roadmapService: roadmapService}
}

type GenerateRoadmapRequest struct {
	Topic  string `json:"topic" binding:"required,min=2,max=255" example:"Backend development with Go"`
	Months int    `json:"months" binding:"required,min=1,max=24" example:"6"`
}

// GenerateRoadmap godoc
// @Summary      Generate a learning roadmap
// @Description  Charges the credit ledger and returns a typed, validated phase plan
// @Tags         ai
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body GenerateRoadmapRequest true "Roadmap request"
// @Success      201 {object} Roadmap
// @Failure      400 {object} ErrorResponse
// @Failure      402 {object} ErrorResponse
// @Router       /api/v1/ai/roadmap [post]
func (h *RoadmapHandler) GenerateRoadmap(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req GenerateRoadmapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	roadmap, err := h.roadmapService.Generate(userID, req.Topic, req.Months)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"roadmap": roadmap})
}

// ListRoadmaps godoc
// @Summary      List the authenticated user's roadmaps
// @Tags         ai
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} Roadmap
// @Failure      401 {object} ErrorResponse
// @Router       /api/v1/ai/roadmaps [get]
func (h *RoadmapHandler) ListRoadmaps(c *gin.Context) {
	userID := c.GetUint("user_id")

	roadmaps, err := h.roadmapService.ListByUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"roadmaps": roadmaps})
}
