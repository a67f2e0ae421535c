package controllers

import (
	"github.com/gin-gonic/gin"

	"travelguide/internal/services"
	"travelguide/pkg/utils"
)

type SystemController struct {
	seedService services.SeedServiceInterface
}

func NewSystemController(seedService services.SeedServiceInterface) *SystemController {
	return &SystemController{
		seedService: seedService,
	}
}

// Health godoc
// @Summary Liveness probe
// @Tags System
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/health [get]
func (s *SystemController) Health(c *gin.Context) {
	utils.RespondSuccess(c, gin.H{"message": "Travel Guide API is running!"}, "ok")
}

// Seed godoc
// @Summary Replace all data with the demo catalog
// @Description Refused when APP_ENV is production.
// @Tags System
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /api/seed [post]
func (s *SystemController) Seed(c *gin.Context) {
	summary, err := s.seedService.Seed(c.Request.Context(), false)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summary, "Database seeded successfully")
}
