package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travelguide/internal/models/request_models"
	"travelguide/internal/services"
	"travelguide/pkg/middleware"
	"travelguide/pkg/utils"
)

type ExperienceController struct {
	experienceService services.ExperienceServiceInterface
}

func NewExperienceController(experienceService services.ExperienceServiceInterface) *ExperienceController {
	return &ExperienceController{
		experienceService: experienceService,
	}
}

// ListExperiences godoc
// @Summary List experiences
// @Description Each item carries a short destination view (id, name, city, country).
// @Tags Experiences
// @Produce json
// @Param destination query string false "Destination ID"
// @Param type query string false "activity|restaurant|accommodation|transport|attraction"
// @Param popular query bool false "Only popular experiences"
// @Success 200 {object} utils.APIResponse
// @Router /api/experiences [get]
func (e *ExperienceController) ListExperiences(c *gin.Context) {
	filter := request_models.ExperienceFilter{
		Destination: c.Query("destination"),
		Type:        c.Query("type"),
		Popular:     c.Query("popular") == "true",
	}

	experiences, err := e.experienceService.ListExperiences(c.Request.Context(), filter)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, experiences, "Experiences retrieved successfully")
}

// GetExperience godoc
// @Summary Get an experience with its destination
// @Tags Experiences
// @Produce json
// @Param id path string true "Experience ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/experiences/{id} [get]
func (e *ExperienceController) GetExperience(c *gin.Context) {
	experience, err := e.experienceService.GetExperience(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, experience, "Experience retrieved successfully")
}

// CreateExperience godoc
// @Summary Create an experience
// @Tags Experiences
// @Accept json
// @Produce json
// @Param request body request_models.CreateExperienceRequest true "Experience"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/experiences [post]
func (e *ExperienceController) CreateExperience(c *gin.Context) {
	var req request_models.CreateExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleServiceError(c, utils.BindingError(err))
		return
	}

	experience, err := e.experienceService.CreateExperience(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, experience, "Experience created successfully")
}

// AddReview godoc
// @Summary Review an experience
// @Tags Experiences
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Experience ID"
// @Param request body request_models.AddReviewRequest true "Review"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/experiences/{id}/reviews [post]
func (e *ExperienceController) AddReview(c *gin.Context) {
	if _, ok := middleware.CurrentUserID(c); !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req request_models.AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleServiceError(c, utils.BindingError(err))
		return
	}

	experience, err := e.experienceService.AddReview(c.Request.Context(), c.Param("id"), middleware.CurrentUserName(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, experience, "Review added successfully")
}
