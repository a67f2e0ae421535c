package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"travelguide/internal/models/request_models"
	"travelguide/internal/services"
	"travelguide/pkg/utils"
)

type DestinationController struct {
	destinationService services.DestinationServiceInterface
}

func NewDestinationController(destinationService services.DestinationServiceInterface) *DestinationController {
	return &DestinationController{
		destinationService: destinationService,
	}
}

// ListDestinations godoc
// @Summary List destinations
// @Description Filter by category and price range, search name/country/city/tags. Sorted by rating then newest.
// @Tags Destinations
// @Produce json
// @Param category query string false "adventure|culture|relaxation|food|nature|urban"
// @Param priceRange query string false "budget|mid-range|luxury"
// @Param search query string false "Free text"
// @Param limit query int false "Max results (default 20)"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/destinations [get]
func (d *DestinationController) ListDestinations(c *gin.Context) {
	filter := request_models.DestinationFilter{
		Category:   c.Query("category"),
		PriceRange: c.Query("priceRange"),
		Search:     c.Query("search"),
	}
	if raw, ok := c.GetQuery("limit"); ok {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			utils.HandleServiceError(c, utils.NewFieldError("limit", "must be a positive integer"))
			return
		}
		filter.Limit = &limit
	}

	destinations, err := d.destinationService.ListDestinations(c.Request.Context(), filter)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, destinations, "Destinations retrieved successfully")
}

// GetDestination godoc
// @Summary Get a destination
// @Tags Destinations
// @Produce json
// @Param id path string true "Destination ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/destinations/{id} [get]
func (d *DestinationController) GetDestination(c *gin.Context) {
	destination, err := d.destinationService.GetDestination(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, destination, "Destination retrieved successfully")
}

// CreateDestination godoc
// @Summary Create a destination
// @Tags Destinations
// @Accept json
// @Produce json
// @Param request body request_models.CreateDestinationRequest true "Destination"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/destinations [post]
func (d *DestinationController) CreateDestination(c *gin.Context) {
	var req request_models.CreateDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleServiceError(c, utils.BindingError(err))
		return
	}

	destination, err := d.destinationService.CreateDestination(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, destination, "Destination created successfully")
}
