package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"travelguide/internal/models/request_models"
	"travelguide/internal/services"
	"travelguide/pkg/middleware"
	"travelguide/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
}

func NewTripController(tripService services.TripServiceInterface) *TripController {
	return &TripController{
		tripService: tripService,
	}
}

func currentUser(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
	}
	return userID, ok
}

func pathIndex(c *gin.Context, name, field string) (int, bool) {
	idx, err := strconv.Atoi(c.Param(name))
	if err != nil {
		utils.HandleServiceError(c, utils.NewFieldError(field, "must be an integer"))
		return 0, false
	}
	return idx, true
}

// ListTrips godoc
// @Summary List the caller's trips
// @Description Most recently updated first, with destinations and experiences resolved.
// @Tags Trips
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /api/trips [get]
func (t *TripController) ListTrips(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	trips, err := t.tripService.ListTrips(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "Trips retrieved successfully")
}

// GetTrip godoc
// @Summary Get one of the caller's trips
// @Tags Trips
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/trips/{id} [get]
func (t *TripController) GetTrip(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	trip, err := t.tripService.GetTrip(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip retrieved successfully")
}

// CreateTrip godoc
// @Summary Create a trip owned by the caller
// @Tags Trips
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.CreateTripRequest true "Trip"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/trips [post]
func (t *TripController) CreateTrip(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req request_models.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleServiceError(c, utils.BindingError(err))
		return
	}

	trip, err := t.tripService.CreateTrip(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, trip, "Trip created successfully")
}

// UpdateTrip godoc
// @Summary Update a trip
// @Description Shallow merge. Fields left out are kept, destinations replaces the whole itinerary.
// @Tags Trips
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip ID"
// @Param request body request_models.UpdateTripRequest true "Patch"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /api/trips/{id} [put]
func (t *TripController) UpdateTrip(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req request_models.UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleServiceError(c, utils.BindingError(err))
		return
	}

	trip, err := t.tripService.UpdateTrip(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip updated successfully")
}

// DeleteTrip godoc
// @Summary Delete a trip permanently
// @Tags Trips
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/trips/{id} [delete]
func (t *TripController) DeleteTrip(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	if err := t.tripService.DeleteTrip(c.Request.Context(), userID, c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Trip deleted successfully")
}

// AddDestination godoc
// @Summary Append a destination entry
// @Tags Trips
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip ID"
// @Param request body request_models.TripDestinationRequest true "Entry"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/trips/{id}/destinations [post]
func (t *TripController) AddDestination(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req request_models.TripDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleServiceError(c, utils.BindingError(err))
		return
	}

	trip, err := t.tripService.AddDestinationEntry(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Destination added to trip")
}

// RemoveDestination godoc
// @Summary Remove a destination entry by position
// @Tags Trips
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip ID"
// @Param idx path int true "Entry position"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/trips/{id}/destinations/{idx} [delete]
func (t *TripController) RemoveDestination(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	idx, ok := pathIndex(c, "idx", "destinationIndex")
	if !ok {
		return
	}

	trip, err := t.tripService.RemoveDestinationEntry(c.Request.Context(), userID, c.Param("id"), idx)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Destination removed from trip")
}

// AddExperience godoc
// @Summary Attach an experience to a destination entry by position
// @Tags Trips
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip ID"
// @Param idx path int true "Entry position"
// @Param request body request_models.AddExperienceRequest true "Experience"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/trips/{id}/destinations/{idx}/experiences [post]
func (t *TripController) AddExperience(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	idx, ok := pathIndex(c, "idx", "destinationIndex")
	if !ok {
		return
	}

	var req request_models.AddExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleServiceError(c, utils.BindingError(err))
		return
	}

	trip, err := t.tripService.AddExperienceToEntry(c.Request.Context(), userID, c.Param("id"), idx, req.ExperienceID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Experience added to trip")
}

// RemoveExperience godoc
// @Summary Detach an experience from a destination entry by position
// @Tags Trips
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip ID"
// @Param idx path int true "Entry position"
// @Param eidx path int true "Experience position"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/trips/{id}/destinations/{idx}/experiences/{eidx} [delete]
func (t *TripController) RemoveExperience(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	idx, ok := pathIndex(c, "idx", "destinationIndex")
	if !ok {
		return
	}
	eidx, ok := pathIndex(c, "eidx", "experienceIndex")
	if !ok {
		return
	}

	trip, err := t.tripService.RemoveExperienceFromEntry(c.Request.Context(), userID, c.Param("id"), idx, eidx)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Experience removed from trip")
}

// RemoveEntry godoc
// @Summary Remove a destination entry by its id
// @Tags Trips
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip ID"
// @Param entryId path string true "Entry ID"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/trips/{id}/entries/{entryId} [delete]
func (t *TripController) RemoveEntry(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	trip, err := t.tripService.RemoveDestinationEntryByID(c.Request.Context(), userID, c.Param("id"), c.Param("entryId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Destination removed from trip")
}

// AddEntryExperience godoc
// @Summary Attach an experience to a destination entry by entry id
// @Tags Trips
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip ID"
// @Param entryId path string true "Entry ID"
// @Param request body request_models.AddExperienceRequest true "Experience"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/trips/{id}/entries/{entryId}/experiences [post]
func (t *TripController) AddEntryExperience(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req request_models.AddExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleServiceError(c, utils.BindingError(err))
		return
	}

	trip, err := t.tripService.AddExperienceToEntryByID(c.Request.Context(), userID, c.Param("id"), c.Param("entryId"), req.ExperienceID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Experience added to trip")
}

// RemoveEntryExperience godoc
// @Summary Detach an experience from a destination entry by ids
// @Description Removes the first occurrence of the experience in the entry.
// @Tags Trips
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip ID"
// @Param entryId path string true "Entry ID"
// @Param experienceId path string true "Experience ID"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/trips/{id}/entries/{entryId}/experiences/{experienceId} [delete]
func (t *TripController) RemoveEntryExperience(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	trip, err := t.tripService.RemoveExperienceFromEntryByID(c.Request.Context(), userID, c.Param("id"), c.Param("entryId"), c.Param("experienceId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Experience removed from trip")
}
