package request_models

// TripDestinationRequest dates accept RFC3339 or YYYY-MM-DD. ID is only
// honoured when a whole itinerary is replaced, to keep existing entry ids.
type TripDestinationRequest struct {
	ID          string   `json:"id" binding:"omitempty,uuid"`
	Destination string   `json:"destination" binding:"required,uuid"`
	StartDate   *string  `json:"startDate"`
	EndDate     *string  `json:"endDate"`
	Experiences []string `json:"experiences" binding:"omitempty,dive,uuid"`
}

type BudgetRequest struct {
	Amount   float64 `json:"amount" binding:"gte=0"`
	Currency string  `json:"currency"`
}

// CreateTripRequest has no user field; ownership always comes from the token.
type CreateTripRequest struct {
	Title           string                   `json:"title" binding:"required"`
	Destinations    []TripDestinationRequest `json:"destinations" binding:"omitempty,dive"`
	TotalDuration   *int                     `json:"totalDuration" binding:"omitempty,gte=0"`
	EstimatedBudget *BudgetRequest           `json:"estimatedBudget"`
	Status          string                   `json:"status" binding:"omitempty,oneof=planning booked completed"`
	Notes           string                   `json:"notes"`
	IsPublic        *bool                    `json:"isPublic"`
}

// UpdateTripRequest is a shallow patch: nil fields are left as stored and a
// present destinations list replaces the whole itinerary.
type UpdateTripRequest struct {
	Title           *string                   `json:"title"`
	Destinations    *[]TripDestinationRequest `json:"destinations" binding:"omitempty,dive"`
	TotalDuration   *int                      `json:"totalDuration" binding:"omitempty,gte=0"`
	EstimatedBudget *BudgetRequest            `json:"estimatedBudget"`
	Status          *string                   `json:"status" binding:"omitempty,oneof=planning booked completed"`
	Notes           *string                   `json:"notes"`
	IsPublic        *bool                     `json:"isPublic"`
}

type AddExperienceRequest struct {
	ExperienceID string `json:"experienceId" binding:"required,uuid"`
}
