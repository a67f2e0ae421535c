package response_models

// TripDestinationResponse is a fully resolved itinerary entry. Destination is
// nil when the referenced record no longer exists.
type TripDestinationResponse struct {
	ID          string               `json:"id"`
	Destination *DestinationResponse `json:"destination"`
	StartDate   *string              `json:"startDate"`
	EndDate     *string              `json:"endDate"`
	Experiences []ExperienceResponse `json:"experiences"`
}

type BudgetResponse struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type TripResponse struct {
	ID              string                    `json:"id"`
	Title           string                    `json:"title"`
	User            string                    `json:"user"`
	Destinations    []TripDestinationResponse `json:"destinations"`
	TotalDuration   int                       `json:"totalDuration"`
	EstimatedBudget BudgetResponse            `json:"estimatedBudget"`
	Status          string                    `json:"status"`
	Notes           string                    `json:"notes"`
	IsPublic        bool                      `json:"isPublic"`
	CreatedAt       string                    `json:"createdAt"`
	UpdatedAt       string                    `json:"updatedAt"`
	Version         int64                     `json:"version"`
}
