package request_models

type LocationRequest struct {
	Address     string              `json:"address"`
	Coordinates *CoordinatesRequest `json:"coordinates"`
}

type PricingRequest struct {
	Amount   float64 `json:"amount" binding:"gte=0"`
	Currency string  `json:"currency"`
	Per      string  `json:"per"`
}

type CreateExperienceRequest struct {
	Title       string           `json:"title" binding:"required"`
	Destination string           `json:"destination" binding:"required,uuid"`
	Type        string           `json:"type" binding:"required,oneof=activity restaurant accommodation transport attraction"`
	Description string           `json:"description" binding:"required"`
	Images      []ImageRequest   `json:"images" binding:"omitempty,dive"`
	Location    *LocationRequest `json:"location"`
	Pricing     *PricingRequest  `json:"pricing"`
	Duration    string           `json:"duration"`
	Rating      *float64         `json:"rating" binding:"omitempty,gte=0,lte=5"`
	Tags        []string         `json:"tags"`
	IsPopular   bool             `json:"isPopular"`
}

type ExperienceFilter struct {
	Destination string
	Type        string
	Popular     bool
}

type AddReviewRequest struct {
	Rating  *float64 `json:"rating" binding:"required,gte=0,lte=5"`
	Comment string   `json:"comment" binding:"max=2000"`
}
