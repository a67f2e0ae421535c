package request_models

type ImageRequest struct {
	URL string `json:"url" binding:"required"`
	Alt string `json:"alt"`
}

type CoordinatesRequest struct {
	Lat float64 `json:"lat" binding:"gte=-90,lte=90"`
	Lng float64 `json:"lng" binding:"gte=-180,lte=180"`
}

type BestTimeToVisitRequest struct {
	Months  []string `json:"months"`
	Weather string   `json:"weather"`
}

type CreateDestinationRequest struct {
	Name            string                  `json:"name" binding:"required"`
	Country         string                  `json:"country" binding:"required"`
	City            string                  `json:"city" binding:"required"`
	Description     string                  `json:"description" binding:"required"`
	Images          []ImageRequest          `json:"images" binding:"omitempty,dive"`
	Coordinates     *CoordinatesRequest     `json:"coordinates"`
	Category        string                  `json:"category" binding:"required,oneof=adventure culture relaxation food nature urban"`
	Rating          *float64                `json:"rating" binding:"omitempty,gte=0,lte=5"`
	PriceRange      string                  `json:"priceRange" binding:"required,oneof=budget mid-range luxury"`
	BestTimeToVisit *BestTimeToVisitRequest `json:"bestTimeToVisit"`
	Highlights      []string                `json:"highlights"`
	Tags            []string                `json:"tags"`
}

// DestinationFilter drives listDestinations. A nil Limit means the default.
type DestinationFilter struct {
	Category   string
	PriceRange string
	Search     string
	Limit      *int
}
