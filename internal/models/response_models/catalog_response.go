package response_models

type ImageResponse struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

type CoordinatesResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type BestTimeToVisitResponse struct {
	Months  []string `json:"months"`
	Weather string   `json:"weather"`
}

type DestinationResponse struct {
	ID              string                  `json:"id"`
	Name            string                  `json:"name"`
	Country         string                  `json:"country"`
	City            string                  `json:"city"`
	Description     string                  `json:"description"`
	Images          []ImageResponse         `json:"images"`
	Coordinates     CoordinatesResponse     `json:"coordinates"`
	Category        string                  `json:"category"`
	Rating          float64                 `json:"rating"`
	PriceRange      string                  `json:"priceRange"`
	BestTimeToVisit BestTimeToVisitResponse `json:"bestTimeToVisit"`
	Highlights      []string                `json:"highlights"`
	Tags            []string                `json:"tags"`
	CreatedAt       string                  `json:"createdAt"`
}

// DestinationSummary is the partial destination attached to experience
// listings.
type DestinationSummary struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
}

type LocationResponse struct {
	Address     string              `json:"address"`
	Coordinates CoordinatesResponse `json:"coordinates"`
}

type PricingResponse struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Per      string  `json:"per"`
}

type ReviewResponse struct {
	User    string  `json:"user"`
	Rating  float64 `json:"rating"`
	Comment string  `json:"comment"`
	Date    string  `json:"date"`
}

// ExperienceResponse.Destination holds a DestinationSummary in listings, a
// full DestinationResponse on single fetch, or the bare id inside trips.
type ExperienceResponse struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Destination interface{}      `json:"destination"`
	Type        string           `json:"type"`
	Description string           `json:"description"`
	Images      []ImageResponse  `json:"images"`
	Location    LocationResponse `json:"location"`
	Pricing     PricingResponse  `json:"pricing"`
	Duration    string           `json:"duration"`
	Rating      float64          `json:"rating"`
	Reviews     []ReviewResponse `json:"reviews"`
	Tags        []string         `json:"tags"`
	IsPopular   bool             `json:"isPopular"`
	CreatedAt   string           `json:"createdAt"`
}
