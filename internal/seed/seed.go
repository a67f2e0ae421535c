// Package seed holds the demo catalog loaded by POST /api/seed and the seed
// command.
package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"travelguide/internal/models/request_models"
)

//go:embed catalog.json
var catalogJSON []byte

type Catalog struct {
	Accounts     []AccountSeed     `json:"accounts"`
	Destinations []DestinationSeed `json:"destinations"`
	Trips        []TripSeed        `json:"trips"`
}

type AccountSeed struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// DestinationSeed nests the destination's experiences. Their destination
// reference is filled in when seeding.
type DestinationSeed struct {
	request_models.CreateDestinationRequest
	Experiences []request_models.CreateExperienceRequest `json:"experiences"`
}

// TripSeed refers to its owner by email, destinations by name and
// experiences by title.
type TripSeed struct {
	Title           string                       `json:"title"`
	Owner           string                       `json:"owner"`
	Destinations    []TripEntrySeed              `json:"destinations"`
	TotalDuration   int                          `json:"totalDuration"`
	EstimatedBudget request_models.BudgetRequest `json:"estimatedBudget"`
	Status          string                       `json:"status"`
	Notes           string                       `json:"notes"`
	IsPublic        bool                         `json:"isPublic"`
}

type TripEntrySeed struct {
	Destination string   `json:"destination"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Experiences []string `json:"experiences"`
}

// Load decodes the embedded demo catalog.
func Load() (*Catalog, error) {
	return Parse(catalogJSON)
}

func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode seed catalog: %w", err)
	}
	return &c, nil
}

func (c *Catalog) ExperienceCount() int {
	n := 0
	for _, d := range c.Destinations {
		n += len(d.Experiences)
	}
	return n
}
