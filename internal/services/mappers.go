package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"travelguide/internal/models/db_models"
	"travelguide/internal/models/request_models"
	"travelguide/internal/models/response_models"
	"travelguide/pkg/utils"
)

func strs(in []string) []string {
	if in == nil {
		return []string{}
	}
	return append([]string{}, in...)
}

func cleanStrings(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func toImages(in []db_models.Image) []response_models.ImageResponse {
	out := make([]response_models.ImageResponse, 0, len(in))
	for _, img := range in {
		out = append(out, response_models.ImageResponse{URL: img.URL, Alt: img.Alt})
	}
	return out
}

func fromImages(in []request_models.ImageRequest) []db_models.Image {
	out := make([]db_models.Image, 0, len(in))
	for _, img := range in {
		out = append(out, db_models.Image{URL: img.URL, Alt: img.Alt})
	}
	return out
}

func toDestinationResponse(d db_models.Destination) response_models.DestinationResponse {
	return response_models.DestinationResponse{
		ID:          d.ID.String(),
		Name:        d.Name,
		Country:     d.Country,
		City:        d.City,
		Description: d.Description,
		Images:      toImages(d.Images),
		Coordinates: response_models.CoordinatesResponse{Lat: d.Coordinates.Lat, Lng: d.Coordinates.Lng},
		Category:    d.Category,
		Rating:      d.Rating,
		PriceRange:  d.PriceRange,
		BestTimeToVisit: response_models.BestTimeToVisitResponse{
			Months:  strs(d.BestMonths),
			Weather: d.BestWeather,
		},
		Highlights: strs(d.Highlights),
		Tags:       strs(d.Tags),
		CreatedAt:  utils.FormatRFC3339(d.CreatedAt),
	}
}

func toDestinationSummary(d db_models.Destination) response_models.DestinationSummary {
	return response_models.DestinationSummary{
		ID:      d.ID.String(),
		Name:    d.Name,
		City:    d.City,
		Country: d.Country,
	}
}

// toExperienceResponse leaves Destination to the caller since its shape
// depends on the endpoint.
func toExperienceResponse(e db_models.Experience, destination interface{}) response_models.ExperienceResponse {
	reviews := make([]response_models.ReviewResponse, 0, len(e.Reviews))
	for _, r := range e.Reviews {
		reviews = append(reviews, response_models.ReviewResponse{
			User:    r.User,
			Rating:  r.Rating,
			Comment: r.Comment,
			Date:    utils.FormatRFC3339(r.Date),
		})
	}
	return response_models.ExperienceResponse{
		ID:          e.ID.String(),
		Title:       e.Title,
		Destination: destination,
		Type:        e.Type,
		Description: e.Description,
		Images:      toImages(e.Images),
		Location: response_models.LocationResponse{
			Address:     e.Location.Address,
			Coordinates: response_models.CoordinatesResponse{Lat: e.Location.Lat, Lng: e.Location.Lng},
		},
		Pricing: response_models.PricingResponse{
			Amount:   e.Pricing.Amount,
			Currency: e.Pricing.Currency,
			Per:      e.Pricing.Per,
		},
		Duration:  e.Duration,
		Rating:    e.Rating,
		Reviews:   reviews,
		Tags:      strs(e.Tags),
		IsPopular: e.IsPopular,
		CreatedAt: utils.FormatRFC3339(e.CreatedAt),
	}
}

// toTripResponse resolves entry references against the preloaded maps. A
// missing destination renders as null and missing experiences are dropped.
func toTripResponse(t db_models.Trip, destinations map[uuid.UUID]db_models.Destination, experiences map[uuid.UUID]db_models.Experience) response_models.TripResponse {
	entries := make([]response_models.TripDestinationResponse, 0, len(t.Destinations))
	for _, entry := range t.Destinations {
		resolved := response_models.TripDestinationResponse{
			ID:          entry.ID.String(),
			StartDate:   utils.FormatOptional(entry.StartDate),
			EndDate:     utils.FormatOptional(entry.EndDate),
			Experiences: []response_models.ExperienceResponse{},
		}
		if d, ok := destinations[entry.Destination]; ok {
			dr := toDestinationResponse(d)
			resolved.Destination = &dr
		}
		for _, id := range entry.Experiences {
			if e, ok := experiences[id]; ok {
				resolved.Experiences = append(resolved.Experiences, toExperienceResponse(e, e.DestinationID.String()))
			}
		}
		entries = append(entries, resolved)
	}

	return response_models.TripResponse{
		ID:            t.ID.String(),
		Title:         t.Title,
		User:          t.UserID.String(),
		Destinations:  entries,
		TotalDuration: t.TotalDuration,
		EstimatedBudget: response_models.BudgetResponse{
			Amount:   t.Budget.Amount,
			Currency: t.Budget.Currency,
		},
		Status:    t.Status,
		Notes:     t.Notes,
		IsPublic:  t.IsPublic,
		CreatedAt: utils.FormatRFC3339(t.CreatedAt),
		UpdatedAt: utils.FormatRFC3339(t.UpdatedAt),
		Version:   t.Version,
	}
}

func toAccountResponse(a db_models.Account) response_models.AccountResponse {
	return response_models.AccountResponse{
		ID:        a.ID.String(),
		Name:      a.Name,
		Email:     a.Email,
		CreatedAt: utils.FormatRFC3339(a.CreatedAt),
	}
}

// parseID turns a malformed id into the given not-found error, so callers
// cannot tell a bad id from a missing record.
func parseID(raw string, notFound error) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, notFound
	}
	return id, nil
}

func parseRef(field, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, utils.NewFieldError(field, "must be a valid id")
	}
	return id, nil
}

func entryFromRequest(field string, req request_models.TripDestinationRequest) (db_models.TripDestination, error) {
	destinationID, err := parseRef(field+".destination", req.Destination)
	if err != nil {
		return db_models.TripDestination{}, err
	}
	start, err := utils.ParseOptionalDate(req.StartDate)
	if err != nil {
		return db_models.TripDestination{}, utils.NewFieldError(field+".startDate", err.Error())
	}
	end, err := utils.ParseOptionalDate(req.EndDate)
	if err != nil {
		return db_models.TripDestination{}, utils.NewFieldError(field+".endDate", err.Error())
	}

	experiences := make([]uuid.UUID, 0, len(req.Experiences))
	for i, raw := range req.Experiences {
		id, err := parseRef(fmt.Sprintf("%s.experiences[%d]", field, i), raw)
		if err != nil {
			return db_models.TripDestination{}, err
		}
		experiences = append(experiences, id)
	}

	entryID := uuid.New()
	if req.ID != "" {
		if entryID, err = parseRef(field+".id", req.ID); err != nil {
			return db_models.TripDestination{}, err
		}
	}

	return db_models.TripDestination{
		ID:          entryID,
		Destination: destinationID,
		StartDate:   start,
		EndDate:     end,
		Experiences: experiences,
	}, nil
}

func entriesFromRequest(in []request_models.TripDestinationRequest) ([]db_models.TripDestination, error) {
	out := make([]db_models.TripDestination, 0, len(in))
	seen := make(map[uuid.UUID]bool, len(in))
	for i, req := range in {
		field := fmt.Sprintf("destinations[%d]", i)
		entry, err := entryFromRequest(field, req)
		if err != nil {
			return nil, err
		}
		if seen[entry.ID] {
			return nil, utils.NewFieldError(field+".id", "duplicates another entry")
		}
		seen[entry.ID] = true
		out = append(out, entry)
	}
	return out, nil
}
