package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"travelguide/internal/models/db_models"
	"travelguide/internal/models/response_models"
	"travelguide/internal/repositories"
	"travelguide/internal/seed"
	"travelguide/pkg/clock"
	"travelguide/pkg/utils"
)

type SeedServiceInterface interface {
	// Seed replaces all data with the demo catalog. Outside of force it is
	// refused in production.
	Seed(ctx context.Context, force bool) (*response_models.SeedSummary, error)
}

type SeedService struct {
	seedRepo   repositories.SeedRepository
	catalog    *seed.Catalog
	clock      clock.Clock
	production bool
}

func NewSeedService(seedRepo repositories.SeedRepository, catalog *seed.Catalog, clk clock.Clock, production bool) SeedServiceInterface {
	return &SeedService{
		seedRepo:   seedRepo,
		catalog:    catalog,
		clock:      clk,
		production: production,
	}
}

func (s *SeedService) Seed(ctx context.Context, force bool) (*response_models.SeedSummary, error) {
	if s.production && !force {
		return nil, utils.ErrSeedForbidden
	}

	data, err := s.build()
	if err != nil {
		return nil, err
	}
	if err := s.seedRepo.ReplaceAll(ctx, data); err != nil {
		return nil, utils.DatabaseError(err)
	}

	summary := &response_models.SeedSummary{
		Destinations: len(data.Destinations),
		Experiences:  len(data.Experiences),
		Accounts:     len(data.Accounts),
		Trips:        len(data.Trips),
	}
	logrus.WithFields(logrus.Fields{
		"destinations": summary.Destinations,
		"experiences":  summary.Experiences,
		"accounts":     summary.Accounts,
		"trips":        summary.Trips,
	}).Info("database seeded")
	return summary, nil
}

// build turns the name based catalog into rows with ids wired together.
func (s *SeedService) build() (repositories.SeedData, error) {
	now := s.clock.Now().UTC().Truncate(time.Microsecond)
	var data repositories.SeedData

	accountIDs := map[string]uuid.UUID{}
	for _, a := range s.catalog.Accounts {
		hash, err := utils.HashPassword(a.Password)
		if err != nil {
			return data, err
		}
		account := db_models.Account{
			BaseModel:    db_models.BaseModel{ID: uuid.New(), CreatedAt: now},
			Name:         a.Name,
			Email:        normalizeEmail(a.Email),
			PasswordHash: hash,
		}
		accountIDs[account.Email] = account.ID
		data.Accounts = append(data.Accounts, account)
	}

	destinationIDs := map[string]uuid.UUID{}
	experienceIDs := map[string]uuid.UUID{}
	for i, d := range s.catalog.Destinations {
		// later catalog entries count as older so listings keep catalog order
		// among equal ratings
		created := now.Add(-time.Duration(i) * time.Second)
		destination := db_models.Destination{
			BaseModel:   db_models.BaseModel{ID: uuid.New(), CreatedAt: created},
			Name:        d.Name,
			Country:     d.Country,
			City:        d.City,
			Description: d.Description,
			Images:      fromImages(d.Images),
			Category:    d.Category,
			PriceRange:  d.PriceRange,
			Highlights:  cleanStrings(d.Highlights),
			Tags:        cleanStrings(d.Tags),
			BestMonths:  []string{},
		}
		if d.Coordinates != nil {
			destination.Coordinates = db_models.Coordinates{Lat: d.Coordinates.Lat, Lng: d.Coordinates.Lng}
		}
		if d.Rating != nil {
			destination.Rating = *d.Rating
		}
		if d.BestTimeToVisit != nil {
			destination.BestMonths = cleanStrings(d.BestTimeToVisit.Months)
			destination.BestWeather = d.BestTimeToVisit.Weather
		}
		destinationIDs[d.Name] = destination.ID
		data.Destinations = append(data.Destinations, destination)

		for _, e := range d.Experiences {
			experience := db_models.Experience{
				BaseModel:     db_models.BaseModel{ID: uuid.New(), CreatedAt: created},
				Title:         e.Title,
				DestinationID: destination.ID,
				Type:          e.Type,
				Description:   e.Description,
				Images:        fromImages(e.Images),
				Duration:      e.Duration,
				Reviews:       []db_models.Review{},
				Tags:          cleanStrings(e.Tags),
				IsPopular:     e.IsPopular,
			}
			if e.Location != nil {
				experience.Location.Address = e.Location.Address
				if e.Location.Coordinates != nil {
					experience.Location.Lat = e.Location.Coordinates.Lat
					experience.Location.Lng = e.Location.Coordinates.Lng
				}
			}
			if e.Pricing != nil {
				experience.Pricing = db_models.Pricing{
					Amount:   e.Pricing.Amount,
					Currency: strings.ToUpper(e.Pricing.Currency),
					Per:      e.Pricing.Per,
				}
			}
			if e.Rating != nil {
				experience.Rating = *e.Rating
			}
			experienceIDs[e.Title] = experience.ID
			data.Experiences = append(data.Experiences, experience)
		}
	}

	for _, t := range s.catalog.Trips {
		owner, ok := accountIDs[normalizeEmail(t.Owner)]
		if !ok {
			return data, fmt.Errorf("seed trip %q: unknown owner %q", t.Title, t.Owner)
		}
		trip := db_models.Trip{
			BaseModel:     db_models.BaseModel{ID: uuid.New(), CreatedAt: now},
			Title:         t.Title,
			UserID:        owner,
			TotalDuration: t.TotalDuration,
			Budget: db_models.Budget{
				Amount:   t.EstimatedBudget.Amount,
				Currency: strings.ToUpper(t.EstimatedBudget.Currency),
			},
			Status:    t.Status,
			Notes:     t.Notes,
			IsPublic:  t.IsPublic,
			UpdatedAt: now,
			Version:   1,
		}
		if trip.Status == "" {
			trip.Status = db_models.TripPlanning
		}
		for _, e := range t.Destinations {
			entry, err := seedEntry(t.Title, e, destinationIDs, experienceIDs)
			if err != nil {
				return data, err
			}
			trip.AppendEntry(entry)
		}
		if trip.Destinations == nil {
			trip.Destinations = []db_models.TripDestination{}
		}
		data.Trips = append(data.Trips, trip)
	}

	return data, nil
}

func seedEntry(trip string, e seed.TripEntrySeed, destinations, experiences map[string]uuid.UUID) (db_models.TripDestination, error) {
	destinationID, ok := destinations[e.Destination]
	if !ok {
		return db_models.TripDestination{}, fmt.Errorf("seed trip %q: unknown destination %q", trip, e.Destination)
	}
	start, err := utils.ParseOptionalDate(&e.StartDate)
	if err != nil {
		return db_models.TripDestination{}, fmt.Errorf("seed trip %q: %w", trip, err)
	}
	end, err := utils.ParseOptionalDate(&e.EndDate)
	if err != nil {
		return db_models.TripDestination{}, fmt.Errorf("seed trip %q: %w", trip, err)
	}

	entry := db_models.TripDestination{
		Destination: destinationID,
		StartDate:   start,
		EndDate:     end,
		Experiences: []uuid.UUID{},
	}
	for _, title := range e.Experiences {
		id, ok := experiences[title]
		if !ok {
			return db_models.TripDestination{}, fmt.Errorf("seed trip %q: unknown experience %q", trip, title)
		}
		entry.Experiences = append(entry.Experiences, id)
	}
	return entry, nil
}
