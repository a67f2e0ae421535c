package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"travelguide/internal/models/db_models"
	"travelguide/internal/models/request_models"
	"travelguide/internal/models/response_models"
	"travelguide/internal/repositories"
	"travelguide/pkg/clock"
	"travelguide/pkg/utils"
)

type TripServiceInterface interface {
	ListTrips(ctx context.Context, userID uuid.UUID) ([]response_models.TripResponse, error)
	GetTrip(ctx context.Context, userID uuid.UUID, tripID string) (*response_models.TripResponse, error)
	CreateTrip(ctx context.Context, userID uuid.UUID, request request_models.CreateTripRequest) (*response_models.TripResponse, error)
	UpdateTrip(ctx context.Context, userID uuid.UUID, tripID string, request request_models.UpdateTripRequest) (*response_models.TripResponse, error)
	DeleteTrip(ctx context.Context, userID uuid.UUID, tripID string) error

	AddDestinationEntry(ctx context.Context, userID uuid.UUID, tripID string, request request_models.TripDestinationRequest) (*response_models.TripResponse, error)
	RemoveDestinationEntry(ctx context.Context, userID uuid.UUID, tripID string, index int) (*response_models.TripResponse, error)
	AddExperienceToEntry(ctx context.Context, userID uuid.UUID, tripID string, destinationIndex int, experienceID string) (*response_models.TripResponse, error)
	RemoveExperienceFromEntry(ctx context.Context, userID uuid.UUID, tripID string, destinationIndex, experienceIndex int) (*response_models.TripResponse, error)

	RemoveDestinationEntryByID(ctx context.Context, userID uuid.UUID, tripID, entryID string) (*response_models.TripResponse, error)
	AddExperienceToEntryByID(ctx context.Context, userID uuid.UUID, tripID, entryID, experienceID string) (*response_models.TripResponse, error)
	RemoveExperienceFromEntryByID(ctx context.Context, userID uuid.UUID, tripID, entryID, experienceID string) (*response_models.TripResponse, error)
}

type TripService struct {
	tripRepo        repositories.TripRepository
	destinationRepo repositories.DestinationRepository
	experienceRepo  repositories.ExperienceRepository
	clock           clock.Clock
}

func NewTripService(
	tripRepo repositories.TripRepository,
	destinationRepo repositories.DestinationRepository,
	experienceRepo repositories.ExperienceRepository,
	clk clock.Clock) TripServiceInterface {
	return &TripService{
		tripRepo:        tripRepo,
		destinationRepo: destinationRepo,
		experienceRepo:  experienceRepo,
		clock:           clk,
	}
}

func (s *TripService) ListTrips(ctx context.Context, userID uuid.UUID) ([]response_models.TripResponse, error) {
	trips, err := s.tripRepo.ListForUser(ctx, userID)
	if err != nil {
		return nil, utils.DatabaseError(err)
	}
	return s.resolve(ctx, trips...)
}

func (s *TripService) GetTrip(ctx context.Context, userID uuid.UUID, tripID string) (*response_models.TripResponse, error) {
	trip, err := s.loadOwned(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}
	return s.resolveOne(ctx, *trip)
}

// CreateTrip always assigns the trip to userID.
func (s *TripService) CreateTrip(ctx context.Context, userID uuid.UUID, request request_models.CreateTripRequest) (*response_models.TripResponse, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, err
	}
	if strings.TrimSpace(request.Title) == "" {
		return nil, utils.NewFieldError("title", "is required")
	}

	entries, err := entriesFromRequest(request.Destinations)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now().UTC().Truncate(time.Microsecond)
	trip := &db_models.Trip{
		BaseModel:    db_models.BaseModel{ID: uuid.New(), CreatedAt: now},
		Title:        request.Title,
		UserID:       userID,
		Destinations: entries,
		Status:       db_models.TripPlanning,
		Notes:        request.Notes,
		UpdatedAt:    now,
		Version:      1,
	}
	if request.Status != "" {
		trip.Status = request.Status
	}
	if request.TotalDuration != nil {
		trip.TotalDuration = *request.TotalDuration
	}
	if request.EstimatedBudget != nil {
		trip.Budget = db_models.Budget{
			Amount:   request.EstimatedBudget.Amount,
			Currency: strings.ToUpper(request.EstimatedBudget.Currency),
		}
	}
	if request.IsPublic != nil {
		trip.IsPublic = *request.IsPublic
	}

	if err := s.tripRepo.Create(ctx, trip); err != nil {
		return nil, utils.DatabaseError(err)
	}

	logrus.WithFields(logrus.Fields{"trip_id": trip.ID, "user_id": userID}).Info("trip created")
	return s.resolveOne(ctx, *trip)
}

// UpdateTrip is a shallow merge. The owner cannot be changed.
func (s *TripService) UpdateTrip(ctx context.Context, userID uuid.UUID, tripID string, request request_models.UpdateTripRequest) (*response_models.TripResponse, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, err
	}
	if request.Title != nil && strings.TrimSpace(*request.Title) == "" {
		return nil, utils.NewFieldError("title", "must not be empty")
	}

	var entries []db_models.TripDestination
	if request.Destinations != nil {
		var err error
		if entries, err = entriesFromRequest(*request.Destinations); err != nil {
			return nil, err
		}
	}

	return s.mutate(ctx, userID, tripID, func(trip *db_models.Trip) error {
		if request.Title != nil {
			trip.Title = *request.Title
		}
		if request.Destinations != nil {
			trip.Destinations = entries
		}
		if request.TotalDuration != nil {
			trip.TotalDuration = *request.TotalDuration
		}
		if request.EstimatedBudget != nil {
			trip.Budget = db_models.Budget{
				Amount:   request.EstimatedBudget.Amount,
				Currency: strings.ToUpper(request.EstimatedBudget.Currency),
			}
		}
		if request.Status != nil {
			trip.Status = *request.Status
		}
		if request.Notes != nil {
			trip.Notes = *request.Notes
		}
		if request.IsPublic != nil {
			trip.IsPublic = *request.IsPublic
		}
		return nil
	})
}

func (s *TripService) DeleteTrip(ctx context.Context, userID uuid.UUID, tripID string) error {
	id, err := parseID(tripID, utils.ErrTripNotFound)
	if err != nil {
		return err
	}

	deleted, err := s.tripRepo.DeleteForUser(ctx, id, userID)
	if err != nil {
		return utils.DatabaseError(err)
	}
	if !deleted {
		return utils.ErrTripNotFound
	}

	logrus.WithFields(logrus.Fields{"trip_id": id, "user_id": userID}).Info("trip deleted")
	return nil
}

func (s *TripService) AddDestinationEntry(ctx context.Context, userID uuid.UUID, tripID string, request request_models.TripDestinationRequest) (*response_models.TripResponse, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, err
	}
	entry, err := entryFromRequest("destination", request)
	if err != nil {
		return nil, err
	}
	entry.ID = uuid.Nil

	return s.mutate(ctx, userID, tripID, func(trip *db_models.Trip) error {
		trip.AppendEntry(entry)
		return nil
	})
}

func (s *TripService) RemoveDestinationEntry(ctx context.Context, userID uuid.UUID, tripID string, index int) (*response_models.TripResponse, error) {
	return s.mutate(ctx, userID, tripID, func(trip *db_models.Trip) error {
		return trip.RemoveEntryAt(index)
	})
}

// AddExperienceToEntry does not check that the experience belongs to the
// entry's destination.
func (s *TripService) AddExperienceToEntry(ctx context.Context, userID uuid.UUID, tripID string, destinationIndex int, experienceID string) (*response_models.TripResponse, error) {
	expID, err := parseRef("experienceId", experienceID)
	if err != nil {
		return nil, err
	}
	return s.mutate(ctx, userID, tripID, func(trip *db_models.Trip) error {
		return trip.AddExperienceAt(destinationIndex, expID)
	})
}

func (s *TripService) RemoveExperienceFromEntry(ctx context.Context, userID uuid.UUID, tripID string, destinationIndex, experienceIndex int) (*response_models.TripResponse, error) {
	return s.mutate(ctx, userID, tripID, func(trip *db_models.Trip) error {
		return trip.RemoveExperienceAt(destinationIndex, experienceIndex)
	})
}

func (s *TripService) RemoveDestinationEntryByID(ctx context.Context, userID uuid.UUID, tripID, entryID string) (*response_models.TripResponse, error) {
	eID, err := parseRef("entryId", entryID)
	if err != nil {
		return nil, err
	}
	return s.mutate(ctx, userID, tripID, func(trip *db_models.Trip) error {
		return trip.RemoveEntryByID(eID)
	})
}

func (s *TripService) AddExperienceToEntryByID(ctx context.Context, userID uuid.UUID, tripID, entryID, experienceID string) (*response_models.TripResponse, error) {
	eID, err := parseRef("entryId", entryID)
	if err != nil {
		return nil, err
	}
	expID, err := parseRef("experienceId", experienceID)
	if err != nil {
		return nil, err
	}
	return s.mutate(ctx, userID, tripID, func(trip *db_models.Trip) error {
		return trip.AddExperienceToEntry(eID, expID)
	})
}

func (s *TripService) RemoveExperienceFromEntryByID(ctx context.Context, userID uuid.UUID, tripID, entryID, experienceID string) (*response_models.TripResponse, error) {
	eID, err := parseRef("entryId", entryID)
	if err != nil {
		return nil, err
	}
	expID, err := parseRef("experienceId", experienceID)
	if err != nil {
		return nil, err
	}
	return s.mutate(ctx, userID, tripID, func(trip *db_models.Trip) error {
		return trip.RemoveExperienceFromEntry(eID, expID)
	})
}

// loadOwned hides both malformed ids and other users' trips behind
// ErrTripNotFound.
func (s *TripService) loadOwned(ctx context.Context, userID uuid.UUID, tripID string) (*db_models.Trip, error) {
	id, err := parseID(tripID, utils.ErrTripNotFound)
	if err != nil {
		return nil, err
	}

	trip, err := s.tripRepo.GetForUser(ctx, id, userID)
	if err != nil {
		return nil, utils.DatabaseError(err)
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	return trip, nil
}

// mutate is the read-modify-write cycle shared by every trip change: load the
// owned trip, apply fn, bump version and updatedAt, then persist only if no
// other writer got there first.
func (s *TripService) mutate(ctx context.Context, userID uuid.UUID, tripID string, fn func(*db_models.Trip) error) (*response_models.TripResponse, error) {
	trip, err := s.loadOwned(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}
	if err := fn(trip); err != nil {
		return nil, err
	}

	expected := trip.Version
	trip.Version++
	trip.Touch(s.clock.Now())

	if err := s.tripRepo.Save(ctx, trip, expected); err != nil {
		if errors.Is(err, repositories.ErrVersionMismatch) {
			logrus.WithFields(logrus.Fields{"trip_id": trip.ID, "version": expected}).Warn("trip write lost a race")
			return nil, utils.ErrTripConflict
		}
		return nil, utils.DatabaseError(err)
	}
	return s.resolveOne(ctx, *trip)
}

func (s *TripService) resolveOne(ctx context.Context, trip db_models.Trip) (*response_models.TripResponse, error) {
	resolved, err := s.resolve(ctx, trip)
	if err != nil {
		return nil, err
	}
	return &resolved[0], nil
}

// resolve loads every referenced destination and experience with one query
// each, however many trips are passed.
func (s *TripService) resolve(ctx context.Context, trips ...db_models.Trip) ([]response_models.TripResponse, error) {
	var destinationIDs, experienceIDs []uuid.UUID
	for i := range trips {
		d, e := trips[i].ReferencedIDs()
		destinationIDs = append(destinationIDs, d...)
		experienceIDs = append(experienceIDs, e...)
	}

	destinations, err := s.destinationRepo.FindByIDs(ctx, destinationIDs)
	if err != nil {
		return nil, utils.DatabaseError(err)
	}
	experiences, err := s.experienceRepo.FindByIDs(ctx, experienceIDs)
	if err != nil {
		return nil, utils.DatabaseError(err)
	}

	dmap := make(map[uuid.UUID]db_models.Destination, len(destinations))
	for _, d := range destinations {
		dmap[d.ID] = d
	}
	emap := make(map[uuid.UUID]db_models.Experience, len(experiences))
	for _, e := range experiences {
		emap[e.ID] = e
	}

	out := make([]response_models.TripResponse, 0, len(trips))
	for _, t := range trips {
		out = append(out, toTripResponse(t, dmap, emap))
	}
	return out, nil
}
