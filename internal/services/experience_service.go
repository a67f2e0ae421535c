package services

import (
	"context"
	"strings"

	"travelguide/internal/models/db_models"
	"travelguide/internal/models/request_models"
	"travelguide/internal/models/response_models"
	"travelguide/internal/repositories"
	"travelguide/pkg/clock"
	"travelguide/pkg/utils"
)

type ExperienceServiceInterface interface {
	ListExperiences(ctx context.Context, filter request_models.ExperienceFilter) ([]response_models.ExperienceResponse, error)
	GetExperience(ctx context.Context, id string) (*response_models.ExperienceResponse, error)
	CreateExperience(ctx context.Context, request request_models.CreateExperienceRequest) (*response_models.ExperienceResponse, error)
	AddReview(ctx context.Context, id string, reviewer string, request request_models.AddReviewRequest) (*response_models.ExperienceResponse, error)
}

type ExperienceService struct {
	experienceRepo  repositories.ExperienceRepository
	destinationRepo repositories.DestinationRepository
	clock           clock.Clock
}

func NewExperienceService(
	experienceRepo repositories.ExperienceRepository,
	destinationRepo repositories.DestinationRepository,
	clk clock.Clock) ExperienceServiceInterface {
	return &ExperienceService{
		experienceRepo:  experienceRepo,
		destinationRepo: destinationRepo,
		clock:           clk,
	}
}

func (s *ExperienceService) ListExperiences(ctx context.Context, filter request_models.ExperienceFilter) ([]response_models.ExperienceResponse, error) {
	query := repositories.ExperienceQuery{
		Type:        filter.Type,
		PopularOnly: filter.Popular,
	}
	if filter.Destination != "" {
		id, err := parseRef("destination", filter.Destination)
		if err != nil {
			return nil, err
		}
		query.DestinationID = &id
	}

	experiences, err := s.experienceRepo.List(ctx, query)
	if err != nil {
		return nil, utils.DatabaseError(err)
	}

	out := make([]response_models.ExperienceResponse, 0, len(experiences))
	for _, e := range experiences {
		var destination interface{}
		if e.Destination != nil {
			destination = toDestinationSummary(*e.Destination)
		}
		out = append(out, toExperienceResponse(e, destination))
	}
	return out, nil
}

func (s *ExperienceService) GetExperience(ctx context.Context, id string) (*response_models.ExperienceResponse, error) {
	experienceID, err := parseID(id, utils.ErrExperienceNotFound)
	if err != nil {
		return nil, err
	}

	experience, err := s.experienceRepo.GetByID(ctx, experienceID)
	if err != nil {
		return nil, utils.DatabaseError(err)
	}
	if experience == nil {
		return nil, utils.ErrExperienceNotFound
	}

	resp := withFullDestination(*experience)
	return &resp, nil
}

// CreateExperience refuses a destination reference that does not exist at
// write time.
func (s *ExperienceService) CreateExperience(ctx context.Context, request request_models.CreateExperienceRequest) (*response_models.ExperienceResponse, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, err
	}
	destinationID, err := parseRef("destination", request.Destination)
	if err != nil {
		return nil, err
	}

	destination, err := s.destinationRepo.GetByID(ctx, destinationID)
	if err != nil {
		return nil, utils.DatabaseError(err)
	}
	if destination == nil {
		return nil, utils.NewFieldError("destination", "references an unknown destination")
	}

	experience := &db_models.Experience{
		Title:         request.Title,
		DestinationID: destinationID,
		Type:          request.Type,
		Description:   request.Description,
		Images:        fromImages(request.Images),
		Duration:      request.Duration,
		Reviews:       []db_models.Review{},
		Tags:          cleanStrings(request.Tags),
		IsPopular:     request.IsPopular,
	}
	if request.Location != nil {
		experience.Location.Address = request.Location.Address
		if request.Location.Coordinates != nil {
			experience.Location.Lat = request.Location.Coordinates.Lat
			experience.Location.Lng = request.Location.Coordinates.Lng
		}
	}
	if request.Pricing != nil {
		experience.Pricing = db_models.Pricing{
			Amount:   request.Pricing.Amount,
			Currency: strings.ToUpper(request.Pricing.Currency),
			Per:      request.Pricing.Per,
		}
	}
	if request.Rating != nil {
		experience.Rating = *request.Rating
	}

	if err := s.experienceRepo.Create(ctx, experience); err != nil {
		return nil, utils.DatabaseError(err)
	}

	experience.Destination = destination
	resp := withFullDestination(*experience)
	return &resp, nil
}

// AddReview appends a review signed with the caller's display name.
func (s *ExperienceService) AddReview(ctx context.Context, id string, reviewer string, request request_models.AddReviewRequest) (*response_models.ExperienceResponse, error) {
	experienceID, err := parseID(id, utils.ErrExperienceNotFound)
	if err != nil {
		return nil, err
	}
	if err := utils.ValidateStruct(request); err != nil {
		return nil, err
	}

	review := db_models.Review{
		User:    reviewer,
		Rating:  *request.Rating,
		Comment: strings.TrimSpace(request.Comment),
		Date:    s.clock.Now().UTC(),
	}
	found, err := s.experienceRepo.AppendReview(ctx, experienceID, review)
	if err != nil {
		return nil, utils.DatabaseError(err)
	}
	if !found {
		return nil, utils.ErrExperienceNotFound
	}

	return s.GetExperience(ctx, experienceID.String())
}

func withFullDestination(e db_models.Experience) response_models.ExperienceResponse {
	var destination interface{}
	if e.Destination != nil {
		destination = toDestinationResponse(*e.Destination)
	}
	return toExperienceResponse(e, destination)
}
