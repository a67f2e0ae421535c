package services

import (
	"context"

	"travelguide/internal/models/db_models"
	"travelguide/internal/models/request_models"
	"travelguide/internal/models/response_models"
	"travelguide/internal/repositories"
	"travelguide/pkg/utils"
)

const DefaultDestinationLimit = 20

type DestinationServiceInterface interface {
	ListDestinations(ctx context.Context, filter request_models.DestinationFilter) ([]response_models.DestinationResponse, error)
	GetDestination(ctx context.Context, id string) (*response_models.DestinationResponse, error)
	CreateDestination(ctx context.Context, request request_models.CreateDestinationRequest) (*response_models.DestinationResponse, error)
}

type DestinationService struct {
	destinationRepo repositories.DestinationRepository
}

func NewDestinationService(destinationRepo repositories.DestinationRepository) DestinationServiceInterface {
	return &DestinationService{
		destinationRepo: destinationRepo,
	}
}

func (s *DestinationService) ListDestinations(ctx context.Context, filter request_models.DestinationFilter) ([]response_models.DestinationResponse, error) {
	limit := DefaultDestinationLimit
	if filter.Limit != nil {
		if *filter.Limit <= 0 {
			return nil, utils.NewFieldError("limit", "must be a positive integer")
		}
		limit = *filter.Limit
	}

	destinations, err := s.destinationRepo.List(ctx, repositories.DestinationQuery{
		Category:   filter.Category,
		PriceRange: filter.PriceRange,
		Search:     filter.Search,
		Limit:      limit,
	})
	if err != nil {
		return nil, utils.DatabaseError(err)
	}

	out := make([]response_models.DestinationResponse, 0, len(destinations))
	for _, d := range destinations {
		out = append(out, toDestinationResponse(d))
	}
	return out, nil
}

func (s *DestinationService) GetDestination(ctx context.Context, id string) (*response_models.DestinationResponse, error) {
	destinationID, err := parseID(id, utils.ErrDestinationNotFound)
	if err != nil {
		return nil, err
	}

	destination, err := s.destinationRepo.GetByID(ctx, destinationID)
	if err != nil {
		return nil, utils.DatabaseError(err)
	}
	if destination == nil {
		return nil, utils.ErrDestinationNotFound
	}

	resp := toDestinationResponse(*destination)
	return &resp, nil
}

func (s *DestinationService) CreateDestination(ctx context.Context, request request_models.CreateDestinationRequest) (*response_models.DestinationResponse, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, err
	}

	destination := &db_models.Destination{
		Name:        request.Name,
		Country:     request.Country,
		City:        request.City,
		Description: request.Description,
		Images:      fromImages(request.Images),
		Category:    request.Category,
		PriceRange:  request.PriceRange,
		Highlights:  cleanStrings(request.Highlights),
		Tags:        cleanStrings(request.Tags),
	}
	if request.Coordinates != nil {
		destination.Coordinates = db_models.Coordinates{Lat: request.Coordinates.Lat, Lng: request.Coordinates.Lng}
	}
	if request.Rating != nil {
		destination.Rating = *request.Rating
	}
	if request.BestTimeToVisit != nil {
		destination.BestMonths = cleanStrings(request.BestTimeToVisit.Months)
		destination.BestWeather = request.BestTimeToVisit.Weather
	} else {
		destination.BestMonths = []string{}
	}

	if err := s.destinationRepo.Create(ctx, destination); err != nil {
		return nil, utils.DatabaseError(err)
	}

	resp := toDestinationResponse(*destination)
	return &resp, nil
}
