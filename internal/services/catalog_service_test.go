package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"travelguide/internal/models/db_models"
	"travelguide/internal/models/request_models"
	"travelguide/internal/models/response_models"
	"travelguide/internal/repositories/repotest"
	"travelguide/pkg/clock"
	"travelguide/pkg/utils"
)

func seedDestinations(t *testing.T, store *repotest.Store, ds ...db_models.Destination) []db_models.Destination {
	t.Helper()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	out := make([]db_models.Destination, 0, len(ds))
	for i, d := range ds {
		d.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		if err := store.DestinationRepo().Create(context.Background(), &d); err != nil {
			t.Fatalf("create destination: %v", err)
		}
		out = append(out, d)
	}
	return out
}

func names(in []response_models.DestinationResponse) []string {
	out := make([]string, 0, len(in))
	for _, d := range in {
		out = append(out, d.Name)
	}
	return out
}

func TestListDestinationsFilters(t *testing.T) {
	store := repotest.NewStore()
	seedDestinations(t, store,
		db_models.Destination{Name: "Paris", Country: "France", City: "Paris", Category: db_models.CategoryCulture, PriceRange: db_models.PriceLuxury, Rating: 4.8, Tags: []string{"romantic", "museums"}},
		db_models.Destination{Name: "Bali", Country: "Indonesia", City: "Ubud", Category: db_models.CategoryRelaxation, PriceRange: db_models.PriceBudget, Rating: 4.7, Tags: []string{"Beach"}},
		db_models.Destination{Name: "Banff", Country: "Canada", City: "Banff", Category: db_models.CategoryNature, PriceRange: db_models.PriceMidRange, Rating: 4.9, Tags: []string{"hiking"}},
	)
	svc := NewDestinationService(store.DestinationRepo())
	ctx := context.Background()

	tests := []struct {
		name   string
		filter request_models.DestinationFilter
		want   []string
	}{
		{"all by rating", request_models.DestinationFilter{}, []string{"Banff", "Paris", "Bali"}},
		{"category", request_models.DestinationFilter{Category: "culture"}, []string{"Paris"}},
		{"price range", request_models.DestinationFilter{PriceRange: "budget"}, []string{"Bali"}},
		{"search name substring", request_models.DestinationFilter{Search: "ban"}, []string{"Banff"}},
		{"search country case insensitive", request_models.DestinationFilter{Search: "INDONESIA"}, []string{"Bali"}},
		{"search exact tag", request_models.DestinationFilter{Search: "beach"}, []string{"Bali"}},
		{"tag must match whole", request_models.DestinationFilter{Search: "muse"}, []string{}},
		{"no match", request_models.DestinationFilter{Category: "food"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ListDestinations(ctx, tt.filter)
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			gotNames := names(got)
			if len(gotNames) != len(tt.want) {
				t.Fatalf("got %v, want %v", gotNames, tt.want)
			}
			for i := range gotNames {
				if gotNames[i] != tt.want[i] {
					t.Fatalf("got %v, want %v", gotNames, tt.want)
				}
			}
		})
	}
}

func TestListDestinationsLimit(t *testing.T) {
	store := repotest.NewStore()
	var ds []db_models.Destination
	for i := 0; i < DefaultDestinationLimit+5; i++ {
		ds = append(ds, db_models.Destination{Name: uuid.NewString(), Category: db_models.CategoryUrban, PriceRange: db_models.PriceBudget})
	}
	seedDestinations(t, store, ds...)
	svc := NewDestinationService(store.DestinationRepo())
	ctx := context.Background()

	got, err := svc.ListDestinations(ctx, request_models.DestinationFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != DefaultDestinationLimit {
		t.Errorf("default limit: got %d", len(got))
	}

	three := 3
	got, err = svc.ListDestinations(ctx, request_models.DestinationFilter{Limit: &three})
	if err != nil || len(got) != 3 {
		t.Errorf("limit 3: got %d, %v", len(got), err)
	}

	zero := 0
	if _, err := svc.ListDestinations(ctx, request_models.DestinationFilter{Limit: &zero}); !utils.IsValidation(err) {
		t.Errorf("limit 0: expected a validation error, got %v", err)
	}
}

func TestGetDestinationNotFound(t *testing.T) {
	svc := NewDestinationService(repotest.NewStore().DestinationRepo())

	for _, id := range []string{uuid.NewString(), "nope"} {
		if _, err := svc.GetDestination(context.Background(), id); !errors.Is(err, utils.ErrDestinationNotFound) {
			t.Errorf("GetDestination(%q): expected not found, got %v", id, err)
		}
	}
}

func TestCreateDestination(t *testing.T) {
	store := repotest.NewStore()
	svc := NewDestinationService(store.DestinationRepo())
	ctx := context.Background()

	created, err := svc.CreateDestination(ctx, request_models.CreateDestinationRequest{
		Name:        "Lisbon",
		Country:     "Portugal",
		City:        "Lisbon",
		Description: "Hills and trams",
		Category:    "urban",
		PriceRange:  "mid-range",
		Tags:        []string{"trams", " ", "food"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" || created.CreatedAt == "" {
		t.Fatalf("id and createdAt must be assigned: %+v", created)
	}
	if len(created.Tags) != 2 {
		t.Errorf("blank tags should be dropped, got %v", created.Tags)
	}

	fetched, err := svc.GetDestination(ctx, created.ID)
	if err != nil || fetched.Name != "Lisbon" {
		t.Fatalf("round trip failed: %+v, %v", fetched, err)
	}

	_, err = svc.CreateDestination(ctx, request_models.CreateDestinationRequest{Name: "X", Category: "space"})
	var verr *utils.ValidationError
	if !errors.As(err, &verr) || len(verr.Fields) == 0 {
		t.Fatalf("expected field errors, got %v", err)
	}
}

func TestExperienceService(t *testing.T) {
	store := repotest.NewStore()
	ds := seedDestinations(t, store,
		db_models.Destination{Name: "Tokyo", Country: "Japan", City: "Tokyo", Description: "big", Category: db_models.CategoryUrban, PriceRange: db_models.PriceLuxury},
		db_models.Destination{Name: "Rome", Country: "Italy", City: "Rome", Category: db_models.CategoryCulture, PriceRange: db_models.PriceMidRange},
	)
	tokyo, rome := ds[0], ds[1]
	clk := clock.NewFakeClock(time.Date(2026, 2, 2, 12, 0, 0, 0, time.UTC))
	svc := NewExperienceService(store.ExperienceRepo(), store.DestinationRepo(), clk)
	ctx := context.Background()

	four, five := 4.0, 4.9
	sushi, err := svc.CreateExperience(ctx, request_models.CreateExperienceRequest{
		Title: "Sushi class", Destination: tokyo.ID.String(), Type: "activity", Description: "roll",
		Rating: &four, IsPopular: true,
		Pricing: &request_models.PricingRequest{Amount: 80, Currency: "usd", Per: "person"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if sushi.Pricing.Currency != "USD" {
		t.Errorf("currency = %q", sushi.Pricing.Currency)
	}
	if full, ok := sushi.Destination.(response_models.DestinationResponse); !ok || full.Description != "big" {
		t.Errorf("create should return the full destination, got %#v", sushi.Destination)
	}

	if _, err := svc.CreateExperience(ctx, request_models.CreateExperienceRequest{
		Title: "Colosseum", Destination: rome.ID.String(), Type: "attraction", Description: "old", Rating: &five,
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err = svc.CreateExperience(ctx, request_models.CreateExperienceRequest{
		Title: "Ghost", Destination: uuid.NewString(), Type: "activity", Description: "none",
	})
	if !utils.IsValidation(err) {
		t.Fatalf("unknown destination: expected a validation error, got %v", err)
	}

	all, err := svc.ListExperiences(ctx, request_models.ExperienceFilter{})
	if err != nil || len(all) != 2 || all[0].Title != "Colosseum" {
		t.Fatalf("list ordered by rating: %+v, %v", all, err)
	}
	if summary, ok := all[0].Destination.(response_models.DestinationSummary); !ok || summary.Name != "Rome" {
		t.Errorf("listing should carry a destination summary, got %#v", all[0].Destination)
	}

	popular, _ := svc.ListExperiences(ctx, request_models.ExperienceFilter{Popular: true})
	if len(popular) != 1 || popular[0].Title != "Sushi class" {
		t.Errorf("popular filter: %+v", popular)
	}
	byDest, _ := svc.ListExperiences(ctx, request_models.ExperienceFilter{Destination: rome.ID.String(), Type: "attraction"})
	if len(byDest) != 1 || byDest[0].Title != "Colosseum" {
		t.Errorf("destination and type filter: %+v", byDest)
	}
	if _, err := svc.ListExperiences(ctx, request_models.ExperienceFilter{Destination: "rome"}); !utils.IsValidation(err) {
		t.Errorf("malformed destination filter: expected a validation error, got %v", err)
	}

	rating := 5.0
	reviewed, err := svc.AddReview(ctx, sushi.ID, "Ada", request_models.AddReviewRequest{Rating: &rating, Comment: " great "})
	if err != nil {
		t.Fatalf("review: %v", err)
	}
	if len(reviewed.Reviews) != 1 || reviewed.Reviews[0].User != "Ada" || reviewed.Reviews[0].Comment != "great" {
		t.Fatalf("review not stored: %+v", reviewed.Reviews)
	}
	if reviewed.Reviews[0].Date != utils.FormatRFC3339(clk.Now()) {
		t.Errorf("review date = %q", reviewed.Reviews[0].Date)
	}
	if _, err := svc.AddReview(ctx, uuid.NewString(), "Ada", request_models.AddReviewRequest{Rating: &rating}); !errors.Is(err, utils.ErrExperienceNotFound) {
		t.Errorf("review on missing experience: got %v", err)
	}
	if _, err := svc.GetExperience(ctx, "bad"); !errors.Is(err, utils.ErrExperienceNotFound) {
		t.Errorf("malformed id: got %v", err)
	}
}
