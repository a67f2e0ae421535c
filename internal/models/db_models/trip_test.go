package db_models

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"

	"travelguide/pkg/utils"
)

func tripWith(entries ...TripDestination) *Trip {
	t := &Trip{Title: "t"}
	for _, e := range entries {
		t.AppendEntry(e)
	}
	return t
}

func TestAppendEntryAssignsID(t *testing.T) {
	trip := &Trip{}
	dest := uuid.New()

	got := trip.AppendEntry(TripDestination{Destination: dest})
	if got.ID == uuid.Nil {
		t.Fatalf("expected an entry id to be assigned")
	}
	if got.Experiences == nil {
		t.Fatalf("experiences should be an empty list, not nil")
	}
	if len(trip.Destinations) != 1 || trip.Destinations[0].Destination != dest {
		t.Fatalf("unexpected itinerary: %+v", trip.Destinations)
	}

	keep := uuid.New()
	got = trip.AppendEntry(TripDestination{ID: keep, Destination: dest})
	if got.ID != keep {
		t.Fatalf("given id replaced: got %s want %s", got.ID, keep)
	}
}

func TestRemoveEntryAt(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	trip := tripWith(TripDestination{Destination: a}, TripDestination{Destination: b}, TripDestination{Destination: c})

	if err := trip.RemoveEntryAt(1); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(trip.Destinations) != 2 || trip.Destinations[0].Destination != a || trip.Destinations[1].Destination != c {
		t.Fatalf("wrong entries left: %+v", trip.Destinations)
	}

	for _, idx := range []int{-1, 2, 5} {
		err := trip.RemoveEntryAt(idx)
		if !errors.Is(err, utils.ErrIndexOutOfRange) {
			t.Errorf("index %d: expected out of range, got %v", idx, err)
		}
		if !utils.IsValidation(err) {
			t.Errorf("index %d: expected a validation error", idx)
		}
	}
	if len(trip.Destinations) != 2 {
		t.Fatalf("failed removal changed the trip")
	}
}

func TestExperienceMutations(t *testing.T) {
	trip := tripWith(TripDestination{Destination: uuid.New()}, TripDestination{Destination: uuid.New()})
	x1, x2 := uuid.New(), uuid.New()

	if err := trip.AddExperienceAt(0, x1); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := trip.AddExperienceAt(0, x2); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := trip.AddExperienceAt(0, x1); err != nil {
		t.Fatalf("duplicates are allowed: %v", err)
	}
	want := []uuid.UUID{x1, x2, x1}
	if !reflect.DeepEqual(trip.Destinations[0].Experiences, want) {
		t.Fatalf("experiences = %v, want %v", trip.Destinations[0].Experiences, want)
	}

	if err := trip.RemoveExperienceAt(0, 1); err != nil {
		t.Fatalf("remove: %v", err)
	}
	want = []uuid.UUID{x1, x1}
	if !reflect.DeepEqual(trip.Destinations[0].Experiences, want) {
		t.Fatalf("experiences = %v, want %v", trip.Destinations[0].Experiences, want)
	}

	if err := trip.AddExperienceAt(5, x1); !errors.Is(err, utils.ErrIndexOutOfRange) {
		t.Errorf("expected out of range for destination index, got %v", err)
	}
	if err := trip.RemoveExperienceAt(1, 0); !errors.Is(err, utils.ErrIndexOutOfRange) {
		t.Errorf("expected out of range on empty entry, got %v", err)
	}
	if err := trip.RemoveExperienceAt(9, 0); err == nil || err.Error() != "invalid destination index 9: index out of range [0, 2)" {
		t.Errorf("destination index should be checked first, got %v", err)
	}
}

func TestEntryIDMutations(t *testing.T) {
	trip := tripWith(TripDestination{Destination: uuid.New()}, TripDestination{Destination: uuid.New()})
	second := trip.Destinations[1].ID
	x := uuid.New()

	if err := trip.AddExperienceToEntry(second, x); err != nil {
		t.Fatalf("add by id: %v", err)
	}
	if trip.IndexOfEntry(second) != 1 || len(trip.Destinations[1].Experiences) != 1 {
		t.Fatalf("experience not added to the second entry: %+v", trip.Destinations)
	}

	if err := trip.RemoveExperienceFromEntry(second, uuid.New()); !utils.IsValidation(err) {
		t.Errorf("expected a validation error for an absent experience, got %v", err)
	}
	if err := trip.RemoveExperienceFromEntry(second, x); err != nil {
		t.Fatalf("remove by id: %v", err)
	}
	if len(trip.Destinations[1].Experiences) != 0 {
		t.Fatalf("experience still present")
	}

	err := trip.RemoveEntryByID(uuid.New())
	if !utils.IsValidation(err) {
		t.Errorf("expected a validation error for an unknown entry, got %v", err)
	}
	if !errors.Is(err, utils.ErrEntryNotFound) {
		t.Errorf("expected ErrEntryNotFound in the chain, got %v", err)
	}
	if err := trip.RemoveEntryByID(trip.Destinations[0].ID); err != nil {
		t.Fatalf("remove entry: %v", err)
	}
	if trip.IndexOfEntry(second) != 0 {
		t.Fatalf("entry id should survive a shift in position")
	}
}

func TestMutationsDoNotShareSlices(t *testing.T) {
	trip := tripWith(TripDestination{Destination: uuid.New()})
	before := trip.Destinations
	beforeExps := before[0].Experiences

	if err := trip.AddExperienceAt(0, uuid.New()); err != nil {
		t.Fatalf("add: %v", err)
	}
	if len(beforeExps) != 0 || len(before[0].Experiences) != 0 {
		t.Fatalf("previous snapshot was mutated")
	}
}

func TestTouchIsStrictlyIncreasing(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 123456789, time.UTC)
	trip := &Trip{}

	trip.Touch(base)
	first := trip.UpdatedAt
	if !first.Equal(base.Truncate(time.Microsecond)) {
		t.Fatalf("UpdatedAt = %v, want microsecond precision", first)
	}

	trip.Touch(base)
	if !trip.UpdatedAt.After(first) {
		t.Fatalf("same clock reading must still move UpdatedAt forward")
	}

	trip.Touch(base.Add(-time.Hour))
	if !trip.UpdatedAt.After(first) {
		t.Fatalf("a clock going backwards must not move UpdatedAt back")
	}
}

func TestReferencedIDs(t *testing.T) {
	d1, d2 := uuid.New(), uuid.New()
	x1, x2 := uuid.New(), uuid.New()
	trip := tripWith(
		TripDestination{Destination: d1, Experiences: []uuid.UUID{x1, x2}},
		TripDestination{Destination: d2, Experiences: []uuid.UUID{x2}},
		TripDestination{Destination: d1, Experiences: []uuid.UUID{x1}},
	)

	dests, exps := trip.ReferencedIDs()
	if !reflect.DeepEqual(dests, []uuid.UUID{d1, d2}) {
		t.Errorf("destinations = %v", dests)
	}
	if !reflect.DeepEqual(exps, []uuid.UUID{x1, x2}) {
		t.Errorf("experiences = %v", exps)
	}
}
