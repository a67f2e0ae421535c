// Package repotest provides in-memory repositories for service and handler
// tests. They mirror the ordering and not-found conventions of the gorm
// implementations.
package repotest

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"travelguide/internal/models/db_models"
	"travelguide/internal/repositories"
)

// Store backs all fake repositories so they see each other's rows.
type Store struct {
	mu           sync.Mutex
	Accounts     map[uuid.UUID]db_models.Account
	Destinations map[uuid.UUID]db_models.Destination
	Experiences  map[uuid.UUID]db_models.Experience
	Trips        map[uuid.UUID]db_models.Trip

	// Err, when set, is returned by every repository call.
	Err error
}

func NewStore() *Store {
	return &Store{
		Accounts:     map[uuid.UUID]db_models.Account{},
		Destinations: map[uuid.UUID]db_models.Destination{},
		Experiences:  map[uuid.UUID]db_models.Experience{},
		Trips:        map[uuid.UUID]db_models.Trip{},
	}
}

func (s *Store) AccountRepo() repositories.AccountRepository         { return &accounts{s} }
func (s *Store) DestinationRepo() repositories.DestinationRepository { return &destinations{s} }
func (s *Store) ExperienceRepo() repositories.ExperienceRepository   { return &experiences{s} }
func (s *Store) TripRepo() repositories.TripRepository               { return &trips{s} }
func (s *Store) SeedRepo() repositories.SeedRepository               { return &seeds{s} }

func ensureBase(b *db_models.BaseModel) {
	_ = b.BeforeCreate(nil)
}

func cloneTrip(t db_models.Trip) db_models.Trip {
	out := t
	out.Destinations = make([]db_models.TripDestination, len(t.Destinations))
	for i, e := range t.Destinations {
		e.Experiences = append([]uuid.UUID{}, e.Experiences...)
		out.Destinations[i] = e
	}
	return out
}

type accounts struct{ s *Store }

func (r *accounts) InsertTx(_ context.Context, account *db_models.Account) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	for _, a := range r.s.Accounts {
		if a.Email == account.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	ensureBase(&account.BaseModel)
	r.s.Accounts[account.ID] = *account
	return nil
}

func (r *accounts) FindById(_ context.Context, id uuid.UUID) (*db_models.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	a, ok := r.s.Accounts[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *accounts) FindByEmail(_ context.Context, email string) (*db_models.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	for _, a := range r.s.Accounts {
		if a.Email == email {
			return &a, nil
		}
	}
	return nil, nil
}

type destinations struct{ s *Store }

func (r *destinations) Create(_ context.Context, d *db_models.Destination) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	ensureBase(&d.BaseModel)
	r.s.Destinations[d.ID] = *d
	return nil
}

func (r *destinations) GetByID(_ context.Context, id uuid.UUID) (*db_models.Destination, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	d, ok := r.s.Destinations[id]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

func (r *destinations) List(_ context.Context, q repositories.DestinationQuery) ([]db_models.Destination, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	out := []db_models.Destination{}
	search := strings.ToLower(strings.TrimSpace(q.Search))
	for _, d := range r.s.Destinations {
		if q.Category != "" && d.Category != q.Category {
			continue
		}
		if q.PriceRange != "" && d.PriceRange != q.PriceRange {
			continue
		}
		if search != "" && !matchesSearch(d, search) {
			continue
		}
		out = append(out, d)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Rating != out[j].Rating {
			return out[i].Rating > out[j].Rating
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func matchesSearch(d db_models.Destination, search string) bool {
	for _, field := range []string{d.Name, d.Country, d.City} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	for _, tag := range d.Tags {
		if strings.ToLower(tag) == search {
			return true
		}
	}
	return false
}

func (r *destinations) FindByIDs(_ context.Context, ids []uuid.UUID) ([]db_models.Destination, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	out := []db_models.Destination{}
	for _, id := range ids {
		if d, ok := r.s.Destinations[id]; ok {
			out = append(out, d)
		}
	}
	return out, nil
}

type experiences struct{ s *Store }

func (r *experiences) Create(_ context.Context, e *db_models.Experience) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	ensureBase(&e.BaseModel)
	stored := *e
	stored.Destination = nil
	r.s.Experiences[e.ID] = stored
	return nil
}

func (r *experiences) GetByID(_ context.Context, id uuid.UUID) (*db_models.Experience, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	e, ok := r.s.Experiences[id]
	if !ok {
		return nil, nil
	}
	if d, ok := r.s.Destinations[e.DestinationID]; ok {
		e.Destination = &d
	}
	return &e, nil
}

func (r *experiences) List(_ context.Context, q repositories.ExperienceQuery) ([]db_models.Experience, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	out := []db_models.Experience{}
	for _, e := range r.s.Experiences {
		if q.DestinationID != nil && e.DestinationID != *q.DestinationID {
			continue
		}
		if q.Type != "" && e.Type != q.Type {
			continue
		}
		if q.PopularOnly && !e.IsPopular {
			continue
		}
		if d, ok := r.s.Destinations[e.DestinationID]; ok {
			e.Destination = &db_models.Destination{
				BaseModel: db_models.BaseModel{ID: d.ID},
				Name:      d.Name,
				City:      d.City,
				Country:   d.Country,
			}
		}
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Rating != out[j].Rating {
			return out[i].Rating > out[j].Rating
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

func (r *experiences) FindByIDs(_ context.Context, ids []uuid.UUID) ([]db_models.Experience, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	out := []db_models.Experience{}
	for _, id := range ids {
		if e, ok := r.s.Experiences[id]; ok {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *experiences) AppendReview(_ context.Context, id uuid.UUID, review db_models.Review) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return false, r.s.Err
	}
	e, ok := r.s.Experiences[id]
	if !ok {
		return false, nil
	}
	e.Reviews = append(append([]db_models.Review{}, e.Reviews...), review)
	r.s.Experiences[id] = e
	return true, nil
}

type trips struct{ s *Store }

func (r *trips) Create(_ context.Context, t *db_models.Trip) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	ensureBase(&t.BaseModel)
	r.s.Trips[t.ID] = cloneTrip(*t)
	return nil
}

func (r *trips) GetForUser(_ context.Context, id, userID uuid.UUID) (*db_models.Trip, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	t, ok := r.s.Trips[id]
	if !ok || t.UserID != userID {
		return nil, nil
	}
	t = cloneTrip(t)
	return &t, nil
}

func (r *trips) ListForUser(_ context.Context, userID uuid.UUID) ([]db_models.Trip, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	out := []db_models.Trip{}
	for _, t := range r.s.Trips {
		if t.UserID == userID {
			out = append(out, cloneTrip(t))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out, nil
}

func (r *trips) Save(_ context.Context, t *db_models.Trip, expectedVersion int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	cur, ok := r.s.Trips[t.ID]
	if !ok || cur.UserID != t.UserID || cur.Version != expectedVersion {
		return repositories.ErrVersionMismatch
	}
	next := cloneTrip(*t)
	next.CreatedAt = cur.CreatedAt
	r.s.Trips[t.ID] = next
	return nil
}

func (r *trips) DeleteForUser(_ context.Context, id, userID uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return false, r.s.Err
	}
	t, ok := r.s.Trips[id]
	if !ok || t.UserID != userID {
		return false, nil
	}
	delete(r.s.Trips, id)
	return true, nil
}

type seeds struct{ s *Store }

func (r *seeds) ReplaceAll(_ context.Context, data repositories.SeedData) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	r.s.Accounts = map[uuid.UUID]db_models.Account{}
	r.s.Destinations = map[uuid.UUID]db_models.Destination{}
	r.s.Experiences = map[uuid.UUID]db_models.Experience{}
	r.s.Trips = map[uuid.UUID]db_models.Trip{}
	for _, a := range data.Accounts {
		ensureBase(&a.BaseModel)
		r.s.Accounts[a.ID] = a
	}
	for _, d := range data.Destinations {
		ensureBase(&d.BaseModel)
		r.s.Destinations[d.ID] = d
	}
	for _, e := range data.Experiences {
		ensureBase(&e.BaseModel)
		r.s.Experiences[e.ID] = e
	}
	for _, t := range data.Trips {
		ensureBase(&t.BaseModel)
		r.s.Trips[t.ID] = cloneTrip(t)
	}
	return nil
}
