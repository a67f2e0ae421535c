package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"travelguide/pkg/utils"
)

const (
	TripPlanning  = "planning"
	TripBooked    = "booked"
	TripCompleted = "completed"
)

// TripDestination is one stop of the itinerary. ID is assigned on insert and
// survives reordering, unlike the entry's position.
type TripDestination struct {
	ID          uuid.UUID   `json:"id"`
	Destination uuid.UUID   `json:"destination"`
	StartDate   *time.Time  `json:"startDate,omitempty"`
	EndDate     *time.Time  `json:"endDate,omitempty"`
	Experiences []uuid.UUID `json:"experiences"`
}

type Budget struct {
	Amount   float64
	Currency string
}

type Trip struct {
	BaseModel
	Title         string    `gorm:"not null"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Destinations  datatypes.JSONSlice[TripDestination]
	TotalDuration int
	Budget        Budget `gorm:"embedded;embeddedPrefix:budget_"`
	Status        string `gorm:"type:varchar(20);not null"`
	Notes         string `gorm:"type:text"`
	IsPublic      bool
	UpdatedAt     time.Time `gorm:"autoUpdateTime:false;not null;index"`
	Version       int64     `gorm:"not null"`
}

// Touch moves UpdatedAt forward to now, or one microsecond past the previous
// value when the clock has not advanced. Postgres keeps microseconds.
func (t *Trip) Touch(now time.Time) {
	now = now.UTC().Truncate(time.Microsecond)
	if !now.After(t.UpdatedAt) {
		now = t.UpdatedAt.Add(time.Microsecond)
	}
	t.UpdatedAt = now
}

// The mutators below validate first and swap in a fresh slice afterwards, so
// a failed call leaves the trip exactly as it was.

func (t *Trip) entries() []TripDestination {
	out := make([]TripDestination, len(t.Destinations))
	for i, e := range t.Destinations {
		e.Experiences = append([]uuid.UUID{}, e.Experiences...)
		out[i] = e
	}
	return out
}

func (t *Trip) AppendEntry(entry TripDestination) TripDestination {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.Experiences == nil {
		entry.Experiences = []uuid.UUID{}
	}
	next := append(t.entries(), entry)
	t.Destinations = next
	return entry
}

func (t *Trip) IndexOfEntry(entryID uuid.UUID) int {
	for i, e := range t.Destinations {
		if e.ID == entryID {
			return i
		}
	}
	return -1
}

func (t *Trip) RemoveEntryAt(index int) error {
	if index < 0 || index >= len(t.Destinations) {
		return utils.IndexOutOfRange("destination", index, len(t.Destinations))
	}
	cur := t.entries()
	next := append(cur[:index:index], cur[index+1:]...)
	t.Destinations = next
	return nil
}

func (t *Trip) RemoveEntryByID(entryID uuid.UUID) error {
	i := t.IndexOfEntry(entryID)
	if i < 0 {
		return unknownEntry(entryID)
	}
	return t.RemoveEntryAt(i)
}

func (t *Trip) AddExperienceAt(index int, experienceID uuid.UUID) error {
	if index < 0 || index >= len(t.Destinations) {
		return utils.IndexOutOfRange("destination", index, len(t.Destinations))
	}
	next := t.entries()
	next[index].Experiences = append(next[index].Experiences, experienceID)
	t.Destinations = next
	return nil
}

func (t *Trip) AddExperienceToEntry(entryID, experienceID uuid.UUID) error {
	i := t.IndexOfEntry(entryID)
	if i < 0 {
		return unknownEntry(entryID)
	}
	return t.AddExperienceAt(i, experienceID)
}

func (t *Trip) RemoveExperienceAt(index, experienceIndex int) error {
	if index < 0 || index >= len(t.Destinations) {
		return utils.IndexOutOfRange("destination", index, len(t.Destinations))
	}
	exps := t.Destinations[index].Experiences
	if experienceIndex < 0 || experienceIndex >= len(exps) {
		return utils.IndexOutOfRange("experience", experienceIndex, len(exps))
	}
	next := t.entries()
	cur := next[index].Experiences
	next[index].Experiences = append(cur[:experienceIndex:experienceIndex], cur[experienceIndex+1:]...)
	t.Destinations = next
	return nil
}

// RemoveExperienceFromEntry drops the first occurrence of experienceID from
// the entry.
func (t *Trip) RemoveExperienceFromEntry(entryID, experienceID uuid.UUID) error {
	i := t.IndexOfEntry(entryID)
	if i < 0 {
		return unknownEntry(entryID)
	}
	for j, id := range t.Destinations[i].Experiences {
		if id == experienceID {
			return t.RemoveExperienceAt(i, j)
		}
	}
	return utils.NewFieldError("experienceId", "is not part of trip entry "+entryID.String())
}

// ReferencedIDs lists the distinct destination and experience ids the
// itinerary points at, in first-seen order.
func (t *Trip) ReferencedIDs() (destinations []uuid.UUID, experiences []uuid.UUID) {
	seenD := map[uuid.UUID]bool{}
	seenE := map[uuid.UUID]bool{}
	for _, e := range t.Destinations {
		if e.Destination != uuid.Nil && !seenD[e.Destination] {
			seenD[e.Destination] = true
			destinations = append(destinations, e.Destination)
		}
		for _, x := range e.Experiences {
			if !seenE[x] {
				seenE[x] = true
				experiences = append(experiences, x)
			}
		}
	}
	return destinations, experiences
}

func unknownEntry(id uuid.UUID) error {
	err := utils.NewFieldError("entryId", "no trip entry with id "+id.String())
	err.Err = utils.ErrEntryNotFound
	return err
}
