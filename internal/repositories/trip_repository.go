package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"travelguide/internal/models/db_models"
)

// ErrVersionMismatch means the trip changed (or vanished) between read and
// write.
var ErrVersionMismatch = errors.New("trip version mismatch")

type TripRepository interface {
	Create(ctx context.Context, trip *db_models.Trip) error
	GetForUser(ctx context.Context, id, userID uuid.UUID) (*db_models.Trip, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]db_models.Trip, error)
	Save(ctx context.Context, trip *db_models.Trip, expectedVersion int64) error
	DeleteForUser(ctx context.Context, id, userID uuid.UUID) (bool, error)
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) Create(ctx context.Context, trip *db_models.Trip) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

func (r *tripRepository) GetForUser(ctx context.Context, id, userID uuid.UUID) (*db_models.Trip, error) {
	var trip db_models.Trip
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&trip).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]db_models.Trip, error) {
	trips := []db_models.Trip{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}

// Save writes every mutable column if the stored version still equals
// expectedVersion. The owner is never rewritten.
func (r *tripRepository) Save(ctx context.Context, trip *db_models.Trip, expectedVersion int64) error {
	res := r.db.WithContext(ctx).Model(&db_models.Trip{}).
		Where("id = ? AND user_id = ? AND version = ?", trip.ID, trip.UserID, expectedVersion).
		Updates(map[string]interface{}{
			"title":           trip.Title,
			"destinations":    trip.Destinations,
			"total_duration":  trip.TotalDuration,
			"budget_amount":   trip.Budget.Amount,
			"budget_currency": trip.Budget.Currency,
			"status":          trip.Status,
			"notes":           trip.Notes,
			"is_public":       trip.IsPublic,
			"updated_at":      trip.UpdatedAt,
			"version":         trip.Version,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrVersionMismatch
	}
	return nil
}

func (r *tripRepository) DeleteForUser(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&db_models.Trip{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
