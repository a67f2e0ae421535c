package repositories

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"travelguide/internal/models/db_models"
)

type ExperienceQuery struct {
	DestinationID *uuid.UUID
	Type          string
	PopularOnly   bool
}

type ExperienceRepository interface {
	Create(ctx context.Context, experience *db_models.Experience) error
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.Experience, error)
	List(ctx context.Context, query ExperienceQuery) ([]db_models.Experience, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]db_models.Experience, error)
	AppendReview(ctx context.Context, id uuid.UUID, review db_models.Review) (bool, error)
}

type experienceRepository struct {
	db *gorm.DB
}

func NewExperienceRepository(db *gorm.DB) ExperienceRepository {
	return &experienceRepository{db: db}
}

func (r *experienceRepository) Create(ctx context.Context, experience *db_models.Experience) error {
	return r.db.WithContext(ctx).Omit("Destination").Create(experience).Error
}

// GetByID loads the experience with its full destination.
func (r *experienceRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Experience, error) {
	var experience db_models.Experience
	err := r.db.WithContext(ctx).Preload("Destination").First(&experience, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &experience, nil
}

// List preloads only the destination columns the listing shows.
func (r *experienceRepository) List(ctx context.Context, query ExperienceQuery) ([]db_models.Experience, error) {
	q := r.db.WithContext(ctx).Model(&db_models.Experience{}).
		Preload("Destination", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "city", "country")
		})

	if query.DestinationID != nil {
		q = q.Where("destination_id = ?", *query.DestinationID)
	}
	if query.Type != "" {
		q = q.Where("type = ?", query.Type)
	}
	if query.PopularOnly {
		q = q.Where("is_popular = ?", true)
	}

	experiences := []db_models.Experience{}
	if err := q.Order("rating DESC").Find(&experiences).Error; err != nil {
		return nil, err
	}
	return experiences, nil
}

func (r *experienceRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]db_models.Experience, error) {
	experiences := []db_models.Experience{}
	if len(ids) == 0 {
		return experiences, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&experiences).Error; err != nil {
		return nil, err
	}
	return experiences, nil
}

// AppendReview appends in place so concurrent reviews are not lost. It
// reports false when no experience has the id.
func (r *experienceRepository) AppendReview(ctx context.Context, id uuid.UUID, review db_models.Review) (bool, error) {
	payload, err := json.Marshal([]db_models.Review{review})
	if err != nil {
		return false, err
	}
	res := r.db.WithContext(ctx).Model(&db_models.Experience{}).
		Where("id = ?", id).
		Update("reviews", gorm.Expr("COALESCE(reviews, '[]'::jsonb) || ?::jsonb", string(payload)))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
