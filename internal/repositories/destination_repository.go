package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"travelguide/internal/models/db_models"
)

type DestinationQuery struct {
	Category   string
	PriceRange string
	Search     string
	Limit      int
}

type DestinationRepository interface {
	Create(ctx context.Context, destination *db_models.Destination) error
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.Destination, error)
	List(ctx context.Context, query DestinationQuery) ([]db_models.Destination, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]db_models.Destination, error)
}

type destinationRepository struct {
	db *gorm.DB
}

func NewDestinationRepository(db *gorm.DB) DestinationRepository {
	return &destinationRepository{db: db}
}

func (r *destinationRepository) Create(ctx context.Context, destination *db_models.Destination) error {
	return r.db.WithContext(ctx).Omit("Experiences").Create(destination).Error
}

func (r *destinationRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Destination, error) {
	var destination db_models.Destination
	err := r.db.WithContext(ctx).First(&destination, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &destination, nil
}

// List applies every non-empty filter. Search matches a substring of name,
// country or city, or a whole tag, all case-insensitively.
func (r *destinationRepository) List(ctx context.Context, query DestinationQuery) ([]db_models.Destination, error) {
	q := r.db.WithContext(ctx).Model(&db_models.Destination{})

	if query.Category != "" {
		q = q.Where("category = ?", query.Category)
	}
	if query.PriceRange != "" {
		q = q.Where("price_range = ?", query.PriceRange)
	}
	if search := strings.TrimSpace(query.Search); search != "" {
		like := "%" + escapeLike(search) + "%"
		q = q.Where(
			"(name ILIKE ? OR country ILIKE ? OR city ILIKE ? OR EXISTS (SELECT 1 FROM unnest(tags) AS tag WHERE lower(tag) = lower(?)))",
			like, like, like, search,
		)
	}
	if query.Limit > 0 {
		q = q.Limit(query.Limit)
	}

	destinations := []db_models.Destination{}
	if err := q.Order("rating DESC").Order("created_at DESC").Find(&destinations).Error; err != nil {
		return nil, err
	}
	return destinations, nil
}

func (r *destinationRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]db_models.Destination, error) {
	destinations := []db_models.Destination{}
	if len(ids) == 0 {
		return destinations, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&destinations).Error; err != nil {
		return nil, err
	}
	return destinations, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
