package repositories

import (
	"context"

	"gorm.io/gorm"

	"travelguide/internal/models/db_models"
)

type SeedData struct {
	Accounts     []db_models.Account
	Destinations []db_models.Destination
	Experiences  []db_models.Experience
	Trips        []db_models.Trip
}

type SeedRepository interface {
	// ReplaceAll wipes every table and inserts data, all or nothing.
	ReplaceAll(ctx context.Context, data SeedData) error
}

type seedRepository struct {
	db *gorm.DB
}

func NewSeedRepository(db *gorm.DB) SeedRepository {
	return &seedRepository{db: db}
}

func (r *seedRepository) ReplaceAll(ctx context.Context, data SeedData) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// children first so foreign keys hold
		for _, model := range []interface{}{&db_models.Trip{}, &db_models.Experience{}, &db_models.Destination{}, &db_models.Account{}} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return err
			}
		}

		if len(data.Accounts) > 0 {
			if err := tx.Create(&data.Accounts).Error; err != nil {
				return err
			}
		}
		if len(data.Destinations) > 0 {
			if err := tx.Omit("Experiences").Create(&data.Destinations).Error; err != nil {
				return err
			}
		}
		if len(data.Experiences) > 0 {
			if err := tx.Omit("Destination").Create(&data.Experiences).Error; err != nil {
				return err
			}
		}
		if len(data.Trips) > 0 {
			if err := tx.Create(&data.Trips).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
