package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

const (
	ExperienceActivity      = "activity"
	ExperienceRestaurant    = "restaurant"
	ExperienceAccommodation = "accommodation"
	ExperienceTransport     = "transport"
	ExperienceAttraction    = "attraction"
)

type Location struct {
	Address string
	Lat     float64
	Lng     float64
}

type Pricing struct {
	Amount   float64
	Currency string
	Per      string
}

// Review is appended to the experience's jsonb reviews column.
type Review struct {
	User    string    `json:"user"`
	Rating  float64   `json:"rating"`
	Comment string    `json:"comment"`
	Date    time.Time `json:"date"`
}

type Experience struct {
	BaseModel
	Title         string       `gorm:"not null"`
	DestinationID uuid.UUID    `gorm:"type:uuid;not null;index"`
	Destination   *Destination `gorm:"foreignKey:DestinationID"`
	Type          string       `gorm:"type:varchar(20);not null;index"`
	Description   string       `gorm:"type:text;not null"`
	Images        datatypes.JSONSlice[Image]
	Location      Location `gorm:"embedded;embeddedPrefix:location_"`
	Pricing       Pricing  `gorm:"embedded;embeddedPrefix:price_"`
	Duration      string
	Rating        float64 `gorm:"not null;index"`
	Reviews       datatypes.JSONSlice[Review]
	Tags          pq.StringArray `gorm:"type:text[]"`
	IsPopular     bool           `gorm:"not null;index"`
}
