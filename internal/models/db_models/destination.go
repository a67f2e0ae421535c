package db_models

import (
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

const (
	CategoryAdventure  = "adventure"
	CategoryCulture    = "culture"
	CategoryRelaxation = "relaxation"
	CategoryFood       = "food"
	CategoryNature     = "nature"
	CategoryUrban      = "urban"

	PriceBudget   = "budget"
	PriceMidRange = "mid-range"
	PriceLuxury   = "luxury"
)

type Destination struct {
	BaseModel
	Name        string `gorm:"not null;index"`
	Country     string `gorm:"not null"`
	City        string `gorm:"not null"`
	Description string `gorm:"type:text;not null"`
	Images      datatypes.JSONSlice[Image]
	Coordinates Coordinates    `gorm:"embedded;embeddedPrefix:coord_"`
	Category    string         `gorm:"type:varchar(20);not null;index"`
	Rating      float64        `gorm:"not null;index"`
	PriceRange  string         `gorm:"type:varchar(20);not null;index"`
	BestMonths  pq.StringArray `gorm:"type:text[]"`
	BestWeather string
	Highlights  pq.StringArray `gorm:"type:text[]"`
	Tags        pq.StringArray `gorm:"type:text[]"`

	Experiences []Experience `gorm:"constraint:OnDelete:CASCADE"`
}
