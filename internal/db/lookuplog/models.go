package lookuplog

import (
	"time"
)

type Lookup struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	City            string    `json:"city" gorm:"index:idx_city;index:idx_city_created_at"`
	Country         string    `json:"country" gorm:"column:country"`
	Celsius         float64   `json:"celsius" gorm:"column:celsius"`
	Condition       string    `json:"condition" gorm:"column:condition"`
	FromGeolocation bool      `json:"from_geolocation" gorm:"column:from_geolocation"`
	CreatedAt       time.Time `json:"created_at" gorm:"index:idx_created_at;index:idx_city_created_at"`
}

func (Lookup) TableName() string {
	return "lookups"
}
