package lookuplog

import (
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	LogLookup(city, country string, celsius float64, condition string, fromGeolocation bool) error
	RecentLookup(city string) (*Lookup, error)
}

type LookupSQLRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &LookupSQLRepository{db: db}
}

func (r *LookupSQLRepository) LogLookup(city, country string, celsius float64, condition string, fromGeolocation bool) error {
	lookup := Lookup{
		City:            city,
		Country:         country,
		Celsius:         celsius,
		Condition:       condition,
		FromGeolocation: fromGeolocation,
		CreatedAt:       time.Now(),
	}

	return r.db.Create(&lookup).Error
}

func (r *LookupSQLRepository) RecentLookup(city string) (*Lookup, error) {
	var lookup Lookup
	err := r.db.Where("city = ?", city).Order("created_at DESC").First(&lookup).Error
	if err != nil {
		return nil, err
	}
	return &lookup, nil
}
