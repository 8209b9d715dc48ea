package geocoder

import (
	"errors"
	"time"

	"foodcart/model"

	"gorm.io/gorm"
)

// Resolver is the location cache in front of a Geocoder. Cache keys are the
// exact submitted address strings; differently formatted spellings of the same
// place get independent rows.
type Resolver struct {
	db     *gorm.DB
	client Geocoder
}

func NewResolver(db *gorm.DB, client Geocoder) *Resolver {
	return &Resolver{db: db, client: client}
}

// Resolve returns cached coordinates for the address, geocoding and persisting
// on the first lookup. A cached row with null coordinates (an earlier failed
// geocode) is retried rather than treated as a permanent miss.
func (r *Resolver) Resolve(address string) (float64, float64, error) {
	var loc model.Location
	err := r.db.Where("address = ?", address).First(&loc).Error
	switch {
	case err == nil:
		if loc.Latitude != nil && loc.Longitude != nil {
			return *loc.Latitude, *loc.Longitude, nil
		}
		return r.refresh(&loc)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return r.create(address)
	default:
		return 0, 0, err
	}
}

func (r *Resolver) create(address string) (float64, float64, error) {
	latitude, longitude, fetchErr := r.client.Fetch(address)

	loc := model.Location{Address: address, RequestedAt: time.Now()}
	if fetchErr == nil {
		loc.Latitude = &latitude
		loc.Longitude = &longitude
	}
	// The row is written even when the geocode failed, so the address is
	// remembered and retried on the next lookup.
	if err := r.db.Create(&loc).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the create race; the first writer's row wins.
			return r.Resolve(address)
		}
		return 0, 0, err
	}

	if fetchErr != nil {
		return 0, 0, fetchErr
	}
	return latitude, longitude, nil
}

func (r *Resolver) refresh(loc *model.Location) (float64, float64, error) {
	latitude, longitude, err := r.client.Fetch(loc.Address)
	if err != nil {
		return 0, 0, err
	}

	updates := map[string]interface{}{
		"latitude":     latitude,
		"longitude":    longitude,
		"requested_at": time.Now(),
	}
	if err := r.db.Model(loc).Updates(updates).Error; err != nil {
		return 0, 0, err
	}
	return latitude, longitude, nil
}
