package model

import "time"

// Location caches geocoder results keyed by the exact address string as it was
// submitted. No normalization: two spellings of one place are two rows.
// Coordinates stay null until a geocode succeeds for the address.
type Location struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Address     string    `json:"address" gorm:"size:100;uniqueIndex;not null"`
	Latitude    *float64  `json:"latitude"`
	Longitude   *float64  `json:"longitude"`
	RequestedAt time.Time `json:"requested_at" gorm:"index"`
}
