package model

import "time"

type Restaurant struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:50;not null"`
	Address      string    `json:"address" gorm:"size:100"`
	ContactPhone string    `json:"contact_phone" gorm:"size:20"`
	CreatedAt    time.Time `json:"-"`

	MenuItems []RestaurantMenuItem `json:"-" gorm:"foreignKey:RestaurantID"`
}
