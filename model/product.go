package model

import "time"

type ProductCategory struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:50;not null"`
}

type Product struct {
	ID            uint             `json:"id" gorm:"primaryKey"`
	Name          string           `json:"name" gorm:"size:50;not null"`
	CategoryID    *uint            `json:"category_id"`
	Category      *ProductCategory `json:"category" gorm:"constraint:OnDelete:SET NULL"`
	Price         float64          `json:"price" gorm:"type:decimal(8,2);not null"`
	Image         string           `json:"image" gorm:"size:200"`
	SpecialStatus bool             `json:"special_status" gorm:"index;default:false"`
	Description   string           `json:"description" gorm:"size:200"`
	CreatedAt     time.Time        `json:"-"`

	MenuItems []RestaurantMenuItem `json:"-" gorm:"foreignKey:ProductID"`
}
