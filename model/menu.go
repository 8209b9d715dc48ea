package model

// RestaurantMenuItem links a restaurant to a product it sells. A product is
// purchasable system-wide when at least one menu item for it is available.
type RestaurantMenuItem struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	RestaurantID uint       `json:"restaurant_id" gorm:"not null;uniqueIndex:idx_restaurant_product"`
	Restaurant   Restaurant `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	ProductID    uint       `json:"product_id" gorm:"not null;uniqueIndex:idx_restaurant_product"`
	Product      Product    `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Availability bool       `json:"availability" gorm:"index;default:true"`
}
