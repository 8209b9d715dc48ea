package model

import "time"

type OrderStatus string

const (
	StatusUnanswered OrderStatus = "UNANSWERED"
	StatusEnRoute    OrderStatus = "EN_ROUTE"
	StatusCompleted  OrderStatus = "COMPLETED"
)

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "CASH"
	PaymentCard PaymentMethod = "CARD"
)

type Order struct {
	ID            uint          `json:"id" gorm:"primaryKey"`
	Firstname     string        `json:"firstname" gorm:"size:50;not null"`
	Lastname      string        `json:"lastname" gorm:"size:50;not null"`
	Phonenumber   string        `json:"phonenumber" gorm:"size:20;not null"`
	Address       string        `json:"address" gorm:"size:100;not null"`
	Status        OrderStatus   `json:"status" gorm:"size:12;index;default:'UNANSWERED'"`
	PaymentMethod PaymentMethod `json:"payment_method" gorm:"size:5;index"`
	Note          string        `json:"note" gorm:"size:200"`
	RestaurantID  *uint         `json:"restaurant_id"`
	Restaurant    *Restaurant   `json:"-" gorm:"constraint:OnDelete:SET NULL"`
	CreatedAt     time.Time     `json:"created_at" gorm:"index"`
	CalledAt      *time.Time    `json:"called_at" gorm:"index"`
	DeliveredAt   *time.Time    `json:"delivered_at" gorm:"index"`

	Positions []OrderPosition `json:"-" gorm:"foreignKey:OrderID"`
}

// OrderPosition keeps TotalPrice as a snapshot of quantity x catalog price
// taken when the order was registered. Later price changes never touch it.
type OrderPosition struct {
	ID         uint    `json:"id" gorm:"primaryKey"`
	OrderID    uint    `json:"order_id" gorm:"not null"`
	Order      Order   `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	ProductID  uint    `json:"product_id" gorm:"not null"`
	Product    Product `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Quantity   int     `json:"quantity" gorm:"not null"`
	TotalPrice float64 `json:"total_price" gorm:"type:decimal(8,2);not null"`
}
