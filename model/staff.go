package model

import "time"

type StaffUser struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"size:75;uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"size:100;not null"`
	Name         string    `json:"name" gorm:"size:100"`
	CreatedAt    time.Time `json:"-"`
}
