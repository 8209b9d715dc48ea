package controller

import (
	"foodcart/geocoder"

	"gorm.io/gorm"
)

type Controller struct {
	DB        *gorm.DB
	Locations *geocoder.Resolver
}

func New(db *gorm.DB, locations *geocoder.Resolver) *Controller {
	return &Controller{DB: db, Locations: locations}
}
