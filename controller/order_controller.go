package controller

import (
	"fmt"
	"log"
	"net/http"

	"foodcart/model"

	"github.com/gin-gonic/gin"
)

type orderItemRequest struct {
	Product  uint `json:"product" binding:"required"`
	Quantity int  `json:"quantity" binding:"required,min=1"`
}

type orderRequest struct {
	Firstname   string             `json:"firstname" binding:"required"`
	Lastname    string             `json:"lastname" binding:"required"`
	Phonenumber string             `json:"phonenumber" binding:"required,max=20"`
	Address     string             `json:"address" binding:"required,max=100"`
	Products    []orderItemRequest `json:"products" binding:"required,min=1,dive"`
}

// CreateOrder registers a customer order. The order header and all positions
// are written in one transaction; each position's total price is snapshotted
// from the catalog price at this moment and never recomputed.
func (ctl *Controller) CreateOrder(c *gin.Context) {
	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	productIDs := make([]uint, 0, len(req.Products))
	for _, item := range req.Products {
		productIDs = append(productIDs, item.Product)
	}

	var products []model.Product
	if err := ctl.DB.Where("id IN ?", productIDs).Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load products"})
		return
	}
	priceByID := make(map[uint]float64, len(products))
	for _, product := range products {
		priceByID[product.ID] = product.Price
	}
	for _, item := range req.Products {
		if _, ok := priceByID[item.Product]; !ok {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   fmt.Sprintf("Unknown product id %d", item.Product),
			})
			return
		}
	}

	order := model.Order{
		Firstname:   req.Firstname,
		Lastname:    req.Lastname,
		Phonenumber: req.Phonenumber,
		Address:     req.Address,
		Status:      model.StatusUnanswered,
	}

	tx := ctl.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Unexpected error occurred"})
		}
	}()

	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create order"})
		return
	}

	positions := make([]model.OrderPosition, 0, len(req.Products))
	for _, item := range req.Products {
		positions = append(positions, model.OrderPosition{
			OrderID:    order.ID,
			ProductID:  item.Product,
			Quantity:   item.Quantity,
			TotalPrice: float64(item.Quantity) * priceByID[item.Product],
		})
	}
	if err := tx.Create(&positions).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to save order positions"})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Transaction failed"})
		return
	}

	// Warm the location cache for the dispatch view. A geocoder outage must
	// not fail an already accepted order.
	if _, _, err := ctl.Locations.Resolve(order.Address); err != nil {
		log.Printf("Geocoding deferred for order %d address %q: %v", order.ID, order.Address, err)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": order})
}
