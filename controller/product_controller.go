package controller

import (
	"net/http"

	"foodcart/model"

	"github.com/gin-gonic/gin"
)

// ListProducts returns the products a customer can actually order: those with
// at least one available menu entry anywhere.
func (ctl *Controller) ListProducts(c *gin.Context) {
	available := ctl.DB.Model(&model.RestaurantMenuItem{}).
		Select("product_id").
		Where("availability = ?", true)

	var products []model.Product
	if err := ctl.DB.Preload("Category").Where("id IN (?)", available).Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load products"})
		return
	}

	payload := make([]gin.H, 0, len(products))
	for _, product := range products {
		item := gin.H{
			"id":             product.ID,
			"name":           product.Name,
			"price":          product.Price,
			"special_status": product.SpecialStatus,
			"description":    product.Description,
			"image_url":      imageURL(product.Image),
			"category":       nil,
		}
		if product.Category != nil {
			item["category"] = gin.H{"id": product.Category.ID, "name": product.Category.Name}
		}
		payload = append(payload, item)
	}

	c.JSON(http.StatusOK, payload)
}

func imageURL(image string) string {
	if image == "" {
		return ""
	}
	return "/uploads/" + image
}

// ListBanners serves the promo carousel of the start page.
// TODO: move the banner data into the database once staff can manage promos.
func (ctl *Controller) ListBanners(c *gin.Context) {
	c.JSON(http.StatusOK, []gin.H{
		{"title": "Burger", "src": "/uploads/burger.jpg", "text": "Tasty Burger at your door step"},
		{"title": "Spices", "src": "/uploads/food.jpg", "text": "All Cuisines"},
		{"title": "New York", "src": "/uploads/tasty.jpg", "text": "Food is incomplete without a tasty dessert"},
	})
}
