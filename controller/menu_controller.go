package controller

import (
	"log"
	"net/http"
	"strings"

	"foodcart/model"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm/clause"
)

// ImportMenu loads restaurant menu entries from an Excel worksheet. Expected
// columns, after a header row: restaurant name, product name, availability.
// Malformed rows are skipped with a log line; valid rows upsert on the
// (restaurant, product) unique pair.
func (ctl *Controller) ImportMenu(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Excel file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Unable to open Excel file"})
		return
	}
	defer file.Close()

	xl, err := excelize.OpenReader(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to parse Excel file"})
		return
	}

	rows, err := xl.GetRows(xl.GetSheetName(0))
	if err != nil || len(rows) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Excel must have at least one row of data"})
		return
	}

	var restaurants []model.Restaurant
	if err := ctl.DB.Find(&restaurants).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load restaurants"})
		return
	}
	restaurantByName := make(map[string]uint, len(restaurants))
	for _, restaurant := range restaurants {
		restaurantByName[strings.ToLower(restaurant.Name)] = restaurant.ID
	}

	var products []model.Product
	if err := ctl.DB.Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load products"})
		return
	}
	productByName := make(map[string]uint, len(products))
	for _, product := range products {
		productByName[strings.ToLower(product.Name)] = product.ID
	}

	imported, skipped := 0, 0
	for rowIndex, row := range rows[1:] {
		if len(row) < 3 {
			log.Printf("Menu import: row %d incomplete, skipped", rowIndex+2)
			skipped++
			continue
		}

		restaurantID, ok := restaurantByName[strings.ToLower(strings.TrimSpace(row[0]))]
		if !ok {
			log.Printf("Menu import: row %d unknown restaurant %q", rowIndex+2, row[0])
			skipped++
			continue
		}
		productID, ok := productByName[strings.ToLower(strings.TrimSpace(row[1]))]
		if !ok {
			log.Printf("Menu import: row %d unknown product %q", rowIndex+2, row[1])
			skipped++
			continue
		}

		item := model.RestaurantMenuItem{
			RestaurantID: restaurantID,
			ProductID:    productID,
			Availability: parseAvailability(row[2]),
		}
		err := ctl.DB.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "restaurant_id"}, {Name: "product_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"availability"}),
		}).Create(&item).Error
		if err != nil {
			log.Printf("Menu import: row %d failed to save: %v", rowIndex+2, err)
			skipped++
			continue
		}
		imported++
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"imported": imported,
		"skipped":  skipped,
	})
}

func parseAvailability(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "yes", "y":
		return true
	}
	return false
}
