package controller

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"foodcart/dispatch"
	"foodcart/model"

	"github.com/gin-gonic/gin"
)

// ListOrders is the dispatch view: orders with their aggregated cost and, for
// unassigned ones, restaurants able to cook the whole order ranked by distance
// from the delivery address. Shows unprocessed orders unless ?status= says
// otherwise.
func (ctl *Controller) ListOrders(c *gin.Context) {
	status := c.DefaultQuery("status", string(model.StatusUnanswered))
	query := ctl.DB.Preload("Positions").Order("created_at")
	if status != "all" {
		if !validStatus(status) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Unknown status filter"})
			return
		}
		query = query.Where("status = ?", status)
	}

	var orders []model.Order
	if err := query.Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load orders"})
		return
	}

	costByOrder, err := ctl.orderCosts(orders)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to aggregate order costs"})
		return
	}

	restaurantsByProduct, restaurantByID, err := ctl.availabilityIndex(orders)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load menu availability"})
		return
	}

	payload := make([]gin.H, 0, len(orders))
	for _, order := range orders {
		payload = append(payload, ctl.serializeOrder(order, costByOrder[order.ID], restaurantsByProduct, restaurantByID))
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": payload})
}

func (ctl *Controller) orderCosts(orders []model.Order) (map[uint]float64, error) {
	if len(orders) == 0 {
		return map[uint]float64{}, nil
	}
	orderIDs := make([]uint, 0, len(orders))
	for _, order := range orders {
		orderIDs = append(orderIDs, order.ID)
	}

	var rows []struct {
		OrderID uint
		Cost    float64
	}
	err := ctl.DB.Model(&model.OrderPosition{}).
		Select("order_id, SUM(total_price) AS cost").
		Where("order_id IN ?", orderIDs).
		Group("order_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	costs := make(map[uint]float64, len(rows))
	for _, row := range rows {
		costs[row.OrderID] = row.Cost
	}
	return costs, nil
}

// availabilityIndex maps every product referenced by the orders to the
// restaurants currently selling it, plus a lookup of the restaurants.
func (ctl *Controller) availabilityIndex(orders []model.Order) (map[uint][]uint, map[uint]model.Restaurant, error) {
	productSeen := make(map[uint]bool)
	var productIDs []uint
	for _, order := range orders {
		for _, position := range order.Positions {
			if !productSeen[position.ProductID] {
				productSeen[position.ProductID] = true
				productIDs = append(productIDs, position.ProductID)
			}
		}
	}

	restaurantsByProduct := make(map[uint][]uint)
	if len(productIDs) > 0 {
		var items []model.RestaurantMenuItem
		err := ctl.DB.Where("availability = ? AND product_id IN ?", true, productIDs).Find(&items).Error
		if err != nil {
			return nil, nil, err
		}
		for _, item := range items {
			restaurantsByProduct[item.ProductID] = append(restaurantsByProduct[item.ProductID], item.RestaurantID)
		}
	}

	var restaurants []model.Restaurant
	if err := ctl.DB.Find(&restaurants).Error; err != nil {
		return nil, nil, err
	}
	restaurantByID := make(map[uint]model.Restaurant, len(restaurants))
	for _, restaurant := range restaurants {
		restaurantByID[restaurant.ID] = restaurant
	}

	return restaurantsByProduct, restaurantByID, nil
}

func (ctl *Controller) serializeOrder(order model.Order, cost float64, restaurantsByProduct map[uint][]uint, restaurantByID map[uint]model.Restaurant) gin.H {
	serialized := gin.H{
		"id":             order.ID,
		"status":         order.Status,
		"payment_method": order.PaymentMethod,
		"cost":           cost,
		"firstname":      order.Firstname,
		"lastname":       order.Lastname,
		"phonenumber":    order.Phonenumber,
		"address":        order.Address,
		"note":           order.Note,
		"restaurant_id":  order.RestaurantID,
		"unassignable":   false,
		"restaurants":    []gin.H{},
	}

	productIDs := make([]uint, 0, len(order.Positions))
	for _, position := range order.Positions {
		productIDs = append(productIDs, position.ProductID)
	}

	eligible, err := dispatch.EligibleRestaurants(restaurantsByProduct, productIDs)
	if err != nil || len(eligible) == 0 {
		serialized["unassignable"] = true
		return serialized
	}

	orderLat, orderLon, err := ctl.Locations.Resolve(order.Address)
	if err != nil {
		log.Printf("Distance ranking unavailable for order %d: %v", order.ID, err)
		serialized["restaurants"] = nil
		return serialized
	}

	candidates := make([]dispatch.Candidate, 0, len(eligible))
	for _, restaurantID := range eligible {
		restaurant, ok := restaurantByID[restaurantID]
		if !ok {
			continue
		}
		lat, lon, err := ctl.Locations.Resolve(restaurant.Address)
		if err != nil {
			log.Printf("Excluding restaurant %d from ranking for order %d: %v", restaurant.ID, order.ID, err)
			continue
		}
		candidates = append(candidates, dispatch.Candidate{
			ID:        restaurant.ID,
			Name:      restaurant.Name,
			Latitude:  lat,
			Longitude: lon,
		})
	}

	ranked := dispatch.Rank(orderLat, orderLon, candidates)
	suggestions := make([]gin.H, 0, len(ranked))
	for _, candidate := range ranked {
		suggestions = append(suggestions, gin.H{
			"id":          candidate.ID,
			"name":        candidate.Name,
			"distance_km": fmt.Sprintf("%.3f", candidate.DistanceKM),
		})
	}
	serialized["restaurants"] = suggestions
	return serialized
}

type updateOrderRequest struct {
	Status        *string `json:"status"`
	PaymentMethod *string `json:"payment_method"`
	RestaurantID  *uint   `json:"restaurant_id"`
	Note          *string `json:"note"`
}

// UpdateOrder lets staff assign a restaurant and move the order through its
// lifecycle. CalledAt and DeliveredAt are stamped on the first transition into
// EN_ROUTE and COMPLETED and never overwritten.
func (ctl *Controller) UpdateOrder(c *gin.Context) {
	var req updateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	var order model.Order
	if err := ctl.DB.First(&order, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Order not found"})
		return
	}

	if req.Status != nil {
		if !validStatus(*req.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Unknown order status"})
			return
		}
		order.Status = model.OrderStatus(*req.Status)
		now := time.Now()
		if order.Status == model.StatusEnRoute && order.CalledAt == nil {
			order.CalledAt = &now
		}
		if order.Status == model.StatusCompleted && order.DeliveredAt == nil {
			order.DeliveredAt = &now
		}
	}

	if req.PaymentMethod != nil {
		method := model.PaymentMethod(*req.PaymentMethod)
		if method != model.PaymentCash && method != model.PaymentCard {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Unknown payment method"})
			return
		}
		order.PaymentMethod = method
	}

	if req.RestaurantID != nil {
		var restaurant model.Restaurant
		if err := ctl.DB.First(&restaurant, *req.RestaurantID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Unknown restaurant"})
			return
		}
		order.RestaurantID = req.RestaurantID
	}

	if req.Note != nil {
		order.Note = *req.Note
	}

	if err := ctl.DB.Save(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": order})
}

func validStatus(status string) bool {
	switch model.OrderStatus(status) {
	case model.StatusUnanswered, model.StatusEnRoute, model.StatusCompleted:
		return true
	}
	return false
}

// ProductAvailability builds the per-restaurant availability matrix of the
// products page: for each product, availability flags ordered the same way as
// the restaurant list.
func (ctl *Controller) ProductAvailability(c *gin.Context) {
	var restaurants []model.Restaurant
	if err := ctl.DB.Order("name").Find(&restaurants).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load restaurants"})
		return
	}

	var products []model.Product
	if err := ctl.DB.Preload("MenuItems").Order("name").Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load products"})
		return
	}

	restaurantHeaders := make([]gin.H, 0, len(restaurants))
	for _, restaurant := range restaurants {
		restaurantHeaders = append(restaurantHeaders, gin.H{"id": restaurant.ID, "name": restaurant.Name})
	}

	rows := make([]gin.H, 0, len(products))
	for _, product := range products {
		availabilityByRestaurant := make(map[uint]bool, len(product.MenuItems))
		for _, item := range product.MenuItems {
			availabilityByRestaurant[item.RestaurantID] = item.Availability
		}
		availability := make([]bool, 0, len(restaurants))
		for _, restaurant := range restaurants {
			availability = append(availability, availabilityByRestaurant[restaurant.ID])
		}
		rows = append(rows, gin.H{
			"product":      gin.H{"id": product.ID, "name": product.Name},
			"availability": availability,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"restaurants": restaurantHeaders,
		"products":    rows,
	})
}

func (ctl *Controller) ListRestaurants(c *gin.Context) {
	var restaurants []model.Restaurant
	if err := ctl.DB.Order("name").Find(&restaurants).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load restaurants"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": restaurants})
}
