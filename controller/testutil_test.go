package controller

import (
	"testing"

	"foodcart/database"
	"foodcart/geocoder"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

type stubGeocoder struct {
	calls  int
	coords map[string][2]float64 // address -> {lat, lon}
	err    error
}

func (s *stubGeocoder) Fetch(address string) (float64, float64, error) {
	s.calls++
	if s.err != nil {
		return 0, 0, s.err
	}
	point, ok := s.coords[address]
	if !ok {
		return 0, 0, geocoder.ErrGeocodingFailed
	}
	return point[0], point[1], nil
}

// newTestRouter wires the controller without auth middleware; the JWT gate is
// covered by its own tests.
func newTestRouter(t *testing.T, stub *stubGeocoder) (*gorm.DB, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testDB(t)
	ctl := New(db, geocoder.NewResolver(db, stub))

	router := gin.New()
	router.GET("/api/products", ctl.ListProducts)
	router.POST("/api/orders", ctl.CreateOrder)
	router.GET("/staff/orders", ctl.ListOrders)
	router.PUT("/staff/orders/:id", ctl.UpdateOrder)
	router.GET("/staff/products", ctl.ProductAvailability)
	router.GET("/staff/restaurants", ctl.ListRestaurants)
	router.POST("/staff/menu/import", ctl.ImportMenu)
	return db, router
}
