package database

import (
	"log"

	"foodcart/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDatabase(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// Surfaces unique-constraint violations as gorm.ErrDuplicatedKey,
		// which the location cache relies on for its first-writer-wins path.
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to access database handle: %v", err)
	}
	if err := sqlDB.Ping(); err != nil {
		log.Fatalf("Database is unreachable: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Database connected and migrated")
	return db
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Restaurant{},
		&model.ProductCategory{},
		&model.Product{},
		&model.RestaurantMenuItem{},
		&model.Order{},
		&model.OrderPosition{},
		&model.Location{},
		&model.StaffUser{},
	)
}
