package main

import (
	"log"
	"os"
	"time"

	"foodcart/auth"
	"foodcart/config"
	"foodcart/controller"
	"foodcart/database"
	"foodcart/geocoder"
	"foodcart/route"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		log.Println("Running in debug mode")
	}

	db := database.InitDatabase(cfg.DatabaseDSN)

	geocoderClient := geocoder.NewClient(cfg.GeocoderURL, cfg.GeocoderAPIKey, cfg.GeocoderWait)
	locations := geocoder.NewResolver(db, geocoderClient)

	ctl := controller.New(db, locations)
	authHandler := auth.NewHandler(db, cfg.JWTSecret)

	router := gin.Default()

	origins := []string{"http://localhost:3000"}
	if cfg.AllowedOrigins != "" {
		origins = append(origins, cfg.AllowedOrigins)
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	route.Register(router, ctl, authHandler, cfg.JWTSecret)
	log.Println("Routes configured")

	if err := os.MkdirAll(cfg.UploadDir, 0755); err != nil {
		log.Fatalf("Failed to create uploads directory: %v", err)
	}
	router.Static("/uploads", cfg.UploadDir)

	log.Printf("Starting server on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
