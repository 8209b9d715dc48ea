package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	GinMode        string
	DatabaseDSN    string
	JWTSecret      string
	GeocoderAPIKey string
	GeocoderURL    string
	GeocoderWait   time.Duration
	AllowedOrigins string
	UploadDir      string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	return &Config{
		Port:           getEnv("PORT", "8083"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		DatabaseDSN:    getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=foodcart port=5432 sslmode=disable"),
		JWTSecret:      getEnv("JWT_SECRET", "foodcart-dev-secret"),
		GeocoderAPIKey: getEnv("YANDEX_GEOCODER_API_KEY", ""),
		GeocoderURL:    getEnv("YANDEX_GEOCODER_URL", "https://geocode-maps.yandex.ru/1.x"),
		GeocoderWait:   getEnvDuration("GEOCODER_TIMEOUT_SECONDS", 5*time.Second),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", ""),
		UploadDir:      getEnv("UPLOAD_DIR", "./uploads"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	seconds, err := strconv.Atoi(value)
	if err != nil || seconds <= 0 {
		log.Printf("Invalid %s=%q, using default", key, value)
		return fallback
	}
	return time.Duration(seconds) * time.Second
}
