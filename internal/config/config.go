package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port             string
	DBPath           string
	MigrationsPath   string
	JWTSecret        string
	SampleQueryLimit int           // max samples fetched per prediction request
	NotifyGatewayURL string        // notification gateway for emergency alerts
	NotifyTimeout    time.Duration // per-contact delivery timeout
}

// Load reads configuration from the environment, with a .env file as fallback
func Load() *Config {
	// A missing .env is fine; deployments set the environment directly
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/compass/compass.db"
	}

	migrationsPath := os.Getenv("MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = "./migrations"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "your-secret-key-change-in-production"
	}

	sampleLimit := 1000
	if v := os.Getenv("SAMPLE_QUERY_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			sampleLimit = n
		}
	}

	notifyURL := os.Getenv("NOTIFY_GATEWAY_URL")
	if notifyURL == "" {
		notifyURL = "http://localhost:8090/notify"
	}

	notifyTimeout := 10 * time.Second
	if v := os.Getenv("NOTIFY_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			notifyTimeout = time.Duration(n) * time.Second
		}
	}

	return &Config{
		Port:             port,
		DBPath:           dbPath,
		MigrationsPath:   migrationsPath,
		JWTSecret:        jwtSecret,
		SampleQueryLimit: sampleLimit,
		NotifyGatewayURL: notifyURL,
		NotifyTimeout:    notifyTimeout,
	}
}
