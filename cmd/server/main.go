package main

import (
	"log"

	"github.com/parameshwar777/compass-pal-backend-go/internal/api"
	"github.com/parameshwar777/compass-pal-backend-go/internal/config"
	"github.com/parameshwar777/compass-pal-backend-go/internal/database"
)

func main() {
	cfg := config.Load()

	dbConfig := database.Config{
		Path: cfg.DBPath,
	}
	if err := database.Init(dbConfig); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.Close()

	migrations := database.NewMigrationManager(database.GetDB(), cfg.MigrationsPath)
	if err := migrations.RunMigrations(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	router := api.SetupRouter(cfg)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
