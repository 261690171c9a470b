package main

import (
	"log"

	"github.com/Anasikus/time-tracker/config"
	_ "github.com/Anasikus/time-tracker/docs"
	"github.com/Anasikus/time-tracker/internal/auth"
	"github.com/Anasikus/time-tracker/internal/moderation"
	"github.com/Anasikus/time-tracker/internal/player"
	"github.com/Anasikus/time-tracker/internal/playtime"
	"github.com/Anasikus/time-tracker/routes"
)

// @title Time Tracker API
// @version 1.0
// @description Admin dashboard backend for tracking staff playtime, vacations and moderation stats.
// @host localhost:4000
// @BasePath /api
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	err := config.DB.AutoMigrate(
		&auth.AdminUser{},
		&player.Status{}, &player.Position{}, &player.Server{}, &player.Player{},
		&playtime.TimeLog{},
		&moderation.ModerationStat{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("AutoMigrate successful")

	if err := player.SeedLookups(config.DB); err != nil {
		log.Fatalf("Lookup seeding failed: %v", err)
	}
	if err := auth.SeedAdminUser(auth.NewAuthRepository(config.DB), cfg); err != nil {
		log.Fatalf("Admin seeding failed: %v", err)
	}
	// Old deployments stored duration -1 to mean "on vacation".
	if err := playtime.NormalizeLegacySentinels(config.DB); err != nil {
		log.Fatalf("Time log normalization failed: %v", err)
	}

	r := routes.SetupRoutes()

	log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
