package main

import (
	"log"

	"github.com/touchlinehq/touchline/config"
	_ "github.com/touchlinehq/touchline/docs"
	"github.com/touchlinehq/touchline/internal/catalog"
	"github.com/touchlinehq/touchline/internal/club"
	"github.com/touchlinehq/touchline/internal/methodology"
	"github.com/touchlinehq/touchline/internal/session"
	"github.com/touchlinehq/touchline/internal/team"
	"github.com/touchlinehq/touchline/internal/user"
	"github.com/touchlinehq/touchline/routes"
)

// @title Touchline REST API
// @version 1.0
// @description Club and team coaching methodology backend.
// @host localhost:8090
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := config.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&user.User{}, &user.Role{}, &user.RefreshToken{},
		&club.Club{}, &club.ClubMember{}, &club.ClubFacilities{},
		&team.Team{}, &team.Player{},
		&catalog.Entry{}, &catalog.PositionDefault{},
		&methodology.MethodologyConfig{}, &methodology.TrainingRule{},
		&session.TrainingSession{}, &session.SessionAttendance{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("AutoMigrate successful")

	if err := catalog.Seed(db); err != nil {
		log.Fatalf("Catalog seed failed: %v", err)
	}

	r := routes.SetupRoutes(db, cfg)

	log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
