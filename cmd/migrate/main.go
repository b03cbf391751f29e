// Command main runs schema migrations explicitly. Non-production server
// startup auto-migrates; production deployments run this before rollout.
package main

import (
	"log"

	"trademaster/internal/config"
	"trademaster/internal/database"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("Migration complete")
}
