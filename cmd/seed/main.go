// Command main seeds the database with demo data for development.
package main

import (
	"flag"
	"log"

	"trademaster/internal/config"
	"trademaster/internal/database"
	"trademaster/internal/seed"
)

func main() {
	users := flag.Int("users", 10, "number of users to create")
	comics := flag.Int("comics", 4, "comics per user")
	offers := flag.Int("offers", 2, "offers per comic")
	wishes := flag.Int("wishes", 3, "wish list items per user")
	skipBcrypt := flag.Bool("skip-bcrypt", false, "store plaintext demo passwords (fast, dev only)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Env == "production" || cfg.Env == "prod" {
		log.Fatal("Refusing to seed a production database")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	opts := seed.DefaultOptions()
	opts.Users = *users
	opts.ComicsPerUser = *comics
	opts.OffersPerComic = *offers
	opts.WishesPerUser = *wishes
	opts.SkipBcrypt = *skipBcrypt

	if err := seed.Run(db, opts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Println("Seeding complete")
}
