package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"

	"github.com/ncgames/games_go_server/config"
	"github.com/ncgames/games_go_server/internal/database"
	"github.com/ncgames/games_go_server/internal/seed"
)

func main() {
	shouldClean := flag.Bool("clean", true, "Clean tables before seeding")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewMySQL(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	seeder := seed.NewSeeder(db)

	if *shouldClean {
		if err := seeder.ClearAll(); err != nil {
			log.Fatalf("Failed to clean tables: %v", err)
		}
	}

	if err := seeder.Load(); err != nil {
		log.Fatalf("Failed to seed: %v", err)
	}

	log.Println("Seed data loaded")
}
