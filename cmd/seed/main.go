// Command seed populates the gigboard database with demo or randomized data.
package main

import (
	"flag"
	"log"

	"gigboard/internal/config"
	"gigboard/internal/database"
	"gigboard/internal/seed"

	"github.com/joho/godotenv"
)

func main() {
	numUsers := flag.Int("users", 20, "Number of users to create")
	numGigs := flag.Int("gigs", 40, "Number of gigs to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	demo := flag.Bool("demo", false, "Seed the fixed demo accounts instead of randomized data")
	preset := flag.String("preset", "", "Apply a YAML seed preset file (ignores other flags)")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	switch {
	case *preset != "":
		p, err := seed.LoadPreset(*preset)
		if err != nil {
			log.Fatalf("Preset load failed: %v", err)
		}
		if err := p.Apply(db); err != nil {
			log.Fatalf("Preset seeding failed: %v", err)
		}
		log.Printf("Applied preset %s", *preset)
	case *demo:
		if err := seed.Demo(db); err != nil {
			log.Fatalf("Demo seeding failed: %v", err)
		}
	default:
		if err := seed.Seed(db, seed.Options{
			NumUsers:    *numUsers,
			NumGigs:     *numGigs,
			ShouldClean: *shouldClean,
		}); err != nil {
			log.Fatalf("Seeding failed: %v", err)
		}
	}
}
