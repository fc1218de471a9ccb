// Command main runs the database seeder for trendpulse.
package main

import (
	"flag"
	"log"

	"trendpulse/internal/config"
	"trendpulse/internal/database"
	"trendpulse/internal/seed"
)

func main() {
	users := flag.Int("users", 5, "Number of synthetic users to create keywords for")
	keywords := flag.Int("keywords", 4, "Keywords per user")
	posts := flag.Int("posts", 25, "Posts per keyword")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("Database Seeder")
	log.Printf("Target: %d users, %d keywords each, %d posts each, clean=%v\n",
		*users, *keywords, *posts, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	s := seed.NewSeeder(db, seed.Options{
		Users:           *users,
		KeywordsPerUser: *keywords,
		PostsPerKeyword: *posts,
	})

	if *shouldClean {
		if err := s.ClearAll(); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}

	if err := s.Run(); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Println("Seeding complete")
}
