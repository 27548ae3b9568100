// Command seed fills the database with demo users, posts, comments and
// reactions for local development.
package main

import (
	"flag"
	"log"

	"fixando/internal/config"
	"fixando/internal/database"
	"fixando/internal/seed"

	"github.com/joho/godotenv"
)

func main() {
	users := flag.Int("users", 10, "number of users to create")
	posts := flag.Int("posts", 3, "posts per user")
	comments := flag.Int("comments", 2, "comments per post")
	clean := flag.Bool("clean", false, "delete existing data first")
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

	if err := seed.Run(db, seed.Options{
		NumUsers:        *users,
		PostsPerUser:    *posts,
		CommentsPerPost: *comments,
		ShouldClean:     *clean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
