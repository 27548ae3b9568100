// Command prune removes expired entries from the token revocation ledger.
// Run it from cron or a scheduled job; the request path never prunes.
package main

import (
	"context"
	"log"
	"time"

	"fixando/internal/config"
	"fixando/internal/database"
	"fixando/internal/repository"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pruned, err := repository.NewRevocationRepository(db, nil).PruneExpired(ctx)
	if err != nil {
		log.Fatalf("Failed to prune revoked tokens: %v", err)
	}

	log.Printf("Pruned %d expired revoked tokens", pruned)
}
