// seed inserts the development sample dataset for local testing.
// Idempotent: skips inserts when the first sample user already exists.
package main

import (
	"context"
	"log"
	"os"

	"usip/internal/config"
	credentialrepo "usip/internal/credential/repository"
	"usip/internal/db"
	"usip/internal/devdata"
	membershiprepo "usip/internal/membership/repository"
	userrepo "usip/internal/user/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set; create a .env from .env.example or set DATABASE_URL")
	}

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer conn.Close()

	ctx := context.Background()
	users := userrepo.NewPostgresRepository(conn)

	existing, err := users.GetByID(ctx, devdata.FirstUserID)
	if err != nil {
		log.Fatalf("seed check: %v", err)
	}
	if existing != nil {
		log.Println("Seed already applied (sample user exists). Skipping.")
		os.Exit(0)
	}

	err = devdata.Load(ctx, users,
		credentialrepo.NewPostgresRepository(conn),
		membershiprepo.NewPostgresRepository(conn),
	)
	if err != nil {
		log.Fatalf("seed: %v", err)
	}
	log.Println("Seed completed successfully.")
}
