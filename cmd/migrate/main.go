// migrate applies database migrations. Usage: migrate [up|down] (default up).
package main

import (
	"log"
	"os"

	"usip/internal/config"
	"usip/internal/db/migrate"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	direction := "up"
	if len(os.Args) > 1 {
		direction = os.Args[1]
	}

	if err := migrate.Run(cfg.DatabaseURL, direction); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	log.Printf("migrations applied (%s)", direction)
}
