// Command migrate creates or updates the database schema without starting the API.
// Usage: go run ./cmd/migrate
package main

import (
	"log"

	"github.com/vee-grants/vee-api/config"
	"github.com/vee-grants/vee-api/database"
	"github.com/vee-grants/vee-api/model"
	"gorm.io/gorm"
)

func main() {
	log.Println("=== GORM Migration ===")

	if err := config.LoadENV(); err != nil {
		log.Fatal("Failed to load environment variables:", err)
	}

	env, err := config.Get()
	if err != nil {
		log.Fatal("Invalid configuration:", err)
	}

	store, err := database.StartGORM(env)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer store.Close()

	if err := store.Init(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	if err := store.HealthCheck(); err != nil {
		log.Fatal("Database health check failed:", err)
	}

	log.Println("✅ All migrations completed successfully!")
	log.Println("Tables:")
	for _, table := range tableNames(store.GetDB()) {
		log.Printf("  - %s", table)
	}
}

func tableNames(db *gorm.DB) []string {
	names := make([]string, 0, len(model.All()))
	for _, m := range model.All() {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(m); err != nil {
			continue
		}
		names = append(names, stmt.Schema.Table)
	}
	return names
}
