package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/vee-grants/vee-api/config"
	"github.com/vee-grants/vee-api/database"
)

func main() {
	clearTables := flag.Bool("clear", false, "drop all tables instead of seeding")
	flag.Parse()

	// Load environment variables
	if err := config.LoadENV(); err != nil {
		log.Fatalf("Failed to load .env: %v", err)
	}

	env, err := config.Get()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Initialize database connection using GORM
	store, err := database.StartGORM(env)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer store.Close()

	seeder := database.NewSeeder(store.GetDB(), env.BCRYPT_COST)

	if *clearTables {
		if err := seeder.Clear(); err != nil {
			log.Fatalf("❌ Clearing failed: %v", err)
		}
		return
	}

	if err := store.Init(); err != nil {
		log.Fatalf("Failed to create tables: %v", err)
	}

	separator := strings.Repeat("=", 60)
	fmt.Println(separator)
	fmt.Println("Vee Grants - Database Seeding")
	fmt.Println(separator)
	fmt.Println()

	summary, err := seeder.SeedAll()
	if err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}
	if summary.Skipped {
		fmt.Println("Demo user already exists. Nothing to do.")
		return
	}

	fmt.Println()
	fmt.Println(separator)
	fmt.Println("🎉 Seeding completed successfully!")
	fmt.Println(separator)
	fmt.Printf("   - Created %d user (email: %s, password: %s)\n", summary.Users, database.DemoUserEmail, database.DemoUserPassword)
	fmt.Printf("   - Created %d foundation\n", summary.Foundations)
	fmt.Printf("   - Created %d grants\n", summary.Grants)
	fmt.Printf("   - Created %d grant feedbacks\n", summary.Feedbacks)
	fmt.Println()
}
