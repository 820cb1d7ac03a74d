package main

import (
	"log"
	"os"

	"ai-research-be/internal/entity"
	"ai-research-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting GORM Migration...")

	entities := []interface{}{
		&entity.Agent{},
		&entity.Conversation{},
		&entity.Message{},
		&entity.AgentMemory{},
		&entity.NetworkConnection{},
		&entity.Citation{},
	}

	if err := db.AutoMigrate(entities...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	log.Println("✅ Success: Database migration completed successfully via GORM.")
}
