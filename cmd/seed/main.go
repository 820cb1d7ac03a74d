package main

import (
	"encoding/json"
	"log"
	"os"
	"strings"
	"time"

	"ai-research-be/internal/entity"
	"ai-research-be/pkg/database"
	"ai-research-be/pkg/research"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding research agents...")

	for _, persona := range research.Roster {
		var existing entity.Agent
		if err := db.Where("name = ?", persona.Name).First(&existing).Error; err == nil {
			color.Yellow("Agent %q already exists, skipping...", persona.Name)
			continue
		}

		topics, err := json.Marshal(strings.Fields(persona.QueryKeywords))
		if err != nil {
			log.Fatalf("Error: Failed to encode topics for %q: %v", persona.Name, err)
		}

		agent := entity.Agent{
			Id:              persona.AgentId,
			Name:            persona.Name,
			PersonalityType: persona.Specialization,
			Color:           persona.Color,
			Topics:          topics,
			Style:           persona.Personality,
			CreatedAt:       time.Now(),
		}
		if err := db.Create(&agent).Error; err != nil {
			log.Fatalf("Error: Failed to seed agent %q: %v", persona.Name, err)
		}
		color.Green("Seeded agent %q (%s)", persona.Name, persona.Specialization)
	}

	color.Cyan("✅ Agent seeding completed.")
}
