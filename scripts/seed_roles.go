package main

import (
	"context"
	"log"
	"os"

	"resumeai/reviewer/internal/config"
	"resumeai/reviewer/internal/models"
	"resumeai/reviewer/internal/services"
)

func main() {
	log.Println("🚀 Seeding role catalog into the vector store...")

	// Load configuration
	cfg := config.Load()

	// Initialize services
	geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini: %v", err)
	}

	roleStore, err := services.NewRoleStoreService(
		cfg.Qdrant.URL,
		cfg.Qdrant.APIKey,
		cfg.Qdrant.Collection,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant: %v", err)
	}

	if err := roleStore.InitCollection(); err != nil {
		log.Fatalf("❌ Failed to initialize collection: %v", err)
	}

	promptBuilder := services.NewPromptBuilder()
	ctx := context.Background()

	successCount := 0
	failCount := 0

	for _, role := range models.RoleCatalog {
		log.Printf("📄 Seeding role: %s", role.Title)

		embedding, err := geminiService.GenerateEmbedding(ctx, promptBuilder.BuildRoleText(role))
		if err != nil {
			log.Printf("   ❌ Failed to generate embedding: %v", err)
			failCount++
			continue
		}

		if err := roleStore.UpsertRole(ctx, role, embedding); err != nil {
			log.Printf("   ❌ Failed to upsert role: %v", err)
			failCount++
			continue
		}

		successCount++
	}

	log.Printf("📊 Seeding summary: %d succeeded, %d failed", successCount, failCount)

	if failCount > 0 {
		os.Exit(1)
	}

	log.Println("✅ Role catalog seeded successfully!")
}
