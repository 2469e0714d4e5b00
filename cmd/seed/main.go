package main

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fragenspiel/internal/config"
	"fragenspiel/internal/importer"
	"fragenspiel/internal/repository"
	"fragenspiel/internal/service"
)

// Seeds the persistent catalogs: preloads the sample data and, when
// IMPORT_URL is set, imports a question batch from there.
func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}

	db := client.Database(cfg.MongoDatabase)

	characterRepo := repository.NewCharacterRepo(db)
	questionRepo := repository.NewQuestionRepo(db)
	answerRepo := repository.NewAnswerRepo(db)
	if err := answerRepo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create answer indexes: %v", err)
	}

	adminSvc := service.NewAdminService(db, characterRepo, questionRepo, answerRepo, importer.NewClient())

	preload, err := adminSvc.PreloadSampleData(ctx)
	if err != nil {
		log.Fatalf("Failed to preload sample data: %v", err)
	}
	log.Printf("Preloaded %d characters and %d questions", preload.InsertedCharacters, preload.InsertedQuestions)

	if cfg.ImportURL != "" {
		result, err := adminSvc.ImportQuestions(ctx, cfg.ImportURL, "", 0)
		if err != nil {
			log.Fatalf("Failed to import questions from %s: %v", cfg.ImportURL, err)
		}
		log.Printf("Imported %d questions (%d already present) from %s", result.Imported, result.Skipped, cfg.ImportURL)
	}
}
