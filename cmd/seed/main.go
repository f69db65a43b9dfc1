// Command seed bulk-loads an artworks JSON dump into Postgres.
//
// Usage:
//
//	go run ./cmd/seed -file data/artworks.json
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"artworks-backend/internal/config"
	"artworks-backend/internal/domains/artwork/model"
	"artworks-backend/internal/domains/artwork/repository"
	"artworks-backend/internal/infrastructure/database"
	"artworks-backend/pkg/logger"
)

func main() {
	filePath := flag.String("file", "data/artworks.json", "path to the artworks JSON dump")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found, using environment variables")
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}
	logger.Init(env)

	if err := run(*filePath); err != nil {
		log.Fatal().Err(err).Msg("Seed failed")
	}
}

func run(filePath string) error {
	artworks, err := loadArtworks(filePath)
	if err != nil {
		return err
	}
	log.Info().Int("count", len(artworks)).Str("file", filePath).Msg("Loaded artworks from dump")

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// The seeder writes straight through the repository; no cache layer.
	repo := repository.NewPostgresRepository(db.Pool, nil)

	inserted, err := repo.InsertBatch(ctx, artworks)
	if err != nil {
		return fmt.Errorf("failed to insert artworks: %w", err)
	}

	log.Info().Int64("inserted", inserted).Msg("Seed complete")
	return nil
}

// loadArtworks reads the dump and validates every row before anything is
// written, so a bad dump fails fast instead of half-loading.
func loadArtworks(filePath string) ([]model.Artwork, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filePath, err)
	}

	var artworks []model.Artwork
	if err := json.Unmarshal(data, &artworks); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filePath, err)
	}

	for i := range artworks {
		if err := artworks[i].Validate(); err != nil {
			return nil, fmt.Errorf("invalid artwork at index %d (id %d): %w", i, artworks[i].ID, err)
		}
	}
	return artworks, nil
}
