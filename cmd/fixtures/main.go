package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"gallera-api/config"
	"gallera-api/fixtures"
	"gallera-api/packages/core/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found, using environment variables")
	}

	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed for the demo roster")
	flag.Usage = printUsage
	flag.Parse()

	if flag.NArg() < 1 {
		printUsage()
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	logger := config.SetupLogger(cfg)
	if cfg.DatabaseURL == "" {
		logger.Fatal().Msg("DATABASE_URL is required")
	}

	db, err := config.ConnectDatabase(cfg.DatabaseURL, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Database connection failed")
	}
	fixtureManager := fixtures.NewFixtures(store.NewGormStore(db), *seed)
	ctx := context.Background()

	switch command := flag.Arg(0); command {
	case "generate":
		if err := fixtureManager.GenerateDemoData(ctx); err != nil {
			logger.Fatal().Err(err).Msg("Failed to generate fixtures")
		}
	case "clear":
		if err := fixtureManager.ClearAllData(ctx); err != nil {
			logger.Fatal().Err(err).Msg("Failed to clear fixtures")
		}
	case "regenerate":
		if err := fixtureManager.ClearAllData(ctx); err != nil {
			logger.Fatal().Err(err).Msg("Failed to clear fixtures")
		}
		if err := fixtureManager.GenerateDemoData(ctx); err != nil {
			logger.Fatal().Err(err).Msg("Failed to generate fixtures")
		}
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  go run ./cmd/fixtures [-seed n] generate    - Load demo teams and 100 roosters into the session")
	fmt.Println("  go run ./cmd/fixtures clear                 - Delete the stored session")
	fmt.Println("  go run ./cmd/fixtures [-seed n] regenerate  - Clear, then load demo data")
}
