package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"product-catalog/internal/config"
	"product-catalog/internal/database"
	"product-catalog/internal/repository"
)

// A small bootstrap check: bind the catalogue to the configured database,
// ensure the schema, and print what it holds. The surrounding service
// (HTTP layer, CLI, tests) owns everything beyond this.
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting product catalogue check")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := database.InitDB(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	repo := repository.NewProductRepository(pool, logger)

	products, err := repo.All(ctx)
	if err != nil {
		return fmt.Errorf("failed to list products: %w", err)
	}

	logger.Info().Int("count", len(products)).Msg("catalogue contents")
	for _, product := range products {
		logger.Info().
			Str("product", product.String()).
			Str("price", product.Price.String()).
			Bool("available", product.Available).
			Str("category", product.Category.String()).
			Msg("product")
	}

	return nil
}
