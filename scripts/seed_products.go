package main

import (
	"context"
	"fmt"
	"os"

	"product-catalog/internal/config"
	"product-catalog/internal/database"
	"product-catalog/internal/model"
	"product-catalog/internal/repository"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Seeds a handful of sample products for local development:
//
//	go run ./scripts
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	pool, err := database.InitDB(ctx, cfg.Database, zerolog.Nop())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize database: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	repo := repository.NewProductRepository(pool, zerolog.Nop())

	samples := []struct {
		name        string
		description string
		price       string
		available   bool
		category    model.Category
	}{
		{"Fedora", "A red hat", "12.50", true, model.CategoryCloths},
		{"Sweater", "A wool sweater", "49.95", true, model.CategoryCloths},
		{"Apple", "A granny smith", "0.75", true, model.CategoryFood},
		{"Kettle", "A stovetop kettle", "24.00", false, model.CategoryHousewares},
		{"Wiper blades", "All-season wiper blades", "18.10", true, model.CategoryAutomotive},
		{"Hammer", "A claw hammer", "13.25", true, model.CategoryTools},
	}

	for _, sample := range samples {
		product := model.NewProduct()
		product.Name = sample.name
		product.Description = sample.description
		product.Price = decimal.RequireFromString(sample.price)
		product.Available = sample.available
		product.Category = sample.category

		if err := repo.Create(ctx, product); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to seed product %s: %v\n", sample.name, err)
			os.Exit(1)
		}
		fmt.Printf("Seeded %s\n", product)
	}
}
