package repository

import (
	"context"

	"product-catalog/internal/model"

	"github.com/shopspring/decimal"
)

// ProductRepository defines the data access contract for products. All
// finders are read-only equality queries; absence is never an error.
type ProductRepository interface {
	// Create inserts a new row for a product whose ID is unset and writes
	// the storage-assigned identifier back into the product.
	Create(ctx context.Context, product *model.Product) error

	// Update overwrites the row matching the product's ID with its current
	// in-memory field values. The ID must already be set.
	Update(ctx context.Context, product *model.Product) error

	// Delete removes the row matching the product's ID. Deleting a product
	// already absent from storage is not an error.
	Delete(ctx context.Context, product *model.Product) error

	// All returns every product in storage-native order.
	All(ctx context.Context) ([]model.Product, error)

	// Find returns the product with the given identifier, or nil when no
	// such row exists.
	Find(ctx context.Context, id int64) (*model.Product, error)

	// FindByName returns all products whose name matches exactly.
	FindByName(ctx context.Context, name string) ([]model.Product, error)

	// FindByPrice returns all products whose price equals the given decimal
	// value exactly.
	FindByPrice(ctx context.Context, price decimal.Decimal) ([]model.Product, error)

	// FindByPriceText normalizes the text form of a price into a decimal
	// value before querying, so "12.50" matches a stored price of 12.50.
	FindByPriceText(ctx context.Context, price string) ([]model.Product, error)

	// FindByAvailability returns all products whose availability matches.
	FindByAvailability(ctx context.Context, available bool) ([]model.Product, error)

	// FindByCategory returns all products in the given category.
	FindByCategory(ctx context.Context, category model.Category) ([]model.Product, error)
}
