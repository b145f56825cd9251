package repository

import (
	"context"
	"errors"
	"fmt"

	"product-catalog/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// productColumns is the canonical select list. The price travels as text
// so decimal precision survives the round trip.
const productColumns = `id, name, description, price::text, available, category`

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// Create inserts a new row and writes the assigned identifier back into the
// product. The insert runs in its own transaction; on rejection the
// transaction is rolled back and the product's ID is left unchanged.
func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	query := `
		INSERT INTO products (name, description, price, available, category)
		VALUES ($1, $2, $3::numeric, $4, $5)
		RETURNING id
	`

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var id int64
	err = tx.QueryRow(ctx, query,
		product.Name,
		product.Description,
		product.Price.String(),
		product.Available,
		product.Category.String(),
	).Scan(&id)
	if err != nil {
		r.logger.Error().Err(err).Str("name", product.Name).Msg("failed to create product")
		return model.WrapDataValidationError("create rejected by storage", err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Error().Err(err).Str("name", product.Name).Msg("failed to commit product create")
		return model.WrapDataValidationError("create rejected by storage", err)
	}

	product.ID = &id

	r.logger.Debug().Int64("product_id", id).Str("name", product.Name).Msg("product created")

	return nil
}

// Update overwrites the existing row matching the product's identifier.
// A product that has never been created has no identifier, which is a
// caller logic error caught before any write is issued.
func (r *productRepository) Update(ctx context.Context, product *model.Product) error {
	if product.ID == nil {
		r.logger.Warn().Str("name", product.Name).Msg("update called with empty id field")
		return model.NewDataValidationError("update called with empty id field")
	}

	query := `
		UPDATE products
		SET name = $2, description = $3, price = $4::numeric, available = $5, category = $6
		WHERE id = $1
	`

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, query,
		*product.ID,
		product.Name,
		product.Description,
		product.Price.String(),
		product.Available,
		product.Category.String(),
	)
	if err != nil {
		r.logger.Error().Err(err).Int64("product_id", *product.ID).Msg("failed to update product")
		return model.WrapDataValidationError("update rejected by storage", err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Error().Err(err).Int64("product_id", *product.ID).Msg("failed to commit product update")
		return model.WrapDataValidationError("update rejected by storage", err)
	}

	if tag.RowsAffected() == 0 {
		r.logger.Debug().Int64("product_id", *product.ID).Msg("update matched no rows")
	}

	return nil
}

// Delete removes the row matching the product's identifier. It is no-op
// safe: a product already absent from storage, or one that was never
// persisted, deletes cleanly.
func (r *productRepository) Delete(ctx context.Context, product *model.Product) error {
	if product.ID == nil {
		r.logger.Debug().Str("name", product.Name).Msg("delete called on unpersisted product")
		return nil
	}

	query := `DELETE FROM products WHERE id = $1`

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, query, *product.ID); err != nil {
		r.logger.Error().Err(err).Int64("product_id", *product.ID).Msg("failed to delete product")
		return model.WrapDataValidationError("delete rejected by storage", err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Error().Err(err).Int64("product_id", *product.ID).Msg("failed to commit product delete")
		return model.WrapDataValidationError("delete rejected by storage", err)
	}

	r.logger.Debug().Int64("product_id", *product.ID).Msg("product deleted")

	return nil
}

// All returns every product in storage-native order.
func (r *productRepository) All(ctx context.Context) ([]model.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products`, productColumns)
	return r.queryProducts(ctx, query)
}

// Find returns the product with the given identifier, or nil when no such
// row exists. Absence is a normal result, not an error.
func (r *productRepository) Find(ctx context.Context, id int64) (*model.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE id = $1`, productColumns)

	product, err := scanProduct(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("product_id", id).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	return product, nil
}

// FindByName returns all products whose name matches exactly.
func (r *productRepository) FindByName(ctx context.Context, name string) ([]model.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE name = $1`, productColumns)
	return r.queryProducts(ctx, query, name)
}

// FindByPrice returns all products whose price equals the given value
// exactly, compared with decimal precision on the database side.
func (r *productRepository) FindByPrice(ctx context.Context, price decimal.Decimal) ([]model.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE price = $1::numeric`, productColumns)
	return r.queryProducts(ctx, query, price.String())
}

// FindByPriceText normalizes the text form of a price into its decimal
// value before querying. Naive string-vs-decimal comparison would never
// match, so callers passing "12.50" go through the same path as callers
// passing the decimal value.
func (r *productRepository) FindByPriceText(ctx context.Context, price string) ([]model.Product, error) {
	value, err := model.ParsePrice(price)
	if err != nil {
		return nil, err
	}
	return r.FindByPrice(ctx, value)
}

// FindByAvailability returns all products whose availability matches.
func (r *productRepository) FindByAvailability(ctx context.Context, available bool) ([]model.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE available = $1`, productColumns)
	return r.queryProducts(ctx, query, available)
}

// FindByCategory returns all products in the given category.
func (r *productRepository) FindByCategory(ctx context.Context, category model.Category) ([]model.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE category = $1`, productColumns)
	return r.queryProducts(ctx, query, category.String())
}

// queryProducts runs a select over the products table and scans the result
// set into model values.
func (r *productRepository) queryProducts(ctx context.Context, query string, args ...any) ([]model.Product, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, *product)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// scanProduct reads one row in productColumns order into a model.Product.
func scanProduct(row pgx.Row) (*model.Product, error) {
	var (
		id          int64
		name        string
		description *string
		priceText   string
		available   bool
		category    string
	)

	if err := row.Scan(&id, &name, &description, &priceText, &available, &category); err != nil {
		return nil, err
	}

	price, err := decimal.NewFromString(priceText)
	if err != nil {
		return nil, fmt.Errorf("invalid stored price %q: %w", priceText, err)
	}

	parsedCategory, err := model.ParseCategory(category)
	if err != nil {
		return nil, fmt.Errorf("invalid stored category %q: %w", category, err)
	}

	product := &model.Product{
		ID:        &id,
		Name:      name,
		Price:     price,
		Available: available,
		Category:  parsedCategory,
	}
	if description != nil {
		product.Description = *description
	}

	return product, nil
}
