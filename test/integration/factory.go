package integration

import (
	"fmt"
	"math/rand"

	"product-catalog/internal/model"

	"github.com/shopspring/decimal"
)

var productNames = []string{
	"Hat", "Pants", "Shirt", "Apple", "Banana",
	"Pots", "Towels", "Ford", "Chevy", "Hammer", "Wrench",
}

// ProductFactory builds randomized unpersisted products for tests.
type ProductFactory struct {
	rng *rand.Rand
}

// NewProductFactory creates a factory with a fixed seed so failures are
// reproducible.
func NewProductFactory(seed int64) *ProductFactory {
	return &ProductFactory{rng: rand.New(rand.NewSource(seed))}
}

// Build returns one random product.
func (f *ProductFactory) Build() *model.Product {
	categories := model.Categories()

	product := model.NewProduct()
	product.Name = productNames[f.rng.Intn(len(productNames))]
	product.Description = fmt.Sprintf("A fine %d", f.rng.Intn(1000))
	product.Price = decimal.New(int64(f.rng.Intn(9900)+50), -2)
	product.Available = f.rng.Intn(2) == 0
	product.Category = categories[f.rng.Intn(len(categories))]
	return product
}

// BuildBatch returns n random products.
func (f *ProductFactory) BuildBatch(n int) []*model.Product {
	products := make([]*model.Product, 0, n)
	for i := 0; i < n; i++ {
		products = append(products, f.Build())
	}
	return products
}
