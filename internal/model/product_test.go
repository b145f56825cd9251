package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProductDefaults(t *testing.T) {
	product := NewProduct()

	assert.Nil(t, product.ID)
	assert.True(t, product.Available)
	assert.Equal(t, CategoryUnknown, product.Category)
}

func TestProductString(t *testing.T) {
	product := NewProduct()
	product.Name = "Fedora"
	assert.Equal(t, "<Product Fedora id=[None]>", product.String())

	id := int64(42)
	product.ID = &id
	assert.Equal(t, "<Product Fedora id=[42]>", product.String())
}

func TestSerialize(t *testing.T) {
	id := int64(7)
	product := &Product{
		ID:          &id,
		Name:        "Fedora",
		Description: "A red hat",
		Price:       decimal.RequireFromString("12.50"),
		Available:   true,
		Category:    CategoryCloths,
	}

	data := product.Serialize()

	assert.Equal(t, int64(7), data["id"])
	assert.Equal(t, "Fedora", data["name"])
	assert.Equal(t, "A red hat", data["description"])
	assert.Equal(t, "12.50", data["price"])
	assert.Equal(t, true, data["available"])
	assert.Equal(t, "CLOTHS", data["category"])
}

func TestSerializeUnpersistedProductHasNilID(t *testing.T) {
	product := NewProduct()
	product.Name = "Hammer"

	data := product.Serialize()

	assert.Nil(t, data["id"])
}

func TestDeserializeRoundTrip(t *testing.T) {
	original := &Product{
		Name:        "Fedora",
		Description: "A red hat",
		Price:       decimal.RequireFromString("12.50"),
		Available:   true,
		Category:    CategoryCloths,
	}

	restored := NewProduct()
	err := restored.Deserialize(original.Serialize())
	require.NoError(t, err)

	assert.Equal(t, original.Name, restored.Name)
	assert.Equal(t, original.Description, restored.Description)
	assert.True(t, original.Price.Equal(restored.Price), "expected %s, got %s", original.Price, restored.Price)
	assert.Equal(t, original.Available, restored.Available)
	assert.Equal(t, original.Category, restored.Category)
}

func TestDeserializePriceForms(t *testing.T) {
	tests := []struct {
		name  string
		price any
	}{
		{"decimal string", "12.50"},
		{"quoted string", `"12.50"`},
		{"float", 12.50},
		{"decimal value", decimal.RequireFromString("12.50")},
	}

	expected := decimal.RequireFromString("12.50")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product := NewProduct()
			err := product.Deserialize(map[string]any{
				"name":      "Fedora",
				"price":     tt.price,
				"available": true,
				"category":  "CLOTHS",
			})
			require.NoError(t, err)
			assert.True(t, expected.Equal(product.Price), "expected %s, got %s", expected, product.Price)
		})
	}
}

func TestDeserializeDescriptionIsOptional(t *testing.T) {
	product := NewProduct()
	err := product.Deserialize(map[string]any{
		"name":      "Fedora",
		"price":     "12.50",
		"available": true,
		"category":  "CLOTHS",
	})

	require.NoError(t, err)
	assert.Equal(t, "", product.Description)
}

func TestDeserializeFailures(t *testing.T) {
	valid := map[string]any{
		"name":        "Fedora",
		"description": "A red hat",
		"price":       "12.50",
		"available":   true,
		"category":    "CLOTHS",
	}

	tests := []struct {
		name   string
		mutate func(data map[string]any)
	}{
		{"missing name", func(d map[string]any) { delete(d, "name") }},
		{"name wrong type", func(d map[string]any) { d["name"] = 12 }},
		{"empty name", func(d map[string]any) { d["name"] = "" }},
		{"description wrong type", func(d map[string]any) { d["description"] = 5 }},
		{"missing price", func(d map[string]any) { delete(d, "price") }},
		{"unparseable price", func(d map[string]any) { d["price"] = "a lot" }},
		{"price wrong type", func(d map[string]any) { d["price"] = []string{"12.50"} }},
		{"missing available", func(d map[string]any) { delete(d, "available") }},
		{"available as string", func(d map[string]any) { d["available"] = "true" }},
		{"available as number", func(d map[string]any) { d["available"] = 1 }},
		{"missing category", func(d map[string]any) { delete(d, "category") }},
		{"category wrong type", func(d map[string]any) { d["category"] = 3 }},
		{"unknown category", func(d map[string]any) { d["category"] = "GROCERIES" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := make(map[string]any, len(valid))
			for k, v := range valid {
				data[k] = v
			}
			tt.mutate(data)

			product := NewProduct()
			err := product.Deserialize(data)
			require.Error(t, err)
			assert.True(t, IsDataValidationError(err), "expected DataValidationError, got %T: %v", err, err)
		})
	}
}

func TestDeserializeFailureLeavesProductUntouched(t *testing.T) {
	product := NewProduct()
	product.Name = "Hammer"
	product.Category = CategoryTools
	product.Price = decimal.RequireFromString("9.99")

	err := product.Deserialize(map[string]any{
		"name":      "Fedora",
		"price":     "12.50",
		"available": "not-a-bool",
		"category":  "CLOTHS",
	})
	require.Error(t, err)

	// The failing field is checked before any assignment happens.
	assert.Equal(t, "Hammer", product.Name)
	assert.Equal(t, CategoryTools, product.Category)
	assert.True(t, decimal.RequireFromString("9.99").Equal(product.Price))
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"plain", "12.50", "12.50", false},
		{"quoted", `"12.50"`, "12.50", false},
		{"padded", ` 12.50 `, "12.50", false},
		{"integer", "5", "5", false},
		{"garbage", "twelve", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePrice(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}
