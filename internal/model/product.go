package model

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Product represents a single item in the catalogue. ID is nil until the
// product has been persisted for the first time; the storage layer owns
// identifier assignment.
type Product struct {
	ID          *int64          `json:"id" db:"id"`
	Name        string          `json:"name" db:"name"`
	Description string          `json:"description" db:"description"`
	Price       decimal.Decimal `json:"price" db:"price"`
	Available   bool            `json:"available" db:"available"`
	Category    Category        `json:"category" db:"category"`
}

// NewProduct returns an unpersisted product with the documented defaults:
// available and in the unknown category.
func NewProduct() *Product {
	return &Product{
		Available: true,
		Category:  CategoryUnknown,
	}
}

// String renders the debug form, e.g. <Product Fedora id=[42]>. An
// unpersisted product shows id=[None].
func (p *Product) String() string {
	id := "None"
	if p.ID != nil {
		id = strconv.FormatInt(*p.ID, 10)
	}
	return fmt.Sprintf("<Product %s id=[%s]>", p.Name, id)
}

// Serialize projects the product into a flat key-value mapping. The price
// is rendered as a decimal string so no precision is lost in transit, and
// the category by its stable name. The projection has no side effects.
func (p *Product) Serialize() map[string]any {
	var id any
	if p.ID != nil {
		id = *p.ID
	}
	return map[string]any{
		"id":          id,
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price.String(),
		"available":   p.Available,
		"category":    p.Category.String(),
	}
}

// Deserialize populates the product from a mapping shaped like the output
// of Serialize. Fields are checked in a fixed order and the first violation
// fails with a DataValidationError naming the field; the receiver is only
// mutated once every field has validated.
func (p *Product) Deserialize(data map[string]any) error {
	rawName, ok := data["name"]
	if !ok {
		return NewDataValidationError("invalid product: missing name")
	}
	name, ok := rawName.(string)
	if !ok {
		return NewDataValidationError(fmt.Sprintf("invalid type for string [name]: %T", rawName))
	}
	if name == "" {
		return NewDataValidationError("invalid product: name must not be empty")
	}

	description := ""
	if rawDescription, ok := data["description"]; ok && rawDescription != nil {
		description, ok = rawDescription.(string)
		if !ok {
			return NewDataValidationError(fmt.Sprintf("invalid type for string [description]: %T", rawDescription))
		}
	}

	rawPrice, ok := data["price"]
	if !ok {
		return NewDataValidationError("invalid product: missing price")
	}
	price, err := normalizePrice(rawPrice)
	if err != nil {
		return WrapDataValidationError("invalid product: price", err)
	}

	rawAvailable, ok := data["available"]
	if !ok {
		return NewDataValidationError("invalid product: missing available")
	}
	available, ok := rawAvailable.(bool)
	if !ok {
		return NewDataValidationError(fmt.Sprintf("invalid type for boolean [available]: %T", rawAvailable))
	}

	rawCategory, ok := data["category"]
	if !ok {
		return NewDataValidationError("invalid product: missing category")
	}
	categoryName, ok := rawCategory.(string)
	if !ok {
		return NewDataValidationError(fmt.Sprintf("invalid type for string [category]: %T", rawCategory))
	}
	category, err := ParseCategory(categoryName)
	if err != nil {
		return err
	}

	p.Name = name
	p.Description = description
	p.Price = price
	p.Available = available
	p.Category = category

	return nil
}

// ParsePrice converts the text form of a price into its decimal value.
// Surrounding whitespace and stray quotes are stripped first, so values
// that arrive re-quoted from query strings still parse.
func ParsePrice(text string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(strings.Trim(text, ` "`))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid price %q: %w", text, err)
	}
	return price, nil
}

func normalizePrice(value any) (decimal.Decimal, error) {
	switch price := value.(type) {
	case decimal.Decimal:
		return price, nil
	case string:
		return ParsePrice(price)
	case float64:
		return decimal.NewFromFloat(price), nil
	case int:
		return decimal.NewFromInt(int64(price)), nil
	case int64:
		return decimal.NewFromInt(price), nil
	default:
		return decimal.Decimal{}, fmt.Errorf("unsupported price type %T", value)
	}
}
