package model

import "fmt"

// Category is the closed set of product categories. Members are persisted
// by their stable string name, never by ordinal.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryCloths
	CategoryFood
	CategoryHousewares
	CategoryAutomotive
	CategoryTools
)

var categoryNames = map[Category]string{
	CategoryUnknown:    "UNKNOWN",
	CategoryCloths:     "CLOTHS",
	CategoryFood:       "FOOD",
	CategoryHousewares: "HOUSEWARES",
	CategoryAutomotive: "AUTOMOTIVE",
	CategoryTools:      "TOOLS",
}

var categoriesByName = func() map[string]Category {
	byName := make(map[string]Category, len(categoryNames))
	for category, name := range categoryNames {
		byName[name] = category
	}
	return byName
}()

// String returns the stable serialized name of the category.
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// Valid reports whether c is a known member of the enumeration.
func (c Category) Valid() bool {
	_, ok := categoryNames[c]
	return ok
}

// Categories returns every member of the enumeration in declaration order.
func Categories() []Category {
	return []Category{
		CategoryUnknown,
		CategoryCloths,
		CategoryFood,
		CategoryHousewares,
		CategoryAutomotive,
		CategoryTools,
	}
}

// ParseCategory maps a serialized name back to its Category. Unknown or
// empty names are rejected rather than defaulted, so a typo in stored data
// never silently lands in CategoryUnknown.
func ParseCategory(name string) (Category, error) {
	category, ok := categoriesByName[name]
	if !ok {
		return CategoryUnknown, NewDataValidationError(fmt.Sprintf("invalid category: %q", name))
	}
	return category, nil
}
