package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryRoundTrip(t *testing.T) {
	for _, category := range Categories() {
		parsed, err := ParseCategory(category.String())
		require.NoError(t, err, "category %s should parse back", category)
		assert.Equal(t, category, parsed)
	}
}

func TestCategoryNames(t *testing.T) {
	tests := []struct {
		category Category
		name     string
	}{
		{CategoryUnknown, "UNKNOWN"},
		{CategoryCloths, "CLOTHS"},
		{CategoryFood, "FOOD"},
		{CategoryHousewares, "HOUSEWARES"},
		{CategoryAutomotive, "AUTOMOTIVE"},
		{CategoryTools, "TOOLS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.category.String())
			assert.True(t, tt.category.Valid())
		})
	}
}

func TestParseCategoryRejectsUnknownNames(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unlisted name", "GROCERIES"},
		{"empty name", ""},
		{"wrong case", "cloths"},
		{"padded name", " FOOD "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCategory(tt.input)
			require.Error(t, err)
			assert.True(t, IsDataValidationError(err), "expected DataValidationError, got %T", err)
		})
	}
}

func TestCategoryStringForInvalidValue(t *testing.T) {
	invalid := Category(99)
	assert.False(t, invalid.Valid())
	assert.Equal(t, "Category(99)", invalid.String())
}
