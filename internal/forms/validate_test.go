package forms_test

import (
	"strings"
	"testing"

	"katalog/internal/forms"

	"github.com/stretchr/testify/assert"
)

// validDraft returns a draft that passes every rule; individual tests
// break one field at a time.
func validDraft() forms.ProductDraft {
	return forms.ProductDraft{
		Name:          "Wireless Mouse",
		Price:         "29.99",
		Category:      "Electronics",
		StockQuantity: "15",
		Description:   "",
	}
}

func TestValidate_ValidDraft(t *testing.T) {
	result := forms.Validate(validDraft())

	assert.True(t, result.IsValid)
	assert.Empty(t, result.FieldErrors)
}

func TestValidate_Name(t *testing.T) {
	// Empty and whitespace-only names are both "required" failures.
	for _, name := range []string{"", "   ", "\t\n"} {
		draft := validDraft()
		draft.Name = name
		result := forms.Validate(draft)
		assert.False(t, result.IsValid)
		assert.Equal(t, "Product name is required", result.FieldErrors["name"])
	}

	// Too short after trimming.
	draft := validDraft()
	draft.Name = "  ab  "
	result := forms.Validate(draft)
	assert.False(t, result.IsValid)
	assert.Equal(t, "Product name must be at least 3 characters", result.FieldErrors["name"])

	// Boundary lengths: 3 and 50 pass, 51 fails.
	draft.Name = "abc"
	assert.True(t, forms.Validate(draft).IsValid)

	draft.Name = strings.Repeat("a", 50)
	assert.True(t, forms.Validate(draft).IsValid)

	draft.Name = strings.Repeat("a", 51)
	result = forms.Validate(draft)
	assert.False(t, result.IsValid)
	assert.Equal(t, "Product name must be at most 50 characters", result.FieldErrors["name"])

	// Surrounding whitespace does not count towards the limit.
	draft.Name = "  " + strings.Repeat("a", 50) + "  "
	assert.True(t, forms.Validate(draft).IsValid)
}

func TestValidate_Price(t *testing.T) {
	draft := validDraft()

	draft.Price = ""
	result := forms.Validate(draft)
	assert.False(t, result.IsValid)
	assert.Equal(t, "Price is required", result.FieldErrors["price"])

	// Not a number, zero, and negative all fail the numeric rule.
	for _, price := range []string{"abc", "0", "-5", "NaN"} {
		draft.Price = price
		result = forms.Validate(draft)
		assert.False(t, result.IsValid, "price %q should be rejected", price)
		assert.Equal(t, "Price must be a number greater than 0", result.FieldErrors["price"])
	}

	// Numerically valid but badly formatted: too many decimals,
	// scientific notation, trailing dot, explicit sign.
	for _, price := range []string{"10.999", "1e3", "5.", "+5"} {
		draft.Price = price
		result = forms.Validate(draft)
		assert.False(t, result.IsValid, "price %q should be rejected", price)
		assert.Equal(t, "Price can have at most 2 decimal places", result.FieldErrors["price"])
	}

	// Well-formed positive prices pass.
	for _, price := range []string{"1", "0.01", "29.99", "1200", "99.9"} {
		draft.Price = price
		result = forms.Validate(draft)
		assert.True(t, result.IsValid, "price %q should be accepted", price)
	}
}

func TestValidate_Category(t *testing.T) {
	draft := validDraft()

	draft.Category = ""
	result := forms.Validate(draft)
	assert.False(t, result.IsValid)
	assert.Equal(t, "Category is required", result.FieldErrors["category"])

	// Anything outside the closed set is treated the same as unselected.
	draft.Category = "Gadgets"
	result = forms.Validate(draft)
	assert.False(t, result.IsValid)
	assert.Equal(t, "Category is required", result.FieldErrors["category"])

	for _, category := range []string{"Electronics", "Clothing", "Books", "Home", "Sports", "Other"} {
		draft.Category = category
		assert.True(t, forms.Validate(draft).IsValid, "category %q should be accepted", category)
	}
}

func TestValidate_StockQuantity(t *testing.T) {
	draft := validDraft()

	draft.StockQuantity = ""
	result := forms.Validate(draft)
	assert.False(t, result.IsValid)
	assert.Equal(t, "Stock quantity is required", result.FieldErrors["stockQuantity"])

	draft.StockQuantity = "-1"
	result = forms.Validate(draft)
	assert.False(t, result.IsValid)
	assert.Equal(t, "Stock quantity must be a non-negative integer", result.FieldErrors["stockQuantity"])

	draft.StockQuantity = "abc"
	result = forms.Validate(draft)
	assert.False(t, result.IsValid)
	assert.Equal(t, "Stock quantity must be a non-negative integer", result.FieldErrors["stockQuantity"])

	draft.StockQuantity = "0"
	assert.True(t, forms.Validate(draft).IsValid)

	// The truncating parse accepts "5.9" as 5.
	draft.StockQuantity = "5.9"
	assert.True(t, forms.Validate(draft).IsValid)
}

func TestValidate_Description(t *testing.T) {
	draft := validDraft()

	draft.Description = strings.Repeat("d", 200)
	assert.True(t, forms.Validate(draft).IsValid)

	draft.Description = strings.Repeat("d", 201)
	result := forms.Validate(draft)
	assert.False(t, result.IsValid)
	assert.Equal(t, "Description must be at most 200 characters", result.FieldErrors["description"])
}

func TestValidate_ReportsAllFailingFields(t *testing.T) {
	// One field failing must not stop the others from being checked.
	result := forms.Validate(forms.ProductDraft{})

	assert.False(t, result.IsValid)
	assert.Len(t, result.FieldErrors, 4)
	assert.Contains(t, result.FieldErrors, "name")
	assert.Contains(t, result.FieldErrors, "price")
	assert.Contains(t, result.FieldErrors, "category")
	assert.Contains(t, result.FieldErrors, "stockQuantity")
	assert.NotContains(t, result.FieldErrors, "description")
}

func TestValidate_Idempotent(t *testing.T) {
	draft := validDraft()
	draft.Price = "10.999"

	first := forms.Validate(draft)
	second := forms.Validate(draft)
	assert.Equal(t, first, second)
}

func TestValidatePriceRange(t *testing.T) {
	// Both bounds empty means no filter at all.
	result := forms.ValidatePriceRange("", "")
	assert.True(t, result.IsValid)
	assert.Empty(t, result.Error)

	// A single bound is fine on its own.
	assert.True(t, forms.ValidatePriceRange("10", "").IsValid)
	assert.True(t, forms.ValidatePriceRange("", "99.50").IsValid)
	assert.True(t, forms.ValidatePriceRange("0", "0").IsValid)
	assert.True(t, forms.ValidatePriceRange("20", "50").IsValid)

	result = forms.ValidatePriceRange("abc", "")
	assert.False(t, result.IsValid)
	assert.Equal(t, "Minimum price must be a positive number", result.Error)

	result = forms.ValidatePriceRange("-5", "10")
	assert.False(t, result.IsValid)
	assert.Equal(t, "Minimum price must be a positive number", result.Error)

	result = forms.ValidatePriceRange("10", "9.999")
	assert.False(t, result.IsValid)
	assert.Equal(t, "Maximum price must be a positive number", result.Error)

	result = forms.ValidatePriceRange("50", "20")
	assert.False(t, result.IsValid)
	assert.Equal(t, "Minimum price cannot be greater than maximum price", result.Error)

	// The min check runs first when both bounds are bad.
	result = forms.ValidatePriceRange("abc", "def")
	assert.Equal(t, "Minimum price must be a positive number", result.Error)
}
