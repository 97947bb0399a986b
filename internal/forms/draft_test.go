package forms_test

import (
	"testing"

	"katalog/internal/forms"
	"katalog/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestDraftFromProduct(t *testing.T) {
	product := &models.Product{
		ID:            "prod-1",
		Name:          "Wireless Mouse",
		Description:   "Ergonomic wireless mouse",
		Price:         29.99,
		Category:      models.CategoryElectronics,
		StockQuantity: 15,
	}

	draft := forms.DraftFromProduct(product)

	assert.Equal(t, "Wireless Mouse", draft.Name)
	assert.Equal(t, "29.99", draft.Price)
	assert.Equal(t, "Electronics", draft.Category)
	assert.Equal(t, "15", draft.StockQuantity)
	assert.Equal(t, "Ergonomic wireless mouse", draft.Description)

	// A draft seeded from a stored record must validate cleanly.
	assert.True(t, forms.Validate(draft).IsValid)
}

func TestDraftFromProduct_WholePrice(t *testing.T) {
	product := &models.Product{Name: "Keyboard", Price: 75, Category: models.CategoryElectronics, StockQuantity: 25}

	draft := forms.DraftFromProduct(product)

	// No spurious decimals on whole prices.
	assert.Equal(t, "75", draft.Price)
	assert.True(t, forms.Validate(draft).IsValid)
}

func TestProductDraft_Product(t *testing.T) {
	draft := forms.ProductDraft{
		Name:          "  Wireless Mouse  ",
		Price:         "29.99",
		Category:      "Electronics",
		StockQuantity: "15",
		Description:   "  Ergonomic wireless mouse  ",
	}

	product := draft.Product()

	assert.Equal(t, "Wireless Mouse", product.Name)
	assert.Equal(t, 29.99, product.Price)
	assert.Equal(t, models.CategoryElectronics, product.Category)
	assert.Equal(t, 15, product.StockQuantity)
	assert.Equal(t, "Ergonomic wireless mouse", product.Description)
}

func TestProductDraft_Product_TruncatesStock(t *testing.T) {
	draft := forms.ProductDraft{
		Name:          "Mouse Pad",
		Price:         "5",
		Category:      "Other",
		StockQuantity: "5.9",
	}

	product := draft.Product()
	assert.Equal(t, 5, product.StockQuantity)
}

func TestProductDraft_Product_EmptyDescription(t *testing.T) {
	draft := forms.ProductDraft{
		Name:          "Mouse Pad",
		Price:         "5",
		Category:      "Other",
		StockQuantity: "3",
		Description:   "   ",
	}

	// Whitespace-only descriptions normalize to absent.
	assert.Equal(t, "", draft.Product().Description)
}

func TestDraftRoundTrip(t *testing.T) {
	original := &models.Product{
		Name:          "History of Go",
		Description:   "A book",
		Price:         42.5,
		Category:      models.CategoryBooks,
		StockQuantity: 7,
	}

	normalized := forms.DraftFromProduct(original).Product()

	assert.Equal(t, original.Name, normalized.Name)
	assert.Equal(t, original.Price, normalized.Price)
	assert.Equal(t, original.Category, normalized.Category)
	assert.Equal(t, original.StockQuantity, normalized.StockQuantity)
	assert.Equal(t, original.Description, normalized.Description)
}
