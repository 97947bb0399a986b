package forms

import (
	"strconv"
	"strings"

	"katalog/internal/models"
)

// ProductDraft is the raw, in-progress state of one product entry form.
// Every field is the untouched string the user typed; the draft itself
// enforces nothing. All rules live in Validate.
type ProductDraft struct {
	Name          string `json:"name" form:"name"`
	Price         string `json:"price" form:"price"`
	Category      string `json:"category" form:"category"`
	StockQuantity string `json:"stockQuantity" form:"stockQuantity"`
	Description   string `json:"description" form:"description"`
}

// DraftFromProduct seeds an edit form from an existing catalog record.
// Callers should invoke this whenever the record being edited changes,
// discarding any previous draft.
func DraftFromProduct(p *models.Product) ProductDraft {
	return ProductDraft{
		Name:          p.Name,
		Price:         strconv.FormatFloat(p.Price, 'f', -1, 64),
		Category:      string(p.Category),
		StockQuantity: strconv.Itoa(p.StockQuantity),
		Description:   p.Description,
	}
}

// Product converts the draft into a normalized catalog record: names and
// descriptions trimmed, numeric strings parsed. Only meaningful for a
// draft that Validate has already accepted; on an invalid draft the
// numeric fields come out zero.
func (d ProductDraft) Product() models.Product {
	price, _ := strconv.ParseFloat(d.Price, 64)
	stock, _ := parseLeadingInt(d.StockQuantity)
	return models.Product{
		Name:          strings.TrimSpace(d.Name),
		Description:   strings.TrimSpace(d.Description),
		Price:         price,
		Category:      models.Category(d.Category),
		StockQuantity: stock,
	}
}
