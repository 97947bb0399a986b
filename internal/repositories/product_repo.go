package repositories

import (
	"katalog/internal/models"
)

// ProductFilter narrows a catalog listing. Zero values mean "no filter";
// nil price bounds are unbounded.
type ProductFilter struct {
	Category models.Category
	MinPrice *float64
	MaxPrice *float64
}

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	List(filter ProductFilter) ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
}
