package services

import (
	"fmt"
	"log"

	"katalog/internal/models"
	"katalog/internal/repositories"
	"katalog/pkg/rabbitmq"
)

// ProductService handles business logic related to catalog products.
type ProductService struct {
	repo     repositories.ProductRepository
	mqClient *rabbitmq.Client // RabbitMQ client, may be nil when eventing is disabled
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, mqClient *rabbitmq.Client) *ProductService {
	return &ProductService{
		repo:     repo,
		mqClient: mqClient,
	}
}

// ListProducts retrieves the products matching the filter.
func (s *ProductService) ListProducts(filter repositories.ProductFilter) ([]models.Product, error) {
	return s.repo.List(filter)
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct stores a new normalized product record and announces it
// on the catalog events queue. The caller is responsible for having run
// the record through form validation first.
func (s *ProductService) CreateProduct(product *models.Product) error {
	if err := s.repo.Create(product); err != nil {
		return fmt.Errorf("failed to create product in repository: %w", err)
	}

	s.publishEvent("product.created", product)
	return nil
}

// UpdateProduct updates an existing product. An empty ImageURL on the
// incoming record means "keep the stored image": the edit form submits
// no image unless the user picked a new one.
func (s *ProductService) UpdateProduct(product *models.Product) error {
	existing, err := s.repo.GetByID(product.ID)
	if err != nil {
		return err
	}
	if product.ImageURL == "" {
		product.ImageURL = existing.ImageURL
	}

	if err := s.repo.Update(product); err != nil {
		return fmt.Errorf("failed to update product in repository: %w", err)
	}

	s.publishEvent("product.updated", product)
	return nil
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}

	if s.mqClient != nil {
		if err := s.mqClient.PublishProductEvent("product.deleted", map[string]interface{}{
			"productID": id,
		}); err != nil {
			log.Printf("Warning: Failed to publish product.deleted event for product %s: %v", id, err)
		}
	}
	return nil
}

// publishEvent sends a product lifecycle event, best-effort. A missing
// or failing broker never fails the write itself.
func (s *ProductService) publishEvent(event string, product *models.Product) {
	if s.mqClient == nil {
		log.Println("RabbitMQ client is not initialized. Skipping message publication.")
		return
	}

	payload := map[string]interface{}{
		"productID": product.ID,
		"name":      product.Name,
		"category":  product.Category,
		"price":     product.Price,
		"stock":     product.StockQuantity,
	}
	if err := s.mqClient.PublishProductEvent(event, payload); err != nil {
		log.Printf("Warning: Failed to publish %s event for product %s: %v", event, product.ID, err)
	} else {
		log.Printf("Successfully published %s event for product %s", event, product.ID)
	}
}
