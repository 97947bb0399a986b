package handlers

import (
	"encoding/base64"
	"fmt"
	"io"
	"log"
	"strconv"

	"katalog/internal/forms"
	"katalog/internal/models"
	"katalog/internal/repositories"
	"katalog/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler is the HTTP shell of the catalog entry form. It collects
// raw string input into a forms.ProductDraft, runs the form validator,
// and only hands normalized records to the service.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service: service,
	}
}

// RegisterRoutes registers the product routes with the Fiber app. Read
// routes are public; writes go through the given auth guard.
func (h *ProductHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	productRoutes := router.Group("/products")
	// Static paths must be registered before the :id wildcard.
	productRoutes.Get("/categories", h.HandleListCategories)
	productRoutes.Post("/validate", h.HandleValidateDraft)
	productRoutes.Get("/", h.HandleListProducts)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Get("/:id/draft", h.HandleGetProductDraft)
	productRoutes.Post("/", authRequired, h.HandleCreateProduct)
	productRoutes.Put("/:id", authRequired, h.HandleUpdateProduct)
	productRoutes.Delete("/:id", authRequired, h.HandleDeleteProduct)
}

// HandleListProducts retrieves the catalog, optionally narrowed by
// category and a min_price/max_price range.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	minPrice := c.Query("min_price")
	maxPrice := c.Query("max_price")

	if result := forms.ValidatePriceRange(minPrice, maxPrice); !result.IsValid {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid price filter",
			"error":   result.Error,
		})
	}

	var filter repositories.ProductFilter
	if minPrice != "" {
		v, _ := strconv.ParseFloat(minPrice, 64)
		filter.MinPrice = &v
	}
	if maxPrice != "" {
		v, _ := strconv.ParseFloat(maxPrice, 64)
		filter.MaxPrice = &v
	}
	if raw := c.Query("category"); raw != "" {
		category, ok := models.ParseCategory(raw)
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": fmt.Sprintf("Unknown category: %s", raw),
			})
		}
		filter.Category = category
	}

	products, err := h.service.ListProducts(filter)
	if err != nil {
		log.Printf("Error listing products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve products",
			"error":   err.Error(),
		})
	}
	return c.JSON(products)
}

// HandleListCategories returns the closed category set the form's select
// is built from.
func (h *ProductHandler) HandleListCategories(c *fiber.Ctx) error {
	return c.JSON(models.Categories())
}

// HandleGetProductByID retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	productID := c.Params("id")
	product, err := h.service.GetProductByID(productID)
	if err != nil {
		log.Printf("Error getting product by ID %s: %v", productID, err)
		if err.Error() == fmt.Sprintf("product with ID %s not found", productID) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Product with ID %s not found", productID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve product",
			"error":   err.Error(),
		})
	}
	return c.JSON(product)
}

// HandleGetProductDraft seeds an edit form from a stored product.
// Clients call this whenever the record under edit changes, replacing any
// draft they were holding.
func (h *ProductHandler) HandleGetProductDraft(c *fiber.Ctx) error {
	productID := c.Params("id")
	product, err := h.service.GetProductByID(productID)
	if err != nil {
		log.Printf("Error getting product by ID %s for draft: %v", productID, err)
		if err.Error() == fmt.Sprintf("product with ID %s not found", productID) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Product with ID %s not found", productID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve product",
			"error":   err.Error(),
		})
	}
	return c.JSON(forms.DraftFromProduct(product))
}

// HandleValidateDraft runs the form validator without persisting
// anything, so clients can show errors before the user submits.
func (h *ProductHandler) HandleValidateDraft(c *fiber.Ctx) error {
	var draft forms.ProductDraft
	if err := c.BodyParser(&draft); err != nil {
		log.Printf("Error parsing draft for validation: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	return c.JSON(forms.Validate(draft))
}

// HandleCreateProduct creates a new product from a submitted form draft.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var draft forms.ProductDraft
	if err := c.BodyParser(&draft); err != nil {
		log.Printf("Error parsing create product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	result := forms.Validate(draft)
	if !result.IsValid {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  result.FieldErrors,
		})
	}

	product := draft.Product()

	imageURL, err := h.readImage(c)
	if err != nil {
		log.Printf("Error reading image upload: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Could not read image upload",
			"error":   err.Error(),
		})
	}
	product.ImageURL = imageURL

	if err := h.service.CreateProduct(&product); err != nil {
		log.Printf("Error creating product: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create product",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct updates an existing product from a submitted form
// draft. When no image is attached the stored one is kept.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	productID := c.Params("id")

	var draft forms.ProductDraft
	if err := c.BodyParser(&draft); err != nil {
		log.Printf("Error parsing update product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	result := forms.Validate(draft)
	if !result.IsValid {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  result.FieldErrors,
		})
	}

	product := draft.Product()
	product.ID = productID

	imageURL, err := h.readImage(c)
	if err != nil {
		log.Printf("Error reading image upload: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Could not read image upload",
			"error":   err.Error(),
		})
	}
	product.ImageURL = imageURL

	if err := h.service.UpdateProduct(&product); err != nil {
		log.Printf("Error updating product %s: %v", productID, err)
		if err.Error() == fmt.Sprintf("product with ID %s not found", productID) ||
			err.Error() == fmt.Sprintf("product with ID %s not found for update", productID) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Product with ID %s not found", productID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update product",
			"error":   err.Error(),
		})
	}

	return c.JSON(product)
}

// HandleDeleteProduct deletes a product by its ID.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	productID := c.Params("id")
	if err := h.service.DeleteProduct(productID); err != nil {
		log.Printf("Error deleting product %s: %v", productID, err)
		if err.Error() == fmt.Sprintf("product with ID %s not found for deletion", productID) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Product with ID %s not found", productID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete product",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Product %s deleted successfully", productID),
	})
}

// readImage pulls an optional "image" file out of a multipart submission
// and encodes it, opaquely, as a base64 data URL. A missing file (or a
// plain JSON submission) is fine and yields an empty string.
func (h *ProductHandler) readImage(c *fiber.Ctx) (string, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil || fileHeader == nil {
		return "", nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open image upload: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read image upload: %w", err)
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data)), nil
}
