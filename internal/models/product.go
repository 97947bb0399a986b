package models

import "gorm.io/gorm"

// Product represents a normalized catalog entry, the shape a validated
// form draft is converted into before it is handed to storage.
type Product struct {
	ID            string   `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name          string   `json:"name" validate:"required,min=3,max=50"`
	Description   string   `json:"description,omitempty" validate:"omitempty,max=200"`
	Price         float64  `json:"price" validate:"required,gt=0"`
	Category      Category `json:"category" gorm:"type:varchar(20)" validate:"required"`
	StockQuantity int      `json:"stock_quantity" validate:"gte=0"`
	ImageURL      string   `json:"image_url,omitempty"`
	gorm.Model             // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
