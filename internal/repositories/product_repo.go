package repositories

import (
	"storeman/internal/models"
)

// ProductRepository defines the interface for product data access.
// Lookups report absence by returning (nil, nil); errors are reserved for
// storage failures. Callers must check for a nil result.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id uint) (*models.Product, error)
	GetByName(name string) (*models.Product, error)
	// Save inserts the product when its ID is zero, assigning a fresh unique
	// ID, and otherwise overwrites every field of the existing record.
	Save(product *models.Product) error
	Delete(product *models.Product) error
}
