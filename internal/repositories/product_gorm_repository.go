package repositories

import (
	"errors"
	"fmt"

	"storeman/internal/models"

	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// GetAll retrieves all products from the database.
func (r *GORMProductRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID. Absence is not an error.
func (r *GORMProductRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get product by ID %d: %w", id, err)
	}
	return &product, nil
}

// GetByName retrieves a single product by its name. Absence is not an error.
func (r *GORMProductRepository) GetByName(name string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "product_name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get product by name %q: %w", name, err)
	}
	return &product, nil
}

// Save inserts the product when its ID is zero and updates all fields otherwise.
func (r *GORMProductRepository) Save(product *models.Product) error {
	// Save will insert when the primary key is the zero value, letting the
	// database assign the ID, and otherwise update every column.
	if err := r.db.Save(product).Error; err != nil {
		return fmt.Errorf("failed to save product: %w", err)
	}
	return nil
}

// Delete removes the product record from the database.
func (r *GORMProductRepository) Delete(product *models.Product) error {
	if err := r.db.Delete(product).Error; err != nil {
		return fmt.Errorf("failed to delete product with ID %d: %w", product.ID, err)
	}
	return nil
}
