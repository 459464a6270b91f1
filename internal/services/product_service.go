package services

import (
	"errors"
	"log"

	"storeman/internal/errs"
	"storeman/internal/mapper"
	"storeman/internal/models"
	"storeman/internal/repositories"
)

// ErrUpdateTargetMissing is returned by UpdateProduct when the target product
// does not exist. It deliberately does not wrap errs.ErrNotFound: the full
// update path has always signaled absence through its own error, and only the
// update handler translates it into a 404. Other callers would surface it as
// an internal error. See DESIGN.md before unifying this with errs.ErrNotFound.
var ErrUpdateTargetMissing = errors.New("product not found")

// ProductService handles business logic related to products. It is stateless;
// all state lives in the repository. Mutations are read-modify-write with no
// concurrency guard, so two concurrent writers to the same ID can race and the
// later save wins.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// CreateProduct persists a new product attributed to the given caller.
// The caller username is resolved at the request boundary and passed in
// explicitly; an empty username means the request carried no authenticated
// caller and the operation is refused.
func (s *ProductService) CreateProduct(username string, dto *models.ProductDto) (*models.ProductDto, error) {
	if username == "" {
		return nil, errs.Unauthorizedf("user is not authenticated")
	}

	log.Printf("User '%s' is creating product: %s", username, dto.Name)
	product := mapper.ToEntity(dto)
	product.ID = 0 // The store assigns the identifier
	if err := s.repo.Save(product); err != nil {
		return nil, err
	}
	log.Printf("Product saved with ID: %d", product.ID)
	return mapper.ToDto(product), nil
}

// GetAllProducts retrieves all products in store order.
func (s *ProductService) GetAllProducts() ([]models.ProductDto, error) {
	products, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	return mapper.ToDtoList(products), nil
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id uint) (*models.ProductDto, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		log.Printf("Product not found for ID %d", id)
		return nil, errs.NotFoundf("product not found for id %d", id)
	}
	return mapper.ToDto(product), nil
}

// UpdateProduct overwrites every mutable field of an existing product,
// attributed to the given caller.
func (s *ProductService) UpdateProduct(username string, id uint, dto *models.ProductDto) (*models.ProductDto, error) {
	if username == "" {
		return nil, errs.Unauthorizedf("user is not authenticated")
	}

	log.Printf("User '%s' is attempting to update product with ID %d", username, id)
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		log.Printf("Product not found for ID %d", id)
		return nil, ErrUpdateTargetMissing
	}

	existing.Name = dto.Name
	existing.Description = dto.Description
	existing.Price = dto.Price
	existing.StockQuantity = dto.StockQuantity
	existing.Category = dto.Category

	if err := s.repo.Save(existing); err != nil {
		return nil, err
	}
	return mapper.ToDto(existing), nil
}

// ChangePrice sets a new price on an existing product, leaving every other
// field untouched.
func (s *ProductService) ChangePrice(id uint, newPrice float64) (*models.ProductDto, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		log.Printf("Product not found for ID %d", id)
		return nil, errs.NotFoundf("product not found for id %d", id)
	}

	product.Price = newPrice
	if err := s.repo.Save(product); err != nil {
		return nil, err
	}
	log.Printf("Price updated for product ID %d: %v", id, product.Price)
	return mapper.ToDto(product), nil
}

// ChangeStockQuantity sets a new stock quantity on an existing product.
func (s *ProductService) ChangeStockQuantity(id uint, newQuantity int) (*models.ProductDto, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		log.Printf("Product not found for ID %d", id)
		return nil, errs.NotFoundf("product not found for id %d", id)
	}

	oldQuantity := product.StockQuantity
	product.StockQuantity = newQuantity
	if err := s.repo.Save(product); err != nil {
		return nil, err
	}
	log.Printf("Stock quantity changed for product ID %d: %d -> %d", id, oldQuantity, newQuantity)
	return mapper.ToDto(product), nil
}

// ChangeCategory sets a new category on an existing product.
func (s *ProductService) ChangeCategory(id uint, newCategory string) (*models.ProductDto, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		log.Printf("Product not found for ID %d", id)
		return nil, errs.NotFoundf("product not found for id %d", id)
	}

	oldCategory := product.Category
	product.Category = newCategory
	if err := s.repo.Save(product); err != nil {
		return nil, err
	}
	log.Printf("Category changed for product ID %d: '%s' -> '%s'", id, oldCategory, newCategory)
	return mapper.ToDto(product), nil
}

// DeleteProduct removes an existing product, attributed to the given caller.
func (s *ProductService) DeleteProduct(username string, id uint) error {
	if username == "" {
		return errs.Unauthorizedf("user is not authenticated")
	}

	log.Printf("User '%s' is attempting to delete product with ID %d", username, id)
	product, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return errs.NotFoundf("product not found for id %d", id)
	}

	if err := s.repo.Delete(product); err != nil {
		return err
	}
	log.Printf("Product with ID %d deleted by user '%s'", id, username)
	return nil
}
