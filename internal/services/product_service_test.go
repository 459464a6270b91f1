package services_test

import (
	"testing"

	"storeman/internal/errs"
	"storeman/internal/models"
	"storeman/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll() ([]models.Product, error) {
	args := m.Called()
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(id uint) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByName(name string) (*models.Product, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Save(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

// storedProduct returns the fixture record used across the service tests.
func storedProduct() *models.Product {
	return &models.Product{
		ID:            1,
		Name:          "Laptop",
		Price:         1000,
		Description:   "High performance laptop",
		StockQuantity: 10,
		Category:      "Electronics",
	}
}

func TestProductService_CreateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	dto := &models.ProductDto{Name: "Laptop", Price: 1000, Description: "High performance laptop", StockQuantity: 10, Category: "Electronics"}

	// The store assigns a fresh ID on save.
	mockRepo.On("Save", mock.AnythingOfType("*models.Product")).Run(func(args mock.Arguments) {
		args.Get(0).(*models.Product).ID = 7
	}).Return(nil).Once()

	created, err := service.CreateProduct("testUser", dto)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), created.ID)
	assert.Equal(t, "Laptop", created.Name)
	assert.Equal(t, 1000.0, created.Price)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct_Unauthenticated(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	dto := &models.ProductDto{Name: "Laptop", Price: 1000, Description: "High performance laptop", StockQuantity: 10}

	created, err := service.CreateProduct("", dto)
	assert.Nil(t, created)
	assert.ErrorIs(t, err, errs.ErrUnauthorized)
	mockRepo.AssertNotCalled(t, "Save", mock.Anything)
}

func TestProductService_GetAllProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	stored := []models.Product{*storedProduct(), {ID: 2, Name: "Mouse", Price: 25, Description: "Ergonomic wireless mouse", StockQuantity: 50}}
	mockRepo.On("GetAll").Return(stored, nil).Once()

	products, err := service.GetAllProducts()
	assert.NoError(t, err)
	assert.Len(t, products, 2)
	// Store order is preserved through the mapper.
	assert.Equal(t, uint(1), products[0].ID)
	assert.Equal(t, uint(2), products[1].ID)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProductByID(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	entity := storedProduct()
	mockRepo.On("GetByID", uint(1)).Return(entity, nil).Once()

	dto, err := service.GetProductByID(1)
	assert.NoError(t, err)
	assert.Equal(t, entity.ID, dto.ID)
	assert.Equal(t, entity.Name, dto.Name)
	assert.Equal(t, entity.Price, dto.Price)
	assert.Equal(t, entity.Description, dto.Description)
	assert.Equal(t, entity.StockQuantity, dto.StockQuantity)
	assert.Equal(t, entity.Category, dto.Category)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProductByID_NotFound(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	mockRepo.On("GetByID", uint(99)).Return(nil, nil).Once()

	dto, err := service.GetProductByID(99)
	assert.Nil(t, dto)
	assert.ErrorIs(t, err, errs.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	mockRepo.On("GetByID", uint(1)).Return(storedProduct(), nil).Once()
	mockRepo.On("Save", mock.AnythingOfType("*models.Product")).Return(nil).Once()

	dto := &models.ProductDto{Name: "Laptop Pro", Price: 1500, Description: "Refreshed model", StockQuantity: 4, Category: "Computers"}
	updated, err := service.UpdateProduct("testUser", 1, dto)
	assert.NoError(t, err)
	assert.Equal(t, uint(1), updated.ID)
	assert.Equal(t, "Laptop Pro", updated.Name)
	assert.Equal(t, 1500.0, updated.Price)
	assert.Equal(t, "Refreshed model", updated.Description)
	assert.Equal(t, 4, updated.StockQuantity)
	assert.Equal(t, "Computers", updated.Category)
	mockRepo.AssertExpectations(t)
}

// The full update signals absence with its own sentinel rather than the
// shared not-found error. This asymmetry is long-standing and pinned here so
// it cannot be unified by accident.
func TestProductService_UpdateProduct_NotFoundUsesDistinctSignal(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	mockRepo.On("GetByID", uint(99)).Return(nil, nil).Once()

	updated, err := service.UpdateProduct("testUser", 99, &models.ProductDto{Name: "X", Price: 1, Description: "x", StockQuantity: 1})
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, services.ErrUpdateTargetMissing)
	assert.NotErrorIs(t, err, errs.ErrNotFound)
	mockRepo.AssertNotCalled(t, "Save", mock.Anything)
}

func TestProductService_UpdateProduct_Unauthenticated(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	dto := &models.ProductDto{Name: "Laptop Pro", Price: 1500, Description: "Refreshed model", StockQuantity: 4}

	updated, err := service.UpdateProduct("", 1, dto)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, errs.ErrUnauthorized)
	// The caller check runs before the fetch, so nothing is read or written.
	mockRepo.AssertNotCalled(t, "GetByID", mock.Anything)
	mockRepo.AssertNotCalled(t, "Save", mock.Anything)
}

func TestProductService_ChangePrice(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	mockRepo.On("GetByID", uint(1)).Return(storedProduct(), nil).Once()
	mockRepo.On("Save", mock.AnythingOfType("*models.Product")).Return(nil).Once()

	updated, err := service.ChangePrice(1, 1200)
	assert.NoError(t, err)
	assert.Equal(t, 1200.0, updated.Price)
	// Only the price changes.
	assert.Equal(t, "Laptop", updated.Name)
	assert.Equal(t, 10, updated.StockQuantity)
	assert.Equal(t, "Electronics", updated.Category)
	mockRepo.AssertExpectations(t)
}

func TestProductService_ChangePrice_NotFound(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	mockRepo.On("GetByID", uint(99)).Return(nil, nil).Once()

	updated, err := service.ChangePrice(99, 1200)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, errs.ErrNotFound)
	mockRepo.AssertNotCalled(t, "Save", mock.Anything)
}

func TestProductService_ChangeStockQuantity(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	mockRepo.On("GetByID", uint(1)).Return(storedProduct(), nil).Once()
	mockRepo.On("Save", mock.AnythingOfType("*models.Product")).Return(nil).Once()

	updated, err := service.ChangeStockQuantity(1, 50)
	assert.NoError(t, err)
	assert.Equal(t, 50, updated.StockQuantity)
	assert.Equal(t, "Laptop", updated.Name)
	assert.Equal(t, 1000.0, updated.Price)
	assert.Equal(t, "Electronics", updated.Category)
	mockRepo.AssertExpectations(t)
}

func TestProductService_ChangeStockQuantity_NotFound(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	mockRepo.On("GetByID", uint(99)).Return(nil, nil).Once()

	_, err := service.ChangeStockQuantity(99, 50)
	assert.ErrorIs(t, err, errs.ErrNotFound)
	mockRepo.AssertNotCalled(t, "Save", mock.Anything)
}

func TestProductService_ChangeCategory(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	mockRepo.On("GetByID", uint(1)).Return(storedProduct(), nil).Once()
	mockRepo.On("Save", mock.AnythingOfType("*models.Product")).Return(nil).Once()

	updated, err := service.ChangeCategory(1, "New Category")
	assert.NoError(t, err)
	assert.Equal(t, "New Category", updated.Category)
	assert.Equal(t, "Laptop", updated.Name)
	assert.Equal(t, 1000.0, updated.Price)
	assert.Equal(t, 10, updated.StockQuantity)
	mockRepo.AssertExpectations(t)
}

func TestProductService_ChangeCategory_NotFound(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	mockRepo.On("GetByID", uint(99)).Return(nil, nil).Once()

	_, err := service.ChangeCategory(99, "New Category")
	assert.ErrorIs(t, err, errs.ErrNotFound)
	mockRepo.AssertNotCalled(t, "Save", mock.Anything)
}

func TestProductService_DeleteProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	entity := storedProduct()
	mockRepo.On("GetByID", uint(1)).Return(entity, nil).Once()
	mockRepo.On("Delete", entity).Return(nil).Once()

	err := service.DeleteProduct("testUser", 1)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestProductService_DeleteProduct_NotFound(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	mockRepo.On("GetByID", uint(99)).Return(nil, nil).Once()

	err := service.DeleteProduct("testUser", 99)
	assert.ErrorIs(t, err, errs.ErrNotFound)
	mockRepo.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestProductService_DeleteProduct_Unauthenticated(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	err := service.DeleteProduct("", 1)
	assert.ErrorIs(t, err, errs.ErrUnauthorized)
	mockRepo.AssertNotCalled(t, "GetByID", mock.Anything)
	mockRepo.AssertNotCalled(t, "Delete", mock.Anything)
}

// The single-field change operations deliberately skip the caller identity
// check that create, full update, and delete perform.
func TestProductService_FieldChangesDoNotRequireCaller(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	mockRepo.On("GetByID", uint(1)).Return(storedProduct(), nil).Times(3)
	mockRepo.On("Save", mock.AnythingOfType("*models.Product")).Return(nil).Times(3)

	_, err := service.ChangePrice(1, 1200)
	assert.NoError(t, err)
	_, err = service.ChangeStockQuantity(1, 50)
	assert.NoError(t, err)
	_, err = service.ChangeCategory(1, "New Category")
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}
