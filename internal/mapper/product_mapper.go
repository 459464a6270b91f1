// Package mapper converts between the persisted Product representation and the
// externally facing ProductDto. Conversions are pure field-for-field copies; no
// validation happens here.
package mapper

import "storeman/internal/models"

// ToDto converts a Product entity to its DTO. A nil entity maps to nil.
func ToDto(entity *models.Product) *models.ProductDto {
	if entity == nil {
		return nil
	}
	return &models.ProductDto{
		ID:            entity.ID,
		Name:          entity.Name,
		Price:         entity.Price,
		Description:   entity.Description,
		StockQuantity: entity.StockQuantity,
		Category:      entity.Category,
	}
}

// ToEntity converts a ProductDto to a Product entity. A nil DTO maps to nil.
func ToEntity(dto *models.ProductDto) *models.Product {
	if dto == nil {
		return nil
	}
	return &models.Product{
		ID:            dto.ID,
		Name:          dto.Name,
		Price:         dto.Price,
		Description:   dto.Description,
		StockQuantity: dto.StockQuantity,
		Category:      dto.Category,
	}
}

// ToDtoList applies ToDto element-wise, preserving order.
func ToDtoList(entities []models.Product) []models.ProductDto {
	dtos := make([]models.ProductDto, 0, len(entities))
	for i := range entities {
		dtos = append(dtos, *ToDto(&entities[i]))
	}
	return dtos
}

// ToEntityList applies ToEntity element-wise, preserving order.
func ToEntityList(dtos []models.ProductDto) []models.Product {
	entities := make([]models.Product, 0, len(dtos))
	for i := range dtos {
		entities = append(entities, *ToEntity(&dtos[i]))
	}
	return entities
}
