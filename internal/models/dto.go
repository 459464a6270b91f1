package models

// ProductDto is the externally visible shape of a Product, used for request and
// response bodies. Field constraints are enforced here, at the API boundary; the
// service layer does not re-validate.
type ProductDto struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name" validate:"required,max=100"`
	Price         float64 `json:"price" validate:"gte=0"`
	Description   string  `json:"description" validate:"required,max=255"`
	StockQuantity int     `json:"stockQuantity" validate:"gte=0"`
	Category      string  `json:"category" validate:"omitempty,max=50"`
}
