package models

// Product is the persisted representation of an inventory item.
// The ID is assigned by the store on first save and never changes.
type Product struct {
	ID            uint    `json:"id" gorm:"primaryKey;autoIncrement;column:id"`
	Name          string  `json:"name" gorm:"column:product_name;type:varchar(45);not null"`
	Price         float64 `json:"price" gorm:"column:price;not null"`
	Description   string  `json:"description" gorm:"column:description;type:varchar(255);not null"`
	StockQuantity int     `json:"stockQuantity" gorm:"column:stock_quantity;not null"`
	Category      string  `json:"category" gorm:"column:category;type:varchar(60);not null"`
}

// TableName keeps the singular table name used by the schema.
func (Product) TableName() string {
	return "product"
}
