package models

import (
	"time"

	"gorm.io/datatypes"
)

// Product is a catalog item. Weights and images are JSON arrays; some legacy
// rows stored plain strings, callers should treat missing arrays as empty.
type Product struct {
	ID            int64                          `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name          string                         `gorm:"column:product_name;type:varchar(128);not null" json:"product_name"`
	Price         float64                        `gorm:"column:product_price;type:decimal(10,2);not null" json:"product_price"`
	PurchasePrice float64                        `gorm:"column:product_purchase_price;type:decimal(10,2)" json:"product_purchase_price"`
	DelPrice      float64                        `gorm:"column:product_del_price;type:decimal(10,2)" json:"product_del_price"`
	Weights       datatypes.JSONType[[]string]   `gorm:"column:product_weight;type:json" json:"product_weight"`
	Images        datatypes.JSONType[[]string]   `gorm:"column:product_images;type:json" json:"product_images"`
	Stock         int                            `gorm:"column:product_stock;not null" json:"product_stock"`
	IsFeatured    bool                           `gorm:"column:is_featured;not null" json:"is_featured"`
	IsActive      bool                           `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CategoryName  string                         `gorm:"column:category_name;type:varchar(64);index" json:"category_name"`
	CreatedAt     time.Time                      `json:"created_at"`
	UpdatedAt     time.Time                      `json:"updated_at"`
}

func (Product) TableName() string { return "rajlaksmi_product" }
