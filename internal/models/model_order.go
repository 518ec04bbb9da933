package models

import "time"

const (
	OrderStatusPlaced    = "placed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Order is a placed order referencing a saved shipping address.
type Order struct {
	ID                int64       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID            int64       `gorm:"column:user_id;not null;index" json:"user_id"`
	TotalAmount       float64     `gorm:"column:total_amount;type:decimal(10,2);not null" json:"total_amount"`
	ShippingAddressID int64       `gorm:"column:shipping_address_id;not null" json:"shipping_address_id"`
	PaymentMethod     string      `gorm:"column:payment_method;type:varchar(32)" json:"payment_method"`
	Status            string      `gorm:"column:status;type:varchar(32);not null;default:placed" json:"status"`
	PaymentStatus     string      `gorm:"column:payment_status;type:varchar(32);not null;default:pending" json:"payment_status"`
	Items             []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}

func (Order) TableName() string { return "orders" }

type OrderItem struct {
	ID          int64   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	OrderID     int64   `gorm:"column:order_id;not null;index" json:"order_id"`
	ProductID   int64   `gorm:"column:product_id;not null" json:"product_id"`
	ProductName string  `gorm:"column:product_name;type:varchar(128);not null" json:"product_name"`
	Quantity    int     `gorm:"column:quantity;not null" json:"quantity"`
	Price       float64 `gorm:"column:price;type:decimal(10,2);not null" json:"price"`
	Weight      *string `gorm:"column:weight;type:varchar(32)" json:"weight"`
}

func (OrderItem) TableName() string { return "order_items" }
