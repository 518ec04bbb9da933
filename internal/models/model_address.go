package models

import "time"

// Address is a saved shipping address. At most one per user is the default.
type Address struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID       int64     `gorm:"column:user_id;not null;index" json:"user_id"`
	FullName     string    `gorm:"column:full_name;type:varchar(128);not null" json:"full_name"`
	Phone        string    `gorm:"column:phone;type:varchar(16);not null" json:"phone"`
	AddressLine1 string    `gorm:"column:address_line1;type:varchar(256);not null" json:"address_line1"`
	AddressLine2 string    `gorm:"column:address_line2;type:varchar(256)" json:"address_line2"`
	City         string    `gorm:"column:city;type:varchar(64);not null" json:"city"`
	State        string    `gorm:"column:state;type:varchar(64);not null" json:"state"`
	Pincode      string    `gorm:"column:pincode;type:varchar(16);not null" json:"pincode"`
	IsDefault    bool      `gorm:"column:is_default;not null" json:"is_default"`
	CreatedAt    time.Time `json:"created_at"`
}

func (Address) TableName() string { return "user_addresses" }
