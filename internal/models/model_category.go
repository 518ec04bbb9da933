package models

import "time"

type Category struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"column:category_name;type:varchar(64);not null" json:"category_name"`
	Slug        string    `gorm:"column:category_slug;type:varchar(64);uniqueIndex;not null" json:"category_slug"`
	Description string    `gorm:"column:category_description;type:text" json:"category_description"`
	Image       string    `gorm:"column:category_image;type:varchar(256)" json:"category_image"`
	IsFeatured  bool      `gorm:"column:is_featured;not null" json:"is_featured"`
	IsActive    bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Category) TableName() string { return "rajlaksmi_category" }
