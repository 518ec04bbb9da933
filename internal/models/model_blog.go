package models

import "time"

type Blog struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"column:title;type:varchar(256);not null" json:"title"`
	Slug        string    `gorm:"column:slug;type:varchar(256);uniqueIndex;not null" json:"slug"`
	Content     string    `gorm:"column:content;type:longtext" json:"content"`
	Category    string    `gorm:"column:category;type:varchar(64)" json:"category"`
	ImageURL    string    `gorm:"column:image_url;type:varchar(512)" json:"image_url"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	Author      string    `gorm:"column:author;type:varchar(128)" json:"author"`
	ReadTime    string    `gorm:"column:read_time;type:varchar(16)" json:"read_time"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Blog) TableName() string { return "rajlaksmi_blogs" }
