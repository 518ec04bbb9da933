package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	UserRoleUser  = "user"
	UserRoleAdmin = "admin"
)

// User covers both storefront customers and admin operators; Role
// distinguishes them. Password may be empty for social-login accounts.
type User struct {
	ID           int64           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	FullName     string          `gorm:"column:full_name;type:varchar(128);not null" json:"full_name"`
	Email        string          `gorm:"column:email;type:varchar(128);uniqueIndex;not null" json:"email"`
	MobileNumber string          `gorm:"column:mobile_number;type:varchar(16)" json:"mobile_number"`
	Password     string          `gorm:"column:password;type:varchar(128)" json:"-"`
	ProfileImage string          `gorm:"column:profile_image;type:varchar(512)" json:"profile_image"`
	Role         string          `gorm:"column:role;type:varchar(16);not null;default:user" json:"role"`
	Permissions  *datatypes.JSON `gorm:"column:permissions;type:json" json:"permissions"`
	Status       string          `gorm:"column:status;type:varchar(16);not null;default:active" json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func (User) TableName() string { return "rajlaxmi_user_new" }
