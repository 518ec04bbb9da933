package models

import "time"

type NewsletterSubscriber struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Email     string    `gorm:"column:email;type:varchar(128);uniqueIndex;not null" json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func (NewsletterSubscriber) TableName() string { return "rajlaksmi_newsletter_subscribers" }
