package newsletter

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gauswarn/storefront/internal/models"
)

var ErrInvalidEmail = errors.New("a valid email is required")

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// Subscribe adds an email to the newsletter list; re-subscribing an existing
// address is a no-op.
func (s *Service) Subscribe(ctx context.Context, email string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return ErrInvalidEmail
	}
	sub := &models.NewsletterSubscriber{Email: email}
	if err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(sub).Error; err != nil {
		return fmt.Errorf("failed to subscribe %s: %w", email, err)
	}
	return nil
}

func (s *Service) Unsubscribe(ctx context.Context, email string) error {
	if err := s.db.WithContext(ctx).
		Where("email = ?", strings.TrimSpace(strings.ToLower(email))).
		Delete(&models.NewsletterSubscriber{}).Error; err != nil {
		return fmt.Errorf("failed to unsubscribe %s: %w", email, err)
	}
	return nil
}

func (s *Service) List(ctx context.Context) ([]*models.NewsletterSubscriber, error) {
	var rows []*models.NewsletterSubscriber
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list subscribers: %w", err)
	}
	return rows, nil
}
