package payment

import (
	"context"

	"gorm.io/gorm"

	"github.com/gauswarn/storefront/internal/models"
)

// pendingStore narrows pending-payment persistence so the verification flow
// can be exercised without a live database.
type pendingStore interface {
	Create(ctx context.Context, row *models.PendingPayment) error
	Load(ctx context.Context, id int64) (*models.PendingPayment, error)
	Update(ctx context.Context, id int64, updates map[string]any) error
}

type gormPendingStore struct {
	db *gorm.DB
}

func (s *gormPendingStore) Create(ctx context.Context, row *models.PendingPayment) error {
	return s.db.WithContext(ctx).Create(row).Error
}

func (s *gormPendingStore) Load(ctx context.Context, id int64) (*models.PendingPayment, error) {
	var row models.PendingPayment
	if err := s.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *gormPendingStore) Update(ctx context.Context, id int64, updates map[string]any) error {
	return s.db.WithContext(ctx).Model(&models.PendingPayment{}).Where("id = ?", id).Updates(updates).Error
}
