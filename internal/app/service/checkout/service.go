package checkout

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/gauswarn/storefront/internal/models"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrEmptyOrder    = errors.New("order has no items")
	ErrNoUpdates     = errors.New("no updates provided")
)

type Service struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

func NewService(db *gorm.DB, log *zap.SugaredLogger) *Service {
	return &Service{db: db, log: log}
}

// SaveAddress persists a shipping address. Marking one as default unsets the
// previous default inside the same transaction.
func (s *Service) SaveAddress(ctx context.Context, addr *models.Address) (int64, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if addr.IsDefault {
			if err := tx.Model(&models.Address{}).
				Where("user_id = ?", addr.UserID).
				Update("is_default", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(addr).Error
	})
	if err != nil {
		return 0, fmt.Errorf("failed to save address: %w", err)
	}
	return addr.ID, nil
}

func (s *Service) ListAddresses(ctx context.Context, userID int64) ([]*models.Address, error) {
	var rows []*models.Address
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("is_default DESC, created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}
	return rows, nil
}

func (s *Service) DeleteAddress(ctx context.Context, id int64) error {
	if err := s.db.WithContext(ctx).Delete(&models.Address{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete address: %w", err)
	}
	return nil
}

type PlaceOrderInput struct {
	UserID            int64               `json:"user_id"`
	TotalAmount       float64             `json:"total_amount"`
	ShippingAddressID int64               `json:"shipping_address_id"`
	PaymentMethod     string              `json:"payment_method"`
	Items             []*models.OrderItem `json:"items"`
}

// PlaceOrder writes the order and its line items in one transaction; a
// failing item insert rolls the order back.
func (s *Service) PlaceOrder(ctx context.Context, in *PlaceOrderInput) (int64, error) {
	if len(in.Items) == 0 {
		return 0, ErrEmptyOrder
	}
	order := &models.Order{
		UserID:            in.UserID,
		TotalAmount:       in.TotalAmount,
		ShippingAddressID: in.ShippingAddressID,
		PaymentMethod:     in.PaymentMethod,
		Status:            models.OrderStatusPlaced,
		PaymentStatus:     models.PaymentStatusPending,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for _, item := range in.Items {
			item.OrderID = order.ID
		}
		return tx.Create(in.Items).Error
	})
	if err != nil {
		return 0, fmt.Errorf("failed to place order: %w", err)
	}
	s.log.Infow("order placed", "order_id", order.ID, "user_id", in.UserID, "amount", in.TotalAmount)
	return order.ID, nil
}

func (s *Service) MyOrders(ctx context.Context, userID int64) ([]*models.Order, error) {
	var rows []*models.Order
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return rows, nil
}

func (s *Service) OrderDetails(ctx context.Context, orderID int64) (*models.Order, error) {
	var order models.Order
	err := s.db.WithContext(ctx).
		Preload("Items").
		First(&order, orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to load order %d: %w", orderID, err)
	}
	return &order, nil
}

// UpdateOrderStatus applies a partial update; both fields optional, at least
// one required.
func (s *Service) UpdateOrderStatus(ctx context.Context, orderID int64, status, paymentStatus string) error {
	updates := map[string]any{}
	if status != "" {
		updates["status"] = status
	}
	if paymentStatus != "" {
		updates["payment_status"] = paymentStatus
	}
	if len(updates) == 0 {
		return ErrNoUpdates
	}
	if err := s.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", orderID).
		Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to update order %d: %w", orderID, err)
	}
	return nil
}
