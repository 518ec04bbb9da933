package catalog

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/gauswarn/storefront/internal/models"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
)

type Service struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

func NewService(db *gorm.DB, log *zap.SugaredLogger) *Service {
	return &Service{db: db, log: log}
}

func (s *Service) AddProduct(ctx context.Context, p *models.Product) (int64, error) {
	if err := s.db.WithContext(ctx).Create(p).Error; err != nil {
		return 0, fmt.Errorf("failed to add product: %w", err)
	}
	return p.ID, nil
}

func (s *Service) ListProducts(ctx context.Context) ([]*models.Product, error) {
	var rows []*models.Product
	if err := s.db.WithContext(ctx).Order("id DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return rows, nil
}

func (s *Service) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	var p models.Product
	if err := s.db.WithContext(ctx).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to load product %d: %w", id, err)
	}
	return &p, nil
}

func (s *Service) UpdateProduct(ctx context.Context, p *models.Product) error {
	res := s.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", p.ID).Updates(p)
	if res.Error != nil {
		return fmt.Errorf("failed to update product %d: %w", p.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (s *Service) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.db.WithContext(ctx).Delete(&models.Product{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete product %d: %w", id, err)
	}
	return nil
}

// DecrementStock reduces product stock after a placed order; it refuses to
// go below zero.
func (s *Service) DecrementStock(ctx context.Context, productID int64, qty int) error {
	res := s.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ? AND product_stock >= ?", productID, qty).
		UpdateColumn("product_stock", gorm.Expr("product_stock - ?", qty))
	if res.Error != nil {
		return fmt.Errorf("failed to decrement stock for product %d: %w", productID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("insufficient stock for product %d", productID)
	}
	return nil
}

func (s *Service) AddCategory(ctx context.Context, c *models.Category) (int64, error) {
	if err := s.db.WithContext(ctx).Create(c).Error; err != nil {
		return 0, fmt.Errorf("failed to add category: %w", err)
	}
	return c.ID, nil
}

func (s *Service) ListCategories(ctx context.Context) ([]*models.Category, error) {
	var rows []*models.Category
	if err := s.db.WithContext(ctx).Order("id DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return rows, nil
}

func (s *Service) GetCategory(ctx context.Context, id int64) (*models.Category, error) {
	var c models.Category
	if err := s.db.WithContext(ctx).First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to load category %d: %w", id, err)
	}
	return &c, nil
}

func (s *Service) DeleteCategory(ctx context.Context, id int64) error {
	if err := s.db.WithContext(ctx).Delete(&models.Category{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete category %d: %w", id, err)
	}
	return nil
}
