package blog

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/gauswarn/storefront/internal/models"
)

var ErrBlogNotFound = errors.New("blog not found")

const defaultListLimit = 50

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

func (s *Service) Create(ctx context.Context, b *models.Blog) (int64, error) {
	if err := s.db.WithContext(ctx).Create(b).Error; err != nil {
		return 0, fmt.Errorf("failed to create blog: %w", err)
	}
	return b.ID, nil
}

func (s *Service) List(ctx context.Context) ([]*models.Blog, error) {
	var rows []*models.Blog
	if err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(defaultListLimit).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list blogs: %w", err)
	}
	return rows, nil
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	var b models.Blog
	if err := s.db.WithContext(ctx).Where("slug = ?", slug).First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlogNotFound
		}
		return nil, fmt.Errorf("failed to load blog %q: %w", slug, err)
	}
	return &b, nil
}
