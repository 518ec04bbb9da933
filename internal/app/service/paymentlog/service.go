package paymentlog

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/gauswarn/storefront/internal/models"
	"github.com/gauswarn/storefront/pkg/logctx"
	"github.com/gauswarn/storefront/pkg/tool"
)

// Service persists the provider-callback audit trail.
type Service struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

func New(db *gorm.DB, log *zap.SugaredLogger) *Service { return &Service{db: db, log: log} }

// Save asynchronously persists a callback log row. Nil input is ignored;
// failures are logged and never reach the verification path.
func (s *Service) Save(ctx context.Context, entry *models.PaymentCallbackLog) {
	go func() {
		if entry == nil {
			return
		}
		if entry.ID == "" {
			entry.ID = tool.GenerateUUIDV7()
		}
		if err := s.db.Save(entry).Error; err != nil {
			logctx.FromCtx(ctx, s.log).Errorf("failed to save payment callback log: %v", err)
		}
	}()
}
