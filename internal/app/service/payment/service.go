package payment

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/gauswarn/storefront/internal/app/service/paymentlog"
	"github.com/gauswarn/storefront/internal/models"
	"github.com/gauswarn/storefront/pkg/config"
	"github.com/gauswarn/storefront/pkg/metrics"
)

// callbackLog records the provider-callback audit trail.
type callbackLog interface {
	Save(ctx context.Context, entry *models.PaymentCallbackLog)
}

// Service implements Manager against Razorpay, with best-effort shipping and
// notification side effects.
type Service struct {
	cfg      *config.Config
	log      *zap.SugaredLogger
	rows     pendingStore
	provider ProviderClient
	shipping *ShippingAdapter
	notifier *Notifier
	events   callbackLog
	procDur  *prometheus.HistogramVec
}

func NewService(cfg *config.Config, log *zap.SugaredLogger, db *gorm.DB, provider ProviderClient, shipping *ShippingAdapter, notifier *Notifier, events *paymentlog.Service) Manager {
	s := &Service{
		cfg:      cfg,
		log:      log,
		rows:     &gormPendingStore{db: db},
		provider: provider,
		shipping: shipping,
		notifier: notifier,
		events:   events,
	}
	if c := metrics.NewMetric(metrics.MetricsBusinessProcess, "payment"); c != nil {
		if err := prometheus.Register(c); err == nil {
			s.procDur = c.(*prometheus.HistogramVec)
		}
	}
	return s
}

func (s *Service) observe(subtype string, ms float64) {
	if s.procDur != nil {
		s.procDur.WithLabelValues("payment", subtype).Observe(ms)
	}
}
