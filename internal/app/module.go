package app

import (
	"time"

	"github.com/gauswarn/storefront/internal/app/api/server"
	"github.com/gauswarn/storefront/internal/app/service/auth"
	"github.com/gauswarn/storefront/internal/app/service/blog"
	"github.com/gauswarn/storefront/internal/app/service/catalog"
	"github.com/gauswarn/storefront/internal/app/service/checkout"
	"github.com/gauswarn/storefront/internal/app/service/newsletter"
	"github.com/gauswarn/storefront/internal/app/service/payment"
	"github.com/gauswarn/storefront/internal/app/service/paymentlog"
	"github.com/gauswarn/storefront/internal/app/service/statistics"
	"github.com/gauswarn/storefront/internal/platform/db"
	"github.com/gauswarn/storefront/pkg/config"
	"github.com/gauswarn/storefront/pkg/logger"

	"go.uber.org/fx"
)

const (
	DefaultStartTimeout = 15 * time.Second
	DefaultStopTimeout  = 10 * time.Second
)

var Module = fx.Options(
	logger.Module,
	config.Module,
	db.Module,
	server.Module,
	payment.Module,
	paymentlog.Module,
	auth.Module,
	checkout.Module,
	catalog.Module,
	blog.Module,
	newsletter.Module,
	statistics.Module,
)
