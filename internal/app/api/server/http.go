package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gauswarn/storefront/docs"
	"github.com/gauswarn/storefront/internal/app/api/handlers"
	"github.com/gauswarn/storefront/internal/app/service/auth"
	"github.com/gauswarn/storefront/internal/app/service/blog"
	"github.com/gauswarn/storefront/internal/app/service/catalog"
	"github.com/gauswarn/storefront/internal/app/service/checkout"
	"github.com/gauswarn/storefront/internal/app/service/newsletter"
	"github.com/gauswarn/storefront/internal/app/service/payment"
	"github.com/gauswarn/storefront/internal/app/service/statistics"
	cfgpkg "github.com/gauswarn/storefront/pkg/config"

	mw "github.com/gauswarn/storefront/internal/app/api/middleware"

	metrics "github.com/gauswarn/storefront/pkg/metrics"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func newEngine() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	// Add request tracing middleware only; request logger & access log are attached per group in registerRoutes
	r.Use(mw.TraceMiddleware())
	return r
}

type routeDeps struct {
	fx.In

	Log      *zap.SugaredLogger
	Cfg      *cfgpkg.Config
	Payments payment.Manager
	Auth     *auth.Service
	Checkout *checkout.Service
	Catalog  *catalog.Service
	Blog     *blog.Service
	News     *newsletter.Service
	Stats    *statistics.Service
}

func registerRoutes(r *gin.Engine, d routeDeps) {
	log := d.Log
	cfg := d.Cfg

	// Prometheus metrics
	if cfg != nil && cfg.MetricsAddr != "" {
		p := metrics.NewPrometheus(metrics.NewPrometheusOptions{
			ReqCntURLLabelMappingFn: func(c *gin.Context) string {
				if fp := c.FullPath(); fp != "" {
					return fp
				}
				return c.Request.URL.Path
			},
			Logger: log,
		})
		p.SetListenAddress(cfg.MetricsAddr)
		p.Use(r)

		log.Infow("metrics started", "addr", cfg.MetricsAddr)
	}

	// Public group: request logger + access log
	pub := r.Group("/")
	pub.Use(mw.RequestLoggerMiddleware(log), mw.AccessLogMiddleware())
	handlers.RegisterHealthRoutes(pub)
	// Swagger UI
	docs.SwaggerInfo.BasePath = "/"
	pub.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	apiV1 := r.Group("/api/v1")
	apiV1.Use(mw.RequestLoggerMiddleware(log), mw.AccessLogMiddleware())

	// Storefront APIs, no login required
	handlers.RegisterPaymentRoutes(apiV1.Group("/payment"), d.Payments)
	handlers.RegisterAuthRoutes(apiV1.Group("/auth"), d.Auth)
	handlers.RegisterCatalogRoutes(apiV1.Group("/catalog"), d.Catalog)
	handlers.RegisterBlogRoutes(apiV1.Group("/blog"), d.Blog)
	handlers.RegisterNewsletterRoutes(apiV1.Group("/newsletter"), d.News)

	// Customer APIs behind login
	customer := apiV1.Group("/checkout")
	customer.Use(mw.AuthMiddleware(cfg.Auth.JWTSecret))
	handlers.RegisterCheckoutRoutes(customer, d.Checkout)

	// Admin APIs behind login + role check
	admin := apiV1.Group("/admin")
	admin.Use(mw.AuthMiddleware(cfg.Auth.JWTSecret), mw.RequireAdmin())
	handlers.RegisterAdminRoutes(admin, d.Stats, d.Catalog, d.Blog, d.News, d.Checkout)
}

func runServer(lc fx.Lifecycle, log *zap.SugaredLogger, cfg *cfgpkg.Config, r *gin.Engine) {
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{Addr: addr, Handler: r, ReadHeaderTimeout: 5 * time.Second}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("starting HTTP server", "addr", addr)
			go func() {
				if err := srv.ListenAndServe(); err != nil {
					log.Errorf("server error: %v", err)
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Infow("stopping HTTP server")
			shutdownCtx, cancel := context.WithTimeout(ctx, 120*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

var Module = fx.Options(
	fx.Provide(newEngine),
	fx.Invoke(registerRoutes),
	fx.Invoke(runServer),
)
