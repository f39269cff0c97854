package http

import (
	"context"
	"fmt"
	nethttp "net/http"
	"time"

	"github.com/iancoleman/strcase"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo-contrib/pprof"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/printhaus/go-shop-finance/internal/common/ctxdata"
	"github.com/printhaus/go-shop-finance/internal/common/graceful"
	commonhttp "github.com/printhaus/go-shop-finance/internal/common/http"
	"github.com/printhaus/go-shop-finance/internal/common/http/middleware"
	"github.com/printhaus/go-shop-finance/internal/common/metrics"
	"github.com/printhaus/go-shop-finance/internal/common/xlog"
	"github.com/printhaus/go-shop-finance/internal/config"
	"github.com/printhaus/go-shop-finance/internal/deliveries/http/health"
	"github.com/printhaus/go-shop-finance/internal/repositories"
	"github.com/printhaus/go-shop-finance/internal/services"

	v1adjustment "github.com/printhaus/go-shop-finance/internal/deliveries/http/v1/adjustment"
	v1customer "github.com/printhaus/go-shop-finance/internal/deliveries/http/v1/customer"
	v1order "github.com/printhaus/go-shop-finance/internal/deliveries/http/v1/order"
	v1payment "github.com/printhaus/go-shop-finance/internal/deliveries/http/v1/payment"
	v1policy "github.com/printhaus/go-shop-finance/internal/deliveries/http/v1/policy"

	// for swagger docs
	_ "github.com/printhaus/go-shop-finance/docs"
)

type svc struct {
	e               *echo.Echo
	addr            string
	gracefulTimeout time.Duration
}

var _ graceful.ProcessStartStopper = (*svc)(nil)

func (s *svc) Start() graceful.ProcessStarter {
	return func() error {
		return s.e.Start(s.addr)
	}
}

func (s *svc) Stop() graceful.ProcessStopper {
	return func(ctx context.Context) error {
		err := s.e.Shutdown(ctx)

		if err != nil {
			xlog.Errorf(ctx, "[SHUTDOWN] HTTP server error: %v", err)
		} else {
			xlog.Info(ctx, "[SHUTDOWN] HTTP server stopped successfully")
		}

		return err
	}
}

// Handler exposes the router, for tests.
func (s *svc) Handler() nethttp.Handler {
	return s.e
}

// @title PRINT SHOP FINANCE API DOCUMENTATION
// @version 1.0
// @description Customer ledgers, credit limits and installment policies of the print shop back office.

// @host localhost:8080
// @BasePath /api
// @schemes http
func NewHTTPServer(
	conf config.Config,
	nr *newrelic.Application,
	cacheRepo repositories.CacheRepository,
	srv *services.Services,
	metrics metrics.Metrics,
) *svc {
	app := echo.New()
	app.HideBanner = true

	svc := &svc{
		e:               app,
		addr:            fmt.Sprintf(":%d", conf.App.HTTPPort),
		gracefulTimeout: conf.App.GracefulTimeout,
	}

	m := middleware.NewMiddleware(conf, cacheRepo)
	loc := conf.App.Location()

	// options middleware
	app.Pre(echomiddleware.RemoveTrailingSlash())
	app.Use(echomiddleware.Recover())
	app.Use(echomiddleware.RequestID())
	app.Use(m.Context())
	app.Use(m.Logger())

	if nr != nil {
		app.Use(nrecho.Middleware(nr))

		app.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				txn := newrelic.FromContext(c.Request().Context())
				if txn != nil {
					txn.AddAttribute("x-correlation-id", ctxdata.GetCorrelationId(c.Request().Context()))
				}

				return next(c)
			}
		})
	}

	// pprof
	// Endpoint debug/pprof/
	if !conf.App.Environment().IsProduction() {
		pprof.Register(app)
		// swagger
		app.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	// prometheus metrics
	if metrics != nil {
		app.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
			Subsystem:  strcase.ToSnake(conf.App.Name),
			Registerer: metrics.PrometheusRegisterer(),
		}))
		app.GET("/metrics", echoprometheus.NewHandler())
	}

	// apiGroup
	apiGroup := app.Group("/api")

	// health check
	var checks []health.Check
	if cacheRepo != nil {
		checks = append(checks, health.Check{Name: "redis", Ping: cacheRepo.Ping})
	}
	health.New(apiGroup, checks...)

	// v1Group
	v1Group := apiGroup.Group("/v1")
	// v1Group middleware
	v1Group.Use(m.InternalAuth())
	// v1Group register api
	v1customer.New(v1Group, srv.Customer, srv.Ledger)
	v1order.New(v1Group, srv.Order, m, loc)
	v1payment.New(v1Group, srv.Payment, m, loc)
	v1adjustment.New(v1Group, srv.Adjustment, m, loc)
	v1policy.New(v1Group, srv.Policy, m, loc)

	// prepare an endpoint for 'Not Found'.
	app.Any("*", func(c echo.Context) error {
		errorMessage := fmt.Errorf("route '%s' does not exist in this API", c.Request().URL)
		return commonhttp.RestErrorResponse(c, nethttp.StatusNotFound, errorMessage)
	})

	return svc
}
