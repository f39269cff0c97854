package consumer

import (
	"context"
	"fmt"
	"time"

	"github.com/iancoleman/strcase"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo-contrib/pprof"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/printhaus/go-shop-finance/internal/common/graceful"
	"github.com/printhaus/go-shop-finance/internal/common/metrics"
	"github.com/printhaus/go-shop-finance/internal/config"
	"github.com/printhaus/go-shop-finance/internal/deliveries/http/health"
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
		return s.e.Shutdown(ctx)
	}
}

// NewHTTPServer serves the health check and prometheus metrics of a consumer process.
func NewHTTPServer(conf config.Config, metrics metrics.Metrics) *svc {
	app := echo.New()
	app.HideBanner = true

	svc := &svc{e: app, addr: fmt.Sprintf(":%d", conf.MessageBroker.HTTPPort), gracefulTimeout: conf.App.GracefulTimeout}

	// options middleware
	app.Pre(echomiddleware.RemoveTrailingSlash())
	app.Use(echomiddleware.Recover())
	app.Use(echomiddleware.RequestID())

	// pprof
	// Endpoint debug/pprof/
	if !conf.App.Environment().IsProduction() {
		pprof.Register(app)
	}

	// prometheus metrics
	if metrics != nil {
		app.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
			Subsystem:  strcase.ToSnake(conf.App.Name) + "_consumer",
			Registerer: metrics.PrometheusRegisterer(),
		}))
		app.GET("/metrics", echoprometheus.NewHandler())
	}

	health.New(app.Group("/api"))

	return svc
}
