package main

import (
	"context"
	"time"

	"github.com/printhaus/go-shop-finance/cmd/setup"
	"github.com/printhaus/go-shop-finance/internal/common/graceful"
	"github.com/printhaus/go-shop-finance/internal/common/xlog"
	"github.com/printhaus/go-shop-finance/internal/deliveries/http"
)

const setupFailureTimeout = 5 * time.Second

func main() {
	ctx := context.Background()

	s, setupStoppers, err := setup.Init("api")
	if err != nil {
		timeout := setupFailureTimeout
		if s != nil && s.Config.App.GracefulTimeout > 0 {
			timeout = s.Config.App.GracefulTimeout
		}
		graceful.StopProcess(timeout, setupStoppers...)
		xlog.Fatalf(ctx, "failed to setup app: %v", err)
	}

	server := http.NewHTTPServer(s.Config, s.NewRelic, s.RepoCache, s.Service, s.Metrics)

	// stopped in reverse: the server drains before the database, redis and kafka clients close
	stoppers := append(setupStoppers, server.Stop())

	graceful.StartProcessAtBackground(server.Start())
	xlog.Infof(ctx, "http server listening on :%d", s.Config.App.HTTPPort)

	graceful.StopProcessAtBackground(s.Config.App.GracefulTimeout, stoppers...)
	xlog.Info(ctx, "http server stopped!")
}
