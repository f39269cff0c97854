package graceful

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/exp/slices"

	"github.com/printhaus/go-shop-finance/internal/common/xlog"
)

type ProcessStarter func() error

type ProcessStopper func(ctx context.Context) error

type ProcessStartStopper interface {
	Start() ProcessStarter
	Stop() ProcessStopper
}

// StartProcessAtBackground runs every starter on its own goroutine. A starter
// returning an error is logged; it does not bring the other processes down.
func StartProcessAtBackground(ps ...ProcessStarter) {
	for _, p := range ps {
		if p == nil {
			continue
		}
		go func(start ProcessStarter) {
			if err := start(); err != nil {
				xlog.Warn(context.Background(), "[GRACEFUL] process exited", xlog.Err(err))
			}
		}(p)
	}
}

// StopProcessAtBackground blocks until SIGINT, SIGTERM or SIGUSR1 arrives and then stops ps.
func StopProcessAtBackground(timeout time.Duration, ps ...ProcessStopper) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGUSR1)
	defer signal.Stop(sig)

	received := <-sig
	xlog.Info(context.Background(), "[GRACEFUL] shutting down", xlog.String("signal", received.String()))

	StopProcess(timeout, ps...)
}

// StopProcess calls the stoppers in reverse registration order, each with its own timeout.
func StopProcess(timeout time.Duration, ps ...ProcessStopper) {
	ps = slices.Clone(ps)
	slices.Reverse(ps)

	for _, p := range ps {
		if p == nil {
			continue
		}
		func() {
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()
			if err := p(ctx); err != nil {
				xlog.Warn(ctx, "[GRACEFUL] stopper failed", xlog.Err(err))
			}
		}()
	}
}
