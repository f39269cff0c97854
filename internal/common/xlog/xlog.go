package xlog

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/printhaus/go-shop-finance/internal/common/ctxdata"
)

const (
	ModeDevelopment = "development"
	ModeProduction  = "production"
)

type Field = zap.Field

var (
	mu     sync.RWMutex
	logger = zap.NewNop()
)

type options struct {
	mode        string
	level       string
	serviceName string
	env         string
}

type Option func(*options)

func WithLogMode(mode string) Option {
	return func(o *options) {
		o.mode = mode
	}
}

func WithLogLevel(level string) Option {
	return func(o *options) {
		o.level = level
	}
}

func WithServiceName(name string) Option {
	return func(o *options) {
		o.serviceName = name
	}
}

func WithEnv(env string) Option {
	return func(o *options) {
		o.env = env
	}
}

// Init replaces the package logger. It is safe to call more than once.
func Init(opts ...Option) error {
	o := &options{mode: ModeProduction, level: "info"}
	for _, opt := range opts {
		opt(o)
	}

	l, err := build(o)
	if err != nil {
		return err
	}

	mu.Lock()
	logger = l
	mu.Unlock()

	return nil
}

func build(o *options) (*zap.Logger, error) {
	var cfg zap.Config
	if strings.EqualFold(o.mode, ModeDevelopment) {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	level, err := zapcore.ParseLevel(o.level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", o.level, err)
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}

	if o.serviceName != "" {
		l = l.With(zap.String("service", o.serviceName))
	}
	if o.env != "" {
		l = l.With(zap.String("env", o.env))
	}

	return l, nil
}

// InitForTest installs a development logger that only prints warnings and above.
func InitForTest() {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	cfg.OutputPaths = []string{"stderr"}

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "xlog: failed to init test logger: %v\n", err)
		l = zap.NewNop()
	}

	mu.Lock()
	logger = l
	mu.Unlock()
}

// ReplaceForTest swaps the global logger, e.g. for a zaptest observer core.
func ReplaceForTest(l *zap.Logger) {
	mu.Lock()
	logger = l
	mu.Unlock()
}

// L returns the underlying zap logger.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func Sync() error {
	return L().Sync()
}

func withContext(ctx context.Context, fields []Field) []Field {
	d := ctxdata.Get(ctx)
	if d.CorrelationID != "" {
		fields = append(fields, zap.String("correlation_id", d.CorrelationID))
	}
	if d.IdempotencyKey != "" {
		fields = append(fields, zap.String("idempotency_key", d.IdempotencyKey))
	}
	if d.Source != "" {
		fields = append(fields, zap.String("source", d.Source))
	}

	return fields
}

func Debug(ctx context.Context, msg string, fields ...Field) {
	L().Debug(msg, withContext(ctx, fields)...)
}

func Info(ctx context.Context, msg string, fields ...Field) {
	L().Info(msg, withContext(ctx, fields)...)
}

func Warn(ctx context.Context, msg string, fields ...Field) {
	L().Warn(msg, withContext(ctx, fields)...)
}

func Error(ctx context.Context, msg string, fields ...Field) {
	L().Error(msg, withContext(ctx, fields)...)
}

func Panic(ctx context.Context, msg string, fields ...Field) {
	L().Panic(msg, withContext(ctx, fields)...)
}

func Fatal(ctx context.Context, msg string, fields ...Field) {
	L().Fatal(msg, withContext(ctx, fields)...)
}

func Debugf(ctx context.Context, format string, args ...any) {
	L().Debug(fmt.Sprintf(format, args...), withContext(ctx, nil)...)
}

func Infof(ctx context.Context, format string, args ...any) {
	L().Info(fmt.Sprintf(format, args...), withContext(ctx, nil)...)
}

func Warnf(ctx context.Context, format string, args ...any) {
	L().Warn(fmt.Sprintf(format, args...), withContext(ctx, nil)...)
}

func Errorf(ctx context.Context, format string, args ...any) {
	L().Error(fmt.Sprintf(format, args...), withContext(ctx, nil)...)
}

func Fatalf(ctx context.Context, format string, args ...any) {
	L().Fatal(fmt.Sprintf(format, args...), withContext(ctx, nil)...)
}
