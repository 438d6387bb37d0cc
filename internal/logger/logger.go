package logger

import (
	"context"
	"maps"
	"time"

	"github.com/TheZeroSlave/zapsentry"
	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// log stays a no-op logger until Initialize runs, so library code and tests can log freely
	log          = zap.NewNop()
	sentryClient *sentry.Client
)

// Config selects the encoder, the service tag and the optional sentry sink
type Config struct {
	Debug   bool
	Service string

	// SentryDSN enables error reporting; SentryClient overrides the client built from it
	SentryDSN    string
	SentryClient *sentry.Client

	// BreadcrumbLevel is the lowest level recorded as a sentry breadcrumb (default info)
	BreadcrumbLevel zapcore.Level
	Tags            map[string]string
}

// Initialize replaces the global logger
func Initialize(cfg Config) error {
	base, err := newBaseLogger(cfg)
	if err != nil {
		return err
	}

	if cfg.SentryDSN == "" && cfg.SentryClient == nil {
		log = base
		return nil
	}

	client := cfg.SentryClient
	if client == nil {
		client, err = sentry.NewClient(sentry.ClientOptions{Dsn: cfg.SentryDSN, Debug: cfg.Debug})
		if err != nil {
			return err
		}
	}
	sentryClient = client

	core, err := zapsentry.NewCore(sentryConfig(cfg), zapsentry.NewSentryClientFromClient(client))
	if err != nil {
		return err
	}
	log = zapsentry.AttachCoreToLogger(core, base)
	return nil
}

func newBaseLogger(cfg Config) (*zap.Logger, error) {
	zapConfig := zap.NewProductionConfig()
	if cfg.Debug {
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	base, err := zapConfig.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}
	if cfg.Service != "" {
		base = base.With(zap.String("service", cfg.Service))
	}
	return base, nil
}

// sentryConfig reports error and above as events and lower levels as breadcrumbs
func sentryConfig(cfg Config) zapsentry.Configuration {
	breadcrumbLevel := cfg.BreadcrumbLevel
	if breadcrumbLevel == zapcore.InvalidLevel {
		breadcrumbLevel = zapcore.InfoLevel
	}

	tags := maps.Clone(cfg.Tags)
	if tags == nil {
		tags = make(map[string]string, 1)
	}
	if cfg.Service != "" {
		tags["service"] = cfg.Service
	}

	return zapsentry.Configuration{
		Level:             zapcore.ErrorLevel,
		EnableBreadcrumbs: true,
		BreadcrumbLevel:   breadcrumbLevel,
		Tags:              tags,
	}
}

// Flush waits up to timeout for queued sentry events
func Flush(timeout time.Duration) {
	if sentryClient != nil {
		sentryClient.Flush(timeout)
	}
}

// FromContext binds the sentry scope carried by ctx
func FromContext(ctx context.Context) *zap.Logger {
	if ctx == nil {
		return log
	}
	return log.With(zapsentry.Context(ctx))
}

// Default returns the global logger
func Default() *zap.Logger {
	return log
}

func With(fields ...zap.Field) *zap.Logger {
	return log.With(fields...)
}

func errorMessage(err error) string {
	if err == nil {
		return "error occurred"
	}
	return err.Error()
}

func Debug(msg string, fields ...zap.Field) { log.Debug(msg, fields...) }
func Info(msg string, fields ...zap.Field)  { log.Info(msg, fields...) }
func Warn(msg string, fields ...zap.Field)  { log.Warn(msg, fields...) }
func Fatal(msg string, fields ...zap.Field) { log.Fatal(msg, fields...) }

// Error logs err as the message so sentry groups events by error text
func Error(err error, fields ...zap.Field) { log.Error(errorMessage(err), fields...) }

func DebugCtx(ctx context.Context, msg string, fields ...zap.Field) {
	FromContext(ctx).Debug(msg, fields...)
}

func InfoCtx(ctx context.Context, msg string, fields ...zap.Field) {
	FromContext(ctx).Info(msg, fields...)
}

func WarnCtx(ctx context.Context, msg string, fields ...zap.Field) {
	FromContext(ctx).Warn(msg, fields...)
}

func ErrorCtx(ctx context.Context, err error, fields ...zap.Field) {
	FromContext(ctx).Error(errorMessage(err), fields...)
}

func FatalCtx(ctx context.Context, msg string, fields ...zap.Field) {
	FromContext(ctx).Fatal(msg, fields...)
}
