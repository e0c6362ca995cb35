package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultSlowQueryThreshold = 200 * time.Millisecond

type repositoryKey struct{}

// withRepository tags ctx with the repository issuing the statement.
func withRepository(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, repositoryKey{}, name)
}

func repositoryFromContext(ctx context.Context) string {
	name, _ := ctx.Value(repositoryKey{}).(string)

	return name
}

// queryLogger writes gorm statements through the request-scoped slog logger,
// labelled with the repository and the authenticated caller.
type queryLogger struct {
	base          *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newQueryLogger(base *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	threshold := defaultSlowQueryThreshold
	if cfg != nil {
		if cfg.Env.Debug {
			level = logger.Info
		}
		if cfg.Database != nil && cfg.Database.SlowQueryThreshold > 0 {
			threshold = cfg.Database.SlowQueryThreshold
		}
	}

	return &queryLogger{
		base:          base,
		level:         level,
		slowThreshold: threshold,
	}
}

func (l *queryLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *queryLogger) Info(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *queryLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *queryLogger) Error(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *queryLogger) message(ctx context.Context, enabledAt logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.base == nil || l.level < enabledAt {
		return
	}

	attrs := append(l.scopeAttrs(ctx), slog.String("message", fmt.Sprintf(msg, args...)))
	l.loggerFor(ctx).LogAttrs(ctx, level, "Database message", attrs...)
}

func (l *queryLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.base == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	log := l.loggerFor(ctx)

	switch {
	case err != nil && l.level >= logger.Error && !isExpectedMiss(err):
		attrs := append(l.queryAttrs(ctx, sqlAndRowsFn, elapsed), slog.String("error", err.Error()))
		log.LogAttrs(ctx, slog.LevelError, "Database query failed", attrs...)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		attrs := append(l.queryAttrs(ctx, sqlAndRowsFn, elapsed), slog.Duration("slow_threshold", l.slowThreshold))
		log.LogAttrs(ctx, slog.LevelWarn, "Slow database query", attrs...)
	case l.level >= logger.Info:
		log.LogAttrs(ctx, slog.LevelDebug, "Database query", l.queryAttrs(ctx, sqlAndRowsFn, elapsed)...)
	}
}

// loggerFor prefers the request logger, which already carries request_id.
func (l *queryLogger) loggerFor(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, l.base)
}

func (l *queryLogger) scopeAttrs(ctx context.Context) []slog.Attr {
	attrs := make([]slog.Attr, 0, 3)
	if deliverycontext.GetLogger(ctx) == nil {
		if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
			attrs = append(attrs, slog.String("request_id", requestID))
		}
	}
	if repo := repositoryFromContext(ctx); repo != "" {
		attrs = append(attrs, slog.String("repository", repo))
	}
	if caller, ok := deliverycontext.IdentityFromContext(ctx); ok {
		attrs = append(attrs, slog.String("user_id", caller.UserID.String()))
	}

	return attrs
}

func (l *queryLogger) queryAttrs(ctx context.Context, sqlAndRowsFn func() (string, int64), elapsed time.Duration) []slog.Attr {
	sql, rows := sqlAndRowsFn()

	return append(l.scopeAttrs(ctx),
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	)
}

// isExpectedMiss reports lookups that repositories translate into not-found errors.
func isExpectedMiss(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
