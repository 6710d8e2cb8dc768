package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"usersvc/config"
	"usersvc/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// queryLogger routes gorm output into the service logger. Statements are
// always rendered with their placeholders: the credentials table carries
// password hashes and bound values never reach a log line.
type queryLogger struct {
	logger        *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

var (
	_ logger.Interface  = (*queryLogger)(nil)
	_ gorm.ParamsFilter = (*queryLogger)(nil)
)

func newQueryLogger(base *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}
	if base != nil {
		base = base.With(slog.String("component", "postgres"))
	}

	return &queryLogger{
		logger:        base,
		level:         level,
		slowThreshold: slowQueryThreshold,
	}
}

func (l *queryLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

// ParamsFilter drops every bound value before gorm renders the statement.
func (l *queryLogger) ParamsFilter(_ context.Context, sql string, _ ...any) (string, []any) {
	return sql, nil
}

func (l *queryLogger) Info(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Info, slog.LevelInfo, msg, args)
}

func (l *queryLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Warn, slog.LevelWarn, msg, args)
}

func (l *queryLogger) Error(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Error, slog.LevelError, msg, args)
}

func (l *queryLogger) message(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args []any) {
	if l.logger == nil || l.level < threshold {
		return
	}

	l.logger.LogAttrs(ctx, level, "Database message", slog.String("message", fmt.Sprintf(msg, args...)))
}

func (l *queryLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.logger == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)

	var (
		level slog.Level
		msg   string
		extra slog.Attr
	)
	switch {
	case l.isFailure(err):
		level, msg, extra = slog.LevelError, "Database statement failed", slog.String("error", err.Error())
	case l.isSlow(elapsed):
		level, msg, extra = slog.LevelWarn, "Slow database statement", slog.Duration("slowThreshold", l.slowThreshold)
	case l.level >= logger.Info:
		level, msg = slog.LevelInfo, "Database statement"
	default:
		return
	}

	sql, rows := sqlAndRowsFn()
	attrs := []slog.Attr{
		slog.String("sql", sql),
		slog.Int64("rows", rows),
		slog.Duration("elapsed", elapsed),
	}
	if extra.Key != "" {
		attrs = append(attrs, extra)
	}

	l.logger.LogAttrs(ctx, level, msg, attrs...)
}

// Lookups that find nothing surface as optional.Empty, not as failures.
func (l *queryLogger) isFailure(err error) bool {
	return err != nil && l.level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound)
}

func (l *queryLogger) isSlow(elapsed time.Duration) bool {
	return l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn
}
