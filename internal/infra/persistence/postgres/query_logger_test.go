package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}

	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

func sqlFn() (string, int64) {
	return "SELECT 1", 1
}

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), buf.String())

	return entry
}

func TestQueryLogger_Config(t *testing.T) {
	base, _ := newBufferedLogger()

	quiet, ok := newQueryLogger(base, &config.Config{}).(*queryLogger)
	require.True(t, ok)
	assert.Equal(t, logger.Warn, quiet.level)
	assert.Equal(t, defaultSlowQueryThreshold, quiet.slowThreshold)

	cfg := &config.Config{Database: &config.DatabaseConfig{SlowQueryThreshold: time.Second}}
	cfg.Env.Debug = true
	verbose, ok := newQueryLogger(base, cfg).(*queryLogger)
	require.True(t, ok)
	assert.Equal(t, logger.Info, verbose.level)
	assert.Equal(t, time.Second, verbose.slowThreshold)
}

func TestQueryLogger_Trace(t *testing.T) {
	ctx := context.Background()

	t.Run("record not found is ignored", func(t *testing.T) {
		base, buf := newBufferedLogger()
		l := newQueryLogger(base, &config.Config{})

		l.Trace(ctx, time.Now(), sqlFn, gorm.ErrRecordNotFound)
		assert.Zero(t, buf.Len())
	})

	t.Run("query error is logged", func(t *testing.T) {
		base, buf := newBufferedLogger()
		l := newQueryLogger(base, &config.Config{})

		l.Trace(ctx, time.Now(), sqlFn, errors.New("boom"))

		entry := lastEntry(t, buf)
		assert.Equal(t, "Database query failed", entry["msg"])
		assert.Equal(t, "boom", entry["error"])
		assert.Equal(t, "SELECT 1", entry["sql"])
	})

	t.Run("slow query names the repository and caller", func(t *testing.T) {
		base, buf := newBufferedLogger()
		l := newQueryLogger(base, &config.Config{})
		userID := uuid.New()
		scoped := withRepository(ctx, "order")
		scoped = deliverycontext.WithRequestID(scoped, "req-7")
		scoped = deliverycontext.WithIdentity(scoped, entity.Identity{UserID: userID, Type: entity.AccountTypeCustomer})

		l.Trace(scoped, time.Now().Add(-time.Second), sqlFn, nil)

		entry := lastEntry(t, buf)
		assert.Equal(t, "Slow database query", entry["msg"])
		assert.Equal(t, "order", entry["repository"])
		assert.Equal(t, "req-7", entry["request_id"])
		assert.Equal(t, userID.String(), entry["user_id"])
	})

	t.Run("request logger is preferred", func(t *testing.T) {
		base, baseBuf := newBufferedLogger()
		reqLogger, reqBuf := newBufferedLogger()
		cfg := &config.Config{}
		cfg.Env.Debug = true
		l := newQueryLogger(base, cfg)
		scoped := deliverycontext.WithLogger(ctx, reqLogger.With(slog.String("request_id", "req-8")))
		scoped = deliverycontext.WithRequestID(scoped, "req-8")

		l.Trace(scoped, time.Now(), sqlFn, nil)

		assert.Zero(t, baseBuf.Len())
		entry := lastEntry(t, reqBuf)
		assert.Equal(t, "Database query", entry["msg"])
		assert.Equal(t, "req-8", entry["request_id"])
	})

	t.Run("silent mode logs nothing", func(t *testing.T) {
		base, buf := newBufferedLogger()
		l := newQueryLogger(base, &config.Config{}).LogMode(logger.Silent)

		l.Trace(ctx, time.Now(), sqlFn, errors.New("boom"))
		assert.Zero(t, buf.Len())
	})
}

func TestQueryLogger_Message(t *testing.T) {
	base, buf := newBufferedLogger()
	l := newQueryLogger(base, &config.Config{})

	l.Info(context.Background(), "ignored at warn level")
	assert.Zero(t, buf.Len())

	l.Warn(withRepository(context.Background(), "user"), "%d rows", 3)
	entry := lastEntry(t, buf)
	assert.Equal(t, "3 rows", entry["message"])
	assert.Equal(t, "user", entry["repository"])
}
