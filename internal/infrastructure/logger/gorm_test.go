package logger

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	gormlogger "gorm.io/gorm/logger"
)

func TestGormLogger_LogMode(t *testing.T) {
	gl := NewGormLogger(zap.NewNop(), gormlogger.Info)
	next, ok := gl.LogMode(gormlogger.Warn).(*GormLogger)
	require.True(t, ok)

	assert.Equal(t, gormlogger.Info, gl.logLevel)
	assert.Equal(t, gormlogger.Warn, next.logLevel)
}

func TestGormLogger_Trace(t *testing.T) {
	query := func(sql string) func() (string, int64) {
		return func() (string, int64) { return sql, 1 }
	}

	t.Run("logs errors with request id", func(t *testing.T) {
		core, recorded := observer.New(zapcore.DebugLevel)
		gl := NewGormLogger(zap.New(core), gormlogger.Warn)
		ctx := WithRequestID(context.Background(), "req-9")

		gl.Trace(ctx, time.Now(), query("UPDATE products SET quantity = quantity - 1"), errors.New("boom"))

		entries := recorded.All()
		require.Len(t, entries, 1)
		assert.Equal(t, "SQL Error", entries[0].Message)
		assert.Equal(t, "req-9", entries[0].ContextMap()["request_id"])
	})

	t.Run("skips record not found by default", func(t *testing.T) {
		core, recorded := observer.New(zapcore.DebugLevel)
		gl := NewGormLogger(zap.New(core), gormlogger.Warn)

		gl.Trace(context.Background(), time.Now(), query("SELECT 1"), gormlogger.ErrRecordNotFound)
		assert.Empty(t, recorded.All())
	})

	t.Run("warns on slow queries", func(t *testing.T) {
		core, recorded := observer.New(zapcore.DebugLevel)
		gl := NewGormLogger(zap.New(core), gormlogger.Warn, WithSlowThreshold(time.Millisecond))

		gl.Trace(context.Background(), time.Now().Add(-time.Second), query("SELECT 1"), nil)
		entries := recorded.All()
		require.Len(t, entries, 1)
		assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	})

	t.Run("truncates long statements unless full sql is enabled", func(t *testing.T) {
		long := "SELECT " + strings.Repeat("x", 2*maxLoggedSQL)

		core, recorded := observer.New(zapcore.DebugLevel)
		NewGormLogger(zap.New(core), gormlogger.Info).Trace(context.Background(), time.Now(), query(long), nil)
		logged, _ := recorded.All()[0].ContextMap()["sql"].(string)
		assert.Len(t, logged, maxLoggedSQL+3)

		core, recorded = observer.New(zapcore.DebugLevel)
		NewGormLogger(zap.New(core), gormlogger.Info, WithFullSQL(true)).Trace(context.Background(), time.Now(), query(long), nil)
		assert.Equal(t, long, recorded.All()[0].ContextMap()["sql"])
	})

	t.Run("silent logs nothing", func(t *testing.T) {
		core, recorded := observer.New(zapcore.DebugLevel)
		gl := NewGormLogger(zap.New(core), gormlogger.Silent)
		gl.Trace(context.Background(), time.Now(), query("SELECT 1"), errors.New("x"))
		assert.Empty(t, recorded.All())
	})
}

func TestMapGormLogLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Silent, MapGormLogLevel("silent"))
	assert.Equal(t, gormlogger.Error, MapGormLogLevel("error"))
	assert.Equal(t, gormlogger.Info, MapGormLogLevel("debug"))
	assert.Equal(t, gormlogger.Warn, MapGormLogLevel("other"))
}
