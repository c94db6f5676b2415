package telemetry

import (
	"context"
	"strings"
	"testing"

	"github.com/stockledger/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewProfiler(t *testing.T) {
	p, err := NewProfiler(config.ProfilingConfig{}, zap.NewNop())
	require.NoError(t, err)
	assert.False(t, p.IsEnabled())
	assert.NoError(t, p.Stop())
	assert.NoError(t, p.Stop())

	_, err = NewProfiler(config.ProfilingConfig{Enabled: true}, zap.NewNop())
	assert.Error(t, err)
}

func TestSanitizeLabels(t *testing.T) {
	pairs := sanitizeLabels(map[string]string{
		"Route":       "/api/v1/sales",
		"user_id":     "123",
		"empty":       "",
		"HTTP-Method": "POST",
		"operation":   strings.Repeat("x", 200),
	})
	assert.Equal(t, []string{
		"http_method", "POST",
		"operation", strings.Repeat("x", maxLabelValueLength),
		"route", "/api/v1/sales",
	}, pairs)
}

func TestHTTPRequestLabels(t *testing.T) {
	assert.Equal(t, map[string]string{"route": "/api/v1/sales", "method": "GET"},
		HTTPRequestLabels("/api/v1/sales", "GET", ""))
}

func TestWithProfilingLabels_RunsFn(t *testing.T) {
	called := 0
	WithProfilingLabels(context.Background(), HTTPRequestLabels("/health", "GET", "admin"), func(context.Context) { called++ })
	WithProfilingLabels(context.Background(), nil, func(context.Context) { called++ })
	assert.Equal(t, 2, called)
}
