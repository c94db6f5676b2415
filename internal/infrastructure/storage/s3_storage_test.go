package storage

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stockledger/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func testStorageConfig() *config.StorageConfig {
	return &config.StorageConfig{
		Bucket:            "ledger-reports",
		AccessKey:         "test-key",
		SecretKey:         "test-secret",
		Endpoint:          "http://localhost:9000",
		UsePathStyle:      true,
		PresignExpiration: 15 * time.Minute,
	}
}

func TestNewS3ObjectStorage_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.StorageConfig)
		wantErr string
	}{
		{"missing bucket", func(c *config.StorageConfig) { c.Bucket = "" }, "bucket is required"},
		{"missing access key", func(c *config.StorageConfig) { c.AccessKey = "" }, "access key is required"},
		{"missing secret key", func(c *config.StorageConfig) { c.SecretKey = "" }, "secret key is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testStorageConfig()
			tt.mutate(cfg)
			_, err := NewS3ObjectStorage(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	t.Run("nil config", func(t *testing.T) {
		_, err := NewS3ObjectStorage(nil)
		assert.Error(t, err)
	})
}

func TestNewS3ObjectStorage_Options(t *testing.T) {
	cfg := testStorageConfig()
	cfg.PresignExpiration = 0

	s, err := NewS3ObjectStorage(cfg)
	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, s.presignExpiration)
	assert.Equal(t, "ledger-reports", s.Bucket())

	s, err = NewS3ObjectStorage(cfg, WithPresignExpiration(time.Hour), WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)
	assert.Equal(t, time.Hour, s.presignExpiration)
}

func TestNormalizeEndpoint(t *testing.T) {
	got, err := normalizeEndpoint("", false)
	require.NoError(t, err)
	assert.Equal(t, defaultEndpoint, got)

	got, err = normalizeEndpoint("s3.example.com", true)
	require.NoError(t, err)
	assert.Equal(t, "https://s3.example.com", got)

	got, err = normalizeEndpoint("minio:9000", false)
	require.NoError(t, err)
	assert.Equal(t, "http://minio:9000", got)
}

func TestS3ObjectStorage_GenerateDownloadURL(t *testing.T) {
	s, err := NewS3ObjectStorage(testStorageConfig())
	require.NoError(t, err)
	ctx := context.Background()

	url, expiresAt, err := s.GenerateDownloadURL(ctx, "reports/summary.pdf", time.Hour)
	require.NoError(t, err)
	assert.Contains(t, url, "localhost:9000")
	assert.Contains(t, url, "ledger-reports/reports/summary.pdf")
	assert.True(t, expiresAt.After(time.Now().Add(59*time.Minute)))

	_, _, err = s.GenerateDownloadURL(ctx, "", time.Hour)
	assert.ErrorIs(t, err, errEmptyKey)
}

func TestS3ObjectStorage_EmptyKeys(t *testing.T) {
	s, err := NewS3ObjectStorage(testStorageConfig())
	require.NoError(t, err)
	ctx := context.Background()

	assert.ErrorIs(t, s.Upload(ctx, "", []byte("x"), "text/plain"), errEmptyKey)
	assert.ErrorIs(t, s.DeleteObject(ctx, ""), errEmptyKey)
}

// Runs against a live S3-compatible endpoint, e.g. a local MinIO.
func TestIntegration_UploadAndLink(t *testing.T) {
	endpoint := os.Getenv("STORAGE_TEST_ENDPOINT")
	if endpoint == "" {
		t.Skip("STORAGE_TEST_ENDPOINT not set")
	}
	cfg := testStorageConfig()
	cfg.Endpoint = endpoint
	cfg.AccessKey = os.Getenv("STORAGE_TEST_ACCESS_KEY")
	cfg.SecretKey = os.Getenv("STORAGE_TEST_SECRET_KEY")

	s, err := NewS3ObjectStorage(cfg)
	require.NoError(t, err)
	ctx := context.Background()
	require.NoError(t, s.EnsureBucket(ctx))

	key := "it/" + time.Now().Format("20060102150405") + ".pdf"
	require.NoError(t, s.Upload(ctx, key, []byte("%PDF-1.3"), "application/pdf"))
	t.Cleanup(func() { _ = s.DeleteObject(ctx, key) })

	url, _, err := s.GenerateDownloadURL(ctx, key, time.Minute)
	require.NoError(t, err)
	assert.NotEmpty(t, url)
}
