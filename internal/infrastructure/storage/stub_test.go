package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStubObjectStorage_Upload(t *testing.T) {
	s := NewStubObjectStorage()
	ctx := context.Background()

	data := []byte("%PDF-1.3")
	require.NoError(t, s.Upload(ctx, "reports/a.pdf", data, "application/pdf"))
	data[0] = 'X'

	stored, ok := s.Object("reports/a.pdf")
	require.True(t, ok)
	assert.Equal(t, "%PDF-1.3", string(stored))

	assert.ErrorIs(t, s.Upload(ctx, "", data, "application/pdf"), errEmptyKey)
}

func TestStubObjectStorage_GenerateDownloadURL(t *testing.T) {
	s := NewStubObjectStorage()
	ctx := context.Background()

	url, expiresAt, err := s.GenerateDownloadURL(ctx, "reports/a.pdf", time.Minute)
	require.NoError(t, err)
	assert.Contains(t, url, "https://storage.example.com/download/reports/a.pdf")
	assert.True(t, expiresAt.After(time.Now()))

	_, defaultExpiry, err := s.GenerateDownloadURL(ctx, "reports/a.pdf", 0)
	require.NoError(t, err)
	assert.True(t, defaultExpiry.After(time.Now().Add(10*time.Minute)))

	_, _, err = s.GenerateDownloadURL(ctx, "", time.Minute)
	assert.ErrorIs(t, err, errEmptyKey)
}
