package storage

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/BusinessHub-api/pkg/config"
	"github.com/jhoicas/BusinessHub-api/pkg/logger"
)

func newTestStorage(t *testing.T) *S3Storage {
	t.Helper()
	s, err := NewS3Storage(context.Background(), config.StorageConfig{
		Endpoint:        "http://localhost:9000",
		Region:          "us-east-1",
		Bucket:          "anexos",
		AccessKeyID:     "minio",
		SecretAccessKey: "minio123",
		UsePathStyle:    true,
		PresignExpiry:   5 * time.Minute,
	}, logger.Nop())
	require.NoError(t, err)
	return s
}

func TestNewS3Storage_ExigeBucket(t *testing.T) {
	_, err := NewS3Storage(context.Background(), config.StorageConfig{}, nil)
	assert.Error(t, err)
}

func TestPresignGet(t *testing.T) {
	s := newTestStorage(t)
	before := time.Now()

	raw, expira, err := s.PresignGet(context.Background(), "tickets/emp/tk/1-relatorio.pdf", "relatório.pdf")
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "localhost:9000", u.Host)
	assert.True(t, strings.HasPrefix(u.Path, "/anexos/tickets/emp/tk/"), "path style: %s", u.Path)
	q := u.Query()
	assert.Equal(t, "300", q.Get("X-Amz-Expires"))
	assert.NotEmpty(t, q.Get("X-Amz-Signature"))
	assert.Contains(t, q.Get("response-content-disposition"), "attachment")
	assert.WithinDuration(t, before.Add(5*time.Minute), expira, 5*time.Second)
}

func TestKeyObrigatoria(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	assert.Error(t, s.Put(ctx, "", strings.NewReader("x"), 1, "text/plain"))
	assert.Error(t, s.Delete(ctx, ""))
	_, _, err := s.PresignGet(ctx, "", "a.txt")
	assert.Error(t, err)
}
