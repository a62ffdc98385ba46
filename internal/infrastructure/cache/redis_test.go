package cache

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/BusinessHub-api/pkg/config"
	"github.com/jhoicas/BusinessHub-api/pkg/logger"
)

type resumo struct {
	Total string `json:"total"`
	Qtd   int    `json:"qtd"`
}

func setup(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisCache(client, logger.Nop()), mr
}

func TestFetchJSON_CacheiaAteOTTL(t *testing.T) {
	c, mr := setup(t)
	ctx := context.Background()
	calls := 0
	loader := func(context.Context) (any, error) {
		calls++
		return resumo{Total: "10.00", Qtd: calls}, nil
	}

	var got resumo
	require.NoError(t, c.FetchJSON(ctx, "financeiro:resumo:a", time.Minute, &got, loader))
	assert.Equal(t, resumo{Total: "10.00", Qtd: 1}, got)

	require.NoError(t, c.FetchJSON(ctx, "financeiro:resumo:a", time.Minute, &got, loader))
	assert.Equal(t, 1, calls)
	assert.Equal(t, time.Minute, mr.TTL("financeiro:resumo:a"))

	mr.FastForward(2 * time.Minute)
	require.NoError(t, c.FetchJSON(ctx, "financeiro:resumo:a", time.Minute, &got, loader))
	assert.Equal(t, 2, calls)
	assert.Equal(t, 2, got.Qtd)
}

func TestInvalidate(t *testing.T) {
	c, mr := setup(t)
	ctx := context.Background()
	var got resumo
	loader := func(context.Context) (any, error) { return resumo{Qtd: 1}, nil }

	require.NoError(t, c.FetchJSON(ctx, "k1", time.Minute, &got, loader))
	require.NoError(t, c.FetchJSON(ctx, "k2", time.Minute, &got, loader))
	require.NoError(t, c.Invalidate(ctx, "k1"))

	assert.False(t, mr.Exists("k1"))
	assert.True(t, mr.Exists("k2"))
}

func TestFetchJSON_ErroDoLoaderNaoGrava(t *testing.T) {
	c, mr := setup(t)
	boom := errors.New("boom")

	var got resumo
	err := c.FetchJSON(context.Background(), "k", time.Minute, &got, func(context.Context) (any, error) { return nil, boom })
	assert.ErrorIs(t, err, boom)
	assert.False(t, mr.Exists("k"))
}

func TestFetchJSON_RedisForaDoArUsaLoader(t *testing.T) {
	c, mr := setup(t)
	mr.Close()

	var got resumo
	err := c.FetchJSON(context.Background(), "k", time.Minute, &got, func(context.Context) (any, error) {
		return resumo{Qtd: 7}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 7, got.Qtd)
}

func TestNilCachePassaDireto(t *testing.T) {
	var c *RedisCache
	var got resumo
	err := c.FetchJSON(context.Background(), "k", time.Minute, &got, func(context.Context) (any, error) {
		return resumo{Total: "1"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "1", got.Total)
	assert.NoError(t, c.Invalidate(context.Background(), "k"))
	assert.NoError(t, c.Close())
}

func TestNew(t *testing.T) {
	c, err := New(context.Background(), config.RedisConfig{}, logger.Nop())
	require.NoError(t, err)
	assert.Nil(t, c)

	mr := miniredis.RunT(t)
	c, err = New(context.Background(), config.RedisConfig{Addr: mr.Addr()}, logger.Nop())
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.NoError(t, c.Close())
}

func TestNew_LogComUmComponent(t *testing.T) {
	mr := miniredis.RunT(t)
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "debug", Output: &buf})

	c, err := New(context.Background(), config.RedisConfig{Addr: mr.Addr()}, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	require.NoError(t, mr.Set("resumo:x", "{quebrado"))
	var got resumo
	err = c.FetchJSON(context.Background(), "resumo:x", time.Minute, &got, func(context.Context) (any, error) {
		return resumo{Total: "1.00"}, nil
	})
	require.NoError(t, err)

	line := buf.String()
	assert.Contains(t, line, "valor em cache ilegível")
	assert.Equal(t, 1, strings.Count(line, `"component"`), line)
	assert.Contains(t, line, `"component":"cache"`)
}
