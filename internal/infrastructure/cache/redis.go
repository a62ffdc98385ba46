package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/BusinessHub-api/internal/application/ports"
	"github.com/jhoicas/BusinessHub-api/pkg/config"
	"github.com/jhoicas/BusinessHub-api/pkg/logger"
)

var _ ports.Cache = (*RedisCache)(nil)

// RedisCache cache de leituras em JSON com TTL por chave.
// Um *RedisCache nil (ou sem client) passa direto ao loader.
type RedisCache struct {
	client *redis.Client
	log    *logger.Logger
}

// New conecta ao Redis e valida com PING. Addr vazio devolve nil, nil (cache desligado).
func New(ctx context.Context, cfg config.RedisConfig, log *logger.Logger) (*RedisCache, error) {
	if !cfg.Enabled() {
		return nil, nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return NewRedisCache(client, log), nil
}

// NewRedisCache embrulha um client já criado.
func NewRedisCache(client *redis.Client, log *logger.Logger) *RedisCache {
	if log == nil {
		log = logger.Nop()
	}
	return &RedisCache{client: client, log: log.Component("cache")}
}

// FetchJSON lê key em dest; na falta, chama loader e grava o resultado por ttl.
// Falhas do Redis não derrubam a leitura: o loader responde e o erro vai para o log.
func (c *RedisCache) FetchJSON(ctx context.Context, key string, ttl time.Duration, dest any, loader func(context.Context) (any, error)) error {
	if loader == nil {
		return errors.New("cache: loader obrigatório")
	}
	if c == nil || c.client == nil {
		return load(ctx, loader, dest)
	}

	payload, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		if jsonErr := json.Unmarshal(payload, dest); jsonErr == nil {
			return nil
		}
		c.log.Warn().Str("key", key).Msg("valor em cache ilegível, recarregando")
	} else if !errors.Is(err, redis.Nil) {
		c.log.Warn().Err(err).Str("key", key).Msg("redis get falhou")
	}

	value, err := loader(ctx)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("redis set falhou")
	}
	return json.Unmarshal(raw, dest)
}

// Invalidate remove as chaves.
func (c *RedisCache) Invalidate(ctx context.Context, keys ...string) error {
	if c == nil || c.client == nil || len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.log.Warn().Err(err).Strs("keys", keys).Msg("redis del falhou")
		return err
	}
	return nil
}

// Close fecha a conexão.
func (c *RedisCache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// load passa o valor do loader por JSON, para dest ter o mesmo formato com ou sem cache.
func load(ctx context.Context, loader func(context.Context) (any, error), dest any) error {
	value, err := loader(ctx)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dest)
}
