package ports

import (
	"context"
	"time"
)

// Cache define o porto de saída do cache de leituras (Redis em produção).
// Implementações devem funcionar como passagem direta ao loader quando desligadas.
type Cache interface {
	// FetchJSON devolve o valor em cache em dest ou o produz via loader e o grava por ttl.
	FetchJSON(ctx context.Context, key string, ttl time.Duration, dest any, loader func(context.Context) (any, error)) error
	// Invalidate remove as chaves informadas.
	Invalidate(ctx context.Context, keys ...string) error
}
