package ports

import (
	"context"
	"io"
	"time"
)

// ObjectStorage define o porto de saída para arquivos (anexos de tickets).
// O adaptador S3 vive em infrastructure/storage.
type ObjectStorage interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	// PresignGet devolve uma URL temporária de download com o nome original do arquivo.
	PresignGet(ctx context.Context, key, filename string) (string, time.Time, error)
	Delete(ctx context.Context, key string) error
}
