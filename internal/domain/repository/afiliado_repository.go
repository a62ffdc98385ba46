package repository

import (
	"context"

	"github.com/jhoicas/BusinessHub-api/internal/domain/entity"
)

// AfiliadoRepository define o porto de persistência para Afiliado.
type AfiliadoRepository interface {
	Create(ctx context.Context, a *entity.Afiliado) error
	GetByID(ctx context.Context, id string) (*entity.Afiliado, error)
	List(ctx context.Context, f ListFilter) ([]*entity.Afiliado, int, error)
	Update(ctx context.Context, a *entity.Afiliado) error
	Delete(ctx context.Context, id string) error
}
