package repository

import (
	"context"

	"github.com/jhoicas/BusinessHub-api/internal/domain/entity"
)

// ProdutoRepository define o porto de persistência para Produto e seus módulos.
type ProdutoRepository interface {
	Create(ctx context.Context, produto *entity.Produto) error
	// GetByID carrega o produto com os módulos.
	GetByID(ctx context.Context, id string) (*entity.Produto, error)
	List(ctx context.Context, f ListFilter) ([]*entity.Produto, int, error)
	Update(ctx context.Context, produto *entity.Produto) error
	Delete(ctx context.Context, id string) error

	CreateModulo(ctx context.Context, m *entity.ProdutoModulo) error
	GetModulo(ctx context.Context, id string) (*entity.ProdutoModulo, error)
	UpdateModulo(ctx context.Context, m *entity.ProdutoModulo) error
	DeleteModulo(ctx context.Context, id string) error
}
