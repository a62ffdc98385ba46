package repository

import (
	"context"

	"github.com/jhoicas/BusinessHub-api/internal/domain/entity"
)

// PessoaRepository persiste clientes e fornecedores (mesma tabela, filtrada por tipo).
type PessoaRepository interface {
	Create(ctx context.Context, pessoa *entity.Pessoa) error
	GetByID(ctx context.Context, id string) (*entity.Pessoa, error)
	GetByDocumento(ctx context.Context, empresaID, documento string) (*entity.Pessoa, error)
	GetByEmail(ctx context.Context, empresaID, email string) (*entity.Pessoa, error)
	List(ctx context.Context, tipo string, f ListFilter) ([]*entity.Pessoa, int, error)
	Update(ctx context.Context, pessoa *entity.Pessoa) error
	Delete(ctx context.Context, id string) error
}
