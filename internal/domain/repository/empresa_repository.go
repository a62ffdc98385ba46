package repository

import (
	"context"

	"github.com/jhoicas/BusinessHub-api/internal/domain/entity"
)

// EmpresaRepository define o porto de persistência para Empresa (DIP).
// A implementação vive em infrastructure.
type EmpresaRepository interface {
	Create(ctx context.Context, empresa *entity.Empresa) error
	GetByID(ctx context.Context, id string) (*entity.Empresa, error)
	GetByCNPJ(ctx context.Context, cnpj string) (*entity.Empresa, error)
	Update(ctx context.Context, empresa *entity.Empresa) error
	List(ctx context.Context, limit, offset int) ([]*entity.Empresa, int, error)
	Delete(ctx context.Context, id string) error
}
