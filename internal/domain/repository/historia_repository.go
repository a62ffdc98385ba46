package repository

import (
	"context"

	"github.com/jhoicas/BusinessHub-api/internal/domain/entity"
)

// HistoriaFilter filtros da listagem de histórias.
type HistoriaFilter struct {
	ListFilter
	StatusID  string
	ClienteID string
}

// HistoriaRepository define o porto de persistência para Historia.
// Create e Update gravam também os vínculos com produtos (substituindo os anteriores no Update).
type HistoriaRepository interface {
	Create(ctx context.Context, h *entity.Historia) error
	GetByID(ctx context.Context, id string) (*entity.Historia, error)
	List(ctx context.Context, f HistoriaFilter) ([]*entity.Historia, int, error)
	// ListByStatus devolve as histórias de uma coluna do kanban ordenadas por ordem.
	ListByStatus(ctx context.Context, empresaID, statusID string) ([]*entity.Historia, error)
	Update(ctx context.Context, h *entity.Historia) error
	Mover(ctx context.Context, id, statusID string, ordem int) error
	Delete(ctx context.Context, id string) error
}
