package repository

import (
	"context"

	"github.com/jhoicas/BusinessHub-api/internal/domain/entity"
)

// LookupRepository serve categorias_fornecedor e formas_pagamento;
// cada instância é presa a uma das tabelas.
type LookupRepository interface {
	Create(ctx context.Context, l *entity.Lookup) error
	GetByID(ctx context.Context, id string) (*entity.Lookup, error)
	List(ctx context.Context, f ListFilter) ([]*entity.Lookup, int, error)
	Update(ctx context.Context, l *entity.Lookup) error
	Delete(ctx context.Context, id string) error
}

// HistoriaLookupRepository serve tanto historia_status quanto historia_tipos;
// cada instância é presa a uma das tabelas. List ordena por ordem, nome.
type HistoriaLookupRepository interface {
	Create(ctx context.Context, l *entity.HistoriaLookup) error
	GetByID(ctx context.Context, id string) (*entity.HistoriaLookup, error)
	List(ctx context.Context, f ListFilter) ([]*entity.HistoriaLookup, int, error)
	Update(ctx context.Context, l *entity.HistoriaLookup) error
	Delete(ctx context.Context, id string) error
}
