package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/BusinessHub-api/internal/domain/entity"
	"github.com/jhoicas/BusinessHub-api/internal/domain/repository"
	"github.com/jhoicas/BusinessHub-api/pkg/texto"
)

var (
	_ repository.LookupRepository         = (*LookupRepo)(nil)
	_ repository.HistoriaLookupRepository = (*HistoriaLookupRepo)(nil)
)

// LookupRepo serve categorias_fornecedor ou formas_pagamento, conforme a tabela escolhida.
type LookupRepo struct {
	q     Querier
	table string
}

// NewLookupRepository prende o adaptador a uma das tabelas auxiliares simples.
// Tabela desconhecida é erro de programação e gera panic.
func NewLookupRepository(q Querier, table string) *LookupRepo {
	switch table {
	case entity.LookupCategoriaFornecedor, entity.LookupFormaPagamento:
	default:
		panic(fmt.Sprintf("postgres: tabela de lookup desconhecida %q", table))
	}
	return &LookupRepo{q: q, table: table}
}

func scanLookup(row pgx.Row) (*entity.Lookup, error) {
	var l entity.Lookup
	if err := row.Scan(&l.ID, &l.EmpresaID, &l.Nome, &l.Ativo, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return nil, err
	}
	return &l, nil
}

const lookupCols = `id, empresa_id, nome, ativo, created_at, updated_at`

// Create persiste a linha. Nome repetido na empresa devolve ErrDuplicate.
func (r *LookupRepo) Create(ctx context.Context, l *entity.Lookup) error {
	query := `INSERT INTO ` + r.table + ` (id, empresa_id, nome, busca, ativo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query, l.ID, l.EmpresaID, l.Nome, texto.Normalizar(l.Nome), l.Ativo, l.CreatedAt, l.UpdatedAt)
	if err != nil {
		return writeErr("insert "+r.table, err)
	}
	return nil
}

// GetByID obtém a linha por ID.
func (r *LookupRepo) GetByID(ctx context.Context, id string) (*entity.Lookup, error) {
	l, err := queryOne(ctx, r.q, `SELECT `+lookupCols+` FROM `+r.table+` WHERE id = $1`, scanLookup, id)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", r.table, err)
	}
	return l, nil
}

// List lista por nome.
func (r *LookupRepo) List(ctx context.Context, f repository.ListFilter) ([]*entity.Lookup, int, error) {
	w := &where{}
	w.common(f, "", "busca")
	list, total, err := listPage(ctx, r.q, lookupCols, "FROM "+r.table, w, "nome, id", f, scanLookup)
	if err != nil {
		return nil, 0, fmt.Errorf("list %s: %w", r.table, err)
	}
	return list, total, nil
}

// Update atualiza nome e ativo.
func (r *LookupRepo) Update(ctx context.Context, l *entity.Lookup) error {
	query := `UPDATE ` + r.table + ` SET nome = $2, busca = $3, ativo = $4, updated_at = $5 WHERE id = $1`
	return execOne(ctx, r.q, "update "+r.table, query, l.ID, l.Nome, texto.Normalizar(l.Nome), l.Ativo, l.UpdatedAt)
}

// Delete remove a linha; em uso por pessoas ou contas a FK impede.
func (r *LookupRepo) Delete(ctx context.Context, id string) error {
	return execOne(ctx, r.q, "delete "+r.table, `DELETE FROM `+r.table+` WHERE id = $1`, id)
}

// HistoriaLookupRepo serve historia_status ou historia_tipos.
type HistoriaLookupRepo struct {
	q     Querier
	table string
}

// NewHistoriaLookupRepository prende o adaptador a historia_status ou historia_tipos.
func NewHistoriaLookupRepository(q Querier, table string) *HistoriaLookupRepo {
	switch table {
	case entity.LookupHistoriaStatus, entity.LookupHistoriaTipo:
	default:
		panic(fmt.Sprintf("postgres: tabela de lookup desconhecida %q", table))
	}
	return &HistoriaLookupRepo{q: q, table: table}
}

const historiaLookupCols = `id, empresa_id, nome, cor, ordem, ativo, created_at, updated_at`

func scanHistoriaLookup(row pgx.Row) (*entity.HistoriaLookup, error) {
	var l entity.HistoriaLookup
	if err := row.Scan(&l.ID, &l.EmpresaID, &l.Nome, &l.Cor, &l.Ordem, &l.Ativo, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *HistoriaLookupRepo) Create(ctx context.Context, l *entity.HistoriaLookup) error {
	query := `INSERT INTO ` + r.table + ` (id, empresa_id, nome, busca, cor, ordem, ativo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		l.ID, l.EmpresaID, l.Nome, texto.Normalizar(l.Nome), l.Cor, l.Ordem, l.Ativo, l.CreatedAt, l.UpdatedAt)
	if err != nil {
		return writeErr("insert "+r.table, err)
	}
	return nil
}

func (r *HistoriaLookupRepo) GetByID(ctx context.Context, id string) (*entity.HistoriaLookup, error) {
	l, err := queryOne(ctx, r.q, `SELECT `+historiaLookupCols+` FROM `+r.table+` WHERE id = $1`, scanHistoriaLookup, id)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", r.table, err)
	}
	return l, nil
}

// List ordena por ordem e nome, que é a ordem das colunas do kanban.
func (r *HistoriaLookupRepo) List(ctx context.Context, f repository.ListFilter) ([]*entity.HistoriaLookup, int, error) {
	w := &where{}
	w.common(f, "", "busca")
	list, total, err := listPage(ctx, r.q, historiaLookupCols, "FROM "+r.table, w, "ordem, nome, id", f, scanHistoriaLookup)
	if err != nil {
		return nil, 0, fmt.Errorf("list %s: %w", r.table, err)
	}
	return list, total, nil
}

func (r *HistoriaLookupRepo) Update(ctx context.Context, l *entity.HistoriaLookup) error {
	query := `UPDATE ` + r.table + ` SET nome = $2, busca = $3, cor = $4, ordem = $5, ativo = $6, updated_at = $7
		WHERE id = $1`
	return execOne(ctx, r.q, "update "+r.table, query,
		l.ID, l.Nome, texto.Normalizar(l.Nome), l.Cor, l.Ordem, l.Ativo, l.UpdatedAt)
}

func (r *HistoriaLookupRepo) Delete(ctx context.Context, id string) error {
	return execOne(ctx, r.q, "delete "+r.table, `DELETE FROM `+r.table+` WHERE id = $1`, id)
}
