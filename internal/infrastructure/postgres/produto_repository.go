package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/BusinessHub-api/internal/domain/entity"
	"github.com/jhoicas/BusinessHub-api/internal/domain/repository"
	"github.com/jhoicas/BusinessHub-api/pkg/texto"
)

var _ repository.ProdutoRepository = (*ProdutoRepo)(nil)

const (
	produtoCols = `id, empresa_id, nome, descricao, valor, ativo, created_at, updated_at`
	moduloCols  = `id, produto_id, nome, descricao, valor, ativo, created_at, updated_at`
)

// ProdutoRepo persiste produtos e seus módulos.
type ProdutoRepo struct {
	q Querier
}

// NewProdutoRepository constrói o adaptador. Aceita pool ou tx.
func NewProdutoRepository(q Querier) *ProdutoRepo {
	return &ProdutoRepo{q: q}
}

func scanProduto(row pgx.Row) (*entity.Produto, error) {
	var p entity.Produto
	if err := row.Scan(&p.ID, &p.EmpresaID, &p.Nome, &p.Descricao, &p.Valor, &p.Ativo, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func scanModulo(row pgx.Row) (*entity.ProdutoModulo, error) {
	var m entity.ProdutoModulo
	if err := row.Scan(&m.ID, &m.ProdutoID, &m.Nome, &m.Descricao, &m.Valor, &m.Ativo, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}

// Create grava o produto e os módulos informados numa transação.
func (r *ProdutoRepo) Create(ctx context.Context, p *entity.Produto) error {
	return pgx.BeginFunc(ctx, r.q, func(tx pgx.Tx) error {
		query := `
			INSERT INTO produtos (id, empresa_id, nome, busca, descricao, valor, ativo, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
		_, err := tx.Exec(ctx, query,
			p.ID, p.EmpresaID, p.Nome, texto.Normalizar(p.Nome), p.Descricao, p.Valor, p.Ativo, p.CreatedAt, p.UpdatedAt)
		if err != nil {
			return writeErr("insert produto", err)
		}
		for i := range p.Modulos {
			if err := insertModulo(ctx, tx, &p.Modulos[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

// GetByID carrega o produto com os módulos ordenados por nome.
func (r *ProdutoRepo) GetByID(ctx context.Context, id string) (*entity.Produto, error) {
	p, err := queryOne(ctx, r.q, `SELECT `+produtoCols+` FROM produtos WHERE id = $1`, scanProduto, id)
	if err != nil {
		return nil, fmt.Errorf("get produto: %w", err)
	}
	if p == nil {
		return nil, nil
	}
	mods, err := queryAll(ctx, r.q, `SELECT `+moduloCols+` FROM produto_modulos WHERE produto_id = $1 ORDER BY nome, id`,
		scanModulo, id)
	if err != nil {
		return nil, fmt.Errorf("list modulos: %w", err)
	}
	p.Modulos = make([]entity.ProdutoModulo, 0, len(mods))
	for _, m := range mods {
		p.Modulos = append(p.Modulos, *m)
	}
	return p, nil
}

// List lista produtos sem os módulos.
func (r *ProdutoRepo) List(ctx context.Context, f repository.ListFilter) ([]*entity.Produto, int, error) {
	w := &where{}
	w.common(f, "", "busca")
	list, total, err := listPage(ctx, r.q, produtoCols, "FROM produtos", w, "nome, id", f, scanProduto)
	if err != nil {
		return nil, 0, fmt.Errorf("list produtos: %w", err)
	}
	return list, total, nil
}

// Update atualiza o cabeçalho do produto; módulos têm operações próprias.
func (r *ProdutoRepo) Update(ctx context.Context, p *entity.Produto) error {
	query := `
		UPDATE produtos SET nome = $2, busca = $3, descricao = $4, valor = $5, ativo = $6, updated_at = $7
		WHERE id = $1`
	return execOne(ctx, r.q, "update produto", query,
		p.ID, p.Nome, texto.Normalizar(p.Nome), p.Descricao, p.Valor, p.Ativo, p.UpdatedAt)
}

// Delete remove o produto e, em cascata, seus módulos.
func (r *ProdutoRepo) Delete(ctx context.Context, id string) error {
	return execOne(ctx, r.q, "delete produto", `DELETE FROM produtos WHERE id = $1`, id)
}

func (r *ProdutoRepo) CreateModulo(ctx context.Context, m *entity.ProdutoModulo) error {
	return insertModulo(ctx, r.q, m)
}

func (r *ProdutoRepo) GetModulo(ctx context.Context, id string) (*entity.ProdutoModulo, error) {
	m, err := queryOne(ctx, r.q, `SELECT `+moduloCols+` FROM produto_modulos WHERE id = $1`, scanModulo, id)
	if err != nil {
		return nil, fmt.Errorf("get modulo: %w", err)
	}
	return m, nil
}

func (r *ProdutoRepo) UpdateModulo(ctx context.Context, m *entity.ProdutoModulo) error {
	query := `UPDATE produto_modulos SET nome = $2, descricao = $3, valor = $4, ativo = $5, updated_at = $6 WHERE id = $1`
	return execOne(ctx, r.q, "update modulo", query, m.ID, m.Nome, m.Descricao, m.Valor, m.Ativo, m.UpdatedAt)
}

func (r *ProdutoRepo) DeleteModulo(ctx context.Context, id string) error {
	return execOne(ctx, r.q, "delete modulo", `DELETE FROM produto_modulos WHERE id = $1`, id)
}

func insertModulo(ctx context.Context, q Querier, m *entity.ProdutoModulo) error {
	query := `
		INSERT INTO produto_modulos (id, produto_id, nome, descricao, valor, ativo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := q.Exec(ctx, query, m.ID, m.ProdutoID, m.Nome, m.Descricao, m.Valor, m.Ativo, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return writeErr("insert modulo", err)
	}
	return nil
}
