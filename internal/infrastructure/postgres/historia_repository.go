package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/BusinessHub-api/internal/domain/entity"
	"github.com/jhoicas/BusinessHub-api/internal/domain/repository"
	"github.com/jhoicas/BusinessHub-api/pkg/texto"
)

var _ repository.HistoriaRepository = (*HistoriaRepo)(nil)

const historiaCols = `id, empresa_id, cliente_id, titulo, descricao, status_id, tipo_id, responsavel_id,
	data_inicio, data_prevista, data_conclusao, ordem, created_at, updated_at`

// HistoriaRepo persiste histórias e os vínculos com produtos.
type HistoriaRepo struct {
	q Querier
}

// NewHistoriaRepository constrói o adaptador. Aceita pool ou tx.
func NewHistoriaRepository(q Querier) *HistoriaRepo {
	return &HistoriaRepo{q: q}
}

func scanHistoria(row pgx.Row) (*entity.Historia, error) {
	var h entity.Historia
	err := row.Scan(&h.ID, &h.EmpresaID, &h.ClienteID, &h.Titulo, &h.Descricao, &h.StatusID, &h.TipoID,
		&h.ResponsavelID, &h.DataInicio, &h.DataPrevista, &h.DataConclusao, &h.Ordem, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// Create grava a história e seus produtos numa transação.
func (r *HistoriaRepo) Create(ctx context.Context, h *entity.Historia) error {
	return pgx.BeginFunc(ctx, r.q, func(tx pgx.Tx) error {
		query := `
			INSERT INTO historias (id, empresa_id, cliente_id, titulo, busca, descricao, status_id, tipo_id,
				responsavel_id, data_inicio, data_prevista, data_conclusao, ordem, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
		_, err := tx.Exec(ctx, query,
			h.ID, h.EmpresaID, h.ClienteID, h.Titulo, texto.Normalizar(h.Titulo), h.Descricao, h.StatusID, h.TipoID,
			h.ResponsavelID, h.DataInicio, h.DataPrevista, h.DataConclusao, h.Ordem, h.CreatedAt, h.UpdatedAt,
		)
		if err != nil {
			return writeErr("insert historia", err)
		}
		return insertHistoriaProdutos(ctx, tx, h)
	})
}

func insertHistoriaProdutos(ctx context.Context, tx pgx.Tx, h *entity.Historia) error {
	for _, hp := range h.Produtos {
		_, err := tx.Exec(ctx,
			`INSERT INTO historia_produtos (historia_id, produto_id, produto_modulo_id) VALUES ($1, $2, $3)`,
			h.ID, hp.ProdutoID, hp.ProdutoModuloID)
		if err != nil {
			return writeErr("insert historia_produto", err)
		}
	}
	return nil
}

// GetByID carrega a história com seus produtos.
func (r *HistoriaRepo) GetByID(ctx context.Context, id string) (*entity.Historia, error) {
	h, err := queryOne(ctx, r.q, `SELECT `+historiaCols+` FROM historias WHERE id = $1`, scanHistoria, id)
	if err != nil {
		return nil, fmt.Errorf("get historia: %w", err)
	}
	if h == nil {
		return nil, nil
	}
	if err := r.loadProdutos(ctx, []*entity.Historia{h}); err != nil {
		return nil, err
	}
	return h, nil
}

// loadProdutos preenche os produtos de várias histórias com uma única consulta.
func (r *HistoriaRepo) loadProdutos(ctx context.Context, list []*entity.Historia) error {
	if len(list) == 0 {
		return nil
	}
	ids := make([]string, 0, len(list))
	byID := make(map[string]*entity.Historia, len(list))
	for _, h := range list {
		ids = append(ids, h.ID)
		byID[h.ID] = h
		h.Produtos = []entity.HistoriaProduto{}
	}
	rows, err := r.q.Query(ctx,
		`SELECT historia_id, produto_id, produto_modulo_id FROM historia_produtos WHERE historia_id = ANY($1)`, ids)
	if err != nil {
		return fmt.Errorf("list historia_produtos: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var hp entity.HistoriaProduto
		if err := rows.Scan(&hp.HistoriaID, &hp.ProdutoID, &hp.ProdutoModuloID); err != nil {
			return fmt.Errorf("scan historia_produto: %w", err)
		}
		h := byID[hp.HistoriaID]
		h.Produtos = append(h.Produtos, hp)
	}
	return rows.Err()
}

// List lista histórias por coluna e ordem.
func (r *HistoriaRepo) List(ctx context.Context, f repository.HistoriaFilter) ([]*entity.Historia, int, error) {
	w := &where{}
	w.common(f.ListFilter, "", "busca")
	if f.StatusID != "" {
		w.add("status_id = %s", f.StatusID)
	}
	if f.ClienteID != "" {
		w.add("cliente_id = %s", f.ClienteID)
	}
	list, total, err := listPage(ctx, r.q, historiaCols, "FROM historias", w, "status_id, ordem, created_at", f.ListFilter, scanHistoria)
	if err != nil {
		return nil, 0, fmt.Errorf("list historias: %w", err)
	}
	if err := r.loadProdutos(ctx, list); err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// ListByStatus devolve a coluna do kanban ordenada por ordem.
func (r *HistoriaRepo) ListByStatus(ctx context.Context, empresaID, statusID string) ([]*entity.Historia, error) {
	list, err := queryAll(ctx, r.q,
		`SELECT `+historiaCols+` FROM historias WHERE empresa_id = $1 AND status_id = $2 ORDER BY ordem, created_at`,
		scanHistoria, empresaID, statusID)
	if err != nil {
		return nil, fmt.Errorf("list historias by status: %w", err)
	}
	if err := r.loadProdutos(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// Update atualiza a história e substitui os vínculos com produtos.
func (r *HistoriaRepo) Update(ctx context.Context, h *entity.Historia) error {
	return pgx.BeginFunc(ctx, r.q, func(tx pgx.Tx) error {
		query := `
			UPDATE historias
			SET cliente_id = $2, titulo = $3, busca = $4, descricao = $5, status_id = $6, tipo_id = $7,
				responsavel_id = $8, data_inicio = $9, data_prevista = $10, data_conclusao = $11, ordem = $12,
				updated_at = $13
			WHERE id = $1`
		err := execOne(ctx, tx, "update historia", query,
			h.ID, h.ClienteID, h.Titulo, texto.Normalizar(h.Titulo), h.Descricao, h.StatusID, h.TipoID,
			h.ResponsavelID, h.DataInicio, h.DataPrevista, h.DataConclusao, h.Ordem, h.UpdatedAt,
		)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM historia_produtos WHERE historia_id = $1`, h.ID); err != nil {
			return fmt.Errorf("delete historia_produtos: %w", err)
		}
		return insertHistoriaProdutos(ctx, tx, h)
	})
}

// Mover troca coluna e posição sem tocar nos demais campos.
func (r *HistoriaRepo) Mover(ctx context.Context, id, statusID string, ordem int) error {
	return execOne(ctx, r.q, "mover historia",
		`UPDATE historias SET status_id = $2, ordem = $3, updated_at = NOW() WHERE id = $1`, id, statusID, ordem)
}

// Delete remove a história e, em cascata, os vínculos.
func (r *HistoriaRepo) Delete(ctx context.Context, id string) error {
	return execOne(ctx, r.q, "delete historia", `DELETE FROM historias WHERE id = $1`, id)
}
