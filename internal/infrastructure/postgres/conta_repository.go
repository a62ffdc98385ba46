package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/BusinessHub-api/internal/domain/entity"
	"github.com/jhoicas/BusinessHub-api/internal/domain/repository"
	"github.com/jhoicas/BusinessHub-api/pkg/texto"
)

var _ repository.ContaRepository = (*ContaRepo)(nil)

const (
	contaCols = `id, empresa_id, tipo, pessoa_id, afiliado_id, descricao, valor, data_vencimento, data_pagamento,
	status, forma_pagamento_id, numero_parcelas, intervalo_dias, observacoes, created_at, updated_at`
	parcelaCols   = `id, conta_id, numero, valor, data_vencimento, data_pagamento, status, observacoes, created_at, updated_at`
	contaItemCols = `id, conta_id, descricao, produto_id, produto_modulo_id, quantidade, valor_unitario, valor_total`
)

// ContaRepo persiste contas a pagar/receber, parcelas e itens.
// Use com a tx do TxRunner quando a escrita envolver mais de uma tabela.
type ContaRepo struct {
	q Querier
}

// NewContaRepository constrói o adaptador. Aceita pool ou tx.
func NewContaRepository(q Querier) *ContaRepo {
	return &ContaRepo{q: q}
}

func scanConta(row pgx.Row) (*entity.Conta, error) {
	var c entity.Conta
	err := row.Scan(&c.ID, &c.EmpresaID, &c.Tipo, &c.PessoaID, &c.AfiliadoID, &c.Descricao, &c.Valor,
		&c.DataVencimento, &c.DataPagamento, &c.Status, &c.FormaPagamentoID, &c.NumeroParcelas, &c.IntervaloDias,
		&c.Observacoes, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func scanParcela(row pgx.Row) (*entity.Parcela, error) {
	var p entity.Parcela
	err := row.Scan(&p.ID, &p.ContaID, &p.Numero, &p.Valor, &p.DataVencimento, &p.DataPagamento, &p.Status,
		&p.Observacoes, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func scanContaItem(row pgx.Row) (*entity.ContaItem, error) {
	var it entity.ContaItem
	err := row.Scan(&it.ID, &it.ContaID, &it.Descricao, &it.ProdutoID, &it.ProdutoModuloID, &it.Quantidade,
		&it.ValorUnitario, &it.ValorTotal)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

// Create grava cabeçalho, parcelas e itens. Dentro da tx do runner vira um savepoint.
func (r *ContaRepo) Create(ctx context.Context, c *entity.Conta) error {
	return pgx.BeginFunc(ctx, r.q, func(tx pgx.Tx) error {
		query := `
			INSERT INTO contas (id, empresa_id, tipo, pessoa_id, afiliado_id, descricao, busca, valor, data_vencimento,
				data_pagamento, status, forma_pagamento_id, numero_parcelas, intervalo_dias, observacoes,
				created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
		_, err := tx.Exec(ctx, query,
			c.ID, c.EmpresaID, c.Tipo, c.PessoaID, c.AfiliadoID, c.Descricao, texto.Normalizar(c.Descricao), c.Valor,
			c.DataVencimento, c.DataPagamento, c.Status, c.FormaPagamentoID, c.NumeroParcelas, c.IntervaloDias,
			c.Observacoes, c.CreatedAt, c.UpdatedAt,
		)
		if err != nil {
			return writeErr("insert conta", err)
		}
		for i := range c.Parcelas {
			p := &c.Parcelas[i]
			_, err := tx.Exec(ctx, `
				INSERT INTO parcelas (id, conta_id, numero, valor, data_vencimento, data_pagamento, status, observacoes,
					created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
				p.ID, c.ID, p.Numero, p.Valor, p.DataVencimento, p.DataPagamento, p.Status, p.Observacoes,
				p.CreatedAt, p.UpdatedAt,
			)
			if err != nil {
				return writeErr("insert parcela", err)
			}
		}
		return insertItens(ctx, tx, c.ID, c.Itens)
	})
}

func insertItens(ctx context.Context, tx pgx.Tx, contaID string, itens []entity.ContaItem) error {
	for _, it := range itens {
		_, err := tx.Exec(ctx, `
			INSERT INTO conta_itens (id, conta_id, descricao, produto_id, produto_modulo_id, quantidade, valor_unitario,
				valor_total)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			it.ID, contaID, it.Descricao, it.ProdutoID, it.ProdutoModuloID, it.Quantidade, it.ValorUnitario,
			it.ValorTotal,
		)
		if err != nil {
			return writeErr("insert conta_item", err)
		}
	}
	return nil
}

// GetByID carrega a conta com parcelas (por numero) e itens.
func (r *ContaRepo) GetByID(ctx context.Context, id string) (*entity.Conta, error) {
	c, err := queryOne(ctx, r.q, `SELECT `+contaCols+` FROM contas WHERE id = $1`, scanConta, id)
	if err != nil {
		return nil, fmt.Errorf("get conta: %w", err)
	}
	if c == nil {
		return nil, nil
	}
	if err := r.loadDetalhes(ctx, []*entity.Conta{c}); err != nil {
		return nil, err
	}
	return c, nil
}

// loadDetalhes preenche parcelas e itens de várias contas, uma consulta para cada.
func (r *ContaRepo) loadDetalhes(ctx context.Context, list []*entity.Conta) error {
	if len(list) == 0 {
		return nil
	}
	ids := make([]string, 0, len(list))
	byID := make(map[string]*entity.Conta, len(list))
	for _, c := range list {
		ids = append(ids, c.ID)
		byID[c.ID] = c
	}
	parcelas, err := queryAll(ctx, r.q,
		`SELECT `+parcelaCols+` FROM parcelas WHERE conta_id = ANY($1) ORDER BY conta_id, numero`, scanParcela, ids)
	if err != nil {
		return fmt.Errorf("list parcelas: %w", err)
	}
	for _, p := range parcelas {
		c := byID[p.ContaID]
		c.Parcelas = append(c.Parcelas, *p)
	}
	itens, err := queryAll(ctx, r.q,
		`SELECT `+contaItemCols+` FROM conta_itens WHERE conta_id = ANY($1) ORDER BY conta_id, id`, scanContaItem, ids)
	if err != nil {
		return fmt.Errorf("list conta_itens: %w", err)
	}
	for _, it := range itens {
		c := byID[it.ContaID]
		c.Itens = append(c.Itens, *it)
	}
	return nil
}

// List lista contas do tipo por vencimento.
func (r *ContaRepo) List(ctx context.Context, f repository.ContaFilter) ([]*entity.Conta, int, error) {
	w := &where{}
	f.Ativo = nil
	w.common(f.ListFilter, "", "busca")
	w.add("tipo = %s", f.Tipo)
	if f.Status != "" {
		w.add("status = %s", f.Status)
	}
	if f.PessoaID != "" {
		w.add("pessoa_id = %s", f.PessoaID)
	}
	if f.AfiliadoID != "" {
		w.add("afiliado_id = %s", f.AfiliadoID)
	}
	if f.VencimentoDe != nil {
		w.add("data_vencimento >= %s::date", *f.VencimentoDe)
	}
	if f.VencimentoAte != nil {
		w.add("data_vencimento <= %s::date", *f.VencimentoAte)
	}
	list, total, err := listPage(ctx, r.q, contaCols, "FROM contas", w, "data_vencimento, created_at, id", f.ListFilter, scanConta)
	if err != nil {
		return nil, 0, fmt.Errorf("list contas: %w", err)
	}
	if err := r.loadDetalhes(ctx, list); err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// Update grava só o cabeçalho. numero_parcelas e intervalo_dias não mudam depois de criados.
func (r *ContaRepo) Update(ctx context.Context, c *entity.Conta) error {
	query := `
		UPDATE contas
		SET pessoa_id = $2, descricao = $3, busca = $4, valor = $5, data_vencimento = $6, data_pagamento = $7,
			status = $8, forma_pagamento_id = $9, observacoes = $10, updated_at = $11
		WHERE id = $1`
	return execOne(ctx, r.q, "update conta", query,
		c.ID, c.PessoaID, c.Descricao, texto.Normalizar(c.Descricao), c.Valor, c.DataVencimento, c.DataPagamento,
		c.Status, c.FormaPagamentoID, c.Observacoes, c.UpdatedAt,
	)
}

// Delete remove a conta com parcelas e itens (cascata).
func (r *ContaRepo) Delete(ctx context.Context, id string) error {
	return execOne(ctx, r.q, "delete conta", `DELETE FROM contas WHERE id = $1`, id)
}

func (r *ContaRepo) GetParcela(ctx context.Context, id string) (*entity.Parcela, error) {
	p, err := queryOne(ctx, r.q, `SELECT `+parcelaCols+` FROM parcelas WHERE id = $1`, scanParcela, id)
	if err != nil {
		return nil, fmt.Errorf("get parcela: %w", err)
	}
	return p, nil
}

// UpdateParcela grava uma parcela sem tocar na conta nem nas irmãs.
func (r *ContaRepo) UpdateParcela(ctx context.Context, p *entity.Parcela) error {
	query := `
		UPDATE parcelas
		SET valor = $2, data_vencimento = $3, data_pagamento = $4, status = $5, observacoes = $6, updated_at = $7
		WHERE id = $1`
	return execOne(ctx, r.q, "update parcela", query,
		p.ID, p.Valor, p.DataVencimento, p.DataPagamento, p.Status, p.Observacoes, p.UpdatedAt)
}

// ReplaceItens apaga os itens da conta e grava os novos.
func (r *ContaRepo) ReplaceItens(ctx context.Context, contaID string, itens []entity.ContaItem) error {
	return pgx.BeginFunc(ctx, r.q, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM conta_itens WHERE conta_id = $1`, contaID); err != nil {
			return fmt.Errorf("delete conta_itens: %w", err)
		}
		return insertItens(ctx, tx, contaID, itens)
	})
}

// resumoSQL soma parcelas por status. Conta sem parcelas persistidas entra pelo
// cabeçalho (a parcela implícita). Parcelas de contas canceladas ficam de fora.
const resumoSQL = `
	WITH linhas AS (
		SELECT p.valor, p.data_vencimento, p.status
		FROM parcelas p
		JOIN contas c ON c.id = p.conta_id
		WHERE c.empresa_id = $1 AND c.tipo = $2 AND c.status <> 'cancelado'
		UNION ALL
		SELECT c.valor, c.data_vencimento, c.status
		FROM contas c
		WHERE c.empresa_id = $1 AND c.tipo = $2
		  AND NOT EXISTS (SELECT 1 FROM parcelas p WHERE p.conta_id = c.id)
	)
	SELECT
		COALESCE(SUM(valor) FILTER (WHERE status = 'pendente'), 0),
		COUNT(*) FILTER (WHERE status = 'pendente'),
		COALESCE(SUM(valor) FILTER (WHERE status = 'pendente' AND data_vencimento < $3::date), 0),
		COUNT(*) FILTER (WHERE status = 'pendente' AND data_vencimento < $3::date),
		COALESCE(SUM(valor) FILTER (WHERE status = 'pago'), 0),
		COUNT(*) FILTER (WHERE status = 'pago')
	FROM linhas`

// Resumo totaliza pendente, vencido (pendente antes de hoje) e pago do tipo.
func (r *ContaRepo) Resumo(ctx context.Context, empresaID, tipo string, hoje time.Time) (*repository.ResumoTotais, error) {
	var t repository.ResumoTotais
	err := r.q.QueryRow(ctx, resumoSQL, empresaID, tipo, hoje).Scan(
		&t.Pendente, &t.QtdPendente, &t.Vencido, &t.QtdVencido, &t.Pago, &t.QtdPago,
	)
	if err != nil {
		return nil, fmt.Errorf("resumo contas: %w", err)
	}
	return &t, nil
}
