package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/BusinessHub-api/internal/domain/entity"
	"github.com/jhoicas/BusinessHub-api/internal/domain/repository"
	"github.com/jhoicas/BusinessHub-api/pkg/texto"
)

var _ repository.AfiliadoRepository = (*AfiliadoRepo)(nil)

const afiliadoCols = `id, empresa_id, nome, documento, email, telefone, percentual_comissao, ativo, created_at, updated_at`

// AfiliadoRepo persiste afiliados.
type AfiliadoRepo struct {
	q Querier
}

// NewAfiliadoRepository constrói o adaptador. Aceita pool ou tx.
func NewAfiliadoRepository(q Querier) *AfiliadoRepo {
	return &AfiliadoRepo{q: q}
}

func scanAfiliado(row pgx.Row) (*entity.Afiliado, error) {
	var a entity.Afiliado
	err := row.Scan(&a.ID, &a.EmpresaID, &a.Nome, &a.Documento, &a.Email, &a.Telefone, &a.PercentualComissao,
		&a.Ativo, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AfiliadoRepo) Create(ctx context.Context, a *entity.Afiliado) error {
	query := `
		INSERT INTO afiliados (id, empresa_id, nome, busca, documento, email, telefone, percentual_comissao, ativo,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		a.ID, a.EmpresaID, a.Nome, texto.Normalizar(a.Nome), a.Documento, a.Email, a.Telefone, a.PercentualComissao,
		a.Ativo, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return writeErr("insert afiliado", err)
	}
	return nil
}

func (r *AfiliadoRepo) GetByID(ctx context.Context, id string) (*entity.Afiliado, error) {
	a, err := queryOne(ctx, r.q, `SELECT `+afiliadoCols+` FROM afiliados WHERE id = $1`, scanAfiliado, id)
	if err != nil {
		return nil, fmt.Errorf("get afiliado: %w", err)
	}
	return a, nil
}

func (r *AfiliadoRepo) List(ctx context.Context, f repository.ListFilter) ([]*entity.Afiliado, int, error) {
	w := &where{}
	w.common(f, "", "busca")
	list, total, err := listPage(ctx, r.q, afiliadoCols, "FROM afiliados", w, "nome, id", f, scanAfiliado)
	if err != nil {
		return nil, 0, fmt.Errorf("list afiliados: %w", err)
	}
	return list, total, nil
}

func (r *AfiliadoRepo) Update(ctx context.Context, a *entity.Afiliado) error {
	query := `
		UPDATE afiliados
		SET nome = $2, busca = $3, documento = $4, email = $5, telefone = $6, percentual_comissao = $7, ativo = $8,
			updated_at = $9
		WHERE id = $1`
	return execOne(ctx, r.q, "update afiliado", query,
		a.ID, a.Nome, texto.Normalizar(a.Nome), a.Documento, a.Email, a.Telefone, a.PercentualComissao, a.Ativo,
		a.UpdatedAt,
	)
}

// Delete remove o afiliado; com comissões geradas a FK impede.
func (r *AfiliadoRepo) Delete(ctx context.Context, id string) error {
	return execOne(ctx, r.q, "delete afiliado", `DELETE FROM afiliados WHERE id = $1`, id)
}
