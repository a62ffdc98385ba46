package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/BusinessHub-api/internal/domain/entity"
	"github.com/jhoicas/BusinessHub-api/internal/domain/repository"
	"github.com/jhoicas/BusinessHub-api/pkg/texto"
)

var _ repository.EmpresaRepository = (*EmpresaRepo)(nil)

const empresaCols = `id, nome, cnpj, email, telefone, endereco, ativo, created_at, updated_at`

// EmpresaRepo implementação do porto EmpresaRepository sobre PostgreSQL.
type EmpresaRepo struct {
	q Querier
}

// NewEmpresaRepository constrói o adaptador. Aceita pool ou tx.
func NewEmpresaRepository(q Querier) *EmpresaRepo {
	return &EmpresaRepo{q: q}
}

func scanEmpresa(row pgx.Row) (*entity.Empresa, error) {
	var e entity.Empresa
	err := row.Scan(&e.ID, &e.Nome, &e.CNPJ, &e.Email, &e.Telefone, &e.Endereco, &e.Ativo, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Create persiste uma nova empresa. CNPJ repetido devolve ErrDuplicate.
func (r *EmpresaRepo) Create(ctx context.Context, e *entity.Empresa) error {
	query := `
		INSERT INTO empresas (id, nome, busca, cnpj, email, telefone, endereco, ativo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.Nome, texto.Normalizar(e.Nome), e.CNPJ, e.Email, e.Telefone, e.Endereco, e.Ativo,
		e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return writeErr("insert empresa", err)
	}
	return nil
}

// GetByID obtém uma empresa por ID.
func (r *EmpresaRepo) GetByID(ctx context.Context, id string) (*entity.Empresa, error) {
	e, err := queryOne(ctx, r.q, `SELECT `+empresaCols+` FROM empresas WHERE id = $1`, scanEmpresa, id)
	if err != nil {
		return nil, fmt.Errorf("get empresa: %w", err)
	}
	return e, nil
}

// GetByCNPJ obtém uma empresa pelo CNPJ (apenas dígitos).
func (r *EmpresaRepo) GetByCNPJ(ctx context.Context, cnpj string) (*entity.Empresa, error) {
	e, err := queryOne(ctx, r.q, `SELECT `+empresaCols+` FROM empresas WHERE cnpj = $1`, scanEmpresa, cnpj)
	if err != nil {
		return nil, fmt.Errorf("get empresa by cnpj: %w", err)
	}
	return e, nil
}

// Update atualiza os dados da empresa.
func (r *EmpresaRepo) Update(ctx context.Context, e *entity.Empresa) error {
	query := `
		UPDATE empresas
		SET nome = $2, busca = $3, cnpj = $4, email = $5, telefone = $6, endereco = $7, ativo = $8, updated_at = $9
		WHERE id = $1`
	return execOne(ctx, r.q, "update empresa", query,
		e.ID, e.Nome, texto.Normalizar(e.Nome), e.CNPJ, e.Email, e.Telefone, e.Endereco, e.Ativo, e.UpdatedAt,
	)
}

// List lista empresas por nome com paginação.
func (r *EmpresaRepo) List(ctx context.Context, limit, offset int) ([]*entity.Empresa, int, error) {
	list, total, err := listPage(ctx, r.q, empresaCols, "FROM empresas", &where{}, "nome, id",
		repository.ListFilter{Limit: limit, Offset: offset}, scanEmpresa)
	if err != nil {
		return nil, 0, fmt.Errorf("list empresas: %w", err)
	}
	return list, total, nil
}

// Delete remove a empresa. Com dados vinculados a FK impede e devolve ErrInvalidInput.
func (r *EmpresaRepo) Delete(ctx context.Context, id string) error {
	return execOne(ctx, r.q, "delete empresa", `DELETE FROM empresas WHERE id = $1`, id)
}
