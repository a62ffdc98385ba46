package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/BusinessHub-api/internal/domain/entity"
	"github.com/jhoicas/BusinessHub-api/internal/domain/repository"
	"github.com/jhoicas/BusinessHub-api/pkg/texto"
)

var _ repository.PessoaRepository = (*PessoaRepo)(nil)

const pessoaCols = `id, empresa_id, tipo, nome, razao_social, documento, email, telefone, endereco,
	cidade, uf, cep, categoria_id, observacoes, ativo, created_at, updated_at`

// PessoaRepo persiste clientes e fornecedores na tabela pessoas.
type PessoaRepo struct {
	q Querier
}

// NewPessoaRepository constrói o adaptador. Aceita pool ou tx.
func NewPessoaRepository(q Querier) *PessoaRepo {
	return &PessoaRepo{q: q}
}

func scanPessoa(row pgx.Row) (*entity.Pessoa, error) {
	var p entity.Pessoa
	err := row.Scan(&p.ID, &p.EmpresaID, &p.Tipo, &p.Nome, &p.RazaoSocial, &p.Documento, &p.Email, &p.Telefone,
		&p.Endereco, &p.Cidade, &p.UF, &p.CEP, &p.CategoriaID, &p.Observacoes, &p.Ativo, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// buscaPessoa chave de busca: nome e razão social normalizados.
func buscaPessoa(p *entity.Pessoa) string {
	return texto.Normalizar(p.Nome + " " + p.RazaoSocial)
}

// Create persiste a pessoa. Documento ou email repetido na empresa devolve ErrDuplicate.
func (r *PessoaRepo) Create(ctx context.Context, p *entity.Pessoa) error {
	query := `
		INSERT INTO pessoas (id, empresa_id, tipo, nome, razao_social, busca, documento, email, telefone,
			endereco, cidade, uf, cep, categoria_id, observacoes, ativo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.EmpresaID, p.Tipo, p.Nome, p.RazaoSocial, buscaPessoa(p), p.Documento, p.Email, p.Telefone,
		p.Endereco, p.Cidade, p.UF, p.CEP, p.CategoriaID, p.Observacoes, p.Ativo, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return writeErr("insert pessoa", err)
	}
	return nil
}

// GetByID obtém uma pessoa por ID, de qualquer tipo.
func (r *PessoaRepo) GetByID(ctx context.Context, id string) (*entity.Pessoa, error) {
	p, err := queryOne(ctx, r.q, `SELECT `+pessoaCols+` FROM pessoas WHERE id = $1`, scanPessoa, id)
	if err != nil {
		return nil, fmt.Errorf("get pessoa: %w", err)
	}
	return p, nil
}

// GetByDocumento busca pelo documento dentro da empresa.
func (r *PessoaRepo) GetByDocumento(ctx context.Context, empresaID, documento string) (*entity.Pessoa, error) {
	p, err := queryOne(ctx, r.q, `SELECT `+pessoaCols+` FROM pessoas WHERE empresa_id = $1 AND documento = $2`,
		scanPessoa, empresaID, documento)
	if err != nil {
		return nil, fmt.Errorf("get pessoa by documento: %w", err)
	}
	return p, nil
}

// GetByEmail busca pelo email dentro da empresa.
func (r *PessoaRepo) GetByEmail(ctx context.Context, empresaID, email string) (*entity.Pessoa, error) {
	p, err := queryOne(ctx, r.q, `SELECT `+pessoaCols+` FROM pessoas WHERE empresa_id = $1 AND email = $2`,
		scanPessoa, empresaID, email)
	if err != nil {
		return nil, fmt.Errorf("get pessoa by email: %w", err)
	}
	return p, nil
}

// List lista pessoas do tipo; a busca casa nome, razão social ou documento.
func (r *PessoaRepo) List(ctx context.Context, tipo string, f repository.ListFilter) ([]*entity.Pessoa, int, error) {
	w := &where{}
	busca := f.Busca
	f.Busca = ""
	w.common(f, "", "")
	w.add("tipo = %s", tipo)
	if digitos := texto.SoDigitos(busca); digitos != "" {
		w.add("(busca LIKE '%%' || %s || '%%' OR documento LIKE %s || '%%')", busca, digitos)
	} else if busca != "" {
		w.add("busca LIKE '%%' || %s || '%%'", busca)
	}
	list, total, err := listPage(ctx, r.q, pessoaCols, "FROM pessoas", w, "nome, id", f, scanPessoa)
	if err != nil {
		return nil, 0, fmt.Errorf("list pessoas: %w", err)
	}
	return list, total, nil
}

// Update atualiza a pessoa. O tipo não muda.
func (r *PessoaRepo) Update(ctx context.Context, p *entity.Pessoa) error {
	query := `
		UPDATE pessoas
		SET nome = $2, razao_social = $3, busca = $4, documento = $5, email = $6, telefone = $7, endereco = $8,
			cidade = $9, uf = $10, cep = $11, categoria_id = $12, observacoes = $13, ativo = $14, updated_at = $15
		WHERE id = $1`
	return execOne(ctx, r.q, "update pessoa", query,
		p.ID, p.Nome, p.RazaoSocial, buscaPessoa(p), p.Documento, p.Email, p.Telefone, p.Endereco,
		p.Cidade, p.UF, p.CEP, p.CategoriaID, p.Observacoes, p.Ativo, p.UpdatedAt,
	)
}

// Delete remove a pessoa; vinculada a contas, histórias ou tickets a FK impede.
func (r *PessoaRepo) Delete(ctx context.Context, id string) error {
	return execOne(ctx, r.q, "delete pessoa", `DELETE FROM pessoas WHERE id = $1`, id)
}
