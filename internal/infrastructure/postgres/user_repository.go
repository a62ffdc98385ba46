package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/BusinessHub-api/internal/domain"
	"github.com/jhoicas/BusinessHub-api/internal/domain/entity"
	"github.com/jhoicas/BusinessHub-api/internal/domain/repository"
	"github.com/jhoicas/BusinessHub-api/pkg/texto"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userCols = `id, empresa_id, nome, email, password_hash, role, global_admin, ativo, created_at, updated_at`

// UserRepo implementação do porto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository constrói o adaptador de persistência de usuários.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.EmpresaID, &u.Nome, &u.Email, &u.PasswordHash, &u.Role, &u.GlobalAdmin, &u.Ativo,
		&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create persiste um novo usuário. Email repetido na empresa devolve ErrEmailAlreadyExists.
func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	query := `
		INSERT INTO usuarios (id, empresa_id, nome, busca, email, password_hash, role, global_admin, ativo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		u.ID, u.EmpresaID, u.Nome, texto.Normalizar(u.Nome+" "+u.Email), u.Email, u.PasswordHash, u.Role,
		u.GlobalAdmin, u.Ativo, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		if pgCode(err) == codeUniqueViolation {
			return domain.ErrEmailAlreadyExists
		}
		return writeErr("insert usuario", err)
	}
	return nil
}

// GetByID obtém um usuário por ID.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	u, err := queryOne(ctx, r.q, `SELECT `+userCols+` FROM usuarios WHERE id = $1`, scanUser, id)
	if err != nil {
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return u, nil
}

// GetByEmailAndEmpresa obtém um usuário por email dentro da empresa.
func (r *UserRepo) GetByEmailAndEmpresa(ctx context.Context, email, empresaID string) (*entity.User, error) {
	u, err := queryOne(ctx, r.q, `SELECT `+userCols+` FROM usuarios WHERE email = $1 AND empresa_id = $2`,
		scanUser, email, empresaID)
	if err != nil {
		return nil, fmt.Errorf("get usuario by email: %w", err)
	}
	return u, nil
}

// FindByEmail devolve os usuários com o email em qualquer empresa, mais antigos primeiro.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) ([]*entity.User, error) {
	list, err := queryAll(ctx, r.q, `SELECT `+userCols+` FROM usuarios WHERE email = $1 ORDER BY created_at, id`,
		scanUser, email)
	if err != nil {
		return nil, fmt.Errorf("find usuarios by email: %w", err)
	}
	return list, nil
}

// Update atualiza o usuário, sem tocar na senha.
func (r *UserRepo) Update(ctx context.Context, u *entity.User) error {
	query := `
		UPDATE usuarios
		SET nome = $2, busca = $3, email = $4, role = $5, global_admin = $6, ativo = $7, updated_at = $8
		WHERE id = $1`
	err := execOne(ctx, r.q, "update usuario", query,
		u.ID, u.Nome, texto.Normalizar(u.Nome+" "+u.Email), u.Email, u.Role, u.GlobalAdmin, u.Ativo, u.UpdatedAt,
	)
	if errors.Is(err, domain.ErrDuplicate) {
		return domain.ErrEmailAlreadyExists
	}
	return err
}

// UpdatePassword grava um novo hash de senha.
func (r *UserRepo) UpdatePassword(ctx context.Context, id, hash string) error {
	return execOne(ctx, r.q, "update senha",
		`UPDATE usuarios SET password_hash = $2, updated_at = NOW() WHERE id = $1`, id, hash)
}

// List lista usuários da empresa por nome.
func (r *UserRepo) List(ctx context.Context, f repository.ListFilter) ([]*entity.User, int, error) {
	w := &where{}
	w.common(f, "", "busca")
	list, total, err := listPage(ctx, r.q, userCols, "FROM usuarios", w, "nome, id", f, scanUser)
	if err != nil {
		return nil, 0, fmt.Errorf("list usuarios: %w", err)
	}
	return list, total, nil
}

// Delete remove um usuário.
func (r *UserRepo) Delete(ctx context.Context, id string) error {
	return execOne(ctx, r.q, "delete usuario", `DELETE FROM usuarios WHERE id = $1`, id)
}
