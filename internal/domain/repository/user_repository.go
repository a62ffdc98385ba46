package repository

import (
	"context"

	"github.com/jhoicas/BusinessHub-api/internal/domain/entity"
)

// UserRepository define o porto de persistência para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmailAndEmpresa(ctx context.Context, email, empresaID string) (*entity.User, error)
	// FindByEmail devolve todos os usuários com o email (um por empresa), para o login.
	FindByEmail(ctx context.Context, email string) ([]*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	UpdatePassword(ctx context.Context, id, hash string) error
	List(ctx context.Context, f ListFilter) ([]*entity.User, int, error)
	Delete(ctx context.Context, id string) error
}
