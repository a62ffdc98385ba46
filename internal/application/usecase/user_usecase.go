package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/BusinessHub-api/internal/application/dto"
	"github.com/jhoicas/BusinessHub-api/internal/application/tenant"
	"github.com/jhoicas/BusinessHub-api/internal/domain"
	"github.com/jhoicas/BusinessHub-api/internal/domain/entity"
	"github.com/jhoicas/BusinessHub-api/internal/domain/repository"
)

// UserUseCase aplica as regras de negócio dos usuários.
type UserUseCase struct {
	repo     repository.UserRepository
	empresas repository.EmpresaRepository
}

// NewUserUseCase constrói o caso de uso com os portos de persistência.
func NewUserUseCase(repo repository.UserRepository, empresas repository.EmpresaRepository) *UserUseCase {
	return &UserUseCase{repo: repo, empresas: empresas}
}

// Create cria um usuário na empresa resolvida. Só admin global concede GlobalAdmin.
func (uc *UserUseCase) Create(ctx context.Context, c tenant.Caller, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	empresaID, err := tenant.Resolve(c, in.EmpresaID)
	if err != nil {
		return nil, err
	}
	if in.GlobalAdmin && !c.GlobalAdmin {
		return nil, domain.ErrForbidden
	}
	empresa, err := uc.empresas.GetByID(ctx, empresaID)
	if err != nil {
		return nil, err
	}
	if empresa == nil {
		return nil, domain.ErrNotFound
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	existing, err := uc.repo.GetByEmailAndEmpresa(ctx, email, empresaID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		EmpresaID:    empresaID,
		Nome:         in.Nome,
		Email:        email,
		PasswordHash: string(hash),
		Role:         in.Role,
		GlobalAdmin:  in.GlobalAdmin,
		Ativo:        true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// GetByID obtém um usuário visível para quem chama.
func (uc *UserUseCase) GetByID(ctx context.Context, c tenant.Caller, id string) (*dto.UserResponse, error) {
	user, err := uc.get(ctx, c, id)
	if err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// List lista os usuários da empresa resolvida; q busca por nome ou email.
func (uc *UserUseCase) List(ctx context.Context, c tenant.Caller, empresaID string, page dto.PageRequest, q string) (*dto.ListResponse[dto.UserResponse], error) {
	f, err := listFilter(c, empresaID, &page, q)
	if err != nil {
		return nil, err
	}
	list, total, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *ToUserResponse(u))
	}
	out := dto.NewList(items, page, total)
	return &out, nil
}

// Update atualiza um usuário. Mudar GlobalAdmin exige admin global.
func (uc *UserUseCase) Update(ctx context.Context, c tenant.Caller, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.get(ctx, c, id)
	if err != nil {
		return nil, err
	}
	if err := guardGlobalAdmin(c, user); err != nil {
		return nil, err
	}
	if in.GlobalAdmin != nil && *in.GlobalAdmin != user.GlobalAdmin && !c.GlobalAdmin {
		return nil, domain.ErrForbidden
	}
	if in.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*in.Email))
		if email != user.Email {
			other, err := uc.repo.GetByEmailAndEmpresa(ctx, email, user.EmpresaID)
			if err != nil {
				return nil, err
			}
			if other != nil {
				return nil, domain.ErrEmailAlreadyExists
			}
			user.Email = email
		}
	}
	user.Nome = strOr(in.Nome, user.Nome)
	user.Role = strOr(in.Role, user.Role)
	if in.GlobalAdmin != nil {
		user.GlobalAdmin = *in.GlobalAdmin
	}
	if in.Ativo != nil {
		if !*in.Ativo && user.ID == c.UserID {
			return nil, domain.ErrConflict
		}
		user.Ativo = *in.Ativo
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// ChangePassword troca a senha. O próprio usuário confirma a senha atual;
// um admin da mesma empresa (ou global) pode redefinir a de outro.
func (uc *UserUseCase) ChangePassword(ctx context.Context, c tenant.Caller, id string, in dto.ChangePasswordRequest) error {
	user, err := uc.get(ctx, c, id)
	if err != nil {
		return err
	}
	if user.ID == c.UserID {
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.SenhaAtual)) != nil {
			return domain.ErrUnauthorized
		}
	} else if !c.IsAdmin() {
		return domain.ErrForbidden
	} else if err := guardGlobalAdmin(c, user); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NovaSenha), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.repo.UpdatePassword(ctx, user.ID, string(hash))
}

// Delete exclui um usuário; ninguém exclui a si mesmo.
func (uc *UserUseCase) Delete(ctx context.Context, c tenant.Caller, id string) error {
	if id == c.UserID {
		return domain.ErrConflict
	}
	user, err := uc.get(ctx, c, id)
	if err != nil {
		return err
	}
	if err := guardGlobalAdmin(c, user); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

// guardGlobalAdmin impede que um admin da empresa altere um admin global.
// O próprio admin global pode se alterar.
func guardGlobalAdmin(c tenant.Caller, target *entity.User) error {
	if target.GlobalAdmin && !c.GlobalAdmin && target.ID != c.UserID {
		return domain.ErrForbidden
	}
	return nil
}

func (uc *UserUseCase) get(ctx context.Context, c tenant.Caller, id string) (*entity.User, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil || !tenant.CanAccess(c, user.EmpresaID) {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

// ToUserResponse converte a entidade para a saída (sem hash de senha).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:          u.ID,
		EmpresaID:   u.EmpresaID,
		Nome:        u.Nome,
		Email:       u.Email,
		Role:        u.Role,
		GlobalAdmin: u.GlobalAdmin,
		Ativo:       u.Ativo,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
