package auth

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/BusinessHub-api/internal/application/dto"
	"github.com/jhoicas/BusinessHub-api/internal/application/tenant"
	"github.com/jhoicas/BusinessHub-api/internal/application/usecase"
	"github.com/jhoicas/BusinessHub-api/internal/domain"
	"github.com/jhoicas/BusinessHub-api/internal/domain/entity"
	"github.com/jhoicas/BusinessHub-api/internal/domain/repository"
	"github.com/jhoicas/BusinessHub-api/pkg/jwt"
)

// JWTConfig configuração para emissão dos tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticação: login e usuário corrente.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	empresaRepo repository.EmpresaRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, empresaRepo repository.EmpresaRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, empresaRepo: empresaRepo, jwtCfg: jwtCfg}
}

// Login verifica email/senha, gera o JWT e devolve token + usuário.
// O mesmo email pode existir em várias empresas: vale o primeiro cuja senha confere,
// restrito a in.EmpresaID quando informado.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	users, err := uc.userRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, err
	}
	var user *entity.User
	for _, u := range users {
		if in.EmpresaID != "" && u.EmpresaID != in.EmpresaID {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)) == nil {
			user = u
			break
		}
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.Ativo {
		return nil, domain.ErrForbidden
	}
	empresa, err := uc.empresaRepo.GetByID(ctx, user.EmpresaID)
	if err != nil {
		return nil, err
	}
	if empresa == nil || (!empresa.Ativo && !user.GlobalAdmin) {
		return nil, domain.ErrForbidden
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, jwt.Identity{
		UserID:      user.ID,
		EmpresaID:   user.EmpresaID,
		Role:        user.Role,
		GlobalAdmin: user.GlobalAdmin,
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: uc.jwtCfg.ExpMinutes * 60,
		User:      *usecase.ToUserResponse(user),
	}, nil
}

// Me devolve o usuário autenticado, recarregado do banco.
func (uc *AuthUseCase) Me(ctx context.Context, c tenant.Caller) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, c.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Ativo {
		return nil, domain.ErrUnauthorized
	}
	return usecase.ToUserResponse(user), nil
}
