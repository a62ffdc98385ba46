package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/BusinessHub-api/internal/application/dto"
	"github.com/jhoicas/BusinessHub-api/internal/application/tenant"
	"github.com/jhoicas/BusinessHub-api/internal/domain"
	"github.com/jhoicas/BusinessHub-api/internal/domain/entity"
	"github.com/jhoicas/BusinessHub-api/internal/domain/repository"
	"github.com/jhoicas/BusinessHub-api/pkg/texto"
)

// EmpresaUseCase aplica as regras de negócio das empresas (tenants).
// Listar, criar e excluir empresas é exclusivo do admin global.
type EmpresaUseCase struct {
	repo repository.EmpresaRepository
}

// NewEmpresaUseCase constrói o caso de uso com o porto de persistência.
func NewEmpresaUseCase(repo repository.EmpresaRepository) *EmpresaUseCase {
	return &EmpresaUseCase{repo: repo}
}

// Create cria uma empresa. Devolve domain.ErrDuplicate se o CNPJ já existir.
func (uc *EmpresaUseCase) Create(ctx context.Context, c tenant.Caller, in dto.CreateEmpresaRequest) (*dto.EmpresaResponse, error) {
	if !c.GlobalAdmin {
		return nil, domain.ErrForbidden
	}
	cnpj := texto.SoDigitos(in.CNPJ)
	if len(cnpj) != 14 {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByCNPJ(ctx, cnpj)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	empresa := &entity.Empresa{
		ID:        uuid.New().String(),
		Nome:      in.Nome,
		CNPJ:      cnpj,
		Email:     in.Email,
		Telefone:  in.Telefone,
		Endereco:  in.Endereco,
		Ativo:     true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, empresa); err != nil {
		return nil, err
	}
	return toEmpresaResponse(empresa), nil
}

// GetByID obtém uma empresa visível para quem chama.
func (uc *EmpresaUseCase) GetByID(ctx context.Context, c tenant.Caller, id string) (*dto.EmpresaResponse, error) {
	empresa, err := uc.get(ctx, c, id)
	if err != nil {
		return nil, err
	}
	return toEmpresaResponse(empresa), nil
}

// List lista todas as empresas com paginação.
func (uc *EmpresaUseCase) List(ctx context.Context, c tenant.Caller, page dto.PageRequest) (*dto.ListResponse[dto.EmpresaResponse], error) {
	if !c.GlobalAdmin {
		return nil, domain.ErrForbidden
	}
	page.DefaultPage()
	list, total, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmpresaResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEmpresaResponse(e))
	}
	out := dto.NewList(items, page, total)
	return &out, nil
}

// Update atualiza os dados cadastrais. O CNPJ não muda.
func (uc *EmpresaUseCase) Update(ctx context.Context, c tenant.Caller, id string, in dto.UpdateEmpresaRequest) (*dto.EmpresaResponse, error) {
	empresa, err := uc.get(ctx, c, id)
	if err != nil {
		return nil, err
	}
	empresa.Nome = strOr(in.Nome, empresa.Nome)
	empresa.Email = strOr(in.Email, empresa.Email)
	empresa.Telefone = strOr(in.Telefone, empresa.Telefone)
	empresa.Endereco = strOr(in.Endereco, empresa.Endereco)
	if in.Ativo != nil {
		if !*in.Ativo && id == c.EmpresaID {
			return nil, domain.ErrConflict // não desativa a própria empresa
		}
		empresa.Ativo = *in.Ativo
	}
	empresa.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, empresa); err != nil {
		return nil, err
	}
	return toEmpresaResponse(empresa), nil
}

// Delete exclui uma empresa e, por cascata, todos os seus dados.
func (uc *EmpresaUseCase) Delete(ctx context.Context, c tenant.Caller, id string) error {
	if !c.GlobalAdmin {
		return domain.ErrForbidden
	}
	if id == c.EmpresaID {
		return domain.ErrConflict
	}
	if _, err := uc.get(ctx, c, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *EmpresaUseCase) get(ctx context.Context, c tenant.Caller, id string) (*entity.Empresa, error) {
	empresa, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if empresa == nil || !tenant.CanAccess(c, empresa.ID) {
		return nil, domain.ErrNotFound
	}
	return empresa, nil
}

func toEmpresaResponse(e *entity.Empresa) *dto.EmpresaResponse {
	return &dto.EmpresaResponse{
		ID:        e.ID,
		Nome:      e.Nome,
		CNPJ:      e.CNPJ,
		Email:     e.Email,
		Telefone:  e.Telefone,
		Endereco:  e.Endereco,
		Ativo:     e.Ativo,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
