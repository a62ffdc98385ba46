package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/BusinessHub-api/internal/application/dto"
	"github.com/jhoicas/BusinessHub-api/internal/application/tenant"
	"github.com/jhoicas/BusinessHub-api/internal/domain"
	"github.com/jhoicas/BusinessHub-api/internal/domain/entity"
	"github.com/jhoicas/BusinessHub-api/internal/domain/repository"
)

// LookupUseCase CRUD das tabelas auxiliares simples (categorias de fornecedor, formas de pagamento).
// Uma instância por tabela.
type LookupUseCase struct {
	repo repository.LookupRepository
}

// NewLookupUseCase constrói o caso de uso sobre o repositório da tabela.
func NewLookupUseCase(repo repository.LookupRepository) *LookupUseCase {
	return &LookupUseCase{repo: repo}
}

// Create cria um registro ativo.
func (uc *LookupUseCase) Create(ctx context.Context, c tenant.Caller, in dto.LookupRequest) (*dto.LookupResponse, error) {
	empresaID, err := tenant.Resolve(c, in.EmpresaID)
	if err != nil {
		return nil, err
	}
	nome := strings.TrimSpace(strOr(in.Nome, ""))
	if nome == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	l := &entity.Lookup{
		ID:        uuid.New().String(),
		EmpresaID: empresaID,
		Nome:      nome,
		Ativo:     in.Ativo == nil || *in.Ativo,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	return toLookupResponse(l), nil
}

// List lista os registros da empresa por nome.
func (uc *LookupUseCase) List(ctx context.Context, c tenant.Caller, empresaID string, page dto.PageRequest, q string, ativo *bool) (*dto.ListResponse[dto.LookupResponse], error) {
	f, err := listFilter(c, empresaID, &page, q)
	if err != nil {
		return nil, err
	}
	f.Ativo = ativo
	list, total, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LookupResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *toLookupResponse(l))
	}
	out := dto.NewList(items, page, total)
	return &out, nil
}

// Update renomeia ou ativa/desativa.
func (uc *LookupUseCase) Update(ctx context.Context, c tenant.Caller, id string, in dto.LookupRequest) (*dto.LookupResponse, error) {
	l, err := uc.get(ctx, c, id)
	if err != nil {
		return nil, err
	}
	if in.Nome != nil {
		nome := strings.TrimSpace(*in.Nome)
		if nome == "" {
			return nil, domain.ErrInvalidInput
		}
		l.Nome = nome
	}
	if in.Ativo != nil {
		l.Ativo = *in.Ativo
	}
	l.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, l); err != nil {
		return nil, err
	}
	return toLookupResponse(l), nil
}

// Delete exclui o registro; em uso, o banco recusa (FK) e a resposta é 400.
func (uc *LookupUseCase) Delete(ctx context.Context, c tenant.Caller, id string) error {
	if _, err := uc.get(ctx, c, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *LookupUseCase) get(ctx context.Context, c tenant.Caller, id string) (*entity.Lookup, error) {
	l, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil || !tenant.CanAccess(c, l.EmpresaID) {
		return nil, domain.ErrNotFound
	}
	return l, nil
}

func toLookupResponse(l *entity.Lookup) *dto.LookupResponse {
	return &dto.LookupResponse{ID: l.ID, EmpresaID: l.EmpresaID, Nome: l.Nome, Ativo: l.Ativo}
}
