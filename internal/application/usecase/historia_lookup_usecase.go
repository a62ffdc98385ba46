package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/BusinessHub-api/internal/application/dto"
	"github.com/jhoicas/BusinessHub-api/internal/application/ports"
	"github.com/jhoicas/BusinessHub-api/internal/application/tenant"
	"github.com/jhoicas/BusinessHub-api/internal/domain"
	"github.com/jhoicas/BusinessHub-api/internal/domain/entity"
	"github.com/jhoicas/BusinessHub-api/internal/domain/repository"
)

const lookupCacheTTL = 5 * time.Minute

// HistoriaLookupUseCase CRUD de status ou tipos de história; uma instância por tabela.
// A lista completa de ativos fica em cache por empresa (usada pelo kanban).
type HistoriaLookupUseCase struct {
	repo   repository.HistoriaLookupRepository
	cache  ports.Cache
	tabela string
}

// NewHistoriaLookupUseCase constrói o caso de uso para tabela (entity.LookupHistoriaStatus ou LookupHistoriaTipo).
func NewHistoriaLookupUseCase(repo repository.HistoriaLookupRepository, cache ports.Cache, tabela string) *HistoriaLookupUseCase {
	return &HistoriaLookupUseCase{repo: repo, cache: cache, tabela: tabela}
}

func (uc *HistoriaLookupUseCase) cacheKey(empresaID string) string {
	return "lookup:" + uc.tabela + ":" + empresaID
}

// Create cria um status/tipo; cor padrão cinza.
func (uc *HistoriaLookupUseCase) Create(ctx context.Context, c tenant.Caller, in dto.HistoriaLookupRequest) (*dto.HistoriaLookupResponse, error) {
	empresaID, err := tenant.Resolve(c, in.EmpresaID)
	if err != nil {
		return nil, err
	}
	nome := strings.TrimSpace(strOr(in.Nome, ""))
	if nome == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	l := &entity.HistoriaLookup{
		ID:        uuid.New().String(),
		EmpresaID: empresaID,
		Nome:      nome,
		Cor:       strOr(in.Cor, "#9e9e9e"),
		Ativo:     in.Ativo == nil || *in.Ativo,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.Ordem != nil {
		l.Ordem = *in.Ordem
	}
	if err := uc.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	_ = uc.cache.Invalidate(ctx, uc.cacheKey(empresaID))
	return toHistoriaLookupResponse(l), nil
}

// List lista por ordem.
func (uc *HistoriaLookupUseCase) List(ctx context.Context, c tenant.Caller, empresaID string, page dto.PageRequest, ativo *bool) (*dto.ListResponse[dto.HistoriaLookupResponse], error) {
	f, err := listFilter(c, empresaID, &page, "")
	if err != nil {
		return nil, err
	}
	f.Ativo = ativo
	list, total, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.HistoriaLookupResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *toHistoriaLookupResponse(l))
	}
	out := dto.NewList(items, page, total)
	return &out, nil
}

// Ativos devolve todos os registros ativos da empresa por ordem (com cache).
func (uc *HistoriaLookupUseCase) Ativos(ctx context.Context, empresaID string) ([]dto.HistoriaLookupResponse, error) {
	var out []dto.HistoriaLookupResponse
	err := uc.cache.FetchJSON(ctx, uc.cacheKey(empresaID), lookupCacheTTL, &out, func(ctx context.Context) (any, error) {
		ativo := true
		list, _, err := uc.repo.List(ctx, repository.ListFilter{EmpresaID: empresaID, Ativo: &ativo, Limit: 1000})
		if err != nil {
			return nil, err
		}
		items := make([]dto.HistoriaLookupResponse, 0, len(list))
		for _, l := range list {
			items = append(items, *toHistoriaLookupResponse(l))
		}
		return items, nil
	})
	return out, err
}

// Update altera nome, cor, ordem ou ativo.
func (uc *HistoriaLookupUseCase) Update(ctx context.Context, c tenant.Caller, id string, in dto.HistoriaLookupRequest) (*dto.HistoriaLookupResponse, error) {
	l, err := uc.Get(ctx, c, id)
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
	l.Cor = strOr(in.Cor, l.Cor)
	if in.Ordem != nil {
		l.Ordem = *in.Ordem
	}
	if in.Ativo != nil {
		l.Ativo = *in.Ativo
	}
	l.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, l); err != nil {
		return nil, err
	}
	_ = uc.cache.Invalidate(ctx, uc.cacheKey(l.EmpresaID))
	return toHistoriaLookupResponse(l), nil
}

// Delete exclui; status/tipo em uso por histórias é recusado pelo banco.
func (uc *HistoriaLookupUseCase) Delete(ctx context.Context, c tenant.Caller, id string) error {
	l, err := uc.Get(ctx, c, id)
	if err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	_ = uc.cache.Invalidate(ctx, uc.cacheKey(l.EmpresaID))
	return nil
}

// Get obtém um registro visível para quem chama.
func (uc *HistoriaLookupUseCase) Get(ctx context.Context, c tenant.Caller, id string) (*entity.HistoriaLookup, error) {
	l, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil || !tenant.CanAccess(c, l.EmpresaID) {
		return nil, domain.ErrNotFound
	}
	return l, nil
}

func toHistoriaLookupResponse(l *entity.HistoriaLookup) *dto.HistoriaLookupResponse {
	return &dto.HistoriaLookupResponse{
		ID:        l.ID,
		EmpresaID: l.EmpresaID,
		Nome:      l.Nome,
		Cor:       l.Cor,
		Ordem:     l.Ordem,
		Ativo:     l.Ativo,
	}
}
