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
)

// ProdutoUseCase casos de uso CRUD de produtos e dos módulos adicionais.
type ProdutoUseCase struct {
	repo repository.ProdutoRepository
}

// NewProdutoUseCase constrói o caso de uso.
func NewProdutoUseCase(repo repository.ProdutoRepository) *ProdutoUseCase {
	return &ProdutoUseCase{repo: repo}
}

// Create cria um produto, opcionalmente já com módulos. Valores não podem ser negativos.
func (uc *ProdutoUseCase) Create(ctx context.Context, c tenant.Caller, in dto.CreateProdutoRequest) (*dto.ProdutoResponse, error) {
	empresaID, err := tenant.Resolve(c, in.EmpresaID)
	if err != nil {
		return nil, err
	}
	if in.Valor.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	p := &entity.Produto{
		ID:        uuid.New().String(),
		EmpresaID: empresaID,
		Nome:      in.Nome,
		Descricao: in.Descricao,
		Valor:     in.Valor.Round(2),
		Ativo:     true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, m := range in.Modulos {
		if m.Valor.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		p.Modulos = append(p.Modulos, entity.ProdutoModulo{
			ID:        uuid.New().String(),
			ProdutoID: p.ID,
			Nome:      m.Nome,
			Descricao: m.Descricao,
			Valor:     m.Valor.Round(2),
			Ativo:     true,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return toProdutoResponse(p), nil
}

// GetByID obtém um produto com módulos.
func (uc *ProdutoUseCase) GetByID(ctx context.Context, c tenant.Caller, id string) (*dto.ProdutoResponse, error) {
	p, err := uc.get(ctx, c, id)
	if err != nil {
		return nil, err
	}
	return toProdutoResponse(p), nil
}

// List lista produtos por empresa com paginação e busca por nome.
func (uc *ProdutoUseCase) List(ctx context.Context, c tenant.Caller, empresaID string, page dto.PageRequest, q string, ativo *bool) (*dto.ListResponse[dto.ProdutoResponse], error) {
	f, err := listFilter(c, empresaID, &page, q)
	if err != nil {
		return nil, err
	}
	f.Ativo = ativo
	list, total, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProdutoResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProdutoResponse(p))
	}
	out := dto.NewList(items, page, total)
	return &out, nil
}

// Update atualiza o produto (os módulos têm operações próprias).
func (uc *ProdutoUseCase) Update(ctx context.Context, c tenant.Caller, id string, in dto.UpdateProdutoRequest) (*dto.ProdutoResponse, error) {
	p, err := uc.get(ctx, c, id)
	if err != nil {
		return nil, err
	}
	p.Nome = strOr(in.Nome, p.Nome)
	p.Descricao = strOr(in.Descricao, p.Descricao)
	if in.Valor != nil {
		if in.Valor.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		p.Valor = in.Valor.Round(2)
	}
	if in.Ativo != nil {
		p.Ativo = *in.Ativo
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return toProdutoResponse(p), nil
}

// Delete exclui o produto e seus módulos.
func (uc *ProdutoUseCase) Delete(ctx context.Context, c tenant.Caller, id string) error {
	if _, err := uc.get(ctx, c, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

// AddModulo acrescenta um módulo ao produto.
func (uc *ProdutoUseCase) AddModulo(ctx context.Context, c tenant.Caller, produtoID string, in dto.ProdutoModuloRequest) (*dto.ProdutoModuloResponse, error) {
	if _, err := uc.get(ctx, c, produtoID); err != nil {
		return nil, err
	}
	if in.Valor.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	m := &entity.ProdutoModulo{
		ID:        uuid.New().String(),
		ProdutoID: produtoID,
		Nome:      in.Nome,
		Descricao: in.Descricao,
		Valor:     in.Valor.Round(2),
		Ativo:     true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.CreateModulo(ctx, m); err != nil {
		return nil, err
	}
	return toProdutoModuloResponse(m), nil
}

// UpdateModulo atualiza um módulo do produto.
func (uc *ProdutoUseCase) UpdateModulo(ctx context.Context, c tenant.Caller, produtoID, moduloID string, in dto.UpdateProdutoModuloRequest) (*dto.ProdutoModuloResponse, error) {
	m, err := uc.getModulo(ctx, c, produtoID, moduloID)
	if err != nil {
		return nil, err
	}
	m.Nome = strOr(in.Nome, m.Nome)
	m.Descricao = strOr(in.Descricao, m.Descricao)
	if in.Valor != nil {
		if in.Valor.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		m.Valor = in.Valor.Round(2)
	}
	if in.Ativo != nil {
		m.Ativo = *in.Ativo
	}
	m.UpdatedAt = time.Now()
	if err := uc.repo.UpdateModulo(ctx, m); err != nil {
		return nil, err
	}
	return toProdutoModuloResponse(m), nil
}

// DeleteModulo exclui um módulo do produto.
func (uc *ProdutoUseCase) DeleteModulo(ctx context.Context, c tenant.Caller, produtoID, moduloID string) error {
	if _, err := uc.getModulo(ctx, c, produtoID, moduloID); err != nil {
		return err
	}
	return uc.repo.DeleteModulo(ctx, moduloID)
}

func (uc *ProdutoUseCase) get(ctx context.Context, c tenant.Caller, id string) (*entity.Produto, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil || !tenant.CanAccess(c, p.EmpresaID) {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (uc *ProdutoUseCase) getModulo(ctx context.Context, c tenant.Caller, produtoID, moduloID string) (*entity.ProdutoModulo, error) {
	if _, err := uc.get(ctx, c, produtoID); err != nil {
		return nil, err
	}
	m, err := uc.repo.GetModulo(ctx, moduloID)
	if err != nil {
		return nil, err
	}
	if m == nil || m.ProdutoID != produtoID {
		return nil, domain.ErrNotFound
	}
	return m, nil
}

func toProdutoResponse(p *entity.Produto) *dto.ProdutoResponse {
	out := &dto.ProdutoResponse{
		ID:        p.ID,
		EmpresaID: p.EmpresaID,
		Nome:      p.Nome,
		Descricao: p.Descricao,
		Valor:     p.Valor,
		Ativo:     p.Ativo,
		Modulos:   make([]dto.ProdutoModuloResponse, 0, len(p.Modulos)),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	for i := range p.Modulos {
		out.Modulos = append(out.Modulos, *toProdutoModuloResponse(&p.Modulos[i]))
	}
	return out
}

func toProdutoModuloResponse(m *entity.ProdutoModulo) *dto.ProdutoModuloResponse {
	return &dto.ProdutoModuloResponse{
		ID:        m.ID,
		ProdutoID: m.ProdutoID,
		Nome:      m.Nome,
		Descricao: m.Descricao,
		Valor:     m.Valor,
		Ativo:     m.Ativo,
	}
}
