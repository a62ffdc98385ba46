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
	"github.com/jhoicas/BusinessHub-api/pkg/texto"
)

// PessoaUseCase casos de uso de clientes e fornecedores (mesmo cadastro, distinguido pelo tipo).
type PessoaUseCase struct {
	repo       repository.PessoaRepository
	categorias repository.LookupRepository
}

// NewPessoaUseCase constrói o caso de uso. categorias é o repositório de categorias de fornecedor.
func NewPessoaUseCase(repo repository.PessoaRepository, categorias repository.LookupRepository) *PessoaUseCase {
	return &PessoaUseCase{repo: repo, categorias: categorias}
}

// Create cadastra um cliente ou fornecedor.
// Documento e email são únicos dentro da empresa.
func (uc *PessoaUseCase) Create(ctx context.Context, c tenant.Caller, tipo string, in dto.CreatePessoaRequest) (*dto.PessoaResponse, error) {
	if !entity.ValidTipoPessoa(tipo) {
		return nil, domain.ErrInvalidInput
	}
	empresaID, err := tenant.Resolve(c, in.EmpresaID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	p := &entity.Pessoa{
		ID:          uuid.New().String(),
		EmpresaID:   empresaID,
		Tipo:        tipo,
		Nome:        strings.TrimSpace(in.Nome),
		RazaoSocial: in.RazaoSocial,
		Documento:   texto.SoDigitos(in.Documento),
		Email:       strings.ToLower(strings.TrimSpace(in.Email)),
		Telefone:    in.Telefone,
		Endereco:    in.Endereco,
		Cidade:      in.Cidade,
		UF:          strings.ToUpper(in.UF),
		CEP:         texto.SoDigitos(in.CEP),
		CategoriaID: emptyToNil(in.CategoriaID),
		Observacoes: in.Observacoes,
		Ativo:       true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.validate(ctx, p); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return toPessoaResponse(p), nil
}

// GetByID obtém uma pessoa do tipo pedido; outra empresa ou outro tipo responde ErrNotFound.
func (uc *PessoaUseCase) GetByID(ctx context.Context, c tenant.Caller, tipo, id string) (*dto.PessoaResponse, error) {
	p, err := uc.get(ctx, c, tipo, id)
	if err != nil {
		return nil, err
	}
	return toPessoaResponse(p), nil
}

// List lista pessoas do tipo; q busca por nome/razão social sem diferenciar acentos e caixa,
// ou por documento quando só tem dígitos.
func (uc *PessoaUseCase) List(ctx context.Context, c tenant.Caller, tipo, empresaID string, page dto.PageRequest, q string) (*dto.ListResponse[dto.PessoaResponse], error) {
	f, err := listFilter(c, empresaID, &page, q)
	if err != nil {
		return nil, err
	}
	list, total, err := uc.repo.List(ctx, tipo, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PessoaResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPessoaResponse(p))
	}
	out := dto.NewList(items, page, total)
	return &out, nil
}

// Update atualiza parcialmente uma pessoa, revalidando unicidade e categoria.
func (uc *PessoaUseCase) Update(ctx context.Context, c tenant.Caller, tipo, id string, in dto.UpdatePessoaRequest) (*dto.PessoaResponse, error) {
	p, err := uc.get(ctx, c, tipo, id)
	if err != nil {
		return nil, err
	}
	if in.Nome != nil {
		p.Nome = strings.TrimSpace(*in.Nome)
	}
	if in.Documento != nil {
		p.Documento = texto.SoDigitos(*in.Documento)
	}
	if in.Email != nil {
		p.Email = strings.ToLower(strings.TrimSpace(*in.Email))
	}
	if in.UF != nil {
		p.UF = strings.ToUpper(*in.UF)
	}
	if in.CEP != nil {
		p.CEP = texto.SoDigitos(*in.CEP)
	}
	if in.CategoriaID != nil {
		p.CategoriaID = emptyToNil(in.CategoriaID)
	}
	p.RazaoSocial = strOr(in.RazaoSocial, p.RazaoSocial)
	p.Telefone = strOr(in.Telefone, p.Telefone)
	p.Endereco = strOr(in.Endereco, p.Endereco)
	p.Cidade = strOr(in.Cidade, p.Cidade)
	p.Observacoes = strOr(in.Observacoes, p.Observacoes)
	if in.Ativo != nil {
		p.Ativo = *in.Ativo
	}
	if err := uc.validate(ctx, p); err != nil {
		return nil, err
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return toPessoaResponse(p), nil
}

// Delete exclui uma pessoa. Contas e histórias vinculadas impedem a exclusão (FK).
func (uc *PessoaUseCase) Delete(ctx context.Context, c tenant.Caller, tipo, id string) error {
	if _, err := uc.get(ctx, c, tipo, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *PessoaUseCase) get(ctx context.Context, c tenant.Caller, tipo, id string) (*entity.Pessoa, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil || p.Tipo != tipo || !tenant.CanAccess(c, p.EmpresaID) {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

// validate aplica as regras de documento, unicidade e categoria.
func (uc *PessoaUseCase) validate(ctx context.Context, p *entity.Pessoa) error {
	if p.Nome == "" {
		return domain.ErrInvalidInput
	}
	if n := len(p.Documento); n != 11 && n != 14 {
		return domain.ErrInvalidInput // CPF ou CNPJ
	}
	other, err := uc.repo.GetByDocumento(ctx, p.EmpresaID, p.Documento)
	if err != nil {
		return err
	}
	if other != nil && other.ID != p.ID {
		return domain.ErrDuplicate
	}
	if p.Email != "" {
		other, err = uc.repo.GetByEmail(ctx, p.EmpresaID, p.Email)
		if err != nil {
			return err
		}
		if other != nil && other.ID != p.ID {
			return domain.ErrDuplicate
		}
	}
	if p.CategoriaID == nil {
		return nil
	}
	if !p.IsFornecedor() {
		return domain.ErrInvalidInput
	}
	cat, err := uc.categorias.GetByID(ctx, *p.CategoriaID)
	if err != nil {
		return err
	}
	if cat == nil || cat.EmpresaID != p.EmpresaID || !cat.Ativo {
		return domain.ErrInvalidInput
	}
	return nil
}

func toPessoaResponse(p *entity.Pessoa) *dto.PessoaResponse {
	return &dto.PessoaResponse{
		ID:          p.ID,
		EmpresaID:   p.EmpresaID,
		Tipo:        p.Tipo,
		Nome:        p.Nome,
		RazaoSocial: p.RazaoSocial,
		Documento:   p.Documento,
		Email:       p.Email,
		Telefone:    p.Telefone,
		Endereco:    p.Endereco,
		Cidade:      p.Cidade,
		UF:          p.UF,
		CEP:         p.CEP,
		CategoriaID: p.CategoriaID,
		Observacoes: p.Observacoes,
		Ativo:       p.Ativo,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
