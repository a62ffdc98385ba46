package financeiro

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/BusinessHub-api/internal/application/dto"
	"github.com/jhoicas/BusinessHub-api/internal/application/tenant"
	"github.com/jhoicas/BusinessHub-api/internal/domain"
	"github.com/jhoicas/BusinessHub-api/internal/domain/entity"
	dfin "github.com/jhoicas/BusinessHub-api/internal/domain/financeiro"
	"github.com/jhoicas/BusinessHub-api/internal/domain/repository"
	"github.com/jhoicas/BusinessHub-api/pkg/texto"
)

var cem = decimal.NewFromInt(100)

// AfiliadoUseCase CRUD de afiliados e geração das contas a pagar de comissão.
type AfiliadoUseCase struct {
	repo   repository.AfiliadoRepository
	contas *ContaUseCase
}

// NewAfiliadoUseCase constrói o caso de uso; contas gera as comissões.
func NewAfiliadoUseCase(repo repository.AfiliadoRepository, contas *ContaUseCase) *AfiliadoUseCase {
	return &AfiliadoUseCase{repo: repo, contas: contas}
}

// Create cadastra um afiliado ativo. Percentual entre 0 e 100.
func (uc *AfiliadoUseCase) Create(ctx context.Context, c tenant.Caller, in dto.CreateAfiliadoRequest) (*dto.AfiliadoResponse, error) {
	empresaID, err := tenant.Resolve(c, in.EmpresaID)
	if err != nil {
		return nil, err
	}
	if !validPercentual(in.PercentualComissao) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	a := &entity.Afiliado{
		ID:                 uuid.New().String(),
		EmpresaID:          empresaID,
		Nome:               strings.TrimSpace(in.Nome),
		Documento:          texto.SoDigitos(in.Documento),
		Email:              strings.ToLower(strings.TrimSpace(in.Email)),
		Telefone:           in.Telefone,
		PercentualComissao: in.PercentualComissao,
		Ativo:              true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return toAfiliadoResponse(a), nil
}

// GetByID obtém um afiliado.
func (uc *AfiliadoUseCase) GetByID(ctx context.Context, c tenant.Caller, id string) (*dto.AfiliadoResponse, error) {
	a, err := uc.get(ctx, c, id)
	if err != nil {
		return nil, err
	}
	return toAfiliadoResponse(a), nil
}

// List lista afiliados por nome.
func (uc *AfiliadoUseCase) List(ctx context.Context, c tenant.Caller, empresaID string, page dto.PageRequest, q string, ativo *bool) (*dto.ListResponse[dto.AfiliadoResponse], error) {
	f, err := listFilter(c, empresaID, &page, q)
	if err != nil {
		return nil, err
	}
	f.Ativo = ativo
	list, total, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AfiliadoResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAfiliadoResponse(a))
	}
	out := dto.NewList(items, page, total)
	return &out, nil
}

// Update atualiza parcialmente um afiliado.
func (uc *AfiliadoUseCase) Update(ctx context.Context, c tenant.Caller, id string, in dto.UpdateAfiliadoRequest) (*dto.AfiliadoResponse, error) {
	a, err := uc.get(ctx, c, id)
	if err != nil {
		return nil, err
	}
	if in.Nome != nil {
		a.Nome = strings.TrimSpace(*in.Nome)
	}
	if in.Documento != nil {
		a.Documento = texto.SoDigitos(*in.Documento)
	}
	if in.Email != nil {
		a.Email = strings.ToLower(strings.TrimSpace(*in.Email))
	}
	if in.Telefone != nil {
		a.Telefone = *in.Telefone
	}
	if in.PercentualComissao != nil {
		if !validPercentual(*in.PercentualComissao) {
			return nil, domain.ErrInvalidInput
		}
		a.PercentualComissao = *in.PercentualComissao
	}
	if in.Ativo != nil {
		a.Ativo = *in.Ativo
	}
	a.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return toAfiliadoResponse(a), nil
}

// Delete exclui o afiliado; com comissões geradas o banco recusa (FK).
func (uc *AfiliadoUseCase) Delete(ctx context.Context, c tenant.Caller, id string) error {
	if _, err := uc.get(ctx, c, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

// GerarComissao cria a conta a pagar da comissão: valorBase * percentual / 100,
// parcelada pelas mesmas regras das demais contas.
func (uc *AfiliadoUseCase) GerarComissao(ctx context.Context, c tenant.Caller, id string, in dto.GerarComissaoRequest) (*dto.ContaResponse, error) {
	a, err := uc.get(ctx, c, id)
	if err != nil {
		return nil, err
	}
	if !a.Ativo {
		return nil, fmt.Errorf("%w: afiliado inativo", domain.ErrInvalidInput)
	}
	if !in.ValorBase.IsPositive() {
		return nil, dfin.ErrValorInvalido
	}
	valor := dfin.Comissao(in.ValorBase, a.PercentualComissao)
	if !valor.IsPositive() {
		return nil, fmt.Errorf("%w: comissão resultante é zero", domain.ErrInvalidInput)
	}
	descricao := in.Descricao
	if descricao == "" {
		descricao = fmt.Sprintf("Comissão %s (%s%% de %s)", a.Nome, a.PercentualComissao.String(), in.ValorBase.StringFixed(2))
	}
	afiliadoID := a.ID
	conta := &entity.Conta{
		ID:               uuid.New().String(),
		EmpresaID:        a.EmpresaID,
		Tipo:             entity.ContaPagar,
		AfiliadoID:       &afiliadoID,
		Descricao:        descricao,
		Valor:            valor,
		DataVencimento:   in.DataVencimento.Time,
		FormaPagamentoID: emptyToNil(in.FormaPagamentoID),
		NumeroParcelas:   in.NumeroParcelas,
		IntervaloDias:    in.IntervaloDias,
	}
	if conta.DataVencimento.IsZero() {
		conta.DataVencimento = dto.NewDate(time.Now()).Time
	}
	if err := uc.contas.create(ctx, conta); err != nil {
		return nil, err
	}
	return ToContaResponse(conta), nil
}

func (uc *AfiliadoUseCase) get(ctx context.Context, c tenant.Caller, id string) (*entity.Afiliado, error) {
	a, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil || !tenant.CanAccess(c, a.EmpresaID) {
		return nil, domain.ErrNotFound
	}
	return a, nil
}

func validPercentual(p decimal.Decimal) bool {
	return !p.IsNegative() && p.LessThanOrEqual(cem)
}

func toAfiliadoResponse(a *entity.Afiliado) *dto.AfiliadoResponse {
	return &dto.AfiliadoResponse{
		ID:                 a.ID,
		EmpresaID:          a.EmpresaID,
		Nome:               a.Nome,
		Documento:          a.Documento,
		Email:              a.Email,
		Telefone:           a.Telefone,
		PercentualComissao: a.PercentualComissao,
		Ativo:              a.Ativo,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}
