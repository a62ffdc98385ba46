package financeiro

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/BusinessHub-api/internal/application/dto"
	"github.com/jhoicas/BusinessHub-api/internal/application/ports"
	"github.com/jhoicas/BusinessHub-api/internal/application/tenant"
	"github.com/jhoicas/BusinessHub-api/internal/domain"
	"github.com/jhoicas/BusinessHub-api/internal/domain/entity"
	dfin "github.com/jhoicas/BusinessHub-api/internal/domain/financeiro"
	"github.com/jhoicas/BusinessHub-api/internal/domain/repository"
)

// ContaUseCase casos de uso de contas a pagar e a receber.
// O tipo (pagar/receber) vem da rota; uma conta de um tipo não é visível pela rota do outro.
type ContaUseCase struct {
	tx       ContaTxRunner
	repo     repository.ContaRepository
	pessoas  repository.PessoaRepository
	formas   repository.LookupRepository
	produtos repository.ProdutoRepository
	cache    ports.Cache
	now      func() time.Time
}

// NewContaUseCase constrói o caso de uso. formas é o repositório de formas de pagamento.
func NewContaUseCase(
	tx ContaTxRunner,
	repo repository.ContaRepository,
	pessoas repository.PessoaRepository,
	formas repository.LookupRepository,
	produtos repository.ProdutoRepository,
	cache ports.Cache,
) *ContaUseCase {
	return &ContaUseCase{
		tx:       tx,
		repo:     repo,
		pessoas:  pessoas,
		formas:   formas,
		produtos: produtos,
		cache:    cache,
		now:      time.Now,
	}
}

// Create cria a conta e, com numeroParcelas > 1, gera e persiste as parcelas.
func (uc *ContaUseCase) Create(ctx context.Context, c tenant.Caller, tipo string, in dto.CreateContaRequest) (*dto.ContaResponse, error) {
	if !entity.ValidTipoConta(tipo) {
		return nil, domain.ErrInvalidInput
	}
	empresaID, err := tenant.Resolve(c, in.EmpresaID)
	if err != nil {
		return nil, err
	}
	pessoaID := emptyToNil(in.PessoaID)
	if pessoaID == nil {
		return nil, fmt.Errorf("%w: pessoaId é obrigatório", domain.ErrInvalidInput)
	}
	conta := &entity.Conta{
		ID:               uuid.New().String(),
		EmpresaID:        empresaID,
		Tipo:             tipo,
		PessoaID:         pessoaID,
		Descricao:        in.Descricao,
		Valor:            in.Valor,
		DataVencimento:   in.DataVencimento.Time,
		FormaPagamentoID: emptyToNil(in.FormaPagamentoID),
		NumeroParcelas:   in.NumeroParcelas,
		IntervaloDias:    in.IntervaloDias,
		Observacoes:      in.Observacoes,
	}
	itens, err := uc.buildItens(ctx, empresaID, conta.ID, in.Itens)
	if err != nil {
		return nil, err
	}
	conta.Itens = itens
	if err := uc.create(ctx, conta); err != nil {
		return nil, err
	}
	return ToContaResponse(conta), nil
}

// create valida referências, gera parcelas e persiste numa transação.
// Serve também para as comissões de afiliado.
func (uc *ContaUseCase) create(ctx context.Context, conta *entity.Conta) error {
	conta.Valor = conta.Valor.Round(2)
	if !conta.Valor.IsPositive() {
		return dfin.ErrValorInvalido
	}
	if conta.DataVencimento.IsZero() {
		return fmt.Errorf("%w: dataVencimento é obrigatória", domain.ErrInvalidInput)
	}
	if err := uc.validateRefs(ctx, conta); err != nil {
		return err
	}
	now := uc.now()
	conta.Status = entity.StatusPendente
	conta.CreatedAt = now
	conta.UpdatedAt = now

	if conta.NumeroParcelas <= 1 {
		conta.NumeroParcelas = 1
		conta.IntervaloDias = 0
	} else {
		if conta.IntervaloDias <= 0 {
			conta.IntervaloDias = dfin.IntervaloPadrao
		}
		geradas, err := dfin.GerarParcelas(conta.Valor, conta.DataVencimento, conta.NumeroParcelas, conta.IntervaloDias)
		if err != nil {
			return err
		}
		conta.Parcelas = make([]entity.Parcela, 0, len(geradas))
		for _, g := range geradas {
			conta.Parcelas = append(conta.Parcelas, entity.Parcela{
				ID:             uuid.New().String(),
				ContaID:        conta.ID,
				Numero:         g.Numero,
				Valor:          g.Valor,
				DataVencimento: g.DataVencimento,
				Status:         entity.StatusPendente,
				CreatedAt:      now,
				UpdatedAt:      now,
			})
		}
	}

	err := uc.tx.RunContas(ctx, func(contas repository.ContaRepository) error {
		return contas.Create(ctx, conta)
	})
	if err != nil {
		return err
	}
	uc.invalidate(ctx, conta.EmpresaID)
	return nil
}

// GetByID obtém a conta com parcelas e itens.
func (uc *ContaUseCase) GetByID(ctx context.Context, c tenant.Caller, tipo, id string) (*dto.ContaResponse, error) {
	conta, err := load(ctx, uc.repo, c, tipo, id)
	if err != nil {
		return nil, err
	}
	return ToContaResponse(conta), nil
}

// List lista contas do tipo com filtros de status, pessoa e faixa de vencimento.
func (uc *ContaUseCase) List(ctx context.Context, c tenant.Caller, tipo, empresaID string, page dto.PageRequest, q string, in dto.ContaFilterRequest) (*dto.ListResponse[dto.ContaResponse], error) {
	f, err := listFilter(c, empresaID, &page, q)
	if err != nil {
		return nil, err
	}
	de, err := dto.ParseDate(in.VencimentoDe)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	ate, err := dto.ParseDate(in.VencimentoAte)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	list, total, err := uc.repo.List(ctx, repository.ContaFilter{
		ListFilter:    f,
		Tipo:          tipo,
		Status:        in.Status,
		PessoaID:      in.PessoaID,
		VencimentoDe:  de,
		VencimentoAte: ate,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.ContaResponse, 0, len(list))
	for _, conta := range list {
		items = append(items, *ToContaResponse(conta))
	}
	out := dto.NewList(items, page, total)
	return &out, nil
}

// Update aplica uma atualização parcial do cabeçalho, de quaisquer parcelas e,
// opcionalmente, substitui os itens, tudo numa transação. Número de parcelas e
// intervalo não mudam. Havendo parcelas, a soma delas deve continuar igual ao valor da conta.
func (uc *ContaUseCase) Update(ctx context.Context, c tenant.Caller, tipo, id string, in dto.UpdateContaRequest) (*dto.ContaResponse, error) {
	var empresaID string
	err := uc.tx.RunContas(ctx, func(contas repository.ContaRepository) error {
		conta, err := load(ctx, contas, c, tipo, id)
		if err != nil {
			return err
		}
		empresaID = conta.EmpresaID
		now := uc.now()

		// ── 1. Cabeçalho ──────────────────────────────────────────────────────
		if in.PessoaID != nil {
			conta.PessoaID = emptyToNil(in.PessoaID)
			if conta.PessoaID == nil && conta.AfiliadoID == nil {
				return fmt.Errorf("%w: pessoaId é obrigatório", domain.ErrInvalidInput)
			}
		}
		if in.Descricao != nil {
			conta.Descricao = *in.Descricao
		}
		if in.Valor != nil {
			valor := in.Valor.Round(2)
			if !valor.IsPositive() {
				return dfin.ErrValorInvalido
			}
			conta.Valor = valor
		}
		if in.DataVencimento != nil && !in.DataVencimento.IsZero() {
			conta.DataVencimento = in.DataVencimento.Time
		}
		if in.FormaPagamentoID != nil {
			conta.FormaPagamentoID = emptyToNil(in.FormaPagamentoID)
		}
		if in.Observacoes != nil {
			conta.Observacoes = *in.Observacoes
		}
		if in.Status != nil {
			b := dfin.Baixa{Status: *in.Status, DataPagamento: dateToTime(in.DataPagamento), Estornar: in.Estornar}
			if conta.Status, conta.DataPagamento, err = b.Aplicar(conta.Status, now); err != nil {
				return err
			}
		}
		if err := uc.validateRefs(ctx, conta); err != nil {
			return err
		}
		conta.UpdatedAt = now

		// ── 2. Parcelas ───────────────────────────────────────────────────────
		if len(in.Parcelas) > 0 && len(conta.Parcelas) == 0 {
			return fmt.Errorf("%w: a conta não foi parcelada", domain.ErrInvalidInput)
		}
		alteradas, err := applyParcelas(conta, in.Parcelas, now)
		if err != nil {
			return err
		}
		if len(conta.Parcelas) > 0 {
			soma := somaParcelas(conta.Parcelas)
			if !soma.Equal(conta.Valor) {
				return fmt.Errorf("%w: soma das parcelas (%s) difere do valor da conta (%s)",
					domain.ErrInvalidInput, soma.StringFixed(2), conta.Valor.StringFixed(2))
			}
		}

		// ── 3. Persistência ───────────────────────────────────────────────────
		if err := contas.Update(ctx, conta); err != nil {
			return err
		}
		for _, p := range alteradas {
			if err := contas.UpdateParcela(ctx, p); err != nil {
				return err
			}
		}
		if in.Itens != nil {
			itens, err := uc.buildItens(ctx, conta.EmpresaID, conta.ID, *in.Itens)
			if err != nil {
				return err
			}
			if err := contas.ReplaceItens(ctx, conta.ID, itens); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.invalidate(ctx, empresaID)
	return uc.GetByID(ctx, c, tipo, id)
}

// UpdateStatus muda explicitamente o status da conta. As parcelas não são tocadas.
func (uc *ContaUseCase) UpdateStatus(ctx context.Context, c tenant.Caller, tipo, id string, in dto.StatusRequest) (*dto.ContaResponse, error) {
	conta, err := load(ctx, uc.repo, c, tipo, id)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	b := dfin.Baixa{Status: in.Status, DataPagamento: dateToTime(in.DataPagamento), Estornar: in.Estornar}
	if conta.Status, conta.DataPagamento, err = b.Aplicar(conta.Status, now); err != nil {
		return nil, err
	}
	conta.UpdatedAt = now
	if err := uc.repo.Update(ctx, conta); err != nil {
		return nil, err
	}
	uc.invalidate(ctx, conta.EmpresaID)
	return ToContaResponse(conta), nil
}

// UpdateParcelaStatus muda o status de uma única parcela, sem alterar a conta nem as irmãs.
func (uc *ContaUseCase) UpdateParcelaStatus(ctx context.Context, c tenant.Caller, tipo, id, parcelaID string, in dto.StatusRequest) (*dto.ParcelaResponse, error) {
	conta, err := load(ctx, uc.repo, c, tipo, id)
	if err != nil {
		return nil, err
	}
	p := findParcela(conta.Parcelas, parcelaID)
	if p == nil {
		return nil, domain.ErrNotFound
	}
	now := uc.now()
	b := dfin.Baixa{Status: in.Status, DataPagamento: dateToTime(in.DataPagamento), Estornar: in.Estornar}
	if p.Status, p.DataPagamento, err = b.Aplicar(p.Status, now); err != nil {
		return nil, err
	}
	p.UpdatedAt = now
	if err := uc.repo.UpdateParcela(ctx, p); err != nil {
		return nil, err
	}
	uc.invalidate(ctx, conta.EmpresaID)
	return toParcelaResponse(p), nil
}

// Delete exclui a conta com parcelas e itens.
func (uc *ContaUseCase) Delete(ctx context.Context, c tenant.Caller, tipo, id string) error {
	conta, err := load(ctx, uc.repo, c, tipo, id)
	if err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.invalidate(ctx, conta.EmpresaID)
	return nil
}

func (uc *ContaUseCase) invalidate(ctx context.Context, empresaID string) {
	_ = uc.cache.Invalidate(ctx, ResumoCacheKey(empresaID))
}

// validateRefs confere pessoa e forma de pagamento da mesma empresa.
func (uc *ContaUseCase) validateRefs(ctx context.Context, conta *entity.Conta) error {
	if conta.PessoaID != nil {
		p, err := uc.pessoas.GetByID(ctx, *conta.PessoaID)
		if err != nil {
			return err
		}
		if p == nil || p.EmpresaID != conta.EmpresaID {
			return fmt.Errorf("%w: pessoa inexistente", domain.ErrInvalidInput)
		}
	}
	if conta.FormaPagamentoID != nil {
		f, err := uc.formas.GetByID(ctx, *conta.FormaPagamentoID)
		if err != nil {
			return err
		}
		if f == nil || f.EmpresaID != conta.EmpresaID || !f.Ativo {
			return fmt.Errorf("%w: forma de pagamento inexistente ou inativa", domain.ErrInvalidInput)
		}
	}
	return nil
}

// buildItens valida e calcula os itens; quantidade zero vale 1.
func (uc *ContaUseCase) buildItens(ctx context.Context, empresaID, contaID string, in []dto.ContaItemRequest) ([]entity.ContaItem, error) {
	out := make([]entity.ContaItem, 0, len(in))
	for _, it := range in {
		if it.Descricao == "" {
			return nil, domain.ErrInvalidInput
		}
		qtd := it.Quantidade
		if qtd.IsZero() {
			qtd = decimal.NewFromInt(1)
		}
		if qtd.IsNegative() || it.ValorUnitario.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		item := entity.ContaItem{
			ID:              uuid.New().String(),
			ContaID:         contaID,
			Descricao:       it.Descricao,
			ProdutoID:       emptyToNil(it.ProdutoID),
			ProdutoModuloID: emptyToNil(it.ProdutoModuloID),
			Quantidade:      qtd,
			ValorUnitario:   it.ValorUnitario.Round(2),
			ValorTotal:      qtd.Mul(it.ValorUnitario).Round(2),
		}
		if item.ProdutoModuloID != nil && item.ProdutoID == nil {
			return nil, domain.ErrInvalidInput
		}
		if item.ProdutoID != nil {
			p, err := uc.produtos.GetByID(ctx, *item.ProdutoID)
			if err != nil {
				return nil, err
			}
			if p == nil || p.EmpresaID != empresaID {
				return nil, fmt.Errorf("%w: produto inexistente", domain.ErrInvalidInput)
			}
			if item.ProdutoModuloID != nil && !hasModulo(p, *item.ProdutoModuloID) {
				return nil, fmt.Errorf("%w: módulo não pertence ao produto", domain.ErrInvalidInput)
			}
		}
		out = append(out, item)
	}
	return out, nil
}

// load busca a conta e confere tipo e empresa; fora disso responde ErrNotFound.
func load(ctx context.Context, repo repository.ContaRepository, c tenant.Caller, tipo, id string) (*entity.Conta, error) {
	conta, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if conta == nil || conta.Tipo != tipo || !tenant.CanAccess(c, conta.EmpresaID) {
		return nil, domain.ErrNotFound
	}
	return conta, nil
}

// applyParcelas aplica as alterações pedidas e devolve as parcelas tocadas.
func applyParcelas(conta *entity.Conta, in []dto.UpdateParcelaRequest, now time.Time) ([]*entity.Parcela, error) {
	var alteradas []*entity.Parcela
	for _, pu := range in {
		p := findParcela(conta.Parcelas, pu.ID)
		if p == nil {
			return nil, fmt.Errorf("%w: parcela %s não pertence à conta", domain.ErrInvalidInput, pu.ID)
		}
		if pu.Valor != nil {
			valor := pu.Valor.Round(2)
			if !valor.IsPositive() {
				return nil, dfin.ErrValorInvalido
			}
			p.Valor = valor
		}
		if pu.DataVencimento != nil && !pu.DataVencimento.IsZero() {
			p.DataVencimento = pu.DataVencimento.Time
		}
		if pu.Observacoes != nil {
			p.Observacoes = *pu.Observacoes
		}
		if pu.Status != nil {
			var err error
			b := dfin.Baixa{Status: *pu.Status, DataPagamento: dateToTime(pu.DataPagamento), Estornar: pu.Estornar}
			if p.Status, p.DataPagamento, err = b.Aplicar(p.Status, now); err != nil {
				return nil, err
			}
		}
		p.UpdatedAt = now
		alteradas = append(alteradas, p)
	}
	return alteradas, nil
}

func findParcela(ps []entity.Parcela, id string) *entity.Parcela {
	for i := range ps {
		if ps[i].ID == id {
			return &ps[i]
		}
	}
	return nil
}

func somaParcelas(ps []entity.Parcela) decimal.Decimal {
	vals := make([]decimal.Decimal, 0, len(ps))
	for _, p := range ps {
		vals = append(vals, p.Valor)
	}
	return dfin.Soma(vals)
}

// ParcelasOuImplicita devolve as parcelas persistidas ou, sem parcelamento,
// a parcela única implícita que espelha a conta.
func ParcelasOuImplicita(conta *entity.Conta) []entity.Parcela {
	if len(conta.Parcelas) > 0 {
		return conta.Parcelas
	}
	return []entity.Parcela{{
		ContaID:        conta.ID,
		Numero:         1,
		Valor:          conta.Valor,
		DataVencimento: conta.DataVencimento,
		DataPagamento:  conta.DataPagamento,
		Status:         conta.Status,
		Implicita:      true,
	}}
}

// ToContaResponse converte a conta para a saída.
func ToContaResponse(conta *entity.Conta) *dto.ContaResponse {
	out := &dto.ContaResponse{
		ID:               conta.ID,
		EmpresaID:        conta.EmpresaID,
		Tipo:             conta.Tipo,
		PessoaID:         conta.PessoaID,
		AfiliadoID:       conta.AfiliadoID,
		Descricao:        conta.Descricao,
		Valor:            conta.Valor,
		DataVencimento:   dto.NewDate(conta.DataVencimento),
		DataPagamento:    dto.DatePtr(conta.DataPagamento),
		Status:           conta.Status,
		FormaPagamentoID: conta.FormaPagamentoID,
		NumeroParcelas:   conta.NumeroParcelas,
		IntervaloDias:    conta.IntervaloDias,
		Observacoes:      conta.Observacoes,
		Itens:            make([]dto.ContaItemResponse, 0, len(conta.Itens)),
		CreatedAt:        conta.CreatedAt,
		UpdatedAt:        conta.UpdatedAt,
	}
	for _, p := range ParcelasOuImplicita(conta) {
		out.Parcelas = append(out.Parcelas, *toParcelaResponse(&p))
	}
	for _, it := range conta.Itens {
		out.Itens = append(out.Itens, dto.ContaItemResponse{
			ID:              it.ID,
			Descricao:       it.Descricao,
			ProdutoID:       it.ProdutoID,
			ProdutoModuloID: it.ProdutoModuloID,
			Quantidade:      it.Quantidade,
			ValorUnitario:   it.ValorUnitario,
			ValorTotal:      it.ValorTotal,
		})
	}
	return out
}

func toParcelaResponse(p *entity.Parcela) *dto.ParcelaResponse {
	return &dto.ParcelaResponse{
		ID:             p.ID,
		Numero:         p.Numero,
		Valor:          p.Valor,
		DataVencimento: dto.NewDate(p.DataVencimento),
		DataPagamento:  dto.DatePtr(p.DataPagamento),
		Status:         p.Status,
		Observacoes:    p.Observacoes,
		Implicita:      p.Implicita,
	}
}
