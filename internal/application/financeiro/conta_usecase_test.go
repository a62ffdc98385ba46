package financeiro_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/BusinessHub-api/internal/application/dto"
	"github.com/jhoicas/BusinessHub-api/internal/application/financeiro"
	"github.com/jhoicas/BusinessHub-api/internal/application/tenant"
	"github.com/jhoicas/BusinessHub-api/internal/domain"
	"github.com/jhoicas/BusinessHub-api/internal/domain/entity"
	dfin "github.com/jhoicas/BusinessHub-api/internal/domain/financeiro"
)

const (
	empA = "empresa-a"
	empB = "empresa-b"
)

var (
	userA   = tenant.Caller{UserID: "u-a", EmpresaID: empA, Role: entity.RoleUser}
	userB   = tenant.Caller{UserID: "u-b", EmpresaID: empB, Role: entity.RoleUser}
	globalB = tenant.Caller{UserID: "g-b", EmpresaID: empB, Role: entity.RoleAdmin, GlobalAdmin: true}
)

type env struct {
	repo   *fakeContaRepo
	cache  *fakeCache
	contas *financeiro.ContaUseCase
	resumo *financeiro.ResumoUseCase
}

func newEnv() *env {
	repo := newFakeContaRepo()
	cache := newFakeCache()
	pessoas := &fakePessoaRepo{pessoas: map[string]*entity.Pessoa{
		"cli-a": {ID: "cli-a", EmpresaID: empA, Tipo: entity.PessoaCliente},
		"for-a": {ID: "for-a", EmpresaID: empA, Tipo: entity.PessoaFornecedor},
		"cli-b": {ID: "cli-b", EmpresaID: empB, Tipo: entity.PessoaCliente},
	}}
	formas := &fakeLookupRepo{itens: map[string]*entity.Lookup{
		"pix-a":    {ID: "pix-a", EmpresaID: empA, Nome: "PIX", Ativo: true},
		"boleto-a": {ID: "boleto-a", EmpresaID: empA, Nome: "Boleto", Ativo: false},
		"cartao-b": {ID: "cartao-b", EmpresaID: empB, Nome: "Cartão", Ativo: true},
	}}
	produtos := &fakeProdutoRepo{produtos: map[string]*entity.Produto{
		"erp-a": {ID: "erp-a", EmpresaID: empA, Modulos: []entity.ProdutoModulo{{ID: "fiscal-a", ProdutoID: "erp-a"}}},
		"erp-b": {ID: "erp-b", EmpresaID: empB},
	}}
	return &env{
		repo:   repo,
		cache:  cache,
		contas: financeiro.NewContaUseCase(fakeTx{repo: repo}, repo, pessoas, formas, produtos, cache),
		resumo: financeiro.NewResumoUseCase(repo, cache),
	}
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func day(y int, m time.Month, d int) dto.Date {
	return dto.Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func ptr[T any](v T) *T { return &v }

func (e *env) criar(t *testing.T, tipo string, total string, n int) *dto.ContaResponse {
	t.Helper()
	out, err := e.contas.Create(context.Background(), userA, tipo, dto.CreateContaRequest{
		PessoaID:       ptr("cli-a"),
		Descricao:      "Implantação ERP",
		Valor:          dec(total),
		DataVencimento: day(2024, 1, 10),
		NumeroParcelas: n,
		IntervaloDias:  30,
	})
	require.NoError(t, err)
	return out
}

// ── Create ────────────────────────────────────────────────────────────────────

func TestCreate_GeraParcelas(t *testing.T) {
	e := newEnv()
	out := e.criar(t, entity.ContaReceber, "300.00", 3)

	assert.Equal(t, entity.ContaReceber, out.Tipo)
	assert.Equal(t, entity.StatusPendente, out.Status)
	assert.Equal(t, 3, out.NumeroParcelas)
	require.Len(t, out.Parcelas, 3)
	assert.Equal(t, "2024-01-10", out.Parcelas[0].DataVencimento.Format(dto.DateLayout))
	assert.Equal(t, "2024-02-09", out.Parcelas[1].DataVencimento.Format(dto.DateLayout))
	assert.Equal(t, "2024-03-10", out.Parcelas[2].DataVencimento.Format(dto.DateLayout))
	for _, p := range out.Parcelas {
		assert.Equal(t, "100.00", p.Valor.StringFixed(2))
		assert.False(t, p.Implicita)
		assert.NotEmpty(t, p.ID)
	}

	stored, _ := e.repo.GetByID(context.Background(), out.ID)
	require.Len(t, stored.Parcelas, 3, "parcelas persistidas")
	assert.Contains(t, e.cache.invalidated, financeiro.ResumoCacheKey(empA))
}

func TestCreate_ParcelaUnicaImplicita(t *testing.T) {
	e := newEnv()
	for _, n := range []int{0, 1} {
		out := e.criar(t, entity.ContaPagar, "250.40", n)

		assert.Equal(t, 1, out.NumeroParcelas)
		require.Len(t, out.Parcelas, 1)
		p := out.Parcelas[0]
		assert.True(t, p.Implicita)
		assert.Empty(t, p.ID)
		assert.Equal(t, 1, p.Numero)
		assert.True(t, p.Valor.Equal(out.Valor))
		assert.Equal(t, out.DataVencimento, p.DataVencimento)

		stored, _ := e.repo.GetByID(context.Background(), out.ID)
		assert.Empty(t, stored.Parcelas, "parcela implícita não é persistida")
	}
}

func TestCreate_Validacoes(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	base := dto.CreateContaRequest{
		PessoaID:       ptr("cli-a"),
		Descricao:      "x",
		Valor:          dec("10"),
		DataVencimento: day(2024, 1, 1),
	}

	cases := map[string]func(r *dto.CreateContaRequest){
		"valor zero":              func(r *dto.CreateContaRequest) { r.Valor = decimal.Zero },
		"valor abaixo de centavo": func(r *dto.CreateContaRequest) { r.Valor = dec("0.001") },
		"centavo por parcela": func(r *dto.CreateContaRequest) {
			r.Valor = dec("0.05")
			r.NumeroParcelas = 10
		},
		"sem vencimento":         func(r *dto.CreateContaRequest) { r.DataVencimento = dto.Date{} },
		"sem pessoa":             func(r *dto.CreateContaRequest) { r.PessoaID = nil },
		"pessoa de outra":        func(r *dto.CreateContaRequest) { r.PessoaID = ptr("cli-b") },
		"forma inativa":          func(r *dto.CreateContaRequest) { r.FormaPagamentoID = ptr("boleto-a") },
		"forma de outra":         func(r *dto.CreateContaRequest) { r.FormaPagamentoID = ptr("cartao-b") },
		"parcelas acima do teto": func(r *dto.CreateContaRequest) { r.NumeroParcelas = 361 },
		"produto de outra": func(r *dto.CreateContaRequest) {
			r.Itens = []dto.ContaItemRequest{{Descricao: "licença", ProdutoID: ptr("erp-b"), ValorUnitario: dec("1")}}
		},
		"módulo fora do produto": func(r *dto.CreateContaRequest) {
			r.Itens = []dto.ContaItemRequest{{Descricao: "licença", ProdutoID: ptr("erp-a"), ProdutoModuloID: ptr("x"), ValorUnitario: dec("1")}}
		},
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			req := base
			mutate(&req)
			_, err := e.contas.Create(ctx, userA, entity.ContaReceber, req)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestCreate_Itens(t *testing.T) {
	e := newEnv()
	out, err := e.contas.Create(context.Background(), userA, entity.ContaReceber, dto.CreateContaRequest{
		PessoaID:       ptr("cli-a"),
		Descricao:      "Venda",
		Valor:          dec("150"),
		DataVencimento: day(2024, 6, 1),
		Itens: []dto.ContaItemRequest{
			{Descricao: "ERP", ProdutoID: ptr("erp-a"), Quantidade: dec("2"), ValorUnitario: dec("50")},
			{Descricao: "Fiscal", ProdutoID: ptr("erp-a"), ProdutoModuloID: ptr("fiscal-a"), ValorUnitario: dec("50")},
		},
	})
	require.NoError(t, err)
	require.Len(t, out.Itens, 2)
	assert.Equal(t, "100.00", out.Itens[0].ValorTotal.StringFixed(2))
	assert.Equal(t, "1", out.Itens[1].Quantidade.String(), "quantidade padrão")
}

func TestCreate_EmpresaEstrangeira(t *testing.T) {
	e := newEnv()
	_, err := e.contas.Create(context.Background(), userA, entity.ContaReceber, dto.CreateContaRequest{
		EmpresaID: empB, PessoaID: ptr("cli-b"), Descricao: "x", Valor: dec("1"), DataVencimento: day(2024, 1, 1),
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ── Status ────────────────────────────────────────────────────────────────────

func TestUpdateParcelaStatus_NaoTocaContaNemIrmas(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	conta := e.criar(t, entity.ContaReceber, "100.00", 3)
	alvo := conta.Parcelas[1]

	got, err := e.contas.UpdateParcelaStatus(ctx, userA, entity.ContaReceber, conta.ID, alvo.ID, dto.StatusRequest{Status: entity.StatusPago})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPago, got.Status)
	require.NotNil(t, got.DataPagamento)

	after, err := e.contas.GetByID(ctx, userA, entity.ContaReceber, conta.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPendente, after.Status, "status da conta não é recalculado")
	assert.Nil(t, after.DataPagamento)
	assert.Equal(t, entity.StatusPendente, after.Parcelas[0].Status)
	assert.Equal(t, entity.StatusPago, after.Parcelas[1].Status)
	assert.Equal(t, entity.StatusPendente, after.Parcelas[2].Status)
}

func TestUpdateParcelaStatus_EstornoExigido(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	conta := e.criar(t, entity.ContaReceber, "100.00", 2)
	pid := conta.Parcelas[0].ID
	pagoEm := day(2024, 1, 5)

	got, err := e.contas.UpdateParcelaStatus(ctx, userA, entity.ContaReceber, conta.ID, pid, dto.StatusRequest{Status: entity.StatusPago, DataPagamento: &pagoEm})
	require.NoError(t, err)
	assert.Equal(t, "2024-01-05", got.DataPagamento.Format(dto.DateLayout))

	_, err = e.contas.UpdateParcelaStatus(ctx, userA, entity.ContaReceber, conta.ID, pid, dto.StatusRequest{Status: entity.StatusPendente})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	got, err = e.contas.UpdateParcelaStatus(ctx, userA, entity.ContaReceber, conta.ID, pid, dto.StatusRequest{Status: entity.StatusPendente, Estornar: true})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPendente, got.Status)
	assert.Nil(t, got.DataPagamento)
}

func TestUpdateParcelaStatus_ParcelaDeOutraConta(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	c1 := e.criar(t, entity.ContaReceber, "100.00", 2)
	c2 := e.criar(t, entity.ContaReceber, "100.00", 2)

	_, err := e.contas.UpdateParcelaStatus(ctx, userA, entity.ContaReceber, c1.ID, c2.Parcelas[0].ID, dto.StatusRequest{Status: entity.StatusPago})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateStatus_NaoTocaParcelas(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	conta := e.criar(t, entity.ContaPagar, "90.00", 3)

	got, err := e.contas.UpdateStatus(ctx, userA, entity.ContaPagar, conta.ID, dto.StatusRequest{Status: entity.StatusPago})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPago, got.Status)
	require.NotNil(t, got.DataPagamento)
	for _, p := range got.Parcelas {
		assert.Equal(t, entity.StatusPendente, p.Status)
	}

	_, err = e.contas.UpdateStatus(ctx, userA, entity.ContaPagar, conta.ID, dto.StatusRequest{Status: entity.StatusCancelado})
	assert.ErrorIs(t, err, dfin.ErrEstornoNegado, "cancelar o que está pago sem estorno")

	got, err = e.contas.UpdateStatus(ctx, userA, entity.ContaPagar, conta.ID, dto.StatusRequest{Status: entity.StatusCancelado, Estornar: true})
	require.NoError(t, err)
	assert.Nil(t, got.DataPagamento, "status diferente de pago limpa a data")

	// estornada, a conta volta a pendente sem nova exigência
	got, err = e.contas.UpdateStatus(ctx, userA, entity.ContaPagar, conta.ID, dto.StatusRequest{Status: entity.StatusPendente})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPendente, got.Status)
}

// ── Update ────────────────────────────────────────────────────────────────────

func TestUpdate_RedistribuiParcelas(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	conta := e.criar(t, entity.ContaReceber, "100.00", 3)

	got, err := e.contas.Update(ctx, userA, entity.ContaReceber, conta.ID, dto.UpdateContaRequest{
		Descricao: ptr("Implantação ERP (renegociada)"),
		Parcelas: []dto.UpdateParcelaRequest{
			{ID: conta.Parcelas[0].ID, Valor: ptr(dec("50.00"))},
			{ID: conta.Parcelas[1].ID, Valor: ptr(dec("25.00")), Observacoes: ptr("acordo")},
			{ID: conta.Parcelas[2].ID, Valor: ptr(dec("25.00")), Status: ptr(entity.StatusCancelado)},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Implantação ERP (renegociada)", got.Descricao)
	assert.Equal(t, "50.00", got.Parcelas[0].Valor.StringFixed(2))
	assert.Equal(t, "acordo", got.Parcelas[1].Observacoes)
	assert.Equal(t, entity.StatusCancelado, got.Parcelas[2].Status)
	assert.Equal(t, 3, got.NumeroParcelas)
}

func TestUpdate_SomaDivergenteRejeitada(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	conta := e.criar(t, entity.ContaReceber, "100.00", 3)

	_, err := e.contas.Update(ctx, userA, entity.ContaReceber, conta.ID, dto.UpdateContaRequest{
		Descricao: ptr("não deve persistir"),
		Parcelas:  []dto.UpdateParcelaRequest{{ID: conta.Parcelas[0].ID, Valor: ptr(dec("40.00"))}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = e.contas.Update(ctx, userA, entity.ContaReceber, conta.ID, dto.UpdateContaRequest{Valor: ptr(dec("120.00"))})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "valor da conta sem ajustar parcelas")

	after, err := e.contas.GetByID(ctx, userA, entity.ContaReceber, conta.ID)
	require.NoError(t, err)
	assert.Equal(t, "Implantação ERP", after.Descricao, "transação desfeita")
	assert.Equal(t, "33.33", after.Parcelas[0].Valor.StringFixed(2))
	assert.Equal(t, "100.00", after.Valor.StringFixed(2))
}

func TestUpdate_ValorComParcelasAjustadas(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	conta := e.criar(t, entity.ContaReceber, "100.00", 2)

	got, err := e.contas.Update(ctx, userA, entity.ContaReceber, conta.ID, dto.UpdateContaRequest{
		Valor: ptr(dec("120.00")),
		Parcelas: []dto.UpdateParcelaRequest{
			{ID: conta.Parcelas[0].ID, Valor: ptr(dec("60.00"))},
			{ID: conta.Parcelas[1].ID, Valor: ptr(dec("60.00"))},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "120.00", got.Valor.StringFixed(2))
}

func TestUpdate_ParcelasEmContaSemParcelamento(t *testing.T) {
	e := newEnv()
	conta := e.criar(t, entity.ContaReceber, "100.00", 1)

	_, err := e.contas.Update(context.Background(), userA, entity.ContaReceber, conta.ID, dto.UpdateContaRequest{
		Parcelas: []dto.UpdateParcelaRequest{{ID: "qualquer", Valor: ptr(dec("100"))}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdate_ContaSemParcelasMudaValor(t *testing.T) {
	e := newEnv()
	conta := e.criar(t, entity.ContaReceber, "100.00", 1)

	got, err := e.contas.Update(context.Background(), userA, entity.ContaReceber, conta.ID, dto.UpdateContaRequest{Valor: ptr(dec("80"))})
	require.NoError(t, err)
	assert.Equal(t, "80.00", got.Valor.StringFixed(2))
	assert.Equal(t, "80.00", got.Parcelas[0].Valor.StringFixed(2), "parcela implícita acompanha a conta")
}

func TestUpdate_SubstituiItens(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	conta := e.criar(t, entity.ContaReceber, "100.00", 1)

	got, err := e.contas.Update(ctx, userA, entity.ContaReceber, conta.ID, dto.UpdateContaRequest{
		Itens: &[]dto.ContaItemRequest{{Descricao: "Consultoria", Quantidade: dec("4"), ValorUnitario: dec("25")}},
	})
	require.NoError(t, err)
	require.Len(t, got.Itens, 1)
	assert.Equal(t, "100.00", got.Itens[0].ValorTotal.StringFixed(2))

	got, err = e.contas.Update(ctx, userA, entity.ContaReceber, conta.ID, dto.UpdateContaRequest{Descricao: ptr("y")})
	require.NoError(t, err)
	assert.Len(t, got.Itens, 1, "itens nulos mantêm os atuais")
}

// ── Isolamento ────────────────────────────────────────────────────────────────

func TestTenant_OutraEmpresaNaoEnxerga(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	conta := e.criar(t, entity.ContaReceber, "100.00", 2)

	_, err := e.contas.GetByID(ctx, userB, entity.ContaReceber, conta.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = e.contas.List(ctx, userB, entity.ContaReceber, empA, dto.PageRequest{}, "", dto.ContaFilterRequest{})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	list, err := e.contas.List(ctx, userB, entity.ContaReceber, "", dto.PageRequest{}, "", dto.ContaFilterRequest{})
	require.NoError(t, err)
	assert.Empty(t, list.Items)

	list, err = e.contas.List(ctx, globalB, entity.ContaReceber, empA, dto.PageRequest{}, "", dto.ContaFilterRequest{})
	require.NoError(t, err)
	assert.Len(t, list.Items, 1, "admin global escolhe a empresa")

	err = e.contas.Delete(ctx, userB, entity.ContaReceber, conta.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTipoDaRota(t *testing.T) {
	e := newEnv()
	conta := e.criar(t, entity.ContaReceber, "100.00", 1)

	_, err := e.contas.GetByID(context.Background(), userA, entity.ContaPagar, conta.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ── Resumo ────────────────────────────────────────────────────────────────────

func TestResumo_CacheEInvalidacao(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	conta := e.criar(t, entity.ContaReceber, "100.00", 2) // vencimentos no passado
	e.criar(t, entity.ContaPagar, "40.00", 1)

	r, err := e.resumo.Get(ctx, userA, "")
	require.NoError(t, err)
	assert.Equal(t, "100.00", r.Receber.Pendente.StringFixed(2))
	assert.Equal(t, 2, r.Receber.QtdVencido)
	assert.Equal(t, "40.00", r.Pagar.Pendente.StringFixed(2))
	assert.Equal(t, "60.00", r.SaldoPrevisto.StringFixed(2))

	_, err = e.resumo.Get(ctx, userA, "")
	require.NoError(t, err)
	assert.Equal(t, 1, e.cache.loads, "segunda leitura vem do cache")

	_, err = e.contas.UpdateParcelaStatus(ctx, userA, entity.ContaReceber, conta.ID, conta.Parcelas[0].ID, dto.StatusRequest{Status: entity.StatusPago})
	require.NoError(t, err)

	r, err = e.resumo.Get(ctx, userA, "")
	require.NoError(t, err)
	assert.Equal(t, 2, e.cache.loads)
	assert.Equal(t, "50.00", r.Receber.Pago.StringFixed(2))
	assert.Equal(t, "50.00", r.Receber.Pendente.StringFixed(2))
}
