package financeiro_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/BusinessHub-api/internal/domain"
	"github.com/jhoicas/BusinessHub-api/internal/domain/entity"
	"github.com/jhoicas/BusinessHub-api/internal/domain/financeiro"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ── GerarParcelas ────────────────────────────────────────────────────────────

func TestGerarParcelas_DivisaoExata(t *testing.T) {
	ps, err := financeiro.GerarParcelas(decimal.RequireFromString("300.00"), date(2024, 1, 10), 3, 30)
	require.NoError(t, err)
	require.Len(t, ps, 3)

	want := []struct {
		numero int
		valor  string
		venc   time.Time
	}{
		{1, "100", date(2024, 1, 10)},
		{2, "100", date(2024, 2, 9)},
		{3, "100", date(2024, 3, 10)},
	}
	for i, w := range want {
		assert.Equal(t, w.numero, ps[i].Numero)
		assert.True(t, ps[i].Valor.Equal(decimal.RequireFromString(w.valor)), "parcela %d: %s", w.numero, ps[i].Valor)
		assert.Equal(t, w.venc, ps[i].DataVencimento)
	}
}

func TestGerarParcelas_RestoNaUltima(t *testing.T) {
	ps, err := financeiro.GerarParcelas(decimal.RequireFromString("100.00"), date(2024, 1, 1), 3, 30)
	require.NoError(t, err)
	require.Len(t, ps, 3)

	assert.Equal(t, "33.33", ps[0].Valor.StringFixed(2))
	assert.Equal(t, "33.33", ps[1].Valor.StringFixed(2))
	assert.Equal(t, "33.34", ps[2].Valor.StringFixed(2))
}

func TestGerarParcelas_SomaIgualAoTotal(t *testing.T) {
	totais := []string{"0.01", "0.05", "1.00", "99.99", "100.00", "1234.56", "1000000.01", "7.77"}
	for _, s := range totais {
		total := decimal.RequireFromString(s)
		centavos := total.Shift(2).IntPart()
		for n := 2; n <= 48; n++ {
			ps, err := financeiro.GerarParcelas(total, date(2024, 5, 31), n, 15)
			if int64(n) > centavos {
				assert.ErrorIs(t, err, financeiro.ErrParcelaSemValor, "total=%s n=%d", s, n)
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				continue
			}
			require.NoError(t, err)
			require.Len(t, ps, n)

			vals := make([]decimal.Decimal, 0, n)
			for _, p := range ps {
				assert.True(t, p.Valor.IsPositive(), "total=%s n=%d parcela=%d", s, n, p.Numero)
				vals = append(vals, p.Valor)
			}
			assert.True(t, financeiro.Soma(vals).Equal(total), "total=%s n=%d", s, n)
		}
	}
}

func TestGerarParcelas_ParcelaUnica(t *testing.T) {
	venc := date(2024, 7, 15)
	for _, n := range []int{0, 1, -3} {
		ps, err := financeiro.GerarParcelas(decimal.RequireFromString("250.40"), venc, n, 30)
		require.NoError(t, err)
		require.Len(t, ps, 1)
		assert.Equal(t, 1, ps[0].Numero)
		assert.Equal(t, "250.40", ps[0].Valor.StringFixed(2))
		assert.Equal(t, venc, ps[0].DataVencimento)
	}
}

func TestGerarParcelas_IntervaloPadrao(t *testing.T) {
	ps, err := financeiro.GerarParcelas(decimal.RequireFromString("60"), date(2024, 1, 1), 2, 0)
	require.NoError(t, err)
	assert.Equal(t, date(2024, 1, 31), ps[1].DataVencimento)
}

func TestGerarParcelas_Erros(t *testing.T) {
	_, err := financeiro.GerarParcelas(decimal.Zero, date(2024, 1, 1), 2, 30)
	assert.ErrorIs(t, err, financeiro.ErrValorInvalido)

	_, err = financeiro.GerarParcelas(decimal.RequireFromString("-10"), date(2024, 1, 1), 2, 30)
	assert.ErrorIs(t, err, financeiro.ErrValorInvalido)

	_, err = financeiro.GerarParcelas(decimal.RequireFromString("10"), date(2024, 1, 1), financeiro.MaxParcelas+1, 30)
	assert.ErrorIs(t, err, financeiro.ErrParcelasExcedido)

	// arredonda antes de validar: 0.004 vira 0.00
	_, err = financeiro.GerarParcelas(decimal.RequireFromString("0.004"), date(2024, 1, 1), 2, 30)
	assert.ErrorIs(t, err, financeiro.ErrValorInvalido)

	_, err = financeiro.GerarParcelas(decimal.RequireFromString("0.05"), date(2024, 1, 1), 10, 30)
	assert.ErrorIs(t, err, financeiro.ErrParcelaSemValor)
}

func TestComissao(t *testing.T) {
	got := financeiro.Comissao(decimal.RequireFromString("1000"), decimal.RequireFromString("12.5"))
	assert.Equal(t, "125.00", got.StringFixed(2))

	got = financeiro.Comissao(decimal.RequireFromString("333.33"), decimal.RequireFromString("10"))
	assert.Equal(t, "33.33", got.StringFixed(2))
}

// ── Baixa ────────────────────────────────────────────────────────────────────

func TestBaixa_PagoCarimbaData(t *testing.T) {
	now := date(2024, 3, 1)
	status, pagoEm, err := financeiro.Baixa{Status: entity.StatusPago}.Aplicar(entity.StatusPendente, now)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPago, status)
	require.NotNil(t, pagoEm)
	assert.Equal(t, now, *pagoEm)

	informada := date(2024, 2, 20)
	_, pagoEm, err = financeiro.Baixa{Status: entity.StatusPago, DataPagamento: &informada}.Aplicar(entity.StatusPendente, now)
	require.NoError(t, err)
	assert.Equal(t, informada, *pagoEm)
}

func TestBaixa_OutroStatusLimpaData(t *testing.T) {
	status, pagoEm, err := financeiro.Baixa{Status: entity.StatusCancelado}.Aplicar(entity.StatusPendente, time.Now())
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCancelado, status)
	assert.Nil(t, pagoEm)
}

func TestBaixa_EstornoExigido(t *testing.T) {
	_, _, err := financeiro.Baixa{Status: entity.StatusPendente}.Aplicar(entity.StatusPago, time.Now())
	assert.ErrorIs(t, err, financeiro.ErrEstornoNegado)

	status, pagoEm, err := financeiro.Baixa{Status: entity.StatusPendente, Estornar: true}.Aplicar(entity.StatusPago, time.Now())
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPendente, status)
	assert.Nil(t, pagoEm)
}

func TestBaixa_EstornoExigidoParaCancelarPago(t *testing.T) {
	_, _, err := financeiro.Baixa{Status: entity.StatusCancelado}.Aplicar(entity.StatusPago, time.Now())
	assert.ErrorIs(t, err, financeiro.ErrEstornoNegado)

	status, pagoEm, err := financeiro.Baixa{Status: entity.StatusCancelado, Estornar: true}.Aplicar(entity.StatusPago, time.Now())
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCancelado, status)
	assert.Nil(t, pagoEm)

	// pago -> pago só corrige a data
	informada := date(2024, 4, 2)
	status, pagoEm, err = financeiro.Baixa{Status: entity.StatusPago, DataPagamento: &informada}.Aplicar(entity.StatusPago, time.Now())
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPago, status)
	assert.Equal(t, informada, *pagoEm)
}

func TestBaixa_StatusInvalido(t *testing.T) {
	_, _, err := financeiro.Baixa{Status: "quitado"}.Aplicar(entity.StatusPendente, time.Now())
	assert.ErrorIs(t, err, financeiro.ErrStatusInvalido)
}
