// Package financeiro contém as regras puras de parcelamento e baixa de contas.
package financeiro

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/BusinessHub-api/internal/domain"
)

const (
	// MaxParcelas limita o parcelamento (30 anos mensais).
	MaxParcelas = 360
	// IntervaloPadrao em dias quando o intervalo não é informado.
	IntervaloPadrao = 30
)

var (
	ErrValorInvalido    = fmt.Errorf("%w: o valor total deve ser maior que zero", domain.ErrInvalidInput)
	ErrParcelasExcedido = fmt.Errorf("%w: número de parcelas acima de %d", domain.ErrInvalidInput, MaxParcelas)
	ErrParcelaSemValor  = fmt.Errorf("%w: valor total menor que um centavo por parcela", domain.ErrInvalidInput)
)

// Parcela resultado do parcelamento, ainda sem ID nem conta.
type Parcela struct {
	Numero         int
	Valor          decimal.Decimal
	DataVencimento time.Time
}

// GerarParcelas divide total em n parcelas com vencimentos a cada intervaloDias.
// Cada parcela recebe total/n truncado em centavos; a última absorve o resto,
// de modo que a soma é sempre igual a total. Com n <= 1 devolve uma parcela única
// com o mesmo valor e vencimento. total é arredondado em centavos; se não cobre
// um centavo por parcela, devolve ErrParcelaSemValor.
func GerarParcelas(total decimal.Decimal, vencimento time.Time, n, intervaloDias int) ([]Parcela, error) {
	total = total.Round(2)
	if !total.IsPositive() {
		return nil, ErrValorInvalido
	}
	if n > MaxParcelas {
		return nil, ErrParcelasExcedido
	}
	if n <= 1 {
		return []Parcela{{Numero: 1, Valor: total, DataVencimento: vencimento}}, nil
	}
	if intervaloDias <= 0 {
		intervaloDias = IntervaloPadrao
	}

	base := total.Div(decimal.NewFromInt(int64(n))).RoundDown(2)
	if base.IsZero() {
		return nil, ErrParcelaSemValor
	}
	ultima := total.Sub(base.Mul(decimal.NewFromInt(int64(n - 1))))

	out := make([]Parcela, n)
	for k := 0; k < n; k++ {
		valor := base
		if k == n-1 {
			valor = ultima
		}
		out[k] = Parcela{
			Numero:         k + 1,
			Valor:          valor,
			DataVencimento: vencimento.AddDate(0, 0, k*intervaloDias),
		}
	}
	return out, nil
}

// Soma devolve a soma dos valores das parcelas.
func Soma(valores []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range valores {
		total = total.Add(v)
	}
	return total
}

// Comissao calcula valorBase * percentual / 100 arredondado em centavos.
func Comissao(valorBase, percentual decimal.Decimal) decimal.Decimal {
	return valorBase.Mul(percentual).Div(decimal.NewFromInt(100)).Round(2)
}
