package pdf

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/BusinessHub-api/internal/application/financeiro"
	"github.com/jhoicas/BusinessHub-api/internal/domain/entity"
)

func TestFormatBRL(t *testing.T) {
	cases := map[string]string{
		"0":        "R$ 0,00",
		"33.33":    "R$ 33,33",
		"1234.5":   "R$ 1.234,50",
		"98765.43": "R$ 98.765,43",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatBRL(decimal.RequireFromString(in)), in)
	}
}

func TestFormatDocumento(t *testing.T) {
	assert.Equal(t, "123.456.789-09", formatDocumento("12345678909"))
	assert.Equal(t, "12.345.678/0001-95", formatDocumento("12345678000195"))
	assert.Equal(t, "123", formatDocumento("123"))
}

func TestTotais_IgnoraCanceladas(t *testing.T) {
	pago, aberto := Totais([]entity.Parcela{
		{Valor: decimal.NewFromInt(100), Status: entity.StatusPago},
		{Valor: decimal.NewFromInt(50), Status: entity.StatusPendente},
		{Valor: decimal.NewFromInt(70), Status: entity.StatusCancelado},
	})
	assert.True(t, pago.Equal(decimal.NewFromInt(100)))
	assert.True(t, aberto.Equal(decimal.NewFromInt(50)))
}

func TestGenerateExtrato(t *testing.T) {
	venc := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	pago := venc.AddDate(0, 0, -1)
	conta := &entity.Conta{
		ID: "c1", Tipo: entity.ContaReceber, Descricao: "Implantação ERP",
		Valor: decimal.RequireFromString("300.00"), DataVencimento: venc,
		Status: entity.StatusPendente, NumeroParcelas: 2,
		Itens: []entity.ContaItem{{
			Descricao: "Licença", Quantidade: decimal.NewFromInt(1),
			ValorUnitario: decimal.RequireFromString("300.00"), ValorTotal: decimal.RequireFromString("300.00"),
		}},
	}
	data := financeiro.ExtratoData{
		Empresa: &entity.Empresa{Nome: "Acme Ltda", CNPJ: "12345678000195"},
		Conta:   conta,
		Parcelas: []entity.Parcela{
			{Numero: 1, Valor: decimal.RequireFromString("150.00"), DataVencimento: venc, Status: entity.StatusPago, DataPagamento: &pago},
			{Numero: 2, Valor: decimal.RequireFromString("150.00"), DataVencimento: venc.AddDate(0, 1, 0), Status: entity.StatusPendente},
		},
		Pessoa:         &entity.Pessoa{Tipo: entity.PessoaCliente, Nome: "João da Conceição", Documento: "12345678909"},
		FormaPagamento: "Boleto",
		GeradoEm:       venc,
	}

	out, err := NewMarotoExtratoGenerator().GenerateExtrato(context.Background(), data)
	require.NoError(t, err)
	require.Greater(t, len(out), 4)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestGenerateExtrato_Comissao(t *testing.T) {
	data := financeiro.ExtratoData{
		Empresa: &entity.Empresa{Nome: "Acme"},
		Conta: &entity.Conta{
			Tipo: entity.ContaPagar, Descricao: "Comissão", Valor: decimal.NewFromInt(125),
			DataVencimento: time.Now(), Status: entity.StatusPendente,
		},
		Parcelas: []entity.Parcela{{Numero: 1, Valor: decimal.NewFromInt(125), DataVencimento: time.Now(), Status: entity.StatusPendente, Implicita: true}},
		Afiliado: &entity.Afiliado{Nome: "Parceiro", PercentualComissao: decimal.RequireFromString("12.5")},
		GeradoEm: time.Now(),
	}
	out, err := NewMarotoExtratoGenerator().GenerateExtrato(context.Background(), data)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestGenerateExtrato_SemConta(t *testing.T) {
	_, err := NewMarotoExtratoGenerator().GenerateExtrato(context.Background(), financeiro.ExtratoData{})
	require.Error(t, err)
}
