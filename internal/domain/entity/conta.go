package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de Conta.
const (
	ContaPagar   = "pagar"
	ContaReceber = "receber"
)

// Status de Conta e Parcela.
const (
	StatusPendente  = "pendente"
	StatusPago      = "pago"
	StatusCancelado = "cancelado"
)

// Conta representa uma conta a pagar ou a receber (cabeçalho).
// Valor é o total; quando NumeroParcelas > 1 as Parcelas somam exatamente Valor.
type Conta struct {
	ID               string
	EmpresaID        string
	Tipo             string  // pagar, receber
	PessoaID         *string // nulo em comissões de afiliado
	AfiliadoID       *string
	Descricao        string
	Valor            decimal.Decimal
	DataVencimento   time.Time
	DataPagamento    *time.Time
	Status           string
	FormaPagamentoID *string
	NumeroParcelas   int
	IntervaloDias    int
	Observacoes      string
	Parcelas         []Parcela
	Itens            []ContaItem
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Parcela de uma conta. Implicita marca a parcela única não persistida
// que espelha a conta quando não houve parcelamento.
type Parcela struct {
	ID             string
	ContaID        string
	Numero         int
	Valor          decimal.Decimal
	DataVencimento time.Time
	DataPagamento  *time.Time
	Status         string
	Observacoes    string
	Implicita      bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ContaItem é uma linha de detalhe da conta (produto, módulo ou texto livre).
type ContaItem struct {
	ID              string
	ContaID         string
	Descricao       string
	ProdutoID       *string
	ProdutoModuloID *string
	Quantidade      decimal.Decimal
	ValorUnitario   decimal.Decimal
	ValorTotal      decimal.Decimal
}

// ValidTipoConta valida o tipo informado.
func ValidTipoConta(tipo string) bool {
	return tipo == ContaPagar || tipo == ContaReceber
}

// ValidStatusConta valida o status informado (serve para conta e parcela).
func ValidStatusConta(s string) bool {
	switch s {
	case StatusPendente, StatusPago, StatusCancelado:
		return true
	}
	return false
}
