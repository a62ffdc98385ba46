package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ContaItemRequest linha de detalhe da conta.
type ContaItemRequest struct {
	Descricao       string          `json:"descricao" validate:"required,min=1,max=300"`
	ProdutoID       *string         `json:"produtoId" validate:"omitempty,uuid"`
	ProdutoModuloID *string         `json:"produtoModuloId" validate:"omitempty,uuid"`
	Quantidade      decimal.Decimal `json:"quantidade"`
	ValorUnitario   decimal.Decimal `json:"valorUnitario"`
}

// CreateContaRequest entrada para criar conta a pagar/receber (o tipo vem da rota).
// NumeroParcelas <= 1 não gera parcelas persistidas.
type CreateContaRequest struct {
	EmpresaID        string             `json:"empresaId" validate:"omitempty,uuid"`
	PessoaID         *string            `json:"pessoaId" validate:"omitempty,uuid"`
	Descricao        string             `json:"descricao" validate:"required,min=1,max=300"`
	Valor            decimal.Decimal    `json:"valor"`
	DataVencimento   Date               `json:"dataVencimento"`
	FormaPagamentoID *string            `json:"formaPagamentoId" validate:"omitempty,uuid"`
	NumeroParcelas   int                `json:"numeroParcelas" validate:"min=0,max=360"`
	IntervaloDias    int                `json:"intervaloDias" validate:"min=0,max=366"`
	Observacoes      string             `json:"observacoes"`
	Itens            []ContaItemRequest `json:"itens" validate:"omitempty,dive"`
}

// UpdateParcelaRequest alteração parcial de uma parcela dentro do PUT da conta.
type UpdateParcelaRequest struct {
	ID             string           `json:"id" validate:"required,uuid"`
	Valor          *decimal.Decimal `json:"valor"`
	DataVencimento *Date            `json:"dataVencimento"`
	Status         *string          `json:"status" validate:"omitempty,oneof=pendente pago cancelado"`
	DataPagamento  *Date            `json:"dataPagamento"`
	Observacoes    *string          `json:"observacoes"`
	Estornar       bool             `json:"estornar"`
}

// UpdateContaRequest atualização parcial do cabeçalho e de quaisquer parcelas.
// Número de parcelas e intervalo não são editáveis. Itens nulo mantém os itens; lista substitui.
type UpdateContaRequest struct {
	PessoaID         *string                `json:"pessoaId" validate:"omitempty,uuid"`
	Descricao        *string                `json:"descricao" validate:"omitempty,min=1,max=300"`
	Valor            *decimal.Decimal       `json:"valor"`
	DataVencimento   *Date                  `json:"dataVencimento"`
	Status           *string                `json:"status" validate:"omitempty,oneof=pendente pago cancelado"`
	DataPagamento    *Date                  `json:"dataPagamento"`
	Estornar         bool                   `json:"estornar"`
	FormaPagamentoID *string                `json:"formaPagamentoId" validate:"omitempty,uuid"`
	Observacoes      *string                `json:"observacoes"`
	Parcelas         []UpdateParcelaRequest `json:"parcelas" validate:"omitempty,dive"`
	Itens            *[]ContaItemRequest    `json:"itens"`
}

// StatusRequest mudança explícita de status de conta ou parcela.
type StatusRequest struct {
	Status        string `json:"status" validate:"required,oneof=pendente pago cancelado"`
	DataPagamento *Date  `json:"dataPagamento"`
	Estornar      bool   `json:"estornar"`
}

// ParcelaResponse parcela na saída. Implicita marca a parcela única não persistida.
type ParcelaResponse struct {
	ID             string          `json:"id,omitempty"`
	Numero         int             `json:"numero"`
	Valor          decimal.Decimal `json:"valor"`
	DataVencimento Date            `json:"dataVencimento"`
	DataPagamento  *Date           `json:"dataPagamento,omitempty"`
	Status         string          `json:"status"`
	Observacoes    string          `json:"observacoes,omitempty"`
	Implicita      bool            `json:"implicita,omitempty"`
}

// ContaItemResponse linha de detalhe na saída.
type ContaItemResponse struct {
	ID              string          `json:"id"`
	Descricao       string          `json:"descricao"`
	ProdutoID       *string         `json:"produtoId,omitempty"`
	ProdutoModuloID *string         `json:"produtoModuloId,omitempty"`
	Quantidade      decimal.Decimal `json:"quantidade"`
	ValorUnitario   decimal.Decimal `json:"valorUnitario"`
	ValorTotal      decimal.Decimal `json:"valorTotal"`
}

// ContaResponse saída de uma conta com parcelas e itens.
type ContaResponse struct {
	ID               string              `json:"id"`
	EmpresaID        string              `json:"empresaId"`
	Tipo             string              `json:"tipo"`
	PessoaID         *string             `json:"pessoaId,omitempty"`
	AfiliadoID       *string             `json:"afiliadoId,omitempty"`
	Descricao        string              `json:"descricao"`
	Valor            decimal.Decimal     `json:"valor"`
	DataVencimento   Date                `json:"dataVencimento"`
	DataPagamento    *Date               `json:"dataPagamento,omitempty"`
	Status           string              `json:"status"`
	FormaPagamentoID *string             `json:"formaPagamentoId,omitempty"`
	NumeroParcelas   int                 `json:"numeroParcelas"`
	IntervaloDias    int                 `json:"intervaloDias"`
	Observacoes      string              `json:"observacoes,omitempty"`
	Parcelas         []ParcelaResponse   `json:"parcelas"`
	Itens            []ContaItemResponse `json:"itens"`
	CreatedAt        time.Time           `json:"createdAt"`
	UpdatedAt        time.Time           `json:"updatedAt"`
}

// ContaFilterRequest filtros de query da listagem de contas.
type ContaFilterRequest struct {
	Status        string `query:"status" validate:"omitempty,oneof=pendente pago cancelado"`
	PessoaID      string `query:"pessoaId" validate:"omitempty,uuid"`
	VencimentoDe  string `query:"vencimentoDe"`
	VencimentoAte string `query:"vencimentoAte"`
}

// ResumoTipoResponse totais de um tipo de conta.
type ResumoTipoResponse struct {
	Pendente    decimal.Decimal `json:"pendente"`
	QtdPendente int             `json:"qtdPendente"`
	Vencido     decimal.Decimal `json:"vencido"`
	QtdVencido  int             `json:"qtdVencido"`
	Pago        decimal.Decimal `json:"pago"`
	QtdPago     int             `json:"qtdPago"`
}

// ResumoFinanceiroResponse painel financeiro da empresa.
// Saldo previsto = receber pendente - pagar pendente.
type ResumoFinanceiroResponse struct {
	EmpresaID     string             `json:"empresaId"`
	Pagar         ResumoTipoResponse `json:"pagar"`
	Receber       ResumoTipoResponse `json:"receber"`
	SaldoPrevisto decimal.Decimal    `json:"saldoPrevisto"`
	GeradoEm      time.Time          `json:"geradoEm"`
}
