package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateAfiliadoRequest entrada para criar um afiliado.
type CreateAfiliadoRequest struct {
	EmpresaID          string          `json:"empresaId" validate:"omitempty,uuid"`
	Nome               string          `json:"nome" validate:"required,min=1,max=200"`
	Documento          string          `json:"documento" validate:"omitempty,max=20"`
	Email              string          `json:"email" validate:"omitempty,email"`
	Telefone           string          `json:"telefone" validate:"omitempty,max=30"`
	PercentualComissao decimal.Decimal `json:"percentualComissao"`
}

// UpdateAfiliadoRequest entrada para atualizar um afiliado (campos opcionais).
type UpdateAfiliadoRequest struct {
	Nome               *string          `json:"nome" validate:"omitempty,min=1,max=200"`
	Documento          *string          `json:"documento" validate:"omitempty,max=20"`
	Email              *string          `json:"email" validate:"omitempty,email"`
	Telefone           *string          `json:"telefone" validate:"omitempty,max=30"`
	PercentualComissao *decimal.Decimal `json:"percentualComissao"`
	Ativo              *bool            `json:"ativo"`
}

// AfiliadoResponse saída de um afiliado.
type AfiliadoResponse struct {
	ID                 string          `json:"id"`
	EmpresaID          string          `json:"empresaId"`
	Nome               string          `json:"nome"`
	Documento          string          `json:"documento,omitempty"`
	Email              string          `json:"email,omitempty"`
	Telefone           string          `json:"telefone,omitempty"`
	PercentualComissao decimal.Decimal `json:"percentualComissao"`
	Ativo              bool            `json:"ativo"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

// GerarComissaoRequest gera a conta a pagar da comissão sobre ValorBase.
type GerarComissaoRequest struct {
	ValorBase        decimal.Decimal `json:"valorBase"`
	Descricao        string          `json:"descricao" validate:"omitempty,max=300"`
	DataVencimento   Date            `json:"dataVencimento"`
	NumeroParcelas   int             `json:"numeroParcelas" validate:"min=0,max=360"`
	IntervaloDias    int             `json:"intervaloDias" validate:"min=0,max=366"`
	FormaPagamentoID *string         `json:"formaPagamentoId" validate:"omitempty,uuid"`
}
