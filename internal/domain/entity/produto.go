package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Produto do catálogo da empresa, com módulos adicionais opcionais.
type Produto struct {
	ID        string
	EmpresaID string
	Nome      string
	Descricao string
	Valor     decimal.Decimal
	Ativo     bool
	Modulos   []ProdutoModulo
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProdutoModulo é um adicional vendido junto com o produto.
type ProdutoModulo struct {
	ID        string
	ProdutoID string
	Nome      string
	Descricao string
	Valor     decimal.Decimal
	Ativo     bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
