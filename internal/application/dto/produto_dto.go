package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProdutoRequest entrada para criar um produto, opcionalmente já com módulos.
type CreateProdutoRequest struct {
	EmpresaID string                 `json:"empresaId" validate:"omitempty,uuid"`
	Nome      string                 `json:"nome" validate:"required,min=1,max=200"`
	Descricao string                 `json:"descricao"`
	Valor     decimal.Decimal        `json:"valor"`
	Modulos   []ProdutoModuloRequest `json:"modulos" validate:"omitempty,dive"`
}

// UpdateProdutoRequest entrada para atualizar um produto (módulos têm rotas próprias).
type UpdateProdutoRequest struct {
	Nome      *string          `json:"nome" validate:"omitempty,min=1,max=200"`
	Descricao *string          `json:"descricao"`
	Valor     *decimal.Decimal `json:"valor"`
	Ativo     *bool            `json:"ativo"`
}

// ProdutoModuloRequest entrada de um módulo adicional.
type ProdutoModuloRequest struct {
	Nome      string          `json:"nome" validate:"required,min=1,max=200"`
	Descricao string          `json:"descricao"`
	Valor     decimal.Decimal `json:"valor"`
}

// UpdateProdutoModuloRequest entrada para atualizar um módulo (campos opcionais).
type UpdateProdutoModuloRequest struct {
	Nome      *string          `json:"nome" validate:"omitempty,min=1,max=200"`
	Descricao *string          `json:"descricao"`
	Valor     *decimal.Decimal `json:"valor"`
	Ativo     *bool            `json:"ativo"`
}

// ProdutoResponse saída de um produto com módulos.
type ProdutoResponse struct {
	ID        string                  `json:"id"`
	EmpresaID string                  `json:"empresaId"`
	Nome      string                  `json:"nome"`
	Descricao string                  `json:"descricao"`
	Valor     decimal.Decimal         `json:"valor"`
	Ativo     bool                    `json:"ativo"`
	Modulos   []ProdutoModuloResponse `json:"modulos"`
	CreatedAt time.Time               `json:"createdAt"`
	UpdatedAt time.Time               `json:"updatedAt"`
}

// ProdutoModuloResponse saída de um módulo.
type ProdutoModuloResponse struct {
	ID        string          `json:"id"`
	ProdutoID string          `json:"produtoId"`
	Nome      string          `json:"nome"`
	Descricao string          `json:"descricao"`
	Valor     decimal.Decimal `json:"valor"`
	Ativo     bool            `json:"ativo"`
}
