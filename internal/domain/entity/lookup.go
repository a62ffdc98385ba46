package entity

import "time"

// Tabelas auxiliares simples, configuráveis por empresa.
const (
	LookupCategoriaFornecedor = "categorias_fornecedor"
	LookupFormaPagamento      = "formas_pagamento"
)

// Lookup é uma linha de tabela auxiliar simples: categoria de fornecedor
// ou forma de pagamento (PIX, boleto, cartão...).
type Lookup struct {
	ID        string
	EmpresaID string
	Nome      string
	Ativo     bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Tabelas auxiliares configuráveis das Histórias.
const (
	LookupHistoriaStatus = "historia_status"
	LookupHistoriaTipo   = "historia_tipos"
)

// HistoriaLookup é uma linha de status ou tipo de História (a coluna do kanban, no caso de status).
type HistoriaLookup struct {
	ID        string
	EmpresaID string
	Nome      string
	Cor       string // hex, ex. #1e88e5
	Ordem     int
	Ativo     bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
