package entity

import "time"

// Historia acompanha uma implantação/projeto de um cliente com um ou mais produtos.
// StatusID indica a coluna do kanban; Ordem a posição dentro da coluna.
type Historia struct {
	ID            string
	EmpresaID     string
	ClienteID     string
	Titulo        string
	Descricao     string
	StatusID      string
	TipoID        string
	ResponsavelID *string
	DataInicio    *time.Time
	DataPrevista  *time.Time
	DataConclusao *time.Time
	Ordem         int
	Produtos      []HistoriaProduto
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// HistoriaProduto liga uma história a um produto (e opcionalmente a um módulo dele).
type HistoriaProduto struct {
	HistoriaID      string
	ProdutoID       string
	ProdutoModuloID *string
}
