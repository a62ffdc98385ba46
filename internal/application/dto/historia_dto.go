package dto

import "time"

// HistoriaProdutoRequest vínculo de uma história com produto (e módulo opcional).
type HistoriaProdutoRequest struct {
	ProdutoID       string  `json:"produtoId" validate:"required,uuid"`
	ProdutoModuloID *string `json:"produtoModuloId" validate:"omitempty,uuid"`
}

// CreateHistoriaRequest entrada para criar uma história.
type CreateHistoriaRequest struct {
	EmpresaID     string                   `json:"empresaId" validate:"omitempty,uuid"`
	ClienteID     string                   `json:"clienteId" validate:"required,uuid"`
	Titulo        string                   `json:"titulo" validate:"required,min=1,max=200"`
	Descricao     string                   `json:"descricao"`
	StatusID      string                   `json:"statusId" validate:"required,uuid"`
	TipoID        string                   `json:"tipoId" validate:"required,uuid"`
	ResponsavelID *string                  `json:"responsavelId" validate:"omitempty,uuid"`
	DataInicio    *Date                    `json:"dataInicio"`
	DataPrevista  *Date                    `json:"dataPrevista"`
	DataConclusao *Date                    `json:"dataConclusao"`
	Ordem         int                      `json:"ordem" validate:"min=0"`
	Produtos      []HistoriaProdutoRequest `json:"produtos" validate:"omitempty,dive"`
}

// UpdateHistoriaRequest entrada para atualizar uma história.
// Produtos nulo mantém os vínculos; lista (mesmo vazia) substitui.
type UpdateHistoriaRequest struct {
	ClienteID     *string                   `json:"clienteId" validate:"omitempty,uuid"`
	Titulo        *string                   `json:"titulo" validate:"omitempty,min=1,max=200"`
	Descricao     *string                   `json:"descricao"`
	StatusID      *string                   `json:"statusId" validate:"omitempty,uuid"`
	TipoID        *string                   `json:"tipoId" validate:"omitempty,uuid"`
	ResponsavelID *string                   `json:"responsavelId" validate:"omitempty,uuid"`
	DataInicio    *Date                     `json:"dataInicio"`
	DataPrevista  *Date                     `json:"dataPrevista"`
	DataConclusao *Date                     `json:"dataConclusao"`
	Ordem         *int                      `json:"ordem" validate:"omitempty,min=0"`
	Produtos      *[]HistoriaProdutoRequest `json:"produtos" validate:"omitempty"`
}

// MoverHistoriaRequest move a história para uma coluna/posição do kanban.
type MoverHistoriaRequest struct {
	StatusID string `json:"statusId" validate:"required,uuid"`
	Ordem    int    `json:"ordem" validate:"min=0"`
}

// HistoriaProdutoResponse vínculo na saída.
type HistoriaProdutoResponse struct {
	ProdutoID       string  `json:"produtoId"`
	ProdutoModuloID *string `json:"produtoModuloId,omitempty"`
}

// HistoriaResponse saída de uma história.
type HistoriaResponse struct {
	ID            string                    `json:"id"`
	EmpresaID     string                    `json:"empresaId"`
	ClienteID     string                    `json:"clienteId"`
	Titulo        string                    `json:"titulo"`
	Descricao     string                    `json:"descricao"`
	StatusID      string                    `json:"statusId"`
	TipoID        string                    `json:"tipoId"`
	ResponsavelID *string                   `json:"responsavelId,omitempty"`
	DataInicio    *Date                     `json:"dataInicio,omitempty"`
	DataPrevista  *Date                     `json:"dataPrevista,omitempty"`
	DataConclusao *Date                     `json:"dataConclusao,omitempty"`
	Ordem         int                       `json:"ordem"`
	Produtos      []HistoriaProdutoResponse `json:"produtos"`
	CreatedAt     time.Time                 `json:"createdAt"`
	UpdatedAt     time.Time                 `json:"updatedAt"`
}

// BoardColuna uma coluna do kanban: o status e suas histórias.
type BoardColuna struct {
	Status    HistoriaLookupResponse `json:"status"`
	Historias []HistoriaResponse     `json:"historias"`
}

// BoardResponse kanban completo ordenado por status.ordem.
type BoardResponse struct {
	Colunas []BoardColuna `json:"colunas"`
}
