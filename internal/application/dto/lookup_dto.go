package dto

// LookupRequest entrada das tabelas auxiliares simples (categorias de fornecedor, formas de pagamento).
// No create Nome é obrigatório; no update campos nulos não mudam.
type LookupRequest struct {
	EmpresaID string  `json:"empresaId" validate:"omitempty,uuid"`
	Nome      *string `json:"nome" validate:"omitempty,min=1,max=100"`
	Ativo     *bool   `json:"ativo"`
}

// LookupResponse saída das tabelas auxiliares simples.
type LookupResponse struct {
	ID        string `json:"id"`
	EmpresaID string `json:"empresaId"`
	Nome      string `json:"nome"`
	Ativo     bool   `json:"ativo"`
}

// HistoriaLookupRequest entrada de status e tipos de história.
type HistoriaLookupRequest struct {
	EmpresaID string  `json:"empresaId" validate:"omitempty,uuid"`
	Nome      *string `json:"nome" validate:"omitempty,min=1,max=100"`
	Cor       *string `json:"cor" validate:"omitempty,hexcolor"`
	Ordem     *int    `json:"ordem" validate:"omitempty,min=0"`
	Ativo     *bool   `json:"ativo"`
}

// HistoriaLookupResponse saída de status e tipos de história.
type HistoriaLookupResponse struct {
	ID        string `json:"id"`
	EmpresaID string `json:"empresaId"`
	Nome      string `json:"nome"`
	Cor       string `json:"cor"`
	Ordem     int    `json:"ordem"`
	Ativo     bool   `json:"ativo"`
}
