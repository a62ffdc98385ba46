package dto

import "time"

// CreateTicketRequest entrada para abrir um ticket.
type CreateTicketRequest struct {
	EmpresaID     string  `json:"empresaId" validate:"omitempty,uuid"`
	Titulo        string  `json:"titulo" validate:"required,min=1,max=200"`
	Descricao     string  `json:"descricao" validate:"required"`
	Prioridade    string  `json:"prioridade" validate:"omitempty,oneof=baixa media alta urgente"`
	ClienteID     *string `json:"clienteId" validate:"omitempty,uuid"`
	ResponsavelID *string `json:"responsavelId" validate:"omitempty,uuid"`
}

// UpdateTicketRequest entrada para atualizar um ticket (campos opcionais).
type UpdateTicketRequest struct {
	Titulo        *string `json:"titulo" validate:"omitempty,min=1,max=200"`
	Descricao     *string `json:"descricao"`
	Prioridade    *string `json:"prioridade" validate:"omitempty,oneof=baixa media alta urgente"`
	ClienteID     *string `json:"clienteId" validate:"omitempty,uuid"`
	ResponsavelID *string `json:"responsavelId" validate:"omitempty,uuid"`
}

// TicketStatusRequest muda status (e opcionalmente prioridade).
type TicketStatusRequest struct {
	Status     string  `json:"status" validate:"required,oneof=aberto em_andamento resolvido fechado"`
	Prioridade *string `json:"prioridade" validate:"omitempty,oneof=baixa media alta urgente"`
}

// CreateRespostaRequest nova mensagem na thread.
type CreateRespostaRequest struct {
	Mensagem string `json:"mensagem" validate:"required,min=1"`
}

// TicketRespostaResponse mensagem da thread.
type TicketRespostaResponse struct {
	ID        string    `json:"id"`
	AutorID   string    `json:"autorId"`
	Mensagem  string    `json:"mensagem"`
	CreatedAt time.Time `json:"createdAt"`
}

// TicketAnexoResponse metadados de um anexo.
type TicketAnexoResponse struct {
	ID          string    `json:"id"`
	RespostaID  *string   `json:"respostaId,omitempty"`
	NomeArquivo string    `json:"nomeArquivo"`
	ContentType string    `json:"contentType"`
	Tamanho     int64     `json:"tamanho"`
	CreatedAt   time.Time `json:"createdAt"`
}

// AnexoDownloadResponse URL assinada temporária do anexo.
type AnexoDownloadResponse struct {
	URL      string    `json:"url"`
	ExpiraEm time.Time `json:"expiraEm"`
}

// TicketResponse saída de um ticket. Respostas e Anexos só vêm no detalhe.
type TicketResponse struct {
	ID            string                   `json:"id"`
	EmpresaID     string                   `json:"empresaId"`
	Titulo        string                   `json:"titulo"`
	Descricao     string                   `json:"descricao"`
	Status        string                   `json:"status"`
	Prioridade    string                   `json:"prioridade"`
	ClienteID     *string                  `json:"clienteId,omitempty"`
	AutorID       string                   `json:"autorId"`
	ResponsavelID *string                  `json:"responsavelId,omitempty"`
	Respostas     []TicketRespostaResponse `json:"respostas,omitempty"`
	Anexos        []TicketAnexoResponse    `json:"anexos,omitempty"`
	CreatedAt     time.Time                `json:"createdAt"`
	UpdatedAt     time.Time                `json:"updatedAt"`
}
