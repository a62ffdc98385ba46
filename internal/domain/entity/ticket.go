package entity

import "time"

// Status de Ticket.
const (
	TicketAberto      = "aberto"
	TicketEmAndamento = "em_andamento"
	TicketResolvido   = "resolvido"
	TicketFechado     = "fechado"
)

// Prioridades de Ticket.
const (
	PrioridadeBaixa   = "baixa"
	PrioridadeMedia   = "media"
	PrioridadeAlta    = "alta"
	PrioridadeUrgente = "urgente"
)

// Ticket de suporte em formato de fórum: abertura + respostas + anexos.
type Ticket struct {
	ID            string
	EmpresaID     string
	Titulo        string
	Descricao     string
	Status        string
	Prioridade    string
	ClienteID     *string
	AutorID       string
	ResponsavelID *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TicketResposta é uma mensagem na thread do ticket.
type TicketResposta struct {
	ID        string
	TicketID  string
	AutorID   string
	Mensagem  string
	CreatedAt time.Time
}

// TicketAnexo referencia um arquivo guardado no object storage.
type TicketAnexo struct {
	ID          string
	TicketID    string
	RespostaID  *string
	NomeArquivo string
	ContentType string
	Tamanho     int64
	StorageKey  string
	CreatedAt   time.Time
}

// ValidTicketStatus valida o status informado.
func ValidTicketStatus(s string) bool {
	switch s {
	case TicketAberto, TicketEmAndamento, TicketResolvido, TicketFechado:
		return true
	}
	return false
}

// ValidPrioridade valida a prioridade informada.
func ValidPrioridade(p string) bool {
	switch p {
	case PrioridadeBaixa, PrioridadeMedia, PrioridadeAlta, PrioridadeUrgente:
		return true
	}
	return false
}
