package repository

import (
	"context"

	"github.com/jhoicas/BusinessHub-api/internal/domain/entity"
)

// TicketFilter filtros da listagem de tickets.
type TicketFilter struct {
	ListFilter
	Status     string
	Prioridade string
}

// TicketRepository define o porto de persistência de tickets, respostas e anexos.
type TicketRepository interface {
	Create(ctx context.Context, t *entity.Ticket) error
	GetByID(ctx context.Context, id string) (*entity.Ticket, error)
	List(ctx context.Context, f TicketFilter) ([]*entity.Ticket, int, error)
	Update(ctx context.Context, t *entity.Ticket) error
	Delete(ctx context.Context, id string) error

	CreateResposta(ctx context.Context, r *entity.TicketResposta) error
	ListRespostas(ctx context.Context, ticketID string) ([]*entity.TicketResposta, error)

	CreateAnexo(ctx context.Context, a *entity.TicketAnexo) error
	GetAnexo(ctx context.Context, id string) (*entity.TicketAnexo, error)
	ListAnexos(ctx context.Context, ticketID string) ([]*entity.TicketAnexo, error)
}
