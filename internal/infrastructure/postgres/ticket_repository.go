package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/BusinessHub-api/internal/domain/entity"
	"github.com/jhoicas/BusinessHub-api/internal/domain/repository"
	"github.com/jhoicas/BusinessHub-api/pkg/texto"
)

var _ repository.TicketRepository = (*TicketRepo)(nil)

const (
	ticketCols   = `id, empresa_id, titulo, descricao, status, prioridade, cliente_id, autor_id, responsavel_id, created_at, updated_at`
	respostaCols = `id, ticket_id, autor_id, mensagem, created_at`
	anexoCols    = `id, ticket_id, resposta_id, nome_arquivo, content_type, tamanho, storage_key, created_at`
)

// TicketRepo persiste tickets, respostas e anexos (só os metadados; o arquivo fica no storage).
type TicketRepo struct {
	q Querier
}

// NewTicketRepository constrói o adaptador. Aceita pool ou tx.
func NewTicketRepository(q Querier) *TicketRepo {
	return &TicketRepo{q: q}
}

func scanTicket(row pgx.Row) (*entity.Ticket, error) {
	var t entity.Ticket
	err := row.Scan(&t.ID, &t.EmpresaID, &t.Titulo, &t.Descricao, &t.Status, &t.Prioridade, &t.ClienteID,
		&t.AutorID, &t.ResponsavelID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func scanResposta(row pgx.Row) (*entity.TicketResposta, error) {
	var r entity.TicketResposta
	if err := row.Scan(&r.ID, &r.TicketID, &r.AutorID, &r.Mensagem, &r.CreatedAt); err != nil {
		return nil, err
	}
	return &r, nil
}

func scanAnexo(row pgx.Row) (*entity.TicketAnexo, error) {
	var a entity.TicketAnexo
	err := row.Scan(&a.ID, &a.TicketID, &a.RespostaID, &a.NomeArquivo, &a.ContentType, &a.Tamanho, &a.StorageKey, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *TicketRepo) Create(ctx context.Context, t *entity.Ticket) error {
	query := `
		INSERT INTO tickets (id, empresa_id, titulo, busca, descricao, status, prioridade, cliente_id, autor_id,
			responsavel_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		t.ID, t.EmpresaID, t.Titulo, texto.Normalizar(t.Titulo), t.Descricao, t.Status, t.Prioridade, t.ClienteID,
		t.AutorID, t.ResponsavelID, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return writeErr("insert ticket", err)
	}
	return nil
}

func (r *TicketRepo) GetByID(ctx context.Context, id string) (*entity.Ticket, error) {
	t, err := queryOne(ctx, r.q, `SELECT `+ticketCols+` FROM tickets WHERE id = $1`, scanTicket, id)
	if err != nil {
		return nil, fmt.Errorf("get ticket: %w", err)
	}
	return t, nil
}

// List lista tickets mais recentes primeiro.
func (r *TicketRepo) List(ctx context.Context, f repository.TicketFilter) ([]*entity.Ticket, int, error) {
	w := &where{}
	f.Ativo = nil
	w.common(f.ListFilter, "", "busca")
	if f.Status != "" {
		w.add("status = %s", f.Status)
	}
	if f.Prioridade != "" {
		w.add("prioridade = %s", f.Prioridade)
	}
	list, total, err := listPage(ctx, r.q, ticketCols, "FROM tickets", w, "created_at DESC, id", f.ListFilter, scanTicket)
	if err != nil {
		return nil, 0, fmt.Errorf("list tickets: %w", err)
	}
	return list, total, nil
}

func (r *TicketRepo) Update(ctx context.Context, t *entity.Ticket) error {
	query := `
		UPDATE tickets
		SET titulo = $2, busca = $3, descricao = $4, status = $5, prioridade = $6, cliente_id = $7,
			responsavel_id = $8, updated_at = $9
		WHERE id = $1`
	return execOne(ctx, r.q, "update ticket", query,
		t.ID, t.Titulo, texto.Normalizar(t.Titulo), t.Descricao, t.Status, t.Prioridade, t.ClienteID,
		t.ResponsavelID, t.UpdatedAt,
	)
}

// Delete remove o ticket com respostas e anexos (cascata).
func (r *TicketRepo) Delete(ctx context.Context, id string) error {
	return execOne(ctx, r.q, "delete ticket", `DELETE FROM tickets WHERE id = $1`, id)
}

func (r *TicketRepo) CreateResposta(ctx context.Context, resp *entity.TicketResposta) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO ticket_respostas (id, ticket_id, autor_id, mensagem, created_at) VALUES ($1, $2, $3, $4, $5)`,
		resp.ID, resp.TicketID, resp.AutorID, resp.Mensagem, resp.CreatedAt)
	if err != nil {
		return writeErr("insert resposta", err)
	}
	return nil
}

// ListRespostas devolve a thread em ordem cronológica.
func (r *TicketRepo) ListRespostas(ctx context.Context, ticketID string) ([]*entity.TicketResposta, error) {
	list, err := queryAll(ctx, r.q,
		`SELECT `+respostaCols+` FROM ticket_respostas WHERE ticket_id = $1 ORDER BY created_at, id`, scanResposta, ticketID)
	if err != nil {
		return nil, fmt.Errorf("list respostas: %w", err)
	}
	return list, nil
}

func (r *TicketRepo) CreateAnexo(ctx context.Context, a *entity.TicketAnexo) error {
	query := `
		INSERT INTO ticket_anexos (id, ticket_id, resposta_id, nome_arquivo, content_type, tamanho, storage_key, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		a.ID, a.TicketID, a.RespostaID, a.NomeArquivo, a.ContentType, a.Tamanho, a.StorageKey, a.CreatedAt)
	if err != nil {
		return writeErr("insert anexo", err)
	}
	return nil
}

func (r *TicketRepo) GetAnexo(ctx context.Context, id string) (*entity.TicketAnexo, error) {
	a, err := queryOne(ctx, r.q, `SELECT `+anexoCols+` FROM ticket_anexos WHERE id = $1`, scanAnexo, id)
	if err != nil {
		return nil, fmt.Errorf("get anexo: %w", err)
	}
	return a, nil
}

func (r *TicketRepo) ListAnexos(ctx context.Context, ticketID string) ([]*entity.TicketAnexo, error) {
	list, err := queryAll(ctx, r.q,
		`SELECT `+anexoCols+` FROM ticket_anexos WHERE ticket_id = $1 ORDER BY created_at, id`, scanAnexo, ticketID)
	if err != nil {
		return nil, fmt.Errorf("list anexos: %w", err)
	}
	return list, nil
}
