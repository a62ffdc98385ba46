package usecase

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/BusinessHub-api/internal/application/dto"
	"github.com/jhoicas/BusinessHub-api/internal/application/ports"
	"github.com/jhoicas/BusinessHub-api/internal/application/tenant"
	"github.com/jhoicas/BusinessHub-api/internal/domain"
	"github.com/jhoicas/BusinessHub-api/internal/domain/entity"
	"github.com/jhoicas/BusinessHub-api/internal/domain/repository"
	"github.com/jhoicas/BusinessHub-api/pkg/texto"
)

// MaxAnexoBytes tamanho máximo de um anexo (10 MiB).
const MaxAnexoBytes = 10 << 20

// Upload arquivo recebido para anexar a um ticket.
type Upload struct {
	NomeArquivo string
	ContentType string
	Tamanho     int64
	Body        io.Reader
	RespostaID  *string
}

// TicketUseCase casos de uso dos tickets de suporte: thread de respostas e anexos.
// storage nulo desliga os anexos (ErrStorageUnavailable).
type TicketUseCase struct {
	repo    repository.TicketRepository
	pessoas repository.PessoaRepository
	users   repository.UserRepository
	storage ports.ObjectStorage
}

// NewTicketUseCase constrói o caso de uso.
func NewTicketUseCase(repo repository.TicketRepository, pessoas repository.PessoaRepository, users repository.UserRepository, storage ports.ObjectStorage) *TicketUseCase {
	return &TicketUseCase{repo: repo, pessoas: pessoas, users: users, storage: storage}
}

// Create abre um ticket com status aberto; autor é quem chama.
func (uc *TicketUseCase) Create(ctx context.Context, c tenant.Caller, in dto.CreateTicketRequest) (*dto.TicketResponse, error) {
	empresaID, err := tenant.Resolve(c, in.EmpresaID)
	if err != nil {
		return nil, err
	}
	prioridade := in.Prioridade
	if prioridade == "" {
		prioridade = entity.PrioridadeMedia
	}
	now := time.Now()
	t := &entity.Ticket{
		ID:            uuid.New().String(),
		EmpresaID:     empresaID,
		Titulo:        in.Titulo,
		Descricao:     in.Descricao,
		Status:        entity.TicketAberto,
		Prioridade:    prioridade,
		ClienteID:     emptyToNil(in.ClienteID),
		AutorID:       c.UserID,
		ResponsavelID: emptyToNil(in.ResponsavelID),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.validate(ctx, t); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return toTicketResponse(t), nil
}

// GetByID devolve o ticket com respostas e anexos (carregados em paralelo).
func (uc *TicketUseCase) GetByID(ctx context.Context, c tenant.Caller, id string) (*dto.TicketResponse, error) {
	t, err := uc.get(ctx, c, id)
	if err != nil {
		return nil, err
	}
	var (
		respostas []*entity.TicketResposta
		anexos    []*entity.TicketAnexo
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		respostas, err = uc.repo.ListRespostas(gctx, id)
		return err
	})
	g.Go(func() (err error) {
		anexos, err = uc.repo.ListAnexos(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := toTicketResponse(t)
	for _, r := range respostas {
		out.Respostas = append(out.Respostas, *toRespostaResponse(r))
	}
	for _, a := range anexos {
		out.Anexos = append(out.Anexos, *toAnexoResponse(a))
	}
	return out, nil
}

// List lista tickets com filtros de status e prioridade, mais recentes primeiro.
func (uc *TicketUseCase) List(ctx context.Context, c tenant.Caller, empresaID string, page dto.PageRequest, q, status, prioridade string) (*dto.ListResponse[dto.TicketResponse], error) {
	f, err := listFilter(c, empresaID, &page, q)
	if err != nil {
		return nil, err
	}
	list, total, err := uc.repo.List(ctx, repository.TicketFilter{ListFilter: f, Status: status, Prioridade: prioridade})
	if err != nil {
		return nil, err
	}
	items := make([]dto.TicketResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTicketResponse(t))
	}
	out := dto.NewList(items, page, total)
	return &out, nil
}

// Update altera os dados do ticket (status tem operação própria).
func (uc *TicketUseCase) Update(ctx context.Context, c tenant.Caller, id string, in dto.UpdateTicketRequest) (*dto.TicketResponse, error) {
	t, err := uc.get(ctx, c, id)
	if err != nil {
		return nil, err
	}
	t.Titulo = strOr(in.Titulo, t.Titulo)
	t.Descricao = strOr(in.Descricao, t.Descricao)
	t.Prioridade = strOr(in.Prioridade, t.Prioridade)
	if in.ClienteID != nil {
		t.ClienteID = emptyToNil(in.ClienteID)
	}
	if in.ResponsavelID != nil {
		t.ResponsavelID = emptyToNil(in.ResponsavelID)
	}
	if err := uc.validate(ctx, t); err != nil {
		return nil, err
	}
	t.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return toTicketResponse(t), nil
}

// UpdateStatus muda o status e, opcionalmente, a prioridade.
func (uc *TicketUseCase) UpdateStatus(ctx context.Context, c tenant.Caller, id string, in dto.TicketStatusRequest) (*dto.TicketResponse, error) {
	t, err := uc.get(ctx, c, id)
	if err != nil {
		return nil, err
	}
	if !entity.ValidTicketStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}
	t.Status = in.Status
	if in.Prioridade != nil {
		if !entity.ValidPrioridade(*in.Prioridade) {
			return nil, domain.ErrInvalidInput
		}
		t.Prioridade = *in.Prioridade
	}
	t.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return toTicketResponse(t), nil
}

// Delete exclui o ticket e remove os arquivos dos anexos do storage.
func (uc *TicketUseCase) Delete(ctx context.Context, c tenant.Caller, id string) error {
	if _, err := uc.get(ctx, c, id); err != nil {
		return err
	}
	anexos, err := uc.repo.ListAnexos(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	if uc.storage != nil {
		for _, a := range anexos {
			_ = uc.storage.Delete(ctx, a.StorageKey)
		}
	}
	return nil
}

// AddResposta acrescenta uma mensagem à thread. Ticket fechado não aceita respostas.
func (uc *TicketUseCase) AddResposta(ctx context.Context, c tenant.Caller, id string, in dto.CreateRespostaRequest) (*dto.TicketRespostaResponse, error) {
	t, err := uc.get(ctx, c, id)
	if err != nil {
		return nil, err
	}
	if t.Status == entity.TicketFechado {
		return nil, fmt.Errorf("%w: ticket fechado não aceita respostas", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.Mensagem) == "" {
		return nil, domain.ErrInvalidInput
	}
	r := &entity.TicketResposta{
		ID:        uuid.New().String(),
		TicketID:  id,
		AutorID:   c.UserID,
		Mensagem:  in.Mensagem,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.CreateResposta(ctx, r); err != nil {
		return nil, err
	}
	return toRespostaResponse(r), nil
}

// AddAnexo grava o arquivo no storage e registra o anexo.
// Se o registro falhar, o objeto é removido.
func (uc *TicketUseCase) AddAnexo(ctx context.Context, c tenant.Caller, id string, up Upload) (*dto.TicketAnexoResponse, error) {
	if uc.storage == nil {
		return nil, domain.ErrStorageUnavailable
	}
	t, err := uc.get(ctx, c, id)
	if err != nil {
		return nil, err
	}
	if up.Tamanho <= 0 || up.Tamanho > MaxAnexoBytes {
		return nil, fmt.Errorf("%w: anexo deve ter entre 1 byte e 10 MiB", domain.ErrInvalidInput)
	}
	if up.RespostaID != nil {
		respostas, err := uc.repo.ListRespostas(ctx, id)
		if err != nil {
			return nil, err
		}
		if !hasResposta(respostas, *up.RespostaID) {
			return nil, domain.ErrInvalidInput
		}
	}
	contentType := up.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	a := &entity.TicketAnexo{
		ID:          uuid.New().String(),
		TicketID:    id,
		RespostaID:  up.RespostaID,
		NomeArquivo: path.Base(up.NomeArquivo),
		ContentType: contentType,
		Tamanho:     up.Tamanho,
		CreatedAt:   time.Now(),
	}
	a.StorageKey = fmt.Sprintf("tickets/%s/%s/%s-%s", t.EmpresaID, t.ID, a.ID, safeName(a.NomeArquivo))

	if err := uc.storage.Put(ctx, a.StorageKey, up.Body, up.Tamanho, contentType); err != nil {
		return nil, fmt.Errorf("upload anexo: %w", err)
	}
	if err := uc.repo.CreateAnexo(ctx, a); err != nil {
		_ = uc.storage.Delete(ctx, a.StorageKey)
		return nil, err
	}
	return toAnexoResponse(a), nil
}

// DownloadAnexo devolve uma URL assinada temporária do anexo.
func (uc *TicketUseCase) DownloadAnexo(ctx context.Context, c tenant.Caller, id, anexoID string) (*dto.AnexoDownloadResponse, error) {
	if uc.storage == nil {
		return nil, domain.ErrStorageUnavailable
	}
	if _, err := uc.get(ctx, c, id); err != nil {
		return nil, err
	}
	a, err := uc.repo.GetAnexo(ctx, anexoID)
	if err != nil {
		return nil, err
	}
	if a == nil || a.TicketID != id {
		return nil, domain.ErrNotFound
	}
	url, expira, err := uc.storage.PresignGet(ctx, a.StorageKey, a.NomeArquivo)
	if err != nil {
		return nil, fmt.Errorf("presign anexo: %w", err)
	}
	return &dto.AnexoDownloadResponse{URL: url, ExpiraEm: expira}, nil
}

func (uc *TicketUseCase) get(ctx context.Context, c tenant.Caller, id string) (*entity.Ticket, error) {
	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil || !tenant.CanAccess(c, t.EmpresaID) {
		return nil, domain.ErrNotFound
	}
	return t, nil
}

func (uc *TicketUseCase) validate(ctx context.Context, t *entity.Ticket) error {
	if !entity.ValidPrioridade(t.Prioridade) {
		return domain.ErrInvalidInput
	}
	if t.ClienteID != nil {
		p, err := uc.pessoas.GetByID(ctx, *t.ClienteID)
		if err != nil {
			return err
		}
		if p == nil || p.EmpresaID != t.EmpresaID {
			return domain.ErrInvalidInput
		}
	}
	if t.ResponsavelID != nil {
		u, err := uc.users.GetByID(ctx, *t.ResponsavelID)
		if err != nil {
			return err
		}
		if u == nil || u.EmpresaID != t.EmpresaID {
			return domain.ErrInvalidInput
		}
	}
	return nil
}

func hasResposta(list []*entity.TicketResposta, id string) bool {
	for _, r := range list {
		if r.ID == id {
			return true
		}
	}
	return false
}

// safeName reduz o nome do arquivo a [a-z0-9._-] para compor a chave do objeto.
func safeName(name string) string {
	name = texto.Normalizar(name)
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "arquivo"
	}
	return b.String()
}

func toTicketResponse(t *entity.Ticket) *dto.TicketResponse {
	return &dto.TicketResponse{
		ID:            t.ID,
		EmpresaID:     t.EmpresaID,
		Titulo:        t.Titulo,
		Descricao:     t.Descricao,
		Status:        t.Status,
		Prioridade:    t.Prioridade,
		ClienteID:     t.ClienteID,
		AutorID:       t.AutorID,
		ResponsavelID: t.ResponsavelID,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

func toRespostaResponse(r *entity.TicketResposta) *dto.TicketRespostaResponse {
	return &dto.TicketRespostaResponse{ID: r.ID, AutorID: r.AutorID, Mensagem: r.Mensagem, CreatedAt: r.CreatedAt}
}

func toAnexoResponse(a *entity.TicketAnexo) *dto.TicketAnexoResponse {
	return &dto.TicketAnexoResponse{
		ID:          a.ID,
		RespostaID:  a.RespostaID,
		NomeArquivo: a.NomeArquivo,
		ContentType: a.ContentType,
		Tamanho:     a.Tamanho,
		CreatedAt:   a.CreatedAt,
	}
}
