package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/BusinessHub-api/internal/application/dto"
	"github.com/jhoicas/BusinessHub-api/internal/application/tenant"
	"github.com/jhoicas/BusinessHub-api/internal/domain"
	"github.com/jhoicas/BusinessHub-api/internal/domain/entity"
	"github.com/jhoicas/BusinessHub-api/internal/domain/repository"
)

// HistoriaUseCase casos de uso das histórias (implantações) e do kanban.
type HistoriaUseCase struct {
	repo     repository.HistoriaRepository
	pessoas  repository.PessoaRepository
	users    repository.UserRepository
	produtos repository.ProdutoRepository
	status   *HistoriaLookupUseCase
	tipos    *HistoriaLookupUseCase
}

// NewHistoriaUseCase constrói o caso de uso.
func NewHistoriaUseCase(
	repo repository.HistoriaRepository,
	pessoas repository.PessoaRepository,
	users repository.UserRepository,
	produtos repository.ProdutoRepository,
	status, tipos *HistoriaLookupUseCase,
) *HistoriaUseCase {
	return &HistoriaUseCase{repo: repo, pessoas: pessoas, users: users, produtos: produtos, status: status, tipos: tipos}
}

// Create cria uma história. Cliente, status, tipo, responsável e produtos devem ser da mesma empresa.
func (uc *HistoriaUseCase) Create(ctx context.Context, c tenant.Caller, in dto.CreateHistoriaRequest) (*dto.HistoriaResponse, error) {
	empresaID, err := tenant.Resolve(c, in.EmpresaID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	h := &entity.Historia{
		ID:            uuid.New().String(),
		EmpresaID:     empresaID,
		ClienteID:     in.ClienteID,
		Titulo:        in.Titulo,
		Descricao:     in.Descricao,
		StatusID:      in.StatusID,
		TipoID:        in.TipoID,
		ResponsavelID: emptyToNil(in.ResponsavelID),
		DataInicio:    dateToTime(in.DataInicio),
		DataPrevista:  dateToTime(in.DataPrevista),
		DataConclusao: dateToTime(in.DataConclusao),
		Ordem:         in.Ordem,
		Produtos:      toHistoriaProdutos(in.Produtos),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.validate(ctx, h); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, h); err != nil {
		return nil, err
	}
	return toHistoriaResponse(h), nil
}

// GetByID obtém uma história com produtos.
func (uc *HistoriaUseCase) GetByID(ctx context.Context, c tenant.Caller, id string) (*dto.HistoriaResponse, error) {
	h, err := uc.get(ctx, c, id)
	if err != nil {
		return nil, err
	}
	return toHistoriaResponse(h), nil
}

// List lista histórias com filtros opcionais de status e cliente.
func (uc *HistoriaUseCase) List(ctx context.Context, c tenant.Caller, empresaID string, page dto.PageRequest, q, statusID, clienteID string) (*dto.ListResponse[dto.HistoriaResponse], error) {
	f, err := listFilter(c, empresaID, &page, q)
	if err != nil {
		return nil, err
	}
	list, total, err := uc.repo.List(ctx, repository.HistoriaFilter{ListFilter: f, StatusID: statusID, ClienteID: clienteID})
	if err != nil {
		return nil, err
	}
	items := make([]dto.HistoriaResponse, 0, len(list))
	for _, h := range list {
		items = append(items, *toHistoriaResponse(h))
	}
	out := dto.NewList(items, page, total)
	return &out, nil
}

// Update atualiza parcialmente; Produtos informado substitui os vínculos.
func (uc *HistoriaUseCase) Update(ctx context.Context, c tenant.Caller, id string, in dto.UpdateHistoriaRequest) (*dto.HistoriaResponse, error) {
	h, err := uc.get(ctx, c, id)
	if err != nil {
		return nil, err
	}
	h.ClienteID = strOr(in.ClienteID, h.ClienteID)
	h.Titulo = strOr(in.Titulo, h.Titulo)
	h.Descricao = strOr(in.Descricao, h.Descricao)
	h.StatusID = strOr(in.StatusID, h.StatusID)
	h.TipoID = strOr(in.TipoID, h.TipoID)
	if in.ResponsavelID != nil {
		h.ResponsavelID = emptyToNil(in.ResponsavelID)
	}
	if in.DataInicio != nil {
		h.DataInicio = dateToTime(in.DataInicio)
	}
	if in.DataPrevista != nil {
		h.DataPrevista = dateToTime(in.DataPrevista)
	}
	if in.DataConclusao != nil {
		h.DataConclusao = dateToTime(in.DataConclusao)
	}
	if in.Ordem != nil {
		h.Ordem = *in.Ordem
	}
	if in.Produtos != nil {
		h.Produtos = toHistoriaProdutos(*in.Produtos)
	}
	if err := uc.validate(ctx, h); err != nil {
		return nil, err
	}
	h.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, h); err != nil {
		return nil, err
	}
	return toHistoriaResponse(h), nil
}

// Mover troca a coluna e a posição no kanban sem tocar nos demais campos.
func (uc *HistoriaUseCase) Mover(ctx context.Context, c tenant.Caller, id string, in dto.MoverHistoriaRequest) (*dto.HistoriaResponse, error) {
	h, err := uc.get(ctx, c, id)
	if err != nil {
		return nil, err
	}
	st, err := uc.status.repo.GetByID(ctx, in.StatusID)
	if err != nil {
		return nil, err
	}
	if st == nil || st.EmpresaID != h.EmpresaID {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.repo.Mover(ctx, id, in.StatusID, in.Ordem); err != nil {
		return nil, err
	}
	h.StatusID = in.StatusID
	h.Ordem = in.Ordem
	return toHistoriaResponse(h), nil
}

// Delete exclui a história.
func (uc *HistoriaUseCase) Delete(ctx context.Context, c tenant.Caller, id string) error {
	if _, err := uc.get(ctx, c, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

// Board monta o kanban: status ativos por ordem, cada um com suas histórias por ordem.
// As colunas são carregadas em paralelo.
func (uc *HistoriaUseCase) Board(ctx context.Context, c tenant.Caller, empresaID string) (*dto.BoardResponse, error) {
	empresaID, err := tenant.Resolve(c, empresaID)
	if err != nil {
		return nil, err
	}
	statuses, err := uc.status.Ativos(ctx, empresaID)
	if err != nil {
		return nil, err
	}

	colunas := make([]dto.BoardColuna, len(statuses))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, st := range statuses {
		g.Go(func() error {
			list, err := uc.repo.ListByStatus(gctx, empresaID, st.ID)
			if err != nil {
				return err
			}
			col := dto.BoardColuna{Status: st, Historias: make([]dto.HistoriaResponse, 0, len(list))}
			for _, h := range list {
				col.Historias = append(col.Historias, *toHistoriaResponse(h))
			}
			colunas[i] = col
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &dto.BoardResponse{Colunas: colunas}, nil
}

func (uc *HistoriaUseCase) get(ctx context.Context, c tenant.Caller, id string) (*entity.Historia, error) {
	h, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if h == nil || !tenant.CanAccess(c, h.EmpresaID) {
		return nil, domain.ErrNotFound
	}
	return h, nil
}

// validate confere que todas as referências pertencem à empresa da história.
func (uc *HistoriaUseCase) validate(ctx context.Context, h *entity.Historia) error {
	if h.Titulo == "" {
		return domain.ErrInvalidInput
	}
	if h.DataInicio != nil && h.DataPrevista != nil && h.DataPrevista.Before(*h.DataInicio) {
		return domain.ErrInvalidInput
	}
	cliente, err := uc.pessoas.GetByID(ctx, h.ClienteID)
	if err != nil {
		return err
	}
	if cliente == nil || cliente.Tipo != entity.PessoaCliente || cliente.EmpresaID != h.EmpresaID {
		return domain.ErrInvalidInput
	}
	for _, ref := range []struct {
		uc *HistoriaLookupUseCase
		id string
	}{{uc.status, h.StatusID}, {uc.tipos, h.TipoID}} {
		l, err := ref.uc.repo.GetByID(ctx, ref.id)
		if err != nil {
			return err
		}
		if l == nil || l.EmpresaID != h.EmpresaID {
			return domain.ErrInvalidInput
		}
	}
	if h.ResponsavelID != nil {
		u, err := uc.users.GetByID(ctx, *h.ResponsavelID)
		if err != nil {
			return err
		}
		if u == nil || u.EmpresaID != h.EmpresaID {
			return domain.ErrInvalidInput
		}
	}
	for _, hp := range h.Produtos {
		p, err := uc.produtos.GetByID(ctx, hp.ProdutoID)
		if err != nil {
			return err
		}
		if p == nil || p.EmpresaID != h.EmpresaID {
			return domain.ErrInvalidInput
		}
		if hp.ProdutoModuloID != nil && !hasModulo(p, *hp.ProdutoModuloID) {
			return domain.ErrInvalidInput
		}
	}
	return nil
}

func hasModulo(p *entity.Produto, moduloID string) bool {
	for _, m := range p.Modulos {
		if m.ID == moduloID {
			return true
		}
	}
	return false
}

func dateToTime(d *dto.Date) *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}

func toHistoriaProdutos(in []dto.HistoriaProdutoRequest) []entity.HistoriaProduto {
	out := make([]entity.HistoriaProduto, 0, len(in))
	for _, p := range in {
		out = append(out, entity.HistoriaProduto{ProdutoID: p.ProdutoID, ProdutoModuloID: emptyToNil(p.ProdutoModuloID)})
	}
	return out
}

func toHistoriaResponse(h *entity.Historia) *dto.HistoriaResponse {
	out := &dto.HistoriaResponse{
		ID:            h.ID,
		EmpresaID:     h.EmpresaID,
		ClienteID:     h.ClienteID,
		Titulo:        h.Titulo,
		Descricao:     h.Descricao,
		StatusID:      h.StatusID,
		TipoID:        h.TipoID,
		ResponsavelID: h.ResponsavelID,
		DataInicio:    dto.DatePtr(h.DataInicio),
		DataPrevista:  dto.DatePtr(h.DataPrevista),
		DataConclusao: dto.DatePtr(h.DataConclusao),
		Ordem:         h.Ordem,
		Produtos:      make([]dto.HistoriaProdutoResponse, 0, len(h.Produtos)),
		CreatedAt:     h.CreatedAt,
		UpdatedAt:     h.UpdatedAt,
	}
	for _, p := range h.Produtos {
		out.Produtos = append(out.Produtos, dto.HistoriaProdutoResponse{ProdutoID: p.ProdutoID, ProdutoModuloID: p.ProdutoModuloID})
	}
	return out
}
