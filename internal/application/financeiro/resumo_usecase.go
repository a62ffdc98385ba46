package financeiro

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/BusinessHub-api/internal/application/dto"
	"github.com/jhoicas/BusinessHub-api/internal/application/ports"
	"github.com/jhoicas/BusinessHub-api/internal/application/tenant"
	"github.com/jhoicas/BusinessHub-api/internal/domain/entity"
	"github.com/jhoicas/BusinessHub-api/internal/domain/repository"
)

// ResumoTTL validade do resumo em cache; escritas em contas invalidam antes.
const ResumoTTL = 60 * time.Second

// ResumoCacheKey chave do resumo financeiro da empresa.
func ResumoCacheKey(empresaID string) string {
	return "financeiro:resumo:" + empresaID
}

// ResumoUseCase painel com totais pendentes, vencidos e pagos por tipo de conta.
type ResumoUseCase struct {
	repo  repository.ContaRepository
	cache ports.Cache
	now   func() time.Time
}

// NewResumoUseCase constrói o caso de uso.
func NewResumoUseCase(repo repository.ContaRepository, cache ports.Cache) *ResumoUseCase {
	return &ResumoUseCase{repo: repo, cache: cache, now: time.Now}
}

// Get devolve o resumo da empresa resolvida. Pagar e receber são consultados em paralelo.
func (uc *ResumoUseCase) Get(ctx context.Context, c tenant.Caller, empresaID string) (*dto.ResumoFinanceiroResponse, error) {
	empresaID, err := tenant.Resolve(c, empresaID)
	if err != nil {
		return nil, err
	}
	var out dto.ResumoFinanceiroResponse
	err = uc.cache.FetchJSON(ctx, ResumoCacheKey(empresaID), ResumoTTL, &out, func(ctx context.Context) (any, error) {
		return uc.load(ctx, empresaID)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (uc *ResumoUseCase) load(ctx context.Context, empresaID string) (*dto.ResumoFinanceiroResponse, error) {
	now := uc.now()
	hoje := dto.NewDate(now).Time

	var pagar, receber *repository.ResumoTotais
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		pagar, err = uc.repo.Resumo(gctx, empresaID, entity.ContaPagar, hoje)
		return err
	})
	g.Go(func() (err error) {
		receber, err = uc.repo.Resumo(gctx, empresaID, entity.ContaReceber, hoje)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &dto.ResumoFinanceiroResponse{
		EmpresaID:     empresaID,
		Pagar:         toResumoTipo(pagar),
		Receber:       toResumoTipo(receber),
		SaldoPrevisto: receber.Pendente.Sub(pagar.Pendente),
		GeradoEm:      now,
	}, nil
}

func toResumoTipo(t *repository.ResumoTotais) dto.ResumoTipoResponse {
	return dto.ResumoTipoResponse{
		Pendente:    t.Pendente,
		QtdPendente: t.QtdPendente,
		Vencido:     t.Vencido,
		QtdVencido:  t.QtdVencido,
		Pago:        t.Pago,
		QtdPago:     t.QtdPago,
	}
}
