package financeiro

import (
	"fmt"
	"time"

	"github.com/jhoicas/BusinessHub-api/internal/domain"
	"github.com/jhoicas/BusinessHub-api/internal/domain/entity"
)

var (
	ErrStatusInvalido = fmt.Errorf("%w: status inválido", domain.ErrInvalidInput)
	ErrEstornoNegado  = fmt.Errorf("%w: o que está pago só muda de status com estorno", domain.ErrInvalidInput)
)

// Baixa aplica uma mudança de status a uma parcela ou conta.
// "pago" carimba a data de pagamento (a informada ou agora); qualquer outro status a limpa.
// Sair de "pago" para qualquer outro status exige estornar.
type Baixa struct {
	Status        string
	DataPagamento *time.Time
	Estornar      bool
}

// Aplicar valida a transição a partir de atual e devolve o novo par (status, dataPagamento).
func (b Baixa) Aplicar(atual string, now time.Time) (string, *time.Time, error) {
	if !entity.ValidStatusConta(b.Status) {
		return "", nil, ErrStatusInvalido
	}
	if atual == entity.StatusPago && b.Status != entity.StatusPago && !b.Estornar {
		return "", nil, ErrEstornoNegado
	}
	if b.Status != entity.StatusPago {
		return b.Status, nil, nil
	}
	pagoEm := now
	if b.DataPagamento != nil {
		pagoEm = *b.DataPagamento
	}
	return b.Status, &pagoEm, nil
}
