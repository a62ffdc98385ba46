package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/BusinessHub-api/internal/domain/entity"
)

// ContaFilter filtros da listagem de contas. Tipo é obrigatório.
type ContaFilter struct {
	ListFilter
	Tipo          string
	Status        string
	PessoaID      string
	AfiliadoID    string
	VencimentoDe  *time.Time
	VencimentoAte *time.Time
}

// ResumoTotais totais de parcelas de um tipo de conta.
// Contas sem parcelas persistidas entram pelo próprio cabeçalho.
type ResumoTotais struct {
	Pendente    decimal.Decimal
	QtdPendente int
	Vencido     decimal.Decimal
	QtdVencido  int
	Pago        decimal.Decimal
	QtdPago     int
}

// ContaRepository define o porto de persistência de contas a pagar/receber,
// parcelas e itens. Create grava cabeçalho, parcelas e itens; use dentro de transação.
type ContaRepository interface {
	Create(ctx context.Context, conta *entity.Conta) error
	// GetByID carrega a conta com parcelas (ordenadas por numero) e itens.
	GetByID(ctx context.Context, id string) (*entity.Conta, error)
	List(ctx context.Context, f ContaFilter) ([]*entity.Conta, int, error)
	// Update grava apenas o cabeçalho.
	Update(ctx context.Context, conta *entity.Conta) error
	Delete(ctx context.Context, id string) error

	GetParcela(ctx context.Context, id string) (*entity.Parcela, error)
	UpdateParcela(ctx context.Context, p *entity.Parcela) error
	// ReplaceItens apaga os itens atuais da conta e grava os informados.
	ReplaceItens(ctx context.Context, contaID string, itens []entity.ContaItem) error

	Resumo(ctx context.Context, empresaID, tipo string, hoje time.Time) (*ResumoTotais, error)
}
