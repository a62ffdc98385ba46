package financeiro

import (
	"context"
	"time"

	"github.com/jhoicas/BusinessHub-api/internal/domain/entity"
	"github.com/jhoicas/BusinessHub-api/internal/domain/repository"
)

// ContaTxRunner executa fn dentro de uma transação com o repositório de contas atado a ela.
type ContaTxRunner interface {
	RunContas(ctx context.Context, fn func(contas repository.ContaRepository) error) error
}

// ExtratoData tudo o que o gerador precisa para o extrato de uma conta.
// Parcelas já inclui a parcela implícita quando a conta não foi parcelada.
type ExtratoData struct {
	Empresa        *entity.Empresa
	Conta          *entity.Conta
	Parcelas       []entity.Parcela
	Pessoa         *entity.Pessoa   // nulo em comissões
	Afiliado       *entity.Afiliado // só em comissões
	FormaPagamento string
	GeradoEm       time.Time
}

// ExtratoGenerator define o porto de saída que gera o PDF do extrato.
type ExtratoGenerator interface {
	GenerateExtrato(ctx context.Context, data ExtratoData) ([]byte, error)
}
