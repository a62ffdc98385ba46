package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jhoicas/BusinessHub-api/internal/domain"
	"github.com/jhoicas/BusinessHub-api/internal/domain/entity"
	"github.com/jhoicas/BusinessHub-api/internal/domain/repository"
	"github.com/jhoicas/BusinessHub-api/internal/infrastructure/postgres"
	"github.com/jhoicas/BusinessHub-api/pkg/config"
	"github.com/jhoicas/BusinessHub-api/pkg/logger"
)

// newTestPool sobe um PostgreSQL descartável, aplica as migrations e devolve o pool.
// Pula com -short ou sem Docker disponível.
func newTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("integração com PostgreSQL pulada em -short")
	}
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("businesshub_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		t.Skipf("docker indisponível: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	mg, err := postgres.NewMigrator(dsn, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, mg.Up())
	require.NoError(t, mg.Close())

	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: dsn})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

type fixture struct {
	empresaA, empresaB string
	clienteA           string
}

func seed(t *testing.T, pool *pgxpool.Pool) fixture {
	t.Helper()
	ctx := context.Background()
	now := time.Now().UTC()
	empresas := postgres.NewEmpresaRepository(pool)
	pessoas := postgres.NewPessoaRepository(pool)

	f := fixture{empresaA: uuid.NewString(), empresaB: uuid.NewString(), clienteA: uuid.NewString()}
	require.NoError(t, empresas.Create(ctx, &entity.Empresa{ID: f.empresaA, Nome: "Empresa A", CNPJ: "11222333000181", Ativo: true, CreatedAt: now, UpdatedAt: now}))
	require.NoError(t, empresas.Create(ctx, &entity.Empresa{ID: f.empresaB, Nome: "Empresa B", CNPJ: "44555666000190", Ativo: true, CreatedAt: now, UpdatedAt: now}))
	require.NoError(t, pessoas.Create(ctx, &entity.Pessoa{
		ID: f.clienteA, EmpresaID: f.empresaA, Tipo: entity.PessoaCliente, Nome: "João Conceição",
		Documento: "12345678909", Email: "joao@exemplo.com", Ativo: true, CreatedAt: now, UpdatedAt: now,
	}))
	return f
}

func TestPostgres(t *testing.T) {
	pool := newTestPool(t)
	f := seed(t, pool)
	ctx := context.Background()

	t.Run("pessoa duplicada só dentro da empresa", func(t *testing.T) {
		pessoas := postgres.NewPessoaRepository(pool)
		now := time.Now().UTC()
		dup := &entity.Pessoa{
			ID: uuid.NewString(), EmpresaID: f.empresaA, Tipo: entity.PessoaCliente, Nome: "Outro",
			Documento: "12345678909", Ativo: true, CreatedAt: now, UpdatedAt: now,
		}
		assert.ErrorIs(t, pessoas.Create(ctx, dup), domain.ErrDuplicate)

		dup.ID = uuid.NewString()
		dup.EmpresaID = f.empresaB
		assert.NoError(t, pessoas.Create(ctx, dup))
	})

	t.Run("busca sem acento", func(t *testing.T) {
		pessoas := postgres.NewPessoaRepository(pool)
		list, total, err := pessoas.List(ctx, entity.PessoaCliente, repository.ListFilter{EmpresaID: f.empresaA, Busca: "conceicao", Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, list, 1)
		assert.Equal(t, f.clienteA, list[0].ID)

		_, total, err = pessoas.List(ctx, entity.PessoaCliente, repository.ListFilter{EmpresaID: f.empresaB, Busca: "conceicao", Limit: 10})
		require.NoError(t, err)
		assert.Zero(t, total)
	})

	t.Run("conta com parcelas e resumo", func(t *testing.T) {
		tx := postgres.NewTxRunner(pool)
		contas := postgres.NewContaRepository(pool)
		now := time.Now().UTC()
		venc := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
		contaID := uuid.NewString()
		conta := &entity.Conta{
			ID: contaID, EmpresaID: f.empresaA, Tipo: entity.ContaReceber, PessoaID: &f.clienteA,
			Descricao: "Implantação", Valor: decimal.RequireFromString("100.00"), DataVencimento: venc,
			Status: entity.StatusPendente, NumeroParcelas: 3, IntervaloDias: 30, CreatedAt: now, UpdatedAt: now,
		}
		for i, v := range []string{"33.33", "33.33", "33.34"} {
			conta.Parcelas = append(conta.Parcelas, entity.Parcela{
				ID: uuid.NewString(), ContaID: contaID, Numero: i + 1, Valor: decimal.RequireFromString(v),
				DataVencimento: venc.AddDate(0, 0, 30*i), Status: entity.StatusPendente, CreatedAt: now, UpdatedAt: now,
			})
		}
		require.NoError(t, tx.RunContas(ctx, func(r repository.ContaRepository) error { return r.Create(ctx, conta) }))

		got, err := contas.GetByID(ctx, contaID)
		require.NoError(t, err)
		require.Len(t, got.Parcelas, 3)
		assert.Equal(t, "33.34", got.Parcelas[2].Valor.StringFixed(2))
		assert.Equal(t, "2024-02-09", got.Parcelas[1].DataVencimento.Format("2006-01-02"))

		pago := got.Parcelas[0]
		pago.Status = entity.StatusPago
		pago.DataPagamento = &now
		require.NoError(t, contas.UpdateParcela(ctx, &pago))

		res, err := contas.Resumo(ctx, f.empresaA, entity.ContaReceber, now)
		require.NoError(t, err)
		assert.Equal(t, "66.67", res.Pendente.StringFixed(2))
		assert.Equal(t, 2, res.QtdVencido)
		assert.Equal(t, "33.33", res.Pago.StringFixed(2))

		res, err = contas.Resumo(ctx, f.empresaB, entity.ContaReceber, now)
		require.NoError(t, err)
		assert.Zero(t, res.QtdPendente)
	})

	t.Run("rollback desfaz a transação", func(t *testing.T) {
		tx := postgres.NewTxRunner(pool)
		contas := postgres.NewContaRepository(pool)
		now := time.Now().UTC()
		id := uuid.NewString()
		err := tx.RunContas(ctx, func(r repository.ContaRepository) error {
			if err := r.Create(ctx, &entity.Conta{
				ID: id, EmpresaID: f.empresaA, Tipo: entity.ContaPagar, PessoaID: &f.clienteA, Descricao: "x",
				Valor: decimal.NewFromInt(10), DataVencimento: now, Status: entity.StatusPendente, NumeroParcelas: 1,
				CreatedAt: now, UpdatedAt: now,
			}); err != nil {
				return err
			}
			return domain.ErrInvalidInput
		})
		require.ErrorIs(t, err, domain.ErrInvalidInput)

		got, err := contas.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("FK impede excluir pessoa com conta", func(t *testing.T) {
		err := postgres.NewPessoaRepository(pool).Delete(ctx, f.clienteA)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("excluir inexistente", func(t *testing.T) {
		err := postgres.NewProdutoRepository(pool).Delete(ctx, uuid.NewString())
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
