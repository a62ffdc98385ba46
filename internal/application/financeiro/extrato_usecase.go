package financeiro

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/BusinessHub-api/internal/application/tenant"
	"github.com/jhoicas/BusinessHub-api/internal/domain"
	"github.com/jhoicas/BusinessHub-api/internal/domain/repository"
)

// ExtratoUseCase gera o extrato em PDF de uma conta e suas parcelas.
type ExtratoUseCase struct {
	contas    repository.ContaRepository
	empresas  repository.EmpresaRepository
	pessoas   repository.PessoaRepository
	afiliados repository.AfiliadoRepository
	formas    repository.LookupRepository
	generator ExtratoGenerator
}

// NewExtratoUseCase constrói o caso de uso injetando todas as dependências.
func NewExtratoUseCase(
	contas repository.ContaRepository,
	empresas repository.EmpresaRepository,
	pessoas repository.PessoaRepository,
	afiliados repository.AfiliadoRepository,
	formas repository.LookupRepository,
	generator ExtratoGenerator,
) *ExtratoUseCase {
	return &ExtratoUseCase{
		contas:    contas,
		empresas:  empresas,
		pessoas:   pessoas,
		afiliados: afiliados,
		formas:    formas,
		generator: generator,
	}
}

// Generate devolve (pdf, nome do arquivo). Conta de outra empresa ou de outro tipo responde ErrNotFound.
func (uc *ExtratoUseCase) Generate(ctx context.Context, c tenant.Caller, tipo, id string) ([]byte, string, error) {
	// ── 1. Conta ──────────────────────────────────────────────────────────────
	conta, err := load(ctx, uc.contas, c, tipo, id)
	if err != nil {
		return nil, "", err
	}

	// ── 2. Empresa ────────────────────────────────────────────────────────────
	empresa, err := uc.empresas.GetByID(ctx, conta.EmpresaID)
	if err != nil {
		return nil, "", fmt.Errorf("extrato: obter empresa: %w", err)
	}
	if empresa == nil {
		return nil, "", domain.ErrNotFound
	}

	data := ExtratoData{
		Empresa:  empresa,
		Conta:    conta,
		Parcelas: ParcelasOuImplicita(conta),
		GeradoEm: time.Now(),
	}

	// ── 3. Contraparte (pessoa ou afiliado) ───────────────────────────────────
	if conta.PessoaID != nil {
		if data.Pessoa, err = uc.pessoas.GetByID(ctx, *conta.PessoaID); err != nil {
			return nil, "", fmt.Errorf("extrato: obter pessoa: %w", err)
		}
	}
	if conta.AfiliadoID != nil {
		if data.Afiliado, err = uc.afiliados.GetByID(ctx, *conta.AfiliadoID); err != nil {
			return nil, "", fmt.Errorf("extrato: obter afiliado: %w", err)
		}
	}
	if conta.FormaPagamentoID != nil {
		if f, fErr := uc.formas.GetByID(ctx, *conta.FormaPagamentoID); fErr == nil && f != nil {
			data.FormaPagamento = f.Nome
		}
	}

	// ── 4. PDF ────────────────────────────────────────────────────────────────
	pdf, err := uc.generator.GenerateExtrato(ctx, data)
	if err != nil {
		return nil, "", fmt.Errorf("extrato: geração falhou: %w", err)
	}
	short := conta.ID
	if len(short) > 8 {
		short = short[:8]
	}
	return pdf, fmt.Sprintf("extrato_%s_%s.pdf", conta.Tipo, short), nil
}
