// seed prepara um banco vazio: cria a primeira empresa, o administrador global
// e as tabelas auxiliares padrão (formas de pagamento, status e tipos de história).
//
// Uso: go run ./cmd/seed -cnpj 12345678000195 -nome "Minha Empresa" -email admin@empresa.com -senha segredo
//
// Os valores também podem vir de SEED_CNPJ, SEED_NOME, SEED_EMAIL e SEED_SENHA.
// Tudo roda em uma transação; se o CNPJ já existir nada é gravado.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/BusinessHub-api/internal/domain"
	"github.com/jhoicas/BusinessHub-api/internal/domain/entity"
	"github.com/jhoicas/BusinessHub-api/internal/infrastructure/postgres"
	"github.com/jhoicas/BusinessHub-api/pkg/config"
	"github.com/jhoicas/BusinessHub-api/pkg/logger"
	"github.com/jhoicas/BusinessHub-api/pkg/texto"
)

var formasPagamento = []string{"PIX", "Boleto", "Cartão de crédito", "Cartão de débito", "Transferência", "Dinheiro"}

type corOrdem struct {
	nome string
	cor  string
}

// Colunas do kanban na ordem em que aparecem.
var historiaStatus = []corOrdem{
	{"A fazer", "#9e9e9e"},
	{"Em andamento", "#1e88e5"},
	{"Homologação", "#fb8c00"},
	{"Concluída", "#43a047"},
}

var historiaTipos = []corOrdem{
	{"Implantação", "#3949ab"},
	{"Treinamento", "#00897b"},
	{"Customização", "#8e24aa"},
}

type params struct {
	cnpj  string
	nome  string
	email string
	senha string
}

func main() {
	var p params
	flag.StringVar(&p.cnpj, "cnpj", os.Getenv("SEED_CNPJ"), "CNPJ da empresa")
	flag.StringVar(&p.nome, "nome", envOr("SEED_NOME", "BusinessHub"), "nome da empresa")
	flag.StringVar(&p.email, "email", os.Getenv("SEED_EMAIL"), "email do administrador global")
	flag.StringVar(&p.senha, "senha", os.Getenv("SEED_SENHA"), "senha do administrador global")
	flag.Parse()

	p.cnpj = texto.SoDigitos(p.cnpj)
	p.email = strings.ToLower(strings.TrimSpace(p.email))
	if len(p.cnpj) != 14 || p.email == "" || len(p.senha) < 8 {
		fmt.Fprintln(os.Stderr, "informe -cnpj (14 dígitos), -email e -senha (mínimo 8 caracteres)")
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "carregar configuração: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level}).Component("seed")

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com PostgreSQL")
	}
	defer pool.Close()

	tx, err := pool.Begin(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir transação")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	empresaID, err := seed(ctx, tx, p)
	if errors.Is(err, domain.ErrDuplicate) {
		log.Warn().Str("cnpj", p.cnpj).Msg("empresa já existe, nada a fazer")
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("seed falhou")
		_ = tx.Rollback(ctx)
		pool.Close()
		os.Exit(1)
	}
	if err := tx.Commit(ctx); err != nil {
		log.Fatal().Err(err).Msg("commit")
	}
	log.Info().Str("empresa_id", empresaID).Str("email", p.email).Msg("seed concluído")
}

func seed(ctx context.Context, tx pgx.Tx, p params) (string, error) {
	empresas := postgres.NewEmpresaRepository(tx)
	existing, err := empresas.GetByCNPJ(ctx, p.cnpj)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", domain.ErrDuplicate
	}

	now := time.Now()
	empresa := &entity.Empresa{
		ID:        uuid.New().String(),
		Nome:      p.nome,
		CNPJ:      p.cnpj,
		Email:     p.email,
		Ativo:     true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := empresas.Create(ctx, empresa); err != nil {
		return "", fmt.Errorf("criar empresa: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(p.senha), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash da senha: %w", err)
	}
	admin := &entity.User{
		ID:           uuid.New().String(),
		EmpresaID:    empresa.ID,
		Nome:         "Administrador",
		Email:        p.email,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		GlobalAdmin:  true,
		Ativo:        true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := postgres.NewUserRepository(tx).Create(ctx, admin); err != nil {
		return "", fmt.Errorf("criar administrador: %w", err)
	}

	formas := postgres.NewLookupRepository(tx, entity.LookupFormaPagamento)
	for _, nome := range formasPagamento {
		l := &entity.Lookup{ID: uuid.New().String(), EmpresaID: empresa.ID, Nome: nome, Ativo: true, CreatedAt: now, UpdatedAt: now}
		if err := formas.Create(ctx, l); err != nil {
			return "", fmt.Errorf("forma de pagamento %s: %w", nome, err)
		}
	}

	for table, rows := range map[string][]corOrdem{
		entity.LookupHistoriaStatus: historiaStatus,
		entity.LookupHistoriaTipo:   historiaTipos,
	} {
		repo := postgres.NewHistoriaLookupRepository(tx, table)
		for i, row := range rows {
			l := &entity.HistoriaLookup{
				ID:        uuid.New().String(),
				EmpresaID: empresa.ID,
				Nome:      row.nome,
				Cor:       row.cor,
				Ordem:     i + 1,
				Ativo:     true,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := repo.Create(ctx, l); err != nil {
				return "", fmt.Errorf("%s %s: %w", table, row.nome, err)
			}
		}
	}
	return empresa.ID, nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
