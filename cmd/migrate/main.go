// migrate aplica ou desfaz as migrations embutidas em internal/infrastructure/postgres/migrations.
//
// Uso:
//
//	go run ./cmd/migrate up
//	go run ./cmd/migrate down
//	go run ./cmd/migrate steps -1
//	go run ./cmd/migrate force 1
//	go run ./cmd/migrate version
//
// A conexão vem da mesma configuração da API (DATABASE_URL ou DB_*).
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jhoicas/BusinessHub-api/internal/infrastructure/postgres"
	"github.com/jhoicas/BusinessHub-api/pkg/config"
	"github.com/jhoicas/BusinessHub-api/pkg/logger"
)

const usage = "uso: migrate up | down | steps N | force V | version"

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "carregar configuração: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	mg, err := postgres.NewMigrator(cfg.DB.ConnectionString(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("preparar migrations")
	}
	defer func() {
		if err := mg.Close(); err != nil {
			log.Warn().Err(err).Msg("fechar migrator")
		}
	}()

	if err := run(mg, os.Args[1:]); err != nil {
		log.Error().Err(err).Str("cmd", os.Args[1]).Msg("migrate falhou")
		_ = mg.Close()
		os.Exit(1)
	}
}

func run(mg *postgres.Migrator, args []string) error {
	switch args[0] {
	case "up":
		return mg.Up()
	case "down":
		return mg.Down()
	case "steps":
		n, err := intArg(args)
		if err != nil {
			return err
		}
		return mg.Steps(n)
	case "force":
		v, err := intArg(args)
		if err != nil {
			return err
		}
		return mg.Force(v)
	case "version":
		version, dirty, err := mg.Version()
		if err != nil {
			return err
		}
		fmt.Printf("version=%d dirty=%t\n", version, dirty)
		return nil
	default:
		return fmt.Errorf("comando desconhecido %q (%s)", args[0], usage)
	}
}

func intArg(args []string) (int, error) {
	if len(args) < 2 {
		return 0, fmt.Errorf("%s: falta o número (%s)", args[0], usage)
	}
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, fmt.Errorf("%s: número inválido %q", args[0], args[1])
	}
	return n, nil
}
