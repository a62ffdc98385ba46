package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/BusinessHub-api/internal/application/auth"
	"github.com/jhoicas/BusinessHub-api/internal/application/financeiro"
	"github.com/jhoicas/BusinessHub-api/internal/application/ports"
	"github.com/jhoicas/BusinessHub-api/internal/application/usecase"
	"github.com/jhoicas/BusinessHub-api/internal/domain/entity"
	"github.com/jhoicas/BusinessHub-api/internal/infrastructure/cache"
	infrapdf "github.com/jhoicas/BusinessHub-api/internal/infrastructure/pdf"
	"github.com/jhoicas/BusinessHub-api/internal/infrastructure/postgres"
	"github.com/jhoicas/BusinessHub-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/BusinessHub-api/internal/interfaces/http"
	"github.com/jhoicas/BusinessHub-api/pkg/config"
	"github.com/jhoicas/BusinessHub-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()

	if cfg.DB.AutoMigrate {
		mg, err := postgres.NewMigrator(cfg.DB.ConnectionString(), log)
		if err != nil {
			log.Fatal().Err(err).Msg("preparar migrations")
		}
		if err := mg.Up(); err != nil {
			log.Fatal().Err(err).Msg("aplicar migrations")
		}
		_ = mg.Close()
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com PostgreSQL")
	}
	defer pool.Close()

	// Cache opcional: *RedisCache nulo vira passthrough para o loader.
	redisCache, err := cache.New(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com Redis")
	}
	if redisCache != nil {
		defer redisCache.Close()
	} else {
		log.Warn().Msg("REDIS_ADDR vazio, cache desligado")
	}

	// Anexos só com bucket configurado; sem ele as rotas respondem 503.
	var objectStorage ports.ObjectStorage
	if cfg.Storage.Enabled() {
		s3, err := storage.NewS3Storage(ctx, cfg.Storage, log)
		if err != nil {
			log.Fatal().Err(err).Msg("configurar object storage")
		}
		if err := s3.EnsureBucket(ctx); err != nil {
			log.Error().Err(err).Str("bucket", cfg.Storage.Bucket).Msg("verificar bucket")
		}
		objectStorage = s3
	} else {
		log.Warn().Msg("STORAGE_BUCKET vazio, anexos desligados")
	}

	// Repositórios
	empresaRepo := postgres.NewEmpresaRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	pessoaRepo := postgres.NewPessoaRepository(pool)
	categoriaRepo := postgres.NewLookupRepository(pool, entity.LookupCategoriaFornecedor)
	formaRepo := postgres.NewLookupRepository(pool, entity.LookupFormaPagamento)
	statusRepo := postgres.NewHistoriaLookupRepository(pool, entity.LookupHistoriaStatus)
	tipoRepo := postgres.NewHistoriaLookupRepository(pool, entity.LookupHistoriaTipo)
	produtoRepo := postgres.NewProdutoRepository(pool)
	historiaRepo := postgres.NewHistoriaRepository(pool)
	ticketRepo := postgres.NewTicketRepository(pool)
	afiliadoRepo := postgres.NewAfiliadoRepository(pool)
	contaRepo := postgres.NewContaRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Casos de uso
	authUC := auth.NewAuthUseCase(userRepo, empresaRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	statusUC := usecase.NewHistoriaLookupUseCase(statusRepo, redisCache, entity.LookupHistoriaStatus)
	tipoUC := usecase.NewHistoriaLookupUseCase(tipoRepo, redisCache, entity.LookupHistoriaTipo)
	contaUC := financeiro.NewContaUseCase(txRunner, contaRepo, pessoaRepo, formaRepo, produtoRepo, redisCache)
	extratoUC := financeiro.NewExtratoUseCase(
		contaRepo, empresaRepo, pessoaRepo, afiliadoRepo, formaRepo,
		infrapdf.NewMarotoExtratoGenerator(),
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    (cfg.HTTP.MaxUploadSizeMiB + 1) << 20,
		ErrorHandler: httpRouter.ErrorHandler(log),
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))
	app.Use(httpRouter.SecurityHeaders(cfg.App.Env == "development"))
	app.Use(httpRouter.CORS(cfg.HTTP.CORSOrigins))

	// Swagger UI em http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "BusinessHub API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:           authUC,
		EmpresaUC:        usecase.NewEmpresaUseCase(empresaRepo),
		UserUC:           usecase.NewUserUseCase(userRepo, empresaRepo),
		PessoaUC:         usecase.NewPessoaUseCase(pessoaRepo, categoriaRepo),
		CategoriaUC:      usecase.NewLookupUseCase(categoriaRepo),
		FormaPagamentoUC: usecase.NewLookupUseCase(formaRepo),
		ProdutoUC:        usecase.NewProdutoUseCase(produtoRepo),
		HistoriaUC:       usecase.NewHistoriaUseCase(historiaRepo, pessoaRepo, userRepo, produtoRepo, statusUC, tipoUC),
		HistoriaStatusUC: statusUC,
		HistoriaTipoUC:   tipoUC,
		TicketUC:         usecase.NewTicketUseCase(ticketRepo, pessoaRepo, userRepo, objectStorage),
		ContaUC:          contaUC,
		ExtratoUC:        extratoUC,
		AfiliadoUC:       financeiro.NewAfiliadoUseCase(afiliadoRepo, contaUC),
		ResumoUC:         financeiro.NewResumoUseCase(contaRepo, redisCache),
		JWTSecret:        cfg.JWT.Secret,
		LoginRatePerMin:  cfg.HTTP.LoginRatePerMin,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
