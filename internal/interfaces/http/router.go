package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/BusinessHub-api/internal/application/auth"
	"github.com/jhoicas/BusinessHub-api/internal/application/financeiro"
	"github.com/jhoicas/BusinessHub-api/internal/application/usecase"
	"github.com/jhoicas/BusinessHub-api/internal/domain/entity"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	AuthUC           *auth.AuthUseCase
	EmpresaUC        *usecase.EmpresaUseCase
	UserUC           *usecase.UserUseCase
	PessoaUC         *usecase.PessoaUseCase
	CategoriaUC      *usecase.LookupUseCase
	FormaPagamentoUC *usecase.LookupUseCase
	ProdutoUC        *usecase.ProdutoUseCase
	HistoriaUC       *usecase.HistoriaUseCase
	HistoriaStatusUC *usecase.HistoriaLookupUseCase
	HistoriaTipoUC   *usecase.HistoriaLookupUseCase
	TicketUC         *usecase.TicketUseCase
	ContaUC          *financeiro.ContaUseCase
	ExtratoUC        *financeiro.ExtratoUseCase
	AfiliadoUC       *financeiro.AfiliadoUseCase
	ResumoUC         *financeiro.ResumoUseCase
	JWTSecret        string
	LoginRatePerMin  int
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", LoginRateLimit(deps.LoginRatePerMin), authHandler.Login)

	// Rotas protegidas (Bearer Token)
	protected := api.Group("", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/me", authHandler.Me)
	admin := RequireRole(entity.RoleAdmin)

	// Empresas: listar, criar e remover só admin global
	empresas := protected.Group("/empresas", admin)
	empresaHandler := NewEmpresaHandler(deps.EmpresaUC)
	empresas.Get("/", RequireGlobalAdmin(), empresaHandler.List)
	empresas.Post("/", RequireGlobalAdmin(), empresaHandler.Create)
	empresas.Get("/:id", empresaHandler.GetByID)
	empresas.Put("/:id", empresaHandler.Update)
	empresas.Delete("/:id", RequireGlobalAdmin(), empresaHandler.Delete)

	// Users
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", admin, userHandler.Create)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", admin, userHandler.Update)
	users.Put("/:id/senha", userHandler.ChangePassword)
	users.Delete("/:id", admin, userHandler.Delete)

	// Clientes e fornecedores
	registerPessoas(protected.Group("/clientes"), NewPessoaHandler(deps.PessoaUC, entity.PessoaCliente))
	registerPessoas(protected.Group("/fornecedores"), NewPessoaHandler(deps.PessoaUC, entity.PessoaFornecedor))

	// Cadastros simples
	registerLookup(protected.Group("/categorias-fornecedor"), NewLookupHandler(deps.CategoriaUC))
	registerLookup(protected.Group("/formas-pagamento"), NewLookupHandler(deps.FormaPagamentoUC))

	// Produtos
	produtos := protected.Group("/produtos")
	produtoHandler := NewProdutoHandler(deps.ProdutoUC)
	produtos.Get("/", produtoHandler.List)
	produtos.Post("/", produtoHandler.Create)
	produtos.Get("/:id", produtoHandler.GetByID)
	produtos.Put("/:id", produtoHandler.Update)
	produtos.Delete("/:id", produtoHandler.Delete)
	produtos.Post("/:id/modulos", produtoHandler.AddModulo)
	produtos.Put("/:id/modulos/:moduloId", produtoHandler.UpdateModulo)
	produtos.Delete("/:id/modulos/:moduloId", produtoHandler.DeleteModulo)

	// Histórias (board antes de /:id)
	historias := protected.Group("/historias")
	historiaHandler := NewHistoriaHandler(deps.HistoriaUC)
	historias.Get("/board", historiaHandler.Board)
	historias.Get("/", historiaHandler.List)
	historias.Post("/", historiaHandler.Create)
	historias.Get("/:id", historiaHandler.GetByID)
	historias.Put("/:id", historiaHandler.Update)
	historias.Patch("/:id/mover", historiaHandler.Mover)
	historias.Delete("/:id", historiaHandler.Delete)

	registerHistoriaLookup(protected.Group("/historia-status"), NewHistoriaLookupHandler(deps.HistoriaStatusUC))
	registerHistoriaLookup(protected.Group("/historia-tipos"), NewHistoriaLookupHandler(deps.HistoriaTipoUC))

	// Tickets
	tickets := protected.Group("/tickets")
	ticketHandler := NewTicketHandler(deps.TicketUC)
	tickets.Get("/", ticketHandler.List)
	tickets.Post("/", ticketHandler.Create)
	tickets.Get("/:id", ticketHandler.GetByID)
	tickets.Put("/:id", ticketHandler.Update)
	tickets.Patch("/:id/status", ticketHandler.UpdateStatus)
	tickets.Delete("/:id", ticketHandler.Delete)
	tickets.Post("/:id/respostas", ticketHandler.AddResposta)
	tickets.Post("/:id/anexos", ticketHandler.AddAnexo)
	tickets.Get("/:id/anexos/:anexoId", ticketHandler.DownloadAnexo)

	// Contas a pagar e a receber
	registerContas(protected.Group("/contas-pagar"), NewContaHandler(deps.ContaUC, deps.ExtratoUC, entity.ContaPagar))
	registerContas(protected.Group("/contas-receber"), NewContaHandler(deps.ContaUC, deps.ExtratoUC, entity.ContaReceber))

	// Afiliados
	afiliados := protected.Group("/afiliados")
	afiliadoHandler := NewAfiliadoHandler(deps.AfiliadoUC)
	afiliados.Get("/", afiliadoHandler.List)
	afiliados.Post("/", afiliadoHandler.Create)
	afiliados.Get("/:id", afiliadoHandler.GetByID)
	afiliados.Put("/:id", afiliadoHandler.Update)
	afiliados.Delete("/:id", afiliadoHandler.Delete)
	afiliados.Post("/:id/comissoes", afiliadoHandler.GerarComissao)

	// Financeiro
	financeiroHandler := NewFinanceiroHandler(deps.ResumoUC)
	protected.Get("/financeiro/resumo", financeiroHandler.Resumo)
}

func registerPessoas(g fiber.Router, h *PessoaHandler) {
	g.Get("/", h.List)
	g.Post("/", h.Create)
	g.Get("/:id", h.GetByID)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}

func registerLookup(g fiber.Router, h *LookupHandler) {
	g.Get("/", h.List)
	g.Post("/", h.Create)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}

func registerHistoriaLookup(g fiber.Router, h *HistoriaLookupHandler) {
	g.Get("/", h.List)
	g.Post("/", h.Create)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}

func registerContas(g fiber.Router, h *ContaHandler) {
	g.Get("/", h.List)
	g.Post("/", h.Create)
	g.Get("/:id", h.GetByID)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
	g.Patch("/:id/status", h.UpdateStatus)
	g.Patch("/:id/parcelas/:parcelaId/status", h.UpdateParcelaStatus)
	g.Get("/:id/extrato.pdf", h.Extrato)
}
