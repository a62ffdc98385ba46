package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/BusinessHub-api/internal/application/dto"
	"github.com/jhoicas/BusinessHub-api/internal/application/tenant"
	"github.com/jhoicas/BusinessHub-api/pkg/jwt"
)

// LocalCaller chave em c.Locals com a identidade autenticada.
const LocalCaller = "caller"

// AuthMiddleware valida o Bearer Token JWT e guarda a identidade (tenant.Caller) em c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return abort(c, fiber.StatusUnauthorized, "MISSING_TOKEN", "header Authorization obrigatório")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return abort(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "formato: Bearer <token>")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return abort(c, fiber.StatusUnauthorized, "MISSING_TOKEN", "token vazio")
		}
		id, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return abort(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "token inválido ou expirado")
		}
		c.Locals(LocalCaller, tenant.Caller{
			UserID:      id.UserID,
			EmpresaID:   id.EmpresaID,
			Role:        id.Role,
			GlobalAdmin: id.GlobalAdmin,
		})
		return c.Next()
	}
}

// RequireRole autoriza apenas os papéis informados. Admin global passa sempre.
// Deve vir depois de AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller, ok := c.Locals(LocalCaller).(tenant.Caller)
		if !ok {
			return abort(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "identidade ausente")
		}
		if caller.Role == "" {
			return abort(c, fiber.StatusUnauthorized, "MISSING_ROLE", "token sem papel")
		}
		if caller.GlobalAdmin {
			return c.Next()
		}
		for _, r := range roles {
			if caller.Role == r {
				return c.Next()
			}
		}
		return abort(c, fiber.StatusForbidden, "FORBIDDEN", "papel sem permissão para este recurso")
	}
}

// RequireGlobalAdmin restringe a rota a administradores globais.
func RequireGlobalAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !CallerFrom(c).GlobalAdmin {
			return abort(c, fiber.StatusForbidden, "FORBIDDEN", "apenas administradores globais")
		}
		return c.Next()
	}
}

// CallerFrom devolve a identidade do contexto (zero se não autenticado).
func CallerFrom(c *fiber.Ctx) tenant.Caller {
	caller, _ := c.Locals(LocalCaller).(tenant.Caller)
	return caller
}

// GetUserID devolve o UserID do contexto (depois do middleware de auth).
func GetUserID(c *fiber.Ctx) string { return CallerFrom(c).UserID }

// GetEmpresaID devolve o EmpresaID do contexto (depois do middleware de auth).
func GetEmpresaID(c *fiber.Ctx) string { return CallerFrom(c).EmpresaID }

// GetRole devolve o papel do contexto (depois do middleware de auth).
func GetRole(c *fiber.Ctx) string { return CallerFrom(c).Role }

func abort(c *fiber.Ctx, status int, code, msg string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
}
