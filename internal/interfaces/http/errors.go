package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/BusinessHub-api/internal/application/dto"
	"github.com/jhoicas/BusinessHub-api/internal/domain"
	"github.com/jhoicas/BusinessHub-api/pkg/logger"
)

// apiError erro já traduzido para HTTP (status + código).
type apiError struct {
	status  int
	code    string
	message string
}

func (e *apiError) Error() string { return e.message }

func newAPIError(status int, code, message string) *apiError {
	return &apiError{status: status, code: code, message: message}
}

var (
	errInvalidBody = newAPIError(fiber.StatusBadRequest, "INVALID_BODY", "corpo inválido")
	errMissingID   = newAPIError(fiber.StatusBadRequest, "MISSING_ID", "id é obrigatório")
)

// mapping sentinela de domínio → status e código. A ordem importa: o primeiro errors.Is vence.
var domainErrors = []struct {
	err    error
	status int
	code   string
}{
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrUserNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE"},
	{domain.ErrEmailAlreadyExists, fiber.StatusConflict, "DUPLICATE"},
	{domain.ErrConflict, fiber.StatusConflict, "CONFLICT"},
	{domain.ErrStorageUnavailable, fiber.StatusServiceUnavailable, "STORAGE_UNAVAILABLE"},
}

// MapError traduz um erro para (status, corpo). Erros desconhecidos viram 500 INTERNAL.
func MapError(err error) (int, dto.ErrorResponse) {
	var ae *apiError
	if errors.As(err, &ae) {
		return ae.status, dto.ErrorResponse{Code: ae.code, Message: ae.message}
	}
	for _, m := range domainErrors {
		if errors.Is(err, m.err) {
			return m.status, dto.ErrorResponse{Code: m.code, Message: err.Error()}
		}
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code, dto.ErrorResponse{Code: fiberCode(fe.Code), Message: fe.Message}
	}
	return fiber.StatusInternalServerError, dto.ErrorResponse{Code: "INTERNAL", Message: "erro interno"}
}

func fiberCode(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusRequestEntityTooLarge:
		return "PAYLOAD_TOO_LARGE"
	case fiber.StatusBadRequest:
		return "INVALID_BODY"
	}
	return "HTTP_ERROR"
}

// ErrorHandler é o fiber.ErrorHandler da API: handlers só devolvem o erro e a tradução
// acontece aqui, uma vez. 5xx são registrados no log.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, body := MapError(err)
		if status >= fiber.StatusInternalServerError {
			log.Error().Err(err).
				Str("method", c.Method()).
				Str("path", c.Path()).
				Str("empresa_id", GetEmpresaID(c)).
				Msg("erro ao processar requisição")
		}
		return c.Status(status).JSON(body)
	}
}
