package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = newValidator()

// newValidator usa o nome do campo JSON (ou query) nas mensagens.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = f.Tag.Get("query")
		}
		return name
	})
	return v
}

// validateStruct devolve 400 VALIDATION com o primeiro campo que falhou.
func validateStruct(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		fe := ve[0]
		msg := fmt.Sprintf("campo %s inválido (%s)", fe.Field(), fe.Tag())
		if fe.Param() != "" {
			msg = fmt.Sprintf("campo %s inválido (%s=%s)", fe.Field(), fe.Tag(), fe.Param())
		}
		return newAPIError(fiber.StatusBadRequest, "VALIDATION", msg)
	}
	return newAPIError(fiber.StatusBadRequest, "VALIDATION", err.Error())
}

// parseBody faz o BodyParser e valida as tags do DTO.
func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return errInvalidBody
	}
	return validateStruct(out)
}

// parseQuery faz o QueryParser e valida as tags do DTO.
func parseQuery(c *fiber.Ctx, out any) error {
	if err := c.QueryParser(out); err != nil {
		return newAPIError(fiber.StatusBadRequest, "VALIDATION", "parâmetros de consulta inválidos")
	}
	return validateStruct(out)
}
