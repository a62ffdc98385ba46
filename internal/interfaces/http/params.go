package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/BusinessHub-api/internal/application/dto"
)

// pageFrom lê limit/offset; valores fora da faixa são ajustados pelo use case.
func pageFrom(c *fiber.Ctx) dto.PageRequest {
	return dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
}

// boolQuery lê um filtro booleano opcional (?ativo=true). Ausente ou inválido = nil.
func boolQuery(c *fiber.Ctx, key string) *bool {
	v := c.Query(key)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil
	}
	return &b
}

// param devolve o parâmetro de rota ou MISSING_ID.
func param(c *fiber.Ctx, key string) (string, error) {
	v := c.Params(key)
	if v == "" {
		return "", errMissingID
	}
	return v, nil
}
