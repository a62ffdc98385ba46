package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/BusinessHub-api/internal/application/dto"
	"github.com/jhoicas/BusinessHub-api/internal/application/financeiro"
)

// AfiliadoHandler afiliados e geração de comissões.
type AfiliadoHandler struct {
	uc *financeiro.AfiliadoUseCase
}

// NewAfiliadoHandler constrói o handler.
func NewAfiliadoHandler(uc *financeiro.AfiliadoUseCase) *AfiliadoHandler {
	return &AfiliadoHandler{uc: uc}
}

// Create godoc
// @Summary      Criar afiliado
// @Tags         afiliados
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAfiliadoRequest  true  "Dados do afiliado"
// @Success      201   {object}  dto.AfiliadoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/afiliados [post]
func (h *AfiliadoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAfiliadoRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), CallerFrom(c), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obter afiliado
// @Tags         afiliados
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do afiliado"
// @Success      200  {object}  dto.AfiliadoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/afiliados/{id} [get]
func (h *AfiliadoHandler) GetByID(c *fiber.Ctx) error {
	id, err := param(c, "id")
	if err != nil {
		return err
	}
	out, err := h.uc.GetByID(c.UserContext(), CallerFrom(c), id)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar afiliados
// @Tags         afiliados
// @Security     Bearer
// @Produce      json
// @Param        empresaId  query  string  false  "Empresa (admin global)"
// @Param        q          query  string  false  "Busca por nome"
// @Param        ativo      query  bool    false  "Filtrar por ativo"
// @Param        limit      query  int     false  "Limite"  default(20)
// @Param        offset     query  int     false  "Offset"  default(0)
// @Success      200        {object}  dto.ListResponse[dto.AfiliadoResponse]
// @Router       /api/afiliados [get]
func (h *AfiliadoHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), CallerFrom(c), c.Query("empresaId"), pageFrom(c), c.Query("q"), boolQuery(c, "ativo"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar afiliado
// @Tags         afiliados
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do afiliado"
// @Param        body  body  dto.UpdateAfiliadoRequest  true  "Campos a alterar"
// @Success      200   {object}  dto.AfiliadoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/afiliados/{id} [put]
func (h *AfiliadoHandler) Update(c *fiber.Ctx) error {
	id, err := param(c, "id")
	if err != nil {
		return err
	}
	var in dto.UpdateAfiliadoRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), CallerFrom(c), id, in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Remover afiliado
// @Tags         afiliados
// @Security     Bearer
// @Param        id   path  string  true  "ID do afiliado"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/afiliados/{id} [delete]
func (h *AfiliadoHandler) Delete(c *fiber.Ctx) error {
	id, err := param(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.UserContext(), CallerFrom(c), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GerarComissao godoc
// @Summary      Gerar conta a pagar de comissão
// @Description  valor = valorBase × percentualComissao / 100, arredondado em centavos.
// @Tags         afiliados
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do afiliado"
// @Param        body  body  dto.GerarComissaoRequest  true  "Base e vencimento"
// @Success      201   {object}  dto.ContaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/afiliados/{id}/comissoes [post]
func (h *AfiliadoHandler) GerarComissao(c *fiber.Ctx) error {
	id, err := param(c, "id")
	if err != nil {
		return err
	}
	var in dto.GerarComissaoRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.GerarComissao(c.UserContext(), CallerFrom(c), id, in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
