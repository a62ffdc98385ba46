package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/BusinessHub-api/internal/application/dto"
	"github.com/jhoicas/BusinessHub-api/internal/application/usecase"
)

// LookupHandler serve categorias de fornecedor e formas de pagamento.
type LookupHandler struct {
	uc *usecase.LookupUseCase
}

// NewLookupHandler constrói o handler.
func NewLookupHandler(uc *usecase.LookupUseCase) *LookupHandler {
	return &LookupHandler{uc: uc}
}

// Create godoc
// @Summary      Criar categoria de fornecedor ou forma de pagamento
// @Tags         cadastros
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LookupRequest  true  "Nome e ativo"
// @Success      201   {object}  dto.LookupResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/categorias-fornecedor [post]
// @Router       /api/formas-pagamento [post]
func (h *LookupHandler) Create(c *fiber.Ctx) error {
	var in dto.LookupRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), CallerFrom(c), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar categorias de fornecedor ou formas de pagamento
// @Tags         cadastros
// @Security     Bearer
// @Produce      json
// @Param        empresaId  query  string  false  "Empresa (admin global)"
// @Param        q          query  string  false  "Busca por nome"
// @Param        ativo      query  bool    false  "Filtrar por ativo"
// @Param        limit      query  int     false  "Limite"  default(20)
// @Param        offset     query  int     false  "Offset"  default(0)
// @Success      200        {object}  dto.ListResponse[dto.LookupResponse]
// @Router       /api/categorias-fornecedor [get]
// @Router       /api/formas-pagamento [get]
func (h *LookupHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), CallerFrom(c), c.Query("empresaId"), pageFrom(c), c.Query("q"), boolQuery(c, "ativo"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar categoria de fornecedor ou forma de pagamento
// @Tags         cadastros
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID"
// @Param        body  body  dto.LookupRequest  true  "Nome e ativo"
// @Success      200   {object}  dto.LookupResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/categorias-fornecedor/{id} [put]
// @Router       /api/formas-pagamento/{id} [put]
func (h *LookupHandler) Update(c *fiber.Ctx) error {
	id, err := param(c, "id")
	if err != nil {
		return err
	}
	var in dto.LookupRequest
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
// @Summary      Remover categoria de fornecedor ou forma de pagamento
// @Tags         cadastros
// @Security     Bearer
// @Param        id   path  string  true  "ID"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categorias-fornecedor/{id} [delete]
// @Router       /api/formas-pagamento/{id} [delete]
func (h *LookupHandler) Delete(c *fiber.Ctx) error {
	id, err := param(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.UserContext(), CallerFrom(c), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HistoriaLookupHandler serve status e tipos de história.
type HistoriaLookupHandler struct {
	uc *usecase.HistoriaLookupUseCase
}

// NewHistoriaLookupHandler constrói o handler.
func NewHistoriaLookupHandler(uc *usecase.HistoriaLookupUseCase) *HistoriaLookupHandler {
	return &HistoriaLookupHandler{uc: uc}
}

// Create godoc
// @Summary      Criar status ou tipo de história
// @Tags         historias
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.HistoriaLookupRequest  true  "Nome, cor, ordem"
// @Success      201   {object}  dto.HistoriaLookupResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/historia-status [post]
// @Router       /api/historia-tipos [post]
func (h *HistoriaLookupHandler) Create(c *fiber.Ctx) error {
	var in dto.HistoriaLookupRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), CallerFrom(c), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar status ou tipos de história
// @Tags         historias
// @Security     Bearer
// @Produce      json
// @Param        empresaId  query  string  false  "Empresa (admin global)"
// @Param        ativo      query  bool    false  "Filtrar por ativo"
// @Param        limit      query  int     false  "Limite"  default(20)
// @Param        offset     query  int     false  "Offset"  default(0)
// @Success      200        {object}  dto.ListResponse[dto.HistoriaLookupResponse]
// @Router       /api/historia-status [get]
// @Router       /api/historia-tipos [get]
func (h *HistoriaLookupHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), CallerFrom(c), c.Query("empresaId"), pageFrom(c), boolQuery(c, "ativo"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar status ou tipo de história
// @Tags         historias
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID"
// @Param        body  body  dto.HistoriaLookupRequest  true  "Nome, cor, ordem"
// @Success      200   {object}  dto.HistoriaLookupResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/historia-status/{id} [put]
// @Router       /api/historia-tipos/{id} [put]
func (h *HistoriaLookupHandler) Update(c *fiber.Ctx) error {
	id, err := param(c, "id")
	if err != nil {
		return err
	}
	var in dto.HistoriaLookupRequest
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
// @Summary      Remover status ou tipo de história
// @Tags         historias
// @Security     Bearer
// @Param        id   path  string  true  "ID"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/historia-status/{id} [delete]
// @Router       /api/historia-tipos/{id} [delete]
func (h *HistoriaLookupHandler) Delete(c *fiber.Ctx) error {
	id, err := param(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.UserContext(), CallerFrom(c), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
