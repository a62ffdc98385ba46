package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/BusinessHub-api/internal/application/dto"
	"github.com/jhoicas/BusinessHub-api/internal/application/usecase"
)

// HistoriaHandler histórias do kanban.
type HistoriaHandler struct {
	uc *usecase.HistoriaUseCase
}

// NewHistoriaHandler constrói o handler.
func NewHistoriaHandler(uc *usecase.HistoriaUseCase) *HistoriaHandler {
	return &HistoriaHandler{uc: uc}
}

// Create godoc
// @Summary      Criar história
// @Tags         historias
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateHistoriaRequest  true  "Dados da história"
// @Success      201   {object}  dto.HistoriaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/historias [post]
func (h *HistoriaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateHistoriaRequest
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
// @Summary      Obter história
// @Tags         historias
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da história"
// @Success      200  {object}  dto.HistoriaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/historias/{id} [get]
func (h *HistoriaHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar histórias
// @Tags         historias
// @Security     Bearer
// @Produce      json
// @Param        empresaId  query  string  false  "Empresa (admin global)"
// @Param        q          query  string  false  "Busca por título"
// @Param        statusId   query  string  false  "Filtrar por status"
// @Param        clienteId  query  string  false  "Filtrar por cliente"
// @Param        limit      query  int     false  "Limite"  default(20)
// @Param        offset     query  int     false  "Offset"  default(0)
// @Success      200        {object}  dto.ListResponse[dto.HistoriaResponse]
// @Router       /api/historias [get]
func (h *HistoriaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), CallerFrom(c), c.Query("empresaId"), pageFrom(c),
		c.Query("q"), c.Query("statusId"), c.Query("clienteId"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Board godoc
// @Summary      Kanban de histórias
// @Tags         historias
// @Security     Bearer
// @Produce      json
// @Param        empresaId  query  string  false  "Empresa (admin global)"
// @Success      200        {object}  dto.BoardResponse
// @Router       /api/historias/board [get]
func (h *HistoriaHandler) Board(c *fiber.Ctx) error {
	out, err := h.uc.Board(c.UserContext(), CallerFrom(c), c.Query("empresaId"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar história
// @Tags         historias
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da história"
// @Param        body  body  dto.UpdateHistoriaRequest  true  "Campos a alterar"
// @Success      200   {object}  dto.HistoriaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/historias/{id} [put]
func (h *HistoriaHandler) Update(c *fiber.Ctx) error {
	id, err := param(c, "id")
	if err != nil {
		return err
	}
	var in dto.UpdateHistoriaRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), CallerFrom(c), id, in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Mover godoc
// @Summary      Mover história no kanban
// @Tags         historias
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da história"
// @Param        body  body  dto.MoverHistoriaRequest  true  "Status e ordem"
// @Success      200   {object}  dto.HistoriaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/historias/{id}/mover [patch]
func (h *HistoriaHandler) Mover(c *fiber.Ctx) error {
	id, err := param(c, "id")
	if err != nil {
		return err
	}
	var in dto.MoverHistoriaRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Mover(c.UserContext(), CallerFrom(c), id, in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Remover história
// @Tags         historias
// @Security     Bearer
// @Param        id   path  string  true  "ID da história"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/historias/{id} [delete]
func (h *HistoriaHandler) Delete(c *fiber.Ctx) error {
	id, err := param(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.UserContext(), CallerFrom(c), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
