package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/BusinessHub-api/internal/application/dto"
	"github.com/jhoicas/BusinessHub-api/internal/application/usecase"
)

// ProdutoHandler produtos e seus módulos adicionais.
type ProdutoHandler struct {
	uc *usecase.ProdutoUseCase
}

// NewProdutoHandler constrói o handler.
func NewProdutoHandler(uc *usecase.ProdutoUseCase) *ProdutoHandler {
	return &ProdutoHandler{uc: uc}
}

// Create godoc
// @Summary      Criar produto
// @Tags         produtos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProdutoRequest  true  "Produto e módulos opcionais"
// @Success      201   {object}  dto.ProdutoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/produtos [post]
func (h *ProdutoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProdutoRequest
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
// @Summary      Obter produto com módulos
// @Tags         produtos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do produto"
// @Success      200  {object}  dto.ProdutoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/produtos/{id} [get]
func (h *ProdutoHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar produtos
// @Tags         produtos
// @Security     Bearer
// @Produce      json
// @Param        empresaId  query  string  false  "Empresa (admin global)"
// @Param        q          query  string  false  "Busca por nome"
// @Param        ativo      query  bool    false  "Filtrar por ativo"
// @Param        limit      query  int     false  "Limite"  default(20)
// @Param        offset     query  int     false  "Offset"  default(0)
// @Success      200        {object}  dto.ListResponse[dto.ProdutoResponse]
// @Router       /api/produtos [get]
func (h *ProdutoHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), CallerFrom(c), c.Query("empresaId"), pageFrom(c), c.Query("q"), boolQuery(c, "ativo"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar produto
// @Tags         produtos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do produto"
// @Param        body  body  dto.UpdateProdutoRequest  true  "Campos a alterar"
// @Success      200   {object}  dto.ProdutoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/produtos/{id} [put]
func (h *ProdutoHandler) Update(c *fiber.Ctx) error {
	id, err := param(c, "id")
	if err != nil {
		return err
	}
	var in dto.UpdateProdutoRequest
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
// @Summary      Remover produto
// @Tags         produtos
// @Security     Bearer
// @Param        id   path  string  true  "ID do produto"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/produtos/{id} [delete]
func (h *ProdutoHandler) Delete(c *fiber.Ctx) error {
	id, err := param(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.UserContext(), CallerFrom(c), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddModulo godoc
// @Summary      Adicionar módulo ao produto
// @Tags         produtos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do produto"
// @Param        body  body  dto.ProdutoModuloRequest  true  "Módulo"
// @Success      201   {object}  dto.ProdutoModuloResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/produtos/{id}/modulos [post]
func (h *ProdutoHandler) AddModulo(c *fiber.Ctx) error {
	id, err := param(c, "id")
	if err != nil {
		return err
	}
	var in dto.ProdutoModuloRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.AddModulo(c.UserContext(), CallerFrom(c), id, in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateModulo godoc
// @Summary      Atualizar módulo do produto
// @Tags         produtos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id        path  string  true  "ID do produto"
// @Param        moduloId  path  string  true  "ID do módulo"
// @Param        body      body  dto.UpdateProdutoModuloRequest  true  "Campos a alterar"
// @Success      200       {object}  dto.ProdutoModuloResponse
// @Failure      404       {object}  dto.ErrorResponse
// @Router       /api/produtos/{id}/modulos/{moduloId} [put]
func (h *ProdutoHandler) UpdateModulo(c *fiber.Ctx) error {
	id, err := param(c, "id")
	if err != nil {
		return err
	}
	moduloID, err := param(c, "moduloId")
	if err != nil {
		return err
	}
	var in dto.UpdateProdutoModuloRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.UpdateModulo(c.UserContext(), CallerFrom(c), id, moduloID, in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// DeleteModulo godoc
// @Summary      Remover módulo do produto
// @Tags         produtos
// @Security     Bearer
// @Param        id        path  string  true  "ID do produto"
// @Param        moduloId  path  string  true  "ID do módulo"
// @Success      204
// @Failure      404       {object}  dto.ErrorResponse
// @Router       /api/produtos/{id}/modulos/{moduloId} [delete]
func (h *ProdutoHandler) DeleteModulo(c *fiber.Ctx) error {
	id, err := param(c, "id")
	if err != nil {
		return err
	}
	moduloID, err := param(c, "moduloId")
	if err != nil {
		return err
	}
	if err := h.uc.DeleteModulo(c.UserContext(), CallerFrom(c), id, moduloID); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
