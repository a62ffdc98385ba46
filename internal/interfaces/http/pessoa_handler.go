package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/BusinessHub-api/internal/application/dto"
	"github.com/jhoicas/BusinessHub-api/internal/application/usecase"
)

// PessoaHandler serve /clientes e /fornecedores; cada instância é presa a um tipo.
type PessoaHandler struct {
	uc   *usecase.PessoaUseCase
	tipo string
}

// NewPessoaHandler constrói o handler para o tipo (cliente ou fornecedor).
func NewPessoaHandler(uc *usecase.PessoaUseCase, tipo string) *PessoaHandler {
	return &PessoaHandler{uc: uc, tipo: tipo}
}

// Create godoc
// @Summary      Criar cliente ou fornecedor
// @Tags         pessoas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePessoaRequest  true  "Dados da pessoa"
// @Success      201   {object}  dto.PessoaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/clientes [post]
// @Router       /api/fornecedores [post]
func (h *PessoaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePessoaRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), CallerFrom(c), h.tipo, in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obter cliente ou fornecedor
// @Tags         pessoas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID"
// @Success      200  {object}  dto.PessoaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clientes/{id} [get]
// @Router       /api/fornecedores/{id} [get]
func (h *PessoaHandler) GetByID(c *fiber.Ctx) error {
	id, err := param(c, "id")
	if err != nil {
		return err
	}
	out, err := h.uc.GetByID(c.UserContext(), CallerFrom(c), h.tipo, id)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar clientes ou fornecedores
// @Tags         pessoas
// @Security     Bearer
// @Produce      json
// @Param        empresaId  query  string  false  "Empresa (admin global)"
// @Param        q          query  string  false  "Busca por nome ou documento (sem acento)"
// @Param        limit      query  int     false  "Limite"  default(20)
// @Param        offset     query  int     false  "Offset"  default(0)
// @Success      200        {object}  dto.ListResponse[dto.PessoaResponse]
// @Failure      403        {object}  dto.ErrorResponse
// @Router       /api/clientes [get]
// @Router       /api/fornecedores [get]
func (h *PessoaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), CallerFrom(c), h.tipo, c.Query("empresaId"), pageFrom(c), c.Query("q"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar cliente ou fornecedor
// @Tags         pessoas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID"
// @Param        body  body  dto.UpdatePessoaRequest  true  "Campos a alterar"
// @Success      200   {object}  dto.PessoaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/clientes/{id} [put]
// @Router       /api/fornecedores/{id} [put]
func (h *PessoaHandler) Update(c *fiber.Ctx) error {
	id, err := param(c, "id")
	if err != nil {
		return err
	}
	var in dto.UpdatePessoaRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), CallerFrom(c), h.tipo, id, in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Remover cliente ou fornecedor
// @Tags         pessoas
// @Security     Bearer
// @Param        id   path  string  true  "ID"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clientes/{id} [delete]
// @Router       /api/fornecedores/{id} [delete]
func (h *PessoaHandler) Delete(c *fiber.Ctx) error {
	id, err := param(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.UserContext(), CallerFrom(c), h.tipo, id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
