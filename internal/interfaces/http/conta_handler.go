package http

import (
	"mime"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/BusinessHub-api/internal/application/dto"
	"github.com/jhoicas/BusinessHub-api/internal/application/financeiro"
)

// ContaHandler serve /contas-pagar e /contas-receber; cada instância é presa a um tipo.
type ContaHandler struct {
	uc      *financeiro.ContaUseCase
	extrato *financeiro.ExtratoUseCase
	tipo    string
}

// NewContaHandler constrói o handler para o tipo (pagar ou receber).
func NewContaHandler(uc *financeiro.ContaUseCase, extrato *financeiro.ExtratoUseCase, tipo string) *ContaHandler {
	return &ContaHandler{uc: uc, extrato: extrato, tipo: tipo}
}

// Create godoc
// @Summary      Criar conta (gera parcelas quando numeroParcelas > 1)
// @Tags         contas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateContaRequest  true  "Dados da conta"
// @Success      201   {object}  dto.ContaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/contas-pagar [post]
// @Router       /api/contas-receber [post]
func (h *ContaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateContaRequest
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
// @Summary      Obter conta com parcelas e itens
// @Tags         contas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da conta"
// @Success      200  {object}  dto.ContaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/contas-pagar/{id} [get]
// @Router       /api/contas-receber/{id} [get]
func (h *ContaHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar contas
// @Tags         contas
// @Security     Bearer
// @Produce      json
// @Param        empresaId      query  string  false  "Empresa (admin global)"
// @Param        q              query  string  false  "Busca por descrição"
// @Param        status         query  string  false  "pendente, pago, cancelado"
// @Param        pessoaId       query  string  false  "Cliente ou fornecedor"
// @Param        vencimentoDe   query  string  false  "Vencimento a partir de (AAAA-MM-DD)"
// @Param        vencimentoAte  query  string  false  "Vencimento até (AAAA-MM-DD)"
// @Param        limit          query  int     false  "Limite"  default(20)
// @Param        offset         query  int     false  "Offset"  default(0)
// @Success      200            {object}  dto.ListResponse[dto.ContaResponse]
// @Failure      400            {object}  dto.ErrorResponse
// @Router       /api/contas-pagar [get]
// @Router       /api/contas-receber [get]
func (h *ContaHandler) List(c *fiber.Ctx) error {
	var filter dto.ContaFilterRequest
	if err := parseQuery(c, &filter); err != nil {
		return err
	}
	out, err := h.uc.List(c.UserContext(), CallerFrom(c), h.tipo, c.Query("empresaId"), pageFrom(c), c.Query("q"), filter)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualização parcial da conta e das parcelas
// @Description  Roda em uma transação. Com parcelas, a soma resultante deve igualar o valor da conta.
// @Tags         contas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da conta"
// @Param        body  body  dto.UpdateContaRequest  true  "Campos a alterar"
// @Success      200   {object}  dto.ContaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/contas-pagar/{id} [put]
// @Router       /api/contas-receber/{id} [put]
func (h *ContaHandler) Update(c *fiber.Ctx) error {
	id, err := param(c, "id")
	if err != nil {
		return err
	}
	var in dto.UpdateContaRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), CallerFrom(c), h.tipo, id, in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Mudar status da conta (não altera as parcelas)
// @Tags         contas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da conta"
// @Param        body  body  dto.StatusRequest  true  "Status, data de pagamento, estornar"
// @Success      200   {object}  dto.ContaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/contas-pagar/{id}/status [patch]
// @Router       /api/contas-receber/{id}/status [patch]
func (h *ContaHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := param(c, "id")
	if err != nil {
		return err
	}
	var in dto.StatusRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.UpdateStatus(c.UserContext(), CallerFrom(c), h.tipo, id, in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// UpdateParcelaStatus godoc
// @Summary      Mudar status de uma parcela (não altera a conta nem as outras parcelas)
// @Tags         contas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id         path  string  true  "ID da conta"
// @Param        parcelaId  path  string  true  "ID da parcela"
// @Param        body       body  dto.StatusRequest  true  "Status, data de pagamento, estornar"
// @Success      200        {object}  dto.ParcelaResponse
// @Failure      400        {object}  dto.ErrorResponse
// @Failure      404        {object}  dto.ErrorResponse
// @Router       /api/contas-pagar/{id}/parcelas/{parcelaId}/status [patch]
// @Router       /api/contas-receber/{id}/parcelas/{parcelaId}/status [patch]
func (h *ContaHandler) UpdateParcelaStatus(c *fiber.Ctx) error {
	id, err := param(c, "id")
	if err != nil {
		return err
	}
	parcelaID, err := param(c, "parcelaId")
	if err != nil {
		return err
	}
	var in dto.StatusRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.UpdateParcelaStatus(c.UserContext(), CallerFrom(c), h.tipo, id, parcelaID, in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Remover conta (parcelas e itens em cascata)
// @Tags         contas
// @Security     Bearer
// @Param        id   path  string  true  "ID da conta"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/contas-pagar/{id} [delete]
// @Router       /api/contas-receber/{id} [delete]
func (h *ContaHandler) Delete(c *fiber.Ctx) error {
	id, err := param(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.UserContext(), CallerFrom(c), h.tipo, id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Extrato godoc
// @Summary      Extrato da conta em PDF
// @Tags         contas
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID da conta"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/contas-pagar/{id}/extrato.pdf [get]
// @Router       /api/contas-receber/{id}/extrato.pdf [get]
func (h *ContaHandler) Extrato(c *fiber.Ctx) error {
	id, err := param(c, "id")
	if err != nil {
		return err
	}
	pdf, filename, err := h.extrato.Generate(c.UserContext(), CallerFrom(c), h.tipo, id)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, mime.FormatMediaType("inline", map[string]string{"filename": filename}))
	return c.Send(pdf)
}
