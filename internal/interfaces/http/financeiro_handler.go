package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/BusinessHub-api/internal/application/financeiro"
)

// FinanceiroHandler painel financeiro.
type FinanceiroHandler struct {
	resumo *financeiro.ResumoUseCase
}

// NewFinanceiroHandler constrói o handler.
func NewFinanceiroHandler(resumo *financeiro.ResumoUseCase) *FinanceiroHandler {
	return &FinanceiroHandler{resumo: resumo}
}

// Resumo godoc
// @Summary      Resumo de contas a pagar e a receber
// @Description  Totais pendente, vencido e pago por tipo. Cache de 60 s por empresa.
// @Tags         financeiro
// @Security     Bearer
// @Produce      json
// @Param        empresaId  query  string  false  "Empresa (admin global)"
// @Success      200        {object}  dto.ResumoFinanceiroResponse
// @Failure      403        {object}  dto.ErrorResponse
// @Router       /api/financeiro/resumo [get]
func (h *FinanceiroHandler) Resumo(c *fiber.Ctx) error {
	out, err := h.resumo.Get(c.UserContext(), CallerFrom(c), c.Query("empresaId"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}
