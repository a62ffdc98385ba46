package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/BusinessHub-api/internal/application/dto"
	"github.com/jhoicas/BusinessHub-api/internal/application/usecase"
)

// TicketHandler tickets de suporte, respostas e anexos.
type TicketHandler struct {
	uc *usecase.TicketUseCase
}

// NewTicketHandler constrói o handler.
func NewTicketHandler(uc *usecase.TicketUseCase) *TicketHandler {
	return &TicketHandler{uc: uc}
}

// Create godoc
// @Summary      Abrir ticket
// @Tags         tickets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTicketRequest  true  "Dados do ticket"
// @Success      201   {object}  dto.TicketResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/tickets [post]
func (h *TicketHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTicketRequest
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
// @Summary      Obter ticket com respostas e anexos
// @Tags         tickets
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do ticket"
// @Success      200  {object}  dto.TicketResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tickets/{id} [get]
func (h *TicketHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar tickets
// @Tags         tickets
// @Security     Bearer
// @Produce      json
// @Param        empresaId   query  string  false  "Empresa (admin global)"
// @Param        q           query  string  false  "Busca por título"
// @Param        status      query  string  false  "aberto, em_andamento, resolvido, fechado"
// @Param        prioridade  query  string  false  "baixa, media, alta, urgente"
// @Param        limit       query  int     false  "Limite"  default(20)
// @Param        offset      query  int     false  "Offset"  default(0)
// @Success      200         {object}  dto.ListResponse[dto.TicketResponse]
// @Router       /api/tickets [get]
func (h *TicketHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), CallerFrom(c), c.Query("empresaId"), pageFrom(c),
		c.Query("q"), c.Query("status"), c.Query("prioridade"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar ticket
// @Tags         tickets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do ticket"
// @Param        body  body  dto.UpdateTicketRequest  true  "Campos a alterar"
// @Success      200   {object}  dto.TicketResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/tickets/{id} [put]
func (h *TicketHandler) Update(c *fiber.Ctx) error {
	id, err := param(c, "id")
	if err != nil {
		return err
	}
	var in dto.UpdateTicketRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), CallerFrom(c), id, in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Mudar status do ticket
// @Tags         tickets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do ticket"
// @Param        body  body  dto.TicketStatusRequest  true  "Status e prioridade"
// @Success      200   {object}  dto.TicketResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/tickets/{id}/status [patch]
func (h *TicketHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := param(c, "id")
	if err != nil {
		return err
	}
	var in dto.TicketStatusRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.UpdateStatus(c.UserContext(), CallerFrom(c), id, in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Remover ticket
// @Tags         tickets
// @Security     Bearer
// @Param        id   path  string  true  "ID do ticket"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tickets/{id} [delete]
func (h *TicketHandler) Delete(c *fiber.Ctx) error {
	id, err := param(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.UserContext(), CallerFrom(c), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddResposta godoc
// @Summary      Responder ticket
// @Tags         tickets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do ticket"
// @Param        body  body  dto.CreateRespostaRequest  true  "Mensagem"
// @Success      201   {object}  dto.TicketRespostaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/tickets/{id}/respostas [post]
func (h *TicketHandler) AddResposta(c *fiber.Ctx) error {
	id, err := param(c, "id")
	if err != nil {
		return err
	}
	var in dto.CreateRespostaRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.AddResposta(c.UserContext(), CallerFrom(c), id, in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// AddAnexo godoc
// @Summary      Anexar arquivo ao ticket
// @Tags         tickets
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        id          path      string  true   "ID do ticket"
// @Param        arquivo     formData  file    true   "Arquivo (até 10 MiB)"
// @Param        respostaId  formData  string  false  "Resposta à qual o anexo pertence"
// @Success      201         {object}  dto.TicketAnexoResponse
// @Failure      400         {object}  dto.ErrorResponse
// @Failure      503         {object}  dto.ErrorResponse
// @Router       /api/tickets/{id}/anexos [post]
func (h *TicketHandler) AddAnexo(c *fiber.Ctx) error {
	id, err := param(c, "id")
	if err != nil {
		return err
	}
	fh, err := c.FormFile("arquivo")
	if err != nil {
		return newAPIError(fiber.StatusBadRequest, "VALIDATION", "campo arquivo obrigatório")
	}
	if fh.Size > usecase.MaxAnexoBytes {
		return newAPIError(fiber.StatusBadRequest, "VALIDATION", "anexo maior que 10 MiB")
	}
	f, err := fh.Open()
	if err != nil {
		return err
	}
	defer f.Close()

	up := usecase.Upload{
		NomeArquivo: fh.Filename,
		ContentType: fh.Header.Get(fiber.HeaderContentType),
		Tamanho:     fh.Size,
		Body:        f,
	}
	if r := c.FormValue("respostaId"); r != "" {
		up.RespostaID = &r
	}
	out, err := h.uc.AddAnexo(c.UserContext(), CallerFrom(c), id, up)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// DownloadAnexo godoc
// @Summary      URL temporária para baixar anexo
// @Tags         tickets
// @Security     Bearer
// @Produce      json
// @Param        id       path  string  true  "ID do ticket"
// @Param        anexoId  path  string  true  "ID do anexo"
// @Success      200      {object}  dto.AnexoDownloadResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Failure      503      {object}  dto.ErrorResponse
// @Router       /api/tickets/{id}/anexos/{anexoId} [get]
func (h *TicketHandler) DownloadAnexo(c *fiber.Ctx) error {
	id, err := param(c, "id")
	if err != nil {
		return err
	}
	anexoID, err := param(c, "anexoId")
	if err != nil {
		return err
	}
	out, err := h.uc.DownloadAnexo(c.UserContext(), CallerFrom(c), id, anexoID)
	if err != nil {
		return err
	}
	return c.JSON(out)
}
