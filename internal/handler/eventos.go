package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rodrigomoreli/brumas2/internal/dto"
	"github.com/rodrigomoreli/brumas2/internal/middleware"
	"github.com/rodrigomoreli/brumas2/internal/service"
)

type EventosHandler struct{ svc service.EventoService }

func NewEventosHandler(svc service.EventoService) *EventosHandler {
	return &EventosHandler{svc: svc}
}

// Criar godoc
// @Summary Criar evento
// @Description Cria um evento validando todas as referências dimensionais antes de gravar.
// @Tags eventos
// @Accept json
// @Produce json
// @Param body body dto.CriarEventoRequest true "Evento"
// @Success 201 {object} dto.EventoResponse
// @Failure 404 {object} apierror.APIError
// @Failure 422 {object} apierror.ValidationError
// @Security BearerAuth
// @Router /api/v1/eventos [post]
func (h *EventosHandler) Criar(c *gin.Context) {
	var req dto.CriarEventoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Criar(c.Request.Context(), req, middleware.UsuarioAtual(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar godoc
// @Summary Listar eventos
// @Description Lista paginada; usuários operacionais enxergam somente os próprios eventos.
// @Tags eventos
// @Produce json
// @Param page query int false "Página (1-based)"
// @Param page_size query int false "Tamanho da página (máx. 100)"
// @Param status_evento query string false "Filtro por status"
// @Param id_cliente query int false "Filtro por cliente"
// @Param data_inicio query string false "Data inicial (YYYY-MM-DD)"
// @Param data_fim query string false "Data final (YYYY-MM-DD)"
// @Success 200 {object} dto.Paginated[dto.EventoListItem]
// @Security BearerAuth
// @Router /api/v1/eventos [get]
func (h *EventosHandler) Listar(c *gin.Context) {
	var f dto.EventoFilter
	if !bindQueryAndValidate(c, &f) {
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), f, middleware.UsuarioAtual(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *EventosHandler) Obter(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Obter(c.Request.Context(), id, middleware.UsuarioAtual(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *EventosHandler) Atualizar(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req dto.AtualizarEventoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Atualizar(c.Request.Context(), id, req, middleware.UsuarioAtual(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *EventosHandler) Deletar(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Deletar(c.Request.Context(), id, middleware.UsuarioAtual(c)); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
