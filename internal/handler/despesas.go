package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rodrigomoreli/brumas2/internal/dto"
	"github.com/rodrigomoreli/brumas2/internal/middleware"
	"github.com/rodrigomoreli/brumas2/internal/service"
)

// DespesasHandler serves the expense lines nested under an event. Every route
// carries the parent event id; authorization is two-layered (event first,
// then the line's own creator).
type DespesasHandler struct{ svc service.EventoService }

func NewDespesasHandler(svc service.EventoService) *DespesasHandler {
	return &DespesasHandler{svc: svc}
}

func (h *DespesasHandler) Listar(c *gin.Context) {
	eventoID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ListarDespesas(c.Request.Context(), eventoID, middleware.UsuarioAtual(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DespesasHandler) Criar(c *gin.Context) {
	eventoID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req dto.CriarDespesaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AdicionarDespesa(c.Request.Context(), eventoID, req, middleware.UsuarioAtual(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *DespesasHandler) Atualizar(c *gin.Context) {
	eventoID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	despesaID, ok := uintParam(c, "despesa_id")
	if !ok {
		return
	}
	var req dto.AtualizarDespesaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AtualizarDespesa(c.Request.Context(), eventoID, despesaID, req, middleware.UsuarioAtual(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DespesasHandler) Deletar(c *gin.Context) {
	eventoID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	despesaID, ok := uintParam(c, "despesa_id")
	if !ok {
		return
	}
	if err := h.svc.RemoverDespesa(c.Request.Context(), eventoID, despesaID, middleware.UsuarioAtual(c)); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
