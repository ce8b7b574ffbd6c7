package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rodrigomoreli/brumas2/internal/dto"
	"github.com/rodrigomoreli/brumas2/internal/middleware"
	"github.com/rodrigomoreli/brumas2/internal/service"
)

// DegustacoesHandler serves the tasting sessions nested under an event, with
// the same two-layer authorization as despesas.
type DegustacoesHandler struct{ svc service.EventoService }

func NewDegustacoesHandler(svc service.EventoService) *DegustacoesHandler {
	return &DegustacoesHandler{svc: svc}
}

func (h *DegustacoesHandler) Listar(c *gin.Context) {
	eventoID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ListarDegustacoes(c.Request.Context(), eventoID, middleware.UsuarioAtual(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DegustacoesHandler) Criar(c *gin.Context) {
	eventoID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req dto.CriarDegustacaoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AdicionarDegustacao(c.Request.Context(), eventoID, req, middleware.UsuarioAtual(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *DegustacoesHandler) Atualizar(c *gin.Context) {
	eventoID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	degustacaoID, ok := uintParam(c, "degustacao_id")
	if !ok {
		return
	}
	var req dto.AtualizarDegustacaoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AtualizarDegustacao(c.Request.Context(), eventoID, degustacaoID, req, middleware.UsuarioAtual(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DegustacoesHandler) Deletar(c *gin.Context) {
	eventoID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	degustacaoID, ok := uintParam(c, "degustacao_id")
	if !ok {
		return
	}
	if err := h.svc.RemoverDegustacao(c.Request.Context(), eventoID, degustacaoID, middleware.UsuarioAtual(c)); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
