package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rodrigomoreli/brumas2/internal/dto"
	"github.com/rodrigomoreli/brumas2/internal/middleware"
	"github.com/rodrigomoreli/brumas2/internal/service"
)

type StatsHandler struct{ svc service.StatsService }

func NewStatsHandler(svc service.StatsService) *StatsHandler {
	return &StatsHandler{svc: svc}
}

func (h *StatsHandler) filtro(c *gin.Context) (dto.StatsFilter, bool) {
	var f dto.StatsFilter
	if !bindQueryAndValidate(c, &f) {
		return f, false
	}
	return f, true
}

func (h *StatsHandler) Geral(c *gin.Context) {
	f, ok := h.filtro(c)
	if !ok {
		return
	}
	resp, err := h.svc.Geral(c.Request.Context(), f, middleware.UsuarioAtual(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *StatsHandler) PorMes(c *gin.Context) {
	f, ok := h.filtro(c)
	if !ok {
		return
	}
	resp, err := h.svc.PorMes(c.Request.Context(), f, middleware.UsuarioAtual(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *StatsHandler) PorStatus(c *gin.Context) {
	f, ok := h.filtro(c)
	if !ok {
		return
	}
	resp, err := h.svc.PorStatus(c.Request.Context(), f, middleware.UsuarioAtual(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *StatsHandler) TopClientes(c *gin.Context) {
	f, ok := h.filtro(c)
	if !ok {
		return
	}
	resp, err := h.svc.TopClientes(c.Request.Context(), f, middleware.UsuarioAtual(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *StatsHandler) DespesasPorInsumo(c *gin.Context) {
	f, ok := h.filtro(c)
	if !ok {
		return
	}
	resp, err := h.svc.DespesasPorInsumo(c.Request.Context(), f, middleware.UsuarioAtual(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Dashboard godoc
// @Summary Painel consolidado
// @Description Agrega os relatórios do painel inicial em uma única resposta.
// @Tags stats
// @Produce json
// @Param data_inicio query string false "Data inicial (YYYY-MM-DD)"
// @Param data_fim query string false "Data final (YYYY-MM-DD)"
// @Param top_limit query int false "Tamanho dos rankings (padrão 5)"
// @Success 200 {object} dto.DashboardResponse
// @Security BearerAuth
// @Router /api/v1/eventos/stats/dashboard [get]
func (h *StatsHandler) Dashboard(c *gin.Context) {
	f, ok := h.filtro(c)
	if !ok {
		return
	}
	resp, err := h.svc.Dashboard(c.Request.Context(), f, middleware.UsuarioAtual(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
