package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rodrigomoreli/brumas2/internal/middleware"
	"github.com/rodrigomoreli/brumas2/internal/service"
)

// DimensaoHandler serves the CRUD routes of one dimension kind. The generic
// parameters carry the entity (T), its create/update requests (C, U) and its
// response shape (R); the three converter funcs are the DTO methods passed
// as method expressions, so adding a dimension means one Registrar call in
// the router and nothing else.
type DimensaoHandler[T any, C any, U any, R any] struct {
	svc      service.DimensaoService[T]
	toModel  func(C) *T
	aplicar  func(U, *T) error
	resposta func(*T) R
}

func NewDimensaoHandler[T any, C any, U any, R any](
	svc service.DimensaoService[T],
	toModel func(C) *T,
	aplicar func(U, *T) error,
	resposta func(*T) R,
) *DimensaoHandler[T, C, U, R] {
	return &DimensaoHandler[T, C, U, R]{
		svc:      svc,
		toModel:  toModel,
		aplicar:  aplicar,
		resposta: resposta,
	}
}

// Registrar mounts the five CRUD routes on the given group.
func (h *DimensaoHandler[T, C, U, R]) Registrar(rg *gin.RouterGroup) {
	rg.POST("", h.criar)
	rg.GET("", h.listar)
	rg.GET("/:id", h.obter)
	rg.PATCH("/:id", h.atualizar)
	rg.DELETE("/:id", h.remover)
}

func (h *DimensaoHandler[T, C, U, R]) criar(c *gin.Context) {
	var req C
	if !bindAndValidate(c, &req) {
		return
	}
	m, err := h.svc.Criar(c.Request.Context(), h.toModel(req), middleware.UsuarioAtual(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, h.resposta(m))
}

func (h *DimensaoHandler[T, C, U, R]) listar(c *gin.Context) {
	skip := intQuery(c, "skip", 0)
	limit := intQuery(c, "limit", 100)
	itens, err := h.svc.Listar(c.Request.Context(), skip, limit)
	if err != nil {
		writeError(c, err)
		return
	}
	resp := make([]R, 0, len(itens))
	for i := range itens {
		resp = append(resp, h.resposta(&itens[i]))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DimensaoHandler[T, C, U, R]) obter(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	m, err := h.svc.Obter(c.Request.Context(), id, middleware.UsuarioAtual(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.resposta(m))
}

func (h *DimensaoHandler[T, C, U, R]) atualizar(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req U
	if !bindAndValidate(c, &req) {
		return
	}
	m, err := h.svc.Atualizar(c.Request.Context(), id, middleware.UsuarioAtual(c), func(t *T) error {
		return h.aplicar(req, t)
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.resposta(m))
}

func (h *DimensaoHandler[T, C, U, R]) remover(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	if _, err := h.svc.Remover(c.Request.Context(), id, middleware.UsuarioAtual(c)); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
