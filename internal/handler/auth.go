package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rodrigomoreli/brumas2/internal/dto"
	"github.com/rodrigomoreli/brumas2/internal/service"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Login godoc
// @Summary Login de usuário
// @Description Autentica por username (ou email) e senha, no formato OAuth2 password form.
// @Tags login
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Username ou email"
// @Param password formData string true "Senha"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} apierror.APIError
// @Failure 401 {object} apierror.APIError
// @Router /login/access-token [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindFormAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
