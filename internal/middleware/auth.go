package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/rodrigomoreli/brumas2/internal/apierror"
	"github.com/rodrigomoreli/brumas2/internal/config"
	"github.com/rodrigomoreli/brumas2/internal/model"
	"github.com/rodrigomoreli/brumas2/internal/repository"
)

const UsuarioKey = "usuario_atual"

// JWTAuth validates the Bearer token and loads the user fresh from the
// database on every request. The token only carries the user id; profile and
// active flag are always read live, so deactivating or deleting an account
// invalidates outstanding tokens immediately.
func JWTAuth(cfg *config.Config, usuarios repository.UsuarioRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Não autenticado"))
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			if t.Method.Alg() != cfg.JWTAlgorithm {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Não foi possível validar as credenciais"))
			return
		}

		sub, err := token.Claims.GetSubject()
		if err != nil || sub == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Não foi possível validar as credenciais"))
			return
		}
		id, err := strconv.ParseUint(sub, 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Não foi possível validar as credenciais"))
			return
		}

		user, err := usuarios.FindByID(c.Request.Context(), uint(id))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Usuário não encontrado"))
			return
		}
		if !user.Ativo {
			c.AbortWithStatusJSON(http.StatusBadRequest, apierror.New("Usuário inativo"))
			return
		}

		c.Set(UsuarioKey, user)
		c.Next()
	}
}

// RequirePerfil rejects authenticated requests whose profile is not in the
// allowed list.
func RequirePerfil(perfis ...model.Perfil) gin.HandlerFunc {
	allowed := make(map[model.Perfil]bool, len(perfis))
	for _, p := range perfis {
		allowed[p] = true
	}
	return func(c *gin.Context) {
		user := UsuarioAtual(c)
		if user == nil || !allowed[user.Perfil] {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("O usuário não tem privilégios suficientes"))
			return
		}
		c.Next()
	}
}

// UsuarioAtual retrieves the authenticated user placed by JWTAuth.
func UsuarioAtual(c *gin.Context) *model.Usuario {
	user, _ := c.Get(UsuarioKey)
	u, _ := user.(*model.Usuario)
	return u
}
