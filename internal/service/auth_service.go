package service

import (
	"context"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/rodrigomoreli/brumas2/internal/apierror"
	"github.com/rodrigomoreli/brumas2/internal/config"
	"github.com/rodrigomoreli/brumas2/internal/dto"
	"github.com/rodrigomoreli/brumas2/internal/model"
	"github.com/rodrigomoreli/brumas2/internal/repository"
)

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error)
}

type authService struct {
	repo repository.UsuarioRepository
	cfg  *config.Config
}

func NewAuthService(repo repository.UsuarioRepository, cfg *config.Config) AuthService {
	return &authService{repo: repo, cfg: cfg}
}

// Login validates the credentials and mints the access token. Unknown user
// and wrong password return the same message so the endpoint does not reveal
// which usernames exist; a disabled account is reported distinctly.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.repo.FindByLogin(ctx, req.Username)
	if err != nil {
		return nil, apierror.Unauthenticated("Username ou senha incorretos")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.SenhaHash), []byte(req.Password)); err != nil {
		return nil, apierror.Unauthenticated("Username ou senha incorretos")
	}

	if !user.Ativo {
		return nil, apierror.Inactive("Usuário inativo")
	}

	token, err := s.gerarToken(user)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}

func (s *authService) gerarToken(user *model.Usuario) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(user.ID), 10),
		"exp": now.Add(time.Duration(s.cfg.AccessTokenExpireMinutes) * time.Minute).Unix(),
		"iat": now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.GetSigningMethod(s.cfg.JWTAlgorithm), claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
