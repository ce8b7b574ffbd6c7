package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/rodrigomoreli/brumas2/internal/apierror"
	"github.com/rodrigomoreli/brumas2/internal/dto"
	"github.com/rodrigomoreli/brumas2/internal/model"
	"github.com/rodrigomoreli/brumas2/internal/repository"
)

// UsuarioService covers account administration. Every operation except Me is
// reserved to administrators; the handler layer enforces the profile gate and
// this service enforces the remaining rules (duplicates, self-delete).
type UsuarioService interface {
	Me(caller *model.Usuario) dto.UsuarioResponse
	Criar(ctx context.Context, req dto.CriarUsuarioRequest) (*dto.UsuarioResponse, error)
	Listar(ctx context.Context, skip, limit int) ([]dto.UsuarioResponse, error)
	Obter(ctx context.Context, id uint) (*dto.UsuarioResponse, error)
	Atualizar(ctx context.Context, id uint, req dto.AtualizarUsuarioRequest) (*dto.UsuarioResponse, error)
	Deletar(ctx context.Context, id uint, caller *model.Usuario) error
}

type usuarioService struct {
	repo repository.UsuarioRepository
}

func NewUsuarioService(repo repository.UsuarioRepository) UsuarioService {
	return &usuarioService{repo: repo}
}

func (s *usuarioService) Me(caller *model.Usuario) dto.UsuarioResponse {
	return dto.NovoUsuarioResponse(caller)
}

func (s *usuarioService) Criar(ctx context.Context, req dto.CriarUsuarioRequest) (*dto.UsuarioResponse, error) {
	if _, err := s.repo.FindByEmail(ctx, req.Email); err == nil {
		return nil, apierror.Conflict("Já existe um usuário com este email no sistema.")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if _, err := s.repo.FindByUsername(ctx, req.Username); err == nil {
		return nil, apierror.Conflict("Já existe um usuário com este username no sistema.")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, err
	}

	user := &model.Usuario{
		Username:     req.Username,
		Email:        req.Email,
		SenhaHash:    string(hash),
		NomeCompleto: req.NomeCompleto,
		Perfil:       model.PerfilOperacional,
		Ativo:        true,
	}
	if req.Perfil != "" {
		user.Perfil = model.Perfil(req.Perfil)
	}
	if req.Ativo != nil {
		user.Ativo = *req.Ativo
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicado) {
			return nil, apierror.Conflict("Já existe um usuário com este username ou email no sistema.")
		}
		return nil, err
	}
	resp := dto.NovoUsuarioResponse(user)
	return &resp, nil
}

func (s *usuarioService) Listar(ctx context.Context, skip, limit int) ([]dto.UsuarioResponse, error) {
	if limit <= 0 {
		limit = 100
	}
	if skip < 0 {
		skip = 0
	}
	users, err := s.repo.List(ctx, skip, limit)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.UsuarioResponse, 0, len(users))
	for i := range users {
		resp = append(resp, dto.NovoUsuarioResponse(&users[i]))
	}
	return resp, nil
}

func (s *usuarioService) Obter(ctx context.Context, id uint) (*dto.UsuarioResponse, error) {
	user, err := s.buscar(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.NovoUsuarioResponse(user)
	return &resp, nil
}

func (s *usuarioService) Atualizar(ctx context.Context, id uint, req dto.AtualizarUsuarioRequest) (*dto.UsuarioResponse, error) {
	user, err := s.buscar(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := req.Aplicar(user); err != nil {
		return nil, apierror.Validation(err.Error())
	}
	if req.Password.Has() {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password.Value), 12)
		if err != nil {
			return nil, err
		}
		user.SenhaHash = string(hash)
	}
	if err := s.repo.Save(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicado) {
			return nil, apierror.Conflict("Já existe um usuário com este username ou email no sistema.")
		}
		return nil, err
	}
	resp := dto.NovoUsuarioResponse(user)
	return &resp, nil
}

// Deletar removes the account and everything it created, in one transaction.
// An administrator can never remove their own account: the system must not
// lose its last administrator to a misclick.
func (s *usuarioService) Deletar(ctx context.Context, id uint, caller *model.Usuario) error {
	user, err := s.buscar(ctx, id)
	if err != nil {
		return err
	}
	if user.ID == caller.ID {
		return apierror.Forbidden("Administradores não podem deletar a si mesmos.")
	}
	if err := s.repo.DeleteComCascata(ctx, user); err != nil {
		if errors.Is(err, repository.ErrReferenciado) {
			return apierror.Conflict("Usuário possui cadastros em uso por eventos de outros usuários.")
		}
		return err
	}
	return nil
}

func (s *usuarioService) buscar(ctx context.Context, id uint) (*model.Usuario, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apierror.NotFound(fmt.Sprintf("Usuário com id %d não encontrado.", id))
		}
		return nil, err
	}
	return user, nil
}
