package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rodrigomoreli/brumas2/internal/apierror"
	"github.com/rodrigomoreli/brumas2/internal/model"
	"github.com/rodrigomoreli/brumas2/internal/repository"
)

// DimensaoService is the business contract shared by the seven lookup
// entities. One generic implementation covers them all; the handler paints
// the entity-specific DTOs on top.
//
// Authorization follows the owner-or-admin rule with one asymmetry carried
// over from the product's behavior: the listing is NOT filtered by creator
// (the catalogue is shared vocabulary), while reading, updating or deleting
// a single row requires ownership or the administrative profile.
type DimensaoService[T any] interface {
	Criar(ctx context.Context, m *T, caller *model.Usuario) (*T, error)
	Obter(ctx context.Context, id uint, caller *model.Usuario) (*T, error)
	Listar(ctx context.Context, skip, limit int) ([]T, error)
	Atualizar(ctx context.Context, id uint, caller *model.Usuario, aplicar func(*T) error) (*T, error)
	Remover(ctx context.Context, id uint, caller *model.Usuario) (*T, error)
}

type dimensaoService[T any, PT model.OwnedPtr[T]] struct {
	repo repository.Dimensao[T]
	nome string // display name used in error messages, e.g. "Assessorias"
}

func NewDimensaoService[T any, PT model.OwnedPtr[T]](repo repository.Dimensao[T], nome string) DimensaoService[T] {
	return &dimensaoService[T, PT]{repo: repo, nome: nome}
}

func (s *dimensaoService[T, PT]) Criar(ctx context.Context, m *T, caller *model.Usuario) (*T, error) {
	PT(m).DefinirCriador(caller.ID)
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, s.traduzErro(err)
	}
	return m, nil
}

func (s *dimensaoService[T, PT]) Obter(ctx context.Context, id uint, caller *model.Usuario) (*T, error) {
	return s.obterVerificado(ctx, id, caller, "ver")
}

func (s *dimensaoService[T, PT]) Listar(ctx context.Context, skip, limit int) ([]T, error) {
	if limit <= 0 {
		limit = 100
	}
	if skip < 0 {
		skip = 0
	}
	return s.repo.List(ctx, skip, limit)
}

func (s *dimensaoService[T, PT]) Atualizar(ctx context.Context, id uint, caller *model.Usuario, aplicar func(*T) error) (*T, error) {
	m, err := s.obterVerificado(ctx, id, caller, "modificar")
	if err != nil {
		return nil, err
	}
	if err := aplicar(m); err != nil {
		return nil, apierror.Validation(err.Error())
	}
	if err := s.repo.Save(ctx, m); err != nil {
		return nil, s.traduzErro(err)
	}
	return m, nil
}

func (s *dimensaoService[T, PT]) Remover(ctx context.Context, id uint, caller *model.Usuario) (*T, error) {
	m, err := s.obterVerificado(ctx, id, caller, "deletar")
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, m); err != nil {
		return nil, s.traduzErro(err)
	}
	return m, nil
}

// obterVerificado loads the row and applies owner-or-admin. Existence is
// checked first, so a row the caller cannot touch still reads as 404 only
// when it truly does not exist; an existing foreign row answers 403.
func (s *dimensaoService[T, PT]) obterVerificado(ctx context.Context, id uint, caller *model.Usuario, acao string) (*T, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apierror.NotFound(fmt.Sprintf("%s não encontrado", s.nome))
		}
		return nil, err
	}
	if !caller.PodeAcessar(PT(m).CriadorID()) {
		return nil, apierror.Forbidden(fmt.Sprintf("Você não tem permissão para %s este item", acao))
	}
	return m, nil
}

func (s *dimensaoService[T, PT]) traduzErro(err error) error {
	switch {
	case errors.Is(err, repository.ErrDuplicado):
		return apierror.Conflict(fmt.Sprintf("%s: registro duplicado", s.nome))
	case errors.Is(err, repository.ErrReferenciado):
		return apierror.Conflict(fmt.Sprintf("%s: registro em uso por outro cadastro", s.nome))
	default:
		return err
	}
}
