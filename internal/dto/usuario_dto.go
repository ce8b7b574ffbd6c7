package dto

import (
	"errors"

	"github.com/rodrigomoreli/brumas2/internal/model"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CriarUsuarioRequest struct {
	Username     string `json:"username"      validate:"required,min=3,max=150"`
	Email        string `json:"email"         validate:"required,email"`
	Password     string `json:"password"      validate:"required,min=6"`
	NomeCompleto string `json:"nome_completo" validate:"omitempty,max=150"`
	Perfil       string `json:"perfil"        validate:"omitempty,oneof=administrativo operacional"`
	Ativo        *bool  `json:"is_active"`
}

type AtualizarUsuarioRequest struct {
	Username     Optional[string] `json:"username"`
	Email        Optional[string] `json:"email"`
	Password     Optional[string] `json:"password"`
	NomeCompleto Optional[string] `json:"nome_completo"`
	Perfil       Optional[string] `json:"perfil"`
	Ativo        Optional[bool]   `json:"is_active"`
}

// Aplicar patches the user in place. Password hashing happens in the service;
// this only patches plain columns. Explicit null on required columns is a
// no-op; nome_completo may be cleared.
func (r AtualizarUsuarioRequest) Aplicar(u *model.Usuario) error {
	if r.Username.Has() {
		u.Username = *r.Username.Value
	}
	if r.Email.Has() {
		u.Email = *r.Email.Value
	}
	if r.NomeCompleto.Defined {
		if r.NomeCompleto.Value == nil {
			u.NomeCompleto = ""
		} else {
			u.NomeCompleto = *r.NomeCompleto.Value
		}
	}
	if r.Perfil.Has() {
		p := model.Perfil(*r.Perfil.Value)
		if p != model.PerfilAdministrativo && p != model.PerfilOperacional {
			return errors.New("perfil inválido")
		}
		u.Perfil = p
	}
	if r.Ativo.Has() {
		u.Ativo = *r.Ativo.Value
	}
	return nil
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type UsuarioResponse struct {
	ID           uint   `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	NomeCompleto string `json:"nome_completo"`
	Perfil       string `json:"perfil"`
	Ativo        bool   `json:"is_active"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

func NovoUsuarioResponse(u *model.Usuario) UsuarioResponse {
	return UsuarioResponse{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		NomeCompleto: u.NomeCompleto,
		Perfil:       string(u.Perfil),
		Ativo:        u.Ativo,
		CreatedAt:    ts(u.CreatedAt),
		UpdatedAt:    ts(u.UpdatedAt),
	}
}
