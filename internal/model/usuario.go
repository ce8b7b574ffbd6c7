package model

import "time"

// Perfil defines the access level of a user.
type Perfil string

const (
	PerfilAdministrativo Perfil = "administrativo"
	PerfilOperacional    Perfil = "operacional"
)

// Usuario stores system users. Administrative users see every record;
// operational users only see the records they created.
type Usuario struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	SenhaHash    string `gorm:"not null"`
	NomeCompleto string `gorm:"index"`
	Perfil       Perfil `gorm:"type:varchar(20);not null;default:'operacional'"`
	Ativo        bool   `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Usuario) TableName() string { return "usuarios" }

func (u *Usuario) EhAdministrativo() bool { return u.Perfil == PerfilAdministrativo }

// PodeAcessar implements the owner-or-admin rule: administrators may touch
// any row, operational users only rows they created.
func (u *Usuario) PodeAcessar(criadorID uint) bool {
	return u.EhAdministrativo() || u.ID == criadorID
}
