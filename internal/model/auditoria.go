package model

import "time"

// Auditoria carries the columns shared by every row created through the API:
// the creating user and the server-assigned timestamps. IDUsuarioCriador is
// stamped once at creation and never reassigned.
type Auditoria struct {
	IDUsuarioCriador uint `gorm:"not null;index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (a Auditoria) CriadorID() uint { return a.IDUsuarioCriador }

func (a *Auditoria) DefinirCriador(id uint) { a.IDUsuarioCriador = id }

// Owned is satisfied by every entity that embeds Auditoria. Authorization
// always goes through CriadorID; there is no per-entity creator field.
type Owned interface {
	CriadorID() uint
}

// OwnedPtr constrains the pointer side of an owned entity so the generic
// service can stamp and read the creator without reflection.
type OwnedPtr[T any] interface {
	*T
	DefinirCriador(id uint)
	CriadorID() uint
}
