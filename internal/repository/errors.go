package repository

import (
	"errors"

	"gorm.io/gorm"
)

// Sentinel errors returned by every repository in this package. Services
// match on these instead of GORM internals, so swapping the driver (or
// stubbing a repository in tests) never changes service behavior.
var (
	// ErrNotFound is returned when the requested row does not exist.
	ErrNotFound = errors.New("registro não encontrado")

	// ErrDuplicado is returned when an insert or update violates a unique
	// constraint (username, email, descrição de tipo de evento).
	ErrDuplicado = errors.New("registro duplicado")

	// ErrReferenciado is returned when a delete or insert violates a foreign
	// key: the row is still referenced by (or references) another entity.
	ErrReferenciado = errors.New("registro referenciado por outra entidade")
)

// traduz converts GORM driver errors into the package sentinels. Requires
// TranslateError enabled on the gorm.Config so Postgres constraint errors
// arrive as gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated.
func traduz(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicado
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrReferenciado
	default:
		return err
	}
}
