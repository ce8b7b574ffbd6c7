package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/rodrigomoreli/brumas2/internal/model"
)

// ReferenciaRepository answers "does this dimension row exist?" for the
// foreign keys an event (or expense line) may point at. The event service
// validates every reference up front so a bad id rejects the request before
// anything is written.
type ReferenciaRepository interface {
	ClienteExiste(ctx context.Context, id uint) (bool, error)
	LocalEventoExiste(ctx context.Context, id uint) (bool, error)
	TipoEventoExiste(ctx context.Context, id uint) (bool, error)
	CidadeExiste(ctx context.Context, id uint) (bool, error)
	AssessoriaExiste(ctx context.Context, id uint) (bool, error)
	BuffetExiste(ctx context.Context, id uint) (bool, error)
	InsumoExiste(ctx context.Context, id uint) (bool, error)
}

type referenciaRepo struct{ db *gorm.DB }

func NewReferenciaRepository(db *gorm.DB) ReferenciaRepository { return &referenciaRepo{db: db} }

func existe[T any](ctx context.Context, db *gorm.DB, id uint) (bool, error) {
	var n int64
	var m T
	err := db.WithContext(ctx).Model(&m).Where("id = ?", id).Count(&n).Error
	return n > 0, traduz(err)
}

func (r *referenciaRepo) ClienteExiste(ctx context.Context, id uint) (bool, error) {
	return existe[model.Cliente](ctx, r.db, id)
}

func (r *referenciaRepo) LocalEventoExiste(ctx context.Context, id uint) (bool, error) {
	return existe[model.LocalEvento](ctx, r.db, id)
}

func (r *referenciaRepo) TipoEventoExiste(ctx context.Context, id uint) (bool, error) {
	return existe[model.TipoEvento](ctx, r.db, id)
}

func (r *referenciaRepo) CidadeExiste(ctx context.Context, id uint) (bool, error) {
	return existe[model.Cidade](ctx, r.db, id)
}

func (r *referenciaRepo) AssessoriaExiste(ctx context.Context, id uint) (bool, error) {
	return existe[model.Assessoria](ctx, r.db, id)
}

func (r *referenciaRepo) BuffetExiste(ctx context.Context, id uint) (bool, error) {
	return existe[model.Buffet](ctx, r.db, id)
}

func (r *referenciaRepo) InsumoExiste(ctx context.Context, id uint) (bool, error) {
	return existe[model.Insumo](ctx, r.db, id)
}
