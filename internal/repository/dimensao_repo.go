package repository

import (
	"context"

	"gorm.io/gorm"
)

// Dimensao is the data access contract shared by the seven lookup tables
// (assessorias, buffets, cidades, clientes, insumos, locais de evento e tipos
// de evento). The CRUD shape is identical for all of them, so one generic
// implementation is instantiated per entity instead of seven copies.
type Dimensao[T any] interface {
	Create(ctx context.Context, m *T) error
	FindByID(ctx context.Context, id uint) (*T, error)
	List(ctx context.Context, skip, limit int) ([]T, error)
	Save(ctx context.Context, m *T) error
	Delete(ctx context.Context, m *T) error
}

type dimensaoRepo[T any] struct{ db *gorm.DB }

func NewDimensaoRepository[T any](db *gorm.DB) Dimensao[T] {
	return &dimensaoRepo[T]{db: db}
}

func (r *dimensaoRepo[T]) Create(ctx context.Context, m *T) error {
	return traduz(r.db.WithContext(ctx).Create(m).Error)
}

func (r *dimensaoRepo[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	var m T
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, traduz(err)
	}
	return &m, nil
}

// List is not filtered by creator: dimension rows are shared vocabulary and
// every authenticated user sees the full catalogue.
func (r *dimensaoRepo[T]) List(ctx context.Context, skip, limit int) ([]T, error) {
	var itens []T
	err := r.db.WithContext(ctx).
		Order("id").
		Offset(skip).
		Limit(limit).
		Find(&itens).Error
	return itens, traduz(err)
}

func (r *dimensaoRepo[T]) Save(ctx context.Context, m *T) error {
	return traduz(r.db.WithContext(ctx).Save(m).Error)
}

func (r *dimensaoRepo[T]) Delete(ctx context.Context, m *T) error {
	return traduz(r.db.WithContext(ctx).Delete(m).Error)
}
