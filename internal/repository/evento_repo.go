package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rodrigomoreli/brumas2/internal/dto"
	"github.com/rodrigomoreli/brumas2/internal/model"
)

// colunasOrdenacao is the allow-list of sortable columns for the event
// listing. Anything outside it silently falls back to data_evento so a
// crafted ordenar_por value never reaches the ORDER BY clause.
var colunasOrdenacao = map[string]bool{
	"data_evento":              true,
	"created_at":               true,
	"updated_at":               true,
	"vlr_total_contrato":       true,
	"qtde_convidados_prevista": true,
	"status_evento":            true,
}

// EventoRepository is the data access contract for events and their owned
// children (despesas e degustações). Children never leave the scope of their
// event: every child lookup is keyed by (evento, id).
type EventoRepository interface {
	Create(ctx context.Context, e *model.Evento) error
	FindByID(ctx context.Context, id uint) (*model.Evento, error)
	FindComFilhos(ctx context.Context, id uint) (*model.Evento, error)
	FindDetalhe(ctx context.Context, id uint) (*model.Evento, error)
	List(ctx context.Context, criadorID *uint, f dto.EventoFilter) ([]model.Evento, int64, error)
	Save(ctx context.Context, e *model.Evento) error
	DeleteComCascata(ctx context.Context, e *model.Evento) error

	CreateDespesa(ctx context.Context, d *model.Despesa) error
	FindDespesa(ctx context.Context, eventoID, despesaID uint) (*model.Despesa, error)
	ListDespesas(ctx context.Context, eventoID uint) ([]model.Despesa, error)
	SaveDespesa(ctx context.Context, d *model.Despesa) error
	DeleteDespesa(ctx context.Context, d *model.Despesa) error

	CreateDegustacao(ctx context.Context, g *model.Degustacao) error
	FindDegustacao(ctx context.Context, eventoID, degustacaoID uint) (*model.Degustacao, error)
	ListDegustacoes(ctx context.Context, eventoID uint) ([]model.Degustacao, error)
	SaveDegustacao(ctx context.Context, g *model.Degustacao) error
	DeleteDegustacao(ctx context.Context, g *model.Degustacao) error
}

type eventoRepo struct{ db *gorm.DB }

func NewEventoRepository(db *gorm.DB) EventoRepository { return &eventoRepo{db: db} }

// escopoEventos applies the two predicates every event query shares: the
// ownership scope (nil = administrador, sees everything) and the inclusive
// data_evento range. Date strings arrive pre-validated as YYYY-MM-DD.
func escopoEventos(q *gorm.DB, criadorID *uint, dataInicio, dataFim string) *gorm.DB {
	if criadorID != nil {
		q = q.Where("eventos.id_usuario_criador = ?", *criadorID)
	}
	if dataInicio != "" {
		q = q.Where("eventos.data_evento >= ?", dataInicio)
	}
	if dataFim != "" {
		q = q.Where("eventos.data_evento <= ?", dataFim)
	}
	return q
}

func (r *eventoRepo) Create(ctx context.Context, e *model.Evento) error {
	return traduz(r.db.WithContext(ctx).Omit(clause.Associations).Create(e).Error)
}

func (r *eventoRepo) FindByID(ctx context.Context, id uint) (*model.Evento, error) {
	var e model.Evento
	if err := r.db.WithContext(ctx).First(&e, id).Error; err != nil {
		return nil, traduz(err)
	}
	return &e, nil
}

func (r *eventoRepo) FindComFilhos(ctx context.Context, id uint) (*model.Evento, error) {
	var e model.Evento
	err := r.db.WithContext(ctx).
		Preload("Despesas").
		Preload("Degustacoes").
		First(&e, id).Error
	if err != nil {
		return nil, traduz(err)
	}
	return &e, nil
}

func (r *eventoRepo) FindDetalhe(ctx context.Context, id uint) (*model.Evento, error) {
	var e model.Evento
	err := r.db.WithContext(ctx).
		Preload("Cliente").
		Preload("LocalEvento").
		Preload("TipoEvento").
		Preload("Cidade").
		Preload("Assessoria").
		Preload("Buffet").
		Preload("UsuarioCriador").
		Preload("Despesas").
		Preload("Degustacoes").
		First(&e, id).Error
	if err != nil {
		return nil, traduz(err)
	}
	return &e, nil
}

func (r *eventoRepo) List(ctx context.Context, criadorID *uint, f dto.EventoFilter) ([]model.Evento, int64, error) {
	var eventos []model.Evento
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Evento{})
	q = escopoEventos(q, criadorID, f.DataInicio, f.DataFim)

	if f.IDCliente != nil {
		q = q.Where("eventos.id_cliente = ?", *f.IDCliente)
	}
	if f.IDCidade != nil {
		q = q.Where("eventos.id_cidade = ?", *f.IDCidade)
	}
	if f.IDBuffet != nil {
		q = q.Where("eventos.id_buffet = ?", *f.IDBuffet)
	}
	if f.StatusEvento != "" {
		q = q.Where("eventos.status_evento = ?", f.StatusEvento)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, traduz(err)
	}

	coluna := f.OrdenarPor
	if !colunasOrdenacao[coluna] {
		coluna = "data_evento"
	}
	direcao := "desc"
	if f.Ordem == "asc" {
		direcao = "asc"
	}

	offset := (f.Page - 1) * f.PageSize
	err := q.
		Preload("Cliente").
		Preload("LocalEvento").
		Preload("Buffet").
		Order(coluna + " " + direcao + ", id " + direcao).
		Offset(offset).
		Limit(f.PageSize).
		Find(&eventos).Error
	return eventos, total, traduz(err)
}

// Save persists the event columns only. Associations stay untouched so a
// previously preloaded child slice is never re-upserted.
func (r *eventoRepo) Save(ctx context.Context, e *model.Evento) error {
	return traduz(r.db.WithContext(ctx).Omit(clause.Associations).Save(e).Error)
}

// DeleteComCascata removes the event and its children atomically. The child
// deletes are explicit rather than left to the FK cascade so the behavior
// does not depend on how the schema was migrated.
func (r *eventoRepo) DeleteComCascata(ctx context.Context, e *model.Evento) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id_evento = ?", e.ID).Delete(&model.Despesa{}).Error; err != nil {
			return err
		}
		if err := tx.Where("id_evento = ?", e.ID).Delete(&model.Degustacao{}).Error; err != nil {
			return err
		}
		return tx.Delete(e).Error
	})
	return traduz(err)
}

// ── Despesas ─────────────────────────────────────────────────────────────────

func (r *eventoRepo) CreateDespesa(ctx context.Context, d *model.Despesa) error {
	return traduz(r.db.WithContext(ctx).Omit(clause.Associations).Create(d).Error)
}

func (r *eventoRepo) FindDespesa(ctx context.Context, eventoID, despesaID uint) (*model.Despesa, error) {
	var d model.Despesa
	err := r.db.WithContext(ctx).
		Where("id = ? AND id_evento = ?", despesaID, eventoID).
		First(&d).Error
	if err != nil {
		return nil, traduz(err)
	}
	return &d, nil
}

func (r *eventoRepo) ListDespesas(ctx context.Context, eventoID uint) ([]model.Despesa, error) {
	var despesas []model.Despesa
	err := r.db.WithContext(ctx).
		Where("id_evento = ?", eventoID).
		Order("id").
		Find(&despesas).Error
	return despesas, traduz(err)
}

func (r *eventoRepo) SaveDespesa(ctx context.Context, d *model.Despesa) error {
	return traduz(r.db.WithContext(ctx).Omit(clause.Associations).Save(d).Error)
}

func (r *eventoRepo) DeleteDespesa(ctx context.Context, d *model.Despesa) error {
	return traduz(r.db.WithContext(ctx).Delete(d).Error)
}

// ── Degustações ──────────────────────────────────────────────────────────────

func (r *eventoRepo) CreateDegustacao(ctx context.Context, g *model.Degustacao) error {
	return traduz(r.db.WithContext(ctx).Create(g).Error)
}

func (r *eventoRepo) FindDegustacao(ctx context.Context, eventoID, degustacaoID uint) (*model.Degustacao, error) {
	var g model.Degustacao
	err := r.db.WithContext(ctx).
		Where("id = ? AND id_evento = ?", degustacaoID, eventoID).
		First(&g).Error
	if err != nil {
		return nil, traduz(err)
	}
	return &g, nil
}

func (r *eventoRepo) ListDegustacoes(ctx context.Context, eventoID uint) ([]model.Degustacao, error) {
	var degustacoes []model.Degustacao
	err := r.db.WithContext(ctx).
		Where("id_evento = ?", eventoID).
		Order("id").
		Find(&degustacoes).Error
	return degustacoes, traduz(err)
}

func (r *eventoRepo) SaveDegustacao(ctx context.Context, g *model.Degustacao) error {
	return traduz(r.db.WithContext(ctx).Save(g).Error)
}

func (r *eventoRepo) DeleteDegustacao(ctx context.Context, g *model.Degustacao) error {
	return traduz(r.db.WithContext(ctx).Delete(g).Error)
}
