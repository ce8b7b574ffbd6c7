package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/rodrigomoreli/brumas2/internal/model"
)

// Row types scanned straight out of the aggregate queries. Every SUM is
// wrapped in COALESCE so an empty scope produces zeros, not NULLs.

type TotaisEventosRow struct {
	QtdeEventos     int64           `gorm:"column:qtde_eventos"`
	VlrTotal        decimal.Decimal `gorm:"column:vlr_total"`
	VlrMedio        decimal.Decimal `gorm:"column:vlr_medio"`
	TotalConvidados int64           `gorm:"column:total_convidados"`
	MediaConvidados decimal.Decimal `gorm:"column:media_convidados"`
}

type ContagemStatusRow struct {
	Status string `gorm:"column:status"`
	Qtde   int64  `gorm:"column:qtde"`
}

type TotaisFilhosRow struct {
	Qtde     int64           `gorm:"column:qtde"`
	VlrTotal decimal.Decimal `gorm:"column:vlr_total"`
}

type EventosPorMesRow struct {
	Mes      string          `gorm:"column:mes"`
	Qtde     int64           `gorm:"column:qtde"`
	VlrTotal decimal.Decimal `gorm:"column:vlr_total"`
}

type EventosPorStatusRow struct {
	Status   string          `gorm:"column:status"`
	Qtde     int64           `gorm:"column:qtde"`
	VlrTotal decimal.Decimal `gorm:"column:vlr_total"`
}

type TopClienteRow struct {
	IDCliente   uint            `gorm:"column:id_cliente"`
	Nome        string          `gorm:"column:nome"`
	QtdeEventos int64           `gorm:"column:qtde_eventos"`
	VlrTotal    decimal.Decimal `gorm:"column:vlr_total"`
}

type DespesaPorInsumoRow struct {
	IDInsumo        uint            `gorm:"column:id_insumo"`
	Descricao       string          `gorm:"column:descricao"`
	QuantidadeTotal decimal.Decimal `gorm:"column:quantidade_total"`
	VlrTotal        decimal.Decimal `gorm:"column:vlr_total"`
	QtdeEventos     int64           `gorm:"column:qtde_eventos"`
}

// StatsRepository runs the reporting aggregates. Every method takes the same
// scope pair: criadorID (nil = todos os eventos) and an optional inclusive
// data_evento range, pre-validated as YYYY-MM-DD strings.
type StatsRepository interface {
	TotaisEventos(ctx context.Context, criadorID *uint, dataInicio, dataFim string) (TotaisEventosRow, error)
	ContagemPorStatus(ctx context.Context, criadorID *uint, dataInicio, dataFim string) ([]ContagemStatusRow, error)
	TotaisDespesas(ctx context.Context, criadorID *uint, dataInicio, dataFim string) (TotaisFilhosRow, error)
	TotaisDegustacoes(ctx context.Context, criadorID *uint, dataInicio, dataFim string) (TotaisFilhosRow, error)
	EventosPorMes(ctx context.Context, criadorID *uint, dataInicio, dataFim string) ([]EventosPorMesRow, error)
	EventosPorStatus(ctx context.Context, criadorID *uint, dataInicio, dataFim string) ([]EventosPorStatusRow, error)
	TopClientes(ctx context.Context, criadorID *uint, dataInicio, dataFim string, limite int) ([]TopClienteRow, error)
	DespesasPorInsumo(ctx context.Context, criadorID *uint, dataInicio, dataFim string, limite int) ([]DespesaPorInsumoRow, error)
}

type statsRepo struct{ db *gorm.DB }

func NewStatsRepository(db *gorm.DB) StatsRepository { return &statsRepo{db: db} }

func (r *statsRepo) eventos(ctx context.Context, criadorID *uint, dataInicio, dataFim string) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.Evento{})
	return escopoEventos(q, criadorID, dataInicio, dataFim)
}

func (r *statsRepo) TotaisEventos(ctx context.Context, criadorID *uint, dataInicio, dataFim string) (TotaisEventosRow, error) {
	var row TotaisEventosRow
	err := r.eventos(ctx, criadorID, dataInicio, dataFim).
		Select(`COUNT(*) AS qtde_eventos,
			COALESCE(SUM(vlr_total_contrato), 0) AS vlr_total,
			COALESCE(AVG(vlr_total_contrato), 0) AS vlr_medio,
			COALESCE(SUM(qtde_convidados_prevista), 0) AS total_convidados,
			COALESCE(AVG(qtde_convidados_prevista), 0) AS media_convidados`).
		Scan(&row).Error
	return row, traduz(err)
}

func (r *statsRepo) ContagemPorStatus(ctx context.Context, criadorID *uint, dataInicio, dataFim string) ([]ContagemStatusRow, error) {
	var rows []ContagemStatusRow
	err := r.eventos(ctx, criadorID, dataInicio, dataFim).
		Select("status_evento AS status, COUNT(*) AS qtde").
		Group("status_evento").
		Scan(&rows).Error
	return rows, traduz(err)
}

func (r *statsRepo) TotaisDespesas(ctx context.Context, criadorID *uint, dataInicio, dataFim string) (TotaisFilhosRow, error) {
	var row TotaisFilhosRow
	q := r.db.WithContext(ctx).Model(&model.Despesa{}).
		Joins("JOIN eventos ON eventos.id = despesas.id_evento")
	err := escopoEventos(q, criadorID, dataInicio, dataFim).
		Select("COUNT(despesas.id) AS qtde, COALESCE(SUM(despesas.vlr_total_pago), 0) AS vlr_total").
		Scan(&row).Error
	return row, traduz(err)
}

func (r *statsRepo) TotaisDegustacoes(ctx context.Context, criadorID *uint, dataInicio, dataFim string) (TotaisFilhosRow, error) {
	var row TotaisFilhosRow
	q := r.db.WithContext(ctx).Model(&model.Degustacao{}).
		Joins("JOIN eventos ON eventos.id = degustacoes.id_evento")
	err := escopoEventos(q, criadorID, dataInicio, dataFim).
		Select("COUNT(degustacoes.id) AS qtde, COALESCE(SUM(degustacoes.vlr_degustacao), 0) AS vlr_total").
		Scan(&row).Error
	return row, traduz(err)
}

func (r *statsRepo) EventosPorMes(ctx context.Context, criadorID *uint, dataInicio, dataFim string) ([]EventosPorMesRow, error) {
	var rows []EventosPorMesRow
	err := r.eventos(ctx, criadorID, dataInicio, dataFim).
		Select(`TO_CHAR(data_evento, 'YYYY-MM') AS mes,
			COUNT(*) AS qtde,
			COALESCE(SUM(vlr_total_contrato), 0) AS vlr_total`).
		Group("TO_CHAR(data_evento, 'YYYY-MM')").
		Order("mes ASC").
		Scan(&rows).Error
	return rows, traduz(err)
}

func (r *statsRepo) EventosPorStatus(ctx context.Context, criadorID *uint, dataInicio, dataFim string) ([]EventosPorStatusRow, error) {
	var rows []EventosPorStatusRow
	err := r.eventos(ctx, criadorID, dataInicio, dataFim).
		Select(`status_evento AS status,
			COUNT(*) AS qtde,
			COALESCE(SUM(vlr_total_contrato), 0) AS vlr_total`).
		Group("status_evento").
		Order("qtde DESC").
		Scan(&rows).Error
	return rows, traduz(err)
}

func (r *statsRepo) TopClientes(ctx context.Context, criadorID *uint, dataInicio, dataFim string, limite int) ([]TopClienteRow, error) {
	var rows []TopClienteRow
	q := r.db.WithContext(ctx).Model(&model.Evento{}).
		Joins("JOIN dim_clientes ON dim_clientes.id = eventos.id_cliente")
	err := escopoEventos(q, criadorID, dataInicio, dataFim).
		Select(`dim_clientes.id AS id_cliente,
			dim_clientes.nome AS nome,
			COUNT(eventos.id) AS qtde_eventos,
			COALESCE(SUM(eventos.vlr_total_contrato), 0) AS vlr_total`).
		Group("dim_clientes.id, dim_clientes.nome").
		Order("vlr_total DESC, qtde_eventos DESC").
		Limit(limite).
		Scan(&rows).Error
	return rows, traduz(err)
}

func (r *statsRepo) DespesasPorInsumo(ctx context.Context, criadorID *uint, dataInicio, dataFim string, limite int) ([]DespesaPorInsumoRow, error) {
	var rows []DespesaPorInsumoRow
	q := r.db.WithContext(ctx).Model(&model.Despesa{}).
		Joins("JOIN eventos ON eventos.id = despesas.id_evento").
		Joins("JOIN dim_insumos ON dim_insumos.id = despesas.id_insumo")
	err := escopoEventos(q, criadorID, dataInicio, dataFim).
		Select(`dim_insumos.id AS id_insumo,
			dim_insumos.descricao AS descricao,
			COALESCE(SUM(despesas.quantidade), 0) AS quantidade_total,
			COALESCE(SUM(despesas.vlr_total_pago), 0) AS vlr_total,
			COUNT(DISTINCT despesas.id_evento) AS qtde_eventos`).
		Group("dim_insumos.id, dim_insumos.descricao").
		Order("vlr_total DESC").
		Limit(limite).
		Scan(&rows).Error
	return rows, traduz(err)
}
