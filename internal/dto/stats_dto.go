package dto

import "github.com/shopspring/decimal"

// StatsFilter carries the query parameters shared by the report endpoints.
// The date range is inclusive on both ends and applies to data_evento.
type StatsFilter struct {
	DataInicio string `form:"data_inicio" validate:"omitempty,datetime=2006-01-02"`
	DataFim    string `form:"data_fim"    validate:"omitempty,datetime=2006-01-02"`
	Limite     int    `form:"limit,default=10"     validate:"min=1,max=100"`
	TopLimite  int    `form:"top_limit,default=5"  validate:"min=1,max=100"`
}

// EstatisticasGeraisResponse is the headline card of the reporting screen.
// Every figure defaults to zero over an empty scope.
type EstatisticasGeraisResponse struct {
	TotalEventos            int64           `json:"total_eventos"`
	EventosOrcamento        int64           `json:"eventos_orcamento"`
	EventosConfirmados      int64           `json:"eventos_confirmados"`
	EventosRealizados       int64           `json:"eventos_realizados"`
	EventosCancelados       int64           `json:"eventos_cancelados"`
	VlrTotalContratos       decimal.Decimal `json:"vlr_total_contratos"`
	VlrMedioContrato        decimal.Decimal `json:"vlr_medio_contrato"`
	TotalConvidadosPrevisto int64           `json:"total_convidados_previsto"`
	MediaConvidadosEvento   decimal.Decimal `json:"media_convidados_evento"`
	TotalDespesas           int64           `json:"total_despesas"`
	VlrTotalDespesas        decimal.Decimal `json:"vlr_total_despesas"`
	TotalDegustacoes        int64           `json:"total_degustacoes"`
	VlrTotalDegustacoes     decimal.Decimal `json:"vlr_total_degustacoes"`
}

type EventosPorMesItem struct {
	Mes      string          `json:"mes"` // YYYY-MM
	Qtde     int64           `json:"qtde_eventos"`
	VlrTotal decimal.Decimal `json:"vlr_total_contratos"`
}

type EventosPorStatusItem struct {
	Status     string          `json:"status"`
	Qtde       int64           `json:"qtde_eventos"`
	Percentual decimal.Decimal `json:"percentual"`
	VlrTotal   decimal.Decimal `json:"vlr_total_contratos"`
}

type TopClienteItem struct {
	IDCliente   uint            `json:"id_cliente"`
	Nome        string          `json:"nome"`
	QtdeEventos int64           `json:"qtde_eventos"`
	VlrTotal    decimal.Decimal `json:"vlr_total_contratos"`
}

type DespesaPorInsumoItem struct {
	IDInsumo        uint            `json:"id_insumo"`
	Descricao       string          `json:"descricao"`
	QuantidadeTotal decimal.Decimal `json:"quantidade_total"`
	VlrTotal        decimal.Decimal `json:"vlr_total_pago"`
	QtdeEventos     int64           `json:"qtde_eventos"`
}

// DashboardResponse bundles the individual reports into one payload for the
// landing screen, so the frontend issues a single request.
type DashboardResponse struct {
	Geral             EstatisticasGeraisResponse `json:"geral"`
	EventosPorMes     []EventosPorMesItem        `json:"eventos_por_mes"`
	EventosPorStatus  []EventosPorStatusItem     `json:"eventos_por_status"`
	TopClientes       []TopClienteItem           `json:"top_clientes"`
	DespesasPorInsumo []DespesaPorInsumoItem     `json:"despesas_por_insumo"`
}
