package dto

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rodrigomoreli/brumas2/internal/model"
)

// ─── Despesa ─────────────────────────────────────────────────────────────────

type CriarDespesaRequest struct {
	IDInsumo        uint             `json:"id_insumo"         validate:"required"`
	Quantidade      *decimal.Decimal `json:"quantidade"        validate:"required"`
	VlrUnitarioPago *decimal.Decimal `json:"vlr_unitario_pago" validate:"required"`
	VlrTotalPago    *decimal.Decimal `json:"vlr_total_pago"    validate:"required"`
	DataDespesa     string           `json:"data_despesa"      validate:"required,datetime=2006-01-02"`
}

func (r CriarDespesaRequest) ToModel() (*model.Despesa, error) {
	data, err := time.Parse(DateLayout, r.DataDespesa)
	if err != nil {
		return nil, errors.New("data_despesa inválida")
	}
	return &model.Despesa{
		Quantidade:      *r.Quantidade,
		VlrUnitarioPago: *r.VlrUnitarioPago,
		VlrTotalPago:    *r.VlrTotalPago,
		DataDespesa:     data,
		IDInsumo:        r.IDInsumo,
	}, nil
}

type AtualizarDespesaRequest struct {
	IDInsumo        Optional[uint]            `json:"id_insumo"`
	Quantidade      Optional[decimal.Decimal] `json:"quantidade"`
	VlrUnitarioPago Optional[decimal.Decimal] `json:"vlr_unitario_pago"`
	VlrTotalPago    Optional[decimal.Decimal] `json:"vlr_total_pago"`
	DataDespesa     Optional[string]          `json:"data_despesa"`
}

func (r AtualizarDespesaRequest) Aplicar(m *model.Despesa) error {
	if r.IDInsumo.Has() {
		m.IDInsumo = *r.IDInsumo.Value
	}
	if r.Quantidade.Has() {
		m.Quantidade = *r.Quantidade.Value
	}
	if r.VlrUnitarioPago.Has() {
		m.VlrUnitarioPago = *r.VlrUnitarioPago.Value
	}
	if r.VlrTotalPago.Has() {
		m.VlrTotalPago = *r.VlrTotalPago.Value
	}
	if r.DataDespesa.Has() {
		data, err := time.Parse(DateLayout, *r.DataDespesa.Value)
		if err != nil {
			return errors.New("data_despesa inválida")
		}
		m.DataDespesa = data
	}
	return nil
}

type DespesaResponse struct {
	ID               uint            `json:"id"`
	IDEvento         uint            `json:"id_evento"`
	IDInsumo         uint            `json:"id_insumo"`
	Quantidade       decimal.Decimal `json:"quantidade"`
	VlrUnitarioPago  decimal.Decimal `json:"vlr_unitario_pago"`
	VlrTotalPago     decimal.Decimal `json:"vlr_total_pago"`
	DataDespesa      string          `json:"data_despesa"`
	IDUsuarioCriador uint            `json:"id_usuario_criador"`
	CreatedAt        string          `json:"created_at"`
	UpdatedAt        string          `json:"updated_at"`
}

func NovaDespesaResponse(m *model.Despesa) DespesaResponse {
	return DespesaResponse{
		ID:               m.ID,
		IDEvento:         m.IDEvento,
		IDInsumo:         m.IDInsumo,
		Quantidade:       m.Quantidade,
		VlrUnitarioPago:  m.VlrUnitarioPago,
		VlrTotalPago:     m.VlrTotalPago,
		DataDespesa:      ds(m.DataDespesa),
		IDUsuarioCriador: m.IDUsuarioCriador,
		CreatedAt:        ts(m.CreatedAt),
		UpdatedAt:        ts(m.UpdatedAt),
	}
}

// ─── Degustação ──────────────────────────────────────────────────────────────

type CriarDegustacaoRequest struct {
	DataDegustacao  string           `json:"data_degustacao"  validate:"required,datetime=2006-01-02"`
	Status          string           `json:"status"           validate:"omitempty,oneof=Agendada Realizada Cancelada"`
	VlrDegustacao   *decimal.Decimal `json:"vlr_degustacao"`
	FeedbackCliente *string          `json:"feedback_cliente"`
}

func (r CriarDegustacaoRequest) ToModel() (*model.Degustacao, error) {
	data, err := time.Parse(DateLayout, r.DataDegustacao)
	if err != nil {
		return nil, errors.New("data_degustacao inválida")
	}
	status := model.StatusDegustacaoAgendada
	if r.Status != "" {
		status = model.StatusDegustacao(r.Status)
	}
	return &model.Degustacao{
		DataDegustacao:  data,
		Status:          status,
		VlrDegustacao:   r.VlrDegustacao,
		FeedbackCliente: r.FeedbackCliente,
	}, nil
}

type AtualizarDegustacaoRequest struct {
	DataDegustacao  Optional[string]          `json:"data_degustacao"`
	Status          Optional[string]          `json:"status"`
	VlrDegustacao   Optional[decimal.Decimal] `json:"vlr_degustacao"`
	FeedbackCliente Optional[string]          `json:"feedback_cliente"`
}

func (r AtualizarDegustacaoRequest) Aplicar(m *model.Degustacao) error {
	if r.DataDegustacao.Has() {
		data, err := time.Parse(DateLayout, *r.DataDegustacao.Value)
		if err != nil {
			return errors.New("data_degustacao inválida")
		}
		m.DataDegustacao = data
	}
	if r.Status.Has() {
		s := model.StatusDegustacao(*r.Status.Value)
		if !s.Valido() {
			return errors.New("status inválido")
		}
		m.Status = s
	}
	if r.VlrDegustacao.Defined {
		m.VlrDegustacao = r.VlrDegustacao.Value
	}
	if r.FeedbackCliente.Defined {
		m.FeedbackCliente = r.FeedbackCliente.Value
	}
	return nil
}

type DegustacaoResponse struct {
	ID               uint             `json:"id"`
	IDEvento         uint             `json:"id_evento"`
	DataDegustacao   string           `json:"data_degustacao"`
	Status           string           `json:"status"`
	VlrDegustacao    *decimal.Decimal `json:"vlr_degustacao"`
	FeedbackCliente  *string          `json:"feedback_cliente"`
	IDUsuarioCriador uint             `json:"id_usuario_criador"`
	CreatedAt        string           `json:"created_at"`
	UpdatedAt        string           `json:"updated_at"`
}

func NovaDegustacaoResponse(m *model.Degustacao) DegustacaoResponse {
	return DegustacaoResponse{
		ID:               m.ID,
		IDEvento:         m.IDEvento,
		DataDegustacao:   ds(m.DataDegustacao),
		Status:           string(m.Status),
		VlrDegustacao:    m.VlrDegustacao,
		FeedbackCliente:  m.FeedbackCliente,
		IDUsuarioCriador: m.IDUsuarioCriador,
		CreatedAt:        ts(m.CreatedAt),
		UpdatedAt:        ts(m.UpdatedAt),
	}
}

// ─── Evento ──────────────────────────────────────────────────────────────────

type CriarEventoRequest struct {
	IDCliente               uint             `json:"id_cliente"                 validate:"required"`
	IDLocalEvento           uint             `json:"id_local_evento"            validate:"required"`
	DataEvento              string           `json:"data_evento"                validate:"required,datetime=2006-01-02"`
	IDTipoEvento            *uint            `json:"id_tipo_evento"`
	IDCidade                *uint            `json:"id_cidade"`
	IDAssessoria            *uint            `json:"id_assessoria"`
	IDBuffet                *uint            `json:"id_buffet"`
	HorasFesta              *decimal.Decimal `json:"horas_festa"`
	QtdeConvidadosPrevista  *int             `json:"qtde_convidados_prevista"   validate:"omitempty,min=0"`
	StatusEvento            string           `json:"status_evento"              validate:"omitempty,oneof=Orçamento Confirmado Realizado Cancelado"`
	VlrUnitarioPorConvidado *decimal.Decimal `json:"vlr_unitario_por_convidado"`
	VlrTotalContrato        *decimal.Decimal `json:"vlr_total_contrato"`
	DataVenda               *string          `json:"data_venda"                 validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	ObservacoesVenda        *string          `json:"observacoes_venda"`
}

func (r CriarEventoRequest) ToModel() (*model.Evento, error) {
	dataEvento, err := time.Parse(DateLayout, r.DataEvento)
	if err != nil {
		return nil, errors.New("data_evento inválida")
	}
	e := &model.Evento{
		DataEvento:              dataEvento,
		HorasFesta:              r.HorasFesta,
		QtdeConvidadosPrevista:  r.QtdeConvidadosPrevista,
		StatusEvento:            model.StatusEventoOrcamento,
		IDCliente:               r.IDCliente,
		IDLocalEvento:           r.IDLocalEvento,
		IDTipoEvento:            r.IDTipoEvento,
		IDCidade:                r.IDCidade,
		IDAssessoria:            r.IDAssessoria,
		IDBuffet:                r.IDBuffet,
		VlrUnitarioPorConvidado: r.VlrUnitarioPorConvidado,
		VlrTotalContrato:        r.VlrTotalContrato,
		ObservacoesVenda:        r.ObservacoesVenda,
	}
	if r.StatusEvento != "" {
		e.StatusEvento = model.StatusEvento(r.StatusEvento)
	}
	if r.DataVenda != nil {
		dv, err := time.Parse(time.RFC3339, *r.DataVenda)
		if err != nil {
			return nil, errors.New("data_venda inválida")
		}
		e.DataVenda = &dv
	}
	return e, nil
}

type AtualizarEventoRequest struct {
	IDCliente               Optional[uint]            `json:"id_cliente"`
	IDLocalEvento           Optional[uint]            `json:"id_local_evento"`
	IDTipoEvento            Optional[uint]            `json:"id_tipo_evento"`
	IDCidade                Optional[uint]            `json:"id_cidade"`
	IDAssessoria            Optional[uint]            `json:"id_assessoria"`
	IDBuffet                Optional[uint]            `json:"id_buffet"`
	DataEvento              Optional[string]          `json:"data_evento"`
	HorasFesta              Optional[decimal.Decimal] `json:"horas_festa"`
	QtdeConvidadosPrevista  Optional[int]             `json:"qtde_convidados_prevista"`
	StatusEvento            Optional[string]          `json:"status_evento"`
	VlrUnitarioPorConvidado Optional[decimal.Decimal] `json:"vlr_unitario_por_convidado"`
	VlrTotalContrato        Optional[decimal.Decimal] `json:"vlr_total_contrato"`
	DataVenda               Optional[string]          `json:"data_venda"`
	ObservacoesVenda        Optional[string]          `json:"observacoes_venda"`
}

func (r AtualizarEventoRequest) Aplicar(m *model.Evento) error {
	if r.IDCliente.Has() {
		m.IDCliente = *r.IDCliente.Value
	}
	if r.IDLocalEvento.Has() {
		m.IDLocalEvento = *r.IDLocalEvento.Value
	}
	if r.IDTipoEvento.Defined {
		m.IDTipoEvento = r.IDTipoEvento.Value
	}
	if r.IDCidade.Defined {
		m.IDCidade = r.IDCidade.Value
	}
	if r.IDAssessoria.Defined {
		m.IDAssessoria = r.IDAssessoria.Value
	}
	if r.IDBuffet.Defined {
		m.IDBuffet = r.IDBuffet.Value
	}
	if r.DataEvento.Has() {
		data, err := time.Parse(DateLayout, *r.DataEvento.Value)
		if err != nil {
			return errors.New("data_evento inválida")
		}
		m.DataEvento = data
	}
	if r.HorasFesta.Defined {
		m.HorasFesta = r.HorasFesta.Value
	}
	if r.QtdeConvidadosPrevista.Defined {
		m.QtdeConvidadosPrevista = r.QtdeConvidadosPrevista.Value
	}
	if r.StatusEvento.Has() {
		s := model.StatusEvento(*r.StatusEvento.Value)
		if !s.Valido() {
			return errors.New("status_evento inválido")
		}
		m.StatusEvento = s
	}
	if r.VlrUnitarioPorConvidado.Defined {
		m.VlrUnitarioPorConvidado = r.VlrUnitarioPorConvidado.Value
	}
	if r.VlrTotalContrato.Defined {
		m.VlrTotalContrato = r.VlrTotalContrato.Value
	}
	if r.DataVenda.Defined {
		if r.DataVenda.Value == nil {
			m.DataVenda = nil
		} else {
			dv, err := time.Parse(time.RFC3339, *r.DataVenda.Value)
			if err != nil {
				return errors.New("data_venda inválida")
			}
			m.DataVenda = &dv
		}
	}
	if r.ObservacoesVenda.Defined {
		m.ObservacoesVenda = r.ObservacoesVenda.Value
	}
	return nil
}

type EventoResponse struct {
	ID                      uint                 `json:"id"`
	IDUsuarioCriador        uint                 `json:"id_usuario_criador"`
	IDCliente               uint                 `json:"id_cliente"`
	IDLocalEvento           uint                 `json:"id_local_evento"`
	IDTipoEvento            *uint                `json:"id_tipo_evento"`
	IDCidade                *uint                `json:"id_cidade"`
	IDAssessoria            *uint                `json:"id_assessoria"`
	IDBuffet                *uint                `json:"id_buffet"`
	DataEvento              string               `json:"data_evento"`
	HorasFesta              *decimal.Decimal     `json:"horas_festa"`
	QtdeConvidadosPrevista  *int                 `json:"qtde_convidados_prevista"`
	StatusEvento            string               `json:"status_evento"`
	VlrUnitarioPorConvidado *decimal.Decimal     `json:"vlr_unitario_por_convidado"`
	VlrTotalContrato        *decimal.Decimal     `json:"vlr_total_contrato"`
	DataVenda               *string              `json:"data_venda"`
	ObservacoesVenda        *string              `json:"observacoes_venda"`
	Despesas                []DespesaResponse    `json:"despesas"`
	Degustacoes             []DegustacaoResponse `json:"degustacoes"`
	CreatedAt               string               `json:"created_at"`
	UpdatedAt               string               `json:"updated_at"`
}

func NovoEventoResponse(m *model.Evento) EventoResponse {
	despesas := make([]DespesaResponse, 0, len(m.Despesas))
	for i := range m.Despesas {
		despesas = append(despesas, NovaDespesaResponse(&m.Despesas[i]))
	}
	degustacoes := make([]DegustacaoResponse, 0, len(m.Degustacoes))
	for i := range m.Degustacoes {
		degustacoes = append(degustacoes, NovaDegustacaoResponse(&m.Degustacoes[i]))
	}
	return EventoResponse{
		ID:                      m.ID,
		IDUsuarioCriador:        m.IDUsuarioCriador,
		IDCliente:               m.IDCliente,
		IDLocalEvento:           m.IDLocalEvento,
		IDTipoEvento:            m.IDTipoEvento,
		IDCidade:                m.IDCidade,
		IDAssessoria:            m.IDAssessoria,
		IDBuffet:                m.IDBuffet,
		DataEvento:              ds(m.DataEvento),
		HorasFesta:              m.HorasFesta,
		QtdeConvidadosPrevista:  m.QtdeConvidadosPrevista,
		StatusEvento:            string(m.StatusEvento),
		VlrUnitarioPorConvidado: m.VlrUnitarioPorConvidado,
		VlrTotalContrato:        m.VlrTotalContrato,
		DataVenda:               tsPtr(m.DataVenda),
		ObservacoesVenda:        m.ObservacoesVenda,
		Despesas:                despesas,
		Degustacoes:             degustacoes,
		CreatedAt:               ts(m.CreatedAt),
		UpdatedAt:               ts(m.UpdatedAt),
	}
}

// EventoDetailResponse adds the display names resolved from the event's
// dimension references, for the detail screen.
type EventoDetailResponse struct {
	EventoResponse
	ClienteNome        *string `json:"cliente_nome"`
	LocalEventoNome    *string `json:"local_evento_nome"`
	TipoEventoNome     *string `json:"tipo_evento_nome"`
	CidadeNome         *string `json:"cidade_nome"`
	AssessoriaNome     *string `json:"assessoria_nome"`
	BuffetNome         *string `json:"buffet_nome"`
	UsuarioCriadorNome *string `json:"usuario_criador_nome"`
}

func NovoEventoDetailResponse(m *model.Evento) EventoDetailResponse {
	d := EventoDetailResponse{EventoResponse: NovoEventoResponse(m)}
	if m.Cliente != nil {
		d.ClienteNome = &m.Cliente.Nome
	}
	if m.LocalEvento != nil {
		d.LocalEventoNome = &m.LocalEvento.Descricao
	}
	if m.TipoEvento != nil {
		d.TipoEventoNome = &m.TipoEvento.Descricao
	}
	if m.Cidade != nil {
		d.CidadeNome = &m.Cidade.Nome
	}
	if m.Assessoria != nil {
		d.AssessoriaNome = &m.Assessoria.Descricao
	}
	if m.Buffet != nil {
		d.BuffetNome = &m.Buffet.Descricao
	}
	if m.UsuarioCriador != nil {
		d.UsuarioCriadorNome = &m.UsuarioCriador.NomeCompleto
	}
	return d
}

// EventoListItem is the light row used by the paginated listing (cards).
type EventoListItem struct {
	ID                     uint             `json:"id"`
	IDUsuarioCriador       uint             `json:"id_usuario_criador"`
	IDCliente              uint             `json:"id_cliente"`
	IDLocalEvento          uint             `json:"id_local_evento"`
	DataEvento             string           `json:"data_evento"`
	StatusEvento           string           `json:"status_evento"`
	ClienteNome            *string          `json:"cliente_nome"`
	LocalEventoNome        *string          `json:"local_evento_nome"`
	BuffetNome             *string          `json:"buffet_nome"`
	QtdeConvidadosPrevista *int             `json:"qtde_convidados_prevista"`
	VlrTotalContrato       *decimal.Decimal `json:"vlr_total_contrato"`
}

func NovoEventoListItem(m *model.Evento) EventoListItem {
	item := EventoListItem{
		ID:                     m.ID,
		IDUsuarioCriador:       m.IDUsuarioCriador,
		IDCliente:              m.IDCliente,
		IDLocalEvento:          m.IDLocalEvento,
		DataEvento:             ds(m.DataEvento),
		StatusEvento:           string(m.StatusEvento),
		QtdeConvidadosPrevista: m.QtdeConvidadosPrevista,
		VlrTotalContrato:       m.VlrTotalContrato,
	}
	if m.Cliente != nil {
		item.ClienteNome = &m.Cliente.Nome
	}
	if m.LocalEvento != nil {
		item.LocalEventoNome = &m.LocalEvento.Descricao
	}
	if m.Buffet != nil {
		item.BuffetNome = &m.Buffet.Descricao
	}
	return item
}

// ─── Filtros ─────────────────────────────────────────────────────────────────

type EventoFilter struct {
	IDCliente    *uint  `form:"id_cliente"`
	IDCidade     *uint  `form:"id_cidade"`
	IDBuffet     *uint  `form:"id_buffet"`
	StatusEvento string `form:"status_evento"                   validate:"omitempty,oneof=Orçamento Confirmado Realizado Cancelado"`
	DataInicio   string `form:"data_inicio"                     validate:"omitempty,datetime=2006-01-02"`
	DataFim      string `form:"data_fim"                        validate:"omitempty,datetime=2006-01-02"`
	OrdenarPor   string `form:"ordenar_por,default=data_evento"`
	Ordem        string `form:"ordem,default=desc"              validate:"omitempty,oneof=asc desc"`
	Page         int    `form:"page,default=1"                  validate:"min=1"`
	PageSize     int    `form:"page_size,default=20"            validate:"min=1,max=100"`
}
