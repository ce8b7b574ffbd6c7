package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatusEvento: "Orçamento" | "Confirmado" | "Realizado" | "Cancelado".
// The field is deliberately unconstrained beyond membership — any authorized
// caller may move an event to any status (manual corrections happen).
type StatusEvento string

const (
	StatusEventoOrcamento  StatusEvento = "Orçamento"
	StatusEventoConfirmado StatusEvento = "Confirmado"
	StatusEventoRealizado  StatusEvento = "Realizado"
	StatusEventoCancelado  StatusEvento = "Cancelado"
)

func (s StatusEvento) Valido() bool {
	switch s {
	case StatusEventoOrcamento, StatusEventoConfirmado, StatusEventoRealizado, StatusEventoCancelado:
		return true
	}
	return false
}

// StatusDegustacao: "Agendada" | "Realizada" | "Cancelada"
type StatusDegustacao string

const (
	StatusDegustacaoAgendada  StatusDegustacao = "Agendada"
	StatusDegustacaoRealizada StatusDegustacao = "Realizada"
	StatusDegustacaoCancelada StatusDegustacao = "Cancelada"
)

func (s StatusDegustacao) Valido() bool {
	switch s {
	case StatusDegustacaoAgendada, StatusDegustacaoRealizada, StatusDegustacaoCancelada:
		return true
	}
	return false
}

// Evento is the central fact record: a contracted or prospective party.
// Client and venue are required; the remaining dimension references are
// optional but must resolve when present. Sales figures live directly on the
// event. Despesas and Degustacoes are owned children removed with the event.
type Evento struct {
	ID                     uint             `gorm:"primaryKey"`
	DataEvento             time.Time        `gorm:"type:date;not null;index"`
	HorasFesta             *decimal.Decimal `gorm:"type:decimal(10,2)"`
	QtdeConvidadosPrevista *int
	StatusEvento           StatusEvento     `gorm:"type:varchar(20);not null;default:'Orçamento';index"`

	IDCliente     uint  `gorm:"not null;index"`
	IDLocalEvento uint  `gorm:"not null;index"`
	IDTipoEvento  *uint `gorm:"index"`
	IDCidade      *uint `gorm:"index"`
	IDAssessoria  *uint `gorm:"index"`
	IDBuffet      *uint `gorm:"index"`

	VlrUnitarioPorConvidado *decimal.Decimal `gorm:"type:decimal(10,2)"`
	VlrTotalContrato        *decimal.Decimal `gorm:"type:decimal(10,2)"`
	DataVenda               *time.Time
	ObservacoesVenda        *string          `gorm:"type:text"`

	Auditoria

	Cliente        *Cliente     `gorm:"foreignKey:IDCliente"`
	LocalEvento    *LocalEvento `gorm:"foreignKey:IDLocalEvento"`
	TipoEvento     *TipoEvento  `gorm:"foreignKey:IDTipoEvento"`
	Cidade         *Cidade      `gorm:"foreignKey:IDCidade"`
	Assessoria     *Assessoria  `gorm:"foreignKey:IDAssessoria"`
	Buffet         *Buffet      `gorm:"foreignKey:IDBuffet"`
	UsuarioCriador *Usuario     `gorm:"foreignKey:IDUsuarioCriador"`

	Despesas    []Despesa    `gorm:"foreignKey:IDEvento;constraint:OnDelete:CASCADE"`
	Degustacoes []Degustacao `gorm:"foreignKey:IDEvento;constraint:OnDelete:CASCADE"`
}

func (Evento) TableName() string { return "eventos" }

// Despesa is a cost line under one event, always tied to a supply item.
// It carries its own creator: whoever may modify the event may add a line,
// and the line is attributed to them, not to the event's creator.
type Despesa struct {
	ID              uint            `gorm:"primaryKey"`
	Quantidade      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	VlrUnitarioPago decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	VlrTotalPago    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	DataDespesa     time.Time       `gorm:"type:date;not null"`
	IDEvento        uint            `gorm:"not null;index"`
	IDInsumo        uint            `gorm:"not null;index"`

	Auditoria

	Insumo *Insumo `gorm:"foreignKey:IDInsumo"`
}

func (Despesa) TableName() string { return "despesas" }

// Degustacao is a scheduled menu-tasting session under one event.
type Degustacao struct {
	ID              uint             `gorm:"primaryKey"`
	DataDegustacao  time.Time        `gorm:"type:date;not null"`
	Status          StatusDegustacao `gorm:"type:varchar(20);not null;default:'Agendada'"`
	VlrDegustacao   *decimal.Decimal `gorm:"type:decimal(10,2)"`
	FeedbackCliente *string          `gorm:"type:text"`
	IDEvento        uint             `gorm:"not null;index"`

	Auditoria
}

func (Degustacao) TableName() string { return "degustacoes" }
