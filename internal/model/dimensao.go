package model

import "github.com/shopspring/decimal"

// Dimension tables: reference entities that events point at. Every row is
// owned by the user who created it (Auditoria); listing is open to any
// active user, single-row access follows the owner-or-admin rule.

// UnidadeMedida: "KG" | "Unidade" | "Litro"
type UnidadeMedida string

const (
	UnidadeKG      UnidadeMedida = "KG"
	UnidadeUnidade UnidadeMedida = "Unidade"
	UnidadeLitro   UnidadeMedida = "Litro"
)

func (u UnidadeMedida) Valida() bool {
	switch u {
	case UnidadeKG, UnidadeUnidade, UnidadeLitro:
		return true
	}
	return false
}

type Assessoria struct {
	ID        uint   `gorm:"primaryKey"`
	Descricao string `gorm:"index;not null"`
	Contato   *string
	Telefone  *string
	Auditoria
}

func (Assessoria) TableName() string { return "dim_assessorias" }

type Buffet struct {
	ID        uint   `gorm:"primaryKey"`
	Descricao string `gorm:"index;not null"`
	Contato   *string
	Telefone  *string
	Auditoria
}

func (Buffet) TableName() string { return "dim_buffets" }

type Cidade struct {
	ID     uint   `gorm:"primaryKey"`
	Nome   string `gorm:"index;not null"`
	Estado string `gorm:"type:varchar(2);not null"`
	Auditoria
}

func (Cidade) TableName() string { return "dim_cidades" }

type Cliente struct {
	ID               uint   `gorm:"primaryKey"`
	Nome             string `gorm:"index;not null"`
	ContatoPrincipal *string
	Telefone         *string
	Email            *string `gorm:"index"`
	Auditoria
}

func (Cliente) TableName() string { return "dim_clientes" }

type Insumo struct {
	ID            uint             `gorm:"primaryKey"`
	Descricao     string           `gorm:"index;not null"`
	TipoInsumo    *string
	UnidadeMedida UnidadeMedida    `gorm:"type:varchar(10);not null"`
	VlrReferencia *decimal.Decimal `gorm:"type:decimal(10,2)"`
	Auditoria
}

func (Insumo) TableName() string { return "dim_insumos" }

type LocalEvento struct {
	ID               uint   `gorm:"primaryKey"`
	Descricao        string `gorm:"index;not null"`
	Endereco         *string
	CapacidadeMaxima *int
	Auditoria
}

func (LocalEvento) TableName() string { return "dim_locais_evento" }

type TipoEvento struct {
	ID        uint   `gorm:"primaryKey"`
	Descricao string `gorm:"uniqueIndex;not null"`
	Auditoria
}

func (TipoEvento) TableName() string { return "dim_tipos_evento" }
