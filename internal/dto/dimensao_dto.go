package dto

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/rodrigomoreli/brumas2/internal/model"
)

// Request DTOs for the seven dimension kinds. Create requests map straight to
// a model via ToModel; update requests patch an existing row via Aplicar with
// PATCH semantics (absent = untouched, explicit null = cleared on nullable
// columns, null on required columns is a no-op).

// ─── Assessoria ──────────────────────────────────────────────────────────────

type CriarAssessoriaRequest struct {
	Descricao string  `json:"descricao" validate:"required,min=2,max=255"`
	Contato   *string `json:"contato"`
	Telefone  *string `json:"telefone"`
}

func (r CriarAssessoriaRequest) ToModel() *model.Assessoria {
	return &model.Assessoria{Descricao: r.Descricao, Contato: r.Contato, Telefone: r.Telefone}
}

type AtualizarAssessoriaRequest struct {
	Descricao Optional[string] `json:"descricao"`
	Contato   Optional[string] `json:"contato"`
	Telefone  Optional[string] `json:"telefone"`
}

func (r AtualizarAssessoriaRequest) Aplicar(m *model.Assessoria) error {
	if r.Descricao.Has() {
		m.Descricao = *r.Descricao.Value
	}
	if r.Contato.Defined {
		m.Contato = r.Contato.Value
	}
	if r.Telefone.Defined {
		m.Telefone = r.Telefone.Value
	}
	return nil
}

type AssessoriaResponse struct {
	ID               uint    `json:"id"`
	Descricao        string  `json:"descricao"`
	Contato          *string `json:"contato"`
	Telefone         *string `json:"telefone"`
	IDUsuarioCriador uint    `json:"id_usuario_criador"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

func NovaAssessoriaResponse(m *model.Assessoria) AssessoriaResponse {
	return AssessoriaResponse{
		ID:               m.ID,
		Descricao:        m.Descricao,
		Contato:          m.Contato,
		Telefone:         m.Telefone,
		IDUsuarioCriador: m.IDUsuarioCriador,
		CreatedAt:        ts(m.CreatedAt),
		UpdatedAt:        ts(m.UpdatedAt),
	}
}

// ─── Buffet ──────────────────────────────────────────────────────────────────

type CriarBuffetRequest struct {
	Descricao string  `json:"descricao" validate:"required,min=2,max=255"`
	Contato   *string `json:"contato"`
	Telefone  *string `json:"telefone"`
}

func (r CriarBuffetRequest) ToModel() *model.Buffet {
	return &model.Buffet{Descricao: r.Descricao, Contato: r.Contato, Telefone: r.Telefone}
}

type AtualizarBuffetRequest struct {
	Descricao Optional[string] `json:"descricao"`
	Contato   Optional[string] `json:"contato"`
	Telefone  Optional[string] `json:"telefone"`
}

func (r AtualizarBuffetRequest) Aplicar(m *model.Buffet) error {
	if r.Descricao.Has() {
		m.Descricao = *r.Descricao.Value
	}
	if r.Contato.Defined {
		m.Contato = r.Contato.Value
	}
	if r.Telefone.Defined {
		m.Telefone = r.Telefone.Value
	}
	return nil
}

type BuffetResponse struct {
	ID               uint    `json:"id"`
	Descricao        string  `json:"descricao"`
	Contato          *string `json:"contato"`
	Telefone         *string `json:"telefone"`
	IDUsuarioCriador uint    `json:"id_usuario_criador"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

func NovoBuffetResponse(m *model.Buffet) BuffetResponse {
	return BuffetResponse{
		ID:               m.ID,
		Descricao:        m.Descricao,
		Contato:          m.Contato,
		Telefone:         m.Telefone,
		IDUsuarioCriador: m.IDUsuarioCriador,
		CreatedAt:        ts(m.CreatedAt),
		UpdatedAt:        ts(m.UpdatedAt),
	}
}

// ─── Cidade ──────────────────────────────────────────────────────────────────

type CriarCidadeRequest struct {
	Nome   string `json:"nome"   validate:"required,min=2,max=255"`
	Estado string `json:"estado" validate:"required,len=2"`
}

func (r CriarCidadeRequest) ToModel() *model.Cidade {
	return &model.Cidade{Nome: r.Nome, Estado: r.Estado}
}

type AtualizarCidadeRequest struct {
	Nome   Optional[string] `json:"nome"`
	Estado Optional[string] `json:"estado"`
}

func (r AtualizarCidadeRequest) Aplicar(m *model.Cidade) error {
	if r.Nome.Has() {
		m.Nome = *r.Nome.Value
	}
	if r.Estado.Has() {
		if len(*r.Estado.Value) != 2 {
			return errors.New("estado deve ter 2 caracteres")
		}
		m.Estado = *r.Estado.Value
	}
	return nil
}

type CidadeResponse struct {
	ID               uint   `json:"id"`
	Nome             string `json:"nome"`
	Estado           string `json:"estado"`
	IDUsuarioCriador uint   `json:"id_usuario_criador"`
	CreatedAt        string `json:"created_at"`
	UpdatedAt        string `json:"updated_at"`
}

func NovaCidadeResponse(m *model.Cidade) CidadeResponse {
	return CidadeResponse{
		ID:               m.ID,
		Nome:             m.Nome,
		Estado:           m.Estado,
		IDUsuarioCriador: m.IDUsuarioCriador,
		CreatedAt:        ts(m.CreatedAt),
		UpdatedAt:        ts(m.UpdatedAt),
	}
}

// ─── Cliente ─────────────────────────────────────────────────────────────────

type CriarClienteRequest struct {
	Nome             string  `json:"nome"              validate:"required,min=2,max=255"`
	ContatoPrincipal *string `json:"contato_principal"`
	Telefone         *string `json:"telefone"`
	Email            *string `json:"email"             validate:"omitempty,email"`
}

func (r CriarClienteRequest) ToModel() *model.Cliente {
	return &model.Cliente{
		Nome:             r.Nome,
		ContatoPrincipal: r.ContatoPrincipal,
		Telefone:         r.Telefone,
		Email:            r.Email,
	}
}

type AtualizarClienteRequest struct {
	Nome             Optional[string] `json:"nome"`
	ContatoPrincipal Optional[string] `json:"contato_principal"`
	Telefone         Optional[string] `json:"telefone"`
	Email            Optional[string] `json:"email"`
}

func (r AtualizarClienteRequest) Aplicar(m *model.Cliente) error {
	if r.Nome.Has() {
		m.Nome = *r.Nome.Value
	}
	if r.ContatoPrincipal.Defined {
		m.ContatoPrincipal = r.ContatoPrincipal.Value
	}
	if r.Telefone.Defined {
		m.Telefone = r.Telefone.Value
	}
	if r.Email.Defined {
		m.Email = r.Email.Value
	}
	return nil
}

type ClienteResponse struct {
	ID               uint    `json:"id"`
	Nome             string  `json:"nome"`
	ContatoPrincipal *string `json:"contato_principal"`
	Telefone         *string `json:"telefone"`
	Email            *string `json:"email"`
	IDUsuarioCriador uint    `json:"id_usuario_criador"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

func NovoClienteResponse(m *model.Cliente) ClienteResponse {
	return ClienteResponse{
		ID:               m.ID,
		Nome:             m.Nome,
		ContatoPrincipal: m.ContatoPrincipal,
		Telefone:         m.Telefone,
		Email:            m.Email,
		IDUsuarioCriador: m.IDUsuarioCriador,
		CreatedAt:        ts(m.CreatedAt),
		UpdatedAt:        ts(m.UpdatedAt),
	}
}

// ─── Insumo ──────────────────────────────────────────────────────────────────

type CriarInsumoRequest struct {
	Descricao     string           `json:"descricao"      validate:"required,min=2,max=255"`
	TipoInsumo    *string          `json:"tipo_insumo"`
	UnidadeMedida string           `json:"unidade_medida" validate:"required,oneof=KG Unidade Litro"`
	VlrReferencia *decimal.Decimal `json:"vlr_referencia"`
}

func (r CriarInsumoRequest) ToModel() *model.Insumo {
	return &model.Insumo{
		Descricao:     r.Descricao,
		TipoInsumo:    r.TipoInsumo,
		UnidadeMedida: model.UnidadeMedida(r.UnidadeMedida),
		VlrReferencia: r.VlrReferencia,
	}
}

type AtualizarInsumoRequest struct {
	Descricao     Optional[string]          `json:"descricao"`
	TipoInsumo    Optional[string]          `json:"tipo_insumo"`
	UnidadeMedida Optional[string]          `json:"unidade_medida"`
	VlrReferencia Optional[decimal.Decimal] `json:"vlr_referencia"`
}

func (r AtualizarInsumoRequest) Aplicar(m *model.Insumo) error {
	if r.Descricao.Has() {
		m.Descricao = *r.Descricao.Value
	}
	if r.TipoInsumo.Defined {
		m.TipoInsumo = r.TipoInsumo.Value
	}
	if r.UnidadeMedida.Has() {
		u := model.UnidadeMedida(*r.UnidadeMedida.Value)
		if !u.Valida() {
			return errors.New("unidade_medida inválida")
		}
		m.UnidadeMedida = u
	}
	if r.VlrReferencia.Defined {
		m.VlrReferencia = r.VlrReferencia.Value
	}
	return nil
}

type InsumoResponse struct {
	ID               uint             `json:"id"`
	Descricao        string           `json:"descricao"`
	TipoInsumo       *string          `json:"tipo_insumo"`
	UnidadeMedida    string           `json:"unidade_medida"`
	VlrReferencia    *decimal.Decimal `json:"vlr_referencia"`
	IDUsuarioCriador uint             `json:"id_usuario_criador"`
	CreatedAt        string           `json:"created_at"`
	UpdatedAt        string           `json:"updated_at"`
}

func NovoInsumoResponse(m *model.Insumo) InsumoResponse {
	return InsumoResponse{
		ID:               m.ID,
		Descricao:        m.Descricao,
		TipoInsumo:       m.TipoInsumo,
		UnidadeMedida:    string(m.UnidadeMedida),
		VlrReferencia:    m.VlrReferencia,
		IDUsuarioCriador: m.IDUsuarioCriador,
		CreatedAt:        ts(m.CreatedAt),
		UpdatedAt:        ts(m.UpdatedAt),
	}
}

// ─── LocalEvento ─────────────────────────────────────────────────────────────

type CriarLocalEventoRequest struct {
	Descricao        string  `json:"descricao" validate:"required,min=2,max=255"`
	Endereco         *string `json:"endereco"`
	CapacidadeMaxima *int    `json:"capacidade_maxima" validate:"omitempty,min=0"`
}

func (r CriarLocalEventoRequest) ToModel() *model.LocalEvento {
	return &model.LocalEvento{
		Descricao:        r.Descricao,
		Endereco:         r.Endereco,
		CapacidadeMaxima: r.CapacidadeMaxima,
	}
}

type AtualizarLocalEventoRequest struct {
	Descricao        Optional[string] `json:"descricao"`
	Endereco         Optional[string] `json:"endereco"`
	CapacidadeMaxima Optional[int]    `json:"capacidade_maxima"`
}

func (r AtualizarLocalEventoRequest) Aplicar(m *model.LocalEvento) error {
	if r.Descricao.Has() {
		m.Descricao = *r.Descricao.Value
	}
	if r.Endereco.Defined {
		m.Endereco = r.Endereco.Value
	}
	if r.CapacidadeMaxima.Defined {
		if r.CapacidadeMaxima.Value != nil && *r.CapacidadeMaxima.Value < 0 {
			return errors.New("capacidade_maxima deve ser positiva")
		}
		m.CapacidadeMaxima = r.CapacidadeMaxima.Value
	}
	return nil
}

type LocalEventoResponse struct {
	ID               uint    `json:"id"`
	Descricao        string  `json:"descricao"`
	Endereco         *string `json:"endereco"`
	CapacidadeMaxima *int    `json:"capacidade_maxima"`
	IDUsuarioCriador uint    `json:"id_usuario_criador"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

func NovoLocalEventoResponse(m *model.LocalEvento) LocalEventoResponse {
	return LocalEventoResponse{
		ID:               m.ID,
		Descricao:        m.Descricao,
		Endereco:         m.Endereco,
		CapacidadeMaxima: m.CapacidadeMaxima,
		IDUsuarioCriador: m.IDUsuarioCriador,
		CreatedAt:        ts(m.CreatedAt),
		UpdatedAt:        ts(m.UpdatedAt),
	}
}

// ─── TipoEvento ──────────────────────────────────────────────────────────────

type CriarTipoEventoRequest struct {
	Descricao string `json:"descricao" validate:"required,min=2,max=255"`
}

func (r CriarTipoEventoRequest) ToModel() *model.TipoEvento {
	return &model.TipoEvento{Descricao: r.Descricao}
}

type AtualizarTipoEventoRequest struct {
	Descricao Optional[string] `json:"descricao"`
}

func (r AtualizarTipoEventoRequest) Aplicar(m *model.TipoEvento) error {
	if r.Descricao.Has() {
		m.Descricao = *r.Descricao.Value
	}
	return nil
}

type TipoEventoResponse struct {
	ID               uint   `json:"id"`
	Descricao        string `json:"descricao"`
	IDUsuarioCriador uint   `json:"id_usuario_criador"`
	CreatedAt        string `json:"created_at"`
	UpdatedAt        string `json:"updated_at"`
}

func NovoTipoEventoResponse(m *model.TipoEvento) TipoEventoResponse {
	return TipoEventoResponse{
		ID:               m.ID,
		Descricao:        m.Descricao,
		IDUsuarioCriador: m.IDUsuarioCriador,
		CreatedAt:        ts(m.CreatedAt),
		UpdatedAt:        ts(m.UpdatedAt),
	}
}
