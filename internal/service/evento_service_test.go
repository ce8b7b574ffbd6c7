package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rodrigomoreli/brumas2/internal/apierror"
	"github.com/rodrigomoreli/brumas2/internal/dto"
	"github.com/rodrigomoreli/brumas2/internal/model"
)

type eventoFixture struct {
	repo *stubEventoRepo
	refs *stubReferenciaRepo
	svc  EventoService
}

// newEventoFixture seeds one valid row in every dimension (id 1) so requests
// referencing id 1 pass validation and anything else fails it.
func newEventoFixture() *eventoFixture {
	repo := newStubEventoRepo()
	refs := newStubReferenciaRepo()
	refs.clientes[1] = true
	refs.locais[1] = true
	refs.tipos[1] = true
	refs.cidades[1] = true
	refs.assessorias[1] = true
	refs.buffets[1] = true
	refs.insumos[1] = true
	return &eventoFixture{repo: repo, refs: refs, svc: NewEventoService(repo, refs)}
}

func (f *eventoFixture) seedEvento(t *testing.T, criador uint) *model.Evento {
	t.Helper()
	e := &model.Evento{
		DataEvento:    dia("2026-10-20"),
		StatusEvento:  model.StatusEventoOrcamento,
		IDCliente:     1,
		IDLocalEvento: 1,
	}
	e.DefinirCriador(criador)
	assert.NoError(t, f.repo.Create(context.Background(), e))
	return e
}

func (f *eventoFixture) seedDespesa(t *testing.T, eventoID, criador uint) *model.Despesa {
	t.Helper()
	d := &model.Despesa{
		Quantidade:      dec("2"),
		VlrUnitarioPago: dec("10.00"),
		VlrTotalPago:    dec("20.00"),
		DataDespesa:     dia("2026-10-01"),
		IDEvento:        eventoID,
		IDInsumo:        1,
	}
	d.DefinirCriador(criador)
	assert.NoError(t, f.repo.CreateDespesa(context.Background(), d))
	return d
}

func (f *eventoFixture) seedDegustacao(t *testing.T, eventoID, criador uint) *model.Degustacao {
	t.Helper()
	g := &model.Degustacao{
		DataDegustacao: dia("2026-09-15"),
		Status:         model.StatusDegustacaoAgendada,
		IDEvento:       eventoID,
	}
	g.DefinirCriador(criador)
	assert.NoError(t, f.repo.CreateDegustacao(context.Background(), g))
	return g
}

// ── Criar ────────────────────────────────────────────────────────────────────

func TestCriarEvento_DefineCriadorEStatusPadrao(t *testing.T) {
	f := newEventoFixture()
	op := operacional(7)

	resp, err := f.svc.Criar(context.Background(), dto.CriarEventoRequest{
		IDCliente: 1, IDLocalEvento: 1, DataEvento: "2026-11-05",
	}, op)

	assert.NoError(t, err)
	assert.Equal(t, uint(7), resp.IDUsuarioCriador)
	assert.Equal(t, "Orçamento", resp.StatusEvento)
	assert.Equal(t, "2026-11-05", resp.DataEvento)
}

func TestCriarEvento_ClienteInexistente(t *testing.T) {
	f := newEventoFixture()

	_, err := f.svc.Criar(context.Background(), dto.CriarEventoRequest{
		IDCliente: 42, IDLocalEvento: 1, DataEvento: "2026-11-05",
	}, operacional(7))

	assert.EqualError(t, err, "Cliente com id 42 não encontrado.")
	assert.True(t, apierror.IsKind(err, apierror.KindNotFound))
	assert.Empty(t, f.repo.eventos, "nothing may be written when a reference fails")
}

func TestCriarEvento_ReferenciaOpcionalInvalida(t *testing.T) {
	f := newEventoFixture()
	buffet := uint(9)

	_, err := f.svc.Criar(context.Background(), dto.CriarEventoRequest{
		IDCliente: 1, IDLocalEvento: 1, DataEvento: "2026-11-05", IDBuffet: &buffet,
	}, operacional(7))

	assert.EqualError(t, err, "Buffet com id 9 não encontrado.")
	assert.Empty(t, f.repo.eventos)
}

// ── Obter ────────────────────────────────────────────────────────────────────

func TestObterEvento_DonoVe(t *testing.T) {
	f := newEventoFixture()
	e := f.seedEvento(t, 7)

	resp, err := f.svc.Obter(context.Background(), e.ID, operacional(7))
	assert.NoError(t, err)
	assert.Equal(t, e.ID, resp.ID)
}

func TestObterEvento_OutroOperacionalNaoVe(t *testing.T) {
	f := newEventoFixture()
	e := f.seedEvento(t, 7)

	_, err := f.svc.Obter(context.Background(), e.ID, operacional(8))
	assert.EqualError(t, err, "Você não tem permissão para ver este evento")
	assert.True(t, apierror.IsKind(err, apierror.KindForbidden))
}

func TestObterEvento_AdminVeTudo(t *testing.T) {
	f := newEventoFixture()
	e := f.seedEvento(t, 7)

	_, err := f.svc.Obter(context.Background(), e.ID, admin())
	assert.NoError(t, err)
}

func TestObterEvento_Inexistente(t *testing.T) {
	f := newEventoFixture()

	_, err := f.svc.Obter(context.Background(), 99, admin())
	assert.EqualError(t, err, "Evento não encontrado")
}

// ── Listar ───────────────────────────────────────────────────────────────────

func TestListarEventos_EscopoOperacional(t *testing.T) {
	f := newEventoFixture()
	f.seedEvento(t, 7)
	f.seedEvento(t, 7)
	f.seedEvento(t, 8)

	pagina, err := f.svc.Listar(context.Background(), dto.EventoFilter{Page: 1, PageSize: 20}, operacional(7))
	assert.NoError(t, err)
	assert.EqualValues(t, 2, pagina.Total)
	assert.Len(t, pagina.Items, 2)
	for _, item := range pagina.Items {
		assert.Equal(t, uint(7), item.IDUsuarioCriador)
	}
}

func TestListarEventos_AdminVeTudo(t *testing.T) {
	f := newEventoFixture()
	f.seedEvento(t, 7)
	f.seedEvento(t, 8)

	pagina, err := f.svc.Listar(context.Background(), dto.EventoFilter{Page: 1, PageSize: 20}, admin())
	assert.NoError(t, err)
	assert.EqualValues(t, 2, pagina.Total)
}

func TestListarEventos_Paginacao(t *testing.T) {
	f := newEventoFixture()
	for i := 0; i < 5; i++ {
		f.seedEvento(t, 7)
	}

	pagina, err := f.svc.Listar(context.Background(), dto.EventoFilter{Page: 2, PageSize: 2}, admin())
	assert.NoError(t, err)
	assert.EqualValues(t, 5, pagina.Total)
	assert.Len(t, pagina.Items, 2)
	assert.Equal(t, 3, pagina.TotalPages)
	assert.True(t, pagina.HasNext)
	assert.True(t, pagina.HasPrevious)
}

// ── Atualizar ────────────────────────────────────────────────────────────────

func TestAtualizarEvento_Inexistente(t *testing.T) {
	f := newEventoFixture()

	_, err := f.svc.Atualizar(context.Background(), 9, dto.AtualizarEventoRequest{}, admin())
	assert.EqualError(t, err, "Evento com id 9 não encontrado.")
}

func TestAtualizarEvento_OutroOperacionalNaoModifica(t *testing.T) {
	f := newEventoFixture()
	e := f.seedEvento(t, 7)

	_, err := f.svc.Atualizar(context.Background(), e.ID, dto.AtualizarEventoRequest{
		StatusEvento: dto.OptionalOf("Confirmado"),
	}, operacional(8))

	assert.EqualError(t, err, "Você não tem permissão para modificar este evento")
	assert.Equal(t, model.StatusEventoOrcamento, f.repo.eventos[e.ID].StatusEvento)
}

func TestAtualizarEvento_ReferenciaInvalidaNaoAplicaNada(t *testing.T) {
	f := newEventoFixture()
	e := f.seedEvento(t, 7)

	_, err := f.svc.Atualizar(context.Background(), e.ID, dto.AtualizarEventoRequest{
		StatusEvento: dto.OptionalOf("Confirmado"),
		IDCliente:    dto.OptionalOf(uint(404)),
	}, operacional(7))

	assert.EqualError(t, err, "Cliente com id 404 não encontrado.")
	assert.Equal(t, model.StatusEventoOrcamento, f.repo.eventos[e.ID].StatusEvento,
		"a rejected patch must leave the row untouched")
}

func TestAtualizarEvento_NullLimpaCampoOpcional(t *testing.T) {
	f := newEventoFixture()
	e := f.seedEvento(t, 7)
	tipo := uint(1)
	e.IDTipoEvento = &tipo

	resp, err := f.svc.Atualizar(context.Background(), e.ID, dto.AtualizarEventoRequest{
		IDTipoEvento: dto.OptionalNull[uint](),
	}, operacional(7))

	assert.NoError(t, err)
	assert.Nil(t, resp.IDTipoEvento)
}

func TestAtualizarEvento_CriadorNuncaMuda(t *testing.T) {
	f := newEventoFixture()
	e := f.seedEvento(t, 7)

	_, err := f.svc.Atualizar(context.Background(), e.ID, dto.AtualizarEventoRequest{
		StatusEvento: dto.OptionalOf("Realizado"),
	}, admin())

	assert.NoError(t, err)
	assert.Equal(t, uint(7), f.repo.eventos[e.ID].IDUsuarioCriador)
}

// ── Deletar ──────────────────────────────────────────────────────────────────

func TestDeletarEvento_RemoveFilhos(t *testing.T) {
	f := newEventoFixture()
	e := f.seedEvento(t, 7)
	f.seedDespesa(t, e.ID, 7)
	f.seedDegustacao(t, e.ID, 7)
	outro := f.seedEvento(t, 7)
	f.seedDespesa(t, outro.ID, 7)

	err := f.svc.Deletar(context.Background(), e.ID, operacional(7))
	assert.NoError(t, err)
	assert.NotContains(t, f.repo.eventos, e.ID)
	assert.Len(t, f.repo.despesas, 1, "children of other events must survive")
	assert.Empty(t, f.repo.degustacoes)
}

func TestDeletarEvento_SemPermissao(t *testing.T) {
	f := newEventoFixture()
	e := f.seedEvento(t, 7)

	err := f.svc.Deletar(context.Background(), e.ID, operacional(8))
	assert.EqualError(t, err, "Você não tem permissão para deletar este evento")
	assert.Contains(t, f.repo.eventos, e.ID)
}

// ── Despesas ─────────────────────────────────────────────────────────────────

func TestAdicionarDespesa_HerdaEventoEStampaCriador(t *testing.T) {
	f := newEventoFixture()
	e := f.seedEvento(t, 7)

	resp, err := f.svc.AdicionarDespesa(context.Background(), e.ID, dto.CriarDespesaRequest{
		IDInsumo: 1, Quantidade: decPtr("3"), VlrUnitarioPago: decPtr("5.50"),
		VlrTotalPago: decPtr("16.50"), DataDespesa: "2026-10-01",
	}, admin())

	assert.NoError(t, err)
	assert.Equal(t, e.ID, resp.IDEvento)
	assert.Equal(t, uint(1), resp.IDUsuarioCriador, "the line belongs to whoever added it")
}

func TestAdicionarDespesa_EventoDeOutro(t *testing.T) {
	f := newEventoFixture()
	e := f.seedEvento(t, 7)

	_, err := f.svc.AdicionarDespesa(context.Background(), e.ID, dto.CriarDespesaRequest{
		IDInsumo: 1, Quantidade: decPtr("1"), VlrUnitarioPago: decPtr("1"),
		VlrTotalPago: decPtr("1"), DataDespesa: "2026-10-01",
	}, operacional(8))

	assert.EqualError(t, err, "Você não tem permissão para modificar este evento")
	assert.Empty(t, f.repo.despesas)
}

func TestAdicionarDespesa_InsumoInexistente(t *testing.T) {
	f := newEventoFixture()
	e := f.seedEvento(t, 7)

	_, err := f.svc.AdicionarDespesa(context.Background(), e.ID, dto.CriarDespesaRequest{
		IDInsumo: 99, Quantidade: decPtr("1"), VlrUnitarioPago: decPtr("1"),
		VlrTotalPago: decPtr("1"), DataDespesa: "2026-10-01",
	}, operacional(7))

	assert.EqualError(t, err, "Insumo com id 99 não encontrado.")
	assert.Empty(t, f.repo.despesas)
}

func TestAtualizarDespesa_ForaDoEvento(t *testing.T) {
	f := newEventoFixture()
	a := f.seedEvento(t, 7)
	b := f.seedEvento(t, 7)
	d := f.seedDespesa(t, a.ID, 7)

	_, err := f.svc.AtualizarDespesa(context.Background(), b.ID, d.ID, dto.AtualizarDespesaRequest{
		Quantidade: dto.OptionalOf(dec("9")),
	}, operacional(7))

	assert.EqualError(t, err, "Despesa com id 1 não encontrada neste evento.")
}

func TestAtualizarDespesa_CriadorDaLinhaProtege(t *testing.T) {
	// The event belongs to user 7, the line was added by the admin. User 7
	// may modify the event but not someone else's line.
	f := newEventoFixture()
	e := f.seedEvento(t, 7)
	d := f.seedDespesa(t, e.ID, 1)

	_, err := f.svc.AtualizarDespesa(context.Background(), e.ID, d.ID, dto.AtualizarDespesaRequest{
		Quantidade: dto.OptionalOf(dec("9")),
	}, operacional(7))

	assert.EqualError(t, err, "Você não tem permissão para modificar esta despesa")
	assert.True(t, f.repo.despesas[d.ID].Quantidade.Equal(dec("2")))
}

func TestAtualizarDespesa_AdminModificaQualquerLinha(t *testing.T) {
	f := newEventoFixture()
	e := f.seedEvento(t, 7)
	d := f.seedDespesa(t, e.ID, 7)

	resp, err := f.svc.AtualizarDespesa(context.Background(), e.ID, d.ID, dto.AtualizarDespesaRequest{
		Quantidade: dto.OptionalOf(dec("9")),
	}, admin())

	assert.NoError(t, err)
	assert.True(t, resp.Quantidade.Equal(dec("9")))
}

func TestRemoverDespesa(t *testing.T) {
	f := newEventoFixture()
	e := f.seedEvento(t, 7)
	d := f.seedDespesa(t, e.ID, 7)

	assert.NoError(t, f.svc.RemoverDespesa(context.Background(), e.ID, d.ID, operacional(7)))
	assert.Empty(t, f.repo.despesas)
}

func TestListarDespesas_ExigeAcessoAoEvento(t *testing.T) {
	f := newEventoFixture()
	e := f.seedEvento(t, 7)
	f.seedDespesa(t, e.ID, 7)

	_, err := f.svc.ListarDespesas(context.Background(), e.ID, operacional(8))
	assert.EqualError(t, err, "Você não tem permissão para ver este evento")

	despesas, err := f.svc.ListarDespesas(context.Background(), e.ID, operacional(7))
	assert.NoError(t, err)
	assert.Len(t, despesas, 1)
}

// ── Degustações ──────────────────────────────────────────────────────────────

func TestAdicionarDegustacao_StatusPadrao(t *testing.T) {
	f := newEventoFixture()
	e := f.seedEvento(t, 7)

	resp, err := f.svc.AdicionarDegustacao(context.Background(), e.ID, dto.CriarDegustacaoRequest{
		DataDegustacao: "2026-09-15",
	}, operacional(7))

	assert.NoError(t, err)
	assert.Equal(t, "Agendada", resp.Status)
	assert.Equal(t, e.ID, resp.IDEvento)
}

func TestAtualizarDegustacao_ForaDoEvento(t *testing.T) {
	f := newEventoFixture()
	a := f.seedEvento(t, 7)
	b := f.seedEvento(t, 7)
	g := f.seedDegustacao(t, a.ID, 7)

	_, err := f.svc.AtualizarDegustacao(context.Background(), b.ID, g.ID, dto.AtualizarDegustacaoRequest{
		Status: dto.OptionalOf("Realizada"),
	}, operacional(7))

	assert.EqualError(t, err, "Degustação com id 1 não encontrada neste evento.")
}

func TestAtualizarDegustacao_CriadorDaLinhaProtege(t *testing.T) {
	f := newEventoFixture()
	e := f.seedEvento(t, 7)
	g := f.seedDegustacao(t, e.ID, 1)

	_, err := f.svc.AtualizarDegustacao(context.Background(), e.ID, g.ID, dto.AtualizarDegustacaoRequest{
		Status: dto.OptionalOf("Realizada"),
	}, operacional(7))

	assert.EqualError(t, err, "Você não tem permissão para modificar esta degustação")
}

func TestRemoverDegustacao_EventoInexistente(t *testing.T) {
	f := newEventoFixture()

	err := f.svc.RemoverDegustacao(context.Background(), 55, 1, admin())
	assert.EqualError(t, err, "Evento com id 55 não encontrado.")
}
