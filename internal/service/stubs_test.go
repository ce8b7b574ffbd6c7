package service

// In-memory repository stubs shared by the service tests. Each stub keeps
// rows in a map, hands out sequential ids and mimics just enough database
// behaviour (not-found, duplicate key, FK in use) for the rules under test.

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rodrigomoreli/brumas2/internal/dto"
	"github.com/rodrigomoreli/brumas2/internal/model"
	"github.com/rodrigomoreli/brumas2/internal/repository"
)

// ── Usuários ─────────────────────────────────────────────────────────────────

type stubUsuarioRepo struct {
	seq   uint
	users map[uint]*model.Usuario
	emUso bool // when set, DeleteComCascata fails as if an FK blocked it
}

var _ repository.UsuarioRepository = (*stubUsuarioRepo)(nil)

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{users: make(map[uint]*model.Usuario)}
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	for _, e := range r.users {
		if e.Username == u.Username || strings.EqualFold(e.Email, u.Email) {
			return repository.ErrDuplicado
		}
	}
	r.seq++
	u.ID = r.seq
	r.users[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uint) (*model.Usuario, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

func (r *stubUsuarioRepo) FindByLogin(_ context.Context, login string) (*model.Usuario, error) {
	for _, u := range r.users {
		if u.Username == login || strings.EqualFold(u.Email, login) {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *stubUsuarioRepo) FindByUsername(_ context.Context, username string) (*model.Usuario, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *stubUsuarioRepo) FindByEmail(_ context.Context, email string) (*model.Usuario, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *stubUsuarioRepo) List(_ context.Context, skip, limit int) ([]model.Usuario, error) {
	ids := make([]uint, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var out []model.Usuario
	for i, id := range ids {
		if i < skip {
			continue
		}
		if len(out) >= limit {
			break
		}
		out = append(out, *r.users[id])
	}
	return out, nil
}

func (r *stubUsuarioRepo) Save(_ context.Context, u *model.Usuario) error {
	for id, e := range r.users {
		if id == u.ID {
			continue
		}
		if e.Username == u.Username || strings.EqualFold(e.Email, u.Email) {
			return repository.ErrDuplicado
		}
	}
	r.users[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) DeleteComCascata(_ context.Context, u *model.Usuario) error {
	if r.emUso {
		return repository.ErrReferenciado
	}
	delete(r.users, u.ID)
	return nil
}

// ── Dimensões ────────────────────────────────────────────────────────────────

// stubAssessoriaRepo backs the generic dimension service tests; one concrete
// instantiation is enough since the service logic is type-independent.
type stubAssessoriaRepo struct {
	seq   uint
	itens map[uint]*model.Assessoria
	emUso map[uint]bool // ids referenced by an event
}

var _ repository.Dimensao[model.Assessoria] = (*stubAssessoriaRepo)(nil)

func newStubAssessoriaRepo() *stubAssessoriaRepo {
	return &stubAssessoriaRepo{
		itens: make(map[uint]*model.Assessoria),
		emUso: make(map[uint]bool),
	}
}

func (r *stubAssessoriaRepo) Create(_ context.Context, m *model.Assessoria) error {
	r.seq++
	m.ID = r.seq
	r.itens[m.ID] = m
	return nil
}

func (r *stubAssessoriaRepo) FindByID(_ context.Context, id uint) (*model.Assessoria, error) {
	m, ok := r.itens[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return m, nil
}

func (r *stubAssessoriaRepo) List(_ context.Context, skip, limit int) ([]model.Assessoria, error) {
	ids := make([]uint, 0, len(r.itens))
	for id := range r.itens {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var out []model.Assessoria
	for i, id := range ids {
		if i < skip {
			continue
		}
		if len(out) >= limit {
			break
		}
		out = append(out, *r.itens[id])
	}
	return out, nil
}

func (r *stubAssessoriaRepo) Save(_ context.Context, m *model.Assessoria) error {
	r.itens[m.ID] = m
	return nil
}

func (r *stubAssessoriaRepo) Delete(_ context.Context, m *model.Assessoria) error {
	if r.emUso[m.ID] {
		return repository.ErrReferenciado
	}
	delete(r.itens, m.ID)
	return nil
}

// ── Referências ──────────────────────────────────────────────────────────────

type stubReferenciaRepo struct {
	clientes    map[uint]bool
	locais      map[uint]bool
	tipos       map[uint]bool
	cidades     map[uint]bool
	assessorias map[uint]bool
	buffets     map[uint]bool
	insumos     map[uint]bool
}

var _ repository.ReferenciaRepository = (*stubReferenciaRepo)(nil)

func newStubReferenciaRepo() *stubReferenciaRepo {
	return &stubReferenciaRepo{
		clientes:    make(map[uint]bool),
		locais:      make(map[uint]bool),
		tipos:       make(map[uint]bool),
		cidades:     make(map[uint]bool),
		assessorias: make(map[uint]bool),
		buffets:     make(map[uint]bool),
		insumos:     make(map[uint]bool),
	}
}

func (r *stubReferenciaRepo) ClienteExiste(_ context.Context, id uint) (bool, error) {
	return r.clientes[id], nil
}

func (r *stubReferenciaRepo) LocalEventoExiste(_ context.Context, id uint) (bool, error) {
	return r.locais[id], nil
}

func (r *stubReferenciaRepo) TipoEventoExiste(_ context.Context, id uint) (bool, error) {
	return r.tipos[id], nil
}

func (r *stubReferenciaRepo) CidadeExiste(_ context.Context, id uint) (bool, error) {
	return r.cidades[id], nil
}

func (r *stubReferenciaRepo) AssessoriaExiste(_ context.Context, id uint) (bool, error) {
	return r.assessorias[id], nil
}

func (r *stubReferenciaRepo) BuffetExiste(_ context.Context, id uint) (bool, error) {
	return r.buffets[id], nil
}

func (r *stubReferenciaRepo) InsumoExiste(_ context.Context, id uint) (bool, error) {
	return r.insumos[id], nil
}

// ── Eventos ──────────────────────────────────────────────────────────────────

type stubEventoRepo struct {
	seqEvento     uint
	seqDespesa    uint
	seqDegustacao uint
	eventos       map[uint]*model.Evento
	despesas      map[uint]*model.Despesa
	degustacoes   map[uint]*model.Degustacao
}

var _ repository.EventoRepository = (*stubEventoRepo)(nil)

func newStubEventoRepo() *stubEventoRepo {
	return &stubEventoRepo{
		eventos:     make(map[uint]*model.Evento),
		despesas:    make(map[uint]*model.Despesa),
		degustacoes: make(map[uint]*model.Degustacao),
	}
}

func (r *stubEventoRepo) Create(_ context.Context, e *model.Evento) error {
	r.seqEvento++
	e.ID = r.seqEvento
	r.eventos[e.ID] = e
	return nil
}

func (r *stubEventoRepo) FindByID(_ context.Context, id uint) (*model.Evento, error) {
	e, ok := r.eventos[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return e, nil
}

func (r *stubEventoRepo) FindComFilhos(ctx context.Context, id uint) (*model.Evento, error) {
	return r.FindByID(ctx, id)
}

func (r *stubEventoRepo) FindDetalhe(ctx context.Context, id uint) (*model.Evento, error) {
	return r.FindByID(ctx, id)
}

func (r *stubEventoRepo) List(_ context.Context, criadorID *uint, f dto.EventoFilter) ([]model.Evento, int64, error) {
	ids := make([]uint, 0, len(r.eventos))
	for id := range r.eventos {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var escopo []model.Evento
	for _, id := range ids {
		e := r.eventos[id]
		if criadorID != nil && e.IDUsuarioCriador != *criadorID {
			continue
		}
		if f.StatusEvento != "" && string(e.StatusEvento) != f.StatusEvento {
			continue
		}
		if f.IDCliente != nil && e.IDCliente != *f.IDCliente {
			continue
		}
		escopo = append(escopo, *e)
	}

	total := int64(len(escopo))
	inicio := (f.Page - 1) * f.PageSize
	if inicio > len(escopo) {
		inicio = len(escopo)
	}
	fim := inicio + f.PageSize
	if fim > len(escopo) {
		fim = len(escopo)
	}
	return escopo[inicio:fim], total, nil
}

func (r *stubEventoRepo) Save(_ context.Context, e *model.Evento) error {
	r.eventos[e.ID] = e
	return nil
}

func (r *stubEventoRepo) DeleteComCascata(_ context.Context, e *model.Evento) error {
	for id, d := range r.despesas {
		if d.IDEvento == e.ID {
			delete(r.despesas, id)
		}
	}
	for id, g := range r.degustacoes {
		if g.IDEvento == e.ID {
			delete(r.degustacoes, id)
		}
	}
	delete(r.eventos, e.ID)
	return nil
}

func (r *stubEventoRepo) CreateDespesa(_ context.Context, d *model.Despesa) error {
	r.seqDespesa++
	d.ID = r.seqDespesa
	r.despesas[d.ID] = d
	return nil
}

func (r *stubEventoRepo) FindDespesa(_ context.Context, eventoID, despesaID uint) (*model.Despesa, error) {
	d, ok := r.despesas[despesaID]
	if !ok || d.IDEvento != eventoID {
		return nil, repository.ErrNotFound
	}
	return d, nil
}

func (r *stubEventoRepo) ListDespesas(_ context.Context, eventoID uint) ([]model.Despesa, error) {
	ids := make([]uint, 0, len(r.despesas))
	for id, d := range r.despesas {
		if d.IDEvento == eventoID {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]model.Despesa, 0, len(ids))
	for _, id := range ids {
		out = append(out, *r.despesas[id])
	}
	return out, nil
}

func (r *stubEventoRepo) SaveDespesa(_ context.Context, d *model.Despesa) error {
	r.despesas[d.ID] = d
	return nil
}

func (r *stubEventoRepo) DeleteDespesa(_ context.Context, d *model.Despesa) error {
	delete(r.despesas, d.ID)
	return nil
}

func (r *stubEventoRepo) CreateDegustacao(_ context.Context, g *model.Degustacao) error {
	r.seqDegustacao++
	g.ID = r.seqDegustacao
	r.degustacoes[g.ID] = g
	return nil
}

func (r *stubEventoRepo) FindDegustacao(_ context.Context, eventoID, degustacaoID uint) (*model.Degustacao, error) {
	g, ok := r.degustacoes[degustacaoID]
	if !ok || g.IDEvento != eventoID {
		return nil, repository.ErrNotFound
	}
	return g, nil
}

func (r *stubEventoRepo) ListDegustacoes(_ context.Context, eventoID uint) ([]model.Degustacao, error) {
	ids := make([]uint, 0, len(r.degustacoes))
	for id, g := range r.degustacoes {
		if g.IDEvento == eventoID {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]model.Degustacao, 0, len(ids))
	for _, id := range ids {
		out = append(out, *r.degustacoes[id])
	}
	return out, nil
}

func (r *stubEventoRepo) SaveDegustacao(_ context.Context, g *model.Degustacao) error {
	r.degustacoes[g.ID] = g
	return nil
}

func (r *stubEventoRepo) DeleteDegustacao(_ context.Context, g *model.Degustacao) error {
	delete(r.degustacoes, g.ID)
	return nil
}

// ── Estatísticas ─────────────────────────────────────────────────────────────

// stubStatsRepo returns canned rows and records the scope it was called with,
// so tests can assert the ownership filter without a database.
type stubStatsRepo struct {
	chamado       bool
	ultimoCriador *uint
	ultimoLimite  int

	totais      repository.TotaisEventosRow
	porStatus   []repository.ContagemStatusRow
	despesas    repository.TotaisFilhosRow
	degustacoes repository.TotaisFilhosRow
	meses       []repository.EventosPorMesRow
	statusRows  []repository.EventosPorStatusRow
	clientes    []repository.TopClienteRow
	insumos     []repository.DespesaPorInsumoRow
}

var _ repository.StatsRepository = (*stubStatsRepo)(nil)

func (r *stubStatsRepo) registrar(criadorID *uint) {
	r.chamado = true
	r.ultimoCriador = criadorID
}

func (r *stubStatsRepo) TotaisEventos(_ context.Context, criadorID *uint, _, _ string) (repository.TotaisEventosRow, error) {
	r.registrar(criadorID)
	return r.totais, nil
}

func (r *stubStatsRepo) ContagemPorStatus(_ context.Context, criadorID *uint, _, _ string) ([]repository.ContagemStatusRow, error) {
	r.registrar(criadorID)
	return r.porStatus, nil
}

func (r *stubStatsRepo) TotaisDespesas(_ context.Context, criadorID *uint, _, _ string) (repository.TotaisFilhosRow, error) {
	r.registrar(criadorID)
	return r.despesas, nil
}

func (r *stubStatsRepo) TotaisDegustacoes(_ context.Context, criadorID *uint, _, _ string) (repository.TotaisFilhosRow, error) {
	r.registrar(criadorID)
	return r.degustacoes, nil
}

func (r *stubStatsRepo) EventosPorMes(_ context.Context, criadorID *uint, _, _ string) ([]repository.EventosPorMesRow, error) {
	r.registrar(criadorID)
	return r.meses, nil
}

func (r *stubStatsRepo) EventosPorStatus(_ context.Context, criadorID *uint, _, _ string) ([]repository.EventosPorStatusRow, error) {
	r.registrar(criadorID)
	return r.statusRows, nil
}

func (r *stubStatsRepo) TopClientes(_ context.Context, criadorID *uint, _, _ string, limite int) ([]repository.TopClienteRow, error) {
	r.registrar(criadorID)
	r.ultimoLimite = limite
	if limite < len(r.clientes) {
		return r.clientes[:limite], nil
	}
	return r.clientes, nil
}

func (r *stubStatsRepo) DespesasPorInsumo(_ context.Context, criadorID *uint, _, _ string, limite int) ([]repository.DespesaPorInsumoRow, error) {
	r.registrar(criadorID)
	r.ultimoLimite = limite
	if limite < len(r.insumos) {
		return r.insumos[:limite], nil
	}
	return r.insumos, nil
}

// ── Helpers ──────────────────────────────────────────────────────────────────

func admin() *model.Usuario {
	return &model.Usuario{ID: 1, Username: "admin", Email: "admin@brumas.com.br",
		Perfil: model.PerfilAdministrativo, Ativo: true}
}

func operacional(id uint) *model.Usuario {
	return &model.Usuario{ID: id, Username: "operador", Email: "op@brumas.com.br",
		Perfil: model.PerfilOperacional, Ativo: true}
}

func dia(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}
