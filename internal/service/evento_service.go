package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rodrigomoreli/brumas2/internal/apierror"
	"github.com/rodrigomoreli/brumas2/internal/dto"
	"github.com/rodrigomoreli/brumas2/internal/model"
	"github.com/rodrigomoreli/brumas2/internal/repository"
)

// EventoService implements the event aggregate: the event itself plus its
// owned despesas and degustações. Children live strictly under their event;
// every child operation first authorizes the event, then locates the child
// within it, then (for writes) checks the child's own creator.
type EventoService interface {
	Criar(ctx context.Context, req dto.CriarEventoRequest, caller *model.Usuario) (*dto.EventoResponse, error)
	Obter(ctx context.Context, id uint, caller *model.Usuario) (*dto.EventoDetailResponse, error)
	Listar(ctx context.Context, f dto.EventoFilter, caller *model.Usuario) (*dto.Paginated[dto.EventoListItem], error)
	Atualizar(ctx context.Context, id uint, req dto.AtualizarEventoRequest, caller *model.Usuario) (*dto.EventoResponse, error)
	Deletar(ctx context.Context, id uint, caller *model.Usuario) error

	ListarDespesas(ctx context.Context, eventoID uint, caller *model.Usuario) ([]dto.DespesaResponse, error)
	AdicionarDespesa(ctx context.Context, eventoID uint, req dto.CriarDespesaRequest, caller *model.Usuario) (*dto.DespesaResponse, error)
	AtualizarDespesa(ctx context.Context, eventoID, despesaID uint, req dto.AtualizarDespesaRequest, caller *model.Usuario) (*dto.DespesaResponse, error)
	RemoverDespesa(ctx context.Context, eventoID, despesaID uint, caller *model.Usuario) error

	ListarDegustacoes(ctx context.Context, eventoID uint, caller *model.Usuario) ([]dto.DegustacaoResponse, error)
	AdicionarDegustacao(ctx context.Context, eventoID uint, req dto.CriarDegustacaoRequest, caller *model.Usuario) (*dto.DegustacaoResponse, error)
	AtualizarDegustacao(ctx context.Context, eventoID, degustacaoID uint, req dto.AtualizarDegustacaoRequest, caller *model.Usuario) (*dto.DegustacaoResponse, error)
	RemoverDegustacao(ctx context.Context, eventoID, degustacaoID uint, caller *model.Usuario) error
}

type eventoService struct {
	repo repository.EventoRepository
	refs repository.ReferenciaRepository
}

func NewEventoService(repo repository.EventoRepository, refs repository.ReferenciaRepository) EventoService {
	return &eventoService{repo: repo, refs: refs}
}

// escopoDe returns the creator filter for listing and reports: nil for
// administrators (todos os eventos), the caller's own id otherwise.
func escopoDe(caller *model.Usuario) *uint {
	if caller.EhAdministrativo() {
		return nil
	}
	id := caller.ID
	return &id
}

func (s *eventoService) Criar(ctx context.Context, req dto.CriarEventoRequest, caller *model.Usuario) (*dto.EventoResponse, error) {
	e, err := req.ToModel()
	if err != nil {
		return nil, apierror.Validation(err.Error())
	}
	if err := s.validarReferencias(ctx, e); err != nil {
		return nil, err
	}
	e.DefinirCriador(caller.ID)
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	resp := dto.NovoEventoResponse(e)
	return &resp, nil
}

func (s *eventoService) Obter(ctx context.Context, id uint, caller *model.Usuario) (*dto.EventoDetailResponse, error) {
	e, err := s.repo.FindDetalhe(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apierror.NotFound("Evento não encontrado")
		}
		return nil, err
	}
	if !caller.PodeAcessar(e.CriadorID()) {
		return nil, apierror.Forbidden("Você não tem permissão para ver este evento")
	}
	resp := dto.NovoEventoDetailResponse(e)
	return &resp, nil
}

func (s *eventoService) Listar(ctx context.Context, f dto.EventoFilter, caller *model.Usuario) (*dto.Paginated[dto.EventoListItem], error) {
	eventos, total, err := s.repo.List(ctx, escopoDe(caller), f)
	if err != nil {
		return nil, err
	}
	itens := make([]dto.EventoListItem, 0, len(eventos))
	for i := range eventos {
		itens = append(itens, dto.NovoEventoListItem(&eventos[i]))
	}
	pagina := dto.NovaPagina(itens, total, f.Page, f.PageSize)
	return &pagina, nil
}

func (s *eventoService) Atualizar(ctx context.Context, id uint, req dto.AtualizarEventoRequest, caller *model.Usuario) (*dto.EventoResponse, error) {
	e, err := s.repo.FindComFilhos(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apierror.NotFound(fmt.Sprintf("Evento com id %d não encontrado.", id))
		}
		return nil, err
	}
	if !caller.PodeAcessar(e.CriadorID()) {
		return nil, apierror.Forbidden("Você não tem permissão para modificar este evento")
	}
	if err := s.validarReferenciasPatch(ctx, req); err != nil {
		return nil, err
	}
	if err := req.Aplicar(e); err != nil {
		return nil, apierror.Validation(err.Error())
	}
	if err := s.repo.Save(ctx, e); err != nil {
		return nil, err
	}
	resp := dto.NovoEventoResponse(e)
	return &resp, nil
}

func (s *eventoService) Deletar(ctx context.Context, id uint, caller *model.Usuario) error {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apierror.NotFound(fmt.Sprintf("Evento com id %d não encontrado.", id))
		}
		return err
	}
	if !caller.PodeAcessar(e.CriadorID()) {
		return apierror.Forbidden("Você não tem permissão para deletar este evento")
	}
	return s.repo.DeleteComCascata(ctx, e)
}

// validarReferencias confirms every dimension id on a new event before any
// insert, so a request with one bad reference writes nothing at all.
func (s *eventoService) validarReferencias(ctx context.Context, e *model.Evento) error {
	if err := s.conferir(ctx, s.refs.ClienteExiste, e.IDCliente, "Cliente"); err != nil {
		return err
	}
	if err := s.conferir(ctx, s.refs.LocalEventoExiste, e.IDLocalEvento, "Local de evento"); err != nil {
		return err
	}
	if e.IDTipoEvento != nil {
		if err := s.conferir(ctx, s.refs.TipoEventoExiste, *e.IDTipoEvento, "Tipo de evento"); err != nil {
			return err
		}
	}
	if e.IDCidade != nil {
		if err := s.conferir(ctx, s.refs.CidadeExiste, *e.IDCidade, "Cidade"); err != nil {
			return err
		}
	}
	if e.IDAssessoria != nil {
		if err := s.conferir(ctx, s.refs.AssessoriaExiste, *e.IDAssessoria, "Assessoria"); err != nil {
			return err
		}
	}
	if e.IDBuffet != nil {
		if err := s.conferir(ctx, s.refs.BuffetExiste, *e.IDBuffet, "Buffet"); err != nil {
			return err
		}
	}
	return nil
}

// validarReferenciasPatch checks only the references the patch actually sets.
// It runs before Aplicar so a rejected patch leaves the row untouched.
func (s *eventoService) validarReferenciasPatch(ctx context.Context, req dto.AtualizarEventoRequest) error {
	if req.IDCliente.Has() {
		if err := s.conferir(ctx, s.refs.ClienteExiste, *req.IDCliente.Value, "Cliente"); err != nil {
			return err
		}
	}
	if req.IDLocalEvento.Has() {
		if err := s.conferir(ctx, s.refs.LocalEventoExiste, *req.IDLocalEvento.Value, "Local de evento"); err != nil {
			return err
		}
	}
	if req.IDTipoEvento.Has() {
		if err := s.conferir(ctx, s.refs.TipoEventoExiste, *req.IDTipoEvento.Value, "Tipo de evento"); err != nil {
			return err
		}
	}
	if req.IDCidade.Has() {
		if err := s.conferir(ctx, s.refs.CidadeExiste, *req.IDCidade.Value, "Cidade"); err != nil {
			return err
		}
	}
	if req.IDAssessoria.Has() {
		if err := s.conferir(ctx, s.refs.AssessoriaExiste, *req.IDAssessoria.Value, "Assessoria"); err != nil {
			return err
		}
	}
	if req.IDBuffet.Has() {
		if err := s.conferir(ctx, s.refs.BuffetExiste, *req.IDBuffet.Value, "Buffet"); err != nil {
			return err
		}
	}
	return nil
}

func (s *eventoService) conferir(ctx context.Context, existe func(context.Context, uint) (bool, error), id uint, nome string) error {
	ok, err := existe(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apierror.NotFound(fmt.Sprintf("%s com id %d não encontrado.", nome, id))
	}
	return nil
}

// autorizarEvento loads the event and applies the first authorization layer
// shared by every child operation.
func (s *eventoService) autorizarEvento(ctx context.Context, id uint, caller *model.Usuario, naoEncontrado, acao string) (*model.Evento, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apierror.NotFound(naoEncontrado)
		}
		return nil, err
	}
	if !caller.PodeAcessar(e.CriadorID()) {
		return nil, apierror.Forbidden(fmt.Sprintf("Você não tem permissão para %s este evento", acao))
	}
	return e, nil
}

// ── Despesas ─────────────────────────────────────────────────────────────────

func (s *eventoService) ListarDespesas(ctx context.Context, eventoID uint, caller *model.Usuario) ([]dto.DespesaResponse, error) {
	e, err := s.autorizarEvento(ctx, eventoID, caller, "Evento não encontrado", "ver")
	if err != nil {
		return nil, err
	}
	despesas, err := s.repo.ListDespesas(ctx, e.ID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.DespesaResponse, 0, len(despesas))
	for i := range despesas {
		resp = append(resp, dto.NovaDespesaResponse(&despesas[i]))
	}
	return resp, nil
}

func (s *eventoService) AdicionarDespesa(ctx context.Context, eventoID uint, req dto.CriarDespesaRequest, caller *model.Usuario) (*dto.DespesaResponse, error) {
	e, err := s.autorizarEvento(ctx, eventoID, caller, "Evento não encontrado", "modificar")
	if err != nil {
		return nil, err
	}
	d, err := req.ToModel()
	if err != nil {
		return nil, apierror.Validation(err.Error())
	}
	if err := s.conferir(ctx, s.refs.InsumoExiste, d.IDInsumo, "Insumo"); err != nil {
		return nil, err
	}
	d.IDEvento = e.ID
	d.DefinirCriador(caller.ID)
	if err := s.repo.CreateDespesa(ctx, d); err != nil {
		return nil, err
	}
	resp := dto.NovaDespesaResponse(d)
	return &resp, nil
}

func (s *eventoService) AtualizarDespesa(ctx context.Context, eventoID, despesaID uint, req dto.AtualizarDespesaRequest, caller *model.Usuario) (*dto.DespesaResponse, error) {
	d, err := s.localizarDespesa(ctx, eventoID, despesaID, caller, "modificar")
	if err != nil {
		return nil, err
	}
	if req.IDInsumo.Has() {
		if err := s.conferir(ctx, s.refs.InsumoExiste, *req.IDInsumo.Value, "Insumo"); err != nil {
			return nil, err
		}
	}
	if err := req.Aplicar(d); err != nil {
		return nil, apierror.Validation(err.Error())
	}
	if err := s.repo.SaveDespesa(ctx, d); err != nil {
		return nil, err
	}
	resp := dto.NovaDespesaResponse(d)
	return &resp, nil
}

func (s *eventoService) RemoverDespesa(ctx context.Context, eventoID, despesaID uint, caller *model.Usuario) error {
	d, err := s.localizarDespesa(ctx, eventoID, despesaID, caller, "deletar")
	if err != nil {
		return err
	}
	return s.repo.DeleteDespesa(ctx, d)
}

// localizarDespesa runs both authorization layers for a despesa write: the
// event must be accessible, the despesa must exist under that exact event,
// and the despesa's own creator must allow the caller.
func (s *eventoService) localizarDespesa(ctx context.Context, eventoID, despesaID uint, caller *model.Usuario, acao string) (*model.Despesa, error) {
	e, err := s.autorizarEvento(ctx, eventoID, caller,
		fmt.Sprintf("Evento com id %d não encontrado.", eventoID), "modificar")
	if err != nil {
		return nil, err
	}
	d, err := s.repo.FindDespesa(ctx, e.ID, despesaID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apierror.NotFound(fmt.Sprintf("Despesa com id %d não encontrada neste evento.", despesaID))
		}
		return nil, err
	}
	if !caller.PodeAcessar(d.CriadorID()) {
		return nil, apierror.Forbidden(fmt.Sprintf("Você não tem permissão para %s esta despesa", acao))
	}
	return d, nil
}

// ── Degustações ──────────────────────────────────────────────────────────────

func (s *eventoService) ListarDegustacoes(ctx context.Context, eventoID uint, caller *model.Usuario) ([]dto.DegustacaoResponse, error) {
	e, err := s.autorizarEvento(ctx, eventoID, caller, "Evento não encontrado", "ver")
	if err != nil {
		return nil, err
	}
	degustacoes, err := s.repo.ListDegustacoes(ctx, e.ID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.DegustacaoResponse, 0, len(degustacoes))
	for i := range degustacoes {
		resp = append(resp, dto.NovaDegustacaoResponse(&degustacoes[i]))
	}
	return resp, nil
}

func (s *eventoService) AdicionarDegustacao(ctx context.Context, eventoID uint, req dto.CriarDegustacaoRequest, caller *model.Usuario) (*dto.DegustacaoResponse, error) {
	e, err := s.autorizarEvento(ctx, eventoID, caller, "Evento não encontrado", "modificar")
	if err != nil {
		return nil, err
	}
	g, err := req.ToModel()
	if err != nil {
		return nil, apierror.Validation(err.Error())
	}
	g.IDEvento = e.ID
	g.DefinirCriador(caller.ID)
	if err := s.repo.CreateDegustacao(ctx, g); err != nil {
		return nil, err
	}
	resp := dto.NovaDegustacaoResponse(g)
	return &resp, nil
}

func (s *eventoService) AtualizarDegustacao(ctx context.Context, eventoID, degustacaoID uint, req dto.AtualizarDegustacaoRequest, caller *model.Usuario) (*dto.DegustacaoResponse, error) {
	g, err := s.localizarDegustacao(ctx, eventoID, degustacaoID, caller, "modificar")
	if err != nil {
		return nil, err
	}
	if err := req.Aplicar(g); err != nil {
		return nil, apierror.Validation(err.Error())
	}
	if err := s.repo.SaveDegustacao(ctx, g); err != nil {
		return nil, err
	}
	resp := dto.NovaDegustacaoResponse(g)
	return &resp, nil
}

func (s *eventoService) RemoverDegustacao(ctx context.Context, eventoID, degustacaoID uint, caller *model.Usuario) error {
	g, err := s.localizarDegustacao(ctx, eventoID, degustacaoID, caller, "deletar")
	if err != nil {
		return err
	}
	return s.repo.DeleteDegustacao(ctx, g)
}

func (s *eventoService) localizarDegustacao(ctx context.Context, eventoID, degustacaoID uint, caller *model.Usuario, acao string) (*model.Degustacao, error) {
	e, err := s.autorizarEvento(ctx, eventoID, caller,
		fmt.Sprintf("Evento com id %d não encontrado.", eventoID), "modificar")
	if err != nil {
		return nil, err
	}
	g, err := s.repo.FindDegustacao(ctx, e.ID, degustacaoID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apierror.NotFound(fmt.Sprintf("Degustação com id %d não encontrada neste evento.", degustacaoID))
		}
		return nil, err
	}
	if !caller.PodeAcessar(g.CriadorID()) {
		return nil, apierror.Forbidden(fmt.Sprintf("Você não tem permissão para %s esta degustação", acao))
	}
	return g, nil
}
