package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/rodrigomoreli/brumas2/internal/dto"
	"github.com/rodrigomoreli/brumas2/internal/model"
	"github.com/rodrigomoreli/brumas2/internal/repository"
)

var cem = decimal.NewFromInt(100)

// StatsService produces the reporting numbers. Reports respect the same
// visibility rule as the listing: administrators aggregate over every event,
// operational users only over their own. An empty scope yields zeroed
// headline figures and empty breakdowns, never an error.
type StatsService interface {
	Geral(ctx context.Context, f dto.StatsFilter, caller *model.Usuario) (*dto.EstatisticasGeraisResponse, error)
	PorMes(ctx context.Context, f dto.StatsFilter, caller *model.Usuario) ([]dto.EventosPorMesItem, error)
	PorStatus(ctx context.Context, f dto.StatsFilter, caller *model.Usuario) ([]dto.EventosPorStatusItem, error)
	TopClientes(ctx context.Context, f dto.StatsFilter, caller *model.Usuario) ([]dto.TopClienteItem, error)
	DespesasPorInsumo(ctx context.Context, f dto.StatsFilter, caller *model.Usuario) ([]dto.DespesaPorInsumoItem, error)
	Dashboard(ctx context.Context, f dto.StatsFilter, caller *model.Usuario) (*dto.DashboardResponse, error)
}

type statsService struct {
	repo repository.StatsRepository
}

func NewStatsService(repo repository.StatsRepository) StatsService {
	return &statsService{repo: repo}
}

func limitar(n int, padrao int) int {
	if n <= 0 {
		return padrao
	}
	if n > 100 {
		return 100
	}
	return n
}

func (s *statsService) Geral(ctx context.Context, f dto.StatsFilter, caller *model.Usuario) (*dto.EstatisticasGeraisResponse, error) {
	criador := escopoDe(caller)

	totais, err := s.repo.TotaisEventos(ctx, criador, f.DataInicio, f.DataFim)
	if err != nil {
		return nil, err
	}
	porStatus, err := s.repo.ContagemPorStatus(ctx, criador, f.DataInicio, f.DataFim)
	if err != nil {
		return nil, err
	}
	despesas, err := s.repo.TotaisDespesas(ctx, criador, f.DataInicio, f.DataFim)
	if err != nil {
		return nil, err
	}
	degustacoes, err := s.repo.TotaisDegustacoes(ctx, criador, f.DataInicio, f.DataFim)
	if err != nil {
		return nil, err
	}

	resp := &dto.EstatisticasGeraisResponse{
		TotalEventos:            totais.QtdeEventos,
		VlrTotalContratos:       totais.VlrTotal,
		VlrMedioContrato:        totais.VlrMedio.Round(2),
		TotalConvidadosPrevisto: totais.TotalConvidados,
		MediaConvidadosEvento:   totais.MediaConvidados.Round(2),
		TotalDespesas:           despesas.Qtde,
		VlrTotalDespesas:        despesas.VlrTotal,
		TotalDegustacoes:        degustacoes.Qtde,
		VlrTotalDegustacoes:     degustacoes.VlrTotal,
	}
	for _, row := range porStatus {
		switch model.StatusEvento(row.Status) {
		case model.StatusEventoOrcamento:
			resp.EventosOrcamento = row.Qtde
		case model.StatusEventoConfirmado:
			resp.EventosConfirmados = row.Qtde
		case model.StatusEventoRealizado:
			resp.EventosRealizados = row.Qtde
		case model.StatusEventoCancelado:
			resp.EventosCancelados = row.Qtde
		}
	}
	return resp, nil
}

func (s *statsService) PorMes(ctx context.Context, f dto.StatsFilter, caller *model.Usuario) ([]dto.EventosPorMesItem, error) {
	rows, err := s.repo.EventosPorMes(ctx, escopoDe(caller), f.DataInicio, f.DataFim)
	if err != nil {
		return nil, err
	}
	itens := make([]dto.EventosPorMesItem, 0, len(rows))
	for _, r := range rows {
		itens = append(itens, dto.EventosPorMesItem{
			Mes:      r.Mes,
			Qtde:     r.Qtde,
			VlrTotal: r.VlrTotal,
		})
	}
	return itens, nil
}

func (s *statsService) PorStatus(ctx context.Context, f dto.StatsFilter, caller *model.Usuario) ([]dto.EventosPorStatusItem, error) {
	rows, err := s.repo.EventosPorStatus(ctx, escopoDe(caller), f.DataInicio, f.DataFim)
	if err != nil {
		return nil, err
	}
	var total int64
	for _, r := range rows {
		total += r.Qtde
	}
	itens := make([]dto.EventosPorStatusItem, 0, len(rows))
	for _, r := range rows {
		itens = append(itens, dto.EventosPorStatusItem{
			Status:     r.Status,
			Qtde:       r.Qtde,
			Percentual: percentual(r.Qtde, total),
			VlrTotal:   r.VlrTotal,
		})
	}
	return itens, nil
}

func (s *statsService) TopClientes(ctx context.Context, f dto.StatsFilter, caller *model.Usuario) ([]dto.TopClienteItem, error) {
	rows, err := s.repo.TopClientes(ctx, escopoDe(caller), f.DataInicio, f.DataFim, limitar(f.Limite, 10))
	if err != nil {
		return nil, err
	}
	itens := make([]dto.TopClienteItem, 0, len(rows))
	for _, r := range rows {
		itens = append(itens, dto.TopClienteItem{
			IDCliente:   r.IDCliente,
			Nome:        r.Nome,
			QtdeEventos: r.QtdeEventos,
			VlrTotal:    r.VlrTotal,
		})
	}
	return itens, nil
}

func (s *statsService) DespesasPorInsumo(ctx context.Context, f dto.StatsFilter, caller *model.Usuario) ([]dto.DespesaPorInsumoItem, error) {
	rows, err := s.repo.DespesasPorInsumo(ctx, escopoDe(caller), f.DataInicio, f.DataFim, limitar(f.Limite, 10))
	if err != nil {
		return nil, err
	}
	itens := make([]dto.DespesaPorInsumoItem, 0, len(rows))
	for _, r := range rows {
		itens = append(itens, dto.DespesaPorInsumoItem{
			IDInsumo:        r.IDInsumo,
			Descricao:       r.Descricao,
			QuantidadeTotal: r.QuantidadeTotal,
			VlrTotal:        r.VlrTotal,
			QtdeEventos:     r.QtdeEventos,
		})
	}
	return itens, nil
}

// Dashboard composes the individual reports in one payload. The queries run
// independently; the landing screen tolerates the tiny consistency window.
func (s *statsService) Dashboard(ctx context.Context, f dto.StatsFilter, caller *model.Usuario) (*dto.DashboardResponse, error) {
	geral, err := s.Geral(ctx, f, caller)
	if err != nil {
		return nil, err
	}
	porMes, err := s.PorMes(ctx, f, caller)
	if err != nil {
		return nil, err
	}
	porStatus, err := s.PorStatus(ctx, f, caller)
	if err != nil {
		return nil, err
	}

	top := f
	top.Limite = limitar(f.TopLimite, 5)
	topClientes, err := s.TopClientes(ctx, top, caller)
	if err != nil {
		return nil, err
	}
	porInsumo, err := s.DespesasPorInsumo(ctx, top, caller)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardResponse{
		Geral:             *geral,
		EventosPorMes:     porMes,
		EventosPorStatus:  porStatus,
		TopClientes:       topClientes,
		DespesasPorInsumo: porInsumo,
	}, nil
}

// percentual computes qtde/total as a percentage rounded to two decimals.
func percentual(qtde, total int64) decimal.Decimal {
	if total == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(qtde).
		Div(decimal.NewFromInt(total)).
		Mul(cem).
		Round(2)
}
