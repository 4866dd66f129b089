package dashboarding

import (
	"context"
	"sort"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/filtering"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/loading"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

// Aviso exibido pela UI quando o filtro não encontra registros
const emptyResultWarning = "Nenhum dado encontrado com os filtros selecionados."

// DashboardService executa um ciclo completo de recomputação por requisição:
// carrega (com cache), filtra, sumariza e agrupa
type DashboardService interface {
	GetDashboard(ctx context.Context, criteria *domain.FilterCriteria, revenueTarget *float64) (*domain.DashboardResponse, error)
	GetRecords(ctx context.Context, criteria *domain.FilterCriteria) (domain.Ledger, error)
	GetDimensions(ctx context.Context) (*domain.DimensionsResponse, error)
}

type Service struct {
	loader     loading.LedgerService
	filter     filtering.FilterEngine
	aggregator aggregating.Aggregator
}

func NewService(
	loader loading.LedgerService,
	filter filtering.FilterEngine,
	aggregator aggregating.Aggregator,
) DashboardService {
	return &Service{
		loader:     loader,
		filter:     filter,
		aggregator: aggregator,
	}
}

// GetDashboard monta a visão consolidada consumida pelos cards e gráficos.
// Um resultado vazio não é falha: a resposta sinaliza a condição e pula todo
// o cálculo descendente do ciclo.
func (s *Service) GetDashboard(
	ctx context.Context,
	criteria *domain.FilterCriteria,
	revenueTarget *float64,
) (*domain.DashboardResponse, error) {
	filtered, err := s.GetRecords(ctx, criteria)
	if err != nil {
		return nil, err
	}

	response := &domain.DashboardResponse{
		Filters:      criteria,
		Transactions: len(filtered),
	}

	if len(filtered) == 0 {
		response.Empty = true
		response.Warning = emptyResultWarning
		return response, nil
	}

	response.KPIs = s.aggregator.Summarize(filtered)
	response.Charts = &domain.DashboardCharts{
		DailyRevenue:    s.aggregator.DailyRevenue(filtered),
		CategoryMix:     s.aggregator.GroupBy(filtered, aggregating.DimensionCategory, aggregating.AggregationSum),
		RegionalRevenue: s.aggregator.GroupBy(filtered, aggregating.DimensionRegion, aggregating.AggregationSum),
		WeekdayAverage:  s.aggregator.GroupBy(filtered, aggregating.DimensionWeekday, aggregating.AggregationMean),
		QuantityScatter: scatterPoints(filtered),
	}

	// O delta contra a meta só existe quando o chamador informa uma meta
	// explícita; nada de valores decorativos sorteados
	if revenueTarget != nil && *revenueTarget > 0 {
		delta := utils.RoundWithTwoDecimalPlace(
			(response.KPIs.TotalRevenue - *revenueTarget) / *revenueTarget * 100,
		)
		response.DeltaVsTarget = &delta
	}

	return response, nil
}

// GetRecords devolve o subconjunto filtrado na ordem original de inserção
func (s *Service) GetRecords(ctx context.Context, criteria *domain.FilterCriteria) (domain.Ledger, error) {
	ledger, err := s.loader.GetLedger(ctx)
	if err != nil {
		return nil, err
	}

	return s.filter.Apply(ledger, criteria), nil
}

// GetDimensions lista os valores distintos do ledger completo e o intervalo
// de datas disponível, para montar os seletores da UI
func (s *Service) GetDimensions(ctx context.Context) (*domain.DimensionsResponse, error) {
	ledger, err := s.loader.GetLedger(ctx)
	if err != nil {
		return nil, err
	}

	minDate, maxDate := ledger.DateSpan()

	return &domain.DimensionsResponse{
		Regions:    distinct(ledger, func(r *domain.SalesRecord) string { return r.Region }),
		Categories: distinct(ledger, func(r *domain.SalesRecord) string { return r.Category }),
		Products:   distinct(ledger, func(r *domain.SalesRecord) string { return r.Product }),
		MinDate:    minDate,
		MaxDate:    maxDate,
	}, nil
}

func scatterPoints(ledger domain.Ledger) []domain.ScatterPoint {
	points := make([]domain.ScatterPoint, 0, len(ledger))
	for _, record := range ledger {
		points = append(points, domain.ScatterPoint{
			Quantity: record.Quantity,
			Revenue:  record.Revenue,
			Category: record.Category,
			Product:  record.Product,
		})
	}
	return points
}

func distinct(ledger domain.Ledger, field func(*domain.SalesRecord) string) []string {
	seen := make(map[string]struct{})
	values := make([]string, 0)

	for _, record := range ledger {
		value := field(record)
		if _, ok := seen[value]; !ok {
			seen[value] = struct{}{}
			values = append(values, value)
		}
	}

	sort.Strings(values)
	return values
}
