package aggregating

import (
	"sort"
	"time"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

// Dimension identifica o eixo de agrupamento de um rollup
type Dimension string

// Aggregation identifica a função de agregação aplicada ao faturamento
type Aggregation string

const (
	DimensionDate     Dimension = "date"
	DimensionRegion   Dimension = "region"
	DimensionCategory Dimension = "category"
	DimensionWeekday  Dimension = "weekday"

	AggregationSum  Aggregation = "sum"
	AggregationMean Aggregation = "mean"
)

// Aggregator deriva KPIs e rollups agrupados de um subconjunto filtrado
type Aggregator interface {
	Summarize(ledger domain.Ledger) *domain.KPISnapshot
	GroupBy(ledger domain.Ledger, dimension Dimension, aggregation Aggregation) []domain.DimensionTotal
	DailyRevenue(ledger domain.Ledger) []domain.TimeSeriesPoint
}

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Summarize recalcula os três KPIs escalares a partir do subconjunto em
// exibição. Ledger vazio resulta em zeros, nunca em divisão por zero.
func (s *Service) Summarize(ledger domain.Ledger) *domain.KPISnapshot {
	snapshot := &domain.KPISnapshot{}

	for _, record := range ledger {
		snapshot.TotalRevenue += record.Revenue
		snapshot.TotalQuantity += record.Quantity
	}

	if snapshot.TotalQuantity > 0 {
		snapshot.AverageTicket = utils.RoundWithTwoDecimalPlace(
			snapshot.TotalRevenue / float64(snapshot.TotalQuantity),
		)
	}

	snapshot.TotalRevenue = utils.RoundWithTwoDecimalPlace(snapshot.TotalRevenue)

	return snapshot
}

// DailyRevenue soma o faturamento por data, em ordem cronológica
func (s *Service) DailyRevenue(ledger domain.Ledger) []domain.TimeSeriesPoint {
	totals := make(map[time.Time]float64)
	for _, record := range ledger {
		totals[record.Date] += record.Revenue
	}

	points := make([]domain.TimeSeriesPoint, 0, len(totals))
	for date, revenue := range totals {
		points = append(points, domain.TimeSeriesPoint{
			Date:    date,
			Revenue: utils.RoundWithTwoDecimalPlace(revenue),
		})
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})

	return points
}

// GroupBy agrega o faturamento pela dimensão pedida. Para região e
// categoria o resultado sai em ordem decrescente de total; para dia da
// semana a saída tem sempre exatamente 7 baldes na ordem fixa de calendário
// (segunda → domingo), com zero nos dias sem registros no recorte atual.
func (s *Service) GroupBy(ledger domain.Ledger, dimension Dimension, aggregation Aggregation) []domain.DimensionTotal {
	if dimension == DimensionWeekday {
		return s.groupByWeekday(ledger, aggregation)
	}

	sums := make(map[string]float64)
	counts := make(map[string]int)

	for _, record := range ledger {
		key := dimensionValue(record, dimension)
		sums[key] += record.Revenue
		counts[key]++
	}

	totals := make([]domain.DimensionTotal, 0, len(sums))
	for key, sum := range sums {
		value := sum
		if aggregation == AggregationMean {
			value = sum / float64(counts[key])
		}
		totals = append(totals, domain.DimensionTotal{
			Value:   key,
			Revenue: utils.RoundWithTwoDecimalPlace(value),
		})
	}

	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Revenue != totals[j].Revenue {
			return totals[i].Revenue > totals[j].Revenue
		}
		return totals[i].Value < totals[j].Value
	})

	return totals
}

// groupByWeekday materializa os 7 baldes fixos independentemente dos dias
// representados na entrada: a ordem de saída é o calendário, não a ordem de
// aparição
func (s *Service) groupByWeekday(ledger domain.Ledger, aggregation Aggregation) []domain.DimensionTotal {
	var sums, counts [7]float64

	for _, record := range ledger {
		idx := domain.WeekdayIndex(record.Date)
		sums[idx] += record.Revenue
		counts[idx]++
	}

	totals := make([]domain.DimensionTotal, 0, 7)
	for i, name := range domain.WeekdayNames {
		value := sums[i]
		if aggregation == AggregationMean && counts[i] > 0 {
			value = sums[i] / counts[i]
		}
		totals = append(totals, domain.DimensionTotal{
			Value:   name,
			Revenue: utils.RoundWithTwoDecimalPlace(value),
		})
	}

	return totals
}

func dimensionValue(record *domain.SalesRecord, dimension Dimension) string {
	switch dimension {
	case DimensionRegion:
		return record.Region
	case DimensionCategory:
		return record.Category
	case DimensionDate:
		return record.Date.Format(time.DateOnly)
	default:
		return ""
	}
}
