package filtering

import (
	"time"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

// FilterEngine aplica um FilterCriteria a um ledger sem mutar a origem
type FilterEngine interface {
	Apply(ledger domain.Ledger, criteria *domain.FilterCriteria) domain.Ledger
}

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Apply retorna uma nova coleção com os registros que satisfazem todas as
// cláusulas do critério, preservando a ordem relativa do ledger de entrada.
// Se o seletor de datas da UI chegar incompleto (início ou fim ausente), o
// intervalo recai no span completo do ledger em vez de filtrar tudo.
// Resultado vazio é saída válida, não erro.
func (s *Service) Apply(ledger domain.Ledger, criteria *domain.FilterCriteria) domain.Ledger {
	filtered := make(domain.Ledger, 0, len(ledger))

	if criteria == nil {
		criteria = &domain.FilterCriteria{}
	}

	start, end := resolveDateSpan(ledger, criteria)

	for _, record := range ledger {
		if criteria.Matches(record, start, end) {
			filtered = append(filtered, record)
		}
	}

	return filtered
}

func resolveDateSpan(ledger domain.Ledger, criteria *domain.FilterCriteria) (time.Time, time.Time) {
	minDate, maxDate := ledger.DateSpan()

	start, end := minDate, maxDate
	if criteria.StartDate != nil {
		start = *criteria.StartDate
	}
	if criteria.EndDate != nil {
		end = *criteria.EndDate
	}

	return start, end
}
