package filtering

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

func date(day int) time.Time {
	return time.Date(2026, 1, day, 0, 0, 0, 0, time.UTC)
}

func dateRef(day int) *time.Time {
	d := date(day)
	return &d
}

func testLedger() domain.Ledger {
	return domain.Ledger{
		{ID: 1, Date: date(1), Region: "Sul", Category: "Roupas", Product: "Terno", Revenue: 300, Quantity: 2},
		{ID: 2, Date: date(2), Region: "Norte", Category: "Eletrônicos", Product: "Laptop", Revenue: 7000, Quantity: 2},
		{ID: 3, Date: date(3), Region: "Sul", Category: "Alimentos", Product: "Bebidas", Revenue: 45, Quantity: 3},
		{ID: 4, Date: date(4), Region: "Sudeste", Category: "Roupas", Product: "Camiseta", Revenue: 100, Quantity: 2},
		{ID: 5, Date: date(5), Region: "Sul", Category: "Roupas", Product: "Casaco", Revenue: 600, Quantity: 2},
	}
}

func TestService_Apply(t *testing.T) {
	service := NewService()

	tests := []struct {
		name        string
		criteria    *domain.FilterCriteria
		expectedIDs []int64
	}{
		{
			name:        "Sem restrições retorna o ledger inteiro",
			criteria:    &domain.FilterCriteria{},
			expectedIDs: []int64{1, 2, 3, 4, 5},
		},
		{
			name: "Intervalo de datas fechado inclui as bordas",
			criteria: &domain.FilterCriteria{
				StartDate: dateRef(2),
				EndDate:   dateRef(4),
			},
			expectedIDs: []int64{2, 3, 4},
		},
		{
			name: "Data inicial ausente recai no início do ledger",
			criteria: &domain.FilterCriteria{
				EndDate: dateRef(2),
			},
			expectedIDs: []int64{1, 2},
		},
		{
			name: "Cláusulas são conjuntivas: região e categoria",
			criteria: &domain.FilterCriteria{
				Regions:    []string{"Sul"},
				Categories: []string{"Roupas"},
			},
			expectedIDs: []int64{1, 5},
		},
		{
			name: "Qualquer cláusula exclui o registro sozinha",
			criteria: &domain.FilterCriteria{
				StartDate: dateRef(5),
				EndDate:   dateRef(5),
				Regions:   []string{"Norte"},
			},
			expectedIDs: []int64{},
		},
		{
			name: "Conjunto vazio produz resultado vazio",
			criteria: &domain.FilterCriteria{
				Products: []string{},
			},
			expectedIDs: []int64{},
		},
		{
			name: "Filtro por produto",
			criteria: &domain.FilterCriteria{
				Products: []string{"Terno", "Casaco"},
			},
			expectedIDs: []int64{1, 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := testLedger()
			filtered := service.Apply(ledger, tt.criteria)

			ids := make([]int64, 0, len(filtered))
			for _, record := range filtered {
				ids = append(ids, record.ID)
			}
			assert.Equal(t, tt.expectedIDs, ids)
		})
	}
}

func TestService_Apply_DoesNotMutateSource(t *testing.T) {
	service := NewService()
	ledger := testLedger()

	before := make([]domain.SalesRecord, len(ledger))
	for i, record := range ledger {
		before[i] = *record
	}

	filtered := service.Apply(ledger, &domain.FilterCriteria{Regions: []string{"Sul"}})

	require.Len(t, ledger, len(before))
	for i, record := range ledger {
		assert.Equal(t, before[i], *record)
	}

	// A coleção retornada é independente: estender o resultado não pode
	// tocar no ledger original
	_ = append(filtered, &domain.SalesRecord{ID: 99})
	assert.Len(t, ledger, 5)
}

func TestService_Apply_NilCriteria(t *testing.T) {
	service := NewService()
	ledger := testLedger()

	assert.Len(t, service.Apply(ledger, nil), 5)
}

func TestService_Apply_EmptyLedger(t *testing.T) {
	service := NewService()

	filtered := service.Apply(domain.Ledger{}, &domain.FilterCriteria{
		Regions: []string{"Sul"},
	})

	assert.Empty(t, filtered)
}
