package exporting

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/filtering"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/loading"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/reporting"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T, ledger domain.Ledger) *Service {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockSalesRepository(ctrl)
	mockRepo.EXPECT().LoadAll(gomock.Any()).Return(ledger, nil).AnyTimes()

	aggregator := aggregating.NewService()
	dashboard := dashboarding.NewService(
		loading.NewService(mockRepo, time.Minute),
		filtering.NewService(),
		aggregator,
	)

	return NewService(dashboard, aggregator, reporting.NewService())
}

func testLedger() domain.Ledger {
	date := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	return domain.Ledger{
		{ID: 1, Date: date, Region: "Sul", Category: "Roupas", Product: "Terno", Revenue: 300.5, Quantity: 2},
		{ID: 2, Date: date.AddDate(0, 0, 1), Region: "Norte", Category: "Eletrônicos", Product: "Laptop", Revenue: 7000, Quantity: 2},
	}
}

func TestService_ExportCSV(t *testing.T) {
	service := newService(t, testLedger())

	export, err := service.ExportCSV(context.Background(), &domain.FilterCriteria{})
	require.NoError(t, err)

	assert.Equal(t, "dados_filtrados.csv", export.FileName)
	assert.Equal(t, "text/csv; charset=utf-8", export.ContentType)

	lines := strings.Split(strings.TrimSpace(string(export.Data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id,date,region,category,product,revenue,quantity", lines[0])
	assert.Equal(t, "1,2026-01-05,Sul,Roupas,Terno,300.50,2", lines[1])
	assert.Equal(t, "2,2026-01-06,Norte,Eletrônicos,Laptop,7000.00,2", lines[2])
}

func TestService_ExportCSV_RespectsFilter(t *testing.T) {
	service := newService(t, testLedger())

	export, err := service.ExportCSV(context.Background(), &domain.FilterCriteria{
		Regions: []string{"Norte"},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(export.Data)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "Laptop")
}

func TestService_ExportPDF(t *testing.T) {
	service := newService(t, testLedger())
	service.now = func() time.Time {
		return time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC)
	}

	export, err := service.ExportPDF(context.Background(), &domain.FilterCriteria{})
	require.NoError(t, err)

	// O nome do arquivo carrega a data corrente
	assert.Equal(t, "Relatorio_Vendas_2026-08-27.pdf", export.FileName)
	assert.Equal(t, "application/pdf", export.ContentType)
	require.NotEmpty(t, export.Data)
	assert.Equal(t, "%PDF", string(export.Data[:4]))
}

func TestService_Export_EmptySubset(t *testing.T) {
	service := newService(t, testLedger())

	criteria := &domain.FilterCriteria{Regions: []string{"Centro-Oeste"}}

	_, err := service.ExportCSV(context.Background(), criteria)
	assert.ErrorIs(t, err, ErrEmptyLedger)

	_, err = service.ExportPDF(context.Background(), criteria)
	assert.ErrorIs(t, err, ErrEmptyLedger)
}
