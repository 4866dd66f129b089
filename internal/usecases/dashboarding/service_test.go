package dashboarding

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/filtering"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/loading"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T, ledger domain.Ledger) DashboardService {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockSalesRepository(ctrl)
	mockRepo.EXPECT().LoadAll(gomock.Any()).Return(ledger, nil).AnyTimes()

	return NewService(
		loading.NewService(mockRepo, time.Minute),
		filtering.NewService(),
		aggregating.NewService(),
	)
}

func testLedger() domain.Ledger {
	date := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	return domain.Ledger{
		{ID: 1, Date: date, Region: "Sul", Category: "Roupas", Product: "Terno", Revenue: 300, Quantity: 2},
		{ID: 2, Date: date.AddDate(0, 0, 1), Region: "Norte", Category: "Eletrônicos", Product: "Laptop", Revenue: 7000, Quantity: 2},
	}
}

func TestService_GetDashboard(t *testing.T) {
	service := newService(t, testLedger())

	response, err := service.GetDashboard(context.Background(), &domain.FilterCriteria{}, nil)
	require.NoError(t, err)

	assert.False(t, response.Empty)
	assert.Equal(t, 2, response.Transactions)
	assert.Nil(t, response.DeltaVsTarget)

	require.NotNil(t, response.KPIs)
	assert.Equal(t, 7300.0, response.KPIs.TotalRevenue)
	assert.Equal(t, 4, response.KPIs.TotalQuantity)
	assert.Equal(t, 1825.0, response.KPIs.AverageTicket)

	require.NotNil(t, response.Charts)
	assert.Len(t, response.Charts.DailyRevenue, 2)
	assert.Len(t, response.Charts.CategoryMix, 2)
	assert.Len(t, response.Charts.RegionalRevenue, 2)
	assert.Len(t, response.Charts.WeekdayAverage, 7)
	assert.Len(t, response.Charts.QuantityScatter, 2)
}

func TestService_GetDashboard_EmptyResultSkipsAggregation(t *testing.T) {
	service := newService(t, testLedger())

	criteria := &domain.FilterCriteria{Regions: []string{"Centro-Oeste"}}

	response, err := service.GetDashboard(context.Background(), criteria, nil)
	require.NoError(t, err)

	// Condição de resultado vazio: aviso visível, nenhum cálculo descendente
	assert.True(t, response.Empty)
	assert.NotEmpty(t, response.Warning)
	assert.Equal(t, 0, response.Transactions)
	assert.Nil(t, response.KPIs)
	assert.Nil(t, response.Charts)
}

func TestService_GetDashboard_DeltaVsExplicitTarget(t *testing.T) {
	service := newService(t, testLedger())

	target := 7000.0

	response, err := service.GetDashboard(context.Background(), &domain.FilterCriteria{}, &target)
	require.NoError(t, err)

	require.NotNil(t, response.DeltaVsTarget)
	// (7300 - 7000) / 7000 * 100
	assert.InDelta(t, 4.29, *response.DeltaVsTarget, 0.01)
}

func TestService_GetDimensions(t *testing.T) {
	service := newService(t, testLedger())

	dimensions, err := service.GetDimensions(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Norte", "Sul"}, dimensions.Regions)
	assert.Equal(t, []string{"Eletrônicos", "Roupas"}, dimensions.Categories)
	assert.Equal(t, []string{"Laptop", "Terno"}, dimensions.Products)
	assert.Equal(t, time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), dimensions.MinDate)
	assert.Equal(t, time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC), dimensions.MaxDate)
}
