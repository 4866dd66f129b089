package loading

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_GetLedger_CachesWithinTTL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSalesRepository(ctrl)
	ledger := domain.Ledger{{ID: 1, Revenue: 100}}

	// Uma única leitura do repositório para duas chamadas dentro do TTL
	mockRepo.EXPECT().LoadAll(gomock.Any()).Return(ledger, nil).Times(1)

	current := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	service := NewService(mockRepo, 10*time.Minute)
	service.now = func() time.Time { return current }

	first, err := service.GetLedger(context.Background())
	require.NoError(t, err)
	assert.Len(t, first, 1)

	current = current.Add(5 * time.Minute)

	second, err := service.GetLedger(context.Background())
	require.NoError(t, err)
	assert.Len(t, second, 1)
}

func TestService_GetLedger_ReloadsAfterTTL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSalesRepository(ctrl)

	mockRepo.EXPECT().LoadAll(gomock.Any()).Return(domain.Ledger{{ID: 1}}, nil)
	mockRepo.EXPECT().LoadAll(gomock.Any()).Return(domain.Ledger{{ID: 1}, {ID: 2}}, nil)

	current := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	service := NewService(mockRepo, 10*time.Minute)
	service.now = func() time.Time { return current }

	first, err := service.GetLedger(context.Background())
	require.NoError(t, err)
	assert.Len(t, first, 1)

	// Expirou: a próxima chamada deve recarregar
	current = current.Add(11 * time.Minute)

	second, err := service.GetLedger(context.Background())
	require.NoError(t, err)
	assert.Len(t, second, 2)
}

func TestService_Refresh_ForcesReload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSalesRepository(ctrl)

	mockRepo.EXPECT().LoadAll(gomock.Any()).Return(domain.Ledger{{ID: 1}}, nil).Times(2)

	service := NewService(mockRepo, time.Hour)

	_, err := service.GetLedger(context.Background())
	require.NoError(t, err)

	// Mesmo com o slot ainda válido, Refresh vai ao repositório
	_, err = service.Refresh(context.Background())
	require.NoError(t, err)
}

func TestService_GetLedger_PropagatesRepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSalesRepository(ctrl)
	mockRepo.EXPECT().LoadAll(gomock.Any()).Return(nil, assert.AnError)

	service := NewService(mockRepo, time.Minute)

	_, err := service.GetLedger(context.Background())
	assert.Error(t, err)
}
