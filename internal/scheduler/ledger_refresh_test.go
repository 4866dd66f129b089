package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/loading/mocks"
	"go.uber.org/mock/gomock"
)

func TestLedgerRefreshService_refreshLedger(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := mocks.NewMockLedgerService(ctrl)
	mockLedger.EXPECT().
		Refresh(gomock.Any()).
		Return(domain.Ledger{{ID: 1}, {ID: 2}}, nil)

	service := &LedgerRefreshService{
		ledgerService: mockLedger,
	}

	service.refreshLedger(context.Background())

	assert.False(t, service.lastRefreshAt.IsZero())
	assert.False(t, service.refreshRunning)
}

func TestLedgerRefreshService_refreshLedger_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := mocks.NewMockLedgerService(ctrl)
	mockLedger.EXPECT().
		Refresh(gomock.Any()).
		Return(nil, errors.New("banco indisponível"))

	service := &LedgerRefreshService{
		ledgerService: mockLedger,
	}

	service.refreshLedger(context.Background())

	// Falha não atualiza o carimbo da última recarga e libera o guard
	assert.True(t, service.lastRefreshAt.IsZero())
	assert.False(t, service.refreshRunning)
}

func TestLedgerRefreshService_refreshLedger_SkipsWhenRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Nenhuma chamada a Refresh é esperada: a execução em andamento
	// bloqueia a nova
	mockLedger := mocks.NewMockLedgerService(ctrl)

	service := &LedgerRefreshService{
		ledgerService:  mockLedger,
		refreshRunning: true,
	}

	service.refreshLedger(context.Background())

	assert.True(t, service.refreshRunning)
}

func TestLedgerRefreshService_Start_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := mocks.NewMockLedgerService(ctrl)

	service := NewLedgerRefreshService(mockLedger, &config.Config{
		LedgerRefresh: config.LedgerRefresh{
			CronSchedule: "*/10 * * * *",
			Enabled:      false,
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Desabilitado: nada é agendado e nenhuma recarga acontece
	assert.NoError(t, service.Start(ctx))
	time.Sleep(50 * time.Millisecond)
}
