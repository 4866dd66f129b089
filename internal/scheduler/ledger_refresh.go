package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/loading"
)

// LedgerRefreshConfig representa a configuração do agendador de recarga
type LedgerRefreshConfig struct {
	CronSchedule string
	Enabled      bool
}

// LedgerRefreshService mantém o slot de cache do ledger aquecido entre as
// interações do usuário, recarregando-o periodicamente
type LedgerRefreshService struct {
	scheduler     *gocron.Scheduler
	config        LedgerRefreshConfig
	ledgerService loading.LedgerService

	refreshRunning bool
	refreshMutex   sync.Mutex
	lastRefreshAt  time.Time
}

// NewLedgerRefreshService cria uma nova instância do serviço de recarga do ledger
func NewLedgerRefreshService(
	ledgerService loading.LedgerService,
	appConfig *config.Config,
) *LedgerRefreshService {
	refreshConfig := LedgerRefreshConfig{
		CronSchedule: appConfig.LedgerRefresh.CronSchedule,
		Enabled:      appConfig.LedgerRefresh.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
		"enabled":       refreshConfig.Enabled,
	}).Info("Configuração do agendador de recarga do ledger carregada")

	return &LedgerRefreshService{
		scheduler:     gocron.NewScheduler(time.Local),
		config:        refreshConfig,
		ledgerService: ledgerService,
	}
}

// Start inicia o agendador
func (s *LedgerRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Recarga periódica do ledger desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de recarga do ledger")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refreshLedger(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recarga do ledger: %w", err)
	}

	s.scheduler.StartAsync()

	// Parar o agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de recarga do ledger")
		s.scheduler.Stop()
	}()

	return nil
}

// refreshLedger força uma releitura do ledger, ignorando execuções sobrepostas
func (s *LedgerRefreshService) refreshLedger(ctx context.Context) {
	s.refreshMutex.Lock()
	if s.refreshRunning {
		s.refreshMutex.Unlock()
		logrus.Info("Recarga do ledger já em andamento, ignorando")
		return
	}
	s.refreshRunning = true
	s.refreshMutex.Unlock()

	defer func() {
		s.refreshMutex.Lock()
		s.refreshRunning = false
		s.refreshMutex.Unlock()
	}()

	startTime := time.Now()

	ledger, err := s.ledgerService.Refresh(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao recarregar o ledger")
		return
	}

	s.lastRefreshAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"records":     len(ledger),
		"duration_ms": time.Since(startTime).Milliseconds(),
	}).Info("Ledger recarregado com sucesso")
}
