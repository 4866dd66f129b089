package loading

import (
	"context"
	"sync"
	"time"

	"github.com/vfg2006/sales-analytics-api/infrastructure/repository"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
)

// LedgerService entrega o ledger completo, memoizado por um intervalo fixo
type LedgerService interface {
	GetLedger(ctx context.Context) (domain.Ledger, error)
	Refresh(ctx context.Context) (domain.Ledger, error)
}

// Service é um cache de slot único (timestamp, Ledger) em volta do
// repositório. O repositório em si continua alheio ao cache: a memoização
// pertence a esta camada chamadora. Após o TTL a próxima leitura recarrega
// a tabela inteira.
type Service struct {
	repo repository.SalesRepository
	ttl  time.Duration

	mu       sync.Mutex
	ledger   domain.Ledger
	cachedAt time.Time

	// substituível em testes
	now func() time.Time
}

func NewService(repo repository.SalesRepository, ttl time.Duration) *Service {
	return &Service{
		repo: repo,
		ttl:  ttl,
		now:  time.Now,
	}
}

// GetLedger serve o slot memoizado enquanto ele for válido; caso contrário
// faz uma leitura completa e renova o slot
func (s *Service) GetLedger(ctx context.Context) (domain.Ledger, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ledger != nil && s.now().Sub(s.cachedAt) <= s.ttl {
		return s.ledger, nil
	}

	return s.reload(ctx)
}

// Refresh descarta o slot e força uma releitura imediata
func (s *Service) Refresh(ctx context.Context) (domain.Ledger, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.reload(ctx)
}

func (s *Service) reload(ctx context.Context) (domain.Ledger, error) {
	ledger, err := s.repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	s.ledger = ledger
	s.cachedAt = s.now()

	log.ForContext(ctx).WithFields(log.Fields{
		"records": len(ledger),
		"ttl":     s.ttl.String(),
	}).Debug("Ledger recarregado para o cache")

	return ledger, nil
}
