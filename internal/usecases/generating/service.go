package generating

import (
	"math/rand"
	"time"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

// LedgerGenerator produz um ledger sintético reproduzível
type LedgerGenerator interface {
	Generate(seed int64, startDate time.Time, dayCount int) domain.Ledger
}

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Generate emite registros de venda para dayCount dias consecutivos a partir
// de startDate. É uma função pura dos parâmetros: a mesma seed reproduz a
// mesma sequência byte a byte, porque todos os sorteios saem de uma única
// fonte e seguem uma ordem fixa (vendas do dia, região, categoria, produto,
// quantidade, ruído).
func (s *Service) Generate(seed int64, startDate time.Time, dayCount int) domain.Ledger {
	if dayCount <= 0 {
		return domain.Ledger{}
	}

	rng := rand.New(rand.NewSource(seed))
	ledger := make(domain.Ledger, 0, dayCount*10)

	var nextID int64 = 1

	for day := 0; day < dayCount; day++ {
		date := startDate.AddDate(0, 0, day)

		// Entre 5 e 14 vendas por dia
		dailySales := 5 + rng.Intn(10)

		for i := 0; i < dailySales; i++ {
			region := domain.Regions[rng.Intn(len(domain.Regions))]
			category := domain.Categories[rng.Intn(len(domain.Categories))]

			// O produto é sorteado dentro da categoria escolhida; é isso que
			// cria a correlação positiva entre quantidade e faturamento
			products := domain.ProductsOf(category)
			product := products[rng.Intn(len(products))]

			quantity := 1 + rng.Intn(24)

			// Ruído de +/- 20% simula descontos e variações de preço
			noise := -0.20 + rng.Float64()*0.40

			revenue := float64(quantity) * product.BasePrice * (1 + noise)
			if revenue < 0 {
				revenue = 0
			}

			ledger = append(ledger, &domain.SalesRecord{
				ID:       nextID,
				Date:     date,
				Region:   region,
				Category: category,
				Product:  product.Name,
				Revenue:  utils.RoundWithTwoDecimalPlace(revenue),
				Quantity: quantity,
			})
			nextID++
		}
	}

	return ledger
}
