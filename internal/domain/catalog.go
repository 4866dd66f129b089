package domain

// Product associa um nome de produto ao seu preço base unitário
type Product struct {
	Name      string
	BasePrice float64
}

// Dimensões fixas do ledger. A ordem das listas é estável porque o gerador
// sorteia por índice e precisa reproduzir a mesma sequência sob a mesma seed.
var (
	Regions = []string{"Norte", "Nordeste", "Sul", "Sudeste", "Centro-Oeste"}

	Categories = []string{"Eletrônicos", "Roupas", "Alimentos", "Serviços"}

	productsByCategory = map[string][]Product{
		"Eletrônicos": {
			{Name: "Smartphone", BasePrice: 1200},
			{Name: "Laptop", BasePrice: 3500},
			{Name: "Tablet", BasePrice: 800},
		},
		"Roupas": {
			{Name: "Camiseta", BasePrice: 50},
			{Name: "Terno", BasePrice: 150},
			{Name: "Casaco", BasePrice: 300},
		},
		"Alimentos": {
			{Name: "Congelados", BasePrice: 40},
			{Name: "Bebidas", BasePrice: 15},
			{Name: "Limpeza", BasePrice: 25},
		},
		"Serviços": {
			{Name: "Consultoria", BasePrice: 1000},
			{Name: "Instalação", BasePrice: 400},
			{Name: "Suporte", BasePrice: 200},
		},
	}
)

// ProductsOf retorna a lista ordenada de produtos registrados para a categoria
func ProductsOf(category string) []Product {
	return productsByCategory[category]
}

// IsProductOf verifica se o produto pertence à categoria informada
func IsProductOf(category, product string) bool {
	for _, p := range productsByCategory[category] {
		if p.Name == product {
			return true
		}
	}
	return false
}
