package domain

import "time"

// KPISnapshot contém os indicadores escalares derivados do subconjunto em
// exibição. Nunca é persistido: é recalculado a cada ciclo de filtro.
type KPISnapshot struct {
	TotalRevenue  float64 `json:"total_revenue"`
	TotalQuantity int     `json:"total_quantity"`
	AverageTicket float64 `json:"average_ticket"`
}

// TimeSeriesPoint é um ponto da série de receita diária
type TimeSeriesPoint struct {
	Date    time.Time `json:"date"`
	Revenue float64   `json:"revenue"`
}

// DimensionTotal é o total agregado de uma dimensão categórica
type DimensionTotal struct {
	Value   string  `json:"value"`
	Revenue float64 `json:"revenue"`
}

// ScatterPoint alimenta o gráfico de dispersão quantidade x faturamento
type ScatterPoint struct {
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
	Category string  `json:"category"`
	Product  string  `json:"product"`
}

// DashboardCharts agrupa as séries consumidas pela aba gráfica da UI
type DashboardCharts struct {
	DailyRevenue    []TimeSeriesPoint `json:"daily_revenue"`
	CategoryMix     []DimensionTotal  `json:"category_mix"`
	RegionalRevenue []DimensionTotal  `json:"regional_revenue"`
	WeekdayAverage  []DimensionTotal  `json:"weekday_average"`
	QuantityScatter []ScatterPoint    `json:"quantity_scatter"`
}

// DashboardResponse é o resultado de um ciclo completo de recomputação
type DashboardResponse struct {
	KPIs          *KPISnapshot     `json:"kpis,omitempty"`
	Transactions  int              `json:"transactions"`
	DeltaVsTarget *float64         `json:"delta_vs_target,omitempty"`
	Charts        *DashboardCharts `json:"charts,omitempty"`
	Filters       *FilterCriteria  `json:"filters"`
	Empty         bool             `json:"empty"`
	Warning       string           `json:"warning,omitempty"`
}

// DimensionsResponse lista os valores distintos e o intervalo de datas
// disponíveis, usados para montar os seletores da UI
type DimensionsResponse struct {
	Regions    []string  `json:"regions"`
	Categories []string  `json:"categories"`
	Products   []string  `json:"products"`
	MinDate    time.Time `json:"min_date"`
	MaxDate    time.Time `json:"max_date"`
}
