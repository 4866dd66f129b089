package domain

import "time"

// FilterCriteria é o filtro conjuntivo aplicado ao ledger a cada ciclo.
// Datas ausentes (nil) recaem no intervalo completo do ledger. Para os
// conjuntos categóricos, nil significa "sem restrição" (o padrão "todos"
// dos seletores da UI) enquanto um slice vazio é um conjunto vazio e
// produz resultado vazio.
type FilterCriteria struct {
	StartDate  *time.Time `json:"start_date,omitempty"`
	EndDate    *time.Time `json:"end_date,omitempty"`
	Regions    []string   `json:"regions,omitempty"`
	Categories []string   `json:"categories,omitempty"`
	Products   []string   `json:"products,omitempty"`
}

// matchesSet aplica a semântica nil = todos / vazio = nenhum
func matchesSet(set []string, value string) bool {
	if set == nil {
		return true
	}
	for _, member := range set {
		if member == value {
			return true
		}
	}
	return false
}

// Matches avalia o predicado conjuntivo para um registro, dado o intervalo
// de datas já resolvido
func (c *FilterCriteria) Matches(record *SalesRecord, start, end time.Time) bool {
	if record.Date.Before(start) || record.Date.After(end) {
		return false
	}

	return matchesSet(c.Regions, record.Region) &&
		matchesSet(c.Categories, record.Category) &&
		matchesSet(c.Products, record.Product)
}
