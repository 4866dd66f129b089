package domain

import "time"

// SalesRecord representa uma linha do ledger de vendas
type SalesRecord struct {
	ID       int64     `json:"id"`
	Date     time.Time `json:"date"`
	Region   string    `json:"region"`
	Category string    `json:"category"`
	Product  string    `json:"product"`
	Revenue  float64   `json:"revenue"`
	Quantity int       `json:"quantity"`
}

// Ledger é a coleção completa ou filtrada de registros de venda,
// ordenada por inserção
type Ledger []*SalesRecord

// DateSpan retorna a menor e a maior data presentes no ledger
func (l Ledger) DateSpan() (time.Time, time.Time) {
	if len(l) == 0 {
		return time.Time{}, time.Time{}
	}

	minDate, maxDate := l[0].Date, l[0].Date
	for _, record := range l[1:] {
		if record.Date.Before(minDate) {
			minDate = record.Date
		}
		if record.Date.After(maxDate) {
			maxDate = record.Date
		}
	}

	return minDate, maxDate
}
