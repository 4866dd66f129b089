package utils

import "time"

// ParseDate converte uma data ISO-8601 (yyyy-mm-dd) vinda da query string.
// String vazia retorna nil, sinalizando que o chamador deve usar o
// intervalo completo disponível.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}
