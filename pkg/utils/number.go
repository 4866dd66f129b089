package utils

import (
	"fmt"
	"math"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// FormatCurrency formata um valor monetário no padrão exibido nos
// relatórios (R$ 1234.56)
func FormatCurrency(f float64) string {
	return fmt.Sprintf("R$ %.2f", f)
}
