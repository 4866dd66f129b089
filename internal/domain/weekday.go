package domain

import "time"

// Nomes dos dias da semana em português, começando na segunda-feira.
// A ordem é o calendário fixo esperado pelos gráficos, não a ordem de
// aparição dos dados.
var WeekdayNames = []string{
	"Segunda-feira",
	"Terça-feira",
	"Quarta-feira",
	"Quinta-feira",
	"Sexta-feira",
	"Sábado",
	"Domingo",
}

// WeekdayIndex converte uma data para o índice do balde de dia da semana
// (segunda = 0, domingo = 6)
func WeekdayIndex(date time.Time) int {
	return (int(date.Weekday()) + 6) % 7
}
