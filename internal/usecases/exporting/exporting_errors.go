package exporting

import "github.com/pkg/errors"

var (
	// ErrEmptyLedger indica que o filtro atual não corresponde a nenhum
	// registro; exportar uma visão vazia não é permitido
	ErrEmptyLedger = errors.New("nenhum registro corresponde aos filtros selecionados")
)
