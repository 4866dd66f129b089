package handler

import (
	"net/http"
	"strings"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

// parseFilterCriteria monta o critério de filtro a partir da query string.
// Parâmetro de data ausente fica nil (o serviço usa o intervalo completo);
// listas ausentes ficam nil (sem restrição na dimensão).
func parseFilterCriteria(r *http.Request) (*domain.FilterCriteria, error) {
	logger := log.ForContext(r.Context())

	startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
	if err != nil {
		logger.WithFields(log.Fields{
			"start_date": r.URL.Query().Get("start_date"),
			"error":      err.Error(),
		}).Warn("filters: invalid start_date parameter")

		return nil, err
	}

	endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
	if err != nil {
		logger.WithFields(log.Fields{
			"end_date": r.URL.Query().Get("end_date"),
			"error":    err.Error(),
		}).Warn("filters: invalid end_date parameter")

		return nil, err
	}

	return &domain.FilterCriteria{
		StartDate:  startDate,
		EndDate:    endDate,
		Regions:    parseListParam(r, "regions"),
		Categories: parseListParam(r, "categories"),
		Products:   parseListParam(r, "products"),
	}, nil
}

// parseListParam lê um parâmetro de lista separado por vírgulas. Parâmetro
// ausente retorna nil; presente mas vazio retorna uma lista vazia, que o
// filtro trata como conjunto vazio.
func parseListParam(r *http.Request, name string) []string {
	if !r.URL.Query().Has(name) {
		return nil
	}

	raw := r.URL.Query().Get(name)
	if raw == "" {
		return []string{}
	}

	values := make([]string, 0)
	for _, value := range strings.Split(raw, ",") {
		value = strings.TrimSpace(value)
		if value != "" {
			values = append(values, value)
		}
	}

	return values
}
