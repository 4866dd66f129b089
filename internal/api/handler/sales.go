package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/sales-analytics-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
)

func ListSales(service dashboarding.DashboardService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		criteria, err := parseFilterCriteria(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "data inválida, use o formato yyyy-mm-dd", err.Error())
			return
		}

		records, err := service.GetRecords(r.Context(), criteria)
		if err != nil {
			logger.WithError(err).Error("sales: failed to list filtered records")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "erro ao listar registros de vendas", nil)
			return
		}

		logger.WithField("records", len(records)).Info("sales: filtered records listed")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(records); err != nil {
			logger.WithError(err).Error("sales: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
