package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/sales-analytics-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
)

// GetDimensions expõe os valores disponíveis para montar os seletores de
// filtro: regiões, categorias, produtos e o intervalo de datas do ledger
func GetDimensions(service dashboarding.DashboardService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		response, err := service.GetDimensions(r.Context())
		if err != nil {
			logger.WithError(err).Error("dimensions: failed to list filter dimensions")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "erro ao listar dimensões de filtro", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("dimensions: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
