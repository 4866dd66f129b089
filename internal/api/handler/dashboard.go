package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/vfg2006/sales-analytics-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
)

func GetDashboard(service dashboarding.DashboardService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		criteria, err := parseFilterCriteria(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "data inválida, use o formato yyyy-mm-dd", err.Error())
			return
		}

		revenueTarget, err := parseRevenueTarget(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"revenue_target": r.URL.Query().Get("revenue_target"),
				"error":          err.Error(),
			}).Warn("dashboard: invalid revenue_target parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "revenue_target deve ser um número positivo", err.Error())
			return
		}

		response, err := service.GetDashboard(r.Context(), criteria, revenueTarget)
		if err != nil {
			logger.WithError(err).Error("dashboard: failed to build dashboard")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "erro ao montar o dashboard", nil)
			return
		}

		logger.WithFields(log.Fields{
			"transactions": response.Transactions,
			"empty":        response.Empty,
		}).Info("dashboard: dashboard built")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("dashboard: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// parseRevenueTarget lê a meta de receita opcional usada no delta dos KPIs.
// Ausente retorna nil e o delta é omitido da resposta.
func parseRevenueTarget(r *http.Request) (*float64, error) {
	raw := r.URL.Query().Get("revenue_target")
	if raw == "" {
		return nil, nil
	}

	target, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}

	return &target, nil
}
