package handler

import (
	"net/http"

	"github.com/vfg2006/sales-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/exporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Dashboard(service dashboarding.DashboardService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
		{
			Path:    "/v1/sales",
			Method:  http.MethodGet,
			Handler: ListSales(service),
		},
		{
			Path:    "/v1/dimensions",
			Method:  http.MethodGet,
			Handler: GetDimensions(service),
		},
	}
}

func Exports(service exporting.ExportService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/exports/csv",
			Method:  http.MethodGet,
			Handler: ExportCSV(service),
		},
		{
			Path:    "/v1/exports/pdf",
			Method:  http.MethodGet,
			Handler: ExportPDF(service),
		},
	}
}
