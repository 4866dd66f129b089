package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/exporting"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

func ExportCSV(service exporting.ExportService) http.Handler {
	return exportHandler("csv", func(r *http.Request, criteria *domain.FilterCriteria) (*exporting.Export, error) {
		return service.ExportCSV(r.Context(), criteria)
	})
}

func ExportPDF(service exporting.ExportService) http.Handler {
	return exportHandler("pdf", func(r *http.Request, criteria *domain.FilterCriteria) (*exporting.Export, error) {
		return service.ExportPDF(r.Context(), criteria)
	})
}

// exportHandler concentra o fluxo comum das exportações: parse dos filtros,
// geração do arquivo e resposta como download
func exportHandler(
	format string,
	export func(r *http.Request, criteria *domain.FilterCriteria) (*exporting.Export, error),
) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		exportID, err := utils.GenerateExportID()
		if err != nil {
			logger.WithError(err).Error("export: failed to generate export ID")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "erro ao iniciar a exportação", nil)
			return
		}

		logger = logger.WithFields(log.Fields{
			"export_id": exportID,
			"format":    format,
		})

		criteria, err := parseFilterCriteria(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "data inválida, use o formato yyyy-mm-dd", err.Error())
			return
		}

		logger.Info("export: export started")

		result, err := export(r, criteria)
		if err != nil {
			if errors.Is(err, exporting.ErrEmptyLedger) {
				logger.Warn("export: no records match the current filter")

				apiErrors.WriteError(w, apiErrors.ErrEmptyResult, err.Error(), nil)
				return
			}

			logger.WithError(err).Error("export: failed to generate export")

			apiErrors.WriteError(w, apiErrors.ErrReportGeneration, "erro ao gerar a exportação", nil)
			return
		}

		logger.WithFields(log.Fields{
			"file_name": result.FileName,
			"bytes":     len(result.Data),
		}).Info("export: export completed")

		w.Header().Set("Content-Type", result.ContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.FileName))
		if _, err := w.Write(result.Data); err != nil {
			logger.WithError(err).Error("export: failed to write response body")
		}
	})
}
