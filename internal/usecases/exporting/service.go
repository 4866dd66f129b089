package exporting

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/reporting"
)

const csvFileName = "dados_filtrados.csv"

var csvHeader = []string{"id", "date", "region", "category", "product", "revenue", "quantity"}

// Export é um arquivo pronto para download, totalmente bufferizado
type Export struct {
	FileName    string
	ContentType string
	Data        []byte
}

// ExportService materializa a visão filtrada atual como CSV ou PDF
type ExportService interface {
	ExportCSV(ctx context.Context, criteria *domain.FilterCriteria) (*Export, error)
	ExportPDF(ctx context.Context, criteria *domain.FilterCriteria) (*Export, error)
}

type Service struct {
	dashboard  dashboarding.DashboardService
	aggregator aggregating.Aggregator
	formatter  reporting.ReportFormatter

	// substituível em testes
	now func() time.Time
}

func NewService(
	dashboard dashboarding.DashboardService,
	aggregator aggregating.Aggregator,
	formatter reporting.ReportFormatter,
) *Service {
	return &Service{
		dashboard:  dashboard,
		aggregator: aggregator,
		formatter:  formatter,
		now:        time.Now,
	}
}

// ExportCSV gera o CSV em UTF-8 com uma linha por registro filtrado, sem
// coluna de índice
func (s *Service) ExportCSV(ctx context.Context, criteria *domain.FilterCriteria) (*Export, error) {
	filtered, err := s.filteredSubset(ctx, criteria)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("erro ao escrever o cabeçalho do CSV: %w", err)
	}

	for _, record := range filtered {
		row := []string{
			strconv.FormatInt(record.ID, 10),
			record.Date.Format(time.DateOnly),
			record.Region,
			record.Category,
			record.Product,
			strconv.FormatFloat(record.Revenue, 'f', 2, 64),
			strconv.Itoa(record.Quantity),
		}
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("erro ao escrever linha do CSV: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("erro ao finalizar o CSV: %w", err)
	}

	return &Export{
		FileName:    csvFileName,
		ContentType: "text/csv; charset=utf-8",
		Data:        buf.Bytes(),
	}, nil
}

// ExportPDF recalcula os KPIs do subconjunto filtrado e delega a
// renderização ao formatador de relatórios
func (s *Service) ExportPDF(ctx context.Context, criteria *domain.FilterCriteria) (*Export, error) {
	filtered, err := s.filteredSubset(ctx, criteria)
	if err != nil {
		return nil, err
	}

	generatedAt := s.now()

	data, err := s.formatter.Render(filtered, s.aggregator.Summarize(filtered), generatedAt)
	if err != nil {
		return nil, err
	}

	return &Export{
		FileName:    fmt.Sprintf("Relatorio_Vendas_%s.pdf", generatedAt.Format(time.DateOnly)),
		ContentType: "application/pdf",
		Data:        data,
	}, nil
}

// filteredSubset aplica o critério e barra subconjuntos vazios: o
// formatador nunca é invocado sem dados
func (s *Service) filteredSubset(ctx context.Context, criteria *domain.FilterCriteria) (domain.Ledger, error) {
	filtered, err := s.dashboard.GetRecords(ctx, criteria)
	if err != nil {
		return nil, err
	}

	if len(filtered) == 0 {
		return nil, ErrEmptyLedger
	}

	return filtered, nil
}
