package reporting

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

const (
	topSalesCount     = 15
	productNameMaxLen = 20
	pageBreakMarginMM = 15
	generatedAtLayout = "02/01/2006 15:04"
)

// Larguras das colunas da tabela em milímetros
var columnWidths = []float64{30, 30, 30, 40, 25, 30}

var tableHeaders = []string{"Data", "Regiao", "Categoria", "Produto", "Qtd", "Receita"}

// ReportFormatter renderiza o relatório executivo em PDF a partir de um
// subconjunto filtrado e dos KPIs já calculados para ele
type ReportFormatter interface {
	Render(ledger domain.Ledger, kpis *domain.KPISnapshot, generatedAt time.Time) ([]byte, error)
}

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Render produz o documento completo em memória: título, carimbo de data,
// faixa de KPIs e a tabela das 15 maiores vendas por receita. O chamador
// garante que o subconjunto não está vazio.
func (s *Service) Render(ledger domain.Ledger, kpis *domain.KPISnapshot, generatedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, pageBreakMarginMM)
	pdf.AddPage()

	// Título e carimbo de geração
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Relatorio Executivo de Vendas", "", 1, "C", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 8, fmt.Sprintf("Gerado em: %s", generatedAt.Format(generatedAtLayout)), "", 1, "", false, 0, "")

	// Faixa de resumo dos KPIs sobre um retângulo cinza
	pdf.SetFillColor(240, 240, 240)
	pdf.Rect(10, 35, 190, 25, "F")
	pdf.SetY(40)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(60, 8, "Receita Total", "", 0, "C", false, 0, "")
	pdf.CellFormat(60, 8, "Quantidade", "", 0, "C", false, 0, "")
	pdf.CellFormat(60, 8, "Ticket Medio", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(60, 8, toLatin1(utils.FormatCurrency(kpis.TotalRevenue)), "", 0, "C", false, 0, "")
	pdf.CellFormat(60, 8, fmt.Sprintf("%d", kpis.TotalQuantity), "", 0, "C", false, 0, "")
	pdf.CellFormat(60, 8, toLatin1(utils.FormatCurrency(kpis.AverageTicket)), "", 1, "C", false, 0, "")

	pdf.Ln(15)

	// Cabeçalho da tabela de maiores vendas
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Top 15 Vendas (por receita):", "", 1, "", false, 0, "")

	pdf.SetFont("Helvetica", "B", 9)
	for i, header := range tableHeaders {
		pdf.CellFormat(columnWidths[i], 8, header, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, record := range topByRevenue(ledger, topSalesCount) {
		cells := []string{
			record.Date.Format(time.DateOnly),
			record.Region,
			record.Category,
			truncate(record.Product, productNameMaxLen),
			fmt.Sprintf("%d", record.Quantity),
			utils.FormatCurrency(record.Revenue),
		}

		for i, cell := range cells {
			align := "L"
			if i == 4 {
				align = "C"
			}
			// O formato de saída só suporta latin-1: cada campo é
			// transcodificado antes de ser posicionado
			pdf.CellFormat(columnWidths[i], 7, toLatin1(cell), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("erro ao gerar o PDF: %w", err)
	}

	return buf.Bytes(), nil
}

// topByRevenue ordena uma cópia por receita decrescente, com empates
// mantendo a ordem relativa original, e corta os n primeiros
func topByRevenue(ledger domain.Ledger, n int) domain.Ledger {
	top := make(domain.Ledger, len(ledger))
	copy(top, ledger)

	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Revenue > top[j].Revenue
	})

	if len(top) > n {
		top = top[:n]
	}

	return top
}

func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen])
}
