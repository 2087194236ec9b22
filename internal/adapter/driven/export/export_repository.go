package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/diillson/energy-revenue-dashboard-go/internal/domain/entity"
	"github.com/diillson/energy-revenue-dashboard-go/internal/domain/repository"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

// allocationCSVRow é uma linha do CSV de alocação por MPAN.
type allocationCSVRow struct {
	MPAN               string `csv:"mpan"`
	Consumption        string `csv:"consumption_kwh"`
	FromGeneration     string `csv:"from_generation_kwh"`
	FromGrid           string `csv:"from_grid_kwh"`
	MatchPercent       string `csv:"match_pct"`
	CostFromGeneration string `csv:"cost_from_generation_gbp"`
	CostFromGrid       string `csv:"cost_from_grid_gbp"`
	TotalCost          string `csv:"total_cost_gbp"`
	OverAllocated      bool   `csv:"over_allocated"`
	BonusEligible      bool   `csv:"bonus_eligible"`
}

// summaryCSVRow é a linha única do CSV de resumo de exportação.
type summaryCSVRow struct {
	Mode               string `csv:"mode"`
	TotalGeneration    string `csv:"total_generation_kwh"`
	Transferred        string `csv:"transferred_kwh"`
	Spilled            string `csv:"spilled_kwh"`
	PrivateRevenue     string `csv:"private_revenue_gbp"`
	MarketRevenue      string `csv:"market_revenue_gbp"`
	BonusRevenue       string `csv:"bonus_revenue_gbp"`
	TotalExportRevenue string `csv:"total_export_revenue_gbp"`
	StandingCharge     string `csv:"standing_charge_gbp"`
	NetRevenue         string `csv:"net_revenue_gbp"`
	Oversubscribed     bool   `csv:"oversubscribed"`
}

// --- Relatório de Alocação ---

// ExportAllocationToCSV grava dois arquivos: a tabela por MPAN e o resumo de exportação.
func (r *ExportRepositoryImpl) ExportAllocationToCSV(report entity.AllocationReport, filename, outputDir string) ([]string, error) {
	rows := make([]*allocationCSVRow, len(report.Results))
	for i, res := range report.Results {
		rows[i] = &allocationCSVRow{
			MPAN:               res.MPAN,
			Consumption:        Volume(res.Consumption),
			FromGeneration:     Volume(res.FromGeneration),
			FromGrid:           Volume(res.FromGrid),
			MatchPercent:       Percent(res.MatchPercent),
			CostFromGeneration: Money(res.CostFromGeneration),
			CostFromGrid:       Money(res.CostFromGrid),
			TotalCost:          Money(res.TotalCost),
			OverAllocated:      res.OverAllocated,
			BonusEligible:      res.BonusEligible,
		}
	}

	s := report.Summary
	summary := []*summaryCSVRow{{
		Mode:               string(report.Mode),
		TotalGeneration:    Volume(s.TotalGeneration),
		Transferred:        Volume(s.Transferred),
		Spilled:            Volume(s.Spilled),
		PrivateRevenue:     Money(s.PrivateRevenue),
		MarketRevenue:      Money(s.MarketRevenue),
		BonusRevenue:       Money(s.BonusRevenue),
		TotalExportRevenue: Money(s.TotalExportRevenue),
		StandingCharge:     Money(s.StandingCharge),
		NetRevenue:         Money(s.NetRevenue),
		Oversubscribed:     s.Oversubscribed,
	}}

	allocationPath, err := writeCSV(&rows, filename, outputDir)
	if err != nil {
		return nil, fmt.Errorf("error writing allocation CSV: %w", err)
	}
	summaryPath, err := writeCSV(&summary, filename+"_summary", outputDir)
	if err != nil {
		return []string{allocationPath}, fmt.Errorf("error writing summary CSV: %w", err)
	}

	return []string{allocationPath, summaryPath}, nil
}

func (r *ExportRepositoryImpl) ExportAllocationToJSON(report entity.AllocationReport, filename, outputDir string) (string, error) {
	return writeJSON(report, filename, outputDir)
}

func (r *ExportRepositoryImpl) ExportAllocationToPDF(report entity.AllocationReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pageWidth := 277.0

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		footerText := fmt.Sprintf("Generated by Energy Revenue Dashboard (Go) | %s", time.Now().Format("2006-01-02"))
		pdf.CellFormat(pageWidth/2, 10, tr(footerText), "", 0, "L", false, 0, "")
		pdf.CellFormat(pageWidth/2, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "R", false, 0, "")
	})

	pdf.AddPage()
	drawTitle(pdf, tr, "Energy Revenue Report", fmt.Sprintf("Allocation mode: %s", report.Mode))

	s := report.Summary
	drawSection(pdf, tr, pageWidth, "Export Summary", fmt.Sprintf(
		"Total generation: %s kWh\nTransferred to consumers: %s kWh\nSpilled: %s kWh\n\n"+
			"Private revenue: £%s (@ %sp/kWh)\nMarket revenue: £%s (@ %sp/kWh)\nMatch bonus: £%s\n"+
			"Total export revenue: £%s\nStanding charge: £%s\nNet revenue: £%s",
		Volume(s.TotalGeneration), Volume(s.Transferred), Volume(s.Spilled),
		Money(s.PrivateRevenue), Rate(report.Rates.PrivateRate),
		Money(s.MarketRevenue), Rate(report.Rates.MarketRate),
		Money(s.BonusRevenue), Money(s.TotalExportRevenue),
		Money(s.StandingCharge), Money(s.NetRevenue),
	))
	if s.Oversubscribed {
		drawSection(pdf, tr, pageWidth, "Warning", "Supplied generation splits exceed the declared generation; transferred volume was capped at the pool size.")
	}

	// Tabela de alocação por MPAN
	headers := []string{"MPAN", "Consumption (kWh)", "From Gen (kWh)", "From Grid (kWh)", "Match %", "Gen Cost (£)", "Grid Cost (£)", "Total Cost (£)", "Flags"}
	widths := []float64{45, 30, 30, 30, 20, 28, 28, 30, 36}

	drawHeader := func() {
		pdf.SetFont("Arial", "B", 9)
		pdf.SetFillColor(40, 40, 40)
		pdf.SetTextColor(255, 255, 255)
		for i, h := range headers {
			pdf.CellFormat(widths[i], 8, tr(h), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", 9)
		pdf.SetTextColor(50, 50, 50)
	}

	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.Cell(0, 8, "Allocation by Metering Point")
	pdf.Ln(10)
	drawHeader()

	for i, res := range report.Results {
		if pdf.GetY() > 180 {
			pdf.AddPage()
			drawHeader()
		}
		fill := i%2 == 1
		pdf.SetFillColor(240, 240, 240)
		cells := []string{
			res.MPAN,
			Volume(res.Consumption),
			Volume(res.FromGeneration),
			Volume(res.FromGrid),
			Percent(res.MatchPercent),
			Money(res.CostFromGeneration),
			Money(res.CostFromGrid),
			Money(res.TotalCost),
			flags(res),
		}
		for j, c := range cells {
			align := "R"
			if j == 0 || j == len(cells)-1 {
				align = "L"
			}
			pdf.CellFormat(widths[j], 7, tr(c), "1", 0, align, fill, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Funções Auxiliares ---

// generateFilename cria um nome de arquivo único com timestamp e garante que o diretório exista.
func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}

// writeCSV grava um slice de linhas com tags csv usando gocsv.
func writeCSV(rows interface{}, base, dir string) (string, error) {
	outputFilename, err := generateFilename(base, dir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	if err := gocsv.MarshalFile(rows, file); err != nil {
		return "", fmt.Errorf("error encoding CSV data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func writeJSON(data interface{}, base, dir string) (string, error) {
	outputFilename, err := generateFilename(base, dir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func drawTitle(pdf *gofpdf.Fpdf, tr func(string) string, title, subtitle string) {
	pdf.SetFont("Arial", "B", 20)
	pdf.SetTextColor(0, 0, 0)
	pdf.Cell(0, 12, tr(title))
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 11)
	pdf.SetTextColor(100, 100, 100)
	pdf.Cell(0, 8, tr(subtitle))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Generated on: %s", time.Now().Format("2006-01-02 15:04:05")))
	pdf.Ln(14)
}

func drawSection(pdf *gofpdf.Fpdf, tr func(string) string, width float64, title, content string) {
	if content == "" {
		return
	}
	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.Cell(0, 8, tr(title))
	pdf.Ln(7)

	pdf.SetDrawColor(200, 200, 200)
	pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+width, pdf.GetY())
	pdf.Ln(4)

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(50, 50, 50)
	pdf.MultiCell(width, 5, tr(content), "", "L", false)
	pdf.Ln(8)
}

func flags(res entity.AllocationResult) string {
	switch {
	case res.OverAllocated && res.BonusEligible:
		return "over-allocated, bonus"
	case res.OverAllocated:
		return "over-allocated"
	case res.BonusEligible:
		return "bonus"
	}
	return ""
}

// Money arredonda um valor em libras para duas casas decimais.
func Money(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// Volume formata um volume em kWh com três casas decimais.
func Volume(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(3)
}

// Percent formata uma porcentagem com duas casas decimais.
func Percent(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// Rate formata uma tarifa em pence/kWh sem zeros à direita.
func Rate(v float64) string {
	return decimal.NewFromFloat(v).String()
}
