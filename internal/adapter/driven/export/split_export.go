package export

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/diillson/energy-revenue-dashboard-go/internal/domain/entity"
)

// splitCSVRow é uma linha do CSV da divisão rápida.
type splitCSVRow struct {
	Category string `csv:"category"`
	Volume   string `csv:"volume_kwh"`
	Rate     string `csv:"rate_p_kwh"`
	Revenue  string `csv:"revenue_gbp"`
}

func splitRows(b entity.RevenueBreakdown) []*splitCSVRow {
	return []*splitCSVRow{
		{Category: "Sleeved", Volume: Volume(b.SleevedVolume), Rate: Rate(b.Input.PrivateRate), Revenue: Money(b.RevenueSleeved)},
		{Category: "Grid", Volume: Volume(b.GridVolume), Rate: Rate(b.Input.GridRate), Revenue: Money(b.RevenueGrid)},
		{Category: "Export", Volume: Volume(b.ExportVolume), Rate: Rate(b.Input.SpillRate), Revenue: Money(b.RevenueExport)},
		{Category: "Total", Volume: Volume(b.SleevedVolume + b.GridVolume + b.ExportVolume), Revenue: Money(b.TotalRevenue)},
	}
}

func (r *ExportRepositoryImpl) ExportSplitToCSV(breakdown entity.RevenueBreakdown, filename, outputDir string) (string, error) {
	rows := splitRows(breakdown)
	path, err := writeCSV(&rows, filename, outputDir)
	if err != nil {
		return "", fmt.Errorf("error writing split CSV: %w", err)
	}
	return path, nil
}

func (r *ExportRepositoryImpl) ExportSplitToJSON(breakdown entity.RevenueBreakdown, filename, outputDir string) (string, error) {
	return writeJSON(breakdown, filename, outputDir)
}

func (r *ExportRepositoryImpl) ExportSplitToPDF(breakdown entity.RevenueBreakdown, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pageWidth := 190.0

	pdf.AddPage()
	drawTitle(pdf, tr, "Revenue Breakdown", fmt.Sprintf("Sleeved volume: %s%% of %s kWh",
		Percent(breakdown.Input.SleevedPct), Volume(breakdown.Input.TotalVolume)))

	widths := []float64{50, 50, 40, 50}
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(40, 40, 40)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range []string{"Category", "Volume (kWh)", "Rate (p/kWh)", "Revenue (£)"} {
		pdf.CellFormat(widths[i], 8, tr(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetTextColor(50, 50, 50)
	for _, row := range splitRows(breakdown) {
		style := ""
		if row.Category == "Total" {
			style = "B"
		}
		pdf.SetFont("Arial", style, 10)
		pdf.CellFormat(widths[0], 7, row.Category, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 7, row.Volume, "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[2], 7, row.Rate, "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 7, tr("£"+row.Revenue), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(8)

	drawSection(pdf, tr, pageWidth, "Total Revenue", fmt.Sprintf("£%s", Money(breakdown.TotalRevenue)))

	pdf.SetY(-15)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(128, 128, 128)
	footerText := fmt.Sprintf("Generated by Energy Revenue Dashboard (Go) | %s", time.Now().Format("2006-01-02"))
	pdf.CellFormat(0, 10, tr(footerText), "", 0, "L", false, 0, "")

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}
