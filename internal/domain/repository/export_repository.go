package repository

import (
	"github.com/diillson/energy-revenue-dashboard-go/internal/domain/entity"
)

type ExportRepository interface {
	ExportAllocationToCSV(report entity.AllocationReport, filename, outputDir string) ([]string, error)
	ExportAllocationToJSON(report entity.AllocationReport, filename, outputDir string) (string, error)
	ExportAllocationToPDF(report entity.AllocationReport, filename, outputDir string) (string, error)

	// Quick split
	ExportSplitToCSV(breakdown entity.RevenueBreakdown, filename, outputDir string) (string, error)
	ExportSplitToJSON(breakdown entity.RevenueBreakdown, filename, outputDir string) (string, error)
	ExportSplitToPDF(breakdown entity.RevenueBreakdown, filename, outputDir string) (string, error)
}
