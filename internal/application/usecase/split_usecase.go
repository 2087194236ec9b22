package usecase

import (
	"context"
	"fmt"

	"github.com/diillson/energy-revenue-dashboard-go/internal/domain/calculator"
	"github.com/diillson/energy-revenue-dashboard-go/internal/domain/entity"
	"github.com/diillson/energy-revenue-dashboard-go/internal/shared/types"
	"github.com/diillson/energy-revenue-dashboard-go/pkg/console"
)

// RunSplit calcula a divisão rápida de receita entre volume sleeved, rede e exportação.
func (uc *DashboardUseCase) RunSplit(ctx context.Context, args *types.SplitArgs) (entity.RevenueBreakdown, error) {
	if args.TotalVolume < 0 || args.ExportVol < 0 {
		return entity.RevenueBreakdown{}, fmt.Errorf("%w: volumes must not be negative", types.ErrInvalidRecord)
	}
	if args.SleevedPct < 0 || args.SleevedPct > 100 {
		uc.console.LogWarning("Sleeved percentage %.2f is outside 0-100 and will be clamped", args.SleevedPct)
	}

	breakdown := calculator.Split(entity.SplitInput{
		TotalVolume: args.TotalVolume,
		SleevedPct:  args.SleevedPct,
		ExportVol:   args.ExportVol,
		PrivateRate: args.PrivateRate,
		GridRate:    args.GridRate,
		SpillRate:   args.SpillRate,
	})
	uc.log.Debugw("split calculated",
		"sleeved_kwh", breakdown.SleevedVolume,
		"grid_kwh", breakdown.GridVolume,
		"export_kwh", breakdown.ExportVolume,
		"total_gbp", breakdown.TotalRevenue)

	uc.console.Print(uc.splitTable(breakdown).Render())

	if args.Chart {
		uc.console.DisplayRevenueBars("Revenue Breakdown", []types.RevenueBar{
			{Label: "Sleeved", Amount: breakdown.RevenueSleeved},
			{Label: "Grid", Amount: breakdown.RevenueGrid},
			{Label: "Export", Amount: breakdown.RevenueExport},
		})
	}

	uc.exportReports(ctx, reportTarget{
		name:  args.ReportName,
		types: args.ReportType,
		dir:   args.Dir,
		label: "revenue breakdown",
		toCSV: func(name, dir string) ([]string, error) {
			path, err := uc.exportRepo.ExportSplitToCSV(breakdown, name, dir)
			return []string{path}, err
		},
		toJSON: func(name, dir string) (string, error) { return uc.exportRepo.ExportSplitToJSON(breakdown, name, dir) },
		toPDF:  func(name, dir string) (string, error) { return uc.exportRepo.ExportSplitToPDF(breakdown, name, dir) },
	})

	return breakdown, nil
}

func (uc *DashboardUseCase) splitTable(b entity.RevenueBreakdown) types.TableInterface {
	table := uc.console.CreateTable()
	table.AddColumn("Category")
	table.AddColumn("Volume (kWh)")
	table.AddColumn("Rate (p/kWh)")
	table.AddColumn("Revenue")

	table.AddRow("Sleeved", kwh(b.SleevedVolume), fmt.Sprintf("%g", b.Input.PrivateRate), console.FormatPounds(b.RevenueSleeved))
	table.AddRow("Grid", kwh(b.GridVolume), fmt.Sprintf("%g", b.Input.GridRate), console.FormatPounds(b.RevenueGrid))
	table.AddRow("Export", kwh(b.ExportVolume), fmt.Sprintf("%g", b.Input.SpillRate), console.FormatPounds(b.RevenueExport))
	table.AddRow(
		console.BrightCyan("Total"),
		kwh(b.SleevedVolume+b.GridVolume+b.ExportVolume),
		"",
		console.BrightMagenta(console.FormatPounds(b.TotalRevenue)),
	)

	return table
}
