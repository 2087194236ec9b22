package calculator

import (
	"math"

	"github.com/diillson/energy-revenue-dashboard-go/internal/domain/entity"
)

// Split divides a single consumption volume between sleeved and grid supply
// by percentage and prices it together with the exported volume.
// The percentage is clamped to [0, 100] and volumes are floored at zero.
func Split(in entity.SplitInput) entity.RevenueBreakdown {
	total := math.Max(in.TotalVolume, 0)
	pct := math.Min(math.Max(in.SleevedPct, 0), 100)
	export := math.Max(in.ExportVol, 0)

	sleeved := total * (pct / 100)
	grid := total - sleeved

	revSleeved := Cost(sleeved, in.PrivateRate)
	revGrid := Cost(grid, in.GridRate)
	revExport := Cost(export, in.SpillRate)

	return entity.RevenueBreakdown{
		Input:          in,
		SleevedVolume:  sleeved,
		GridVolume:     grid,
		ExportVolume:   export,
		RevenueSleeved: revSleeved,
		RevenueGrid:    revGrid,
		RevenueExport:  revExport,
		TotalRevenue:   revSleeved + revGrid + revExport,
	}
}
