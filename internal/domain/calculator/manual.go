package calculator

import (
	"math"

	"github.com/diillson/energy-revenue-dashboard-go/internal/domain/entity"
)

// volumeTolerance absorbs float noise when checking a supplied split
// against its consumption (kWh).
const volumeTolerance = 1e-6

// allocateManual prices the split supplied on each record. A missing grid
// share defaults to whatever consumption the generation share leaves over.
// Splits exceeding consumption are flagged, never rejected.
func allocateManual(
	records []entity.ConsumptionRecord,
	pool entity.GenerationPool,
	rates entity.Rates,
	trace func(Step),
) ([]entity.AllocationResult, entity.ExportSummary) {
	results := make([]entity.AllocationResult, 0, len(records))
	var claimed, bonus float64
	total := math.Max(pool.Total, 0)

	for i, rec := range records {
		consumption := math.Max(rec.Consumption, 0)

		fromGen := 0.0
		if rec.FromGeneration != nil {
			fromGen = math.Max(*rec.FromGeneration, 0)
		}
		fromGrid := math.Max(consumption-fromGen, 0)
		if rec.FromGrid != nil {
			fromGrid = math.Max(*rec.FromGrid, 0)
		}

		res := priceRecord(rec, consumption, fromGen, fromGrid, rates)
		res.OverAllocated = fromGen+fromGrid-consumption > volumeTolerance
		bonus += bonusFor(res, rates)
		results = append(results, res)

		claimed += fromGen
		if trace != nil {
			trace(Step{
				Index:          i,
				MPAN:           rec.MPAN,
				Consumption:    consumption,
				FromGeneration: fromGen,
				FromGrid:       fromGrid,
				PoolRemaining:  math.Max(total-claimed, 0),
			})
		}
	}

	transferred := math.Min(claimed, total)
	spilled := math.Max(total-claimed, 0)

	return results, summarize(total, transferred, spilled, bonus, claimed-total > volumeTolerance, rates)
}
