package calculator

import (
	"math"

	"github.com/diillson/energy-revenue-dashboard-go/internal/domain/entity"
)

// allocateGreedy hands out the pool first-come-first-served: each record
// takes min(remaining, consumption) and the rest comes from the grid.
func allocateGreedy(
	records []entity.ConsumptionRecord,
	pool entity.GenerationPool,
	rates entity.Rates,
	trace func(Step),
) ([]entity.AllocationResult, entity.ExportSummary) {
	results := make([]entity.AllocationResult, 0, len(records))
	var bonus float64

	// Uma passada sempre começa com o pool cheio.
	pool.Total = math.Max(pool.Total, 0)
	pool.Remaining = pool.Total

	for i, rec := range records {
		consumption := math.Max(rec.Consumption, 0)
		fromGen := pool.Take(consumption)
		fromGrid := consumption - fromGen

		res := priceRecord(rec, consumption, fromGen, fromGrid, rates)
		bonus += bonusFor(res, rates)
		results = append(results, res)

		if trace != nil {
			trace(Step{
				Index:          i,
				MPAN:           rec.MPAN,
				Consumption:    consumption,
				FromGeneration: fromGen,
				FromGrid:       fromGrid,
				PoolRemaining:  pool.Remaining,
			})
		}
	}

	transferred := pool.Consumed()
	spilled := math.Max(pool.Remaining, 0)

	return results, summarize(pool.Total, transferred, spilled, bonus, false, rates)
}
