// Package calculator allocates a shared generation pool across metering
// point consumption records and prices both sides of the allocation.
//
// Every function in this package is pure: identical inputs always produce
// identical outputs, and anomalies (zero consumption, over-allocation,
// oversubscribed pools) are reported as data rather than errors.
package calculator

import (
	"sort"

	"github.com/diillson/energy-revenue-dashboard-go/internal/domain/entity"
)

// Step describes a single record being processed during an allocation pass.
type Step struct {
	Index          int
	MPAN           string
	Consumption    float64
	FromGeneration float64
	FromGrid       float64
	PoolRemaining  float64
}

// Options controls an allocation pass.
type Options struct {
	Mode  entity.AllocationMode
	Order entity.RecordOrder
	// Trace, when set, is called once per record in processing order.
	Trace func(Step)
}

// Allocate runs one allocation pass. The pool is taken by value so the
// caller's pool is never modified and a rerun sees the same starting state.
// Every pass starts from the full pool: Remaining is reset to Total.
// Unknown modes fall back to greedy allocation.
func Allocate(
	records []entity.ConsumptionRecord,
	pool entity.GenerationPool,
	rates entity.Rates,
	opts Options,
) ([]entity.AllocationResult, entity.ExportSummary) {
	ordered := orderRecords(records, opts.Order)

	if opts.Mode == entity.ModeManual {
		return allocateManual(ordered, pool, rates, opts.Trace)
	}
	return allocateGreedy(ordered, pool, rates, opts.Trace)
}

// Run is Allocate packaged as a report.
func Run(
	records []entity.ConsumptionRecord,
	pool entity.GenerationPool,
	rates entity.Rates,
	opts Options,
) entity.AllocationReport {
	mode := opts.Mode
	if mode != entity.ModeManual {
		mode = entity.ModeGreedy
	}
	results, summary := Allocate(records, pool, rates, opts)
	return entity.AllocationReport{
		Mode:    mode,
		Rates:   rates,
		Results: results,
		Summary: summary,
	}
}

// orderRecords returns the records in processing order. Input order is kept
// unless priority ordering is requested, in which case lower priorities go
// first and ties keep their input order.
func orderRecords(records []entity.ConsumptionRecord, order entity.RecordOrder) []entity.ConsumptionRecord {
	ordered := make([]entity.ConsumptionRecord, len(records))
	copy(ordered, records)
	if order == entity.OrderPriority {
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].Priority < ordered[j].Priority
		})
	}
	return ordered
}
