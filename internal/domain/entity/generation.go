package entity

import "math"

// GenerationRecord represents one export/generation row feeding the shared pool.
type GenerationRecord struct {
	ID         string  `json:"id"`
	Generation float64 `json:"generation_kwh"`
}

// GenerationPool is the shared, depletable amount of generation available
// for a single allocation pass. It must not be shared between passes.
type GenerationPool struct {
	Total     float64 `json:"total_kwh"`
	Remaining float64 `json:"remaining_kwh"`
}

// NewGenerationPool aggregates the generation records into a fresh pool.
// Negative rows contribute nothing.
func NewGenerationPool(records []GenerationRecord) *GenerationPool {
	total := 0.0
	for _, r := range records {
		total += math.Max(r.Generation, 0)
	}
	return &GenerationPool{Total: total, Remaining: total}
}

// Take removes up to want kWh from the pool and returns the amount removed.
func (p *GenerationPool) Take(want float64) float64 {
	if want <= 0 || p.Remaining <= 0 {
		return 0
	}
	taken := math.Min(p.Remaining, want)
	p.Remaining -= taken
	return taken
}

// Consumed returns how much of the pool has been handed out.
func (p *GenerationPool) Consumed() float64 {
	return p.Total - p.Remaining
}
