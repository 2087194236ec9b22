package entity

// AllocationMode selects how generation is assigned to consumption records.
type AllocationMode string

const (
	// ModeGreedy assigns the shared pool first-come-first-served in record order.
	ModeGreedy AllocationMode = "greedy"
	// ModeManual uses the split supplied on each record.
	ModeManual AllocationMode = "manual"
)

// RecordOrder selects the order in which records draw from the pool.
type RecordOrder string

const (
	OrderInput    RecordOrder = "input"
	OrderPriority RecordOrder = "priority"
)

// AllocationResult is the per-record output of an allocation pass.
type AllocationResult struct {
	MPAN               string  `json:"mpan"`
	Consumption        float64 `json:"consumption_kwh"`
	FromGeneration     float64 `json:"from_generation_kwh"`
	FromGrid           float64 `json:"from_grid_kwh"`
	MatchPercent       float64 `json:"match_pct"`
	CostFromGeneration float64 `json:"cost_from_generation"`
	CostFromGrid       float64 `json:"cost_from_grid"`
	TotalCost          float64 `json:"total_cost"`
	OverAllocated      bool    `json:"over_allocated"`
	BonusEligible      bool    `json:"bonus_eligible"`
}

// ExportSummary describes how the shared generation pool was exhausted and
// the revenue earned on each portion. Monetary values are in pounds.
type ExportSummary struct {
	TotalGeneration    float64 `json:"total_generation_kwh"`
	Transferred        float64 `json:"transferred_kwh"`
	Spilled            float64 `json:"spilled_kwh"`
	PrivateRevenue     float64 `json:"private_revenue"`
	MarketRevenue      float64 `json:"market_revenue"`
	BonusRevenue       float64 `json:"bonus_revenue"`
	TotalExportRevenue float64 `json:"total_export_revenue"`
	StandingCharge     float64 `json:"standing_charge"`
	NetRevenue         float64 `json:"net_revenue"`
	// Oversubscribed is set when the supplied manual splits claim more
	// generation than the pool holds.
	Oversubscribed bool `json:"oversubscribed"`
}

// AllocationReport bundles the output of one allocation pass.
type AllocationReport struct {
	Mode    AllocationMode     `json:"mode"`
	Rates   Rates              `json:"rates"`
	Results []AllocationResult `json:"results"`
	Summary ExportSummary      `json:"summary"`
}

// OverAllocatedCount returns the number of flagged records.
func (r AllocationReport) OverAllocatedCount() int {
	n := 0
	for _, res := range r.Results {
		if res.OverAllocated {
			n++
		}
	}
	return n
}
