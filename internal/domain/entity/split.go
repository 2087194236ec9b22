package entity

// SplitInput holds the inputs of the quick split dashboard: a single total
// consumption volume divided between sleeved and grid supply by percentage.
type SplitInput struct {
	TotalVolume float64 `json:"total_volume_kwh"`
	SleevedPct  float64 `json:"sleeved_pct"`
	ExportVol   float64 `json:"export_volume_kwh"`
	PrivateRate float64 `json:"private_rate_p_kwh"`
	GridRate    float64 `json:"grid_rate_p_kwh"`
	SpillRate   float64 `json:"spill_rate_p_kwh"`
}

// RevenueBreakdown is the result of the quick split. Revenues are in pounds.
type RevenueBreakdown struct {
	Input          SplitInput `json:"input"`
	SleevedVolume  float64    `json:"sleeved_volume_kwh"`
	GridVolume     float64    `json:"grid_volume_kwh"`
	ExportVolume   float64    `json:"export_volume_kwh"`
	RevenueSleeved float64    `json:"revenue_sleeved"`
	RevenueGrid    float64    `json:"revenue_grid"`
	RevenueExport  float64    `json:"revenue_export"`
	TotalRevenue   float64    `json:"total_revenue"`
}
