package entity

// ConsumptionRecord represents the consumption of a single metering point (MPAN)
// over the reporting period.
type ConsumptionRecord struct {
	MPAN        string  `json:"mpan"`
	Consumption float64 `json:"consumption_kwh"`
	// FromGeneration and FromGrid hold a pre-assigned split. They are only
	// read by the manual allocation mode.
	FromGeneration *float64 `json:"from_generation_kwh,omitempty"`
	FromGrid       *float64 `json:"from_grid_kwh,omitempty"`
	// Tariffs are expressed in pence per kWh.
	TariffGeneration float64 `json:"tariff_generation_p_kwh"`
	TariffGrid       float64 `json:"tariff_grid_p_kwh"`
	// Priority is only used when records are ordered by priority.
	Priority int `json:"priority,omitempty"`
}

// HasSplit reports whether the record carries any part of a pre-assigned split.
func (r ConsumptionRecord) HasSplit() bool {
	return r.FromGeneration != nil || r.FromGrid != nil
}
