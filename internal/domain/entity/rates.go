package entity

// DefaultBonusThreshold is the match percentage from which the match bonus applies.
const DefaultBonusThreshold = 85.0

// Rates holds the export-side unit rates of an allocation pass.
// Unit rates are in pence per kWh, the standing charge in pence per day.
type Rates struct {
	PrivateRate         float64 `json:"private_rate_p_kwh"`
	MarketRate          float64 `json:"market_rate_p_kwh"`
	BonusRate           float64 `json:"bonus_rate_p_kwh,omitempty"`
	BonusThreshold      float64 `json:"bonus_threshold_pct,omitempty"`
	StandingChargeDaily float64 `json:"standing_charge_p_day,omitempty"`
}
