package calculator

import (
	"github.com/diillson/energy-revenue-dashboard-go/internal/domain/entity"
)

// Tariffs and rates are quoted in pence while money is reported in pounds.
const penceToPounds = 100.0

// DaysPerYear is used to annualise the daily standing charge.
const DaysPerYear = 365

// MatchPercent returns the share of consumption met by generation, or 0 when
// there is no consumption.
func MatchPercent(fromGeneration, consumption float64) float64 {
	if consumption == 0 {
		return 0
	}
	return fromGeneration / consumption * 100
}

// Cost converts a volume (kWh) at a tariff (p/kWh) into pounds.
func Cost(volume, tariff float64) float64 {
	return volume * tariff / penceToPounds
}

func priceRecord(
	rec entity.ConsumptionRecord,
	consumption, fromGen, fromGrid float64,
	rates entity.Rates,
) entity.AllocationResult {
	costGen := Cost(fromGen, rec.TariffGeneration)
	costGrid := Cost(fromGrid, rec.TariffGrid)
	match := MatchPercent(fromGen, consumption)

	return entity.AllocationResult{
		MPAN:               rec.MPAN,
		Consumption:        consumption,
		FromGeneration:     fromGen,
		FromGrid:           fromGrid,
		MatchPercent:       match,
		CostFromGeneration: costGen,
		CostFromGrid:       costGrid,
		TotalCost:          costGen + costGrid,
		BonusEligible:      rates.BonusRate > 0 && match >= bonusThreshold(rates),
	}
}

func bonusThreshold(rates entity.Rates) float64 {
	if rates.BonusThreshold <= 0 {
		return entity.DefaultBonusThreshold
	}
	return rates.BonusThreshold
}

// bonusFor returns the match bonus earned on a record's sleeved volume.
func bonusFor(res entity.AllocationResult, rates entity.Rates) float64 {
	if !res.BonusEligible {
		return 0
	}
	return Cost(res.FromGeneration, rates.BonusRate)
}

// StandingCharge annualises a daily standing charge (p/day) into pounds.
func StandingCharge(daily float64) float64 {
	return daily * DaysPerYear / penceToPounds
}

func summarize(total, transferred, spilled, bonus float64, oversubscribed bool, rates entity.Rates) entity.ExportSummary {
	private := Cost(transferred, rates.PrivateRate)
	market := Cost(spilled, rates.MarketRate)
	totalRevenue := private + market + bonus
	standing := StandingCharge(rates.StandingChargeDaily)

	return entity.ExportSummary{
		TotalGeneration:    total,
		Transferred:        transferred,
		Spilled:            spilled,
		PrivateRevenue:     private,
		MarketRevenue:      market,
		BonusRevenue:       bonus,
		TotalExportRevenue: totalRevenue,
		StandingCharge:     standing,
		NetRevenue:         totalRevenue - standing,
		Oversubscribed:     oversubscribed,
	}
}
