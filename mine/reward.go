package mine

import "github.com/shopspring/decimal"

// Emission schedule of the mine.
const (
	TotalEmissions      = 23464251
	EmissionWindowHours = 5844 // 8 months
)

// Reward windows surfaced by callers, in hours.
const (
	WindowHour  = 1
	WindowDay   = 24
	WindowWeek  = 168
	WindowMonth = 720
	WindowYear  = 8760
)

// EmissionsPerHour returns the fixed hourly emission rate of the pool.
func EmissionsPerHour() decimal.Decimal {
	return decimal.NewFromInt(TotalEmissions).Div(decimal.NewFromInt(EmissionWindowHours))
}

// PoolSharePct returns the holder's fraction of the pool's total mining
// power. An empty pool is a defined zero-share state, not an error.
func PoolSharePct(holderPower, poolPower decimal.Decimal) decimal.Decimal {
	if poolPower.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return holderPower.Div(poolPower)
}

// ProjectedReward returns the emissions a holder's share collects over
// windowHours.
func ProjectedReward(sharePct, emissionsPerHour, windowHours decimal.Decimal) decimal.Decimal {
	return sharePct.Mul(emissionsPerHour).Mul(windowHours)
}

// Convert applies an externally supplied currency conversion rate. The rate
// is an opaque input; this core never computes prices.
func Convert(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(rate)
}
