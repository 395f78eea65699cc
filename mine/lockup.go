package mine

import "github.com/shopspring/decimal"

// LockPeriod is the lock option code stored on chain with each deposit.
type LockPeriod int

// Lock period codes.
const (
	LockTwoWeeks LockPeriod = iota
	LockOneMonth
	LockThreeMonths
	LockSixMonths
	LockTwelveMonths
)

// LockUnknown marks a deposit whose record carried no lock code.
const LockUnknown LockPeriod = -1

// lockDurations and lockBoosts are consulted together and must stay the
// same length.
var (
	lockDurations = map[LockPeriod]int64{
		LockTwoWeeks:     1209600,
		LockOneMonth:     2592000,
		LockThreeMonths:  7776000,
		LockSixMonths:    15552000,
		LockTwelveMonths: 31536000,
	}

	lockBoosts = map[LockPeriod]decimal.Decimal{
		LockTwoWeeks:     decimal.NewFromFloat(0.1),
		LockOneMonth:     decimal.NewFromFloat(0.25),
		LockThreeMonths:  decimal.NewFromFloat(0.8),
		LockSixMonths:    decimal.NewFromFloat(1.8),
		LockTwelveMonths: decimal.NewFromFloat(4),
	}

	lockDisplayTexts = map[LockPeriod]string{
		LockTwoWeeks:     "2 weeks",
		LockOneMonth:     "1 month",
		LockThreeMonths:  "3 months",
		LockSixMonths:    "6 months",
		LockTwelveMonths: "12 months",
	}
)

// DurationSeconds returns the commitment length of the lock code.
// Unmapped codes return 0.
func (l LockPeriod) DurationSeconds() int64 {
	return lockDurations[l]
}

// BoostMultiplier returns the mining power boost of the lock code.
// Unmapped codes return zero.
func (l LockPeriod) BoostMultiplier() decimal.Decimal {
	if boost, ok := lockBoosts[l]; ok {
		return boost
	}
	return decimal.Zero
}

// DisplayText returns the human readable lockup period.
func (l LockPeriod) DisplayText() string {
	if text, ok := lockDisplayTexts[l]; ok {
		return text
	}
	return "Unknown"
}
