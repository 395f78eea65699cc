package mine

import "github.com/shopspring/decimal"

// MiningPower returns the weighted stake size of one position:
// amount + lockBoost*amount + amount*nftBoost. The NFT boost is the
// holder's aggregate across every staked asset and applies to every
// position.
func MiningPower(p Position, nftBoost decimal.Decimal) decimal.Decimal {
	return p.Amount.
		Add(p.Lock.BoostMultiplier().Mul(p.Amount)).
		Add(p.Amount.Mul(nftBoost))
}

// TotalMiningPower sums MiningPower over a holder's positions.
func TotalMiningPower(positions []Position, nftBoost decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, p := range positions {
		total = total.Add(MiningPower(p, nftBoost))
	}
	return total
}

// TotalDeposited sums the raw deposited amounts without any boost.
func TotalDeposited(positions []Position) decimal.Decimal {
	total := decimal.Zero
	for _, p := range positions {
		total = total.Add(p.Amount)
	}
	return total
}
