package mine

import (
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Holder is one account's mine state, committed or hypothetical. Every
// operation returns a new Holder and never mutates the receiver, so a
// committed snapshot and an edited what-if copy can live side by side and
// feed the same calculators.
type Holder struct {
	Address      string
	Positions    []Position
	StakedAssets []StakedAsset
}

// NewHolder normalizes raw subgraph records into a holder snapshot.
func NewHolder(address string, deposits []RawDeposit, staked []RawStakedToken) Holder {
	return Holder{
		Address:      address,
		Positions:    NormalizeDeposits(deposits),
		StakedAssets: GroupStaked(staked),
	}
}

// NFTBoost returns the holder's aggregate staked-NFT boost.
func (h Holder) NFTBoost() decimal.Decimal {
	return AggregateBoost(h.StakedAssets)
}

// TotalDeposited returns the holder's raw deposited total.
func (h Holder) TotalDeposited() decimal.Decimal {
	return TotalDeposited(h.Positions)
}

// TotalMiningPower returns the holder's boosted mining power.
func (h Holder) TotalMiningPower() decimal.Decimal {
	return TotalMiningPower(h.Positions, h.NFTBoost())
}

// CanAddCategory reports whether one more token of the category fits under
// the staking limits.
func (h Holder) CanAddCategory(category string) bool {
	return CanAddCategory(h.StakedAssets, category)
}

// SortedAssets returns the staked assets ordered by boost, highest first.
// Ties keep insertion order.
func (h Holder) SortedAssets() []StakedAsset {
	assets := append([]StakedAsset(nil), h.StakedAssets...)
	sort.SliceStable(assets, func(i, j int) bool {
		return assets[i].Boost.GreaterThan(assets[j].Boost)
	})
	return assets
}

// AddPosition returns a copy with one hypothetical deposit appended.
func (h Holder) AddPosition(p Position) Holder {
	next := h
	next.Positions = append(append([]Position(nil), h.Positions...), p)
	return next
}

// RemovePosition returns a copy without the identified position. An unknown
// id leaves the holder unchanged.
func (h Holder) RemovePosition(id string) Holder {
	next := h
	next.Positions = make([]Position, 0, len(h.Positions))
	for _, p := range h.Positions {
		if p.ID != id {
			next.Positions = append(next.Positions, p)
		}
	}
	return next
}

// AddAsset stakes one unit of the identified token from the available set.
// It reports false, leaving the holder unchanged, when the id is unknown;
// the caller decides how to surface that.
func (h Holder) AddAsset(available []RawToken, tokenID string) (Holder, bool) {
	for _, token := range available {
		if token.ID != tokenID {
			continue
		}
		next := h
		next.StakedAssets = append(append([]StakedAsset(nil), h.StakedAssets...), newStakedAsset(RawStakedToken{
			ID:    h.Address + "-" + tokenID,
			Token: token,
		}))
		return next, true
	}
	return h, false
}

// IncreaseAsset returns a copy with one more unit of the identified asset.
// Unknown ids leave the holder unchanged.
func (h Holder) IncreaseAsset(id string) Holder {
	return h.adjustAsset(id, 1)
}

// DecreaseAsset returns a copy with one unit removed. Quantity never drops
// below one; use RemoveAsset to drop the asset entirely.
func (h Holder) DecreaseAsset(id string) Holder {
	return h.adjustAsset(id, -1)
}

func (h Holder) adjustAsset(id string, delta int64) Holder {
	next := h
	next.StakedAssets = append([]StakedAsset(nil), h.StakedAssets...)
	for i := range next.StakedAssets {
		if next.StakedAssets[i].ID != id {
			continue
		}
		quantity := next.StakedAssets[i].Quantity + delta
		if quantity >= 1 {
			next.StakedAssets[i].Quantity = quantity
		}
		break
	}
	return next
}

// RemoveAsset returns a copy without the identified asset.
func (h Holder) RemoveAsset(id string) Holder {
	next := h
	next.StakedAssets = make([]StakedAsset, 0, len(h.StakedAssets))
	for _, asset := range h.StakedAssets {
		if asset.ID != id {
			next.StakedAssets = append(next.StakedAssets, asset)
		}
	}
	return next
}

// DaysUntil returns the rounded number of days from now until t. The clock
// is an explicit argument to keep callers deterministic.
func DaysUntil(now, t time.Time) int {
	return int(math.Round(t.Sub(now).Hours() / 24))
}
