package mine

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Token categories recognized by the mine.
const (
	CategoryLegion   = "Legion"
	CategoryTreasure = "Treasure"
)

// Staking limits enforced while composing a hypothetical position. Legion
// has its own slot count; every other category shares the treasure limit.
const (
	MaxLegionStaked    = 3
	MaxNonLegionStaked = 20
)

// TokenMetadata carries the category-specific boost as a decimal string
// (LegionInfo.boost or TreasureInfo.boost on the subgraph).
type TokenMetadata struct {
	Boost string `json:"boost"`
}

// RawToken mirrors one token entity returned by the subgraph.
type RawToken struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Category string         `json:"category"`
	Metadata *TokenMetadata `json:"metadata"`
}

// RawStakedToken mirrors one staked entity returned by the subgraph.
// Quantity arrives as a string and is absent on single-stake records.
type RawStakedToken struct {
	ID       string   `json:"id"`
	Quantity string   `json:"quantity"`
	Token    RawToken `json:"token"`
}

// StakedAsset is one coalesced staked-NFT holding.
type StakedAsset struct {
	ID       string
	Name     string
	Category string
	Quantity int64
	Boost    decimal.Decimal
}

// ParseDecimal reads a decimal string, treating empty or malformed input
// as zero.
func ParseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// parseQuantity defaults to one: a record without a quantity represents a
// single stake.
func parseQuantity(s string) int64 {
	q, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || q < 1 {
		return 1
	}
	return q
}

func newStakedAsset(raw RawStakedToken) StakedAsset {
	asset := StakedAsset{
		ID:       raw.ID,
		Name:     raw.Token.Name,
		Category: raw.Token.Category,
		Quantity: parseQuantity(raw.Quantity),
	}
	if raw.Token.Metadata != nil {
		asset.Boost = ParseDecimal(raw.Token.Metadata.Boost)
	} else {
		asset.Boost = decimal.Zero
	}
	return asset
}

// GroupStaked coalesces raw staked records into a stable, insertion-ordered
// sequence. Legion stakes arrive one record per stake and are grouped by
// token name, each encountered record adding exactly one unit to its group.
// Other categories pass through untouched, one entry per record.
func GroupStaked(records []RawStakedToken) []StakedAsset {
	grouped := make([]StakedAsset, 0, len(records))
	for _, record := range records {
		if record.Token.Category != CategoryLegion {
			grouped = append(grouped, newStakedAsset(record))
			continue
		}
		found := false
		for i := range grouped {
			if grouped[i].Name == record.Token.Name {
				grouped[i].Quantity++
				found = true
				break
			}
		}
		if !found {
			grouped = append(grouped, newStakedAsset(record))
		}
	}
	return grouped
}

// AggregateBoost sums quantity times boost fraction over a holder's staked
// assets.
func AggregateBoost(assets []StakedAsset) decimal.Decimal {
	total := decimal.Zero
	for _, asset := range assets {
		total = total.Add(asset.Boost.Mul(decimal.NewFromInt(asset.Quantity)))
	}
	return total
}

// CategoryQuantity returns the total staked quantity of one category.
func CategoryQuantity(assets []StakedAsset, category string) int64 {
	var total int64
	for _, asset := range assets {
		if asset.Category == category {
			total += asset.Quantity
		}
	}
	return total
}

// CanAddCategory reports whether one more token of the category fits under
// the mine's staking limits.
func CanAddCategory(assets []StakedAsset, category string) bool {
	if category == CategoryLegion {
		return CategoryQuantity(assets, CategoryLegion) < MaxLegionStaked
	}
	var nonLegion int64
	for _, asset := range assets {
		if asset.Category != CategoryLegion {
			nonLegion += asset.Quantity
		}
	}
	return nonLegion < MaxNonLegionStaked
}
