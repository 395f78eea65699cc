package mine

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func legionRecord(id, name, boost string) RawStakedToken {
	return RawStakedToken{
		ID: id,
		Token: RawToken{
			ID:       "token-" + id,
			Name:     name,
			Category: CategoryLegion,
			Metadata: &TokenMetadata{Boost: boost},
		},
	}
}

func treasureRecord(id, name, quantity, boost string) RawStakedToken {
	return RawStakedToken{
		ID:       id,
		Quantity: quantity,
		Token: RawToken{
			ID:       "token-" + id,
			Name:     name,
			Category: CategoryTreasure,
			Metadata: &TokenMetadata{Boost: boost},
		},
	}
}

func TestGroupStakedCoalescesLegionsByName(t *testing.T) {
	grouped := GroupStaked([]RawStakedToken{
		legionRecord("1", "Genesis Common", "0.5"),
		legionRecord("2", "Genesis Common", "0.5"),
		treasureRecord("3", "Honeycomb", "1", "0.075"),
	})
	require.Len(t, grouped, 2)

	assert.Equal(t, "Genesis Common", grouped[0].Name)
	assert.Equal(t, int64(2), grouped[0].Quantity)
	assert.Equal(t, "Honeycomb", grouped[1].Name)
	assert.Equal(t, int64(1), grouped[1].Quantity)

	boost := AggregateBoost(grouped)
	// 2*0.5 + 1*0.075
	assert.True(t, boost.Equal(decimal.RequireFromString("1.075")), "got %s", boost)
}

func TestGroupStakedNeverCoalescesTreasures(t *testing.T) {
	grouped := GroupStaked([]RawStakedToken{
		treasureRecord("1", "Honeycomb", "2", "0.075"),
		treasureRecord("2", "Honeycomb", "1", "0.075"),
	})
	assert.Len(t, grouped, 2)
}

func TestGroupStakedCoalescingAddsOneUnitPerRecord(t *testing.T) {
	// a coalesced record contributes exactly one unit, whatever its own
	// quantity claims
	grouped := GroupStaked([]RawStakedToken{
		legionRecord("1", "Numeraire", "0.25"),
		{ID: "2", Quantity: "7", Token: RawToken{
			Name: "Numeraire", Category: CategoryLegion,
			Metadata: &TokenMetadata{Boost: "0.25"},
		}},
	})
	require.Len(t, grouped, 1)
	assert.Equal(t, int64(2), grouped[0].Quantity)
}

func TestGroupStakedDefaultsAndBadMetadata(t *testing.T) {
	grouped := GroupStaked([]RawStakedToken{
		{ID: "1", Token: RawToken{Name: "Quest", Category: CategoryTreasure}},
		{ID: "2", Quantity: "x", Token: RawToken{
			Name: "Grin", Category: CategoryTreasure,
			Metadata: &TokenMetadata{Boost: "??"},
		}},
	})
	require.Len(t, grouped, 2)
	assert.Equal(t, int64(1), grouped[0].Quantity)
	assert.True(t, grouped[0].Boost.IsZero())
	assert.Equal(t, int64(1), grouped[1].Quantity)
	assert.True(t, grouped[1].Boost.IsZero())
	assert.True(t, AggregateBoost(grouped).IsZero())
}

func TestCanAddCategoryLimits(t *testing.T) {
	var assets []StakedAsset
	assert.True(t, CanAddCategory(assets, CategoryLegion))
	assert.True(t, CanAddCategory(assets, CategoryTreasure))

	for i := 0; i < MaxLegionStaked; i++ {
		assets = append(assets, StakedAsset{Category: CategoryLegion, Quantity: 1})
	}
	assert.False(t, CanAddCategory(assets, CategoryLegion))
	assert.True(t, CanAddCategory(assets, CategoryTreasure))

	assets = append(assets, StakedAsset{Category: CategoryTreasure, Quantity: 19})
	assert.True(t, CanAddCategory(assets, CategoryTreasure))
	assets = append(assets, StakedAsset{Category: "Consumable", Quantity: 1})
	// all non-Legion categories share one limit
	assert.False(t, CanAddCategory(assets, CategoryTreasure))
	assert.False(t, CanAddCategory(assets, "Consumable"))
	assert.False(t, CanAddCategory(assets, CategoryLegion))
}
