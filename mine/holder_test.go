package mine

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHolder() Holder {
	return NewHolder("0xholder",
		[]RawDeposit{
			{ID: "d1", Amount: "1000000000000000000000", Lock: intPtr(2), EndTimestamp: "1700000000000"},
		},
		[]RawStakedToken{
			legionRecord("s1", "Genesis Common", "0.5"),
			treasureRecord("s2", "Honeycomb", "1", "0.075"),
		},
	)
}

func TestHolderTotals(t *testing.T) {
	h := testHolder()
	assert.Equal(t, "1000", h.TotalDeposited().String())
	assert.Equal(t, "0.575", h.NFTBoost().String())
	// 1000 + 0.8*1000 + 1000*0.575
	assert.Equal(t, "2375", h.TotalMiningPower().String())
}

func TestHolderWhatIfLeavesCommittedUntouched(t *testing.T) {
	committed := testHolder()
	edited := committed.AddPosition(Position{
		ID:     "hypothetical",
		Amount: decimal.NewFromInt(500),
		Lock:   LockTwelveMonths,
	})
	edited = edited.RemoveAsset("s2")

	require.Len(t, committed.Positions, 1)
	require.Len(t, committed.StakedAssets, 2)
	assert.Len(t, edited.Positions, 2)
	assert.Len(t, edited.StakedAssets, 1)

	// re-running the same calculators over the committed snapshot still
	// yields the committed numbers
	assert.Equal(t, "2375", committed.TotalMiningPower().String())
}

func TestHolderRemovePosition(t *testing.T) {
	h := testHolder().RemovePosition("d1")
	assert.Empty(t, h.Positions)
	assert.True(t, h.TotalMiningPower().IsZero())

	unchanged := testHolder().RemovePosition("no-such-id")
	assert.Len(t, unchanged.Positions, 1)
}

func TestHolderAddAsset(t *testing.T) {
	available := []RawToken{
		{ID: "t9", Name: "Grin", Category: CategoryTreasure, Metadata: &TokenMetadata{Boost: "0.05"}},
	}
	h, ok := testHolder().AddAsset(available, "t9")
	require.True(t, ok)
	require.Len(t, h.StakedAssets, 3)
	added := h.StakedAssets[2]
	assert.Equal(t, "0xholder-t9", added.ID)
	assert.Equal(t, int64(1), added.Quantity)
	assert.Equal(t, "0.05", added.Boost.String())

	// unknown ids are a reported no-op, never a panic
	same, ok := testHolder().AddAsset(available, "no-such-token")
	assert.False(t, ok)
	assert.Len(t, same.StakedAssets, 2)
}

func TestHolderAdjustAsset(t *testing.T) {
	h := testHolder().IncreaseAsset("s2")
	assert.Equal(t, int64(2), h.StakedAssets[1].Quantity)

	h = h.DecreaseAsset("s2").DecreaseAsset("s2")
	// quantity never drops below one
	assert.Equal(t, int64(1), h.StakedAssets[1].Quantity)

	assert.Equal(t, testHolder(), testHolder().IncreaseAsset("no-such-id"))
}

func TestHolderSortedAssets(t *testing.T) {
	h := testHolder()
	sorted := h.SortedAssets()
	require.Len(t, sorted, 2)
	assert.Equal(t, "Genesis Common", sorted[0].Name)
	assert.Equal(t, "Honeycomb", sorted[1].Name)
	// the underlying snapshot keeps insertion order
	assert.Equal(t, "s1", h.StakedAssets[0].ID)
}

func TestDaysUntil(t *testing.T) {
	now := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 14, DaysUntil(now, now.Add(14*24*time.Hour)))
	assert.Equal(t, 1, DaysUntil(now, now.Add(30*time.Hour)))
	assert.Equal(t, 0, DaysUntil(now, now))
	assert.Equal(t, -2, DaysUntil(now, now.Add(-49*time.Hour)))
}
