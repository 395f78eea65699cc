package syncer

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/bridgeworld/atlas-mine-watcher/graph/bridgeworld"
	"github.com/bridgeworld/atlas-mine-watcher/mine"
)

func lockPtr(i int) *int { return &i }

func TestComputeSnapshot(t *testing.T) {
	records := &bridgeworld.HolderRecords{
		Deposits: []mine.RawDeposit{
			{ID: "d1", Amount: "1000000000000000000000", Lock: lockPtr(2), EndTimestamp: "1700000000000"},
		},
		Staked: []mine.RawStakedToken{
			{ID: "s1", Token: mine.RawToken{
				Name: "Genesis Common", Category: mine.CategoryLegion,
				Metadata: &mine.TokenMetadata{Boost: "0.05"},
			}},
		},
	}
	now := time.Unix(1650000000, 0)
	snapshot := computeSnapshot("0xholder", records, decimal.NewFromInt(3700), now)

	assert.Equal(t, "0xholder", snapshot.Address)
	assert.Equal(t, now.Unix(), snapshot.Timestamp)
	assert.Equal(t, "1000", snapshot.Deposited.String())
	assert.Equal(t, "0.05", snapshot.NFTBoost.String())
	// 1000 + 0.8*1000 + 1000*0.05
	assert.Equal(t, "1850", snapshot.MiningPower.String())
	assert.Equal(t, "0.5", snapshot.PoolShare.String())

	wantReward := mine.ProjectedReward(
		decimal.RequireFromString("0.5"), mine.EmissionsPerHour(), decimal.NewFromInt(24))
	assert.True(t, snapshot.RewardPerDay.Equal(wantReward))
}

func TestComputeSnapshotPrefersGraphBoost(t *testing.T) {
	records := &bridgeworld.HolderRecords{
		Boost: "0.575",
		Deposits: []mine.RawDeposit{
			{ID: "d1", Amount: "1000000000000000000", Lock: lockPtr(0)},
		},
	}
	snapshot := computeSnapshot("0xholder", records, decimal.Zero, time.Unix(0, 0))
	assert.Equal(t, "0.575", snapshot.NFTBoost.String())
	// empty pool is a defined zero share
	assert.True(t, snapshot.PoolShare.IsZero())
	assert.True(t, snapshot.RewardPerDay.IsZero())
}

func TestComputeSnapshotEmptyHolder(t *testing.T) {
	snapshot := computeSnapshot("0xholder", &bridgeworld.HolderRecords{},
		decimal.NewFromInt(1000), time.Unix(0, 0))
	assert.True(t, snapshot.Deposited.IsZero())
	assert.True(t, snapshot.MiningPower.IsZero())
	assert.True(t, snapshot.PoolShare.IsZero())
}
