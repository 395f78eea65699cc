package syncer

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bridgeworld/atlas-mine-watcher/database/models/mining"
	"github.com/bridgeworld/atlas-mine-watcher/graph/bridgeworld"
	"github.com/bridgeworld/atlas-mine-watcher/mine"
)

// computeSnapshot turns one holder's raw records into a stored dashboard
// row. The committed NFT boost comes from the subgraph's own aggregate when
// present; the per-asset sum covers records that predate that field.
func computeSnapshot(
	address string, records *bridgeworld.HolderRecords,
	poolTotal decimal.Decimal, now time.Time,
) *mining.HolderSnapshot {
	holder := mine.NewHolder(address, records.Deposits, records.Staked)

	nftBoost := holder.NFTBoost()
	if records.Boost != "" {
		nftBoost = mine.ParseDecimal(records.Boost)
	}

	power := mine.TotalMiningPower(holder.Positions, nftBoost)
	share := mine.PoolSharePct(power, poolTotal)
	rewardPerDay := mine.ProjectedReward(
		share, mine.EmissionsPerHour(), decimal.NewFromInt(mine.WindowDay))

	return &mining.HolderSnapshot{
		Address:         address,
		Timestamp:       now.Unix(),
		Deposited:       holder.TotalDeposited(),
		NFTBoost:        nftBoost,
		MiningPower:     power,
		PoolMiningPower: poolTotal,
		PoolShare:       share,
		RewardPerDay:    rewardPerDay,
	}
}
