package mining

import (
	"github.com/shopspring/decimal"

	"github.com/bridgeworld/atlas-mine-watcher/database/models"
)

// HolderSnapshot stores one computed dashboard row for a holder at a sync
// timestamp. All figures are full-precision decimals; rounding is left to
// presentation.
type HolderSnapshot struct {
	Address   string `gorm:"column:address;primary_key;type:varchar(128);not null" json:"address"`
	Timestamp int64  `gorm:"column:timestamp;primary_key;type:bigint;not null" json:"timestamp"`

	Deposited       decimal.Decimal `gorm:"column:deposited;type:decimal(38,18);not null" json:"deposited"`
	NFTBoost        decimal.Decimal `gorm:"column:nft_boost;type:decimal(38,18);not null" json:"nft_boost"`
	MiningPower     decimal.Decimal `gorm:"column:mining_power;type:decimal(38,18);not null" json:"mining_power"`
	PoolMiningPower decimal.Decimal `gorm:"column:pool_mining_power;type:decimal(38,18);not null" json:"pool_mining_power"`
	PoolShare       decimal.Decimal `gorm:"column:pool_share;type:decimal(38,18);not null" json:"pool_share"`
	RewardPerDay    decimal.Decimal `gorm:"column:reward_per_day;type:decimal(38,18);not null" json:"reward_per_day"`

	models.Base
}

// ForeignKeyConstraints create foreign key constraints.
func (*HolderSnapshot) ForeignKeyConstraints() []models.ForeignKeyConstraint {
	return nil
}

// Indexes returns information to create index.
func (*HolderSnapshot) Indexes() []models.CustomIndex {
	return []models.CustomIndex{
		{
			Name:   "holder_snapshot_timestamp_idx",
			Fields: []string{"timestamp"},
		},
	}
}
