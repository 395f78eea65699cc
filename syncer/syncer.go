package syncer

import (
	"context"
	"time"

	"go.uber.org/atomic"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/bridgeworld/atlas-mine-watcher/chain"
	"github.com/bridgeworld/atlas-mine-watcher/common/logging"
	database "github.com/bridgeworld/atlas-mine-watcher/database/db"
	"github.com/bridgeworld/atlas-mine-watcher/graph/bridgeworld"
)

// Syncer periodically recomputes watched holders' dashboard numbers from
// the subgraph and the mine contract, and upserts them as snapshots.
type Syncer struct {
	ctx    context.Context
	logger logging.Logger
	db     *gorm.DB

	graphClient bridgeworld.GraphInterface
	poolClient  chain.PoolInterface

	addresses    []string
	syncInterval time.Duration

	paused     atomic.Bool
	lastSyncAt atomic.Int64
}

func NewSyncer(
	ctx context.Context, logger logging.Logger, graphClient bridgeworld.GraphInterface,
	poolClient chain.PoolInterface, addresses []string, intervalSec int,
) *Syncer {
	return &Syncer{
		ctx:          ctx,
		logger:       logger,
		db:           database.GetDB(),
		graphClient:  graphClient,
		poolClient:   poolClient,
		addresses:    addresses,
		syncInterval: time.Duration(intervalSec) * time.Second,
	}
}

// Pause stops snapshot writes until Resume. Fetches already in flight
// finish normally.
func (s *Syncer) Pause() { s.paused.Store(true) }

// Resume re-enables snapshot writes.
func (s *Syncer) Resume() { s.paused.Store(false) }

// LastSyncAt returns the unix time of the last successful sync, 0 before
// the first one.
func (s *Syncer) LastSyncAt() int64 { return s.lastSyncAt.Load() }

func (s *Syncer) Run() error {
	ticker := time.NewTicker(s.syncInterval)
	defer ticker.Stop()

	if err := s.syncOnce(time.Now()); err != nil {
		s.logger.Warn("error occurs while running: %s", err)
	}
	for {
		select {
		case <-s.ctx.Done():
			s.logger.Info("Syncer receives shutdown signal.")
			return nil
		case now := <-ticker.C:
			if s.paused.Load() {
				s.logger.Info("sync paused, skipping")
				continue
			}
			if err := s.syncOnce(now); err != nil {
				s.logger.Warn("error occurs while running: %s", err)
			}
		}
	}
}

func (s *Syncer) syncOnce(now time.Time) error {
	poolTotal, err := s.poolClient.GetTotalMiningPower()
	if err != nil {
		return err
	}
	s.logger.Debug("pool total mining power %s", poolTotal.String())

	for _, address := range s.addresses {
		records, err := s.graphClient.GetHolderRecords(address)
		if err != nil {
			s.logger.Error("fail to get records of %s err=%s", address, err)
			continue
		}
		snapshot := computeSnapshot(address, records, poolTotal, now)
		err = s.db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "address"}, {Name: "timestamp"}},
			UpdateAll: true,
		}).Create(snapshot).Error
		if err != nil {
			s.logger.Error("fail to upsert snapshot of %s err=%s", address, err)
			continue
		}
		s.logger.Info("holder %s power %s share %s",
			address, snapshot.MiningPower.String(), snapshot.PoolShare.String())
	}
	s.lastSyncAt.Store(now.Unix())
	return nil
}
