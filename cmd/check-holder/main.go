package main

import (
	"context"
	"strings"
	"time"

	"github.com/alexflint/go-arg"
	"github.com/shopspring/decimal"

	"github.com/bridgeworld/atlas-mine-watcher/chain"
	cerrors "github.com/bridgeworld/atlas-mine-watcher/common/errors"
	"github.com/bridgeworld/atlas-mine-watcher/common/logging"
	"github.com/bridgeworld/atlas-mine-watcher/graph/bridgeworld"
	"github.com/bridgeworld/atlas-mine-watcher/mine"
)

// Args configures a one-shot holder inspection.
type Args struct {
	Address     string `arg:"positional,required" help:"holder address"`
	GraphURL    string `arg:"env:BRIDGEWORLD_GRAPH_URL,required"`
	RPCURL      string `arg:"env:RPC_URL,required"`
	MineAddress string `arg:"env:ATLAS_MINE_ADDRESS,required"`
	WindowHours int64  `arg:"--window" default:"24" help:"reward projection window in hours"`
	Rate        string `arg:"--rate" default:"1" help:"currency conversion rate applied to amounts"`
}

func main() {
	name := "check-holder"
	logging.Initialize(name)
	defer logging.Finalize()
	logger := logging.NewLoggerTag(name)

	cerrors.Initialize(logger)
	defer cerrors.Catch()

	var args Args
	arg.MustParse(&args)
	address := strings.ToLower(args.Address)
	rate := mine.ParseDecimal(args.Rate)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	graphClient := bridgeworld.NewClient(logging.NewLoggerTag("graph"), args.GraphURL)
	poolClient, err := chain.NewClient(logging.NewLoggerTag("chain"), ctx, args.RPCURL, args.MineAddress)
	if err != nil {
		logger.Critical("chain client fail: %s", err)
	}

	records, err := graphClient.GetHolderRecords(address)
	if err != nil {
		logger.Critical("fetch holder records fail: %s", err)
	}
	poolTotal, err := poolClient.GetTotalMiningPower()
	if err != nil {
		logger.Critical("fetch pool total fail: %s", err)
	}

	holder := mine.NewHolder(address, records.Deposits, records.Staked)
	nftBoost := holder.NFTBoost()
	if records.Boost != "" {
		nftBoost = mine.ParseDecimal(records.Boost)
	}
	power := mine.TotalMiningPower(holder.Positions, nftBoost)
	share := mine.PoolSharePct(power, poolTotal)
	reward := mine.ProjectedReward(
		share, mine.EmissionsPerHour(), decimal.NewFromInt(args.WindowHours))

	now := time.Now()
	logger.Info("holder %s", address)
	logger.Info("deposited %s", mine.Convert(holder.TotalDeposited(), rate).String())
	logger.Info("nft boost %s", nftBoost.String())
	logger.Info("mining power %s of pool %s", power.String(), poolTotal.String())
	logger.Info("pool share %s", share.String())
	logger.Info("reward per %dh %s", args.WindowHours, mine.Convert(reward, rate).String())
	for i, p := range holder.Positions {
		logger.Info("%d) amount %s lockup %s unlock %s (in %d days) power %s",
			i+1, p.Amount.String(), p.Lock.DisplayText(),
			p.UnlockTime.Format(time.RFC3339), mine.DaysUntil(now, p.UnlockTime),
			mine.MiningPower(p, nftBoost).String())
	}
	for _, asset := range holder.SortedAssets() {
		logger.Info("staked x%d %s (%s) boost %s",
			asset.Quantity, asset.Name, asset.Category, asset.Boost.String())
	}
}
