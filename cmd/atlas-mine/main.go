package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/bridgeworld/atlas-mine-watcher/api"
	"github.com/bridgeworld/atlas-mine-watcher/chain"
	"github.com/bridgeworld/atlas-mine-watcher/common/config"
	cerrors "github.com/bridgeworld/atlas-mine-watcher/common/errors"
	"github.com/bridgeworld/atlas-mine-watcher/common/logging"
	database "github.com/bridgeworld/atlas-mine-watcher/database/db"
	"github.com/bridgeworld/atlas-mine-watcher/env"
	"github.com/bridgeworld/atlas-mine-watcher/graph/bridgeworld"
	"github.com/bridgeworld/atlas-mine-watcher/syncer"
)

func main() {
	name := "atlas-mine"
	// Initialize logger.
	logging.Initialize(name)
	defer logging.Finalize()

	logger := logging.NewLoggerTag(name)

	// Setup panic handler.
	cerrors.Initialize(logger)
	defer cerrors.Catch()

	logger.Info("%s service started.", name)
	logger.Info("Initializing.")

	backgroundCtx, stop := context.WithCancel(context.Background())
	go WaitExitSignal(stop, logger)
	group, ctx := errgroup.WithContext(backgroundCtx)

	database.Initialize()
	defer database.Finalize()
	database.Reset(database.GetDB())

	graphClient := bridgeworld.NewClient(
		logging.NewLoggerTag("graph"), config.GetString("BRIDGEWORLD_GRAPH_URL"))

	poolClient, err := chain.NewClient(
		logging.NewLoggerTag("chain"), ctx,
		config.GetString("RPC_URL"), config.GetString("ATLAS_MINE_ADDRESS"))
	if err != nil {
		logger.Error("chain client fail:%s", err)
		os.Exit(-3)
	}

	intervalSec := config.GetInt("INTERVAL_SECOND", 60)
	syn := syncer.NewSyncer(ctx, logger, graphClient, poolClient, env.WatchAddresses(), intervalSec)
	group.Go(func() error {
		return syn.Run()
	})

	server := api.NewDashboardServer(
		ctx, logging.NewLoggerTag("api"), graphClient, config.GetString("ATLAS_MINE_ADDRESS"))
	group.Go(func() error {
		return server.Run()
	})

	internal := api.NewInternalServer(ctx, logging.NewLoggerTag("internal"), syn)
	group.Go(func() error {
		return internal.Run()
	})

	if err := group.Wait(); err != nil {
		logger.Critical("service stopped: %s", err)
	}
}

func WaitExitSignal(ctxStop context.CancelFunc, logger logging.Logger) {
	var exitSignal = make(chan os.Signal, 1)
	signal.Notify(exitSignal, syscall.SIGTERM)
	signal.Notify(exitSignal, syscall.SIGINT)

	sig := <-exitSignal
	logger.Info("caught sig: %+v, Stopping...\n", sig)
	ctxStop()
}
