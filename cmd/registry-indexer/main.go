package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli"

	"github.com/stakemirror/registry-indexer/api"
	"github.com/stakemirror/registry-indexer/beacon"
	"github.com/stakemirror/registry-indexer/flags"
	"github.com/stakemirror/registry-indexer/metrics"
	"github.com/stakemirror/registry-indexer/registry"
	"github.com/stakemirror/registry-indexer/store"
)

var GitVersion = "0.1.0"

func main() {
	app := cli.NewApp()
	app.Name = "registry-indexer"
	app.Version = GitVersion
	app.Usage = "mirrors an on-chain node operators registry into a local database"
	app.Flags = flags.Flags
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		log.Crit("Application failed", "message", err)
	}
}

func run(cliCtx *cli.Context) error {
	cfg := registry.NewConfig(cliCtx)

	log.Root().SetHandler(log.LvlFilterHandler(log.Lvl(cfg.LogLevel),
		log.StreamHandler(os.Stdout, log.TerminalFormat(true))))
	log.Info("Starting registry indexer", "version", GitVersion,
		"registry", cfg.RegistryAddress.Hex(), "validatorMode", cfg.ValidatorMode)

	db, err := store.Open(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	client, err := rpc.DialContext(context.Background(), cfg.EthereumHttpUrl)
	if err != nil {
		return err
	}
	defer client.Close()

	fetcher, err := registry.NewRegistryFetcher(client, cfg.RegistryAddress)
	if err != nil {
		return err
	}
	chain := registry.NewChainClient(ethclient.NewClient(client))

	mode := registry.KeyMirror
	if cfg.ValidatorMode {
		mode = registry.ValidatorMirror
	}
	reconciler := registry.NewReconciler(cfg.RegistryAddress, mode, chain, fetcher, db, cfg.FetchConcurrency)

	var updaters []*registry.Updater
	if cfg.RegistryEnabled {
		updater := registry.NewUpdater("registry", reconciler.RunOnce, cfg.PollInterval, cfg.UpdateTimeout)
		updater.Start()
		updaters = append(updaters, updater)
	} else {
		log.Warn("Registry update loop is disabled")
	}

	if cfg.BeaconHttpUrl != "" {
		mirror := beacon.NewMirror(cfg.RegistryAddress, beacon.NewClient(cfg.BeaconHttpUrl), db)
		updater := registry.NewUpdater("validators", mirror.RunOnce, cfg.PollInterval, cfg.UpdateTimeout)
		updater.Start()
		updaters = append(updaters, updater)
	}

	server := api.NewServer(cfg.RegistryAddress, db)
	if err := server.Start(cfg.HTTPHost, cfg.HTTPPort); err != nil {
		return err
	}
	log.Info("API server listening", "addr", cfg.HTTPHost, "port", cfg.HTTPPort)

	if cfg.MetricsEnabled {
		metrics.InitAndRegisterStats(prometheus.DefaultRegisterer)
		if _, err := metrics.Serve(cfg.MetricsHTTP, cfg.MetricsPort); err != nil {
			return err
		}
		log.Info("Metrics server listening", "addr", cfg.MetricsHTTP, "port", cfg.MetricsPort)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	log.Info("Shutting down", "signal", sig)

	for _, updater := range updaters {
		updater.Stop()
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
