package flags

import (
	"time"

	"github.com/urfave/cli"
)

const (
	defaultPollInterval  = 15 * time.Second
	defaultUpdateTimeout = 90 * time.Minute
)

var (
	EthereumHttpUrlFlag = cli.StringFlag{
		Name:   "ethereum-http-url",
		Value:  "http://127.0.0.1:8545",
		Usage:  "Execution layer HTTP endpoint",
		EnvVar: "REGISTRY_INDEXER_ETHEREUM_HTTP_URL",
	}
	BeaconHttpUrlFlag = cli.StringFlag{
		Name:   "beacon-http-url",
		Usage:  "Consensus layer REST endpoint, enables the validator mirror when set",
		EnvVar: "REGISTRY_INDEXER_BEACON_HTTP_URL",
	}
	RegistryAddressFlag = cli.StringFlag{
		Name:   "registry-address",
		Usage:  "Address of the node operators registry contract",
		EnvVar: "REGISTRY_INDEXER_REGISTRY_ADDRESS",
	}
	RegistryEnabledFlag = cli.BoolTFlag{
		Name:   "registry-enabled",
		Usage:  "Enable the registry key mirror update loop",
		EnvVar: "REGISTRY_INDEXER_REGISTRY_ENABLED",
	}
	ValidatorModeFlag = cli.BoolFlag{
		Name:   "validator-mode",
		Usage:  "Mirror used signing keys only instead of the full advertised key set",
		EnvVar: "REGISTRY_INDEXER_VALIDATOR_MODE",
	}
	DatabasePathFlag = cli.StringFlag{
		Name:   "db-path",
		Value:  "registry.db",
		Usage:  "Path of the sqlite database file",
		EnvVar: "REGISTRY_INDEXER_DB_PATH",
	}
	PollIntervalFlag = cli.DurationFlag{
		Name:   "poll-interval",
		Value:  defaultPollInterval,
		Usage:  "Interval between update cycles",
		EnvVar: "REGISTRY_INDEXER_POLL_INTERVAL",
	}
	UpdateTimeoutFlag = cli.DurationFlag{
		Name:   "update-timeout",
		Value:  defaultUpdateTimeout,
		Usage:  "Fatal deadline when no update cycle succeeds",
		EnvVar: "REGISTRY_INDEXER_UPDATE_TIMEOUT",
	}
	FetchConcurrencyFlag = cli.IntFlag{
		Name:   "fetch-concurrency",
		Value:  4,
		Usage:  "Max concurrent per-operator key fetches",
		EnvVar: "REGISTRY_INDEXER_FETCH_CONCURRENCY",
	}
	HTTPHostFlag = cli.StringFlag{
		Name:   "http.addr",
		Value:  "127.0.0.1",
		Usage:  "Read API listening interface",
		EnvVar: "REGISTRY_INDEXER_HTTP_ADDR",
	}
	HTTPPortFlag = cli.IntFlag{
		Name:   "http.port",
		Value:  9980,
		Usage:  "Read API listening port",
		EnvVar: "REGISTRY_INDEXER_HTTP_PORT",
	}
	LogLevelFlag = cli.IntFlag{
		Name:   "loglevel",
		Value:  3,
		Usage:  "log level to emit to the screen",
		EnvVar: "REGISTRY_INDEXER_LOG_LEVEL",
	}
	MetricsEnabledFlag = cli.BoolFlag{
		Name:   "metrics",
		Usage:  "Enable metrics collection and reporting",
		EnvVar: "REGISTRY_INDEXER_METRICS_ENABLE",
	}
	MetricsHTTPFlag = cli.StringFlag{
		Name:   "metrics.addr",
		Usage:  "Enable stand-alone metrics HTTP server listening interface",
		Value:  "127.0.0.1",
		EnvVar: "REGISTRY_INDEXER_METRICS_HTTP",
	}
	MetricsPortFlag = cli.IntFlag{
		Name:   "metrics.port",
		Usage:  "Metrics HTTP server listening port",
		Value:  9107,
		EnvVar: "REGISTRY_INDEXER_METRICS_PORT",
	}
)

var Flags = []cli.Flag{
	EthereumHttpUrlFlag,
	BeaconHttpUrlFlag,
	RegistryAddressFlag,
	RegistryEnabledFlag,
	ValidatorModeFlag,
	DatabasePathFlag,
	PollIntervalFlag,
	UpdateTimeoutFlag,
	FetchConcurrencyFlag,
	HTTPHostFlag,
	HTTPPortFlag,
	LogLevelFlag,
	MetricsEnabledFlag,
	MetricsHTTPFlag,
	MetricsPortFlag,
}
