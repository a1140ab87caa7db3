package registry

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"

	"github.com/stakemirror/registry-indexer/flags"
	"github.com/urfave/cli"
)

// Config represents the configuration options for the registry indexer
type Config struct {
	EthereumHttpUrl  string
	BeaconHttpUrl    string
	RegistryAddress  common.Address
	RegistryEnabled  bool
	ValidatorMode    bool
	DatabasePath     string
	PollInterval     time.Duration
	UpdateTimeout    time.Duration
	FetchConcurrency int
	HTTPHost         string
	HTTPPort         int
	LogLevel         int
	// Metrics config
	MetricsEnabled bool
	MetricsHTTP    string
	MetricsPort    int
}

// NewConfig creates a new Config
func NewConfig(ctx *cli.Context) *Config {
	cfg := Config{}
	cfg.EthereumHttpUrl = ctx.String(flags.EthereumHttpUrlFlag.Name)
	cfg.BeaconHttpUrl = ctx.String(flags.BeaconHttpUrlFlag.Name)
	cfg.RegistryEnabled = ctx.BoolT(flags.RegistryEnabledFlag.Name)
	cfg.ValidatorMode = ctx.Bool(flags.ValidatorModeFlag.Name)
	cfg.DatabasePath = ctx.String(flags.DatabasePathFlag.Name)
	cfg.PollInterval = ctx.Duration(flags.PollIntervalFlag.Name)
	cfg.UpdateTimeout = ctx.Duration(flags.UpdateTimeoutFlag.Name)
	cfg.FetchConcurrency = ctx.Int(flags.FetchConcurrencyFlag.Name)
	cfg.HTTPHost = ctx.String(flags.HTTPHostFlag.Name)
	cfg.HTTPPort = ctx.Int(flags.HTTPPortFlag.Name)
	cfg.LogLevel = ctx.Int(flags.LogLevelFlag.Name)

	addr := ctx.String(flags.RegistryAddressFlag.Name)
	if addr == "" {
		log.Crit("No registry address configured")
	}
	if !common.IsHexAddress(addr) {
		log.Crit("Invalid registry address", "address", addr)
	}
	cfg.RegistryAddress = common.HexToAddress(addr)

	if cfg.PollInterval <= 0 {
		log.Crit("Poll interval must be positive", "interval", cfg.PollInterval)
	}
	if cfg.UpdateTimeout <= 0 {
		log.Crit("Update timeout must be positive", "timeout", cfg.UpdateTimeout)
	}
	if cfg.FetchConcurrency <= 0 {
		cfg.FetchConcurrency = 1
	}

	cfg.MetricsEnabled = ctx.Bool(flags.MetricsEnabledFlag.Name)
	cfg.MetricsHTTP = ctx.String(flags.MetricsHTTPFlag.Name)
	cfg.MetricsPort = ctx.Int(flags.MetricsPortFlag.Name)

	return &cfg
}
