package metrics

import (
	"fmt"
	"net"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "registry_indexer"

var (
	RegistryStats = struct {
		// LastBlockNumberGauge block number of the last applied snapshot
		LastBlockNumberGauge prometheus.Gauge
		// LastBlockTimestampGauge timestamp of the last applied snapshot
		LastBlockTimestampGauge prometheus.Gauge
		// KeysOpIndexGauge contract key mutation counter at the last snapshot
		KeysOpIndexGauge prometheus.Gauge
		// OperatorsGauge operator count at the last slow-path cycle
		OperatorsGauge prometheus.Gauge
		// KeysFetchedGauge keys refetched during the last slow-path cycle
		KeysFetchedGauge prometheus.Gauge
		// UpdateDurationGauge wall time of the last update cycle
		UpdateDurationGauge prometheus.Gauge
		// LastSlotGauge consensus slot of the validator mirror
		LastSlotGauge prometheus.Gauge
		// ValidatorsGauge mirrored validator count
		ValidatorsGauge prometheus.Gauge
	}{
		LastBlockNumberGauge:    newGauge("last_block_number", "Block number of the last applied registry snapshot"),
		LastBlockTimestampGauge: newGauge("last_block_timestamp", "Timestamp of the last applied registry snapshot"),
		KeysOpIndexGauge:        newGauge("keys_op_index", "Contract keysOpIndex at the last applied snapshot"),
		OperatorsGauge:          newGauge("operators", "Mirrored operator count"),
		KeysFetchedGauge:        newGauge("keys_fetched", "Signing keys refetched in the last slow-path cycle"),
		UpdateDurationGauge:     newGauge("update_duration_seconds", "Wall time of the last update cycle"),
		LastSlotGauge:           newGauge("last_slot", "Consensus slot of the last validator mirror cycle"),
		ValidatorsGauge:         newGauge("validators", "Mirrored validator count"),
	}
)

func newGauge(name, help string) prometheus.Gauge {
	return prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      name,
		Help:      help,
	})
}

func InitAndRegisterStats(r prometheus.Registerer) {
	r.MustRegister(
		RegistryStats.LastBlockNumberGauge,
		RegistryStats.LastBlockTimestampGauge,
		RegistryStats.KeysOpIndexGauge,
		RegistryStats.OperatorsGauge,
		RegistryStats.KeysFetchedGauge,
		RegistryStats.UpdateDurationGauge,
		RegistryStats.LastSlotGauge,
		RegistryStats.ValidatorsGauge,
	)
}

// Serve starts the stand-alone metrics HTTP server.
func Serve(hostname string, port int) (*http.Server, error) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{
		Addr:    net.JoinHostPort(hostname, strconv.Itoa(port)),
		Handler: mux,
	}
	listener, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return nil, fmt.Errorf("bind metrics server: %w", err)
	}
	go func() {
		_ = srv.Serve(listener)
	}()
	return srv, nil
}
