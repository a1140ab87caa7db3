package beacon

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"

	ometrics "github.com/stakemirror/registry-indexer/metrics"
)

// Meta pins the mirrored validator set to a consensus layer state.
type Meta struct {
	Slot      uint64
	BlockRoot string
}

// HeaderClient is the consensus layer surface the mirror reads.
type HeaderClient interface {
	FinalizedHeader(ctx context.Context) (Header, error)
	Validators(ctx context.Context, stateID string, pubkeys [][]byte) ([]Validator, error)
}

// Store is the persistence surface the mirror writes through.
type Store interface {
	GetConsensusMeta(ctx context.Context) (*Meta, error)
	// ReplaceValidators swaps the mirrored validator set and its meta in one
	// transaction.
	ReplaceValidators(ctx context.Context, meta Meta, validators []Validator) error
	UsedKeyPubkeys(ctx context.Context, module common.Address) ([][]byte, error)
}

// Mirror keeps a local copy of the consensus layer validator entries for the
// registry's used signing keys. It follows the same skeleton as the registry
// reconciler: resolve a finalized snapshot, skip when nothing moved, refetch
// and swap atomically otherwise.
type Mirror struct {
	module common.Address
	client HeaderClient
	store  Store
}

func NewMirror(module common.Address, client HeaderClient, store Store) *Mirror {
	return &Mirror{module: module, client: client, store: store}
}

// RunOnce runs one mirror cycle and reports the observed finalized slot.
func (m *Mirror) RunOnce(ctx context.Context) (uint64, error) {
	header, err := m.client.FinalizedHeader(ctx)
	if err != nil {
		return 0, err
	}
	prev, err := m.store.GetConsensusMeta(ctx)
	if err != nil {
		return 0, fmt.Errorf("load consensus meta: %w", err)
	}
	if prev != nil && prev.Slot > header.Slot {
		log.Warn("Finalized header is older than the mirrored state, skipping",
			"resolved", header.Slot, "stored", prev.Slot)
		return prev.Slot, nil
	}
	if prev != nil && prev.Slot == header.Slot && prev.BlockRoot == header.Root {
		return header.Slot, nil
	}

	pubkeys, err := m.store.UsedKeyPubkeys(ctx, m.module)
	if err != nil {
		return 0, fmt.Errorf("load used pubkeys: %w", err)
	}

	start := time.Now()
	validators, err := m.client.Validators(ctx, strconv.FormatUint(header.Slot, 10), pubkeys)
	if err != nil {
		return 0, err
	}
	meta := Meta{Slot: header.Slot, BlockRoot: header.Root}
	if err := m.store.ReplaceValidators(ctx, meta, validators); err != nil {
		return 0, fmt.Errorf("replace validators: %w", err)
	}

	log.Info("Validator set mirrored", "slot", header.Slot,
		"validators", len(validators), "elapsed", time.Since(start))
	ometrics.RegistryStats.LastSlotGauge.Set(float64(header.Slot))
	ometrics.RegistryStats.ValidatorsGauge.Set(float64(len(validators)))

	return header.Slot, nil
}
