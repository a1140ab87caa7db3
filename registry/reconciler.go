package registry

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"
	"golang.org/x/sync/errgroup"

	ometrics "github.com/stakemirror/registry-indexer/metrics"
)

// Reconciler makes the store equal to the contract's view at a specific
// block hash. It is the only writer of registry state.
type Reconciler struct {
	module      common.Address
	mode        Mode
	chain       ChainReader
	fetcher     Fetcher
	store       Store
	concurrency int
}

func NewReconciler(module common.Address, mode Mode, chain ChainReader, fetcher Fetcher, store Store, concurrency int) *Reconciler {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Reconciler{
		module:      module,
		mode:        mode,
		chain:       chain,
		fetcher:     fetcher,
		store:       store,
		concurrency: concurrency,
	}
}

// Update runs one reconciliation cycle against the given block reference and
// returns the meta snapshot the store was left at.
//
// Operators and meta commit before keys. An abort between the two phases
// leaves trailing keys stale; the meta committed with the operators carries a
// zero block hash, so the next cycle takes the slow path and refetches every
// operator's keys from index 0, converging to the state an uninterrupted
// cycle would have left.
func (r *Reconciler) Update(ctx context.Context, ref BlockRef) (*Meta, error) {
	prevMeta, err := r.store.GetMeta(ctx, r.module)
	if err != nil {
		return nil, fmt.Errorf("load meta: %w", err)
	}

	snapshot, err := r.chain.ResolveBlock(ctx, ref)
	if err != nil {
		return nil, err
	}
	keysOpIndex, err := r.fetcher.FetchKeysOpIndex(ctx, snapshot.Hash)
	if err != nil {
		return nil, err
	}
	currMeta := Meta{
		ModuleAddress: r.module,
		BlockNumber:   snapshot.Number,
		BlockHash:     snapshot.Hash,
		Timestamp:     snapshot.Timestamp,
		KeysOpIndex:   keysOpIndex,
	}

	if prevMeta != nil && prevMeta.BlockNumber > currMeta.BlockNumber {
		log.Warn("Resolved block is older than the mirrored state, skipping",
			"resolved", currMeta.BlockNumber, "stored", prevMeta.BlockNumber)
		return prevMeta, nil
	}

	if compareMeta(prevMeta, currMeta) {
		// Nothing mutated; record the fresher block and stop.
		if err := r.store.ReplaceMeta(ctx, currMeta); err != nil {
			return nil, fmt.Errorf("replace meta: %w", err)
		}
		return &currMeta, nil
	}

	prevOperators, err := r.store.FindAllOperators(ctx, r.module)
	if err != nil {
		return nil, fmt.Errorf("load operators: %w", err)
	}
	prevByIndex := make(map[uint32]*Operator, len(prevOperators))
	// A zero stored hash marks a cycle that stopped after its operator commit
	// and before its key phase committed. The stored operators already carry
	// that cycle's values while their keys may not, so none of them may skip
	// a key prefix.
	interrupted := prevMeta != nil && prevMeta.BlockHash == (common.Hash{})
	if !interrupted {
		for i := range prevOperators {
			prevByIndex[prevOperators[i].Index] = &prevOperators[i]
		}
	}

	currOperators, err := r.fetcher.FetchOperators(ctx, snapshot.Hash)
	if err != nil {
		return nil, err
	}
	// The operator transaction carries the new block number and timestamp, a
	// zero hash and the previous counter. Hash and counter are the fast-path
	// sentinels: they only advance once the key phase committed, so an abort
	// in between never looks like a completed cycle.
	provisional := currMeta
	provisional.BlockHash = common.Hash{}
	provisional.KeysOpIndex = 0
	if prevMeta != nil {
		provisional.KeysOpIndex = prevMeta.KeysOpIndex
	}
	if err := r.store.ApplyOperators(ctx, provisional, currOperators); err != nil {
		return nil, fmt.Errorf("apply operators: %w", err)
	}

	start := time.Now()
	var fetched int
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	counts := make([]int, len(currOperators))
	for i, curr := range currOperators {
		i, curr := i, curr
		prev := prevByIndex[curr.Index]
		g.Go(func() error {
			to := getToIndex(r.mode, curr)
			from := getFromIndex(prev, curr, to)
			keys, err := r.fetcher.FetchKeys(gctx, curr.Index, from, to, snapshot.Hash)
			if err != nil {
				return err
			}
			counts[i] = len(keys)
			if len(keys) == 0 {
				return nil
			}
			return r.store.ApplyKeys(gctx, keys)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := r.store.ReplaceMeta(ctx, currMeta); err != nil {
		return nil, fmt.Errorf("finalize meta: %w", err)
	}
	for _, n := range counts {
		fetched += n
	}

	log.Info("Registry reconciled", "block", currMeta.BlockNumber,
		"keysOpIndex", currMeta.KeysOpIndex, "operators", len(currOperators),
		"keysFetched", fetched, "elapsed", time.Since(start))
	ometrics.RegistryStats.OperatorsGauge.Set(float64(len(currOperators)))
	ometrics.RegistryStats.KeysFetchedGauge.Set(float64(fetched))

	return &currMeta, nil
}

// RunOnce resolves the finalized block, runs one update cycle and reports
// the observed block number. This is the function the update loop drives.
func (r *Reconciler) RunOnce(ctx context.Context) (uint64, error) {
	start := time.Now()
	meta, err := r.Update(ctx, FinalizedBlock())
	if err != nil {
		return 0, err
	}
	ometrics.RegistryStats.UpdateDurationGauge.Set(time.Since(start).Seconds())
	if meta == nil {
		return 0, nil
	}
	ometrics.RegistryStats.LastBlockNumberGauge.Set(float64(meta.BlockNumber))
	ometrics.RegistryStats.LastBlockTimestampGauge.Set(float64(meta.Timestamp))
	ometrics.RegistryStats.KeysOpIndexGauge.Set(float64(meta.KeysOpIndex))
	return meta.BlockNumber, nil
}
