package registry

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ethereum/go-ethereum/log"
)

// UpdateFn runs one update cycle and reports the block number (or slot) it
// observed.
type UpdateFn func(ctx context.Context) (uint64, error)

// Updater drives an update function on a fixed interval.
//
// Overlapping triggers are dropped, not queued: a cycle still in flight when
// the ticker fires wins, and the late tick is discarded. A stall watchdog
// terminates the process when no cycle succeeds within the deadline; the
// deployment's supervisor is expected to restart it.
type Updater struct {
	name     string
	update   UpdateFn
	interval time.Duration
	timeout  time.Duration

	inflight  sync.Mutex
	lastBlock atomic.Uint64

	mu     sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	wdMu     sync.Mutex
	watchdog *time.Timer

	// fatal is log.Crit in production; tests swap it out.
	fatal func(msg string, ctx ...interface{})
}

func NewUpdater(name string, update UpdateFn, interval, timeout time.Duration) *Updater {
	return &Updater{
		name:     name,
		update:   update,
		interval: interval,
		timeout:  timeout,
		fatal:    log.Crit,
	}
}

// Start kicks an initial cycle and schedules one per interval in a
// background routine. Duplicate start calls are ignored.
func (u *Updater) Start() {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.ctx != nil {
		return // already running
	}
	u.ctx, u.cancel = context.WithCancel(context.Background())
	u.wdMu.Lock()
	u.watchdog = time.AfterFunc(u.timeout, func() {
		u.fatal("No successful update within deadline",
			"name", u.name, "deadline", u.timeout,
			"lastBlock", u.lastBlock.Load(), "err", ErrValidatorsOutdated)
	})
	u.wdMu.Unlock()

	ctx := u.ctx
	u.wg.Add(1)
	go func() {
		defer u.wg.Done()
		u.trigger(ctx)
		ticker := time.NewTicker(u.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				u.trigger(ctx)
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop cancels the loop and waits for an in-flight cycle to notice.
// Duplicate calls are ignored.
func (u *Updater) Stop() {
	u.mu.Lock()
	if u.ctx == nil {
		u.mu.Unlock()
		return
	}
	cancel := u.cancel
	u.ctx = nil
	u.cancel = nil
	u.mu.Unlock()

	cancel()
	u.wg.Wait()

	u.wdMu.Lock()
	if u.watchdog != nil {
		u.watchdog.Stop()
		u.watchdog = nil
	}
	u.wdMu.Unlock()
}

// LastBlock reports the block number observed by the most recent successful
// cycle.
func (u *Updater) LastBlock() uint64 {
	return u.lastBlock.Load()
}

func (u *Updater) trigger(ctx context.Context) {
	if !u.inflight.TryLock() {
		log.Warn("Update already in progress, dropping trigger", "name", u.name)
		return
	}
	defer u.inflight.Unlock()

	block, err := u.update(ctx)
	if err != nil {
		log.Error("Update cycle failed", "name", u.name, "message", err)
		return
	}
	u.lastBlock.Store(block)
	u.wdMu.Lock()
	if u.watchdog != nil {
		u.watchdog.Reset(u.timeout)
	}
	u.wdMu.Unlock()
}
