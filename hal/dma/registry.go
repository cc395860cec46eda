package dma

import (
	"context"
	"math"
	"sync"

	"github.com/ardnew/softmac/hal"
	"github.com/ardnew/softmac/pkg"
)

// DefaultPoolSize is the descriptor pool size used when Config.PoolSize
// is zero.
const DefaultPoolSize = 8

// Config parameterizes a Registry.
type Config struct {
	// PoolSize is the fixed number of descriptor slots allocated at
	// construction. Descriptors are never created or destroyed afterward,
	// only moved between the free pool and the progress queues.
	// Defaults to DefaultPoolSize when zero.
	PoolSize int

	// MaxLLI caps the number of chain entries in flight per channel.
	// Zero means unlimited.
	MaxLLI int

	// Engine is the DMA engine driven by the registry. May be nil, in
	// which case completions are injected manually via Registry.Complete.
	Engine hal.Engine
}

// Registry holds the fixed pool of DMA descriptors organized into one
// free queue and one progress queue per channel.
//
// The registry keeps at most one transfer chain in flight per channel:
// pushing onto an empty queue submits the chain to the engine, and each
// completion submits the next queued chain. All exported methods are
// safe for concurrent use; callbacks run outside the registry lock.
type Registry struct {
	mu     sync.Mutex
	descs  []Desc
	free   ring
	prog   [hal.NumChannels]ring
	lliCnt [hal.NumChannels]int

	engine hal.Engine
	maxLLI int
	stats  *stats
}

// New creates a registry with all descriptor slots in the free pool,
// both progress queues empty, and both LLI counters zero.
func New(cfg Config) (*Registry, error) {
	size := cfg.PoolSize
	if size == 0 {
		size = DefaultPoolSize
	}
	if size < 0 || size > math.MaxUint16 || cfg.MaxLLI < 0 {
		return nil, pkg.ErrInvalidParameter
	}

	r := &Registry{
		descs:  make([]Desc, size),
		free:   newRing(size),
		engine: cfg.Engine,
		maxLLI: cfg.MaxLLI,
		stats:  newStats(),
	}
	for ch := 0; ch < hal.NumChannels; ch++ {
		r.prog[ch] = newRing(size)
	}
	for i := range r.descs {
		r.descs[i].reg = r
		r.descs[i].index = uint16(i)
		r.free.push(uint16(i))
	}
	r.updateGaugesLocked()

	pkg.LogInfo(pkg.ComponentDMA, "registry initialized", "pool", size, "maxLLI", cfg.MaxLLI)
	return r, nil
}

// Start initializes and starts the bound engine, registering the
// registry as its completion handler. A registry without an engine
// starts trivially.
func (r *Registry) Start(ctx context.Context) error {
	if r.engine == nil {
		return nil
	}
	r.engine.OnComplete(r.onComplete)
	if err := r.engine.Init(ctx); err != nil {
		return err
	}
	return r.engine.Start()
}

// Stop aborts all queued descriptors and stops the bound engine.
func (r *Registry) Stop() error {
	for ch := hal.Channel(0); ch < hal.NumChannels; ch++ {
		r.Abort(ch)
	}
	if r.engine == nil {
		return nil
	}
	return r.engine.Stop()
}

// Acquire takes a descriptor slot from the free pool. The caller fills
// in Transfer and Callback before pushing. Returns pkg.ErrNoResources
// when the pool is exhausted.
func (r *Registry) Acquire() (*Desc, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, ok := r.free.pop()
	if !ok {
		return nil, pkg.ErrNoResources
	}
	d := &r.descs[idx]
	d.Transfer = nil
	d.Callback = nil
	d.state = descAcquired
	r.updateGaugesLocked()
	return d, nil
}

// Release returns an acquired but never pushed descriptor to the free
// pool. Queued descriptors are recycled by completion, not by Release.
func (r *Registry) Release(d *Desc) error {
	if d == nil || d.reg != r {
		return pkg.ErrForeignDesc
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	switch d.state {
	case descQueued:
		return pkg.ErrDescQueued
	case descFree:
		return pkg.ErrNotAcquired
	}
	d.resetLocked()
	r.free.push(d.index)
	r.updateGaugesLocked()
	return nil
}

// Push appends d to the tail of the progress queue for ch. If the queue
// was previously empty the chain is submitted to the engine immediately.
//
// The descriptor must have been acquired from this registry and must
// carry a transfer chain. Precondition violations are reported as
// sentinel errors and leave the registry untouched.
func (r *Registry) Push(d *Desc, ch hal.Channel) error {
	if !ch.Valid() {
		r.stats.rejected.Inc(1)
		return pkg.ErrInvalidChannel
	}
	if d == nil || d.reg != r {
		r.stats.rejected.Inc(1)
		return pkg.ErrForeignDesc
	}
	if d.Transfer == nil {
		r.stats.rejected.Inc(1)
		return pkg.ErrNilTransfer
	}

	r.mu.Lock()
	switch d.state {
	case descQueued:
		r.mu.Unlock()
		r.stats.rejected.Inc(1)
		return pkg.ErrDescQueued
	case descFree:
		r.mu.Unlock()
		r.stats.rejected.Inc(1)
		return pkg.ErrNotAcquired
	}

	n := d.Transfer.ChainLen()
	if r.maxLLI > 0 && r.lliCnt[ch]+n > r.maxLLI {
		r.mu.Unlock()
		r.stats.rejected.Inc(1)
		return pkg.ErrChainLimit
	}

	wasEmpty := r.prog[ch].empty()
	r.prog[ch].push(d.index)
	d.state = descQueued
	d.channel = ch
	d.lli = n
	r.lliCnt[ch] += n
	td := d.Transfer
	r.stats.push.Inc(1)
	r.updateGaugesLocked()
	r.mu.Unlock()

	pkg.LogDebug(pkg.ComponentDMA, "descriptor queued",
		"channel", ch.String(), "chain", n, "kick", wasEmpty)

	if wasEmpty {
		r.kick(ch, td)
	}
	return nil
}

// Complete pops the head descriptor of the progress queue for ch,
// returns its slot to the free pool, invokes its callback with status,
// and submits the next queued chain to the engine. This is the path a
// completion interrupt takes via the engine's handler; tests may call it
// directly.
func (r *Registry) Complete(ch hal.Channel, status pkg.Status) error {
	if !ch.Valid() {
		return pkg.ErrInvalidChannel
	}

	r.mu.Lock()
	idx, ok := r.prog[ch].pop()
	if !ok {
		r.mu.Unlock()
		return pkg.ErrQueueEmpty
	}
	d := &r.descs[idx]
	cb := d.Callback
	r.lliCnt[ch] -= d.lli
	d.resetLocked()
	r.free.push(idx)

	var next *hal.TransferDesc
	if head, ok := r.prog[ch].peek(); ok {
		next = r.descs[head].Transfer
	}
	r.stats.complete.Inc(1)
	r.updateGaugesLocked()
	r.mu.Unlock()

	pkg.LogDebug(pkg.ComponentDMA, "descriptor completed",
		"channel", ch.String(), "status", status.String())

	if cb != nil {
		cb(status)
	}
	if next != nil {
		r.kick(ch, next)
	}
	return nil
}

// Abort drains the progress queue for ch, recycling every descriptor and
// invoking its callback with pkg.StatusAborted. Returns the number of
// descriptors aborted. The engine is not told to halt a chain it is
// already executing; a completion arriving for an aborted chain is
// dropped with a warning.
func (r *Registry) Abort(ch hal.Channel) int {
	if !ch.Valid() {
		return 0
	}

	r.mu.Lock()
	var cbs []Callback
	n := 0
	for {
		idx, ok := r.prog[ch].pop()
		if !ok {
			break
		}
		d := &r.descs[idx]
		if d.Callback != nil {
			cbs = append(cbs, d.Callback)
		}
		r.lliCnt[ch] -= d.lli
		d.resetLocked()
		r.free.push(idx)
		n++
	}
	if n > 0 {
		r.stats.abort.Inc(int64(n))
		r.updateGaugesLocked()
	}
	r.mu.Unlock()

	if n > 0 {
		pkg.LogInfo(pkg.ComponentDMA, "channel aborted", "channel", ch.String(), "count", n)
	}
	for _, cb := range cbs {
		cb(pkg.StatusAborted)
	}
	return n
}

// PoolSize returns the fixed number of descriptor slots.
func (r *Registry) PoolSize() int {
	return len(r.descs)
}

// Counts returns the current free-pool depth and per-channel progress
// queue depths. The free depth plus all progress depths plus the number
// of descriptors held acquired by callers always equals PoolSize.
func (r *Registry) Counts() (free int, prog [hal.NumChannels]int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	free = r.free.depth()
	for ch := 0; ch < hal.NumChannels; ch++ {
		prog[ch] = r.prog[ch].depth()
	}
	return free, prog
}

// LLICount returns the number of chain entries currently in flight on ch.
func (r *Registry) LLICount(ch hal.Channel) int {
	if !ch.Valid() {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lliCnt[ch]
}

// onComplete adapts the engine's completion signal to Complete.
func (r *Registry) onComplete(ch hal.Channel, status pkg.Status) {
	if err := r.Complete(ch, status); err != nil {
		pkg.LogWarn(pkg.ComponentDMA, "spurious completion dropped",
			"channel", ch.String(), "status", status.String(), "error", err)
	}
}

// kick submits the head chain for ch to the engine, if one is bound.
func (r *Registry) kick(ch hal.Channel, td *hal.TransferDesc) {
	if r.engine == nil {
		return
	}
	if err := r.engine.Submit(ch, td); err != nil {
		pkg.LogError(pkg.ComponentDMA, "engine submit failed",
			"channel", ch.String(), "error", err)
	}
}
