package mem

import (
	"context"
	"sync"
	"time"

	"github.com/ardnew/softmac/hal"
	"github.com/ardnew/softmac/pkg"
)

// Pending submissions buffered per channel before Submit reports busy.
const queueDepth = 8

// Engine implements [hal.Engine] by copying chain buffers with the CPU
// on a background goroutine, simulating an asynchronous DMA controller
// for tests and examples.
type Engine struct {
	latency time.Duration // artificial delay per chain

	mu       sync.Mutex
	running  bool
	complete hal.CompletionFunc
	jobs     chan job

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

type job struct {
	ch hal.Channel
	td *hal.TransferDesc
}

// NewEngine creates a memory-copy engine. latency is an artificial delay
// applied to each chain; zero completes as fast as the scheduler allows.
func NewEngine(latency time.Duration) *Engine {
	return &Engine{latency: latency}
}

// Init prepares the engine. The context bounds the engine's lifetime:
// cancelling it has the same effect as Stop.
func (e *Engine) Init(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.ctx, e.cancel = context.WithCancel(ctx)
	e.jobs = make(chan job, hal.NumChannels*queueDepth)

	pkg.LogInfo(pkg.ComponentEngine, "memory-copy engine initialized", "latency", e.latency)
	return nil
}

// OnComplete registers the completion handler invoked once per chain.
func (e *Engine) OnComplete(fn hal.CompletionFunc) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.complete = fn
}

// Start launches the service goroutine.
func (e *Engine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.running {
		return pkg.ErrAlreadyRunning
	}
	if e.jobs == nil {
		return pkg.ErrNotInitialized
	}
	e.running = true
	e.wg.Add(1)
	go e.run()

	pkg.LogInfo(pkg.ComponentEngine, "memory-copy engine started")
	return nil
}

// Stop cancels the service goroutine and waits for it to exit. Chains
// still pending are reported with pkg.StatusCancelled.
func (e *Engine) Stop() error {
	e.mu.Lock()
	if !e.running {
		e.mu.Unlock()
		return pkg.ErrNotRunning
	}
	e.running = false
	cancel := e.cancel
	e.mu.Unlock()

	cancel()
	e.wg.Wait()

	pkg.LogInfo(pkg.ComponentEngine, "memory-copy engine stopped")
	return nil
}

// Submit enqueues a transfer chain for asynchronous servicing. Submit
// never blocks on the transfer; it fails with pkg.ErrBusy when the
// submission buffer is full.
func (e *Engine) Submit(ch hal.Channel, td *hal.TransferDesc) error {
	if !ch.Valid() {
		return pkg.ErrInvalidChannel
	}
	if td == nil {
		return pkg.ErrNilTransfer
	}

	e.mu.Lock()
	running := e.running
	jobs := e.jobs
	e.mu.Unlock()

	if !running {
		return pkg.ErrNotRunning
	}
	select {
	case jobs <- job{ch: ch, td: td}:
		return nil
	default:
		return pkg.ErrBusy
	}
}

// run services submissions until the engine context is cancelled.
func (e *Engine) run() {
	defer e.wg.Done()

	for {
		select {
		case <-e.ctx.Done():
			// Flush pending work so no completion is silently lost.
			for {
				select {
				case j := <-e.jobs:
					e.report(j.ch, pkg.StatusCancelled)
				default:
					return
				}
			}
		case j := <-e.jobs:
			e.service(j)
		}
	}
}

// service walks one chain, copying each entry, and reports the result.
func (e *Engine) service(j job) {
	if e.latency > 0 {
		select {
		case <-e.ctx.Done():
			e.report(j.ch, pkg.StatusCancelled)
			return
		case <-time.After(e.latency):
		}
	}

	status := pkg.StatusSuccess
	entries := 0
	for td := j.td; td != nil; td = td.Next {
		if td.Length < 0 || td.Length > len(td.Src) || td.Length > len(td.Dst) {
			status = pkg.StatusBusError
			break
		}
		copy(td.Dst[:td.Length], td.Src[:td.Length])
		entries++
	}

	pkg.LogDebug(pkg.ComponentEngine, "chain serviced",
		"channel", j.ch.String(), "entries", entries, "status", status.String())
	e.report(j.ch, status)
}

// report delivers a completion to the registered handler.
func (e *Engine) report(ch hal.Channel, status pkg.Status) {
	e.mu.Lock()
	fn := e.complete
	e.mu.Unlock()

	if fn == nil {
		pkg.LogWarn(pkg.ComponentEngine, "completion dropped, no handler",
			"channel", ch.String(), "status", status.String())
		return
	}
	fn(ch, status)
}

// Ensure Engine implements hal.Engine.
var _ hal.Engine = (*Engine)(nil)
