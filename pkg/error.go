package pkg

import "errors"

// DMA and transfer errors.
var (
	// ErrInvalidChannel indicates a channel selector outside the valid range.
	ErrInvalidChannel = errors.New("invalid channel")

	// ErrNoResources indicates the free descriptor pool is exhausted.
	ErrNoResources = errors.New("no free descriptors available")

	// ErrDescQueued indicates the descriptor is already linked into a queue.
	ErrDescQueued = errors.New("descriptor already queued")

	// ErrNotAcquired indicates the descriptor was not acquired from the pool.
	ErrNotAcquired = errors.New("descriptor not acquired")

	// ErrForeignDesc indicates the descriptor belongs to a different registry.
	ErrForeignDesc = errors.New("descriptor not owned by registry")

	// ErrNilTransfer indicates no hardware transfer descriptor is attached.
	ErrNilTransfer = errors.New("no transfer descriptor attached")

	// ErrChainLimit indicates the per-channel LLI chain limit would be exceeded.
	ErrChainLimit = errors.New("chain limit exceeded")

	// ErrQueueEmpty indicates a completion arrived for an empty progress queue.
	ErrQueueEmpty = errors.New("progress queue empty")

	// ErrAborted indicates the transfer was aborted before completion.
	ErrAborted = errors.New("transfer aborted")

	// ErrBus indicates a bus error reported by the DMA engine.
	ErrBus = errors.New("bus error")

	// ErrTimeout indicates a transfer timeout.
	ErrTimeout = errors.New("transfer timeout")

	// ErrCancelled indicates a cancelled transfer.
	ErrCancelled = errors.New("transfer cancelled")

	// ErrAlreadyRunning indicates the engine is already running.
	ErrAlreadyRunning = errors.New("already running")

	// ErrNotRunning indicates the engine is not running.
	ErrNotRunning = errors.New("not running")

	// ErrNotInitialized indicates Init was not called before Start.
	ErrNotInitialized = errors.New("not initialized")

	// ErrBusy indicates the engine cannot accept more work right now.
	ErrBusy = errors.New("resource busy")

	// ErrInvalidParameter indicates an invalid parameter was provided.
	ErrInvalidParameter = errors.New("invalid parameter")
)

// Status represents the completion status of a DMA transfer chain.
type Status int

// Transfer completion status values.
const (
	StatusSuccess   Status = iota // Chain completed successfully
	StatusAborted                 // Chain was aborted before the hardware finished
	StatusBusError                // DMA engine reported a bus error
	StatusTimeout                 // Chain timed out
	StatusCancelled               // Chain was cancelled
)

// String returns a string representation of the completion status.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusAborted:
		return "aborted"
	case StatusBusError:
		return "bus error"
	case StatusTimeout:
		return "timeout"
	case StatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Error returns the corresponding error for the completion status.
func (s Status) Error() error {
	switch s {
	case StatusSuccess:
		return nil
	case StatusAborted:
		return ErrAborted
	case StatusTimeout:
		return ErrTimeout
	case StatusCancelled:
		return ErrCancelled
	default:
		return ErrBus
	}
}
