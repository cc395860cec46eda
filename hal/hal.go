package hal

import (
	"context"

	"github.com/ardnew/softmac/pkg"
)

// Channel selects one of the baseband DMA transfer directions.
type Channel uint8

// DMA channel constants.
const (
	ChannelDownload Channel = iota // Host memory to baseband (TX path)
	ChannelUpload                  // Baseband to host memory (RX path)
)

// NumChannels is the number of independent DMA channels.
const NumChannels = 2

// Valid reports whether c is a usable channel selector.
func (c Channel) Valid() bool {
	return c < NumChannels
}

// String returns a human-readable channel name.
func (c Channel) String() string {
	switch c {
	case ChannelDownload:
		return "download"
	case ChannelUpload:
		return "upload"
	default:
		return "invalid"
	}
}

// TransferDesc describes one hardware transfer, optionally chained to
// further transfers through Next (a linked-list-item chain). The DMA
// engine walks the chain as a single unit of work and reports one
// completion for the whole chain.
//
// The memory backing Src and Dst is owned by the caller and must remain
// valid until the chain completes.
type TransferDesc struct {
	Src    []byte        // Source buffer
	Dst    []byte        // Destination buffer
	Length int           // Number of bytes to transfer
	Next   *TransferDesc // Next chain entry, nil terminates the chain
}

// ChainLen returns the number of entries in the chain rooted at t.
func (t *TransferDesc) ChainLen() int {
	n := 0
	for e := t; e != nil; e = e.Next {
		n++
	}
	return n
}

// Validate checks every entry of the chain for usable buffers.
func (t *TransferDesc) Validate() error {
	for e := t; e != nil; e = e.Next {
		if e.Length < 0 || e.Length > len(e.Src) || e.Length > len(e.Dst) {
			return pkg.ErrInvalidParameter
		}
	}
	return nil
}

// CompletionFunc is invoked by an engine when a submitted chain finishes.
// Engines may call it from their own goroutines; implementations must be
// safe for concurrent use and must not block.
type CompletionFunc func(ch Channel, status pkg.Status)

// Engine defines the Hardware Abstraction Layer interface for baseband
// DMA engines.
//
// The engine executes one transfer chain per channel at a time. The
// descriptor queue registry decides ordering and submits the next chain
// after each completion; the engine only moves bytes and reports status.
// Platform vendors implement this interface to enable softmac on their
// specific controller.
//
// All methods should be safe for concurrent use where applicable.
type Engine interface {
	// Init initializes the DMA engine hardware.
	// The context can be used to cancel initialization.
	Init(ctx context.Context) error

	// Start enables the engine. After Start returns, Submit may be called.
	Start() error

	// Stop disables the engine and releases its resources. In-flight
	// chains are reported with pkg.StatusCancelled.
	Stop() error

	// Submit programs the engine with a transfer chain for the given
	// channel. At most one chain is in flight per channel; the registry
	// guarantees this. Submit must not block on the transfer itself.
	Submit(ch Channel, td *TransferDesc) error

	// OnComplete registers the completion handler. Must be called before
	// Start; the engine invokes fn once per submitted chain.
	OnComplete(fn CompletionFunc)
}
