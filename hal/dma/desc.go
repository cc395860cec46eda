package dma

import (
	"github.com/ardnew/softmac/hal"
	"github.com/ardnew/softmac/pkg"
)

// Callback is invoked once when a pushed descriptor's chain completes or
// is aborted. It runs outside the registry lock and may push further
// work. Capture any completion context in the closure.
type Callback func(status pkg.Status)

// descState tracks which queue currently owns a descriptor slot.
type descState uint8

const (
	descFree     descState = iota // in the free pool
	descAcquired                  // taken by a caller, not yet queued
	descQueued                    // linked into a progress queue
)

// Desc represents one queued or in-flight DMA transfer request.
//
// A descriptor is owned by exactly one [Registry] and is a member of at
// most one queue at any time. Callers obtain a descriptor with
// [Registry.Acquire], fill in Transfer and Callback, and hand it back
// with [Registry.Push]. After completion the slot is recycled into the
// free pool automatically; the caller must not retain the pointer past
// its callback.
type Desc struct {
	// Transfer references the hardware transfer chain. The chain and the
	// buffers it names are owned by the caller until completion.
	Transfer *hal.TransferDesc

	// Callback is invoked when the chain completes or is aborted.
	Callback Callback

	reg     *Registry
	index   uint16
	state   descState
	channel hal.Channel // valid while state == descQueued
	lli     int         // chain entries accounted at push time
}

// resetLocked returns the slot to its free-pool state. Caller holds the
// registry lock.
func (d *Desc) resetLocked() {
	d.Transfer = nil
	d.Callback = nil
	d.state = descFree
	d.lli = 0
}
