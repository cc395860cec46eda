// Package dma implements the descriptor queue registry for the softmac
// baseband DMA layer.
//
// The registry owns a fixed pool of transfer descriptors allocated once
// at construction. Descriptors circulate between three queues: the free
// pool and one progress queue per [hal.Channel]. They are never created
// or destroyed afterward, so at every observable point
//
//	free + prog[download] + prog[upload] + acquired == PoolSize
//
// and a descriptor is a member of at most one queue at a time. Queue
// membership is tracked by slot index in fixed rings rather than by
// intrusive links, so no struct-layout tricks are involved.
//
// # Lifecycle
//
// A descriptor moves free → acquired → queued → free:
//
//	reg, _ := dma.New(dma.Config{PoolSize: 8, Engine: engine})
//	reg.Start(ctx)
//
//	d, err := reg.Acquire()
//	if err != nil {
//	    // pool exhausted, back off
//	}
//	d.Transfer = &hal.TransferDesc{Src: src, Dst: dst, Length: len(src)}
//	d.Callback = func(status pkg.Status) {
//	    // chain finished
//	}
//	reg.Push(d, hal.ChannelDownload)
//
// Pushing onto an empty progress queue submits the chain to the engine;
// each completion recycles the head descriptor and submits the next, so
// exactly one chain is in flight per channel.
//
// # Concurrency
//
// All registry methods are safe for concurrent use. The engine invokes
// completions from its own goroutine (the interrupt analog); the
// registry serializes queue mutation internally and runs callbacks
// outside its lock, so a callback may acquire and push further work.
//
// # LLI accounting
//
// Each pushed chain contributes its entry count to the per-channel LLI
// counter, decremented on completion. Config.MaxLLI bounds the in-flight
// entries per channel; Push fails with pkg.ErrChainLimit rather than
// oversubscribing the hardware's chain walker.
package dma
