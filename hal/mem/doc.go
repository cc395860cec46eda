// Package mem provides a memory-copy DMA engine for testing and
// simulation.
//
// This package implements the [hal.Engine] interface with plain CPU
// copies performed on a background goroutine, standing in for a real
// DMA controller. It walks each submitted linked-list-item chain entry
// by entry, copies Src to Dst, and reports a single completion for the
// chain through the registered handler, mimicking the asynchronous
// interrupt-driven behavior of hardware.
//
// # Usage
//
//	engine := mem.NewEngine(0)
//	reg, err := dma.New(dma.Config{PoolSize: 8, Engine: engine})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := reg.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	defer reg.Stop()
//
// An optional per-chain latency makes completion timing more realistic
// when exercising queue-depth behavior:
//
//	engine := mem.NewEngine(500 * time.Microsecond)
//
// # Failure simulation
//
// A chain entry whose Length exceeds its Src or Dst buffer is reported
// as pkg.StatusBusError, the way a real engine faults on a bad address.
// Chains pending when the engine stops are reported with
// pkg.StatusCancelled.
package mem
