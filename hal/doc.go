// Package hal defines the Hardware Abstraction Layer interface for the
// softmac baseband DMA subsystem.
//
// The HAL provides a platform-agnostic interface between the descriptor
// queue registry and the underlying DMA engine hardware. Platform vendors
// implement this interface to enable the softmac stack on their specific
// hardware.
//
// # Design Principles
//
// The HAL is designed to be:
//
//   - Minimal: Only expose operations essential for chained DMA transfers
//   - Generic: No platform-specific assumptions or details
//   - Flexible: Adaptable to a wide range of engine configurations
//
// The registry implements all queueing and descriptor-lifecycle logic,
// leaving the HAL to handle only low-level data movement.
//
// # Interface Overview
//
// The [Engine] interface defines the contract for DMA engines:
//
//   - Initialization and lifecycle management
//   - Chain submission, one chain in flight per [Channel]
//   - Asynchronous completion reporting via [CompletionFunc]
//
// [TransferDesc] is the hardware-facing transfer description: a source
// buffer, a destination buffer, a byte count, and an optional Next link
// forming a linked-list-item (LLI) chain that the engine walks as one
// unit of work.
//
// # Implementing an Engine
//
// To implement an engine for a new platform:
//
//  1. Create a type that implements all [Engine] methods
//  2. Handle hardware-specific initialization in Init()
//  3. Program the controller with the chain in Submit()
//  4. Invoke the registered completion handler exactly once per chain
//
// A memory-copy engine for testing is available in
// [github.com/ardnew/softmac/hal/mem].
package hal
