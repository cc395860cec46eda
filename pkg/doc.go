// Package pkg provides shared utilities for the softmac MAC stack.
//
// This package contains common functionality used across the HAL and DMA
// layers, including:
//
//   - Structured logging via Go's standard [log/slog] package
//   - Sentinel error types for DMA and transfer errors
//   - Component identifiers for log filtering
//   - The [Status] completion enumeration reported for finished transfers
//
// The package is designed to have zero external dependencies, relying
// only on the Go standard library.
//
// # Logging
//
// The logging subsystem wraps [log/slog] with stack-specific context:
//
//	pkg.SetLogLevel(slog.LevelDebug)
//	pkg.LogInfo(pkg.ComponentDMA, "registry initialized", "pool", 8)
//
// # Errors
//
// Common errors are defined as sentinel values:
//
//	if errors.Is(err, pkg.ErrNoResources) {
//	    // Free descriptor pool is exhausted
//	}
package pkg
