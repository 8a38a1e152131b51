// Package observability provides hooks for metrics, tracing, and logging.
//
// The generator in package chain is a pure computation and never logs. It
// reports what it did through [GeneratorHooks] instead, so the CLI (or any
// other caller) can turn those events into log lines or metrics without the
// core depending on a logging backend.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetGeneratorHooks(&myGeneratorHooks{})
//	    // ... run application
//	}
//
// The generator calls hooks to emit events:
//
//	observability.Generator().OnEnumerateComplete(ctx, elements, candidates, survivors, duration)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Generator Hooks
// =============================================================================

// GeneratorHooks receives events from priority list generation.
type GeneratorHooks interface {
	// OnEnumerateComplete records the end of the enumeration phase.
	// candidates is the size of the searched space (4^elements).
	OnEnumerateComplete(ctx context.Context, elements int, candidates uint64, survivors int, duration time.Duration)

	// OnTick records one pass of the ranking simulation and how many
	// configurations were moved to the tail during it.
	OnTick(ctx context.Context, tick, fired int)

	// OnRankComplete records the end of the ranking phase.
	OnRankComplete(ctx context.Context, elements, survivors int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopGeneratorHooks is a no-op implementation of GeneratorHooks.
type NoopGeneratorHooks struct{}

func (NoopGeneratorHooks) OnEnumerateComplete(context.Context, int, uint64, int, time.Duration) {}
func (NoopGeneratorHooks) OnTick(context.Context, int, int)                                     {}
func (NoopGeneratorHooks) OnRankComplete(context.Context, int, int, time.Duration)              {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	generatorHooks GeneratorHooks = NoopGeneratorHooks{}
	hooksMu        sync.RWMutex
)

// SetGeneratorHooks registers custom generator hooks.
// This should be called once at application startup before any generation.
func SetGeneratorHooks(h GeneratorHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		generatorHooks = h
	}
}

// Generator returns the registered generator hooks.
func Generator() GeneratorHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return generatorHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	generatorHooks = NoopGeneratorHooks{}
}
