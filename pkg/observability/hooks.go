// Package observability provides hooks for logging and metrics.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers register hooks at startup to
// receive events about graph construction, analysis queries and artifact writes.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, not by libraries, which avoids import cycles.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetAnalysisHooks(&myAnalysisHooks{})
//	    observability.SetArtifactHooks(&myArtifactHooks{})
//	    // ... run application
//	}
//
// Callers emit events around the work they do:
//
//	observability.Analysis().OnQueryStart(ctx, "pagerank")
//	res := rank.Compute(g, opts)
//	observability.Analysis().OnQueryComplete(ctx, "pagerank", time.Since(start), nil)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Analysis Hooks
// =============================================================================

// AnalysisHooks receives events about graph construction and queries.
type AnalysisHooks interface {
	// OnBuild records a finished graph build.
	OnBuild(ctx context.Context, nodes, edges int, duration time.Duration)

	// Query events. query names the operation, e.g. "bridge" or "pagerank".
	OnQueryStart(ctx context.Context, query string)
	OnQueryComplete(ctx context.Context, query string, duration time.Duration, err error)
}

// =============================================================================
// Artifact Hooks
// =============================================================================

// ArtifactHooks receives events from artifact stores.
type ArtifactHooks interface {
	// OnArtifactWrite records an attempt to store an artifact.
	OnArtifactWrite(ctx context.Context, name string, size int, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopAnalysisHooks is a no-op implementation of AnalysisHooks.
type NoopAnalysisHooks struct{}

func (NoopAnalysisHooks) OnBuild(context.Context, int, int, time.Duration)              {}
func (NoopAnalysisHooks) OnQueryStart(context.Context, string)                          {}
func (NoopAnalysisHooks) OnQueryComplete(context.Context, string, time.Duration, error) {}

// NoopArtifactHooks is a no-op implementation of ArtifactHooks.
type NoopArtifactHooks struct{}

func (NoopArtifactHooks) OnArtifactWrite(context.Context, string, int, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	analysisHooks AnalysisHooks = NoopAnalysisHooks{}
	artifactHooks ArtifactHooks = NoopArtifactHooks{}
	hooksMu       sync.RWMutex
)

// SetAnalysisHooks registers custom analysis hooks.
// This should be called once at application startup.
func SetAnalysisHooks(h AnalysisHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		analysisHooks = h
	}
}

// SetArtifactHooks registers custom artifact hooks.
// This should be called once at application startup.
func SetArtifactHooks(h ArtifactHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		artifactHooks = h
	}
}

// Analysis returns the registered analysis hooks.
func Analysis() AnalysisHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return analysisHooks
}

// Artifact returns the registered artifact hooks.
func Artifact() ArtifactHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return artifactHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	analysisHooks = NoopAnalysisHooks{}
	artifactHooks = NoopArtifactHooks{}
}
