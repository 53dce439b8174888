// Package registry lists the lane mode implementations of the vector kernels.
//
// Every lane mode (scalar, wide4, wide8, with and without fused
// multiply-add) registers an OpEntry from the init() function of its arch
// package. The build-time lane policy decides which entry the kernel package
// calls; the registry exists so that tests can check every mode against the
// others and tools can report which mode the host executes natively.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-lanes/internal/cpu"
)

// DotProductFn returns sum(a[i] * b[i]) over the first n elements.
type DotProductFn func(n int, a, b []float32) float32

// ScaledUpdateFn updates out[i] with vec[i] * c over the first n elements.
type ScaledUpdateFn func(n int, out, vec []float32, c float32)

// ScaledSumFn returns sum(vec[i] * c) over the first n elements.
type ScaledSumFn func(n int, vec []float32, c float32) float32

// OpEntry represents a registered lane mode implementation.
type OpEntry struct {
	// Name matches lane.Policy.Name() of the mode (e.g., "wide8-fma").
	Name string

	// Lanes is the number of float32 elements per lane group.
	Lanes int

	// Alignment is the byte alignment the mode expects of buffer bases.
	Alignment int

	// FusedOps reports single-rounding multiply-accumulate.
	FusedOps bool

	// VectorBits is the register width the mode maps onto (0 for scalar).
	VectorBits int

	// Priority determines selection order when multiple compatible modes exist.
	// Higher priority implementations are preferred. Suggested priorities:
	//   - scalar: 0
	//   - wide4: 10, wide4-fma: 15
	//   - wide8: 20, wide8-fma: 25
	Priority int

	// DotProduct returns sum(a[i] * b[i]).
	DotProduct DotProductFn

	// ScaledAccumulate performs out[i] += vec[i] * c.
	ScaledAccumulate ScaledUpdateFn

	// ScaledSubtract performs out[i] -= vec[i] * c.
	ScaledSubtract ScaledUpdateFn

	// ScaledSum returns sum(vec[i] * c).
	ScaledSum ScaledSumFn
}

// OpRegistry manages the registration and lookup of lane mode implementations.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool // true if entries are sorted by priority (descending)
}

// Global is the registry the arch packages register into.
var Global = &OpRegistry{}

// Register adds an implementation to the registry.
//
// This function is typically called from init() functions in arch packages.
// It is safe to call concurrently.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority mode that runs natively on a CPU with
// the given features. Returns nil if nothing compatible is registered (which
// should never happen once the scalar mode is registered).
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.ensureSorted()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.VectorBits, entry.FusedOps) {
			return entry
		}
	}

	return nil
}

// ByName returns the entry registered under name, or nil.
func (r *OpRegistry) ByName(name string) *OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		if r.entries[i].Name == name {
			return &r.entries[i]
		}
	}
	return nil
}

func (r *OpRegistry) ensureSorted() {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()
}

// sortByPriority sorts entries by priority in descending order.
// Must be called with r.mu held (write lock).
func (r *OpRegistry) sortByPriority() {
	// Insertion sort, the registry holds five entries
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of all registered entries, sorted by priority.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.ensureSorted()

	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all registered entries.
// This function is intended for testing purposes only.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
