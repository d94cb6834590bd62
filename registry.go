package flagserde

import (
	"reflect"
	"sync"
)

var (
	registry   = make(map[reflect.Type]any)
	registryMu sync.RWMutex
)

// TableOf returns the cached name table for F or builds one from
// F.Definitions. Tables are cached by type.
func TableOf[F Flags[F, B], B Bits]() *Table[B] {
	typ := reflect.TypeFor[F]()

	// Fast path: read-lock cache check
	registryMu.RLock()
	if cached, ok := registry[typ]; ok {
		registryMu.RUnlock()
		return cached.(*Table[B])
	}
	registryMu.RUnlock()

	// Slow path: build and cache with write-lock
	registryMu.Lock()
	defer registryMu.Unlock()

	// Double-check pattern
	if cached, ok := registry[typ]; ok {
		return cached.(*Table[B])
	}

	var zero F
	table := NewTable(zero.Definitions()...)
	registry[typ] = table
	return table
}

// Reset clears the table registry.
// This is primarily useful for test isolation.
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[reflect.Type]any)
}
