package recording

import (
	"fmt"
	"sort"
	"sync"
)

// BackendFactory is a function that creates a new backend instance.
type BackendFactory func() Backend

// registration is a registered backend together with the media type of
// the output it writes.
type registration struct {
	factory     BackendFactory
	contentType string
}

// Registry state - protected by mutex for thread-safe access.
var (
	registryMu sync.RWMutex
	backends   = make(map[string]registration)
)

// Register registers a backend factory under name. contentType is the media
// type of what the backend writes (for example "image/svg+xml") and is used
// by HTTP handlers serving playback output.
//
// This function is typically called from init() in backend packages,
// following the database/sql driver pattern:
//
//	func init() {
//	    recording.Register("svg", "image/svg+xml", func() recording.Backend {
//	        return NewBackend()
//	    })
//	}
//
// Register panics if factory is nil or name is already registered.
func Register(name, contentType string, factory BackendFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("recording: Register factory is nil")
	}
	if _, dup := backends[name]; dup {
		panic("recording: Register called twice for " + name)
	}
	backends[name] = registration{factory: factory, contentType: contentType}
}

// Unregister removes a backend from the registry.
// This is primarily useful for testing to clean up between tests.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// NewBackend creates a new backend instance by name.
// Returns an error if the backend is not registered; the message includes
// a hint about forgotten imports.
func NewBackend(name string) (Backend, error) {
	registryMu.RLock()
	reg, ok := backends[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("recording: unknown backend %q (forgotten import?)", name)
	}
	return reg.factory(), nil
}

// ContentType returns the media type registered for the backend name.
func ContentType(name string) (string, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	reg, ok := backends[name]
	return reg.contentType, ok
}

// Backends returns a sorted list of registered backend names.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if a backend with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}
