// Package mmh3 provides MurmurHash3 through two interchangeable backends: a
// cgo wrapper around the reference C implementation (package cffi) and a
// pure Go port (package native). Which backend serves the package-level
// functions is a build-time decision: cgo builds default to the C wrapper,
// while CGO_ENABLED=0 or the purego build tag selects the Go port. Both
// produce identical digests; the backendtest package holds the conformance
// suite every backend must pass.
//
// This package adds no hashing behavior of its own. Callers that want a
// specific backend can import cffi or native directly, or switch the
// package-level default with Select.
package mmh3

import (
	"hash"
	"sort"
	"sync"

	"github.com/hashbridge/mmh3/errors"
)

// Names of the compiled-in backends.
const (
	BackendNative = "native"
	BackendCFFI   = "cffi"
)

// Hash128 is a streaming 128-bit digest. Sum128 returns the low and high
// 64-bit words of the digest without consuming the state.
type Hash128 interface {
	hash.Hash
	Sum128() (uint64, uint64)
}

// Backend is the capability set both implementations expose. Streaming
// digests returned by New32/New128 are bound to the backend that created
// them; their states are not transferable across backends.
type Backend interface {
	Name() string
	Sum32(data []byte, seed uint32) uint32
	Sum64(data []byte, seed uint32) uint64
	Sum128(data []byte, seed uint32) (uint64, uint64)
	New32(seed uint32) hash.Hash32
	New128(seed uint32) Hash128
}

var (
	mu       sync.RWMutex
	registry = make(map[string]Backend)
	selected Backend
)

// Called from init in the per-backend binding files only.
func register(b Backend) {
	mu.Lock()
	defer mu.Unlock()
	registry[b.Name()] = b
}

// Backends returns the names of the backends compiled into this build,
// sorted.
func Backends() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the named backend, or an error if it is not compiled into
// this build.
func Lookup(name string) (Backend, error) {
	mu.RLock()
	defer mu.RUnlock()
	b, ok := registry[name]
	if !ok {
		return nil, errors.Newf(
			"no such backend: %q (compiled in: %v)", name, compiledNames())
	}
	return b, nil
}

// Requires mu held.
func compiledNames() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Select switches the backend serving the package-level functions. Digests
// already obtained from New32/New128 keep their original backend.
func Select(name string) error {
	b, err := Lookup(name)
	if err != nil {
		return err
	}
	mu.Lock()
	selected = b
	mu.Unlock()
	return nil
}

// Default returns the backend currently serving the package-level functions.
func Default() Backend {
	mu.RLock()
	b := selected
	mu.RUnlock()
	if b != nil {
		return b
	}

	mu.Lock()
	defer mu.Unlock()
	if selected == nil {
		selected = registry[defaultBackendName()]
	}
	return selected
}

// MurmurHash3 x86_32 of data with the given seed.
func Sum32(data []byte, seed uint32) uint32 {
	return Default().Sum32(data, seed)
}

// MurmurHash3 x64_128 truncated to its first 64-bit word.
func Sum64(data []byte, seed uint32) uint64 {
	return Default().Sum64(data, seed)
}

// MurmurHash3 x64_128 of data with the given seed. The two return values are
// the low and high 64-bit words of the 128-bit digest.
func Sum128(data []byte, seed uint32) (uint64, uint64) {
	return Default().Sum128(data, seed)
}

// New32 returns a streaming x86_32 digest from the default backend.
func New32(seed uint32) hash.Hash32 {
	return Default().New32(seed)
}

// New128 returns a streaming x64_128 digest from the default backend.
func New128(seed uint32) Hash128 {
	return Default().New128(seed)
}

// Adapts a backend package's free functions to the Backend interface.
type funcsBackend struct {
	name   string
	sum32  func([]byte, uint32) uint32
	sum64  func([]byte, uint32) uint64
	sum128 func([]byte, uint32) (uint64, uint64)
	new32  func(uint32) hash.Hash32
	new128 func(uint32) Hash128
}

func (b funcsBackend) Name() string { return b.name }

func (b funcsBackend) Sum32(data []byte, seed uint32) uint32 {
	return b.sum32(data, seed)
}

func (b funcsBackend) Sum64(data []byte, seed uint32) uint64 {
	return b.sum64(data, seed)
}

func (b funcsBackend) Sum128(data []byte, seed uint32) (uint64, uint64) {
	return b.sum128(data, seed)
}

func (b funcsBackend) New32(seed uint32) hash.Hash32 {
	return b.new32(seed)
}

func (b funcsBackend) New128(seed uint32) Hash128 {
	return b.new128(seed)
}
