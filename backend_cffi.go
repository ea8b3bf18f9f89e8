//go:build cgo && !purego

package mmh3

import (
	"hash"

	"github.com/hashbridge/mmh3/cffi"
)

// The C wrapper is only registered when it is actually compiled in; purego
// and non-cgo builds resolve backends at build time, not at runtime.
func init() {
	register(funcsBackend{
		name:   BackendCFFI,
		sum32:  cffi.Sum32,
		sum64:  cffi.Sum64,
		sum128: cffi.Sum128,
		new32: func(seed uint32) hash.Hash32 {
			return cffi.New32(seed)
		},
		new128: func(seed uint32) Hash128 {
			return cffi.New128(seed)
		},
	})
}
