package mmh3

import (
	"hash"

	"github.com/hashbridge/mmh3/native"
)

// The Go port is compiled into every build.
func init() {
	register(funcsBackend{
		name:   BackendNative,
		sum32:  native.Sum32,
		sum64:  native.Sum64,
		sum128: native.Sum128,
		new32: func(seed uint32) hash.Hash32 {
			return native.New32(seed)
		},
		new128: func(seed uint32) Hash128 {
			return native.New128(seed)
		},
	})
}
