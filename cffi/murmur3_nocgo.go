//go:build !cgo || purego

package cffi

import "hash"

const unavailableMsg = "mmh3/cffi: backend not compiled in (cgo disabled or purego build)"

// Available reports whether the C backend is compiled in.
func Available() bool { return false }

func Sum32(data []byte, seed uint32) uint32 {
	panic(unavailableMsg)
}

func Sum64(data []byte, seed uint32) uint64 {
	panic(unavailableMsg)
}

func Sum128(data []byte, seed uint32) (uint64, uint64) {
	panic(unavailableMsg)
}

func New32(seed uint32) hash.Hash32 {
	panic(unavailableMsg)
}

func New128(seed uint32) Hash128 {
	panic(unavailableMsg)
}
