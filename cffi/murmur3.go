//go:build cgo && !purego

package cffi

/*
#include "murmur3.h"
*/
import "C"

import (
	"hash"
	"unsafe"
)

// Available reports whether the C backend is compiled in.
func Available() bool { return true }

// Guards the boundary: the C entry points take a signed 32-bit length, and
// an empty slice has no backing array to take a pointer from.
func boundaryCheck(data []byte) unsafe.Pointer {
	if len(data) > maxInputLen {
		panic("mmh3/cffi: input longer than 2^31-1 bytes")
	}
	if len(data) == 0 {
		return nil
	}
	return unsafe.Pointer(&data[0])
}

// MurmurHash3 x86_32 of data with the given seed, computed by the reference
// C implementation.
func Sum32(data []byte, seed uint32) uint32 {
	p := boundaryCheck(data)
	var out uint32
	C.MurmurHash3_x86_32(p, C.int(len(data)), C.uint32_t(seed),
		unsafe.Pointer(&out))
	return out
}

// MurmurHash3 x64_128 of data with the given seed, computed by the reference
// C implementation. The two return values are the low and high 64-bit words
// of the 128-bit digest.
func Sum128(data []byte, seed uint32) (uint64, uint64) {
	p := boundaryCheck(data)
	var out [2]uint64
	C.MurmurHash3_x64_128(p, C.int(len(data)), C.uint32_t(seed),
		unsafe.Pointer(&out[0]))
	return out[0], out[1]
}

// MurmurHash3 x64_128 truncated to its first 64-bit word.
func Sum64(data []byte, seed uint32) uint64 {
	h1, _ := Sum128(data, seed)
	return h1
}

// The C API is one-shot, so the streaming digests accumulate written bytes
// and hash them on Sum. Outputs are identical to the native incremental
// digests for the same input.
type digest32 struct {
	seed uint32
	buf  []byte
}

func New32(seed uint32) hash.Hash32 {
	return &digest32{seed: seed}
}

func (d *digest32) Write(p []byte) (int, error) {
	if len(d.buf)+len(p) > maxInputLen {
		panic("mmh3/cffi: input longer than 2^31-1 bytes")
	}
	d.buf = append(d.buf, p...)
	return len(p), nil
}

func (d *digest32) Sum32() uint32 {
	return Sum32(d.buf, d.seed)
}

func (d *digest32) Sum(b []byte) []byte {
	s := d.Sum32()
	return append(b, byte(s>>24), byte(s>>16), byte(s>>8), byte(s))
}

func (d *digest32) Reset() { d.buf = d.buf[:0] }

func (d *digest32) Size() int { return 4 }

func (d *digest32) BlockSize() int { return 4 }

type digest128 struct {
	seed uint32
	buf  []byte
}

func New128(seed uint32) Hash128 {
	return &digest128{seed: seed}
}

func (d *digest128) Write(p []byte) (int, error) {
	if len(d.buf)+len(p) > maxInputLen {
		panic("mmh3/cffi: input longer than 2^31-1 bytes")
	}
	d.buf = append(d.buf, p...)
	return len(p), nil
}

func (d *digest128) Sum128() (uint64, uint64) {
	return Sum128(d.buf, d.seed)
}

func (d *digest128) Sum(b []byte) []byte {
	h1, h2 := d.Sum128()
	return append(b,
		byte(h1>>56), byte(h1>>48), byte(h1>>40), byte(h1>>32),
		byte(h1>>24), byte(h1>>16), byte(h1>>8), byte(h1),
		byte(h2>>56), byte(h2>>48), byte(h2>>40), byte(h2>>32),
		byte(h2>>24), byte(h2>>16), byte(h2>>8), byte(h2))
}

func (d *digest128) Reset() { d.buf = d.buf[:0] }

func (d *digest128) Size() int { return 16 }

func (d *digest128) BlockSize() int { return 16 }
