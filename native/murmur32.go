// Package native is the pure Go implementation of MurmurHash3. It provides
// the same capability set as the cffi package without depending on the
// compiled reference library.
//
// The x86_32 port follows the smhasher reference implementation; uses of
// unsafe were deliberately avoided in favor of encoding/binary.
package native

import "encoding/binary"

const (
	c1_32 uint32 = 0xcc9e2d51
	c2_32 uint32 = 0x1b873593
)

// Available reports whether this backend is compiled in. The Go port is part
// of every build; the function exists for name parity with package cffi.
func Available() bool { return true }

// MurmurHash3 x86_32 of data with the given seed.
func Sum32(data []byte, seed uint32) uint32 {
	full := len(data) &^ 3
	h1 := blocks32(seed, data[:full])
	return tail32(h1, data[full:], len(data))
}

// Mixes whole 4-byte blocks into h1. len(p) must be a multiple of 4.
func blocks32(h1 uint32, p []byte) uint32 {
	for ; len(p) >= 4; p = p[4:] {
		k1 := binary.LittleEndian.Uint32(p)

		k1 *= c1_32
		k1 = (k1 << 15) | (k1 >> 17) // rotl32(k1, 15)
		k1 *= c2_32

		h1 ^= k1
		h1 = (h1 << 13) | (h1 >> 19) // rotl32(h1, 13)
		h1 = h1*5 + 0xe6546b64
	}
	return h1
}

// Mixes the remaining 0-3 tail bytes and finalizes. total is the overall
// input length in bytes.
func tail32(h1 uint32, tail []byte, total int) uint32 {
	var k1 uint32
	switch len(tail) & 3 {
	case 3:
		k1 ^= uint32(tail[2]) << 16
		fallthrough
	case 2:
		k1 ^= uint32(tail[1]) << 8
		fallthrough
	case 1:
		k1 ^= uint32(tail[0])
		k1 *= c1_32
		k1 = (k1 << 15) | (k1 >> 17) // rotl32(k1, 15)
		k1 *= c2_32
		h1 ^= k1
	}

	h1 ^= uint32(total)

	// fmix32
	h1 ^= h1 >> 16
	h1 *= 0x85ebca6b
	h1 ^= h1 >> 13
	h1 *= 0xc2b2ae35
	h1 ^= h1 >> 16
	return h1
}

// Digest32 is the incremental form of Sum32. It implements hash.Hash32.
// The zero value is not usable; construct with New32.
type Digest32 struct {
	h1   uint32
	seed uint32
	tail [4]byte
	n    int // buffered tail bytes, always < 4
	clen int // total bytes written
}

func New32(seed uint32) *Digest32 {
	return &Digest32{h1: seed, seed: seed}
}

func (d *Digest32) Write(p []byte) (int, error) {
	written := len(p)
	d.clen += written

	if d.n > 0 {
		c := copy(d.tail[d.n:], p)
		d.n += c
		p = p[c:]
		if d.n < len(d.tail) {
			return written, nil
		}
		d.h1 = blocks32(d.h1, d.tail[:])
		d.n = 0
	}

	full := len(p) &^ 3
	d.h1 = blocks32(d.h1, p[:full])
	d.n = copy(d.tail[:], p[full:])
	return written, nil
}

// Sum32 returns the hash of all bytes written so far. It does not change the
// digest state, so more bytes may be written afterwards.
func (d *Digest32) Sum32() uint32 {
	return tail32(d.h1, d.tail[:d.n], d.clen)
}

func (d *Digest32) Sum(b []byte) []byte {
	s := d.Sum32()
	return append(b, byte(s>>24), byte(s>>16), byte(s>>8), byte(s))
}

func (d *Digest32) Reset() {
	d.h1 = d.seed
	d.n = 0
	d.clen = 0
}

func (d *Digest32) Size() int { return 4 }

func (d *Digest32) BlockSize() int { return 4 }
