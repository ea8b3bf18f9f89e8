package native

import "encoding/binary"

const (
	c1_128 uint64 = 0x87c37b91114253d5
	c2_128 uint64 = 0x4cf5ba1ebefb5eb6
)

// MurmurHash3 x64_128 of data with the given seed. The two return values are
// the low and high 64-bit words of the 128-bit digest.
func Sum128(data []byte, seed uint32) (uint64, uint64) {
	full := len(data) &^ 15
	h1, h2 := blocks128(uint64(seed), uint64(seed), data[:full])
	return tail128(h1, h2, data[full:], len(data))
}

// MurmurHash3 x64_128 truncated to its first 64-bit word.
func Sum64(data []byte, seed uint32) uint64 {
	h1, _ := Sum128(data, seed)
	return h1
}

// Mixes whole 16-byte blocks into (h1, h2). len(p) must be a multiple of 16.
func blocks128(h1, h2 uint64, p []byte) (uint64, uint64) {
	for ; len(p) >= 16; p = p[16:] {
		k1 := binary.LittleEndian.Uint64(p)
		k2 := binary.LittleEndian.Uint64(p[8:])

		k1 *= c1_128
		k1 = (k1 << 31) | (k1 >> 33) // rotl64(k1, 31)
		k1 *= c2_128
		h1 ^= k1

		h1 = (h1 << 27) | (h1 >> 37) // rotl64(h1, 27)
		h1 += h2
		h1 = h1*5 + 0x52dce729

		k2 *= c2_128
		k2 = (k2 << 33) | (k2 >> 31) // rotl64(k2, 33)
		k2 *= c1_128
		h2 ^= k2

		h2 = (h2 << 31) | (h2 >> 33) // rotl64(h2, 31)
		h2 += h1
		h2 = h2*5 + 0x38495ab5
	}
	return h1, h2
}

// Mixes the remaining 0-15 tail bytes and finalizes. total is the overall
// input length in bytes.
func tail128(h1, h2 uint64, tail []byte, total int) (uint64, uint64) {
	var k1, k2 uint64
	switch len(tail) & 15 {
	case 15:
		k2 ^= uint64(tail[14]) << 48
		fallthrough
	case 14:
		k2 ^= uint64(tail[13]) << 40
		fallthrough
	case 13:
		k2 ^= uint64(tail[12]) << 32
		fallthrough
	case 12:
		k2 ^= uint64(tail[11]) << 24
		fallthrough
	case 11:
		k2 ^= uint64(tail[10]) << 16
		fallthrough
	case 10:
		k2 ^= uint64(tail[9]) << 8
		fallthrough
	case 9:
		k2 ^= uint64(tail[8])
		k2 *= c2_128
		k2 = (k2 << 33) | (k2 >> 31) // rotl64(k2, 33)
		k2 *= c1_128
		h2 ^= k2
		fallthrough
	case 8:
		k1 ^= uint64(tail[7]) << 56
		fallthrough
	case 7:
		k1 ^= uint64(tail[6]) << 48
		fallthrough
	case 6:
		k1 ^= uint64(tail[5]) << 40
		fallthrough
	case 5:
		k1 ^= uint64(tail[4]) << 32
		fallthrough
	case 4:
		k1 ^= uint64(tail[3]) << 24
		fallthrough
	case 3:
		k1 ^= uint64(tail[2]) << 16
		fallthrough
	case 2:
		k1 ^= uint64(tail[1]) << 8
		fallthrough
	case 1:
		k1 ^= uint64(tail[0])
		k1 *= c1_128
		k1 = (k1 << 31) | (k1 >> 33) // rotl64(k1, 31)
		k1 *= c2_128
		h1 ^= k1
	}

	h1 ^= uint64(total)
	h2 ^= uint64(total)

	h1 += h2
	h2 += h1

	h1 = fmix64(h1)
	h2 = fmix64(h2)

	h1 += h2
	h2 += h1
	return h1, h2
}

func fmix64(k uint64) uint64 {
	k ^= k >> 33
	k *= 0xff51afd7ed558ccd
	k ^= k >> 33
	k *= 0xc4ceb9fe1a85ec53
	k ^= k >> 33
	return k
}

// Digest128 is the incremental form of Sum128. It implements hash.Hash and
// additionally exposes the digest as two 64-bit words. Construct with New128.
type Digest128 struct {
	h1   uint64
	h2   uint64
	seed uint32
	tail [16]byte
	n    int // buffered tail bytes, always < 16
	clen int // total bytes written
}

func New128(seed uint32) *Digest128 {
	return &Digest128{h1: uint64(seed), h2: uint64(seed), seed: seed}
}

func (d *Digest128) Write(p []byte) (int, error) {
	written := len(p)
	d.clen += written

	if d.n > 0 {
		c := copy(d.tail[d.n:], p)
		d.n += c
		p = p[c:]
		if d.n < len(d.tail) {
			return written, nil
		}
		d.h1, d.h2 = blocks128(d.h1, d.h2, d.tail[:])
		d.n = 0
	}

	full := len(p) &^ 15
	d.h1, d.h2 = blocks128(d.h1, d.h2, p[:full])
	d.n = copy(d.tail[:], p[full:])
	return written, nil
}

// Sum128 returns the hash of all bytes written so far. It does not change
// the digest state, so more bytes may be written afterwards.
func (d *Digest128) Sum128() (uint64, uint64) {
	return tail128(d.h1, d.h2, d.tail[:d.n], d.clen)
}

func (d *Digest128) Sum(b []byte) []byte {
	h1, h2 := d.Sum128()
	return append(b,
		byte(h1>>56), byte(h1>>48), byte(h1>>40), byte(h1>>32),
		byte(h1>>24), byte(h1>>16), byte(h1>>8), byte(h1),
		byte(h2>>56), byte(h2>>48), byte(h2>>40), byte(h2>>32),
		byte(h2>>24), byte(h2>>16), byte(h2>>8), byte(h2))
}

func (d *Digest128) Reset() {
	d.h1 = uint64(d.seed)
	d.h2 = uint64(d.seed)
	d.n = 0
	d.clen = 0
}

func (d *Digest128) Size() int { return 16 }

func (d *Digest128) BlockSize() int { return 16 }
