// Package setdigest maintains an order-independent digest of a set of
// items. Each item is hashed with the mmh3 facade's 128-bit hash, split
// into 32-bit columns, and accumulated in a commutative group per column
// (addition modulo a fixed prime), so Insert order never matters and Remove
// is an exact inverse of Insert.
package setdigest

import (
	"encoding"
	"encoding/binary"

	"github.com/hashbridge/mmh3"
	"github.com/hashbridge/mmh3/errors"
)

const (
	// Size of the marshaled digest in bytes.
	Size    = 16
	Columns = Size / 4
)

// Fixed seed for item hashing so digests are comparable across processes.
const itemSeed uint32 = 0

// Largest primes below 2^32, one modulus per column.
var primes = [Columns]uint32{4294967291, 4294967279, 4294967231, 4294967197}

type column uint32

type Digest struct {
	state [Columns]column
}

// Interface assertions.
var _ encoding.BinaryMarshaler = &Digest{}
var _ encoding.BinaryUnmarshaler = &Digest{}

func addMod(i int, _a, _b column) column {
	a := uint64(_a)
	b := uint64(_b)
	c := (a + b) % uint64(primes[i])
	return column(c)
}

func subMod(i int, _a, _b column) column {
	// use int64 because subtracting b from a might result in negative number
	a := int64(_a)
	b := int64(_b)
	c := (a - b) % int64(primes[i])

	// if the value is negative, add the value of mod operator
	if c < 0 {
		c = c + int64(primes[i])
	}
	// because primes[i] is a uint32, casting back to column is safe
	return column(c)
}

func mapInto(i int, x uint32) column {
	v := uint64(x) % uint64(primes[i])
	return column(v)
}

// Save an intermediate digest state for later.
func (d *Digest) MarshalBinary() ([]byte, error) {
	var ret [Size]byte
	for col := range primes {
		offset := col * 4
		binary.LittleEndian.PutUint32(ret[offset:offset+4], uint32(d.state[col]))
	}
	return ret[:], nil
}

// Load a persisted digest state. Overwrites the internal state of d.
func (d *Digest) UnmarshalBinary(data []byte) error {
	if len(data) != Size {
		return errors.Newf("can't unmarshal digest state: wrong size %d", len(data))
	}

	for col := range primes {
		offset := col * 4
		v := binary.LittleEndian.Uint32(data[offset : offset+4])
		if v >= primes[col] {
			return errors.Newf("can't decode digest: word %d: %d > max %d",
				col, v, primes[col])
		}
		d.state[col] = column(v)
	}
	return nil
}

// Get the canonical digest output.
//
// Happens to be the same as the MarshalBinary output, but named differently
// for API clarity.
func (d *Digest) Sum() []byte {
	sum, err := d.MarshalBinary()
	// MarshalBinary doesn't generate any errors.
	if err != nil {
		panic("expected err to be nil, got " + err.Error())
	}

	return sum
}

func Hash(items [][]byte) Digest {
	var ret Digest
	for _, item := range items {
		ret.Insert(item)
	}
	return ret
}

func (d *Digest) Insert(item []byte) {
	h1, h2 := mmh3.Sum128(item, itemSeed)
	d.InsertSum(h1, h2)
}

// Insert a pre-hashed item (the two words of its 128-bit digest).
func (d *Digest) InsertSum(h1, h2 uint64) {
	for i, word := range itemWords(h1, h2) {
		d.state[i] = addMod(i, d.state[i], mapInto(i, word))
	}
}

func (d *Digest) Remove(item []byte) {
	h1, h2 := mmh3.Sum128(item, itemSeed)
	d.RemoveSum(h1, h2)
}

// Remove a pre-hashed item from the digest.
func (d *Digest) RemoveSum(h1, h2 uint64) {
	for i, word := range itemWords(h1, h2) {
		d.state[i] = subMod(i, d.state[i], mapInto(i, word))
	}
}

func Combine(lhs, rhs Digest) Digest {
	var ret Digest
	for i := range lhs.state {
		ret.state[i] = addMod(i, lhs.state[i], rhs.state[i])
	}
	return ret
}

func itemWords(h1, h2 uint64) [Columns]uint32 {
	return [Columns]uint32{
		uint32(h1), uint32(h1 >> 32),
		uint32(h2), uint32(h2 >> 32),
	}
}
