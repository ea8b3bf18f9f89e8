// Package backendtest is a reusable conformance suite for mmh3 backends.
// Every backend compiled into a build must pass it, which is what makes the
// cffi and native packages interchangeable: same inputs, same digests, same
// streaming semantics.
package backendtest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashbridge/mmh3"
)

type vector32 struct {
	key  string
	seed uint32
	want uint32
}

type vector128 struct {
	key    string
	seed   uint32
	wantH1 uint64
	wantH2 uint64
}

var vectors32 = []vector32{
	{"", 0x123456, 0x6e9c81dc},
	{"1", 0x123456, 0x09c5063b},
	{"12", 0x123456, 0xff0b3b72},
	{"123", 0x123456, 0xd44872db},
	{"test1", 0x123456, 0xa09f7757},
	{"foobar", 0x123456, 0xaea81970},
	{"", 0, 0x00000000},
	{"hello", 0, 0x248bfa47},
	{"hello, world", 0, 0x149bbb7f},
	{"19 Jan 2038 at 3:14:07 AM", 0, 0xe31e8a70},
	{"The quick brown fox jumps over the lazy dog.", 0, 0x2e4ff723},
}

var vectors128 = []vector128{
	{"", 0, 0x0000000000000000, 0x0000000000000000},
	{"hello", 0, 0xcbd8a7b341bd9b02, 0x5b1e906a48ae1d19},
	{"hello, world", 0, 0x342fac623a5ebc8e, 0x4cdcbc079642414d},
	{"19 Jan 2038 at 3:14:07 AM", 0, 0xb55b972a72e1fe0c, 0x1d44a2920144ca35},
	{"The quick brown fox jumps over the lazy dog.", 0,
		0xcd99481f9ee902c9, 0x695da1a38987b6e7},
}

// Run exercises one backend against the full conformance suite.
func Run(t *testing.T, b mmh3.Backend) {
	t.Run("KnownVectors32", func(t *testing.T) { testKnownVectors32(t, b) })
	t.Run("KnownVectors128", func(t *testing.T) { testKnownVectors128(t, b) })
	t.Run("Sum64IsFirstWord", func(t *testing.T) { testSum64(t, b) })
	t.Run("StreamingMatchesOneShot", func(t *testing.T) { testStreaming(t, b) })
	t.Run("SplitWrites", func(t *testing.T) { testSplitWrites(t, b) })
	t.Run("SumAppends", func(t *testing.T) { testSumAppends(t, b) })
	t.Run("Reset", func(t *testing.T) { testReset(t, b) })
	t.Run("SizeAndBlockSize", func(t *testing.T) { testSizes(t, b) })
}

// RunPair asserts two backends produce identical digests over a spread of
// input lengths and seeds.
func RunPair(t *testing.T, b1, b2 mmh3.Backend) {
	data := Pattern(1024)
	seeds := []uint32{0, 1, 0x123456, 0xffffffff}
	for _, seed := range seeds {
		for n := 0; n <= len(data); n += 13 {
			in := data[:n]
			assert.Equal(t, b1.Sum32(in, seed), b2.Sum32(in, seed),
				"Sum32 mismatch: len=%d seed=%#x", n, seed)
			assert.Equal(t, b1.Sum64(in, seed), b2.Sum64(in, seed),
				"Sum64 mismatch: len=%d seed=%#x", n, seed)

			h1a, h2a := b1.Sum128(in, seed)
			h1b, h2b := b2.Sum128(in, seed)
			assert.Equal(t, h1a, h1b, "Sum128 h1 mismatch: len=%d seed=%#x", n, seed)
			assert.Equal(t, h2a, h2b, "Sum128 h2 mismatch: len=%d seed=%#x", n, seed)
		}
	}
}

// Pattern returns a deterministic byte pattern for cross-backend checks.
func Pattern(n int) []byte {
	data := make([]byte, n)
	x := uint32(2166136261)
	for i := range data {
		x = x*16777619 + uint32(i)
		data[i] = byte(x >> 24)
	}
	return data
}

func testKnownVectors32(t *testing.T, b mmh3.Backend) {
	for _, v := range vectors32 {
		assert.Equal(t, v.want, b.Sum32([]byte(v.key), v.seed),
			"Sum32(%q, %#x)", v.key, v.seed)
	}
}

func testKnownVectors128(t *testing.T, b mmh3.Backend) {
	for _, v := range vectors128 {
		h1, h2 := b.Sum128([]byte(v.key), v.seed)
		assert.Equal(t, v.wantH1, h1, "Sum128(%q, %#x) h1", v.key, v.seed)
		assert.Equal(t, v.wantH2, h2, "Sum128(%q, %#x) h2", v.key, v.seed)
	}
}

func testSum64(t *testing.T, b mmh3.Backend) {
	for _, v := range vectors128 {
		assert.Equal(t, v.wantH1, b.Sum64([]byte(v.key), v.seed),
			"Sum64(%q, %#x)", v.key, v.seed)
	}
}

func testStreaming(t *testing.T, b mmh3.Backend) {
	data := Pattern(131)
	for n := 0; n <= len(data); n++ {
		in := data[:n]

		d32 := b.New32(0x123456)
		_, err := d32.Write(in)
		require.NoError(t, err)
		assert.Equal(t, b.Sum32(in, 0x123456), d32.Sum32(), "len=%d", n)

		d128 := b.New128(0x123456)
		_, err = d128.Write(in)
		require.NoError(t, err)
		wantH1, wantH2 := b.Sum128(in, 0x123456)
		h1, h2 := d128.Sum128()
		assert.Equal(t, wantH1, h1, "len=%d", n)
		assert.Equal(t, wantH2, h2, "len=%d", n)
	}
}

func testSplitWrites(t *testing.T, b mmh3.Backend) {
	data := Pattern(53)
	want32 := b.Sum32(data, 7)
	wantH1, wantH2 := b.Sum128(data, 7)

	for split := 0; split <= len(data); split++ {
		d32 := b.New32(7)
		d32.Write(data[:split])
		d32.Write(data[split:])
		assert.Equal(t, want32, d32.Sum32(), "split=%d", split)

		d128 := b.New128(7)
		d128.Write(data[:split])
		d128.Write(data[split:])
		h1, h2 := d128.Sum128()
		assert.Equal(t, wantH1, h1, "split=%d", split)
		assert.Equal(t, wantH2, h2, "split=%d", split)
	}
}

func testSumAppends(t *testing.T, b mmh3.Backend) {
	prefix := []byte{0xca, 0xfe}

	d32 := b.New32(0)
	d32.Write([]byte("hello"))
	out := d32.Sum(prefix)
	require.Len(t, out, 2+d32.Size())
	assert.Equal(t, prefix, out[:2])
	// Big-endian bytes of 0x248bfa47.
	assert.Equal(t, []byte{0x24, 0x8b, 0xfa, 0x47}, out[2:])

	d128 := b.New128(0)
	d128.Write([]byte("hello"))
	out = d128.Sum(nil)
	require.Len(t, out, d128.Size())
	assert.Equal(t, []byte{
		0xcb, 0xd8, 0xa7, 0xb3, 0x41, 0xbd, 0x9b, 0x02,
		0x5b, 0x1e, 0x90, 0x6a, 0x48, 0xae, 0x1d, 0x19,
	}, out)
}

func testReset(t *testing.T, b mmh3.Backend) {
	d32 := b.New32(0x123456)
	d32.Write([]byte("leftover"))
	d32.Reset()
	d32.Write([]byte("foobar"))
	assert.Equal(t, uint32(0xaea81970), d32.Sum32())

	d128 := b.New128(0)
	d128.Write([]byte("leftover"))
	d128.Reset()
	d128.Write([]byte("hello"))
	h1, h2 := d128.Sum128()
	assert.Equal(t, uint64(0xcbd8a7b341bd9b02), h1)
	assert.Equal(t, uint64(0x5b1e906a48ae1d19), h2)
}

func testSizes(t *testing.T, b mmh3.Backend) {
	d32 := b.New32(0)
	assert.Equal(t, 4, d32.Size())
	assert.Equal(t, 4, d32.BlockSize())

	d128 := b.New128(0)
	assert.Equal(t, 16, d128.Size())
	assert.Equal(t, 16, d128.BlockSize())
}
