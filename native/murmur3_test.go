package native

import (
	"testing"

	. "gopkg.in/check.v1"
)

// Hook up gocheck into the "go test" runner.
func Test(t *testing.T) { TestingT(t) }

type NativeSuite struct{}

var _ = Suite(&NativeSuite{})

var (
	TEST_SEED = 0x123456
)

func (s *NativeSuite) TestSum32(c *C) {
	kvals := map[string]uint32{
		"":       uint32(0x6e9c81dc),
		"1":      uint32(0x9c5063b),
		"12":     uint32(0xff0b3b72),
		"123":    uint32(0xd44872db),
		"test1":  uint32(0xa09f7757),
		"foobar": uint32(0xaea81970),
	}
	for key, val := range kvals {
		hash := Sum32([]byte(key), uint32(TEST_SEED))
		c.Assert(hash, Equals, val)
	}
}

func (s *NativeSuite) TestSum32ZeroSeed(c *C) {
	kvals := map[string]uint32{
		"":             uint32(0x00000000),
		"hello":        uint32(0x248bfa47),
		"hello, world": uint32(0x149bbb7f),
		"19 Jan 2038 at 3:14:07 AM": uint32(0xe31e8a70),
		"The quick brown fox jumps over the lazy dog.": uint32(0x2e4ff723),
	}
	for key, val := range kvals {
		hash := Sum32([]byte(key), 0)
		c.Assert(hash, Equals, val)
	}
}

type sum128Vector struct {
	key string
	h1  uint64
	h2  uint64
}

var sum128Vectors = []sum128Vector{
	{"", 0x0000000000000000, 0x0000000000000000},
	{"hello", 0xcbd8a7b341bd9b02, 0x5b1e906a48ae1d19},
	{"hello, world", 0x342fac623a5ebc8e, 0x4cdcbc079642414d},
	{"19 Jan 2038 at 3:14:07 AM", 0xb55b972a72e1fe0c, 0x1d44a2920144ca35},
	{"The quick brown fox jumps over the lazy dog.", 0xcd99481f9ee902c9, 0x695da1a38987b6e7},
}

func (s *NativeSuite) TestSum128ZeroSeed(c *C) {
	for _, v := range sum128Vectors {
		h1, h2 := Sum128([]byte(v.key), 0)
		c.Assert(h1, Equals, v.h1)
		c.Assert(h2, Equals, v.h2)
	}
}

func (s *NativeSuite) TestSum64IsFirstWord(c *C) {
	for _, v := range sum128Vectors {
		c.Assert(Sum64([]byte(v.key), 0), Equals, v.h1)
	}
}

func (s *NativeSuite) TestDigest32MatchesOneShot(c *C) {
	data := testPattern(257)
	for n := 0; n <= len(data); n++ {
		d := New32(uint32(TEST_SEED))
		_, err := d.Write(data[:n])
		c.Assert(err, IsNil)
		c.Assert(d.Sum32(), Equals, Sum32(data[:n], uint32(TEST_SEED)))
	}
}

func (s *NativeSuite) TestDigest32SplitWrites(c *C) {
	data := testPattern(37)
	want := Sum32(data, 7)
	for split := 0; split <= len(data); split++ {
		d := New32(7)
		d.Write(data[:split])
		d.Write(data[split:])
		c.Assert(d.Sum32(), Equals, want)
	}
}

func (s *NativeSuite) TestDigest128MatchesOneShot(c *C) {
	data := testPattern(257)
	for n := 0; n <= len(data); n++ {
		wantH1, wantH2 := Sum128(data[:n], 99)
		d := New128(99)
		_, err := d.Write(data[:n])
		c.Assert(err, IsNil)
		h1, h2 := d.Sum128()
		c.Assert(h1, Equals, wantH1)
		c.Assert(h2, Equals, wantH2)
	}
}

func (s *NativeSuite) TestDigest128SplitWrites(c *C) {
	data := testPattern(61)
	wantH1, wantH2 := Sum128(data, 42)
	for split := 0; split <= len(data); split++ {
		d := New128(42)
		d.Write(data[:split])
		d.Write(data[split:])
		h1, h2 := d.Sum128()
		c.Assert(h1, Equals, wantH1)
		c.Assert(h2, Equals, wantH2)
	}
}

func (s *NativeSuite) TestDigestReset(c *C) {
	d := New128(5)
	d.Write([]byte("some leftover state"))
	d.Reset()
	d.Write([]byte("hello"))

	wantH1, wantH2 := Sum128([]byte("hello"), 5)
	h1, h2 := d.Sum128()
	c.Assert(h1, Equals, wantH1)
	c.Assert(h2, Equals, wantH2)
}

func (s *NativeSuite) TestSumAppends(c *C) {
	d := New32(0)
	d.Write([]byte("hello"))
	out := d.Sum([]byte{0xde, 0xad})
	c.Assert(len(out), Equals, 6)
	c.Assert(out[0], Equals, byte(0xde))
	c.Assert(out[1], Equals, byte(0xad))
	// Big-endian bytes of 0x248bfa47.
	c.Assert(out[2:], DeepEquals, []byte{0x24, 0x8b, 0xfa, 0x47})
}

// Deterministic non-repeating byte pattern for streaming tests.
func testPattern(n int) []byte {
	data := make([]byte, n)
	x := uint32(2166136261)
	for i := range data {
		x = x*16777619 + uint32(i)
		data[i] = byte(x >> 24)
	}
	return data
}

func BenchmarkSum32(b *testing.B) {
	data := testPattern(1024)
	for i := 0; i < b.N; i++ {
		Sum32(data, 0)
	}
}

func BenchmarkSum128(b *testing.B) {
	data := testPattern(1024)
	for i := 0; i < b.N; i++ {
		Sum128(data, 0)
	}
}
