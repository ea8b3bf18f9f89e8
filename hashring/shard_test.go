package hashring

import (
	"encoding/binary"
	"testing"

	"github.com/hashbridge/mmh3/native"
)

// Hand-expanded murmur round over one 4-byte block with seed 12345: block
// mix, empty tail, length xor of 4, fmix. Pins mix32's delegation to the
// facade hash so a seed or encoding change cannot slip through silently.
func refMix(val uint32) uint32 {
	k := val * 0xcc9e2d51
	k = (k << 15) | (k >> 17)
	k *= 0x1b873593

	h := 12345 ^ k
	h = (h << 13) | (h >> 19)
	h = h*5 + 0xe6546b64

	h = h ^ 4

	h ^= h >> 16
	h *= 0x85ebca6b
	h ^= h >> 13
	h *= 0xc2b2ae35
	h ^= h >> 16

	return h
}

func TestMixDelegatesToFacade(t *testing.T) {
	samples := []uint32{0, 1, 2, 0xff, 0x12345678, 0xdeadbeef, 0xffffffff}
	var block [4]byte
	for _, val := range samples {
		if mix32(val) != refMix(val) {
			t.Fatal("mix32(", val, ") diverged from the reference round")
		}
		binary.LittleEndian.PutUint32(block[:], val)
		if mix32(val) != native.Sum32(block[:], shardSeed) {
			t.Fatal("mix32(", val, ") diverged from the native backend")
		}
	}
}

func TestShardDegenerateCounts(t *testing.T) {
	for _, numShards := range []uint16{0, 1} {
		for key := uint64(0); key < 100; key++ {
			if Shard(key, numShards) != 0 {
				t.Error("Shard(", key, ",", numShards, ") expected 0")
			}
		}
	}
}

func TestShardInRange(t *testing.T) {
	for _, numShards := range []uint16{2, 3, 10, 255, 1024} {
		for key := uint64(0); key < 1000; key++ {
			shard := Shard(key, numShards)
			if shard >= numShards {
				t.Fatal("Shard(", key, ",", numShards, ") out of range:", shard)
			}
		}
	}
}

func TestShardDeterministic(t *testing.T) {
	for key := uint64(0); key < 1000; key++ {
		if Shard(key, 16) != Shard(key, 16) {
			t.Fatal("Shard(", key, ", 16) not deterministic")
		}
	}
}

func TestShardSpreads(t *testing.T) {
	const numShards = 10
	counts := make(map[uint16]int)
	for key := uint64(0); key < 10000; key++ {
		counts[Shard(key, numShards)]++
	}
	for shard := uint16(0); shard < numShards; shard++ {
		if counts[shard] == 0 {
			t.Error("shard", shard, "received no keys out of 10000")
		}
	}
}

func BenchmarkShardSmall(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Shard(uint64(i), 10)
	}
}

func BenchmarkShardMedium(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Shard(uint64(i), 100)
	}
}

func BenchmarkShardLarge(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Shard(uint64(i), 1000)
	}
}

func BenchmarkShardExtraLarge(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Shard(uint64(i), 10000)
	}
}
