package hashring

import (
	"encoding/binary"

	"github.com/hashbridge/mmh3"
)

const (
	maxNumShards = 1<<16 - 1

	// Fixed seed for shard permutation rounds, so shard assignment is
	// stable across processes.
	shardSeed uint32 = 12345
)

// One permutation round: the facade's 32-bit murmur over the little-endian
// bytes of the previous round's value. A single 4-byte block with no tail,
// so this is the cheapest full round the hash offers.
func mix32(val uint32) uint32 {
	var block [4]byte
	binary.LittleEndian.PutUint32(block[:], val)
	return mmh3.Sum32(block[:], shardSeed)
}

// Shard implements a variant of consistent hashing over a fixed shard
// count. Unlike the ring, shards have no identity beyond their index, so
// this is the cheaper choice for fan-out across numbered partitions. This
// implementation supports up to a maximum of (1 << 16 - 1) 65535 shards.
//
// Each round of mix32 yields two candidate permutation positions (the low
// and high halves of the 32-bit value); the shard whose candidate position
// lands lowest wins. Fewer than 2 shards always selects shard 0.
func Shard(key uint64, numShards uint16) uint16 {
	if numShards < 2 {
		return 0
	}

	state := uint32(key) ^ uint32(key>>32)

	bestShard := uint16(0)
	bestPos := uint16(maxNumShards)

	consider := func(shard, pos uint16) {
		pos %= (maxNumShards - shard)
		if pos < bestPos {
			bestShard = shard
			bestPos = pos
		}
	}

	for i := uint16(0); i < numShards>>1; i++ {
		state = mix32(state)
		shard := i << 1

		consider(shard, uint16(state))
		if bestPos == 0 {
			return bestShard
		}

		consider(shard+1, uint16(state>>16))
		if bestPos == 0 {
			return bestShard
		}
	}

	// Odd shard counts have one leftover shard needing its own round.
	if numShards&0x1 == 1 {
		state = mix32(state)
		consider(numShards-1, uint16(state))
	}

	return bestShard
}
