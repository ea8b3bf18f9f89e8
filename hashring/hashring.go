// Package hashring distributes string keys over a set of nodes with a
// consistent hash ring keyed by MurmurHash3 digests from the mmh3 facade.
// Which backend computes the digests is the facade's build-time concern;
// ring placement is identical either way because the backends are digest
// compatible.
package hashring

import (
	"fmt"
	"sort"

	"github.com/hashbridge/mmh3"
)

// Fixed seed so ring placement is stable across processes.
const ringSeed uint32 = 0x9747b28c

// Virtual points per node: replicas * 4 ring keys per 128-bit digest.
const replicas = 40

type hashKey uint32
type hashKeyOrders []hashKey

func (h hashKeyOrders) Len() int           { return len(h) }
func (h hashKeyOrders) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h hashKeyOrders) Less(i, j int) bool { return h[i] < h[j] }

type HashRing struct {
	ring       map[hashKey]string
	sortedKeys []hashKey
	nodes      []string
}

func New(nodes []string) *HashRing {
	hashRing := &HashRing{
		ring:       make(map[hashKey]string),
		sortedKeys: make([]hashKey, 0),
		nodes:      nodes,
	}
	hashRing.generateCircle()
	return hashRing
}

func (h *HashRing) generateCircle() {
	for _, node := range h.nodes {
		for j := 0; j < replicas; j++ {
			nodeKey := fmt.Sprintf("%s-%d", node, j)
			h1, h2 := mmh3.Sum128([]byte(nodeKey), ringSeed)

			for _, key := range [4]hashKey{
				hashKey(h1), hashKey(h1 >> 32),
				hashKey(h2), hashKey(h2 >> 32),
			} {
				h.ring[key] = node
				h.sortedKeys = append(h.sortedKeys, key)
			}
		}
	}

	sort.Sort(hashKeyOrders(h.sortedKeys))
}

func (h *HashRing) GetNode(stringKey string) string {
	if len(h.ring) == 0 {
		return ""
	}

	pos := h.getNodePos(stringKey)
	return h.ring[h.sortedKeys[pos]]
}

// Requires len(h.ring) > 0
func (h *HashRing) getNodePos(stringKey string) (pos int) {
	key := genKey(stringKey)

	nodes := h.sortedKeys
	pos = sort.Search(len(nodes), func(i int) bool { return nodes[i] > key })

	if pos == len(nodes) {
		// Wrap the search, should return first node
		return 0
	} else {
		return
	}
}

// GetNodes returns all distinct nodes ordered by ring distance from the key.
func (h *HashRing) GetNodes(stringKey string) []string {
	if len(h.ring) == 0 {
		return nil
	}

	pos := h.getNodePos(stringKey)

	returnedValues := make(map[string]bool, len(h.nodes))
	resultSlice := make([]string, 0, len(h.nodes))

	for i := pos; i < pos+len(h.sortedKeys); i++ {
		key := h.sortedKeys[i%len(h.sortedKeys)]
		val := h.ring[key]
		if !returnedValues[val] {
			returnedValues[val] = true
			resultSlice = append(resultSlice, val)
		}
		if len(returnedValues) == len(h.nodes) {
			break
		}
	}

	return resultSlice
}

func genKey(key string) hashKey {
	h1, _ := mmh3.Sum128([]byte(key), ringSeed)
	return hashKey(h1)
}
