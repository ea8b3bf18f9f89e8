// Package cffi exposes MurmurHash3 by calling into the vendored smhasher
// reference implementation through cgo. It provides the same capability set
// as the native package; the two are interchangeable and must produce
// identical digests for identical inputs.
//
// In builds without cgo (or with the purego build tag) the package still
// compiles, but Available reports false and every hashing entry point
// panics. The root mmh3 package never routes to this backend in such builds,
// so the panics only fire for callers that import cffi directly without
// checking Available.
package cffi

import "hash"

// Hash128 is a streaming 128-bit digest. It matches the contract of
// native.Digest128: Sum128 returns the low and high words of the digest and
// leaves the state untouched.
type Hash128 interface {
	hash.Hash
	Sum128() (uint64, uint64)
}

// Streaming digests buffer written bytes and invoke the one-shot C entry
// points on Sum, since the reference API has no incremental form. The C side
// takes a signed 32-bit length, which bounds a single hash input.
const maxInputLen = 1<<31 - 1
