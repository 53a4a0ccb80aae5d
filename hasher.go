package hashmap

import (
	"github.com/cespare/xxhash/v2"
	"github.com/dolthub/maphash"
	"github.com/zeebo/xxh3"
)

// DefaultHasher returns a seeded hash function for any comparable key, backed by
// the runtime's own map hasher. Each call returns a hasher with a fresh seed.
func DefaultHasher[K comparable]() func(key K) uint64 {
	return maphash.NewHasher[K]().Hash
}

// XXHashString hashes a string key with xxHash64.
func XXHashString(key string) uint64 {
	return xxhash.Sum64String(key)
}

// XXH3String hashes a string key with XXH3.
func XXH3String(key string) uint64 {
	return xxh3.HashString(key)
}
