package hash

import (
	"github.com/dolthub/maphash"
)

// SeparateChainingHashAlgorithm - The internally used hash algorithm. It is implemented using the same hash
// function as Go's built-in map for the key type, seeded randomly per instance, so any comparable key type is
// supported without configuration.
type SeparateChainingHashAlgorithm[K comparable] struct {
	hasher maphash.Hasher[K]
}

// NewSeparateChainingHashAlgorithm - Returns a pointer to a new SeparateChainingHashAlgorithm instance
func NewSeparateChainingHashAlgorithm[K comparable]() *SeparateChainingHashAlgorithm[K] {
	return &SeparateChainingHashAlgorithm[K]{hasher: maphash.NewHasher[K]()}
}

// HashFunc - Given key it generates a hash value
func (S *SeparateChainingHashAlgorithm[K]) HashFunc(key K) uint64 {
	return S.hasher.Hash(key)
}
