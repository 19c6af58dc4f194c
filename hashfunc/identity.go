package hashfunc

import "golang.org/x/exp/constraints"

// Identity - Hash algorithm for integer keys that uses the key itself as hash value.
// Sequential keys land in sequential buckets which gives a perfectly even spread for dense key ranges.
type Identity[K constraints.Integer] struct{}

// NewIdentity - Returns a new Identity hash algorithm
func NewIdentity[K constraints.Integer]() Identity[K] {
	return Identity[K]{}
}

// HashFunc - Returns the key converted to uint64
func (I Identity[K]) HashFunc(key K) uint64 {
	return uint64(key)
}
