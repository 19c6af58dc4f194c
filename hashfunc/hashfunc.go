package hashfunc

// HashAlgorithm - Interface that permits a user of the HashMap to supply a custom hash function suited for its
// particular distribution of keys.
// Keys that are equal must produce equal hash values. The HashMap reduces the value modulo its current number of
// buckets, so the full 64-bit range may be used.
type HashAlgorithm[K any] interface {
	// HashFunc - Given key it generates a hash value
	HashFunc(key K) uint64
}

// Func - Adapter to allow the use of an ordinary function as a HashAlgorithm
type Func[K any] func(key K) uint64

// HashFunc - Calls F(key)
func (F Func[K]) HashFunc(key K) uint64 {
	return F(key)
}
