package chainhashmap

import (
	"iter"

	"github.com/gostonefire/chainhashmap/hashfunc"
	"github.com/gostonefire/chainhashmap/internal/capacity"
	"github.com/gostonefire/chainhashmap/internal/conf"
	"github.com/gostonefire/chainhashmap/internal/hash"
	"github.com/gostonefire/chainhashmap/internal/storage/separatechaining"
	"github.com/gostonefire/chainhashmap/internal/utils"
	log "github.com/sirupsen/logrus"
)

// Entry - A key and its value, used when building a HashMap from a list of entries
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// HashMapStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of entries stored
//   - NumberOfBuckets is the current length of the bucket table
//   - CapacityLevel is the current position in the capacity schedule
//   - LoadFactor is entries per bucket as an integer percentage
//   - UsedBuckets is the number of buckets holding at least one entry
//   - LongestChain is the number of entries in the most populated bucket
//   - AverageChainLength is the average number of entries in used buckets
//   - BucketDistribution is the number of entries stored in each bucket
type HashMapStat struct {
	Records            int
	NumberOfBuckets    int
	CapacityLevel      int
	LoadFactor         int
	UsedBuckets        int
	LongestChain       int
	AverageChainLength float64
	BucketDistribution []int
}

// HashMap - An unordered map from unique keys to values using separate chaining.
// The bucket table grows one step in a fixed capacity schedule when the load factor exceeds 130 percent after an
// insert, and shrinks one step when it falls below 30 percent after an erase.
//
// A HashMap is not safe for concurrent use. Cursors, and pointers returned by Index, must not be used after a
// mutating call that may resize the table or remove the entry they refer to.
type HashMap[K comparable, V any] struct {
	table             *separatechaining.Table[K, V]
	level             int
	policy            capacity.Policy
	hashAlgorithm     hashfunc.HashAlgorithm[K]
	internalAlgorithm bool
}

// NewHashMap - Returns a new, empty hash map at the smallest capacity level.
//   - hashAlgorithm is an optional entry to provide a custom hash algorithm following the hashfunc.HashAlgorithm interface, nil selects the built-in hash for K.
func NewHashMap[K comparable, V any](hashAlgorithm hashfunc.HashAlgorithm[K]) *HashMap[K, V] {
	// If no HashAlgorithm was given then use the default internal
	var internalAlg bool
	if hashAlgorithm == nil {
		hashAlgorithm = hash.NewSeparateChainingHashAlgorithm[K]()
		internalAlg = true
	}

	return &HashMap[K, V]{
		table:             separatechaining.NewTable[K, V](hashAlgorithm, capacity.Size(conf.InitialCapacityLevel)),
		level:             conf.InitialCapacityLevel,
		policy:            capacity.DefaultPolicy(),
		hashAlgorithm:     hashAlgorithm,
		internalAlgorithm: internalAlg,
	}
}

// NewFromEntries - Returns a new hash map holding the given entries. Entries are inserted in order, so for
// duplicate keys the first entry wins.
//   - entries is the list of entries to insert
//   - hashAlgorithm is an optional custom hash algorithm, nil selects the built-in hash for K.
func NewFromEntries[K comparable, V any](entries []Entry[K, V], hashAlgorithm hashfunc.HashAlgorithm[K]) *HashMap[K, V] {
	hm := NewHashMap[K, V](hashAlgorithm)
	for _, e := range entries {
		hm.Insert(e.Key, e.Value)
	}

	return hm
}

// NewFromSeq - Returns a new hash map holding every pair yielded by seq. Pairs are inserted in the order they are
// yielded, so for duplicate keys the first pair wins.
//   - seq is the sequence of key value pairs to insert, for instance the All method of another HashMap
//   - hashAlgorithm is an optional custom hash algorithm, nil selects the built-in hash for K.
func NewFromSeq[K comparable, V any](seq iter.Seq2[K, V], hashAlgorithm hashfunc.HashAlgorithm[K]) *HashMap[K, V] {
	hm := NewHashMap[K, V](hashAlgorithm)
	for k, v := range seq {
		hm.Insert(k, v)
	}

	return hm
}

// HashFunction - Returns the hash algorithm in use, which is the built-in one if none was given at creation
func (H *HashMap[K, V]) HashFunction() hashfunc.HashAlgorithm[K] {
	return H.hashAlgorithm
}

// InternalAlgorithm - Returns true if the hash map uses the built-in hash algorithm
func (H *HashMap[K, V]) InternalAlgorithm() bool {
	return H.internalAlgorithm
}

// CapacityLevel - Returns the current position in the capacity schedule
func (H *HashMap[K, V]) CapacityLevel() int {
	return H.level
}

// BucketCount - Returns the current number of buckets
func (H *HashMap[K, V]) BucketCount() int {
	return H.table.NumberOfBuckets()
}

// LoadFactor - Returns the number of entries per bucket as an integer percentage
func (H *HashMap[K, V]) LoadFactor() int {
	return utils.LoadFactor(H.table.Size(), H.table.NumberOfBuckets())
}

// Stat - Walks through the entire set of buckets and produces a HashMapStat struct with information.
//   - includeDistribution set to true will include a slice of length NumberOfBuckets with number of entries per bucket, false will set HashMapStat.BucketDistribution to nil.
func (H *HashMap[K, V]) Stat(includeDistribution bool) (hashMapStat HashMapStat) {
	ts := H.table.Stats(includeDistribution)

	hashMapStat = HashMapStat{
		Records:            ts.Records,
		NumberOfBuckets:    ts.NumberOfBuckets,
		CapacityLevel:      H.level,
		LoadFactor:         utils.LoadFactor(ts.Records, ts.NumberOfBuckets),
		UsedBuckets:        ts.UsedBuckets,
		LongestChain:       ts.LongestChain,
		AverageChainLength: utils.AverageChainLength(ts.Records, ts.UsedBuckets),
		BucketDistribution: ts.BucketDistribution,
	}

	return
}

// tryGrow - Moves the table one capacity level up if the load factor calls for it
func (H *HashMap[K, V]) tryGrow() bool {
	level, changed := H.policy.Grow(H.table.Size(), H.level)
	if changed {
		H.changeLevel(level)
	}
	return changed
}

// tryShrink - Moves the table one capacity level down if the load factor calls for it
func (H *HashMap[K, V]) tryShrink() bool {
	level, changed := H.policy.Shrink(H.table.Size(), H.level)
	if changed {
		H.changeLevel(level)
	}
	return changed
}

// changeLevel - Rehashes every entry into a new table sized for the given capacity level
func (H *HashMap[K, V]) changeLevel(level int) {
	from := H.table.NumberOfBuckets()
	H.level = level
	H.table = H.table.Rehash(capacity.Size(level))

	log.WithFields(log.Fields{
		"from":    from,
		"to":      H.table.NumberOfBuckets(),
		"level":   level,
		"entries": H.table.Size(),
	}).Debug("rehashed bucket table")
}
