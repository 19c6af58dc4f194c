package separatechaining

import (
	"github.com/gostonefire/chainhashmap/hashfunc"
	"github.com/gostonefire/chainhashmap/internal/conf"
	"github.com/gostonefire/chainhashmap/internal/model"
)

// Table - Represents a bucket table using the Separate Chaining Collision Resolution Technique.
// All records live in one arena slice. Each bucket holds the arena index of the first record in its chain and each
// record holds the index of the next one, so no per record allocations are made. Records removed from the table
// are put on a free list and reused by later inserts, which keeps the arena index of every other record stable
// until the table is rehashed.
type Table[K comparable, V any] struct {
	hashAlgorithm hashfunc.HashAlgorithm[K]
	buckets       []int32
	records       []model.Record[K, V]
	free          int32
	size          int
	generation    uint64
}

// NewTable - Returns a pointer to a new, empty Table
//   - hashAlgorithm is the hash function used to select buckets
//   - numberOfBuckets is the length of the bucket array, must be higher than 0 (zero)
func NewTable[K comparable, V any](hashAlgorithm hashfunc.HashAlgorithm[K], numberOfBuckets int) *Table[K, V] {
	return &Table[K, V]{
		hashAlgorithm: hashAlgorithm,
		buckets:       newBuckets(numberOfBuckets),
		free:          conf.NoSlot,
	}
}

// NumberOfBuckets - Returns the length of the bucket array
func (S *Table[K, V]) NumberOfBuckets() int {
	return len(S.buckets)
}

// Size - Returns the number of records in use
func (S *Table[K, V]) Size() int {
	return S.size
}

// Generation - Returns a number that changes every time the table is rehashed or cleared.
// Positions (bucket, slot) taken from the table are only meaningful while the generation is unchanged.
func (S *Table[K, V]) Generation() uint64 {
	return S.generation
}

// BucketIndex - Returns the bucket that the given key belongs to
func (S *Table[K, V]) BucketIndex(key K) int {
	return int(S.hashAlgorithm.HashFunc(key) % uint64(len(S.buckets)))
}

// Head - Returns the arena index of the first record in the bucket, or conf.NoSlot for an empty bucket
func (S *Table[K, V]) Head(bucket int) int32 {
	return S.buckets[bucket]
}

// NextSlot - Returns the arena index of the record following slot in its chain, or conf.NoSlot at end of chain
func (S *Table[K, V]) NextSlot(slot int32) int32 {
	return S.records[slot].Next
}

// InUse - Returns true if slot refers to a record that currently holds an entry
func (S *Table[K, V]) InUse(slot int32) bool {
	return slot >= 0 && int(slot) < len(S.records) && S.records[slot].InUse
}

// Record - Returns a pointer to the record at slot.
// The pointer is valid until the next Insert, Rehash or Clear.
func (S *Table[K, V]) Record(slot int32) *model.Record[K, V] {
	return &S.records[slot]
}

// Chain - Returns a Chain that iterates over the records of the given bucket
func (S *Table[K, V]) Chain(bucket int) *Chain[K, V] {
	return newChain(S.records, S.buckets[bucket])
}

// Find - Searches the bucket for a record with the given key.
//   - bucket is the bucket to search, normally from a call to BucketIndex
//   - key is the key to look for
//
// It returns:
//   - slot is the arena index of the matching record, conf.NoSlot if not found
//   - ok is true if a matching record was found
func (S *Table[K, V]) Find(bucket int, key K) (slot int32, ok bool) {
	chain := S.Chain(bucket)
	for chain.HasNext() {
		s, record := chain.Next()
		if record.Key == key {
			slot, ok = s, true
			return
		}
	}

	slot = conf.NoSlot
	return
}

// Insert - Prepends a new record to the chain of the bucket. It does not check for an existing record with the
// same key, that is up to the caller.
//   - bucket is the bucket to insert into, normally from a call to BucketIndex
//   - key is the key of the new record
//   - value is the value of the new record
//
// It returns:
//   - slot is the arena index of the new record
func (S *Table[K, V]) Insert(bucket int, key K, value V) (slot int32) {
	slot = S.allocate()
	S.records[slot] = model.Record[K, V]{
		InUse: true,
		Next:  S.buckets[bucket],
		Key:   key,
		Value: value,
	}
	S.buckets[bucket] = slot
	S.size++

	return
}

// Remove - Unlinks the record with the given key from the bucket and puts its slot on the free list.
//   - bucket is the bucket to search, normally from a call to BucketIndex
//   - key is the key of the record to remove
//
// It returns:
//   - removed is true if a record was found and removed
func (S *Table[K, V]) Remove(bucket int, key K) (removed bool) {
	prev := conf.NoSlot
	chain := S.Chain(bucket)
	for chain.HasNext() {
		slot, record := chain.Next()
		if record.Key != key {
			prev = slot
			continue
		}

		if prev == conf.NoSlot {
			S.buckets[bucket] = record.Next
		} else {
			S.records[prev].Next = record.Next
		}
		S.release(slot)
		S.size--
		removed = true
		return
	}

	return
}

// Rehash - Returns a new Table with numberOfBuckets buckets holding every record of this table.
// Every record is moved exactly once to the chain matching its key in the new table, chain order is not kept.
// The new table has a compact arena and a generation that differs from this table's.
func (S *Table[K, V]) Rehash(numberOfBuckets int) (table *Table[K, V]) {
	table = &Table[K, V]{
		hashAlgorithm: S.hashAlgorithm,
		buckets:       newBuckets(numberOfBuckets),
		records:       make([]model.Record[K, V], 0, S.size),
		free:          conf.NoSlot,
		generation:    S.generation + 1,
	}

	for bucket := range S.buckets {
		chain := S.Chain(bucket)
		for chain.HasNext() {
			_, record := chain.Next()
			table.Insert(table.BucketIndex(record.Key), record.Key, record.Value)
		}
	}

	return
}

// Clear - Removes all records and replaces the bucket array with one of numberOfBuckets empty buckets
func (S *Table[K, V]) Clear(numberOfBuckets int) {
	S.buckets = newBuckets(numberOfBuckets)
	S.records = nil
	S.free = conf.NoSlot
	S.size = 0
	S.generation++
}

// Stats - Walks through the entire set of buckets and produces a model.TableStats struct.
//   - includeDistribution set to true will include a slice of length NumberOfBuckets with number of records per bucket, false will leave it nil.
func (S *Table[K, V]) Stats(includeDistribution bool) (stats model.TableStats) {
	stats.NumberOfBuckets = len(S.buckets)
	stats.ArenaSlots = len(S.records)
	if includeDistribution {
		stats.BucketDistribution = make([]int, len(S.buckets))
	}

	for bucket := range S.buckets {
		var n int
		chain := S.Chain(bucket)
		for chain.HasNext() {
			_, _ = chain.Next()
			n++
		}

		stats.Records += n
		if n > 0 {
			stats.UsedBuckets++
		}
		if n > stats.LongestChain {
			stats.LongestChain = n
		}
		if includeDistribution {
			stats.BucketDistribution[bucket] = n
		}
	}

	for slot := S.free; slot != conf.NoSlot; slot = S.records[slot].Next {
		stats.FreeSlots++
	}

	return
}
