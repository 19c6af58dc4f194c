package chainhashmap

import (
	"github.com/gostonefire/chainhashmap/internal/capacity"
	"github.com/gostonefire/chainhashmap/internal/conf"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// insertOutcome - Tells what an insert did to the table
type insertOutcome uint8

const (
	// outcomeExisting - The key was already present, nothing was written
	outcomeExisting insertOutcome = iota
	// outcomeCreated - A new entry was written to the current table
	outcomeCreated
	// outcomeRelocated - A new entry was written and the table was then rehashed, slot refers to the new table
	outcomeRelocated
)

// insertResult - The outcome of an insert together with the slot of the entry in the current table
type insertResult struct {
	outcome insertOutcome
	slot    int32
}

// Size - Returns the number of entries in the hash map
func (H *HashMap[K, V]) Size() int {
	return H.table.Size()
}

// Empty - Returns true if the hash map holds no entries
func (H *HashMap[K, V]) Empty() bool {
	return H.table.Size() == 0
}

// Count - Returns 1 if an entry with the given key exists, otherwise 0
func (H *HashMap[K, V]) Count(key K) int {
	if _, ok := H.table.Find(H.table.BucketIndex(key), key); ok {
		return 1
	}
	return 0
}

// Contains - Returns true if an entry with the given key exists
func (H *HashMap[K, V]) Contains(key K) bool {
	return H.Count(key) == 1
}

// Insert - Adds an entry for key unless one already exists, an existing value is never overwritten.
// The table may grow one capacity level, which invalidates all cursors.
//   - key is the identifier of the entry
//   - value is the value to store with the key
func (H *HashMap[K, V]) Insert(key K, value V) {
	_ = H.insert(key, value)
}

// Erase - Removes the entry for key if it exists. Erasing a missing key does nothing.
// The table may shrink one capacity level, which invalidates all cursors.
//   - key is the identifier of the entry
func (H *HashMap[K, V]) Erase(key K) {
	if H.table.Remove(H.table.BucketIndex(key), key) {
		H.tryShrink()
	}
}

// Index - Returns a pointer to the value for key, first adding an entry with the zero value of V if the key is
// missing. The pointer is valid until the next mutating call on the hash map.
//   - key is the identifier of the entry
func (H *HashMap[K, V]) Index(key K) *V {
	var zero V
	result := H.insert(key, zero)

	return &H.table.Record(result.slot).Value
}

// At - Gets the value for key without modifying the hash map.
//   - key is the identifier of the entry
//
// It returns:
//   - value is the value of the matching entry if found
//   - err is of type KeyNotFound (possibly wrapped, use errors.Is) if no entry matches key
func (H *HashMap[K, V]) At(key K) (value V, err error) {
	slot, ok := H.table.Find(H.table.BucketIndex(key), key)
	if !ok {
		err = errors.Wrapf(KeyNotFound{}, "at %v", key)
		return
	}

	value = H.table.Record(slot).Value

	return
}

// Find - Returns a cursor positioned at the entry for key, or a cursor equal to End if there is none
//   - key is the identifier of the entry
func (H *HashMap[K, V]) Find(key K) Cursor[K, V] {
	bucket := H.table.BucketIndex(key)
	slot, ok := H.table.Find(bucket, key)
	if !ok {
		return H.End()
	}

	return Cursor[K, V]{
		hashMap:    H,
		bucket:     bucket,
		slot:       slot,
		generation: H.table.Generation(),
	}
}

// Clear - Removes all entries and returns the table to the smallest capacity level.
// All cursors are invalidated.
func (H *HashMap[K, V]) Clear() {
	from := H.table.NumberOfBuckets()
	H.level = conf.InitialCapacityLevel
	H.table.Clear(capacity.Size(H.level))

	log.WithFields(log.Fields{
		"from": from,
		"to":   H.table.NumberOfBuckets(),
	}).Debug("cleared bucket table")
}

// insert - Adds an entry for key unless it already exists and runs the grow check.
// If the table was rehashed the key is looked up again so the returned slot always refers to the live table.
func (H *HashMap[K, V]) insert(key K, value V) (result insertResult) {
	bucket := H.table.BucketIndex(key)
	if slot, ok := H.table.Find(bucket, key); ok {
		result = insertResult{outcome: outcomeExisting, slot: slot}
		return
	}

	result = insertResult{outcome: outcomeCreated, slot: H.table.Insert(bucket, key, value)}

	if H.tryGrow() {
		slot, _ := H.table.Find(H.table.BucketIndex(key), key)
		result = insertResult{outcome: outcomeRelocated, slot: slot}
	}

	return
}
