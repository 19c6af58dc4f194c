package chainhashmap

import (
	"iter"

	"github.com/gostonefire/chainhashmap/internal/conf"
)

// Cursor - A position in a HashMap used to walk its entries one by one, skipping empty buckets.
// The zero Cursor is not usable, obtain one from Begin, End or Find.
//
// A cursor is invalidated by any mutation that rehashes or clears the table, and by erasing the entry it points
// at. Using an invalidated cursor panics.
type Cursor[K comparable, V any] struct {
	hashMap    *HashMap[K, V]
	bucket     int
	slot       int32
	generation uint64
}

// Begin - Returns a cursor at the first entry, or a cursor equal to End if the hash map is empty
func (H *HashMap[K, V]) Begin() Cursor[K, V] {
	c := Cursor[K, V]{
		hashMap:    H,
		bucket:     0,
		slot:       H.table.Head(0),
		generation: H.table.Generation(),
	}
	c.normalize()

	return c
}

// End - Returns the cursor that follows the last entry. It must not be dereferenced.
func (H *HashMap[K, V]) End() Cursor[K, V] {
	return Cursor[K, V]{
		hashMap:    H,
		bucket:     H.table.NumberOfBuckets(),
		slot:       conf.NoSlot,
		generation: H.table.Generation(),
	}
}

// All - Returns an iterator over all entries, in no particular order.
// The hash map must not be modified while iterating, except through the value pointer given by Index.
func (H *HashMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for c := H.Begin(); !c.IsEnd(); c.Next() {
			if !yield(c.Entry()) {
				return
			}
		}
	}
}

// Keys - Returns an iterator over all keys, in no particular order
func (H *HashMap[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for c := H.Begin(); !c.IsEnd(); c.Next() {
			if !yield(c.Key()) {
				return
			}
		}
	}
}

// IsEnd - Returns true if the cursor is past the last entry
func (C Cursor[K, V]) IsEnd() bool {
	return C.hashMap == nil || C.slot == conf.NoSlot
}

// Valid - Returns true if the cursor points at an entry and the hash map has not invalidated it
func (C Cursor[K, V]) Valid() bool {
	return !C.IsEnd() && !C.stale()
}

// Equal - Returns true if both cursors belong to the same hash map and are at the same position
func (C Cursor[K, V]) Equal(other Cursor[K, V]) bool {
	return C.hashMap == other.hashMap && C.bucket == other.bucket && C.slot == other.slot
}

// Next - Moves the cursor to the following entry and returns the moved cursor (prefix increment)
func (C *Cursor[K, V]) Next() Cursor[K, V] {
	C.mustBeValid("advance")
	C.slot = C.hashMap.table.NextSlot(C.slot)
	C.normalize()

	return *C
}

// PostNext - Moves the cursor to the following entry and returns the cursor as it was before (postfix increment)
func (C *Cursor[K, V]) PostNext() Cursor[K, V] {
	prev := *C
	C.Next()

	return prev
}

// Key - Returns the key of the entry at the cursor
func (C Cursor[K, V]) Key() K {
	C.mustBeValid("dereference")
	return C.hashMap.table.Record(C.slot).Key
}

// Value - Returns the value of the entry at the cursor
func (C Cursor[K, V]) Value() V {
	C.mustBeValid("dereference")
	return C.hashMap.table.Record(C.slot).Value
}

// Entry - Returns both key and value of the entry at the cursor
func (C Cursor[K, V]) Entry() (key K, value V) {
	C.mustBeValid("dereference")
	record := C.hashMap.table.Record(C.slot)
	key, value = record.Key, record.Value

	return
}

// SetValue - Replaces the value of the entry at the cursor, the key can not be changed
func (C Cursor[K, V]) SetValue(value V) {
	C.mustBeValid("dereference")
	C.hashMap.table.Record(C.slot).Value = value
}

// normalize - Moves past exhausted buckets until an entry or the end of the table is reached
func (C *Cursor[K, V]) normalize() {
	table := C.hashMap.table
	n := table.NumberOfBuckets()
	for C.slot == conf.NoSlot && C.bucket < n {
		C.bucket++
		if C.bucket < n {
			C.slot = table.Head(C.bucket)
		}
	}
}

// stale - Returns true if the table was rehashed or cleared, or the entry erased, since the cursor was positioned
func (C Cursor[K, V]) stale() bool {
	table := C.hashMap.table
	return C.generation != table.Generation() || !table.InUse(C.slot)
}

func (C Cursor[K, V]) mustBeValid(op string) {
	if C.IsEnd() {
		panic("chainhashmap: " + op + " of end cursor")
	}
	if C.stale() {
		panic("chainhashmap: " + op + " of invalidated cursor")
	}
}
