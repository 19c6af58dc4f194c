package separatechaining

import (
	"github.com/gostonefire/chainhashmap/internal/conf"
	"github.com/gostonefire/chainhashmap/internal/model"
)

// newBuckets - Returns a bucket array where every bucket is empty
func newBuckets(numberOfBuckets int) (buckets []int32) {
	buckets = make([]int32, numberOfBuckets)
	for i := range buckets {
		buckets[i] = conf.NoSlot
	}

	return
}

// allocate - Returns a free arena slot, reusing a released one if available
func (S *Table[K, V]) allocate() (slot int32) {
	if S.free != conf.NoSlot {
		slot = S.free
		S.free = S.records[slot].Next
		return
	}

	S.records = append(S.records, model.Record[K, V]{})
	slot = int32(len(S.records) - 1)

	return
}

// release - Zeroes the record at slot, so it holds no references, and puts it on the free list
func (S *Table[K, V]) release(slot int32) {
	S.records[slot] = model.Record[K, V]{
		InUse: false,
		Next:  S.free,
	}
	S.free = slot
}
