package separatechaining

import (
	"github.com/gostonefire/chainhashmap/internal/conf"
	"github.com/gostonefire/chainhashmap/internal/model"
)

// Chain - Is used to iterate over the records of one bucket one by one.
type Chain[K comparable, V any] struct {
	records []model.Record[K, V]
	slot    int32
}

// newChain - Returns a pointer to a new Chain starting at the given head slot
func newChain[K comparable, V any](records []model.Record[K, V], head int32) *Chain[K, V] {

	return &Chain[K, V]{
		records: records,
		slot:    head,
	}
}

// HasNext - Returns true if there are more records to be fetched from a call to Next.
func (C *Chain[K, V]) HasNext() bool {
	return C.slot != conf.NoSlot
}

// Next - Returns the next record in the chain.
// It returns:
//   - slot is the arena index of the record, or conf.NoSlot if the chain is exhausted.
//   - record is a pointer to the record in the arena, nil if the chain is exhausted.
func (C *Chain[K, V]) Next() (slot int32, record *model.Record[K, V]) {
	if C.slot == conf.NoSlot {
		slot = conf.NoSlot
		return
	}

	slot = C.slot
	record = &C.records[slot]
	C.slot = record.Next

	return
}
