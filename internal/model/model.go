package model

// Record - Represents one entry in the bucket table arena.
// Next links the record to the following record in the same chain, or, when the record is not in use,
// to the next free record.
type Record[K comparable, V any] struct {
	InUse bool
	Next  int32
	Key   K
	Value V
}

// TableStats - Represents statistics about how records are distributed over the buckets in a table
type TableStats struct {
	Records            int
	NumberOfBuckets    int
	UsedBuckets        int
	LongestChain       int
	ArenaSlots         int
	FreeSlots          int
	BucketDistribution []int
}
