//go:build unit

package chainhashmap

import (
	"github.com/gostonefire/chainhashmap/hashfunc"
	"github.com/gostonefire/chainhashmap/internal/capacity"
	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestNewHashMap(t *testing.T) {
	t.Run("creates an empty hash map with the built-in hash algorithm", func(t *testing.T) {
		// Execute
		hm := NewHashMap[string, int](nil)

		// Check
		assert.True(t, hm.Empty(), "no entries")
		assert.Zero(t, hm.Size(), "size is zero")
		assert.Zero(t, hm.CapacityLevel(), "smallest capacity level")
		assert.Equal(t, capacity.Size(0), hm.BucketCount(), "smallest bucket table")
		assert.True(t, hm.InternalAlgorithm(), "internal algorithm in use")
		assert.NotNil(t, hm.HashFunction(), "hash function assigned")
	})

	t.Run("keeps a custom hash algorithm", func(t *testing.T) {
		// Prepare
		ha := hashfunc.NewIdentity[int]()

		// Execute
		hm := NewHashMap[int, string](ha)

		// Check
		assert.False(t, hm.InternalAlgorithm(), "custom algorithm in use")
		assert.Equal(t, hashfunc.HashAlgorithm[int](ha), hm.HashFunction(), "same hash algorithm returned")
	})
}

func TestNewFromEntries(t *testing.T) {
	t.Run("inserts entries in order so the first duplicate wins", func(t *testing.T) {
		// Prepare
		entries := []Entry[string, int]{
			{Key: "a", Value: 1},
			{Key: "b", Value: 2},
			{Key: "a", Value: 3},
		}

		// Execute
		hm := NewFromEntries(entries, hashfunc.NewCRC32[string]())

		// Check
		assert.Equal(t, 2, hm.Size(), "duplicates collapsed")
		v, err := hm.At("a")
		assert.NoError(t, err, "key a present")
		assert.Equal(t, 1, v, "first value kept")
	})
}

func TestNewFromSeq(t *testing.T) {
	t.Run("copies another hash map", func(t *testing.T) {
		// Prepare
		src := NewHashMap[int, int](nil)
		for i := 0; i < 50; i++ {
			src.Insert(i, i*i)
		}

		// Execute
		dst := NewFromSeq(src.All(), nil)

		// Check
		assert.Equal(t, src.Size(), dst.Size(), "same size")
		for i := 0; i < 50; i++ {
			v, err := dst.At(i)
			assert.NoError(t, err, "key copied")
			assert.Equal(t, i*i, v, "value copied")
		}
	})
}

func TestHashMap_Resize(t *testing.T) {
	t.Run("grows while inserting 1..200 and shrinks while erasing 1..190", func(t *testing.T) {
		// Prepare
		hm := NewHashMap[int, int](nil)
		require.Equal(t, 5, hm.BucketCount(), "schedule starts at 5 buckets")

		// Execute
		for i := 1; i <= 200; i++ {
			hm.Insert(i, i*10)
		}
		peakLevel := hm.CapacityLevel()

		// Check
		assert.Equal(t, 200, hm.Size(), "all keys inserted")
		assert.Greater(t, peakLevel, 0, "grown at least once")
		for i := 1; i <= 200; i++ {
			v, err := hm.At(i)
			assert.NoError(t, err, "key present")
			assert.Equal(t, i*10, v, "value preserved")
		}

		// Execute
		for i := 1; i <= 190; i++ {
			hm.Erase(i)
		}

		// Check
		assert.Equal(t, 10, hm.Size(), "ten keys left")
		assert.Less(t, hm.CapacityLevel(), peakLevel, "shrunk at least once")
		for i := 191; i <= 200; i++ {
			v, err := hm.At(i)
			assert.NoError(t, err, "remaining key present")
			assert.Equal(t, i*10, v, "remaining value preserved")
		}
	})

	t.Run("changes at most one level per insert", func(t *testing.T) {
		// Prepare
		hm := NewHashMap[int, int](hashfunc.NewIdentity[int]())

		// Execute and Check
		previous := hm.CapacityLevel()
		for i := 0; i < 1000; i++ {
			hm.Insert(i, i)
			level := hm.CapacityLevel()
			assert.LessOrEqual(t, level-previous, 1, "one level at a time")
			previous = level
		}
	})

	t.Run("follows the schedule for sequential keys", func(t *testing.T) {
		// Prepare
		hm := NewHashMap[int, int](hashfunc.NewIdentity[int]())

		// Execute
		for i := 0; i < 6; i++ {
			hm.Insert(i, i)
		}
		levelAt6 := hm.CapacityLevel()
		hm.Insert(6, 6)
		levelAt7 := hm.CapacityLevel()

		// Check
		assert.Equal(t, 0, levelAt6, "120 percent does not trigger growth")
		assert.Equal(t, 1, levelAt7, "140 percent triggers growth")
		assert.Equal(t, 11, hm.BucketCount(), "second schedule entry")
	})

	t.Run("logs rehash events at debug level", func(t *testing.T) {
		// Prepare
		hook := test.NewGlobal()
		level := log.GetLevel()
		log.SetLevel(log.DebugLevel)
		defer log.SetLevel(level)
		hm := NewHashMap[int, int](hashfunc.NewIdentity[int]())

		// Execute
		for i := 0; i < 7; i++ {
			hm.Insert(i, i)
		}

		// Check
		require.NotNil(t, hook.LastEntry(), "rehash logged")
		assert.Equal(t, "rehashed bucket table", hook.LastEntry().Message, "log message")
		assert.Equal(t, 5, hook.LastEntry().Data["from"], "old bucket count")
		assert.Equal(t, 11, hook.LastEntry().Data["to"], "new bucket count")
		hook.Reset()
	})
}

func TestHashMap_Stat(t *testing.T) {
	t.Run("reports usage and distribution", func(t *testing.T) {
		// Prepare
		hm := NewHashMap[int, string](hashfunc.NewIdentity[int]())
		for _, key := range []int{0, 5, 10, 2} {
			hm.Insert(key, "v")
		}

		// Execute
		stat := hm.Stat(true)

		// Check
		assert.Equal(t, 4, stat.Records, "records")
		assert.Equal(t, 5, stat.NumberOfBuckets, "buckets")
		assert.Equal(t, 0, stat.CapacityLevel, "level")
		assert.Equal(t, 80, stat.LoadFactor, "load factor")
		assert.Equal(t, hm.LoadFactor(), stat.LoadFactor, "same as LoadFactor")
		assert.Equal(t, 2, stat.UsedBuckets, "used buckets")
		assert.Equal(t, 3, stat.LongestChain, "longest chain")
		assert.InDelta(t, 2.0, stat.AverageChainLength, 0.0001, "average chain length")
		assert.Equal(t, []int{3, 0, 1, 0, 0}, stat.BucketDistribution, "distribution")
	})
}
