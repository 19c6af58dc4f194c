//go:build unit

package chainhashmap

import (
	"github.com/gostonefire/chainhashmap/hashfunc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestCursor_Begin(t *testing.T) {
	t.Run("begin equals end on an empty hash map", func(t *testing.T) {
		// Prepare
		hm := NewHashMap[int, int](nil)

		// Execute
		c := hm.Begin()

		// Check
		assert.True(t, c.Equal(hm.End()), "begin equals end")
		assert.True(t, c.IsEnd(), "cursor at end")
		assert.False(t, c.Valid(), "cursor not valid")
	})

	t.Run("skips empty buckets to the single entry", func(t *testing.T) {
		// Prepare
		hm := NewHashMap[int, string](hashfunc.NewIdentity[int]())
		hm.Insert(4, "last bucket")

		// Execute
		c := hm.Begin()

		// Check
		require.True(t, c.Valid(), "cursor at entry")
		assert.Equal(t, 4, c.Key(), "found entry in bucket 4")
		assert.False(t, c.Equal(hm.End()), "not at end")
	})
}

func TestCursor_Next(t *testing.T) {
	t.Run("advancing past the single entry reaches end", func(t *testing.T) {
		// Prepare
		hm := NewHashMap[int, string](hashfunc.NewIdentity[int]())
		hm.Insert(1, "only")
		c := hm.Begin()

		// Execute
		next := c.Next()

		// Check
		assert.True(t, next.Equal(hm.End()), "returned cursor is end")
		assert.True(t, c.Equal(hm.End()), "cursor itself is end")
	})

	t.Run("visits every entry once across chains and empty buckets", func(t *testing.T) {
		// Prepare
		hm := NewHashMap[int, int](hashfunc.NewIdentity[int]())
		for _, key := range []int{0, 5, 3, 8, 13} {
			hm.Insert(key, key*10)
		}

		// Execute
		seen := make(map[int]int)
		var steps int
		for c := hm.Begin(); !c.Equal(hm.End()); c.Next() {
			k, v := c.Entry()
			seen[k] = v
			steps++
		}

		// Check
		assert.Equal(t, hm.Size(), steps, "one step per entry")
		assert.Equal(t, map[int]int{0: 0, 5: 50, 3: 30, 8: 80, 13: 130}, seen, "every entry visited")
	})

	t.Run("postfix advance returns the previous position", func(t *testing.T) {
		// Prepare
		hm := NewHashMap[int, int](hashfunc.NewIdentity[int]())
		hm.Insert(1, 1)
		hm.Insert(2, 2)
		c := hm.Begin()
		first := c

		// Execute
		prev := c.PostNext()

		// Check
		assert.True(t, prev.Equal(first), "previous position returned")
		assert.False(t, c.Equal(first), "cursor moved")
		assert.Equal(t, 2, c.Key(), "cursor at second entry")
	})

	t.Run("panics when advancing end", func(t *testing.T) {
		// Prepare
		hm := NewHashMap[int, int](nil)
		c := hm.End()

		// Execute and Check
		assert.Panics(t, func() { c.Next() }, "end cannot advance")
	})
}

func TestCursor_Equal(t *testing.T) {
	t.Run("direct end equals end reached by advancing", func(t *testing.T) {
		// Prepare
		hm := NewHashMap[string, int](nil)
		for i, k := range []string{"a", "b", "c"} {
			hm.Insert(k, i)
		}
		c := hm.Begin()

		// Execute
		for !c.IsEnd() {
			c.Next()
		}

		// Check
		assert.True(t, c.Equal(hm.End()), "same end state")
	})

	t.Run("cursors of different hash maps differ", func(t *testing.T) {
		// Prepare
		hm1 := NewHashMap[int, int](nil)
		hm2 := NewHashMap[int, int](nil)

		// Execute and Check
		assert.False(t, hm1.End().Equal(hm2.End()), "different hash maps")
	})
}

func TestCursor_Dereference(t *testing.T) {
	t.Run("panics on end", func(t *testing.T) {
		// Prepare
		hm := NewHashMap[int, int](nil)
		end := hm.End()

		// Execute and Check
		assert.PanicsWithValue(t, "chainhashmap: dereference of end cursor", func() { end.Key() }, "end cannot be dereferenced")
	})

	t.Run("panics after a rehash", func(t *testing.T) {
		// Prepare
		hm := NewHashMap[int, int](hashfunc.NewIdentity[int]())
		hm.Insert(0, 0)
		c := hm.Find(0)
		require.True(t, c.Valid(), "cursor valid before rehash")

		// Execute
		for i := 1; i < 7; i++ {
			hm.Insert(i, i)
		}

		// Check
		assert.False(t, c.Valid(), "cursor invalidated")
		assert.PanicsWithValue(t, "chainhashmap: dereference of invalidated cursor", func() { c.Value() }, "stale cursor detected")
	})

	t.Run("is invalid once its entry is erased", func(t *testing.T) {
		// Prepare
		hm := NewHashMap[int, int](nil)
		hm.Insert(1, 1)
		hm.Insert(2, 2)
		c := hm.Find(1)

		// Execute
		hm.Erase(1)

		// Check
		assert.False(t, c.Valid(), "cursor invalidated")
	})

	t.Run("set value writes through to the hash map", func(t *testing.T) {
		// Prepare
		hm := NewHashMap[string, int](nil)
		hm.Insert("k", 1)
		c := hm.Find("k")

		// Execute
		c.SetValue(42)

		// Check
		v, err := hm.At("k")
		assert.NoError(t, err, "key present")
		assert.Equal(t, 42, v, "value replaced")
	})
}

func TestHashMap_Keys(t *testing.T) {
	t.Run("yields every key and stops early on request", func(t *testing.T) {
		// Prepare
		hm := NewHashMap[int, int](nil)
		for i := 0; i < 30; i++ {
			hm.Insert(i, i)
		}

		// Execute
		var all, firstThree []int
		for k := range hm.Keys() {
			all = append(all, k)
		}
		for k := range hm.Keys() {
			if len(firstThree) == 3 {
				break
			}
			firstThree = append(firstThree, k)
		}

		// Check
		assert.Len(t, all, 30, "every key")
		assert.ElementsMatch(t, all[:3], firstThree, "same order without mutation")
	})
}
