//go:build unit

package separatechaining

import (
	"github.com/gostonefire/chainhashmap/internal/conf"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestChain_Next(t *testing.T) {
	t.Run("walks the chain until exhausted", func(t *testing.T) {
		// Prepare
		table := newTestTable(5)
		table.Insert(0, 0, "a")
		table.Insert(0, 5, "b")
		chain := table.Chain(0)

		// Execute
		var values []string
		for chain.HasNext() {
			_, record := chain.Next()
			values = append(values, record.Value)
		}
		slot, record := chain.Next()

		// Check
		assert.Equal(t, []string{"b", "a"}, values, "records in chain order")
		assert.Equal(t, conf.NoSlot, slot, "no slot after end")
		assert.Nil(t, record, "no record after end")
	})

	t.Run("empty bucket has no records", func(t *testing.T) {
		// Prepare
		table := newTestTable(5)

		// Execute
		chain := table.Chain(3)

		// Check
		assert.False(t, chain.HasNext(), "nothing to fetch")
	})
}
