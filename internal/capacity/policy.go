package capacity

import (
	"github.com/gostonefire/chainhashmap/internal/conf"
	"github.com/gostonefire/chainhashmap/internal/utils"
)

// Policy - Decides when a bucket table moves between capacity levels.
// A zero Policy uses the thresholds from the conf package.
type Policy struct {
	GrowThreshold   int
	ShrinkThreshold int
}

// DefaultPolicy - Returns a Policy with the standard grow and shrink thresholds
func DefaultPolicy() Policy {
	return Policy{
		GrowThreshold:   conf.GrowLoadFactorThreshold,
		ShrinkThreshold: conf.ShrinkLoadFactorThreshold,
	}
}

// Grow - Returns the level to use after an insert that increased the number of records.
// At most one level is added per call, and growth stops at MaxLevel.
//   - records is the number of records after the insert
//   - level is the current capacity level
//
// It returns:
//   - newLevel is the capacity level the table should have
//   - changed is true if newLevel differs from level
func (P Policy) Grow(records, level int) (newLevel int, changed bool) {
	newLevel = level
	if level >= MaxLevel {
		return
	}
	if utils.LoadFactor(records, Size(level)) > P.growThreshold() {
		newLevel = level + 1
		changed = true
	}

	return
}

// Shrink - Returns the level to use after an erase that decreased the number of records.
// At most one level is removed per call, and level 0 is never left.
//   - records is the number of records after the erase
//   - level is the current capacity level
//
// It returns:
//   - newLevel is the capacity level the table should have
//   - changed is true if newLevel differs from level
func (P Policy) Shrink(records, level int) (newLevel int, changed bool) {
	newLevel = level
	if level <= 0 {
		return
	}
	if utils.LoadFactor(records, Size(level)) < P.shrinkThreshold() {
		newLevel = level - 1
		changed = true
	}

	return
}

func (P Policy) growThreshold() int {
	if P.GrowThreshold == 0 {
		return conf.GrowLoadFactorThreshold
	}
	return P.GrowThreshold
}

func (P Policy) shrinkThreshold() int {
	if P.ShrinkThreshold == 0 {
		return conf.ShrinkLoadFactorThreshold
	}
	return P.ShrinkThreshold
}
