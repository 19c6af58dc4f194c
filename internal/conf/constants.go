package conf

// GrowLoadFactorThreshold - Load factor (in percent) that has to be exceeded after an insert for the bucket
// table to grow one capacity level
const GrowLoadFactorThreshold int = 130

// ShrinkLoadFactorThreshold - Load factor (in percent) that the table has to fall below after an erase for the
// bucket table to shrink one capacity level
const ShrinkLoadFactorThreshold int = 30

// InitialCapacityLevel - Capacity level used for a new or cleared hash map
const InitialCapacityLevel int = 0

// NoSlot - Arena index marking an empty bucket, the end of a chain or the end of the free list
const NoSlot int32 = -1
