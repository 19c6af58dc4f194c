package capacity

// sizes - Bucket counts per capacity level, each roughly double the previous and prime-like to spread
// hash values that share common factors
var sizes = [...]int{
	5, 11, 23, 47, 97, 197, 397, 797, 1597, 3203, 6421,
	12853, 25717, 51437, 102877, 205759, 411527, 823117,
	1646237, 3292489, 6584983, 13169977, 26339969, 52679969,
}

// MaxLevel - The highest capacity level available in the schedule
const MaxLevel = len(sizes) - 1

// Levels - Returns the number of capacity levels in the schedule
func Levels() int {
	return len(sizes)
}

// Size - Returns the number of buckets for a capacity level.
// Levels below zero are treated as level 0 and levels past MaxLevel as MaxLevel.
func Size(level int) int {
	if level < 0 {
		return sizes[0]
	}
	if level > MaxLevel {
		return sizes[MaxLevel]
	}
	return sizes[level]
}
