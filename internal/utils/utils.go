package utils

// LoadFactor - Returns the number of records per bucket expressed as an integer percentage.
// A table without buckets reports 0.
func LoadFactor(records, buckets int) int {
	if buckets <= 0 {
		return 0
	}
	return records * 100 / buckets
}

// AverageChainLength - Returns the average length of chains among the buckets that hold at least one record
func AverageChainLength(records, usedBuckets int) float64 {
	if usedBuckets == 0 {
		return 0
	}
	return float64(records) / float64(usedBuckets)
}
