package hashfunc

import "hash/crc32"

// CRC32 - Hash algorithm for string keys implemented using crc32.ChecksumIEEE
type CRC32[K ~string] struct{}

// NewCRC32 - Returns a new CRC32 hash algorithm
func NewCRC32[K ~string]() CRC32[K] {
	return CRC32[K]{}
}

// HashFunc - Returns the IEEE CRC-32 checksum of the key
func (C CRC32[K]) HashFunc(key K) uint64 {
	return uint64(crc32.ChecksumIEEE([]byte(key)))
}
