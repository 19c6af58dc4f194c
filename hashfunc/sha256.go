package hashfunc

import (
	"encoding/binary"

	"github.com/minio/sha256-simd"
)

// SHA256 - Hash algorithm for string keys that derives the hash value from a salted SHA-256 digest.
// It is much slower than the other algorithms but keeps chains short even when keys are chosen by an adversary
// that does not know the salt.
type SHA256[K ~string] struct {
	salt []byte
}

// NewSHA256 - Returns a new SHA256 hash algorithm
//   - salt is prepended to every key before hashing, use the same salt to get reproducible hash values
func NewSHA256[K ~string](salt []byte) SHA256[K] {
	s := make([]byte, len(salt))
	_ = copy(s, salt)
	return SHA256[K]{salt: s}
}

// HashFunc - Returns the first 8 bytes of sha256(salt + key) as a little endian uint64
func (S SHA256[K]) HashFunc(key K) uint64 {
	h := sha256.New()
	_, _ = h.Write(S.salt)
	_, _ = h.Write([]byte(key))
	sum := h.Sum(nil)

	return binary.LittleEndian.Uint64(sum[:8])
}
