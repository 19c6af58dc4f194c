package main

import (
	"strconv"

	"github.com/gostonefire/chainhashmap"
	"github.com/gostonefire/chainhashmap/hashfunc"
	"github.com/pkg/errors"
)

// hashNames lists the values accepted by --hash.
var hashNames = []string{"builtin", "identity", "crc32", "sha256"}

// sha256Salt is fixed so runs are reproducible.
var sha256Salt = []byte("chainmap")

// newIntHashMap returns an empty map for integer keys using the named hash algorithm.
func newIntHashMap(hashName string) (*chainhashmap.HashMap[int, int], error) {
	switch hashName {
	case "builtin":
		return chainhashmap.NewHashMap[int, int](nil), nil
	case "identity":
		return chainhashmap.NewHashMap[int, int](hashfunc.NewIdentity[int]()), nil
	case "crc32":
		return chainhashmap.NewHashMap[int, int](viaString(hashfunc.NewCRC32[string]())), nil
	case "sha256":
		return chainhashmap.NewHashMap[int, int](viaString(hashfunc.NewSHA256[string](sha256Salt))), nil
	}

	return nil, errors.Errorf("unknown hash %q, use one of %v", hashName, hashNames)
}

// newStringHashMap returns an empty map for string keys using the named hash algorithm.
func newStringHashMap(hashName string) (*chainhashmap.HashMap[string, int], error) {
	switch hashName {
	case "builtin":
		return chainhashmap.NewHashMap[string, int](nil), nil
	case "crc32":
		return chainhashmap.NewHashMap[string, int](hashfunc.NewCRC32[string]()), nil
	case "sha256":
		return chainhashmap.NewHashMap[string, int](hashfunc.NewSHA256[string](sha256Salt)), nil
	}

	return nil, errors.Errorf("hash %q can not be used for words, use builtin, crc32 or sha256", hashName)
}

// viaString hashes integer keys by their decimal representation.
func viaString(ha hashfunc.HashAlgorithm[string]) hashfunc.HashAlgorithm[int] {
	return hashfunc.Func[int](func(key int) uint64 {
		return ha.HashFunc(strconv.Itoa(key))
	})
}
