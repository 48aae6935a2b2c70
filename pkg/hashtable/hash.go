package hashtable

import (
	"sort"

	"github.com/cespare/xxhash/v2"
)

const (
	djb2Seed = 5381
	djb2Mult = 33

	// nullHash is what every HashFunc returns for the null key
	nullHash = 0
)

// HashFunc is a type definition for what a hash function should look like
type HashFunc func(s string) uint64

// Hash computes the djb2 hash of s: starting at 5381, each byte is folded in
// with hash = hash*33 + b, wrapping at 64 bits.
func Hash(s string) uint64 {
	hash := uint64(djb2Seed)
	for i := 0; i < len(s); i++ {
		hash = hash*djb2Mult + uint64(s[i])
	}
	return hash
}

// XXHash is an alternative HashFunc backed by xxhash64
func XXHash(s string) uint64 {
	return xxhash.Sum64String(s)
}

var hashFuncs = map[string]HashFunc{
	"djb2":   Hash,
	"xxhash": XXHash,
}

// LookupHashFunc returns the registered hash function with the given name
func LookupHashFunc(name string) (HashFunc, bool) {
	fn, ok := hashFuncs[name]
	return fn, ok
}

// HashFuncNames returns the names of the registered hash functions, sorted
func HashFuncNames() []string {
	names := make([]string, 0, len(hashFuncs))
	for name := range hashFuncs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// hashKey applies fn to k, mapping the null key to nullHash
func hashKey(fn HashFunc, k key) uint64 {
	if k.null {
		return nullHash
	}
	return fn(k.str)
}
