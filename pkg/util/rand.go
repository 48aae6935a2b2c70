package util

import (
	"strings"

	"golang.org/x/exp/rand"
)

const (
	letterBytes   = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	letterIdxBits = 6                    // 6 bits to represent a letter index
	letterIdxMask = 1<<letterIdxBits - 1 // All 1-bits, as many as letterIdxBits
	letterIdxMax  = 63 / letterIdxBits   // # of letter indices fitting in 63 bits
)

// NewRand returns a generator seeded with seed, so runs can be replayed
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func RandString(r *rand.Rand, n int) string {
	sb := strings.Builder{}
	sb.Grow(n)
	// A r.Int63() generates 63 random bits, enough for letterIdxMax characters!
	for i, cache, remain := n-1, r.Int63(), letterIdxMax; i >= 0; {
		if remain == 0 {
			cache, remain = r.Int63(), letterIdxMax
		}
		if idx := int(cache & letterIdxMask); idx < len(letterBytes) {
			sb.WriteByte(letterBytes[idx])
			i--
		}
		cache >>= letterIdxBits
		remain--
	}
	return sb.String()
}

// RandKeys returns count distinct random strings of the given width
func RandKeys(r *rand.Rand, count, width int) []string {
	seen := make(map[string]struct{}, count)
	keys := make([]string, 0, count)
	for len(keys) < count {
		k := RandString(r, width)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	return keys
}
