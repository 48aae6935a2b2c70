package hashtable

import (
	"fmt"
)

// Stats is a snapshot of how entries are spread across the buckets
type Stats struct {
	Size         int
	Capacity     int
	UsedBuckets  int
	LongestChain int
	LoadFactor   float64
	Growth       bool
	Hash         string
}

func (s Stats) String() string {
	return fmt.Sprintf("size=%d capacity=%d used=%d longest=%d load=%.2f growth=%t hash=%s",
		s.Size, s.Capacity, s.UsedBuckets, s.LongestChain, s.LoadFactor, s.Growth, s.Hash)
}

// LoadFactor returns the ratio of size to capacity
func (t *Table) LoadFactor() float64 {
	if !t.live() {
		return 0
	}
	return float64(t.size) / float64(len(t.buckets))
}

// BucketLen returns the length of the chain in bucket i, or 0 when i is out
// of range
func (t *Table) BucketLen(i int) int {
	if !t.live() || i < 0 || i >= len(t.buckets) {
		return 0
	}
	return t.buckets[i].len()
}

// Stats returns a snapshot of the table
func (t *Table) Stats() Stats {
	st := Stats{
		Size:       t.Size(),
		Capacity:   t.Capacity(),
		LoadFactor: t.LoadFactor(),
		Growth:     t.IsGrowthEnabled(),
		Hash:       t.HashName(),
	}
	for i := 0; i < st.Capacity; i++ {
		n := t.buckets[i].len()
		if n > 0 {
			st.UsedBuckets++
		}
		if n > st.LongestChain {
			st.LongestChain = n
		}
	}
	return st
}
