// Package strtable is a string keyed associative container backed by separate
// chaining hash buckets. The implementation lives in pkg/hashtable; this
// package names the contract the command line tools program against.
package strtable

import "github.com/scottcagno/strtable/pkg/hashtable"

// Map is an interface for this package
type Map interface {
	Insert(key string, value interface{}) error
	InsertNull(value interface{}) error
	Lookup(key string) (interface{}, bool)
	LookupNull() (interface{}, bool)
	Remove(key string) bool
	RemoveNull() bool
	ContainsKey(key string) bool
	ContainsNullKey() bool
	Clear()
	Destroy()
	Size() int
	Capacity() int
	IsEmpty() bool
	IsGrowthEnabled() bool
}

// Growable is a Map whose bucket array can be grown on demand
type Growable interface {
	Map
	Rehash() error
	Stats() hashtable.Stats
	CloneShape() *hashtable.Table
}

var _ Growable = (*hashtable.Table)(nil)

// New returns a Growable backed by a hashtable.Table
func New(capacity int, growth bool) (Growable, error) {
	t, err := hashtable.New(capacity, growth)
	if err != nil {
		return nil, err
	}
	return t, nil
}
