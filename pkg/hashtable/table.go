package hashtable

import (
	"strconv"

	"github.com/scottcagno/strtable/pkg/diag"
)

// Table is a string keyed hash table using separate chaining. Each bucket is
// a chain of entries whose keys hash to the same index. A growth enabled table
// doubles its bucket count and rehashes whenever its size exceeds its
// capacity. A Table is not safe for concurrent use.
type Table struct {
	hash      HashFunc
	hashName  string
	handler   diag.Handler
	growth    bool
	size      int
	buckets   []chain
	destroyed bool
}

// New returns a new Table with the given number of buckets, using the djb2
// hash function and logging failure reports.
func New(capacity int, growth bool) (*Table, error) {
	return NewWithConfig(&Config{
		Capacity: capacity,
		Growth:   growth,
	})
}

// NewWithConfig returns a new Table configured by conf. A nil conf uses the
// default configuration.
func NewWithConfig(conf *Config) (*Table, error) {
	conf = checkConfig(conf)
	if conf.Capacity < 1 || conf.Capacity > MaxCapacity {
		return nil, report(conf.Handler, diag.Error, "init", ErrInvalidCapacity,
			"cannot initialize a table with capacity "+strconv.Itoa(conf.Capacity), "no table created")
	}
	hash, _ := LookupHashFunc(conf.Hash)
	return newTable(conf.Capacity, conf.Growth, hash, conf.Hash, conf.Handler), nil
}

// newTable is the internal constructor; the capacity must already be valid
func newTable(capacity int, growth bool, hash HashFunc, hashName string, handler diag.Handler) *Table {
	return &Table{
		hash:     hash,
		hashName: hashName,
		handler:  handler,
		growth:   growth,
		size:     0,
		buckets:  make([]chain, capacity),
	}
}

// live reports whether the table may still be used
func (t *Table) live() bool {
	return t != nil && !t.destroyed && len(t.buckets) > 0
}

// bucketID returns the index of the bucket responsible for k
func (t *Table) bucketID(k key) int {
	return int(hashKey(t.hash, k) % uint64(len(t.buckets)))
}

// bucket returns the chain responsible for k
func (t *Table) bucket(k key) *chain {
	return &t.buckets[t.bucketID(k)]
}

// Insert adds a key value entry to the table. A key maps to at most one
// value, so inserting a key that is already present fails with
// ErrDuplicateKey. It fails with ErrCapacityExceeded when a table without
// growth is full.
func (t *Table) Insert(key string, value interface{}) error {
	return t.insert("insert", textKey(key), value)
}

// InsertNull adds an entry under the null key. Only one such entry may exist;
// a second attempt fails with ErrDuplicateNullKey.
func (t *Table) InsertNull(value interface{}) error {
	return t.insert("insert", nullKey, value)
}

func (t *Table) insert(op string, k key, val valType) error {
	if !t.live() {
		return t.fail(diag.Error, op, ErrTableDestroyed,
			"attempted to add to a destroyed table", "entry not added")
	}
	// check the table has space to store this new entry
	if !t.growth && t.size >= len(t.buckets) {
		return t.fail(diag.Error, op, ErrCapacityExceeded,
			"attempted to add "+k.String()+" to a full table", "entry not added")
	}
	b := t.bucket(k)
	if b.find(k) != nil {
		if k.null {
			return t.fail(diag.Error, op, ErrDuplicateNullKey,
				"attempted to add multiple null keys to a table", "entry not added")
		}
		return t.fail(diag.Error, op, ErrDuplicateKey,
			"attempted to add "+k.String()+" twice", "existing entry kept")
	}
	b.prepend(newEntry(k, val))
	t.size++
	// a growth enabled table whose size now exceeds its capacity gets
	// expanded and rehashed; the entry stays in even if that fails
	if t.growth && t.size > len(t.buckets) {
		_ = t.Rehash()
	}
	return nil
}

// Lookup returns the value stored under key, or false if none could be found
func (t *Table) Lookup(key string) (interface{}, bool) {
	return t.lookup(textKey(key))
}

// LookupNull returns the value stored under the null key
func (t *Table) LookupNull() (interface{}, bool) {
	return t.lookup(nullKey)
}

func (t *Table) lookup(k key) (valType, bool) {
	if !t.live() {
		return nil, false
	}
	e := t.bucket(k).find(k)
	if e == nil {
		return nil, false
	}
	return e.val, true
}

// Remove removes the entry stored under key and reports whether there was one
func (t *Table) Remove(key string) bool {
	return t.remove(textKey(key))
}

// RemoveNull removes the entry stored under the null key
func (t *Table) RemoveNull() bool {
	return t.remove(nullKey)
}

func (t *Table) remove(k key) bool {
	if !t.live() {
		return false
	}
	if !t.bucket(k).remove(k) {
		return false
	}
	t.size--
	return true
}

// ContainsKey reports whether an entry with an equal key is present
func (t *Table) ContainsKey(key string) bool {
	_, ok := t.lookup(textKey(key))
	return ok
}

// ContainsNullKey reports whether a null keyed entry is present
func (t *Table) ContainsNullKey() bool {
	_, ok := t.lookup(nullKey)
	return ok
}

// Clear removes every entry, keeping the capacity and growth setting
func (t *Table) Clear() {
	if !t.live() {
		return
	}
	for i := range t.buckets {
		t.buckets[i].destroy()
	}
	t.size = 0
}

// Destroy clears the table and releases its buckets. Calling any mutating
// method on the Table after this returns ErrTableDestroyed or false, and
// queries report an empty table.
func (t *Table) Destroy() {
	if t == nil || t.destroyed {
		return
	}
	t.Clear()
	t.buckets = nil
	t.destroyed = true
}

// CloneShape returns a new empty table with the same capacity, growth
// setting, hash function and report handler. A destroyed table clones into
// another destroyed table.
func (t *Table) CloneShape() *Table {
	if t == nil {
		return nil
	}
	if !t.live() {
		return &Table{
			hash:      t.hash,
			hashName:  t.hashName,
			handler:   t.handler,
			growth:    t.growth,
			destroyed: true,
		}
	}
	return t.cloneShape(len(t.buckets))
}

func (t *Table) cloneShape(capacity int) *Table {
	return newTable(capacity, t.growth, t.hash, t.hashName, t.handler)
}

// Rehash doubles the bucket count and redistributes every entry. It fails with
// ErrMaxCapacityExceeded, leaving the table untouched, when the doubled
// capacity would exceed MaxCapacity.
func (t *Table) Rehash() error {
	if !t.live() {
		return t.fail(diag.Error, "rehash", ErrTableDestroyed,
			"attempted to rehash a destroyed table", "nothing done")
	}
	newCap := len(t.buckets) * 2
	if newCap > MaxCapacity {
		return t.fail(diag.Warning, "rehash", ErrMaxCapacityExceeded,
			"attempted to resize the table past the maximum capacity "+strconv.Itoa(MaxCapacity),
			"table remains at capacity "+strconv.Itoa(len(t.buckets)))
	}
	fresh := t.cloneShape(newCap)
	// move every entry over; entries are re-bucketed, never copied
	for i := 0; i < len(t.buckets); i++ {
		b := &t.buckets[i]
		for e := b.popFront(); e != nil; e = b.popFront() {
			fresh.bucket(e.key).prepend(e)
			fresh.size++
		}
	}
	log.Debugf("rehashed table from %d to %d buckets (%d entries)", len(t.buckets), newCap, fresh.size)
	*t = *fresh
	return nil
}

// Size returns the number of entries currently in the table
func (t *Table) Size() int {
	if !t.live() {
		return 0
	}
	return t.size
}

// Capacity returns the number of buckets
func (t *Table) Capacity() int {
	if !t.live() {
		return 0
	}
	return len(t.buckets)
}

// IsEmpty reports whether the table holds no entries
func (t *Table) IsEmpty() bool {
	return t.Size() == 0
}

// IsGrowthEnabled reports whether the table grows automatically
func (t *Table) IsGrowthEnabled() bool {
	if t == nil {
		return false
	}
	return t.growth
}

// HashName returns the name of the hash function the table uses
func (t *Table) HashName() string {
	if t == nil {
		return ""
	}
	return t.hashName
}
