package hashtable

// valType is the opaque value reference stored alongside each key. The table
// never inspects, copies or frees it.
type valType = interface{}

// key is the internal key representation. A key with null set is the null
// key; its str is always empty.
type key struct {
	str  string
	null bool
}

var nullKey = key{null: true}

// textKey wraps a string key
func textKey(s string) key {
	return key{str: s}
}

func (k key) equal(other key) bool {
	if k.null || other.null {
		return k.null == other.null
	}
	return k.str == other.str
}

func (k key) String() string {
	if k.null {
		return "<null>"
	}
	return k.str
}

// entry is a key value pair that is found in each bucket
type entry struct {
	key key
	val valType
}

func newEntry(k key, val valType) *entry {
	return &entry{
		key: k,
		val: val,
	}
}
