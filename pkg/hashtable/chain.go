package hashtable

// chain represents a single bucket in the Table. Entries are kept in an owned
// slice; the logical head of the chain is the last element of the slice, so a
// prepend is an append and a pop from the front is a truncation.
type chain struct {
	entries []*entry
}

// len returns the number of live entries in the chain
func (c *chain) len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// pos translates a position counted from the head into a slice index
func (c *chain) pos(i int) int {
	return len(c.entries) - 1 - i
}

// prepend places the entry at the head of the chain
func (c *chain) prepend(e *entry) bool {
	if c == nil || e == nil {
		return false
	}
	c.entries = append(c.entries, e)
	return true
}

// find scans from the head and returns the first entry with an equal key
func (c *chain) find(k key) *entry {
	if c == nil {
		return nil
	}
	for i := len(c.entries) - 1; i >= 0; i-- {
		if c.entries[i].key.equal(k) {
			return c.entries[i]
		}
	}
	return nil
}

// remove unlinks the first entry with an equal key
func (c *chain) remove(k key) bool {
	if c == nil {
		return false
	}
	for i := len(c.entries) - 1; i >= 0; i-- {
		if !c.entries[i].key.equal(k) {
			continue
		}
		n := copy(c.entries[i:], c.entries[i+1:])
		c.entries[i+n] = nil
		c.entries = c.entries[:i+n]
		if len(c.entries) == 0 {
			c.entries = nil
		}
		return true
	}
	return false
}

// popFront detaches and returns the head entry
func (c *chain) popFront() *entry {
	e := c.head()
	if e == nil {
		return nil
	}
	last := len(c.entries) - 1
	c.entries[last] = nil
	c.entries = c.entries[:last]
	if last == 0 {
		c.entries = nil
	}
	return e
}

// head returns the head entry without detaching it
func (c *chain) head() *entry {
	return c.at(0)
}

// at returns the entry i positions from the head
func (c *chain) at(i int) *entry {
	if c == nil || i < 0 || i >= len(c.entries) {
		return nil
	}
	return c.entries[c.pos(i)]
}

// destroy releases every entry and leaves the chain empty
func (c *chain) destroy() {
	if c == nil {
		return
	}
	for i := range c.entries {
		c.entries[i] = nil
	}
	c.entries = nil
}
