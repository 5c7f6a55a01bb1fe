package jsondoc

// ObjectIterator walks an object's members in source order. Its key set is
// snapshotted when Iterator is called (spec.md §4.4): members added to the
// underlying object afterwards are not visited, members removed afterwards
// are skipped, and each value is read from the object when Next reaches
// its key, matching the teacher's own snapshot-then-walk iterator
// convention.
type ObjectIterator struct {
	o     *Object
	keys  []string
	pos   int
	key   string
	value Value
}

// Iterator returns a new ObjectIterator over o's current members.
func (o *Object) Iterator() *ObjectIterator {
	return &ObjectIterator{o: o, keys: o.Keys(), pos: -1}
}

// Next advances the iterator to the next member, returning false once
// every snapshotted key has been visited.
func (it *ObjectIterator) Next() bool {
	it.pos++
	if it.pos >= len(it.keys) {
		return false
	}
	it.key = it.keys[it.pos]
	v, ok := it.o.Get(it.key)
	if !ok {
		// The member was removed after the snapshot; skip it rather than
		// yielding a stale value.
		return it.Next()
	}
	it.value = v
	return true
}

// Key returns the current member's key.
func (it *ObjectIterator) Key() string { return it.key }

// Value returns the current member's value.
func (it *ObjectIterator) Value() Value { return it.value }
