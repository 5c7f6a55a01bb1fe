package description

import "jsondoc/internal/buffer"

// Description is a packed, in-memory index of fixed-width entries over a
// JSON byte buffer, written in parse order: the root first, then each
// child in source order; within an object, a member contributes two
// consecutive entries (key, then value). See spec.md §3–§4.2.
//
// Entry offsets in this API are description-entry indices (0, 1, 2, ...),
// not byte offsets into the JSON buffer; spec.md's glossary calls these
// "entry offsets" to distinguish them from "JSON offsets".
type Description struct {
	entries *buffer.Buffer
}

// New returns an empty description with capacity hinted for n entries,
// matching spec.md §5's "description starts at a hint... and grows as
// needed" (the default hint used by the tokenizer is 4 KiB of index
// space; n here is in entries, not bytes).
func New(n int) *Description {
	d := &Description{entries: &buffer.Buffer{}}
	d.entries.Grow(n * EntrySize)
	return d
}

// FromEntries builds a description directly from a slice of decoded
// entries, used by Slice and by tests.
func FromEntries(entries []Entry) *Description {
	d := New(len(entries))
	for _, e := range entries {
		d.Push(e)
	}
	return d
}

// Len returns the number of entries in the description.
func (d *Description) Len() int {
	return d.entries.Len() / EntrySize
}

// Push appends e as the next entry, returning its entry offset.
func (d *Description) Push(e Entry) int {
	offset := d.Len()
	d.entries.Append(make([]byte, EntrySize))
	e.put(d.entries, offset*EntrySize)
	return offset
}

// At returns the entry at the given entry offset.
func (d *Description) At(offset int) Entry {
	return getEntry(d.entries, offset*EntrySize)
}

// Set overwrites the entry at the given entry offset.
func (d *Description) Set(offset int, e Entry) {
	e.put(d.entries, offset*EntrySize)
}

// TopLevelType returns the type of entry 0, the document root.
func (d *Description) TopLevelType() Type {
	return d.At(0).Type
}

// TypeAt returns the type of the entry at offset.
func (d *Description) TypeAt(offset int) Type {
	return d.At(offset).Type
}

// JSONBoundsAt returns the (jsonOffset, jsonLength) of the entry at offset.
func (d *Description) JSONBoundsAt(offset int) (uint32, uint32) {
	e := d.At(offset)
	return e.JSONOffset, e.JSONLength
}

// IndexLengthAt returns the total entry span (the entry itself plus all
// descendants) of the entry at offset.
func (d *Description) IndexLengthAt(offset int) uint32 {
	return d.At(offset).IndexLength
}

// SkipIndex returns the entry offset immediately following the entry at
// offset and all of its descendants.
func (d *Description) SkipIndex(offset int) int {
	return offset + int(d.IndexLengthAt(offset))
}

// ArrayObjectCount returns the root container's member/element count.
func (d *Description) ArrayObjectCount() uint32 {
	return d.At(0).MemberCount
}

// Keys returns the decoded top-level keys of the root object, in source
// order. The root must be an object: Keys does not check TopLevelType,
// and on an array root it passes the elements to decode as if they were
// keys.
func (d *Description) Keys(decode func(Entry) (string, error)) ([]string, error) {
	root := d.At(0)
	keys := make([]string, 0, root.MemberCount)
	offset := 1
	for i := uint32(0); i < root.MemberCount; i++ {
		keyEntry := d.At(offset)
		key, err := decode(keyEntry)
		if err != nil {
			return nil, err
		}
		keys = append(keys, key)
		offset = d.SkipIndex(offset) // past the key
		offset = d.SkipIndex(offset) // past the value
	}
	return keys, nil
}

// KeyOffset performs a linear scan over the root object's members looking
// for a key whose decoded form equals key, per spec.md §4.2's
// keyOffset operation. It returns the zero-based member index and the
// entry offset of the matching key entry.
func (d *Description) KeyOffset(key string, decode func(Entry) (string, error)) (memberIndex, entryOffset int, ok bool) {
	root := d.At(0)
	offset := 1
	for i := uint32(0); i < root.MemberCount; i++ {
		keyEntry := d.At(offset)
		decoded, err := decode(keyEntry)
		if err == nil && decoded == key {
			return int(i), offset, true
		}
		offset = d.SkipIndex(offset)
		offset = d.SkipIndex(offset)
	}
	return 0, 0, false
}

// ValueOffset is KeyOffset followed by a skip over the key entry, per
// spec.md §4.2.
func (d *Description) ValueOffset(key string, decode func(Entry) (string, error)) (entryOffset int, ok bool) {
	_, keyOffset, ok := d.KeyOffset(key, decode)
	if !ok {
		return 0, false
	}
	return d.SkipIndex(keyOffset), true
}

// Slice extracts entries [from, from+length) into a standalone
// description, per spec.md §4.2. The returned entries' JSONOffsets are
// unchanged; callers rebase them with AdvanceAllJSONOffsets.
func (d *Description) Slice(from, length int) *Description {
	out := New(length)
	for i := 0; i < length; i++ {
		out.Push(d.At(from + i))
	}
	return out
}

// AdvanceAllJSONOffsets adds delta to every entry's JSONOffset, rebasing
// absolute byte offsets to a new base — used when a nested container is
// extracted as a standalone document (spec.md §4.2, §4.4).
func (d *Description) AdvanceAllJSONOffsets(delta int32) {
	n := d.Len()
	for i := 0; i < n; i++ {
		e := d.At(i)
		e.JSONOffset = uint32(int32(e.JSONOffset) + delta)
		d.Set(i, e)
	}
}

// Entries returns all entries as a plain slice, for callers (e.g. the
// document mutation path) that need to splice a run of entries into
// another description.
func (d *Description) Entries() []Entry {
	n := d.Len()
	out := make([]Entry, n)
	for i := 0; i < n; i++ {
		out[i] = d.At(i)
	}
	return out
}
