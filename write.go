package jsondoc

import (
	"bytes"

	"jsondoc/internal/description"
	"jsondoc/internal/jsonwire"
)

// Set writes v under key, replacing any existing member with that key or
// appending a new one at the end of the object (spec.md §4.4). It never
// reorders existing members.
func (o *Object) Set(key string, v Value) error {
	_, keyOffset, ok := o.c.d.KeyOffset(key, o.c.decodeKeyAt)
	if ok {
		o.replaceMember(keyOffset, v)
		return nil
	}
	o.appendMember(key, v)
	return nil
}

// Remove deletes the member with the given key, if present. Removing an
// absent key is a no-op, not an error (spec.md §4.4, §7).
func (o *Object) Remove(key string) error {
	memberIndex, keyOffset, ok := o.c.d.KeyOffset(key, o.c.decodeKeyAt)
	if !ok {
		return nil
	}
	o.removeMember(memberIndex, keyOffset)
	return nil
}

func (o *Object) replaceMember(keyOffset int, v Value) {
	d := o.c.d
	valueOffset := d.SkipIndex(keyOffset)
	old := d.At(valueOffset)
	raw, entries := encodeValue(v)
	for i := range entries {
		entries[i].JSONOffset += old.JSONOffset
	}
	oldIndexLen := int(old.IndexLength)

	o.c.buf.OverwriteRange(int(old.JSONOffset), int(old.JSONOffset+old.JSONLength), raw)
	deltaLen := int32(len(raw)) - int32(old.JSONLength)

	d.RemoveEntries(valueOffset, oldIndexLen)
	d.InsertEntries(valueOffset, entries)
	d.AdjustJSONOffsetsFrom(valueOffset+len(entries), deltaLen)
	d.AdjustRoot(deltaLen, int32(len(entries))-int32(oldIndexLen), 0)
}

func (o *Object) appendMember(key string, v Value) {
	d := o.c.d
	root := d.At(0)
	insertAt := int(root.JSONOffset + root.JSONLength - 1) // just before '}'

	var raw []byte
	if root.MemberCount > 0 {
		raw = append(raw, ',')
	}
	keyStart := len(raw)
	raw = jsonwire.AppendQuoteKey(raw, key)
	keyEnd := len(raw)
	raw = append(raw, ':')
	valueStart := len(raw)
	valueRaw, valueEntries := encodeValue(v)
	raw = append(raw, valueRaw...)

	keyType := description.String
	if needsEscapeDecode(raw[keyStart:keyEnd]) {
		keyType = description.StringEscaped
	}
	entries := make([]description.Entry, 0, 1+len(valueEntries))
	entries = append(entries, description.Entry{
		Type:        keyType,
		JSONOffset:  uint32(keyStart),
		JSONLength:  uint32(keyEnd - keyStart),
		IndexLength: 1,
	})
	for _, e := range valueEntries {
		e.JSONOffset += uint32(valueStart)
		entries = append(entries, e)
	}
	for i := range entries {
		entries[i].JSONOffset += uint32(insertAt)
	}

	o.c.buf.InsertAt(insertAt, raw)
	atEntry := d.Len()
	d.InsertEntries(atEntry, entries)
	d.AdjustRoot(int32(len(raw)), int32(len(entries)), 1)
}

func (o *Object) removeMember(memberIndex, keyOffset int) {
	d := o.c.d
	root := d.At(0)
	valueOffset := d.SkipIndex(keyOffset)
	keyEntry := d.At(keyOffset)
	valueEntry := d.At(valueOffset)
	valueEnd := int(valueEntry.JSONOffset + valueEntry.JSONLength)

	b := o.c.buf.Bytes()
	start, end := int(keyEntry.JSONOffset), valueEnd
	switch {
	case root.MemberCount == 1:
	case memberIndex == 0:
		end += len(b[end:]) - len(bytes.TrimLeft(b[end:], " \t\r\n"))
		if end >= len(b) || b[end] != ',' {
			internalError("object removal found no trailing comma")
		}
		end++ // drop trailing comma
	default:
		start = len(bytes.TrimRight(b[:start], " \t\r\n"))
		if start == 0 || b[start-1] != ',' {
			internalError("object removal found no leading comma")
		}
		start-- // drop leading comma
	}

	count := d.SkipIndex(valueOffset) - keyOffset
	removedLen := int32(end - start)

	o.c.buf.RemoveRange(start, end)
	d.RemoveEntries(keyOffset, count)
	d.AdjustJSONOffsetsFrom(keyOffset, -removedLen)
	d.AdjustRoot(-removedLen, -int32(count), -1)
}

// Set replaces the element at index i. Writing at i == Len() appends,
// matching spec.md §4.4's append-via-bounds-equal-length convention.
func (a *Array) Set(i int, v Value) error {
	if i == int(a.c.d.ArrayObjectCount()) {
		return a.Append(v)
	}
	offset, ok := a.elementOffset(i)
	if !ok {
		return ErrIndexOutOfRange
	}
	a.replaceElement(offset, v)
	return nil
}

// Append adds v as the new last element.
func (a *Array) Append(v Value) error {
	a.appendElement(v)
	return nil
}

// Remove deletes the element at index i.
func (a *Array) Remove(i int) error {
	offset, ok := a.elementOffset(i)
	if !ok {
		return ErrIndexOutOfRange
	}
	a.removeElement(i, offset)
	return nil
}

func (a *Array) replaceElement(offset int, v Value) {
	d := a.c.d
	old := d.At(offset)
	raw, entries := encodeValue(v)
	for i := range entries {
		entries[i].JSONOffset += old.JSONOffset
	}
	oldIndexLen := int(old.IndexLength)

	a.c.buf.OverwriteRange(int(old.JSONOffset), int(old.JSONOffset+old.JSONLength), raw)
	deltaLen := int32(len(raw)) - int32(old.JSONLength)

	d.RemoveEntries(offset, oldIndexLen)
	d.InsertEntries(offset, entries)
	d.AdjustJSONOffsetsFrom(offset+len(entries), deltaLen)
	d.AdjustRoot(deltaLen, int32(len(entries))-int32(oldIndexLen), 0)
}

func (a *Array) appendElement(v Value) {
	d := a.c.d
	root := d.At(0)
	insertAt := int(root.JSONOffset + root.JSONLength - 1) // just before ']'

	var raw []byte
	if root.MemberCount > 0 {
		raw = append(raw, ',')
	}
	valueStart := len(raw)
	valueRaw, valueEntries := encodeValue(v)
	raw = append(raw, valueRaw...)

	entries := make([]description.Entry, 0, len(valueEntries))
	for _, e := range valueEntries {
		e.JSONOffset += uint32(valueStart + insertAt)
		entries = append(entries, e)
	}

	a.c.buf.InsertAt(insertAt, raw)
	atEntry := d.Len()
	d.InsertEntries(atEntry, entries)
	d.AdjustRoot(int32(len(raw)), int32(len(entries)), 1)
}

func (a *Array) removeElement(index, offset int) {
	d := a.c.d
	root := d.At(0)
	entry := d.At(offset)
	valueEnd := int(entry.JSONOffset + entry.JSONLength)

	b := a.c.buf.Bytes()
	start, end := int(entry.JSONOffset), valueEnd
	switch {
	case root.MemberCount == 1:
	case index == 0:
		end += len(b[end:]) - len(bytes.TrimLeft(b[end:], " \t\r\n"))
		if end >= len(b) || b[end] != ',' {
			internalError("array removal found no trailing comma")
		}
		end++ // drop trailing comma
	default:
		start = len(bytes.TrimRight(b[:start], " \t\r\n"))
		if start == 0 || b[start-1] != ',' {
			internalError("array removal found no leading comma")
		}
		start-- // drop leading comma
	}

	count := int(entry.IndexLength)
	removedLen := int32(end - start)

	a.c.buf.RemoveRange(start, end)
	d.RemoveEntries(offset, count)
	d.AdjustJSONOffsetsFrom(offset, -removedLen)
	d.AdjustRoot(-removedLen, -int32(count), -1)
}
