package jsondoc

import (
	"jsondoc/internal/buffer"
	"jsondoc/internal/description"
	"jsondoc/internal/jsonwire"
)

func decodeStringEntry(e description.Entry, raw []byte) (string, error) {
	s, err := jsonwire.DecodeString(raw, e.Type == description.StringEscaped)
	if err != nil {
		return "", &SyntaxError{Kind: KindInvalidLiteral, Offset: int(e.JSONOffset)}
	}
	return s, nil
}

// decodeValue turns the entry at entryOffset into a Value, per spec.md
// §4.4. Container entries are sliced out as independent, standalone
// documents (spec.md §4.5, §9): the returned Object/Array owns a copy of
// the subtree's bytes and description, never aliasing the parent's
// storage.
func decodeValue(c *container, entryOffset int) (Value, error) {
	e := c.d.At(entryOffset)
	switch e.Type {
	case description.Object, description.Array:
		nested := sliceContainer(c, entryOffset)
		if e.Type == description.Object {
			return FromObject(&Object{c: nested}), nil
		}
		return FromArray(&Array{c: nested}), nil
	case description.String, description.StringEscaped:
		raw := c.buf.Bytes()[e.JSONOffset+1 : e.JSONOffset+e.JSONLength-1]
		s, err := decodeStringEntry(e, raw)
		if err != nil {
			return Value{}, err
		}
		return String(s), nil
	case description.Integer:
		raw := c.buf.Bytes()[e.JSONOffset : e.JSONOffset+e.JSONLength]
		if iv, ok := jsonwire.DecodeInt(raw); ok {
			return Int(iv), nil
		}
		fv, err := jsonwire.DecodeFloat(raw)
		if err != nil {
			return Value{}, &SyntaxError{Kind: KindInvalidLiteral, Offset: int(e.JSONOffset)}
		}
		return Float(fv), nil
	case description.Floating:
		raw := c.buf.Bytes()[e.JSONOffset : e.JSONOffset+e.JSONLength]
		fv, err := jsonwire.DecodeFloat(raw)
		if err != nil {
			return Value{}, &SyntaxError{Kind: KindInvalidLiteral, Offset: int(e.JSONOffset)}
		}
		return Float(fv), nil
	case description.True:
		return Bool(true), nil
	case description.False:
		return Bool(false), nil
	case description.Null:
		return Null, nil
	default:
		internalError("unrecognized description entry type")
		return Value{}, nil
	}
}

// sliceContainer extracts the subtree rooted at entryOffset into a
// standalone (buffer, description) pair rebased to offset 0, per spec.md
// §3 invariant 6 and §4.2's slice/advanceAllJSONOffsets operations.
func sliceContainer(c *container, entryOffset int) container {
	e := c.d.At(entryOffset)
	raw := c.buf.Bytes()[e.JSONOffset : e.JSONOffset+e.JSONLength]
	nestedBuf := buffer.New(raw)

	nestedDesc := c.d.Slice(entryOffset, int(e.IndexLength))
	nestedDesc.AdvanceAllJSONOffsets(-int32(e.JSONOffset))
	return container{buf: nestedBuf, d: nestedDesc}
}

// Keys returns the object's top-level keys, in source order. A key that
// fails to decode (an escape sequence malformed in a way the tokenizer
// does not catch) is omitted rather than aborting the call, matching
// Get's treatment of undecodable values as absent rather than a crash on
// otherwise-valid input (spec.md §7).
func (o *Object) Keys() []string {
	root := o.c.d.At(0)
	keys := make([]string, 0, root.MemberCount)
	offset := 1
	for i := uint32(0); i < root.MemberCount; i++ {
		keyEntry := o.c.d.At(offset)
		if key, err := o.c.decodeKeyAt(keyEntry); err == nil {
			keys = append(keys, key)
		}
		offset = o.c.d.SkipIndex(offset) // past the key
		offset = o.c.d.SkipIndex(offset) // past the value
	}
	return keys
}

// Len returns the number of members in the object.
func (o *Object) Len() int {
	return int(o.c.d.ArrayObjectCount())
}

// Get returns the value stored under key and whether it was present and
// decodable. Missing keys and values that fail to decode (e.g. a
// malformed escape sequence or a number literal that overflows to
// infinity) are both reported as ok == false rather than a panic or
// error return: neither is an internal-state violation, so neither
// aborts the process (spec.md §7).
func (o *Object) Get(key string) (Value, bool) {
	entryOffset, ok := o.c.d.ValueOffset(key, o.c.decodeKeyAt)
	if !ok {
		return Value{}, false
	}
	v, err := decodeValue(&o.c, entryOffset)
	if err != nil {
		return Value{}, false
	}
	return v, true
}

// Len returns the number of elements in the array.
func (a *Array) Len() int {
	return int(a.c.d.ArrayObjectCount())
}

// Get returns the element at index i and whether it was in range and
// decodable. Out-of-bounds reads and undecodable values are both
// reported as ok == false rather than an error or panic, matching
// Object.Get's treatment of absent and undecodable entries (spec.md
// §4.4, §7).
func (a *Array) Get(i int) (Value, bool) {
	offset, ok := a.elementOffset(i)
	if !ok {
		return Value{}, false
	}
	v, err := decodeValue(&a.c, offset)
	if err != nil {
		return Value{}, false
	}
	return v, true
}

// elementOffset returns the entry offset of the i-th array element.
func (a *Array) elementOffset(i int) (int, bool) {
	n := int(a.c.d.ArrayObjectCount())
	if i < 0 || i >= n {
		return 0, false
	}
	offset := 1
	for k := 0; k < i; k++ {
		offset = a.c.d.SkipIndex(offset)
	}
	return offset, true
}
