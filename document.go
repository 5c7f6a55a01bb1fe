package jsondoc

import (
	"jsondoc/internal/buffer"
	"jsondoc/internal/description"
)

// container is the shared (buffer, description) pair both Object and
// Array wrap (spec.md §3: "Document — a pair (B, D)"). Mutation is
// exclusive to the owning document value; a document read out of another
// document's storage is always an independent copy (spec.md §4.5, §5).
type container struct {
	buf  *buffer.Buffer
	d    *description.Description
	keys stringCache
}

// Object is a document view rooted at a JSON object.
type Object struct {
	c container
}

// Array is a document view rooted at a JSON array.
type Array struct {
	c container
}

// NewObject returns an empty object document: {}.
func NewObject() *Object {
	return &Object{c: newEmptyContainer(description.Object, "{}")}
}

// NewArray returns an empty array document: [].
func NewArray() *Array {
	return &Array{c: newEmptyContainer(description.Array, "[]")}
}

func newEmptyContainer(kind description.Type, literal string) container {
	buf := buffer.New([]byte(literal))
	d := description.New(1)
	d.Push(description.Entry{Type: kind, JSONOffset: 0, JSONLength: uint32(len(literal)), IndexLength: 1, MemberCount: 0})
	return container{buf: buf, d: d}
}

// ParseObject parses b as a JSON document and returns it as an Object. It
// fails with ErrExpectedObject if the root value is not a JSON object, or
// a *SyntaxError if b is not valid JSON at all (spec.md §4.1, §6).
func ParseObject(b []byte) (*Object, error) {
	c, err := parseContainer(b)
	if err != nil {
		return nil, err
	}
	if c.d.TopLevelType() != description.Object {
		return nil, ErrExpectedObject
	}
	return &Object{c: c}, nil
}

// ParseArray parses b as a JSON document and returns it as an Array. It
// fails with ErrExpectedArray if the root value is not a JSON array, or a
// *SyntaxError if b is not valid JSON at all (spec.md §4.1, §6).
func ParseArray(b []byte) (*Array, error) {
	c, err := parseContainer(b)
	if err != nil {
		return nil, err
	}
	if c.d.TopLevelType() != description.Array {
		return nil, ErrExpectedArray
	}
	return &Array{c: c}, nil
}

func parseContainer(b []byte) (container, error) {
	d, _, err := description.Tokenize(b, 0)
	if err != nil {
		return container{}, wrapSyntaxError(err)
	}
	// The tokenizer records absolute offsets into b, which may have leading
	// whitespace before the root value; rebase so entry 0 always starts at
	// buffer offset 0, matching every other invariant in this package.
	rootOffset, rootLen := d.JSONBoundsAt(0)
	if rootOffset != 0 {
		d.AdvanceAllJSONOffsets(-int32(rootOffset))
	}
	buf := b[rootOffset : rootOffset+rootLen]
	return container{buf: buffer.New(buf), d: d}, nil
}

// decodeKeyAt decodes the given key entry of c's description, interning unescaped keys through c.keys since object keys repeat heavily
// across sibling members and across documents sharing a schema.
func (c *container) decodeKeyAt(e description.Entry) (string, error) {
	raw := c.buf.Bytes()[e.JSONOffset+1 : e.JSONOffset+e.JSONLength-1]
	if e.Type == description.String {
		return c.keys.make(raw), nil
	}
	return decodeStringEntry(e, raw)
}
