// Package description implements the packed binary index ("description")
// that sits beside a JSON byte buffer: one fixed-width entry per JSON
// value, written in source order, enabling constant-time child lookups
// and O(1) subtree slicing without re-parsing the buffer. See spec.md §3
// and §4.2.
package description

import "jsondoc/internal/buffer"

// EntrySize is the width in bytes of one packed description record:
// 1 byte type tag + 4 bytes jsonOffset + 4 bytes jsonLength +
// 4 bytes indexLength + 4 bytes memberCount, little-endian
// (spec.md §9 design notes).
const EntrySize = 17

// Type is the tag of a description entry, mirroring the closed set of
// JSON value variants plus the string/stringWithEscaping split the
// tokenizer needs to skip a cheap decode path (spec.md §3).
type Type byte

const (
	Object Type = iota
	Array
	String
	StringEscaped
	Integer
	Floating
	True
	False
	Null
)

func (t Type) String() string {
	switch t {
	case Object:
		return "object"
	case Array:
		return "array"
	case String:
		return "string"
	case StringEscaped:
		return "stringWithEscaping"
	case Integer:
		return "integer"
	case Floating:
		return "floatingNumber"
	case True:
		return "boolTrue"
	case False:
		return "boolFalse"
	case Null:
		return "null"
	default:
		return "invalid"
	}
}

// IsContainer reports whether t is Object or Array.
func (t Type) IsContainer() bool { return t == Object || t == Array }

// Entry is the decoded form of one packed description record.
//
// JSONOffset and JSONLength describe the value's bytes in the paired
// buffer. For container entries, MemberCount is the number of pairs
// (object) or elements (array), and IndexLength is the number of entries
// the container's entire subtree (itself included) occupies in the
// description, enabling skipIndex to jump over it in O(1). Leaf entries
// always have IndexLength == 1 and MemberCount == 0.
type Entry struct {
	Type        Type
	JSONOffset  uint32
	JSONLength  uint32
	IndexLength uint32
	MemberCount uint32
}

// put writes e into buf[offset:offset+EntrySize].
func (e Entry) put(buf *buffer.Buffer, offset int) {
	buf.PutByteAt(offset, byte(e.Type))
	buf.PutUint32At(offset+1, e.JSONOffset)
	buf.PutUint32At(offset+5, e.JSONLength)
	buf.PutUint32At(offset+9, e.IndexLength)
	buf.PutUint32At(offset+13, e.MemberCount)
}

// getEntry reads the entry at buf[offset:offset+EntrySize].
func getEntry(buf *buffer.Buffer, offset int) Entry {
	return Entry{
		Type:        Type(buf.ByteAt(offset)),
		JSONOffset:  buf.Uint32At(offset + 1),
		JSONLength:  buf.Uint32At(offset + 5),
		IndexLength: buf.Uint32At(offset + 9),
		MemberCount: buf.Uint32At(offset + 13),
	}
}
