// Package jsondoc implements a mutable, index-backed JSON document model:
// a one-pass tokenizer builds a packed side-index (a "description") over
// a byte buffer, and Object/Array document views read and edit values
// through that index without re-parsing. Edits mutate the buffer and the
// description in tandem, so the buffer is a valid JSON serialization at
// every step, not just at the end.
//
// # Terminology
//
// This package follows JSON terminology throughout: an "object" is an
// unordered collection of name/value members, an "array" is an ordered
// sequence of elements, and a "value" is one of object, array, string,
// integer, floating-point number, boolean, or null.
//
// # Scope
//
// This package is purely structural: it has no opinion on mapping JSON to
// Go struct types (no field tags, no case conversion), does no network or
// file I/O, and does not preserve the original formatting of parsed input
// across a mutation — only its semantic content.
package jsondoc

// Kind identifies which of the seven JSON value variants a Value holds.
type Kind int

const (
	KindObject Kind = iota
	KindArray
	KindString
	KindInteger
	KindFloating
	KindBool
	KindNull
)

func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindFloating:
		return "floating"
	case KindBool:
		return "bool"
	case KindNull:
		return "null"
	default:
		return "invalid"
	}
}
