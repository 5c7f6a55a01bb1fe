package jsondoc

import (
	"jsondoc/internal/description"
	"jsondoc/internal/jsonwire"
)

// encodeValue renders v as a standalone JSON byte run plus the description
// entries describing it, both relative to offset 0 — ready to be spliced
// into a parent buffer/description at any position by the caller, which
// rebases the JSONOffsets with AdvanceAllJSONOffsets (spec.md §4.4: Set,
// Append, and object-member insertion all funnel through this path so a
// written value is indistinguishable from one that had been parsed in
// place).
func encodeValue(v Value) (raw []byte, entries []description.Entry) {
	switch v.kind {
	case KindNull:
		return []byte("null"), []description.Entry{{Type: description.Null, JSONOffset: 0, JSONLength: 4, IndexLength: 1}}
	case KindBool:
		b, _ := v.Bool()
		if b {
			return []byte("true"), []description.Entry{{Type: description.True, JSONOffset: 0, JSONLength: 4, IndexLength: 1}}
		}
		return []byte("false"), []description.Entry{{Type: description.False, JSONOffset: 0, JSONLength: 5, IndexLength: 1}}
	case KindString:
		s, _ := v.String()
		raw := jsonwire.AppendQuote(nil, s)
		typ := description.String
		if needsEscapeDecode(raw) {
			typ = description.StringEscaped
		}
		return raw, []description.Entry{{Type: typ, JSONOffset: 0, JSONLength: uint32(len(raw)), IndexLength: 1}}
	case KindInteger:
		i, _ := v.Int()
		raw := jsonwire.AppendInt(nil, i)
		return raw, []description.Entry{{Type: description.Integer, JSONOffset: 0, JSONLength: uint32(len(raw)), IndexLength: 1}}
	case KindFloating:
		f, _ := v.Float()
		raw := jsonwire.AppendFloat(nil, f)
		return raw, []description.Entry{{Type: description.Floating, JSONOffset: 0, JSONLength: uint32(len(raw)), IndexLength: 1}}
	case KindObject:
		o, _ := v.Object()
		return cloneSubtree(&o.c)
	case KindArray:
		a, _ := v.Array()
		return cloneSubtree(&a.c)
	default:
		internalError("encodeValue: unrecognized value kind")
		return nil, nil
	}
}

// needsEscapeDecode reports whether a freshly quoted string contains any
// backslash escape, mirroring the tokenizer's own String/StringEscaped
// split so written values carry the same fast-path flag as parsed ones.
func needsEscapeDecode(quoted []byte) bool {
	for i := 1; i < len(quoted)-1; i++ {
		if quoted[i] == '\\' {
			return true
		}
	}
	return false
}

// cloneSubtree copies c's entire buffer and description, producing raw
// bytes and entries rebased to start at 0 — independent of c's storage, per
// spec.md §4.5's copy-on-read rule for nested containers.
func cloneSubtree(c *container) ([]byte, []description.Entry) {
	_, rootLen := c.d.JSONBoundsAt(0)
	raw := append([]byte(nil), c.buf.Bytes()[:rootLen]...)
	entries := c.d.Entries()
	for i := range entries {
		entries[i].JSONOffset -= c.d.At(0).JSONOffset
	}
	return raw, entries
}
