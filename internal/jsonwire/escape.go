// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonwire

import "unicode/utf8"

// canonicalEscape is a cache of whether an ASCII byte must be escaped when
// serializing a JSON string, where 0 means not escaped and -1 means
// escaped; the form is chosen by appendEscapedASCII: a short sequence
// (e.g. \n) where shortEscape has one, a \u00XX sequence otherwise.
//
// This is the minimal escaping RFC 8259 requires: the quote, the
// backslash, and control bytes below 0x20. Unlike the teacher's
// EscapeRunes, there is no HTML/JS escaping mode here: this library never
// serializes into a context where '<', '>', '&', or the line/paragraph
// separators need defusing, so that configurability is not carried over.
var canonicalEscape = [utf8.RuneSelf]int8{
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	00, 00, -1, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00,
	00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00,
	00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00,
	00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, -1, 00, 00, 00,
	00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00,
	00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00,
}

// needEscapeASCII reports whether c must be escaped at all.
// It assumes c < utf8.RuneSelf.
func needEscapeASCII(c byte) bool {
	return canonicalEscape[c] != 0
}

// shortEscape returns the short escape character for c (e.g. '\n' -> 'n'),
// or 0 if c has no short form and must be written as \u00XX instead.
func shortEscape(c byte) byte {
	switch c {
	case '"':
		return '"'
	case '\\':
		return '\\'
	case '\b':
		return 'b'
	case '\f':
		return 'f'
	case '\n':
		return 'n'
	case '\r':
		return 'r'
	case '\t':
		return 't'
	default:
		return 0
	}
}
