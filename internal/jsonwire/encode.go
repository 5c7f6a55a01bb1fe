// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonwire

import (
	"math"
	"strconv"
	"unicode/utf8"
)

// AppendQuote appends src to dst as a JSON string per RFC 7159, section 7,
// using the shortest representable escaping: the quote, the backslash, and
// control bytes use their short form where one exists (e.g. \n), a \u00XX
// sequence otherwise; non-ASCII valid UTF-8 is copied verbatim.
//
// Invalid UTF-8 bytes are replaced with the Unicode replacement character,
// matching the teacher's AppendQuote's non-validating default.
func AppendQuote(dst []byte, src string) []byte {
	dst = append(dst, '"')
	var i, n int
	for uint(len(src)) > uint(n) {
		if c := src[n]; c < utf8.RuneSelf {
			n++
			if needEscapeASCII(c) {
				dst = append(dst, src[i:n-1]...)
				dst = appendEscapedASCII(dst, c)
				i = n
			}
			continue
		}
		r, rn := utf8.DecodeRuneInString(src[n:])
		if r == utf8.RuneError && rn == 1 {
			dst = append(dst, src[i:n]...)
			dst = append(dst, "�"...)
			n++
			i = n
			continue
		}
		n += rn
	}
	dst = append(dst, src[i:n]...)
	dst = append(dst, '"')
	return dst
}

// AppendQuoteKey is AppendQuote specialized for object member names; key
// escaping uses the same rules as string escaping in this model.
func AppendQuoteKey(dst []byte, key string) []byte {
	return AppendQuote(dst, key)
}

func appendEscapedASCII(dst []byte, c byte) []byte {
	if s := shortEscape(c); s != 0 {
		return append(dst, '\\', s)
	}
	return appendEscapedUTF16(dst, uint16(c))
}

func appendEscapedUTF16(dst []byte, x uint16) []byte {
	const hex = "0123456789abcdef"
	return append(dst, '\\', 'u', hex[(x>>12)&0xf], hex[(x>>8)&0xf], hex[(x>>4)&0xf], hex[(x>>0)&0xf])
}

// AppendFloat appends src to dst as a JSON number per RFC 7159, section 6.
// It formats numbers similar to the ES6 number-to-string conversion.
// See https://go.dev/issue/14135.
//
// The output is identical to ECMA-262, 6th edition, section 7.1.12.1,
// except for -0, which is formatted as -0 instead of just 0.
func AppendFloat(dst []byte, src float64) []byte {
	abs := math.Abs(src)
	fmt := byte('f')
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		fmt = 'e'
	}
	dst = strconv.AppendFloat(dst, src, fmt, -1, 64)
	if fmt == 'e' {
		// Clean up e-09 to e-9.
		n := len(dst)
		if n >= 4 && dst[n-4] == 'e' && dst[n-3] == '-' && dst[n-2] == '0' {
			dst[n-2] = dst[n-1]
			dst = dst[:n-1]
		}
	}
	return dst
}

// AppendInt appends src to dst as a JSON number in C-locale decimal form.
func AppendInt(dst []byte, src int64) []byte {
	return strconv.AppendInt(dst, src, 10)
}
