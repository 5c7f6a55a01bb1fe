// Package buffer implements a contiguous, growable byte store that
// supports splicing (insert/remove in the middle) in addition to the
// append-only growth that bytes.Buffer provides.
//
// It backs both the raw JSON byte store and the packed description index
// in package jsondoc: both need to grow geometrically and shift a range
// of bytes when a value changes size.
package buffer

import "encoding/binary"

// Buffer is a growable byte slice with splice operations. The zero value
// is an empty, ready-to-use buffer.
type Buffer struct {
	buf []byte
}

// New returns a Buffer initialized with a copy of b.
func New(b []byte) *Buffer {
	buf := &Buffer{}
	buf.buf = append(buf.buf[:0], b...)
	return buf
}

// Len returns the number of bytes currently stored.
func (b *Buffer) Len() int {
	return len(b.buf)
}

// Bytes returns the buffer contents. The slice is valid only until the
// next mutating call on b.
func (b *Buffer) Bytes() []byte {
	return b.buf
}

// Grow ensures capacity for at least n additional bytes, growing
// geometrically to amortize repeated small edits.
func (b *Buffer) Grow(n int) {
	if cap(b.buf)-len(b.buf) >= n {
		return
	}
	needed := len(b.buf) + n
	newCap := cap(b.buf)
	if newCap == 0 {
		newCap = 64
	}
	for newCap < needed {
		newCap *= 2
	}
	grown := make([]byte, len(b.buf), newCap)
	copy(grown, b.buf)
	b.buf = grown
}

// Append adds p to the end of the buffer.
func (b *Buffer) Append(p []byte) {
	b.Grow(len(p))
	b.buf = append(b.buf, p...)
}

// InsertAt splices p into the buffer at offset, shifting everything at or
// after offset to the right. offset must be in [0, Len()].
func (b *Buffer) InsertAt(offset int, p []byte) {
	if len(p) == 0 {
		return
	}
	b.Grow(len(p))
	b.buf = b.buf[:len(b.buf)+len(p)]
	copy(b.buf[offset+len(p):], b.buf[offset:len(b.buf)-len(p)])
	copy(b.buf[offset:], p)
}

// RemoveRange deletes the half-open byte range [start, end) and shifts
// everything after end to the left.
func (b *Buffer) RemoveRange(start, end int) {
	if start == end {
		return
	}
	b.buf = append(b.buf[:start], b.buf[end:]...)
}

// OverwriteRange replaces the half-open byte range [start, end) with p,
// growing or shrinking the buffer as needed.
func (b *Buffer) OverwriteRange(start, end int, p []byte) {
	delta := len(p) - (end - start)
	switch {
	case delta > 0:
		b.Grow(delta)
		b.buf = b.buf[:len(b.buf)+delta]
		copy(b.buf[end+delta:], b.buf[end:len(b.buf)-delta])
	case delta < 0:
		copy(b.buf[end+delta:], b.buf[end:])
		b.buf = b.buf[:len(b.buf)+delta]
	}
	copy(b.buf[start:start+len(p)], p)
}

// Uint32At reads a little-endian uint32 at offset.
func (b *Buffer) Uint32At(offset int) uint32 {
	return binary.LittleEndian.Uint32(b.buf[offset : offset+4])
}

// PutUint32At writes v as a little-endian uint32 at offset.
func (b *Buffer) PutUint32At(offset int, v uint32) {
	binary.LittleEndian.PutUint32(b.buf[offset:offset+4], v)
}

// ByteAt reads a single byte at offset.
func (b *Buffer) ByteAt(offset int) byte {
	return b.buf[offset]
}

// PutByteAt writes a single byte at offset.
func (b *Buffer) PutByteAt(offset int, v byte) {
	b.buf[offset] = v
}
