package jsondoc

// Bytes returns the object's current JSON serialization. The returned
// slice aliases the document's internal buffer and is only valid until
// the next mutating call on o.
func (o *Object) Bytes() []byte {
	_, n := o.c.d.JSONBoundsAt(0)
	return o.c.buf.Bytes()[:n]
}

// String returns the object's current JSON serialization as a string.
func (o *Object) String() string {
	return string(o.Bytes())
}

// Bytes returns the array's current JSON serialization. The returned
// slice aliases the document's internal buffer and is only valid until
// the next mutating call on a.
func (a *Array) Bytes() []byte {
	_, n := a.c.d.JSONBoundsAt(0)
	return a.c.buf.Bytes()[:n]
}

// String returns the array's current JSON serialization as a string.
func (a *Array) String() string {
	return string(a.Bytes())
}
