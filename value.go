package jsondoc

// Value is a JSON value from the closed seven-variant set (spec.md §3,
// §9): a tagged union rather than a runtime-dispatched interface, since
// the variant set never grows.
type Value struct {
	kind Kind
	str  string
	i    int64
	f    float64
	b    bool
	obj  *Object
	arr  *Array
}

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// Null is the JSON null value.
var Null = Value{kind: KindNull}

// Bool constructs a boolean Value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// String constructs a string Value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Int constructs an integer-kind Value.
func Int(i int64) Value { return Value{kind: KindInteger, i: i} }

// Float constructs a floating-point-kind Value.
func Float(f float64) Value { return Value{kind: KindFloating, f: f} }

// FromObject wraps an Object as a Value.
func FromObject(o *Object) Value { return Value{kind: KindObject, obj: o} }

// FromArray wraps an Array as a Value.
func FromArray(a *Array) Value { return Value{kind: KindArray, arr: a} }

// IsNull reports whether v holds JSON null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Bool returns the boolean payload and whether v actually holds a bool.
func (v Value) Bool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// String returns the string payload and whether v actually holds a
// string.
func (v Value) String() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// Int returns the integer payload and whether v actually holds an
// integer-kind number. A Value decoded as Floating never reports ok here,
// even if its value happens to be a whole number; widen explicitly with
// Float if cross-numeric access is wanted.
func (v Value) Int() (int64, bool) {
	if v.kind != KindInteger {
		return 0, false
	}
	return v.i, true
}

// Float returns the numeric payload as a float64, accepting either
// Integer or Floating kinds.
func (v Value) Float() (float64, bool) {
	switch v.kind {
	case KindInteger:
		return float64(v.i), true
	case KindFloating:
		return v.f, true
	default:
		return 0, false
	}
}

// Object returns the nested Object and whether v actually holds one.
func (v Value) Object() (*Object, bool) {
	if v.kind != KindObject {
		return nil, false
	}
	return v.obj, true
}

// Array returns the nested Array and whether v actually holds one.
func (v Value) Array() (*Array, bool) {
	if v.kind != KindArray {
		return nil, false
	}
	return v.arr, true
}

// SetIndex writes elem at index i of the array v wraps. It returns
// ErrNotArray if v does not hold an Array: unlike a value-typed language
// where an indexed-write setter on a non-array silently self-reassigns
// and does nothing, this reports the mismatch explicitly (spec.md §9
// open question).
func (v Value) SetIndex(i int, elem Value) error {
	if v.kind != KindArray {
		return ErrNotArray
	}
	return v.arr.Set(i, elem)
}
