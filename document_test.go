package jsondoc

import "testing"

func TestParseObjectRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", `{}`},
		{"flat", `{"a":1,"b":"two","c":true,"d":null,"e":3.5}`},
		{"nested", `{"a":{"b":[1,2,3]},"c":[{"d":1}]}`},
		{"escaped key", `{"a\nb":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, err := ParseObject([]byte(tt.in))
			if err != nil {
				t.Fatalf("ParseObject(%q) error: %v", tt.in, err)
			}
			if got := o.String(); got != tt.in {
				t.Fatalf("String() = %q, want %q", got, tt.in)
			}
		})
	}
}

func TestParseObjectRejectsNonObjectRoot(t *testing.T) {
	if _, err := ParseObject([]byte(`[1,2,3]`)); err != ErrExpectedObject {
		t.Fatalf("err = %v, want ErrExpectedObject", err)
	}
}

func TestParseArrayRejectsNonArrayRoot(t *testing.T) {
	if _, err := ParseArray([]byte(`{"a":1}`)); err != ErrExpectedArray {
		t.Fatalf("err = %v, want ErrExpectedArray", err)
	}
}

func TestParseObjectSyntaxError(t *testing.T) {
	_, err := ParseObject([]byte(`{"a":}`))
	se, ok := err.(*SyntaxError)
	if !ok {
		t.Fatalf("err = %v (%T), want *SyntaxError", err, err)
	}
	if se.Reason != ExpectedValue {
		t.Fatalf("Reason = %v, want ExpectedValue", se.Reason)
	}
	if se.Column != 6 {
		t.Fatalf("Column = %d, want 6", se.Column)
	}
}

func TestParseObjectWithLeadingWhitespace(t *testing.T) {
	o, err := ParseObject([]byte("  \n\t{\"a\":1}"))
	if err != nil {
		t.Fatalf("ParseObject error: %v", err)
	}
	if got := o.String(); got != `{"a":1}` {
		t.Fatalf("String() = %q, want {\"a\":1}", got)
	}
	v, ok := o.Get("a")
	if !ok {
		t.Fatal("Get(a) missing")
	}
	if i, _ := v.Int(); i != 1 {
		t.Fatalf("a = %d, want 1", i)
	}
}

func TestNewObjectAndArray(t *testing.T) {
	if got := NewObject().String(); got != "{}" {
		t.Fatalf("NewObject().String() = %q, want {}", got)
	}
	if got := NewArray().String(); got != "[]" {
		t.Fatalf("NewArray().String() = %q, want []", got)
	}
}

func TestObjectGetAndKeys(t *testing.T) {
	o, err := ParseObject([]byte(`{"name":"Joannis","age":27,"admin":true}`))
	if err != nil {
		t.Fatalf("ParseObject error: %v", err)
	}
	if got := o.Keys(); len(got) != 3 || got[0] != "name" || got[1] != "age" || got[2] != "admin" {
		t.Fatalf("Keys() = %v, want [name age admin]", got)
	}
	v, ok := o.Get("name")
	if !ok {
		t.Fatal("Get(name) missing")
	}
	if s, _ := v.String(); s != "Joannis" {
		t.Fatalf("name = %q, want Joannis", s)
	}
	if _, ok := o.Get("missing"); ok {
		t.Fatal("Get(missing) should report ok=false")
	}
}

func TestArrayGetAndLen(t *testing.T) {
	a, err := ParseArray([]byte(`[1,"two",3.5,[4,5],{"k":6}]`))
	if err != nil {
		t.Fatalf("ParseArray error: %v", err)
	}
	if a.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", a.Len())
	}
	v, ok := a.Get(0)
	if !ok {
		t.Fatal("Get(0) missing")
	}
	if i, _ := v.Int(); i != 1 {
		t.Fatalf("Get(0) = %d, want 1", i)
	}
	nested, ok := a.Get(3)
	if !ok {
		t.Fatal("Get(3) missing")
	}
	nestedArr, ok := nested.Array()
	if !ok {
		t.Fatal("Get(3) did not decode as an array")
	}
	if nestedArr.Len() != 2 {
		t.Fatalf("nested array Len() = %d, want 2", nestedArr.Len())
	}
	if _, ok := a.Get(5); ok {
		t.Fatal("Get(5) should report ok=false")
	}
}

func TestNestedSliceIsIndependent(t *testing.T) {
	o, err := ParseObject([]byte(`{"a":{"b":1}}`))
	if err != nil {
		t.Fatalf("ParseObject error: %v", err)
	}
	v, _ := o.Get("a")
	nested, _ := v.Object()
	if err := nested.Set("b", Int(2)); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if got := nested.String(); got != `{"b":2}` {
		t.Fatalf("nested.String() = %q, want {\"b\":2}", got)
	}
	if got := o.String(); got != `{"a":{"b":1}}` {
		t.Fatalf("parent mutated: o.String() = %q, want {\"a\":{\"b\":1}}", got)
	}
}
