package jsondoc

import "testing"

func TestObjectSetReplacesExisting(t *testing.T) {
	o, _ := ParseObject([]byte(`{"a":1,"b":2,"c":3}`))
	if err := o.Set("b", String("two")); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	want := `{"a":1,"b":"two","c":3}`
	if got := o.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestObjectSetAppendsNewKey(t *testing.T) {
	o, _ := ParseObject([]byte(`{"a":1}`))
	if err := o.Set("b", Int(2)); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	want := `{"a":1,"b":2}`
	if got := o.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestObjectSetIntoEmptyObject(t *testing.T) {
	o := NewObject()
	if err := o.Set("a", Bool(true)); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if got := o.String(); got != `{"a":true}` {
		t.Fatalf("String() = %q, want {\"a\":true}", got)
	}
}

func TestObjectRemoveFirstMiddleLastOnly(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		remove string
		want   string
	}{
		{"first of many", `{"a":1,"b":2,"c":3}`, "a", `{"b":2,"c":3}`},
		{"middle of many", `{"a":1,"b":2,"c":3}`, "b", `{"a":1,"c":3}`},
		{"last of many", `{"a":1,"b":2,"c":3}`, "c", `{"a":1,"b":2}`},
		{"only member", `{"a":1}`, "a", `{}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, _ := ParseObject([]byte(tt.in))
			if err := o.Remove(tt.remove); err != nil {
				t.Fatalf("Remove error: %v", err)
			}
			if got := o.String(); got != tt.want {
				t.Fatalf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestObjectRemoveMissingKeyIsNoop(t *testing.T) {
	o, _ := ParseObject([]byte(`{"a":1}`))
	if err := o.Remove("missing"); err != nil {
		t.Fatalf("Remove error: %v", err)
	}
	if got := o.String(); got != `{"a":1}` {
		t.Fatalf("String() = %q, want unchanged", got)
	}
}

func TestArraySetReplacesElement(t *testing.T) {
	a, _ := ParseArray([]byte(`[1,2,3]`))
	if err := a.Set(1, String("x")); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if got := a.String(); got != `[1,"x",3]` {
		t.Fatalf("String() = %q, want [1,\"x\",3]", got)
	}
}

func TestArraySetAtLenAppends(t *testing.T) {
	a, _ := ParseArray([]byte(`[1,2]`))
	if err := a.Set(2, Int(3)); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if got := a.String(); got != `[1,2,3]` {
		t.Fatalf("String() = %q, want [1,2,3]", got)
	}
}

func TestArraySetOutOfRange(t *testing.T) {
	a, _ := ParseArray([]byte(`[1,2]`))
	if err := a.Set(5, Int(3)); err != ErrIndexOutOfRange {
		t.Fatalf("err = %v, want ErrIndexOutOfRange", err)
	}
}

func TestArrayAppendIntoEmptyArray(t *testing.T) {
	a := NewArray()
	if err := a.Append(Int(1)); err != nil {
		t.Fatalf("Append error: %v", err)
	}
	if err := a.Append(Int(2)); err != nil {
		t.Fatalf("Append error: %v", err)
	}
	if got := a.String(); got != `[1,2]` {
		t.Fatalf("String() = %q, want [1,2]", got)
	}
}

func TestArrayRemoveFirstMiddleLastOnly(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		index int
		want  string
	}{
		{"first of many", `[1,2,3]`, 0, `[2,3]`},
		{"middle of many", `[1,2,3]`, 1, `[1,3]`},
		{"last of many", `[1,2,3]`, 2, `[1,2]`},
		{"only element", `[1]`, 0, `[]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _ := ParseArray([]byte(tt.in))
			if err := a.Remove(tt.index); err != nil {
				t.Fatalf("Remove error: %v", err)
			}
			if got := a.String(); got != tt.want {
				t.Fatalf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestArrayRemoveOutOfRange(t *testing.T) {
	a, _ := ParseArray([]byte(`[1,2]`))
	if err := a.Remove(5); err != ErrIndexOutOfRange {
		t.Fatalf("err = %v, want ErrIndexOutOfRange", err)
	}
}

func TestObjectSetNestedValue(t *testing.T) {
	o, _ := ParseObject([]byte(`{"a":1}`))
	inner := NewObject()
	if err := inner.Set("x", Int(9)); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if err := o.Set("nested", FromObject(inner)); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	want := `{"a":1,"nested":{"x":9}}`
	if got := o.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestRepeatedMutationsPreserveValidity(t *testing.T) {
	o := NewObject()
	for i := 0; i < 20; i++ {
		v := Int(int64(i))
		if err := o.Set(string(rune('a'+i%26))+"x", v); err != nil {
			t.Fatalf("Set error at %d: %v", i, err)
		}
	}
	parsed, err := ParseObject(o.Bytes())
	if err != nil {
		t.Fatalf("resulting buffer is not valid JSON: %v (%q)", err, o.String())
	}
	if parsed.Len() != 20 {
		t.Fatalf("Len() = %d, want 20", parsed.Len())
	}
}
