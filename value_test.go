package jsondoc

import "testing"

func TestValueConstructorsAndAccessors(t *testing.T) {
	if !Null.IsNull() {
		t.Fatal("Null.IsNull() = false")
	}
	if b, ok := Bool(true).Bool(); !ok || !b {
		t.Fatalf("Bool(true).Bool() = (%v, %v), want (true, true)", b, ok)
	}
	if s, ok := String("x").String(); !ok || s != "x" {
		t.Fatalf("String(x).String() = (%q, %v), want (x, true)", s, ok)
	}
	if i, ok := Int(5).Int(); !ok || i != 5 {
		t.Fatalf("Int(5).Int() = (%d, %v), want (5, true)", i, ok)
	}
	if f, ok := Float(5.5).Float(); !ok || f != 5.5 {
		t.Fatalf("Float(5.5).Float() = (%v, %v), want (5.5, true)", f, ok)
	}
}

func TestValueFloatAcceptsIntegerKind(t *testing.T) {
	f, ok := Int(3).Float()
	if !ok || f != 3.0 {
		t.Fatalf("Int(3).Float() = (%v, %v), want (3.0, true)", f, ok)
	}
}

func TestValueIntRejectsFloatingKind(t *testing.T) {
	if _, ok := Float(3.0).Int(); ok {
		t.Fatal("Float(3.0).Int() should report ok=false, not silently truncate")
	}
}

func TestValueKindMismatchAccessors(t *testing.T) {
	v := Int(1)
	if _, ok := v.String(); ok {
		t.Fatal("Int(1).String() should report ok=false")
	}
	if _, ok := v.Bool(); ok {
		t.Fatal("Int(1).Bool() should report ok=false")
	}
	if _, ok := v.Object(); ok {
		t.Fatal("Int(1).Object() should report ok=false")
	}
	if _, ok := v.Array(); ok {
		t.Fatal("Int(1).Array() should report ok=false")
	}
}

func TestValueSetIndexOnArray(t *testing.T) {
	a, err := ParseArray([]byte(`[1,2,3]`))
	if err != nil {
		t.Fatalf("ParseArray error: %v", err)
	}
	v := FromArray(a)
	if err := v.SetIndex(1, Int(9)); err != nil {
		t.Fatalf("SetIndex error: %v", err)
	}
	if got := a.String(); got != `[1,9,3]` {
		t.Fatalf("String() = %q, want [1,9,3]", got)
	}
}

func TestValueSetIndexOnNonArrayIsError(t *testing.T) {
	if err := String("x").SetIndex(0, Int(1)); err != ErrNotArray {
		t.Fatalf("err = %v, want ErrNotArray", err)
	}
	if err := Int(1).SetIndex(0, Int(1)); err != ErrNotArray {
		t.Fatalf("err = %v, want ErrNotArray", err)
	}
}

func TestValueKindReporting(t *testing.T) {
	tests := []struct {
		v    Value
		want Kind
	}{
		{Null, KindNull},
		{Bool(false), KindBool},
		{String(""), KindString},
		{Int(0), KindInteger},
		{Float(0), KindFloating},
		{FromObject(NewObject()), KindObject},
		{FromArray(NewArray()), KindArray},
	}
	for _, tt := range tests {
		if got := tt.v.Kind(); got != tt.want {
			t.Fatalf("Kind() = %v, want %v", got, tt.want)
		}
	}
}
