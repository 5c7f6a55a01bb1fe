package jsondoc

// Equal reports whether a and b are semantically equal JSON values
// (spec.md §4.4): object member order never matters, but an Integer and a
// Floating value compare equal whenever they denote the same number
// (Int(2) == Float(2.0)), since the distinction is a decoding convenience,
// not part of the JSON data model.
func Equal(a, b Value) bool {
	ak, bk := a.kind, b.kind
	if isNumeric(ak) && isNumeric(bk) {
		af, _ := a.Float()
		bf, _ := b.Float()
		return af == bf
	}
	if ak != bk {
		return false
	}
	switch ak {
	case KindNull:
		return true
	case KindBool:
		av, _ := a.Bool()
		bv, _ := b.Bool()
		return av == bv
	case KindString:
		av, _ := a.String()
		bv, _ := b.String()
		return av == bv
	case KindObject:
		ao, _ := a.Object()
		bo, _ := b.Object()
		return ao.Equal(bo)
	case KindArray:
		aa, _ := a.Array()
		ba, _ := b.Array()
		return aa.Equal(ba)
	default:
		return false
	}
}

func isNumeric(k Kind) bool { return k == KindInteger || k == KindFloating }

// Equal reports whether o and other have the same members, independent of
// order (spec.md §4.4: objects are unordered collections).
func (o *Object) Equal(other *Object) bool {
	if o.Len() != other.Len() {
		return false
	}
	for _, key := range o.Keys() {
		av, ok := o.Get(key)
		if !ok {
			continue
		}
		bv, ok := other.Get(key)
		if !ok || !Equal(av, bv) {
			return false
		}
	}
	return true
}

// Equal reports whether a and other have the same elements in the same order
// (spec.md §4.4: arrays are ordered sequences).
func (a *Array) Equal(other *Array) bool {
	if a.Len() != other.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		av, _ := a.Get(i)
		bv, _ := other.Get(i)
		if !Equal(av, bv) {
			return false
		}
	}
	return true
}
