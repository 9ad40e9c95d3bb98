package nbt

import "math"

// Copier is implemented by tags that know how to deep copy themselves.
type Copier interface {
	CopyTag() Tag
}

// Equal reports whether a and b are structurally equal.
// Any two Trees with equal entries are equal, whatever their implementation.
// Floating point values are compared bit for bit.
func Equal(a, b Tag) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Type() != b.Type() {
		return false
	}
	switch a := a.(type) {
	case Float:
		return math.Float32bits(float32(a)) == math.Float32bits(float32(b.(Float)))
	case Double:
		return math.Float64bits(float64(a)) == math.Float64bits(float64(b.(Double)))
	case ByteArray:
		b := b.(ByteArray)
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if a[i] != b[i] {
				return false
			}
		}
		return true
	case IntArray:
		b := b.(IntArray)
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if a[i] != b[i] {
				return false
			}
		}
		return true
	case LongArray:
		b := b.(LongArray)
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if a[i] != b[i] {
				return false
			}
		}
		return true
	case *List:
		b, ok := b.(*List)
		if !ok || a.Len() != b.Len() {
			return false
		}
		for i := 0; i < a.Len(); i++ {
			if !Equal(a.Get(i), b.Get(i)) {
				return false
			}
		}
		return true
	case Tree:
		b, ok := b.(Tree)
		if !ok {
			return false
		}
		return TreesEqual(a, b)
	default:
		return a == b
	}
}

// TreesEqual reports whether two trees hold the same keys with equal values.
func TreesEqual(a, b Tree) bool {
	if a.Len() != b.Len() {
		return false
	}
	for _, k := range a.Keys() {
		bv := b.Get(k)
		if bv == nil || !Equal(a.Get(k), bv) {
			return false
		}
	}
	return true
}

// Copy returns a deep copy of t. Trees that do not implement Copier are
// copied into a *Compound.
func Copy(t Tag) Tag {
	switch t := t.(type) {
	case nil:
		return nil
	case Copier:
		return t.CopyTag()
	case ByteArray:
		return append(ByteArray{}, t...)
	case IntArray:
		return append(IntArray{}, t...)
	case LongArray:
		return append(LongArray{}, t...)
	case *List:
		l := &List{elem: t.elem, items: make([]Tag, len(t.items))}
		for i, v := range t.items {
			l.items[i] = Copy(v)
		}
		return l
	case Tree:
		return CopyTree(t)
	default:
		return t
	}
}

// CopyTree deep copies a tree into a new *Compound.
func CopyTree(t Tree) *Compound {
	c := NewCompound()
	for _, k := range t.Keys() {
		c.Set(k, Copy(t.Get(k)))
	}
	return c
}

func (c *Compound) CopyTag() Tag {
	return CopyTree(c)
}
