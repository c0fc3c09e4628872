package ast

// Cons creates a pair. Either side may be nil.
func Cons(head *Value, tail *Value) *Value {
	return &Value{t: ValueTypePair, v: &pair{head: head, tail: tail}}
}

// List builds the chain the reader builds for (v1 ... vn): the last value
// goes straight into the tail slot, except for a single value, which is
// kept wrapped as (v1).
func List(values ...*Value) *Value {
	switch len(values) {
	case 0:
		return nil
	case 1:
		return Cons(values[0], nil)
	}

	list := values[len(values)-1]
	for i := len(values) - 2; i >= 0; i-- {
		list = Cons(values[i], list)
	}
	return list
}

// IsPair returns true if v is a cons cell
func (v *Value) IsPair() bool {
	return v != nil && v.t == ValueTypePair
}

// IsAtom returns true if v is not a pair. The absent value is not an atom.
func (v *Value) IsAtom() bool {
	return v != nil && v.t != ValueTypePair
}

// Head returns the first slot of a pair, or nil for anything else.
func (v *Value) Head() *Value {
	if !v.IsPair() {
		return nil
	}
	return v.v.(*pair).head
}

// Tail returns the second slot of a pair, or nil for anything else.
func (v *Value) Tail() *Value {
	if !v.IsPair() {
		return nil
	}
	return v.v.(*pair).tail
}

// Equal reports whether a and b have the same structure. Procedures and
// closures are only equal to themselves.
func Equal(a *Value, b *Value) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil || a.t != b.t {
		return false
	}
	switch a.t {
	case ValueTypeInt:
		return a.Int() == b.Int()
	case ValueTypeFloat:
		return a.Float64() == b.Float64()
	case ValueTypeString, ValueTypeSymbol:
		return a.Text() == b.Text()
	case ValueTypePair:
		return Equal(a.Head(), b.Head()) && Equal(a.Tail(), b.Tail())
	}
	return false
}
