package boxed

import (
	"fmt"

	"github.com/signadot/boxed-json/ir"
	"github.com/signadot/boxed-json/mutable"
)

// The edit methods below change b in place.  They report data conditions
// the same way Get does, with a sentinel, and return ErrReadOnly when b is a
// container which cannot be edited.

func (b Value) mutableObject(op string) (*mutable.Object, Value, error) {
	o := b.AsObject()
	if !o.IsValid() {
		return nil, Sentinel(o.ErrKind(), LiteralShape), nil
	}
	mo, ok := o.v.(*mutable.Object)
	if !ok {
		return nil, Value{}, fmt.Errorf("%w: %s on %T", ErrReadOnly, op, o.v)
	}
	return mo, Value{}, nil
}

func (b Value) mutableArray(op string) (*mutable.Array, Value, error) {
	a := b.AsArray()
	if !a.IsValid() {
		return nil, Sentinel(a.ErrKind(), LiteralShape), nil
	}
	ma, ok := a.v.(*mutable.Array)
	if !ok {
		return nil, Value{}, fmt.Errorf("%w: %s on %T", ErrReadOnly, op, a.v)
	}
	return ma, Value{}, nil
}

// Put sets key to v and returns the previous value, or HadMissingLiteral if
// key is new.
func (b Value) Put(key string, v ir.Value) (Value, error) {
	o, res, err := b.mutableObject("put")
	if o == nil {
		return res, err
	}
	old, existed := o.Put(key, v)
	if !existed {
		return HadMissingLiteral, nil
	}
	return Of(old), nil
}

// Remove deletes key and returns its value, or HadMissingLiteral if there
// was none.
func (b Value) Remove(key string) (Value, error) {
	o, res, err := b.mutableObject("remove")
	if o == nil {
		return res, err
	}
	old, ok := o.Remove(key)
	if !ok {
		return HadMissingLiteral, nil
	}
	return Of(old), nil
}

// RenameKey moves the value at oldKey to newKey and returns it.  The field
// keeps its position.  If oldKey does not exist nothing changes and the
// result is HadMissingLiteral.
func (b Value) RenameKey(oldKey, newKey string) (Value, error) {
	o, res, err := b.mutableObject("rename")
	if o == nil {
		return res, err
	}
	if !o.Has(oldKey) {
		return HadMissingLiteral, nil
	}
	v, err := o.Rename(oldKey, newKey)
	if err != nil {
		return Value{}, err
	}
	return Of(v), nil
}

// SetAt replaces the element at i and returns the previous one.  Writing
// at Len appends; beyond that the result is HadMissingLiteral.
func (b Value) SetAt(i int, v ir.Value) (Value, error) {
	a, res, err := b.mutableArray("set")
	if a == nil {
		return res, err
	}
	switch {
	case i == a.Len():
		a.Append(v)
		return HadMissingLiteral, nil
	case i < 0 || i > a.Len():
		return HadMissingLiteral, nil
	}
	old, err := a.Set(i, v)
	if err != nil {
		return Value{}, err
	}
	return Of(old), nil
}

// Append adds vs to the end of an array and returns b.
func (b Value) Append(vs ...ir.Value) (Value, error) {
	a, res, err := b.mutableArray("append")
	if a == nil {
		return res, err
	}
	a.Append(vs...)
	return b, nil
}

// RemoveAt deletes the element at i and returns it, or HadMissingLiteral if
// i is out of range.
func (b Value) RemoveAt(i int) (Value, error) {
	a, res, err := b.mutableArray("remove")
	if a == nil {
		return res, err
	}
	if i < 0 || i >= a.Len() {
		return HadMissingLiteral, nil
	}
	old, err := a.Remove(i)
	if err != nil {
		return Value{}, err
	}
	return Of(old), nil
}
