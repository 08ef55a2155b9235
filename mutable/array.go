package mutable

import (
	"fmt"
	"iter"
	"slices"

	"github.com/signadot/boxed-json/ir"
)

type Array struct {
	values []ir.Value
}

func NewArray(capacity int) *Array {
	return &Array{values: make([]ir.Value, 0, capacity)}
}

// ArrayOf returns an Array over a shallow copy of the elements of node,
// which must be an array node.
func ArrayOf(node *ir.Node) *Array {
	res := &Array{values: make([]ir.Value, len(node.Values))}
	for i, v := range node.Values {
		res.values[i] = ir.OrNull(v)
	}
	return res
}

// ArrayFrom returns an Array holding vs.
func ArrayFrom(vs ...ir.Value) *Array {
	res := NewArray(len(vs))
	res.Append(vs...)
	return res
}

func (a *Array) Kind() ir.Type {
	return ir.ArrayType
}

func (a *Array) Len() int {
	return len(a.values)
}

// At returns the element at i, upgrading a plain container in place.  It
// returns nil if i is out of range.
func (a *Array) At(i int) ir.Value {
	if i < 0 || i >= len(a.values) {
		return nil
	}
	v := a.values[i]
	if w, ok := upgrade(v); ok {
		a.values[i] = w
		return w
	}
	return v
}

// Raw returns the element at i as stored.
func (a *Array) Raw(i int) ir.Value {
	if i < 0 || i >= len(a.values) {
		return nil
	}
	return a.values[i]
}

func (a *Array) Items() iter.Seq2[int, ir.Value] {
	return func(yield func(int, ir.Value) bool) {
		for i, v := range a.values {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Set replaces the element at i and returns the previous one.
func (a *Array) Set(i int, v ir.Value) (ir.Value, error) {
	if i < 0 || i >= len(a.values) {
		return nil, fmt.Errorf("%w: set %d of %d", ErrIndex, i, len(a.values))
	}
	old := a.values[i]
	a.values[i] = ir.OrNull(v)
	return old, nil
}

func (a *Array) Append(vs ...ir.Value) {
	for _, v := range vs {
		a.values = append(a.values, ir.OrNull(v))
	}
}

// Insert inserts v before position i; i may equal Len.
func (a *Array) Insert(i int, v ir.Value) error {
	if i < 0 || i > len(a.values) {
		return fmt.Errorf("%w: insert %d of %d", ErrIndex, i, len(a.values))
	}
	a.values = slices.Insert(a.values, i, ir.OrNull(v))
	return nil
}

// Remove deletes the element at i and returns it.
func (a *Array) Remove(i int) (ir.Value, error) {
	if i < 0 || i >= len(a.values) {
		return nil, fmt.Errorf("%w: remove %d of %d", ErrIndex, i, len(a.values))
	}
	old := a.values[i]
	a.values = slices.Delete(a.values, i, i+1)
	return old, nil
}

func (a *Array) String() string {
	return render(a)
}

func (a *Array) MarshalJSON() ([]byte, error) {
	return marshal(a)
}
