package boxed

import (
	"math/big"

	"github.com/signadot/boxed-json/ir"
)

// Get returns the value at key.  It gives HadMissingLiteral if b is an
// object without key, and a literal sentinel if b is not an object.
func (b Value) Get(key string) Value {
	o := b.AsObject()
	if !o.IsValid() {
		return Sentinel(o.ErrKind(), LiteralShape)
	}
	child, ok := o.v.(ir.Object).Get(key)
	if !ok {
		return HadMissingLiteral
	}
	return Of(child)
}

// At returns the element at i.  It gives HadMissingLiteral if b is an array
// and i is out of range, and a literal sentinel if b is not an array.
func (b Value) At(i int) Value {
	a := b.AsArray()
	if !a.IsValid() {
		return Sentinel(a.ErrKind(), LiteralShape)
	}
	arr := a.v.(ir.Array)
	if i < 0 || i >= arr.Len() {
		return HadMissingLiteral
	}
	return Of(arr.At(i))
}

// Has reports whether b is an object with key.
func (b Value) Has(key string) bool {
	if b.kind != Object {
		return false
	}
	_, ok := b.v.(ir.Object).Get(key)
	return ok
}

// Keys returns the keys of an object in order, or nil.
func (b Value) Keys() []string {
	if b.kind != Object {
		return nil
	}
	return b.v.(ir.Object).Keys()
}

// Len returns the number of elements of an array or fields of an object,
// and 0 for anything else.
func (b Value) Len() int {
	switch b.kind {
	case Array:
		return b.v.(ir.Array).Len()
	case Object:
		return b.v.(ir.Object).Len()
	}
	return 0
}

// Int64Or returns the number truncated toward zero, or def if b is not a
// number or does not fit.
func (b Value) Int64Or(def int64) int64 {
	if b.kind != Number {
		return def
	}
	i, ok := b.node().Int64Value()
	if !ok {
		return def
	}
	return i
}

func (b Value) Int64() int64 {
	return b.Int64Or(0)
}

func (b Value) IntOr(def int) int {
	i := b.Int64Or(int64(def))
	if int64(int(i)) != i {
		return def
	}
	return int(i)
}

func (b Value) Int() int {
	return b.IntOr(0)
}

func (b Value) Float64Or(def float64) float64 {
	if b.kind != Number {
		return def
	}
	f, ok := b.node().Float64Value()
	if !ok {
		return def
	}
	return f
}

func (b Value) Float64() float64 {
	return b.Float64Or(0)
}

// BigInt returns the integer part of a number.  Anything else gives a new
// zero.
func (b Value) BigInt() *big.Int {
	if b.kind == Number {
		if i, ok := b.node().BigInt(); ok {
			return i
		}
	}
	return new(big.Int)
}

// Rat returns the exact value of a number.  Anything else gives a new zero.
func (b Value) Rat() *big.Rat {
	if b.kind == Number {
		if r, ok := b.node().Rat(); ok {
			return r
		}
	}
	return new(big.Rat)
}

func (b Value) TextOr(def string) string {
	if b.kind != String {
		return def
	}
	return b.node().String
}

// Text returns the string value of b, or "".
func (b Value) Text() string {
	return b.TextOr("")
}

// BoolOr returns true for true, false for false and def otherwise.
func (b Value) BoolOr(def bool) bool {
	switch b.kind {
	case True:
		return true
	case False:
		return false
	}
	return def
}

// Bool reports whether b is true.
func (b Value) Bool() bool {
	return b.kind == True
}
