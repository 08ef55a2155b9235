package boxed

import (
	"github.com/signadot/boxed-json/ir"
)

// Value is a boxed JSON value.  The zero Value is HadNullLiteral.
type Value struct {
	kind  Kind
	err   ErrKind
	shape Shape
	v     ir.Value
}

// Of boxes v.  A nil v gives HadNullLiteral, as does a value of a kind this
// package cannot navigate.
func Of(v ir.Value) Value {
	if ir.IsNil(v) {
		return HadNullLiteral
	}
	k := kindOf(v)
	if k == NoKind {
		return HadInvalidLiteral
	}
	return Value{kind: k, shape: ShapeOf(k), v: v}
}

// Unbox returns the boxed payload; sentinels give a new JSON null node.
func (b Value) Unbox() ir.Value {
	if b.v == nil {
		return ir.Null()
	}
	return b.v
}

func (b Value) IsValid() bool {
	return b.v != nil
}

// ErrKind returns NoErr for valid values.
func (b Value) ErrKind() ErrKind {
	if b.v != nil {
		return NoErr
	}
	if b.err == NoErr {
		return HadNull
	}
	return b.err
}

func (b Value) HadNull() bool    { return b.ErrKind() == HadNull }
func (b Value) HadMissing() bool { return b.ErrKind() == HadMissing }
func (b Value) HadInvalid() bool { return b.ErrKind() == HadInvalid }

// Kind returns NoKind for sentinels.
func (b Value) Kind() Kind {
	return b.kind
}

// Shape returns the shape of a valid value, or the last shape a sentinel was
// coerced to.
func (b Value) Shape() Shape {
	return b.shape
}

func (b Value) IsNull() bool  { return b.kind == Null }
func (b Value) IsTrue() bool  { return b.kind == True }
func (b Value) IsFalse() bool { return b.kind == False }

// IsLiteral reports whether b is a valid non-container.
func (b Value) IsLiteral() bool {
	switch b.kind {
	case String, Number, True, False, Null:
		return true
	}
	return false
}

func (b Value) isContainer() bool {
	return b.kind == Array || b.kind == Object
}

// node returns the payload as a plain node, or nil.
func (b Value) node() *ir.Node {
	n, _ := b.v.(*ir.Node)
	return n
}
