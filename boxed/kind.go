package boxed

import "github.com/signadot/boxed-json/ir"

// Kind is the kind of a valid value.  Sentinels have NoKind.
type Kind int

const (
	NoKind Kind = iota
	Array
	Object
	String
	Number
	True
	False
	Null
)

func (k Kind) String() string {
	switch k {
	case Array:
		return "Array"
	case Object:
		return "Object"
	case String:
		return "String"
	case Number:
		return "Number"
	case True:
		return "True"
	case False:
		return "False"
	case Null:
		return "Null"
	}
	return "NoKind"
}

// ErrKind records why a value is unusable.  Valid values have NoErr.
type ErrKind int

const (
	NoErr ErrKind = iota
	// HadNull: a null was found where a navigable or typed value was needed.
	HadNull
	// HadMissing: an object key or array index did not exist.
	HadMissing
	// HadInvalid: a value existed but had the wrong shape.
	HadInvalid

	numErrKinds
)

func (e ErrKind) String() string {
	switch e {
	case NoErr:
		return "Valid"
	case HadNull:
		return "HadNull"
	case HadMissing:
		return "HadMissing"
	case HadInvalid:
		return "HadInvalid"
	}
	return "<unknown error kind>"
}

// Shape is the shape a caller asked for.  A sentinel remembers the shape it
// was last coerced to, but the shape takes no part in equality.
type Shape int

const (
	LiteralShape Shape = iota
	ArrayShape
	ObjectShape
	NumberShape
	StringShape

	numShapes
)

func (s Shape) String() string {
	switch s {
	case LiteralShape:
		return "Literal"
	case ArrayShape:
		return "Array"
	case ObjectShape:
		return "Object"
	case NumberShape:
		return "Number"
	case StringShape:
		return "String"
	}
	return "<unknown shape>"
}

// ShapeOf returns the shape matching k; booleans and null are literals.
func ShapeOf(k Kind) Shape {
	switch k {
	case Array:
		return ArrayShape
	case Object:
		return ObjectShape
	case Number:
		return NumberShape
	case String:
		return StringShape
	}
	return LiteralShape
}

func kindOf(v ir.Value) Kind {
	switch v.Kind() {
	case ir.ArrayType:
		if _, ok := v.(ir.Array); ok {
			return Array
		}
	case ir.ObjectType:
		if _, ok := v.(ir.Object); ok {
			return Object
		}
	case ir.StringType:
		if _, ok := v.(*ir.Node); ok {
			return String
		}
	case ir.NumberType:
		if _, ok := v.(*ir.Node); ok {
			return Number
		}
	case ir.BoolType:
		if n, ok := v.(*ir.Node); ok {
			if n.Bool {
				return True
			}
			return False
		}
	case ir.NullType:
		return Null
	}
	return NoKind
}
