package boxed

// AsShape coerces b to s.  A valid value of the matching kind is returned
// unchanged.  A mismatched valid value gives HadNull in shape s if it is
// JSON null and HadInvalid otherwise.  A sentinel keeps its ErrKind and
// takes shape s.
func (b Value) AsShape(s Shape) Value {
	if !b.IsValid() {
		return Sentinel(b.ErrKind(), s)
	}
	ok := false
	switch s {
	case LiteralShape:
		ok = b.IsLiteral()
	default:
		ok = ShapeOf(b.kind) == s
	}
	if ok {
		return b
	}
	if b.kind == Null {
		return Sentinel(HadNull, s)
	}
	return Sentinel(HadInvalid, s)
}

func (b Value) AsArray() Value   { return b.AsShape(ArrayShape) }
func (b Value) AsObject() Value  { return b.AsShape(ObjectShape) }
func (b Value) AsNumber() Value  { return b.AsShape(NumberShape) }
func (b Value) AsString() Value  { return b.AsShape(StringShape) }
func (b Value) AsLiteral() Value { return b.AsShape(LiteralShape) }

// AsBoolean returns b if it is true or false and a literal sentinel
// otherwise.
func (b Value) AsBoolean() Value {
	switch {
	case b.kind == True, b.kind == False:
		return b
	case !b.IsValid():
		return Sentinel(b.ErrKind(), LiteralShape)
	case b.kind == Null:
		return HadNullLiteral
	}
	return HadInvalidLiteral
}
