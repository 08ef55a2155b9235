package ir

// Truth returns the truthiness of v as used by expressions: empty
// containers, empty strings, zero, false and null are false.
func Truth(v Value) bool {
	if IsNil(v) {
		return false
	}
	switch v.Kind() {
	case ObjectType:
		return v.(Object).Len() != 0
	case ArrayType:
		return v.(Array).Len() != 0
	case StringType:
		return leaf(v).String != ""
	case NumberType:
		n := leaf(v)
		if n.Int64 != nil {
			return *n.Int64 != 0
		}
		if n.Float64 != nil {
			return *n.Float64 != 0.0
		}
		r, ok := n.Rat()
		return ok && r.Sign() != 0
	case BoolType:
		return leaf(v).Bool
	default:
		return false
	}
}
