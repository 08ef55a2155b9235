package ir

import (
	"encoding/json"
	"fmt"
	"math/big"
	"reflect"
)

// ToAny converts v to plain Go values: map[string]any, []any, string, bool,
// nil, and int (when the number fits) or float64 for numbers.
func ToAny(v Value) any {
	if IsNil(v) {
		return nil
	}
	switch v.Kind() {
	case ObjectType:
		o := v.(Object)
		res := make(map[string]any, o.Len())
		for k, e := range o.Entries() {
			res[k] = ToAny(e)
		}
		return res
	case ArrayType:
		a := v.(Array)
		res := make([]any, 0, a.Len())
		for _, e := range a.Items() {
			res = append(res, ToAny(e))
		}
		return res
	case StringType:
		return leaf(v).String
	case NumberType:
		n := leaf(v)
		if i, ok := n.Int64Value(); ok && n.IsIntegral() {
			return int(i)
		}
		f, _ := n.Float64Value()
		return f
	case BoolType:
		return leaf(v).Bool
	default:
		return nil
	}
}

// FromAny converts plain Go values, as produced by encoding/json or yaml
// decoders, into a node tree.  Map keys are sorted.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		if x == nil {
			return Null(), nil
		}
		return x.Clone(), nil
	case []*Node:
		return FromSlice(x), nil
	case map[string]*Node:
		return FromMap(x), nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case json.Number:
		return FromNumber(x.String())
	case *big.Int:
		return FromBigInt(x), nil
	case float32:
		return FromFloat(float64(x)), nil
	case float64:
		return FromFloat(x), nil
	case []any:
		res := &Node{Type: ArrayType, Values: make([]*Node, len(x))}
		for i, e := range x {
			n, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			res.Values[i] = n
		}
		return res, nil
	case map[string]any:
		m := make(map[string]*Node, len(x))
		for k, e := range x {
			n, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			m[k] = n
		}
		return FromMap(m), nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return FromInt(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return FromBigInt(new(big.Int).SetUint64(rv.Uint())), nil
	}
	return nil, fmt.Errorf("%w: %T", ErrFromAny, v)
}
