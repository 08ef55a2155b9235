package parse

import (
	"fmt"

	"github.com/signadot/boxed-json/ir"
	"github.com/valyala/fastjson"
)

// JSON parses strict JSON text.
func JSON(d []byte) (*ir.Node, error) {
	if err := fastjson.ValidateBytes(d); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	var p fastjson.Parser
	v, err := p.ParseBytes(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	// values returned by p are only valid until its next use, so the whole
	// tree is copied out here.
	return fromFastJSON(v)
}

func fromFastJSON(v *fastjson.Value) (*ir.Node, error) {
	switch v.Type() {
	case fastjson.TypeNull:
		return ir.Null(), nil
	case fastjson.TypeTrue:
		return ir.FromBool(true), nil
	case fastjson.TypeFalse:
		return ir.FromBool(false), nil
	case fastjson.TypeNumber:
		return ir.NumberText(string(v.MarshalTo(nil))), nil
	case fastjson.TypeString:
		b, err := v.StringBytes()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		return ir.FromString(string(b)), nil
	case fastjson.TypeArray:
		vs, err := v.Array()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		res := &ir.Node{Type: ir.ArrayType, Values: make([]*ir.Node, len(vs))}
		for i, e := range vs {
			n, err := fromFastJSON(e)
			if err != nil {
				return nil, err
			}
			res.Values[i] = n
		}
		return res, nil
	case fastjson.TypeObject:
		o, err := v.Object()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		res := &ir.Node{
			Type:   ir.ObjectType,
			Fields: make([]string, 0, o.Len()),
			Values: make([]*ir.Node, 0, o.Len()),
		}
		pos := make(map[string]int, o.Len())
		var visitErr error
		o.Visit(func(key []byte, e *fastjson.Value) {
			if visitErr != nil {
				return
			}
			n, err := fromFastJSON(e)
			if err != nil {
				visitErr = err
				return
			}
			k := string(key)
			if i, ok := pos[k]; ok {
				res.Values[i] = n
				return
			}
			pos[k] = len(res.Fields)
			res.Fields = append(res.Fields, k)
			res.Values = append(res.Values, n)
		})
		if visitErr != nil {
			return nil, visitErr
		}
		return res, nil
	default:
		return nil, fmt.Errorf("%w: unexpected json type %s", ErrParse, v.Type())
	}
}
