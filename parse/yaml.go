package parse

import (
	"encoding"
	"fmt"
	"math/big"

	"github.com/goccy/go-yaml"
	"github.com/signadot/boxed-json/ir"
)

// YAML parses a YAML document, keeping mapping order.  Mapping keys are
// converted to their string form.
func YAML(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return FromYAMLAny(v)
}

// FromYAMLAny converts a value decoded by goccy/go-yaml into a node.
func FromYAMLAny(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case yaml.MapSlice:
		kvs := make([]ir.KeyVal, 0, len(x))
		pos := make(map[string]int, len(x))
		for _, item := range x {
			k, err := yamlKey(item.Key)
			if err != nil {
				return nil, err
			}
			n, err := FromYAMLAny(item.Value)
			if err != nil {
				return nil, err
			}
			if i, ok := pos[k]; ok {
				kvs[i].Val = n
				continue
			}
			pos[k] = len(kvs)
			kvs = append(kvs, ir.KeyVal{Key: k, Val: n})
		}
		return ir.FromKeyVals(kvs), nil
	case []any:
		res := &ir.Node{Type: ir.ArrayType, Values: make([]*ir.Node, len(x))}
		for i, e := range x {
			n, err := FromYAMLAny(e)
			if err != nil {
				return nil, err
			}
			res.Values[i] = n
		}
		return res, nil
	case map[string]any:
		m := make(map[string]*ir.Node, len(x))
		for k, e := range x {
			n, err := FromYAMLAny(e)
			if err != nil {
				return nil, err
			}
			m[k] = n
		}
		return ir.FromMap(m), nil
	case uint64:
		return ir.FromBigInt(new(big.Int).SetUint64(x)), nil
	case encoding.TextMarshaler:
		d, err := x.MarshalText()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrYAMLType, err)
		}
		return ir.FromString(string(d)), nil
	}
	n, err := ir.FromAny(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrYAMLType, err)
	}
	return n, nil
}

func yamlKey(k any) (string, error) {
	switch x := k.(type) {
	case string:
		return x, nil
	case nil:
		return "null", nil
	case bool, int, int64, uint64, float64:
		return fmt.Sprint(x), nil
	}
	return "", fmt.Errorf("%w: %T", ErrYAMLKey, k)
}
