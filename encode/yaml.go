package encode

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/signadot/boxed-json/ir"
)

// yamlNumber keeps the JSON number text when marshalled to YAML.
type yamlNumber string

func (n yamlNumber) MarshalYAML() ([]byte, error) {
	return []byte(n), nil
}

// ToYAMLAny converts v into values goccy/go-yaml marshals in document
// order: objects become yaml.MapSlice.
func ToYAMLAny(v ir.Value) any {
	if ir.IsNil(v) {
		return nil
	}
	switch v.Kind() {
	case ir.ObjectType:
		o := v.(ir.Object)
		res := make(yaml.MapSlice, 0, o.Len())
		for k, e := range o.Entries() {
			res = append(res, yaml.MapItem{Key: k, Value: ToYAMLAny(e)})
		}
		return res
	case ir.ArrayType:
		a := v.(ir.Array)
		res := make([]any, 0, a.Len())
		for _, e := range a.Items() {
			res = append(res, ToYAMLAny(e))
		}
		return res
	case ir.NullType:
		return nil
	}
	n, ok := v.(*ir.Node)
	if !ok {
		return nil
	}
	switch n.Type {
	case ir.StringType:
		return n.String
	case ir.BoolType:
		return n.Bool
	case ir.NumberType:
		if n.Number == "" && n.Int64 != nil {
			return *n.Int64
		}
		return yamlNumber(n.NumberText())
	}
	return nil
}

func encodeYAML(v ir.Value, w io.Writer, es *EncState) error {
	var opts []yaml.EncodeOption
	if es.indent > 0 {
		opts = append(opts, yaml.Indent(es.indent))
	}
	if es.wire {
		opts = append(opts, yaml.Flow(true))
	}
	d, err := yaml.MarshalWithOptions(ToYAMLAny(v), opts...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return writeString(w, string(d))
}
