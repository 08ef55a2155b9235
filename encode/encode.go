package encode

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/boxed-json/format"
	"github.com/signadot/boxed-json/ir"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	depth, indent int

	format format.Format
	wire   bool

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes v to w.  Absent values are written as null.  Unless wire
// output is selected, the output ends with a newline.
func Encode(v ir.Value, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.JSONFormat:
	case format.YAMLFormat:
		return encodeYAML(v, w, es)
	default:
		return fmt.Errorf("%w: unsupported format %s", ErrEncoding, es.format)
	}
	if err := encode(v, w, es); err != nil {
		return err
	}
	if es.wire {
		return nil
	}
	return writeString(w, "\n")
}

func encode(v ir.Value, w io.Writer, es *EncState) error {
	if ir.IsNil(v) {
		return writeValue(w, es, ir.NullType, "null")
	}
	switch v.Kind() {
	case ir.ObjectType:
		o, ok := v.(ir.Object)
		if !ok {
			return fmt.Errorf("%w: %T is not an object", ErrEncoding, v)
		}
		return encodeObject(o, w, es)
	case ir.ArrayType:
		a, ok := v.(ir.Array)
		if !ok {
			return fmt.Errorf("%w: %T is not an array", ErrEncoding, v)
		}
		return encodeArray(a, w, es)
	case ir.NullType:
		return writeValue(w, es, ir.NullType, "null")
	}
	n, ok := v.(*ir.Node)
	if !ok {
		return fmt.Errorf("%w: unexpected leaf %T", ErrEncoding, v)
	}
	switch n.Type {
	case ir.StringType:
		return writeValue(w, es, ir.StringType, Quote(n.String))
	case ir.NumberType:
		return writeValue(w, es, ir.NumberType, n.NumberText())
	case ir.BoolType:
		if n.Bool {
			return writeValue(w, es, ir.BoolType, "true")
		}
		return writeValue(w, es, ir.BoolType, "false")
	default:
		return fmt.Errorf("%w: unknown type %s", ErrEncoding, n.Type)
	}
}

func encodeObject(o ir.Object, w io.Writer, es *EncState) error {
	if o.Len() == 0 {
		return writeSep(w, es, ir.ObjectType, "{}")
	}
	if err := writeSep(w, es, ir.ObjectType, "{"); err != nil {
		return err
	}
	es.depth++
	i := 0
	for k, v := range o.Entries() {
		if i > 0 {
			if err := writeSep(w, es, ir.ObjectType, ","); err != nil {
				return err
			}
		}
		i++
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := writeField(w, es, k); err != nil {
			return err
		}
		colon := ":"
		if !es.wire {
			colon = ": "
		}
		if err := writeSep(w, es, ir.ObjectType, colon); err != nil {
			return err
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSep(w, es, ir.ObjectType, "}")
}

func encodeArray(a ir.Array, w io.Writer, es *EncState) error {
	if a.Len() == 0 {
		return writeSep(w, es, ir.ArrayType, "[]")
	}
	if err := writeSep(w, es, ir.ArrayType, "["); err != nil {
		return err
	}
	es.depth++
	for i, v := range a.Items() {
		if i > 0 {
			if err := writeSep(w, es, ir.ArrayType, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSep(w, es, ir.ArrayType, "]")
}

// Helper functions for writing
func writeNL(w io.Writer, es *EncState) error {
	if es.wire {
		return nil
	}
	indentString := strings.Repeat(" ", es.indent*es.depth)
	return writeString(w, "\n"+indentString)
}

func writeString(w io.Writer, s string) error {
	n, err := w.Write([]byte(s))
	if err == nil && n != len(s) {
		return io.ErrShortWrite
	}
	return err
}

func writeSep(w io.Writer, es *EncState, t ir.Type, sep string) error {
	if es.Color != nil {
		sep = es.Color(t, SepColor, sep)
	}
	return writeString(w, sep)
}

func writeField(w io.Writer, es *EncState, field string) error {
	q := Quote(field)
	if es.Color != nil {
		q = es.Color(ir.ObjectType, FieldColor, q)
	}
	return writeString(w, q)
}

func writeValue(w io.Writer, es *EncState, t ir.Type, s string) error {
	if es.Color != nil {
		s = es.Color(t, ValueColor, s)
	}
	return writeString(w, s)
}

// MustString returns the JSON text of v without a trailing newline.  It
// panics if v cannot be encoded.
func MustString(v ir.Value, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(v, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}

// String is like MustString but returns the error.
func String(v ir.Value, opts ...EncodeOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(v, buf, opts...); err != nil {
		return "", err
	}
	return strings.TrimSpace(buf.String()), nil
}
