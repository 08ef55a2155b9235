package mutable

import (
	"bytes"

	"github.com/signadot/boxed-json/debug"
	"github.com/signadot/boxed-json/encode"
	"github.com/signadot/boxed-json/ir"
)

// upgrade returns a mutable wrapper for a plain container.
func upgrade(v ir.Value) (ir.Value, bool) {
	n, ok := v.(*ir.Node)
	if !ok || n == nil {
		return v, false
	}
	switch n.Type {
	case ir.ArrayType:
		if debug.Upgrade() {
			debug.Logf("upgrade array of %d", len(n.Values))
		}
		return ArrayOf(n), true
	case ir.ObjectType:
		if debug.Upgrade() {
			debug.Logf("upgrade object of %d", len(n.Fields))
		}
		return ObjectOf(n), true
	}
	return v, false
}

// Wrap returns v as an editable value: plain containers are wrapped, mutable
// containers and leaves are returned as is and absent values become null.
func Wrap(v ir.Value) ir.Value {
	if ir.IsNil(v) {
		return ir.Null()
	}
	if w, ok := upgrade(v); ok {
		return w
	}
	return v
}

// IsMutable reports whether v is an Array or Object from this package.
func IsMutable(v ir.Value) bool {
	switch v.(type) {
	case *Array, *Object:
		return true
	}
	return false
}

// Normalize makes v fully mutable in place: every plain container below v
// is replaced by a wrapper and every absent value by null.  Leaves and
// plain roots are returned unchanged apart from absent values.
func Normalize(v ir.Value) ir.Value {
	switch x := v.(type) {
	case *Array:
		for i, e := range x.values {
			x.values[i] = Normalize(Wrap(e))
		}
		return x
	case *Object:
		for _, k := range x.keys {
			x.values[k] = Normalize(Wrap(x.values[k]))
		}
		return x
	}
	return ir.OrNull(v)
}

// DeepCopy returns a mutable copy of v sharing nothing with it.
func DeepCopy(v ir.Value) ir.Value {
	if ir.IsNil(v) {
		return ir.Null()
	}
	switch v.Kind() {
	case ir.ArrayType:
		a := v.(ir.Array)
		res := NewArray(a.Len())
		for _, e := range a.Items() {
			res.Append(DeepCopy(e))
		}
		return res
	case ir.ObjectType:
		o := v.(ir.Object)
		res := NewObject()
		for k, e := range o.Entries() {
			res.Put(k, DeepCopy(e))
		}
		return res
	}
	if n, ok := v.(*ir.Node); ok {
		return n.Clone()
	}
	return v
}

// Freeze returns a plain node tree equal to v.
func Freeze(v ir.Value) *ir.Node {
	if ir.IsNil(v) {
		return ir.Null()
	}
	switch v.Kind() {
	case ir.ArrayType:
		a := v.(ir.Array)
		res := &ir.Node{Type: ir.ArrayType, Values: make([]*ir.Node, 0, a.Len())}
		for _, e := range a.Items() {
			res.Values = append(res.Values, Freeze(e))
		}
		return res
	case ir.ObjectType:
		o := v.(ir.Object)
		res := &ir.Node{Type: ir.ObjectType}
		for k, e := range o.Entries() {
			res.Fields = append(res.Fields, k)
			res.Values = append(res.Values, Freeze(e))
		}
		return res
	}
	if n, ok := v.(*ir.Node); ok {
		return n.Clone()
	}
	return ir.Null()
}

func render(v ir.Value) string {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(Normalize(v), buf, encode.EncodeWire(true)); err != nil {
		return err.Error()
	}
	return buf.String()
}

func marshal(v ir.Value) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(Normalize(v), buf, encode.EncodeWire(true)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
