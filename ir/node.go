package ir

import (
	"iter"
	"maps"
	"slices"
)

// Value is a read-only view of a JSON tree node.
//
// *Node is the plain, immutable implementation. Package mutable provides
// container implementations that can be edited in place.
type Value interface {
	Kind() Type
}

// Array is an indexable sequence of values.
type Array interface {
	Value
	Len() int
	At(i int) Value
	// Items iterates the elements as stored, without side effects.
	Items() iter.Seq2[int, Value]
}

// Object is an insertion-ordered set of key/value pairs.
type Object interface {
	Value
	Len() int
	Keys() []string
	Get(key string) (Value, bool)
	// Entries iterates the fields as stored, without side effects.
	Entries() iter.Seq2[string, Value]
}

// Node is a plain JSON tree node.
//
// For ObjectType nodes, Fields[i] is the key of Values[i].  Number nodes
// keep the source text in Number when they were parsed; Int64 or Float64 is
// set when the text fits.
type Node struct {
	Type   Type
	Fields []string
	Values []*Node

	String  string
	Bool    bool
	Number  string
	Float64 *float64
	Int64   *int64
}

func (y *Node) Kind() Type {
	return y.Type
}

func (y *Node) Len() int {
	return len(y.Values)
}

func (y *Node) At(i int) Value {
	if i < 0 || i >= len(y.Values) {
		return nil
	}
	if v := y.Values[i]; v != nil {
		return v
	}
	return nil
}

func (y *Node) Items() iter.Seq2[int, Value] {
	return func(yield func(int, Value) bool) {
		for i, v := range y.Values {
			var vv Value
			if v != nil {
				vv = v
			}
			if !yield(i, vv) {
				return
			}
		}
	}
}

func (y *Node) Keys() []string {
	if y.Type != ObjectType {
		return nil
	}
	return slices.Clone(y.Fields)
}

func (y *Node) Get(key string) (Value, bool) {
	if y.Type != ObjectType {
		return nil, false
	}
	// last wins, matching how duplicate keys are resolved when parsing.
	for i := len(y.Fields) - 1; i >= 0; i-- {
		if y.Fields[i] != key {
			continue
		}
		if v := y.Values[i]; v != nil {
			return v, true
		}
		return nil, true
	}
	return nil, false
}

func (y *Node) Entries() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if y.Type != ObjectType {
			return
		}
		for i, f := range y.Fields {
			var vv Value
			if v := y.Values[i]; v != nil {
				vv = v
			}
			if !yield(f, vv) {
				return
			}
		}
	}
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.Fields = slices.Clone(y.Fields)
	dst.Values = nil
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
	}
	for i, yv := range y.Values {
		if yv == nil {
			continue
		}
		dst.Values[i] = yv.Clone()
	}
	dst.String = y.String
	dst.Bool = y.Bool
	dst.Number = y.Number
	dst.Float64 = nil
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	dst.Int64 = nil
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	return dst
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type:   ArrayType,
		Values: make([]*Node, len(ySlice)),
	}
	for i, y := range ySlice {
		if y == nil {
			y = Null()
		}
		res.Values[i] = y
	}
	return res
}

// FromMap builds an object with keys in sorted order.
func FromMap(yMap map[string]*Node) *Node {
	res := &Node{
		Type:   ObjectType,
		Fields: make([]string, 0, len(yMap)),
		Values: make([]*Node, 0, len(yMap)),
	}
	for _, key := range slices.Sorted(maps.Keys(yMap)) {
		y := yMap[key]
		if y == nil {
			y = Null()
		}
		res.Fields = append(res.Fields, key)
		res.Values = append(res.Values, y)
	}
	return res
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals builds an object preserving the order of kvs.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{
		Type:   ObjectType,
		Fields: make([]string, len(kvs)),
		Values: make([]*Node, len(kvs)),
	}
	for i := range kvs {
		kv := &kvs[i]
		if kv.Val == nil {
			kv.Val = Null()
		}
		res.Fields[i] = kv.Key
		res.Values[i] = kv.Val
	}
	return res
}

// IsNil reports whether v is absent, including a typed nil *Node.
func IsNil(v Value) bool {
	if v == nil {
		return true
	}
	n, ok := v.(*Node)
	return ok && n == nil
}

// OrNull returns v, or a new null node when v is absent.
func OrNull(v Value) Value {
	if IsNil(v) {
		return Null()
	}
	return v
}
