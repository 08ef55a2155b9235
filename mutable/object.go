package mutable

import (
	"fmt"
	"iter"
	"slices"

	"github.com/signadot/boxed-json/ir"
)

// Object is an insertion-ordered JSON object.
type Object struct {
	keys   []string
	values map[string]ir.Value
}

func NewObject() *Object {
	return &Object{values: map[string]ir.Value{}}
}

// ObjectOf returns an Object over a shallow copy of the fields of node,
// which must be an object node.  For duplicate keys the last value wins.
func ObjectOf(node *ir.Node) *Object {
	res := &Object{
		keys:   make([]string, 0, len(node.Fields)),
		values: make(map[string]ir.Value, len(node.Fields)),
	}
	for i, k := range node.Fields {
		res.Put(k, node.Values[i])
	}
	return res
}

func (o *Object) Kind() ir.Type {
	return ir.ObjectType
}

func (o *Object) Len() int {
	return len(o.keys)
}

func (o *Object) Keys() []string {
	return slices.Clone(o.keys)
}

func (o *Object) Has(key string) bool {
	_, ok := o.values[key]
	return ok
}

// Get returns the value at key, upgrading a plain container in place.
func (o *Object) Get(key string) (ir.Value, bool) {
	v, ok := o.values[key]
	if !ok {
		return nil, false
	}
	if w, ok := upgrade(v); ok {
		o.values[key] = w
		return w, true
	}
	return v, true
}

// RawGet returns the value at key as stored.
func (o *Object) RawGet(key string) (ir.Value, bool) {
	v, ok := o.values[key]
	return v, ok
}

func (o *Object) Entries() iter.Seq2[string, ir.Value] {
	return func(yield func(string, ir.Value) bool) {
		for _, k := range o.keys {
			if !yield(k, o.values[k]) {
				return
			}
		}
	}
}

// Put sets key to v and returns the previous value, if any.  A new key is
// added at the end; an existing key keeps its position.
func (o *Object) Put(key string, v ir.Value) (ir.Value, bool) {
	old, ok := o.values[key]
	if !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = ir.OrNull(v)
	return old, ok
}

// Remove deletes key and returns its value.
func (o *Object) Remove(key string) (ir.Value, bool) {
	old, ok := o.values[key]
	if !ok {
		return nil, false
	}
	delete(o.values, key)
	o.keys = slices.DeleteFunc(o.keys, func(k string) bool { return k == key })
	return old, true
}

// Rename moves the value at oldKey to newKey, keeping the position of
// oldKey.  Any existing value at newKey is dropped.
func (o *Object) Rename(oldKey, newKey string) (ir.Value, error) {
	v, ok := o.values[oldKey]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrKey, oldKey)
	}
	if oldKey == newKey {
		return v, nil
	}
	if _, ok := o.values[newKey]; ok {
		o.Remove(newKey)
	}
	i := slices.Index(o.keys, oldKey)
	o.keys[i] = newKey
	delete(o.values, oldKey)
	o.values[newKey] = v
	return v, nil
}

func (o *Object) String() string {
	return render(o)
}

func (o *Object) MarshalJSON() ([]byte, error) {
	return marshal(o)
}
