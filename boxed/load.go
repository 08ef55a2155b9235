package boxed

import (
	"github.com/signadot/boxed-json/mutable"
	"github.com/signadot/boxed-json/parse"
)

// Parse parses a JSON or YAML document into a read-only Value.
func Parse(d []byte, opts ...parse.ParseOption) (Value, error) {
	node, err := parse.Parse(d, opts...)
	if err != nil {
		return Value{}, err
	}
	return Of(node), nil
}

// Load parses a document into an editable Value.  Containers below the root
// are made editable as they are reached.
func Load(d []byte, opts ...parse.ParseOption) (Value, error) {
	node, err := parse.Parse(d, opts...)
	if err != nil {
		return Value{}, err
	}
	return Of(mutable.Wrap(node)), nil
}

// Mutable returns b with an editable root.  A plain container root is
// wrapped without copying its children; editable containers, leaves and
// sentinels are returned as is.
func Mutable(b Value) Value {
	if !b.isContainer() || mutable.IsMutable(b.v) {
		return b
	}
	return Of(mutable.Wrap(b.v))
}

// Copy returns a deep editable copy of b sharing nothing with it.
// Sentinels are returned as is.
func Copy(b Value) Value {
	if !b.IsValid() {
		return b
	}
	return Of(mutable.DeepCopy(b.v))
}
