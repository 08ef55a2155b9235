package boxed

import (
	"bytes"
	"io"
	"strings"

	"github.com/signadot/boxed-json/encode"
	"github.com/signadot/boxed-json/ir"
)

// Equal reports whether a and b are equal.  Sentinels are equal when they
// have the same ErrKind, whatever their shape.  Valid values compare by
// content with ir.Equal.
func Equal(a, b Value) bool {
	if !a.IsValid() || !b.IsValid() {
		return a.ErrKind() == b.ErrKind()
	}
	return ir.Equal(a.v, b.v)
}

// Equal is the method form of Equal.
func (b Value) Equal(o Value) bool {
	return Equal(b, o)
}

// Hash returns a hash of b consistent with Equal.
func Hash(b Value) uint64 {
	if !b.IsValid() {
		// distinct from ir.Hash of any value in practice
		return 0x9e3779b97f4a7c15 * uint64(b.ErrKind())
	}
	return ir.Hash(b.v)
}

// Encode writes b to w.  Sentinels are written as null.
func (b Value) Encode(w io.Writer, opts ...encode.EncodeOption) error {
	return encode.Encode(b.Unbox(), w, opts...)
}

// String renders b as compact JSON.  Sentinels render as null.
func (b Value) String() string {
	buf := &strings.Builder{}
	if err := b.Encode(buf, encode.EncodeWire(true)); err != nil {
		return err.Error()
	}
	return buf.String()
}

func (b Value) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := b.Encode(buf, encode.EncodeWire(true)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
