// Package patch applies RFC 6902 JSON patches and RFC 7386 merge patches to
// documents.
package patch

import (
	"errors"
	"fmt"

	"github.com/signadot/boxed-json/boxed"
	"github.com/signadot/boxed-json/debug"
	"github.com/signadot/boxed-json/parse"

	jsonpatch "github.com/evanphx/json-patch"
)

var ErrPatch = errors.New("patch error")

// Patch is a decoded RFC 6902 patch.
type Patch struct {
	ops jsonpatch.Patch
}

// Decode decodes a JSON patch document, a JSON array of operations.
func Decode(d []byte) (*Patch, error) {
	ops, err := jsonpatch.DecodePatch(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPatch, err)
	}
	return &Patch{ops: ops}, nil
}

func (p *Patch) Len() int {
	return len(p.ops)
}

// Apply applies p to doc and returns the result as a new editable
// document.  doc is not changed.
func (p *Patch) Apply(doc boxed.Value) (boxed.Value, error) {
	d, err := doc.MarshalJSON()
	if err != nil {
		return boxed.Value{}, err
	}
	if debug.Set() {
		debug.Logf("json patch of %d ops on %s", len(p.ops), doc.Unbox())
	}
	out, err := p.ops.Apply(d)
	if err != nil {
		return boxed.Value{}, fmt.Errorf("%w: %v", ErrPatch, err)
	}
	return boxed.Load(out, parse.ParseJSON())
}

// Apply decodes patch and applies it to doc.
func Apply(doc boxed.Value, patch []byte) (boxed.Value, error) {
	p, err := Decode(patch)
	if err != nil {
		return boxed.Value{}, err
	}
	return p.Apply(doc)
}

// Merge applies the merge patch to doc and returns the result as a new
// editable document.  doc is not changed.
func Merge(doc boxed.Value, merge []byte) (boxed.Value, error) {
	d, err := doc.MarshalJSON()
	if err != nil {
		return boxed.Value{}, err
	}
	out, err := jsonpatch.MergePatch(d, merge)
	if err != nil {
		return boxed.Value{}, fmt.Errorf("%w: %v", ErrPatch, err)
	}
	return boxed.Load(out, parse.ParseJSON())
}

// MergeDiff returns the merge patch which turns from into to.
func MergeDiff(from, to boxed.Value) ([]byte, error) {
	a, err := from.MarshalJSON()
	if err != nil {
		return nil, err
	}
	b, err := to.MarshalJSON()
	if err != nil {
		return nil, err
	}
	res, err := jsonpatch.CreateMergePatch(a, b)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPatch, err)
	}
	return res, nil
}
