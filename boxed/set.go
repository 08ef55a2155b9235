package boxed

import (
	"github.com/signadot/boxed-json/debug"
	"github.com/signadot/boxed-json/ir"
	"github.com/signadot/boxed-json/ir/kpath"
	"github.com/signadot/boxed-json/mutable"
)

// Set writes newValue at path below root and returns root.
//
// Missing intermediate containers are created: an object when the next
// segment is a key, an array when it is [0] or []. Writing to an index is
// allowed up to the array length, where it appends; "[]" always appends.
// When the path cannot be written, Set returns a sentinel shaped like
// newValue and the document is left unchanged.  A nil newValue is stored
// as null.
//
// The error is non-nil for a malformed path and, wrapping ErrReadOnly, for
// a write to a container which cannot be edited.
func Set(root Value, path string, newValue ir.Value) (Value, error) {
	kp, err := kpath.Parse(path, kpath.AllowAppend(true))
	if err != nil {
		return Value{}, err
	}
	newValue = ir.OrNull(newValue)
	if !root.isContainer() {
		return Sentinel(root.AsObject().ErrKind(), LiteralShape), nil
	}
	if !mutable.IsMutable(root.v) {
		return Value{}, ErrReadOnly
	}
	shape := ShapeOf(Of(newValue).Kind())
	t := &tx{}
	e, err := set(t, root, kp, newValue)
	if err != nil {
		return Value{}, err
	}
	if e != NoErr {
		if debug.Set() {
			debug.Logf("set %s aborted: %s, %d writes dropped", kp, e, len(t.writes))
		}
		return Sentinel(e, shape), nil
	}
	if debug.Set() {
		debug.Logf("set %s = %s", kp, newValue)
	}
	t.commit()
	return root, nil
}

// set walks kp from cur, journaling writes in t.  It returns the ErrKind
// which stopped the walk, or NoErr.
func set(t *tx, cur Value, kp *kpath.KPath, newValue ir.Value) (ErrKind, error) {
	for seg := kp; seg != nil; seg = seg.Next {
		last := seg.Next == nil
		if seg.Field != nil {
			o := cur.AsObject()
			if !o.IsValid() {
				return o.ErrKind(), nil
			}
			key := *seg.Field
			if last {
				return NoErr, t.put(o, key, newValue)
			}
			if child, ok := o.v.(ir.Object).Get(key); ok {
				cur = Of(child)
				continue
			}
			c := materialize(seg.Next)
			if c == nil {
				return HadMissing, nil
			}
			if err := t.put(o, key, c); err != nil {
				return NoErr, err
			}
			cur = Of(c)
			continue
		}

		a := cur.AsArray()
		if !a.IsValid() {
			return a.ErrKind(), nil
		}
		arr := a.v.(ir.Array)
		n := arr.Len()
		i := n
		if !seg.Append {
			i = *seg.Index
		}
		if i > n {
			return HadMissing, nil
		}
		if last {
			return NoErr, t.setIndex(a, i, newValue)
		}
		if i < n {
			cur = Of(arr.At(i))
			continue
		}
		c := materialize(seg.Next)
		if c == nil {
			return HadMissing, nil
		}
		if err := t.setIndex(a, i, c); err != nil {
			return NoErr, err
		}
		cur = Of(c)
	}
	return NoErr, nil
}

// materialize returns an empty container for a missing value followed by
// next, or nil if next cannot start in a new container.
func materialize(next *kpath.KPath) ir.Value {
	switch {
	case next.Field != nil:
		return mutable.NewObject()
	case next.Append, next.Index != nil && *next.Index == 0:
		return mutable.NewArray(0)
	}
	return nil
}

// MustSet is like Set but panics on error.
func MustSet(root Value, path string, newValue ir.Value) Value {
	res, err := Set(root, path, newValue)
	if err != nil {
		panic(err)
	}
	return res
}

func SetTrue(root Value, path string) (Value, error) {
	return Set(root, path, ir.FromBool(true))
}

func SetFalse(root Value, path string) (Value, error) {
	return Set(root, path, ir.FromBool(false))
}

func SetNull(root Value, path string) (Value, error) {
	return Set(root, path, ir.Null())
}

func SetString(root Value, path string, v string) (Value, error) {
	return Set(root, path, ir.FromString(v))
}

func SetInt(root Value, path string, v int64) (Value, error) {
	return Set(root, path, ir.FromInt(v))
}

func SetFloat(root Value, path string, v float64) (Value, error) {
	return Set(root, path, ir.FromFloat(v))
}
