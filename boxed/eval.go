package boxed

import (
	"github.com/signadot/boxed-json/debug"
	"github.com/signadot/boxed-json/ir/kpath"
)

// Eval returns the value at path below root.  The error is non-nil only when
// path is malformed; absent data is reported with a sentinel.  The first
// failure along the path is returned as a literal sentinel, which callers
// may coerce to the shape they want.
func Eval(root Value, path string) (Value, error) {
	kp, err := kpath.Parse(path)
	if err != nil {
		return Value{}, err
	}
	res := eval(root, kp)
	if debug.Eval() {
		debug.Logf("eval %s -> %s (%s)", kp, res.Unbox(), res.ErrKind())
	}
	return res, nil
}

func eval(root Value, kp *kpath.KPath) Value {
	cur := root
	for seg := kp; seg != nil && cur.IsValid(); seg = seg.Next {
		if seg.Field != nil {
			cur = cur.Get(*seg.Field)
		} else {
			cur = cur.At(*seg.Index)
		}
	}
	if !cur.IsValid() {
		return Sentinel(cur.ErrKind(), LiteralShape)
	}
	return cur
}

// MustEval is like Eval but panics if path is malformed.
func MustEval(root Value, path string) Value {
	res, err := Eval(root, path)
	if err != nil {
		panic(err)
	}
	return res
}

func EvalArray(root Value, path string) (Value, error) {
	res, err := Eval(root, path)
	return res.AsArray(), err
}

func EvalObject(root Value, path string) (Value, error) {
	res, err := Eval(root, path)
	return res.AsObject(), err
}

func EvalNumber(root Value, path string) (Value, error) {
	res, err := Eval(root, path)
	return res.AsNumber(), err
}

func EvalString(root Value, path string) (Value, error) {
	res, err := Eval(root, path)
	return res.AsString(), err
}

func EvalBoolean(root Value, path string) (Value, error) {
	res, err := Eval(root, path)
	return res.AsBoolean(), err
}

// EvalInt returns the integer at path, or def if there is none.
func EvalInt(root Value, path string, def int) (int, error) {
	res, err := Eval(root, path)
	if err != nil {
		return def, err
	}
	return res.IntOr(def), nil
}

func EvalInt64(root Value, path string, def int64) (int64, error) {
	res, err := Eval(root, path)
	if err != nil {
		return def, err
	}
	return res.Int64Or(def), nil
}

func EvalFloat64(root Value, path string, def float64) (float64, error) {
	res, err := Eval(root, path)
	if err != nil {
		return def, err
	}
	return res.Float64Or(def), nil
}

func EvalText(root Value, path string, def string) (string, error) {
	res, err := Eval(root, path)
	if err != nil {
		return def, err
	}
	return res.TextOr(def), nil
}

// EvalBool returns the boolean at path, or def if there is none.
func EvalBool(root Value, path string, def bool) (bool, error) {
	res, err := Eval(root, path)
	if err != nil {
		return def, err
	}
	return res.BoolOr(def), nil
}
