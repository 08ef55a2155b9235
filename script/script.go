// Package script evaluates expr-lang expressions over a document.
//
// The document is available as the variable doc, in the form produced by
// ir.ToAny.  The following functions navigate it with boxed paths:
//
//	path(p)     the value at p, or nil when there is none
//	valid(p)    whether p resolves to a value
//	kind(p)     the Kind of the value at p, or its ErrKind
//	null(p)     whether a null was in the way (HadNull)
//	missing(p)  whether a key or index was missing (HadMissing)
//	invalid(p)  whether a value had the wrong shape (HadInvalid)
//
// For example:
//
//	valid("spec.replicas") && path("spec.replicas") > 1
package script

import (
	"errors"
	"fmt"

	"github.com/signadot/boxed-json/boxed"
	"github.com/signadot/boxed-json/debug"
	"github.com/signadot/boxed-json/ir"

	"github.com/expr-lang/expr"
)

var ErrScript = errors.New("script error")

// Eval compiles and runs src against root and boxes the result.
func Eval(root boxed.Value, src string) (boxed.Value, error) {
	res, err := Run(root, src)
	if err != nil {
		return boxed.Value{}, err
	}
	node, err := ir.FromAny(res)
	if err != nil {
		return boxed.Value{}, fmt.Errorf("%w: result %T: %v", ErrScript, res, err)
	}
	return boxed.Of(node), nil
}

// Run compiles and runs src against root and returns the plain result.
func Run(root boxed.Value, src string) (any, error) {
	if debug.Eval() {
		debug.Logf("script %q", src)
	}
	env := map[string]any{
		"doc": ir.ToAny(root.Unbox()),
	}
	opts := append(exprOpts(root), expr.Env(env))
	prg, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScript, err)
	}
	res, err := expr.Run(prg, env)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScript, err)
	}
	return res, nil
}

// Truth runs src against root and reports whether the result is truthy.
func Truth(root boxed.Value, src string) (bool, error) {
	res, err := Eval(root, src)
	if err != nil {
		return false, err
	}
	return ir.Truth(res.Unbox()), nil
}
